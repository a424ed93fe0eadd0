package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	kdb "github.com/recordbin/recordbin/pkg/db"
	kpool "github.com/recordbin/recordbin/pkg/db/postgres/pool"
	kpgrec "github.com/recordbin/recordbin/pkg/db/postgres/records"
	xe "github.com/recordbin/recordbin/pkg/errors"
)

type recordDBPostgres struct {
	pool    *pgxpool.Pool
	records kdb.RecordInterface
}

// New connects to the record store at url.
//
// The connection is validated eagerly: connecting the pool and making sure
// the record table exists both happen here, so a dead store fails the
// process at startup instead of on the first request.
func New(ctx context.Context, url string) (kdb.RecordDatabase, error) {
	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	records, err := prepare(ctx, kpool.Wrap(pool))
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &recordDBPostgres{
		pool:    pool,
		records: records,
	}, nil
}

// prepare pings the store and makes sure the record table exists,
// then builds the record accessor over the pool.
func prepare(ctx context.Context, p kpool.Pool) (kdb.RecordInterface, error) {
	if err := p.Ping(ctx); err != nil {
		return nil, xe.Wrap(err)
	}
	if err := kpgrec.EnsureSchema(ctx, p); err != nil {
		return nil, err
	}
	return kpgrec.New(p), nil
}

func (k *recordDBPostgres) Records() kdb.RecordInterface {
	return k.records
}

func (k *recordDBPostgres) Close() error {
	k.pool.Close()
	return nil
}
