package records

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/jackc/pgconn"
	pgerrcode "github.com/jackc/pgerrcode"

	kdb "github.com/recordbin/recordbin/pkg/db"
	kpool "github.com/recordbin/recordbin/pkg/db/postgres/pool"
	xe "github.com/recordbin/recordbin/pkg/errors"
)

type recordPG struct { // implements kdb.RecordInterface

	// connection pool for PostgreSQL
	pool kpool.Pool
}

func New(pool kpool.Pool) *recordPG {
	return &recordPG{pool: pool}
}

// EnsureSchema creates the record table when it does not exist yet.
//
// The record identity lives in the "id" column, outside the "document"
// column, so scans are identity-free without any stripping.
func EnsureSchema(ctx context.Context, pool kpool.Pool) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer conn.Release()

	_, err = conn.Exec(
		ctx,
		`CREATE TABLE IF NOT EXISTS "records" (`+
			` "id" BIGSERIAL PRIMARY KEY,`+
			` "document" JSONB NOT NULL`+
			` )`,
	)
	if err != nil {
		return xe.Wrap(err)
	}
	return nil
}

func (r *recordPG) Insert(ctx context.Context, document kdb.Document) (string, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return "", xe.Wrap(err)
	}
	defer conn.Release()

	body, err := json.Marshal(document)
	if err != nil {
		return "", xe.WrapWithNote("on insert", err)
	}

	var id int64
	if err := conn.QueryRow(
		ctx,
		`INSERT INTO "records" ("document") VALUES ($1) RETURNING "id"`,
		body,
	).Scan(&id); err != nil {
		return "", xe.WrapWithNote("on insert", err)
	}

	return strconv.FormatInt(id, 10), nil
}

func (r *recordPG) ScanAll(ctx context.Context) ([]kdb.Document, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `SELECT "document" FROM "records"`)
	if err != nil {
		if pgerr := new(pgconn.PgError); errors.As(err, &pgerr) {
			// no table means no record was ever written.
			if pgerr.Code == pgerrcode.UndefinedTable {
				return []kdb.Document{}, nil
			}
		}
		return nil, xe.WrapWithNote("on scan", err)
	}
	defer rows.Close()

	found := []kdb.Document{}
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, xe.WrapWithNote("on scan", err)
		}
		document := kdb.Document{}
		if err := json.Unmarshal(body, &document); err != nil {
			return nil, xe.WrapWithNote("on scan", err)
		}
		found = append(found, document)
	}
	if err := rows.Err(); err != nil {
		return nil, xe.WrapWithNote("on scan", err)
	}

	return found, nil
}
