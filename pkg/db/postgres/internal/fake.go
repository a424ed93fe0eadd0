package internal

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgproto3/v2"
	"github.com/jackc/pgx/v4"

	kpool "github.com/recordbin/recordbin/pkg/db/postgres/pool"
)

type FakePool struct {
	NextAcquire struct {
		Conn kpool.Conn
		Err  error
	}
	NextPing error
}

// parameter v is never read/overwritten. just a represent value of type T.
func zero[T any](T) T {
	return *new(T)
}

func (p *FakePool) Acquire(ctx context.Context) (kpool.Conn, error) {
	defer func() {
		p.NextAcquire = zero(p.NextAcquire)
		p.NextAcquire.Conn = &FakeConn{}
	}()
	return p.NextAcquire.Conn, p.NextAcquire.Err
}

func (p *FakePool) Ping(ctx context.Context) error {
	defer func() {
		p.NextPing = zero(p.NextPing)
	}()
	return p.NextPing
}

type FakeConn struct {
	NextExec struct {
		CommandTag pgconn.CommandTag
		Err        error
	}
	NextQuery struct {
		Rows pgx.Rows
		Err  error
	}
	NextQueryRow pgx.Row

	SQLLog []string // SQL passed to Exec/Query/QueryRow, in order.
}

func (c *FakeConn) Release() {
}

func (c *FakeConn) Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	c.SQLLog = append(c.SQLLog, sql)
	defer func() {
		c.NextExec = zero(c.NextExec)
	}()
	return c.NextExec.CommandTag, c.NextExec.Err
}

func (c *FakeConn) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	c.SQLLog = append(c.SQLLog, sql)
	defer func() {
		c.NextQuery = zero(c.NextQuery)
	}()
	return c.NextQuery.Rows, c.NextQuery.Err
}

func (c *FakeConn) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	c.SQLLog = append(c.SQLLog, sql)
	defer func() {
		c.NextQueryRow = zero(c.NextQueryRow)
	}()
	return c.NextQueryRow
}

// FakeRow scans its values into dest, or fails with Err.
type FakeRow struct {
	Values []interface{}
	Err    error
}

var _ pgx.Row = &FakeRow{}

func (r *FakeRow) Scan(dest ...interface{}) error {
	if r.Err != nil {
		return r.Err
	}
	return scanInto(r.Values, dest)
}

// FakeRows replays Payload row by row, then reports Err (if any).
type FakeRows struct {
	Payload [][]interface{}
	ScanErr error
	LastErr error

	cursor int
	closed bool
}

var _ pgx.Rows = &FakeRows{}

func (r *FakeRows) Close() {
	r.closed = true
}

func (r *FakeRows) Err() error {
	return r.LastErr
}

func (r *FakeRows) CommandTag() pgconn.CommandTag {
	return nil
}

func (r *FakeRows) FieldDescriptions() []pgproto3.FieldDescription {
	return nil
}

func (r *FakeRows) Next() bool {
	if r.closed || r.cursor >= len(r.Payload) {
		return false
	}
	r.cursor += 1
	return true
}

func (r *FakeRows) Scan(dest ...interface{}) error {
	if r.ScanErr != nil {
		return r.ScanErr
	}
	if r.cursor == 0 || len(r.Payload) < r.cursor {
		return errors.New("Scan without Next")
	}
	return scanInto(r.Payload[r.cursor-1], dest)
}

func (r *FakeRows) Values() ([]interface{}, error) {
	if r.cursor == 0 || len(r.Payload) < r.cursor {
		return nil, errors.New("Values without Next")
	}
	return r.Payload[r.cursor-1], nil
}

func (r *FakeRows) RawValues() [][]byte {
	return nil
}

func scanInto(values []interface{}, dest []interface{}) error {
	if len(values) != len(dest) {
		return errors.New("column count unmatch")
	}
	for nth, v := range values {
		switch d := dest[nth].(type) {
		case *[]byte:
			b, ok := v.([]byte)
			if !ok {
				return errors.New("not a []byte column")
			}
			*d = b
		case *int64:
			i, ok := v.(int64)
			if !ok {
				return errors.New("not an int64 column")
			}
			*d = i
		case *string:
			s, ok := v.(string)
			if !ok {
				return errors.New("not a string column")
			}
			*d = s
		default:
			return errors.New("unsupported dest type")
		}
	}
	return nil
}
