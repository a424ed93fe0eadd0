package pool

import (
	"context"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// something sending query with SQL.
//
// this is extracted interface from `pgxpool.Conn`.
// When you need more details, see it.
type Queryer interface {
	// sending SQL Command which does not have any result rows.
	//
	// for more detail, see `pgxpool.Conn.Exec`
	Exec(ctx context.Context, sql string, arguments ...interface{}) (commandTag pgconn.CommandTag, err error)

	// sending SQL Command which has result rows.
	//
	// for more detail, see `pgxpool.Conn.Query`
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)

	// sending SQL Command which has just single result row.
	//
	// for more detail, see `pgxpool.Conn.QueryRow`
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// interface extracted from `*pgxpool.Conn`
//
// # note 1: `*pgxpool.Conn` does NOT implement `Conn`
//
// because golang lacks covariance/contravariance in typing,
// `Conn` cannot be defined as a generatization of `pgxpool.Conn`, directly.
//
// If you need to wrap `pgxpool.Conn` as `Conn`,
// you can use `Pool` in this package and call `Acquire()`.
//
// # note 2: this is subset
//
// this interface is JUST A SUBSET like `*pgxpool.Conn`
//
// When you need more methods only `*pgxpool.Conn` has, declare them.
type Conn interface {
	Queryer

	Release()
}

// thin wrapper of pgxpool.Conn as Conn
type pgxPoolConn struct {
	base *pgxpool.Conn
}

var _ Conn = &pgxPoolConn{}

func (c *pgxPoolConn) Release() {
	c.base.Release()
}
func (c *pgxPoolConn) Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	return c.base.Exec(ctx, sql, arguments...)
}
func (c *pgxPoolConn) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return c.base.Query(ctx, sql, args...)
}
func (c *pgxPoolConn) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return c.base.QueryRow(ctx, sql, args...)
}

// interface extracted from `*pgxpool.Pool`
//
// # note 1: `*pgxpool.Pool` does NOT implement `Pool`
//
// because golang lacks covariance/contravariance in typing,
// `Pool` cannot be defined as a generatization of `*pgxpool.Pool`, directly.
//
// If you need to wrap `*pgxpool.Pool` as `Pool`, you can `Wrap` it.
//
// # note 2: this is subset
//
// this interface is JUST A SUBSET like `*pgxpool.Pool`
//
// When you need more methods only `*pgxpool.Pool` has, declare them.
type Pool interface {
	Acquire(ctx context.Context) (Conn, error)
	Ping(ctx context.Context) error
}

type pgxPool struct {
	base *pgxpool.Pool
}

var _ Pool = &pgxPool{}

func (p *pgxPool) Acquire(ctx context.Context) (Conn, error) {
	conn, err := p.base.Acquire(ctx)
	if conn == nil {
		return nil, err
	}
	return &pgxPoolConn{conn}, err
}
func (p *pgxPool) Ping(ctx context.Context) error {
	return p.base.Ping(ctx)
}

func Wrap(p *pgxpool.Pool) Pool {
	return &pgxPool{p}
}
