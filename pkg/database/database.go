package database

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

type Database struct {
	p *pgxpool.Pool
}

func (db *Database) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return db.loadDB(ctx).Query(ctx, sql, args...)
}

func (db *Database) Ping(ctx context.Context) error {
	return db.p.Ping(ctx)
}

// SQL exposes the pool through database/sql for tooling such as migrations.
// The returned handle must be closed by the caller; the pool stays open.
func (db *Database) SQL() *sql.DB {
	return stdlib.OpenDBFromPool(db.p)
}

func (db *Database) Close() {
	db.p.Close()
}

func NewDatabase(pool *pgxpool.Pool) *Database {
	return &Database{p: pool}
}
