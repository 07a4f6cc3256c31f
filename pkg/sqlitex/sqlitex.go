// Package sqlitex is an embedded persistence backend. SQLite has no stored
// procedures, so routines are named statements kept in the routine table and
// installed by migrations.
package sqlitex

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/evgeniy-krivenko/color-notes/pkg/routine"
)

const driverName = "sqlite3"

type DB struct {
	db *sql.DB
}

var _ routine.Executor = (*DB)(nil)

func Open(ctx context.Context, path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on", path)

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(2)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &DB{db: db}, nil
}

func (d *DB) SQL() *sql.DB {
	return d.db
}

func (d *DB) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Execute(
	ctx context.Context,
	name string,
	params routine.Params,
	card routine.Cardinality,
) (routine.Result, error) {
	if err := routine.ValidateCall(name, params); err != nil {
		return routine.Result{}, &routine.Error{Kind: routine.KindUnexpected, Routine: name, Err: err}
	}

	var body string
	err := d.db.QueryRowContext(ctx, `SELECT body FROM routine WHERE name = ?`, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return routine.Result{}, &routine.Error{
			Kind:    routine.KindUnexpected,
			Routine: name,
			Err:     fmt.Errorf("routine is not installed"),
		}
	}
	if err != nil {
		return routine.Result{}, routine.Wrap(name, err, Classify)
	}

	args := make([]any, 0, len(params))
	for _, p := range params.Names() {
		args = append(args, sql.Named(p, params[p]))
	}

	rows, err := d.db.QueryContext(ctx, body, args...)
	if err != nil {
		return routine.Result{}, routine.Wrap(name, err, Classify)
	}

	out, err := collect(rows)
	if err != nil {
		return routine.Result{}, routine.Wrap(name, err, Classify)
	}

	return routine.Shape(out, card), nil
}

func collect(rows *sql.Rows) ([]routine.Row, error) {
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []routine.Row
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(routine.Row, len(cols))
		for i, col := range cols {
			row[col] = vals[i]
		}
		out = append(out, row)
	}

	return out, rows.Err()
}

// Classify maps the SQLITE_CONSTRAINT family to domain rules. A trigger
// RAISE(ABORT, msg) keeps its message.
func Classify(err error) (routine.Kind, string) {
	var sqErr sqlite3.Error
	if !errors.As(err, &sqErr) || sqErr.Code != sqlite3.ErrConstraint {
		return routine.KindUnexpected, ""
	}

	switch sqErr.ExtendedCode {
	case sqlite3.ErrConstraintTrigger:
		return routine.KindDomainRule, sqErr.Error()
	case sqlite3.ErrConstraintCheck:
		return routine.KindDomainRule, "constraint violated: check"
	case sqlite3.ErrConstraintNotNull:
		return routine.KindDomainRule, "constraint violated: not null"
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return routine.KindDomainRule, "constraint violated: unique"
	default:
		return routine.KindDomainRule, "constraint violated"
	}
}
