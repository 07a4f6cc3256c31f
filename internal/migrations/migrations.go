// Package migrations embeds the schema and stored routines for every
// supported backend and applies them with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/evgeniy-krivenko/color-notes/pkg/logger/slogx"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

func NewProvider(db *sql.DB, driver string) (*goose.Provider, error) {
	var dialect goose.Dialect
	switch driver {
	case DriverPostgres:
		dialect = goose.DialectPostgres
	case DriverSQLite:
		dialect = goose.DialectSQLite3
	default:
		return nil, fmt.Errorf("unsupported migrations driver %q", driver)
	}

	sub, err := fs.Sub(files, driver)
	if err != nil {
		return nil, fmt.Errorf("open %s migrations: %v", driver, err)
	}

	provider, err := goose.NewProvider(dialect, db, sub)
	if err != nil {
		return nil, fmt.Errorf("new goose provider: %v", err)
	}

	return provider, nil
}

func Up(ctx context.Context, db *sql.DB, driver string) error {
	provider, err := NewProvider(db, driver)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, r := range results {
		slogx.Info(ctx, "migration applied",
			slog.String("path", r.Source.Path),
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}

	return nil
}

func Down(ctx context.Context, db *sql.DB, driver string) error {
	provider, err := NewProvider(db, driver)
	if err != nil {
		return err
	}

	r, err := provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("roll back migration: %w", err)
	}

	slogx.Info(ctx, "migration rolled back",
		slog.String("path", r.Source.Path),
		slog.Int64("version", r.Source.Version),
	)

	return nil
}

type Status struct {
	Version int64
	Path    string
	Applied bool
}

func List(ctx context.Context, db *sql.DB, driver string) ([]Status, error) {
	provider, err := NewProvider(db, driver)
	if err != nil {
		return nil, err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrations status: %w", err)
	}

	out := make([]Status, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, Status{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}

	return out, nil
}
