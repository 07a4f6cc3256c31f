// Package gateway opens the persistence backend selected by configuration
// and owns it until Close.
package gateway

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/evgeniy-krivenko/color-notes/internal/config"
	"github.com/evgeniy-krivenko/color-notes/internal/migrations"
	"github.com/evgeniy-krivenko/color-notes/pkg/database"
	"github.com/evgeniy-krivenko/color-notes/pkg/logger/slogx"
	"github.com/evgeniy-krivenko/color-notes/pkg/routine"
	"github.com/evgeniy-krivenko/color-notes/pkg/sqlitex"
)

type backend interface {
	routine.Executor
	Ping(ctx context.Context) error
}

type Gateway struct {
	backend

	driver string
	db     *sql.DB
	close  func() error
}

func Open(ctx context.Context, cfg config.DatabaseConfig) (*Gateway, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := database.NewPGX(ctx, database.NewOptions(
			cfg.Address(),
			cfg.User,
			cfg.Password,
			cfg.Name,
			database.WithRetryAttempts(cfg.RetryAttempts),
			database.WithMaxConns(cfg.MaxConns),
			database.WithLogger(slogx.Default()),
		))
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %v", err)
		}

		db := database.NewDatabase(pool)
		sqlDB := db.SQL()

		return &Gateway{
			backend: db,
			driver:  migrations.DriverPostgres,
			db:      sqlDB,
			close: func() error {
				err := sqlDB.Close()
				db.Close()
				return err
			},
		}, nil

	case config.DriverSQLite:
		db, err := sqlitex.Open(ctx, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %v", err)
		}

		return &Gateway{
			backend: db,
			driver:  migrations.DriverSQLite,
			db:      db.SQL(),
			close:   db.Close,
		}, nil
	}

	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

func (g *Gateway) Driver() string {
	return g.driver
}

// SQL is the database/sql view of the backend used by migrations.
func (g *Gateway) SQL() *sql.DB {
	return g.db
}

func (g *Gateway) Migrate(ctx context.Context) error {
	slogx.Info(ctx, "apply migrations", slog.String("driver", g.driver))

	if err := migrations.Up(ctx, g.db, g.driver); err != nil {
		return fmt.Errorf("migrate %s: %w", g.driver, err)
	}

	return nil
}

func (g *Gateway) Close() error {
	return g.close()
}
