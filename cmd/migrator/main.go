package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/color-notes/internal/config"
	"github.com/evgeniy-krivenko/color-notes/internal/ctxtr"
	"github.com/evgeniy-krivenko/color-notes/internal/gateway"
	"github.com/evgeniy-krivenko/color-notes/internal/migrations"
	"github.com/evgeniy-krivenko/color-notes/pkg/logger/slogx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var driver, path string

	rootCmd := &cobra.Command{
		Use:           "migrator",
		Short:         "Apply and inspect color notes database migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "Database driver (postgres, sqlite); overrides DB_DRIVER")
	rootCmd.PersistentFlags().StringVar(&path, "path", "", "SQLite database file; overrides DB_PATH")

	withGateway := func(f func(ctx context.Context, g *gateway.Gateway) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(driver, path)
			if err != nil {
				return err
			}

			g, err := gateway.Open(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer g.Close()

			return f(cmd.Context(), g)
		}
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withGateway(func(ctx context.Context, g *gateway.Gateway) error {
				return g.Migrate(ctx)
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: withGateway(func(ctx context.Context, g *gateway.Gateway) error {
				return migrations.Down(ctx, g.SQL(), g.Driver())
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: withGateway(func(ctx context.Context, g *gateway.Gateway) error {
				statuses, err := migrations.List(ctx, g.SQL(), g.Driver())
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "VERSION\tAPPLIED\tFILE")
				for _, s := range statuses {
					fmt.Fprintf(w, "%d\t%t\t%s\n", s.Version, s.Applied, s.Path)
				}
				return w.Flush()
			}),
		},
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

func loadConfig(driver, path string) (config.Config, error) {
	cfg, err := config.Parse()
	if err != nil {
		return config.Config{}, err
	}

	if driver != "" {
		cfg.Database.Driver = driver
	}
	if path != "" {
		cfg.Database.Path = path
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	if err := slogx.InitGlobal(os.Stderr, cfg.App.LogLevel, cfg.App.Pretty, ctxtr.LogHandler); err != nil {
		return config.Config{}, fmt.Errorf("init logger: %v", err)
	}

	return cfg, nil
}
