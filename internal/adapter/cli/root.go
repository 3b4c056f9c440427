// Package cli holds the cobra commands of the admin binary.
package cli

import (
	"context"
	"os"
	"strings"

	"hero_seguros/internal/infrastructure/config"
	"hero_seguros/internal/infrastructure/wiring"

	"github.com/spf13/cobra"
)

type opener func(ctx context.Context, cfg config.Config) (*wiring.Repositories, error)

type app struct {
	cfg  config.Config
	open opener
}

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(wiring.NewRepositories)
}

func newRootCmd(open opener) *cobra.Command {
	a := &app{open: open}
	var driver, sqlitePath string

	cmd := &cobra.Command{
		Use:          "hero-admin",
		Short:        "Administrative tasks for the quotation service",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if d := strings.ToLower(strings.TrimSpace(driver)); d != "" {
				if d != config.DriverDynamoDB && d != config.DriverSQLite {
					return config.ErrUnknownStorageDriver
				}
				cfg.StorageDriver = d
			}
			if sqlitePath != "" {
				cfg.SQLitePath = sqlitePath
			}
			a.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&driver, "driver", "", "storage driver (dynamodb | sqlite); overrides STORAGE_DRIVER")
	cmd.PersistentFlags().StringVar(&sqlitePath, "sqlite-path", "", "SQLite database file; overrides SQLITE_PATH")

	cmd.AddCommand(migrateCmd(a), seedCmd(a), expireCmd(a), quoteCmd(a))
	return cmd
}

// withRepositories opens the configured backend for the duration of fn.
func (a *app) withRepositories(ctx context.Context, fn func(repos *wiring.Repositories) error) error {
	repos, err := a.open(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer func() { _ = repos.Close() }()
	return fn(repos)
}

// useCases builds use cases with payments in mock mode; no admin command charges anything.
func useCases(repos *wiring.Repositories) wiring.UseCases {
	return wiring.NewUseCases(repos, nil, true)
}
