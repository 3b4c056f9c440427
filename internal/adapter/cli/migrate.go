package cli

import (
	"errors"
	"fmt"
	"strings"

	"hero_seguros/internal/adapter/persistence/repository"
	"hero_seguros/internal/infrastructure/database"
	"hero_seguros/internal/infrastructure/wiring"

	"github.com/spf13/cobra"
)

var errRollbackUnsupported = errors.New("--down is only supported by the sqlite driver")

func migrateCmd(a *app) *cobra.Command {
	var down bool

	c := &cobra.Command{
		Use:   "migrate",
		Short: "Apply SQLite migrations or create missing DynamoDB tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			return a.withRepositories(ctx, func(repos *wiring.Repositories) error {
				switch {
				case repos.SQLite != nil && down:
					v, err := repos.SQLite.Rollback(ctx)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "rolled back migration %d\n", v)
				case repos.SQLite != nil:
					if err := repos.SQLite.Migrate(ctx); err != nil {
						return err
					}
					v, err := repos.SQLite.Version(ctx)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "schema at version %d (%s)\n", v, repos.SQLite.Path())
				case down:
					return errRollbackUnsupported
				case repos.DynamoDB != nil:
					created, err := database.EnsureTables(ctx, repos.DynamoDB, repository.TableDefinitions())
					if err != nil {
						return err
					}
					if len(created) == 0 {
						fmt.Fprintln(out, "tables up to date")
						return nil
					}
					fmt.Fprintf(out, "created tables: %s\n", strings.Join(created, ", "))
				}
				return nil
			})
		},
	}

	c.Flags().BoolVar(&down, "down", false, "roll back the latest SQLite migration")
	return c
}
