package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/schedule-manager/internal/config"
	"github.com/spec-kit/schedule-manager/internal/observability"
	"github.com/spec-kit/schedule-manager/internal/persistence"
)

var migrateCommands = []string{"up", "down", "status", "version", "redo"}

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status|version|redo]",
		Short:     "Run database migrations",
		Long:      `Run the embedded goose migrations against POSTGRES_DSN. Defaults to "up".`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: migrateCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}

			cfg, err := config.LoadDatabase()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger, err := observability.NewLogger(cfg.Logger, cfg.App)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck

			pg, err := persistence.NewPostgres(cmd.Context(), cfg.Postgres, logger)
			if err != nil {
				return fmt.Errorf("connect postgres: %w", err)
			}
			defer pg.Close()

			if err := persistence.Migrate(cmd.Context(), pg.PoolHandle(), logger, command); err != nil {
				return err
			}
			cmd.Println("migrate", command, "completed")
			return nil
		},
	}
}
