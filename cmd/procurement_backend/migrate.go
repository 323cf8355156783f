package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Long: `Create or update the schema of the configured store (DATABASE_DRIVER)
to the latest version. The serve command does the same on startup unless
RUN_MIGRATIONS is false.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			slog.Info("Starting database migration", slog.String("database_driver", cfg.DatabaseDriver))
			_, closeStore, err := openStore(cmd.Context(), cfg, true)
			if err != nil {
				return err
			}
			closeStore()
			return nil
		},
	}
}
