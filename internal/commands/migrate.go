package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SscSPs/money_tracker/internal/platform/config"
	"github.com/SscSPs/money_tracker/pkg/database"
)

func newMigrateCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:       "migrate up|down",
		Short:     "Apply or revert the database schema",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := database.Direction(args[0])
			if direction != database.MigrateUp && direction != database.MigrateDown {
				return fmt.Errorf("unknown direction %q, want up or down", args[0])
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cfg.StorageDriver != config.StorageDriverPostgres {
				return fmt.Errorf("migrations need STORAGE_DRIVER=%s, got %s", config.StorageDriverPostgres, cfg.StorageDriver)
			}
			if path == "" {
				path = cfg.MigrationsPath
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			return database.RunMigrations(logger, cfg.DatabaseURL, path, direction)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "migration source URL, defaults to MIGRATIONS_PATH")

	return cmd
}
