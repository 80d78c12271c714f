package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mmynk/housesplit/internal/config"
	"github.com/mmynk/housesplit/internal/storage/postgres"
	"github.com/mmynk/housesplit/internal/storage/sqlite"
)

func (a *app) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long:  `Bring the configured database schema up to the latest version. The server also does this on startup.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db := a.cfg.Database
			switch db.Driver {
			case config.DriverPostgres:
				if err := postgres.RunMigrations(db.DSN); err != nil {
					return err
				}
			default:
				if err := os.MkdirAll(filepath.Dir(db.Path), 0755); err != nil {
					return fmt.Errorf("failed to create database directory: %w", err)
				}
				if err := sqlite.RunMigrations(db.Path); err != nil {
					return err
				}
			}
			slog.Info("Migrations applied", "driver", db.Driver)
			fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date")
			return nil
		},
	}
}
