// Package cli implements the housesplit command line: the server, schema
// migrations and direct household management against the configured store.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/housesplit/internal/config"
	"github.com/mmynk/housesplit/internal/storage"
	"github.com/mmynk/housesplit/internal/storage/postgres"
	"github.com/mmynk/housesplit/internal/storage/sqlite"
	"github.com/mmynk/housesplit/internal/storage/sqlstore"
	"github.com/mmynk/housesplit/pkg/logging"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	cfg     *config.Config
}

// NewRootCmd builds the housesplit command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "housesplit",
		Short: "Split recurring household bills among roommates",
		Long: `housesplit tracks roommates, bills and who shares each bill, and
computes what every roommate owes. Run "housesplit serve" to expose the
Connect and REST APIs, or manage the household directly from the shell.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg
			logging.Setup(cfg.Log.Level, cfg.Log.Format)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Path to a TOML config file (or HOUSESPLIT_CONFIG)")

	root.AddCommand(
		a.serveCmd(),
		a.migrateCmd(),
		a.roommateCmd(),
		a.billCmd(),
		a.assignCmd(),
		a.unassignCmd(),
		a.totalsCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// openStore connects to the configured backend.
func (a *app) openStore(ctx context.Context) (storage.Store, error) {
	var (
		store *sqlstore.Store
		err   error
	)
	switch a.cfg.Database.Driver {
	case config.DriverPostgres:
		store, err = postgres.New(ctx, a.cfg.Database.DSN)
	case config.DriverSQLite:
		store, err = sqlite.New(a.cfg.Database.Path)
	default:
		err = fmt.Errorf("unsupported database driver %q", a.cfg.Database.Driver)
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("Storage initialized", "driver", a.cfg.Database.Driver)
	return store, nil
}

// withStore opens the store for the duration of fn.
func (a *app) withStore(cmd *cobra.Command, fn func(ctx context.Context, store storage.Store) error) error {
	ctx := cmd.Context()
	store, err := a.openStore(ctx)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()
	return fn(ctx, store)
}
