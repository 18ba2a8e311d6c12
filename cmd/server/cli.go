package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/classifieds-api/internal/config"
	"github.com/phrazzld/classifieds-api/internal/platform/logger"
	"github.com/phrazzld/classifieds-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

// cliState carries values shared by every sub-command once the persistent
// pre-run has loaded them.
type cliState struct {
	configFile string
	cfg        *config.Config
	logger     *slog.Logger
}

// migrateCommands are the goose commands exposed under "migrate".
var migrateCommands = []struct {
	name  string
	short string
}{
	{"up", "Apply all pending migrations"},
	{"down", "Roll back the most recent migration"},
	{"status", "Print the status of every migration"},
	{"version", "Print the current schema version"},
}

func newRootCmd() *cobra.Command {
	state := &cliState{}

	root := &cobra.Command{
		Use:   "classifieds-api",
		Short: "Classifieds ads HTTP API",
		Long: `classifieds-api serves a JSON API where users register, log in with a
bearer token, and create, read and delete classified ads.

Running it without a sub-command is the same as "serve".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return state.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.serve(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&state.configFile, "config", "", "config file (default is ./config.yaml)")

	root.AddCommand(newServeCmd(state), newMigrateCmd(state))
	return root
}

func newServeCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.serve(cmd.Context())
		},
	}
}

func newMigrateCmd(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	for _, mc := range migrateCommands {
		name := mc.name
		cmd.AddCommand(&cobra.Command{
			Use:   name,
			Short: mc.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return state.migrate(cmd.Context(), name)
			},
		})
	}
	return cmd
}

func (s *cliState) load() error {
	cfg, err := config.Load(s.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	s.cfg = cfg
	s.logger = l
	return nil
}

// serve opens the database, brings the schema up to date and runs the HTTP
// listeners until ctx is cancelled.
func (s *cliState) serve(ctx context.Context) error {
	db, err := setupAppDatabase(ctx, s.cfg.Database, s.logger)
	if err != nil {
		return err
	}

	if err := postgres.RunMigrations(ctx, db, s.logger, "up"); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	app, err := newApplication(s.cfg, s.logger, db)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer app.cleanup()

	return app.run(ctx)
}

func (s *cliState) migrate(ctx context.Context, command string) error {
	db, err := setupAppDatabase(ctx, s.cfg.Database, s.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			s.logger.Error("failed to close database", "error", err)
		}
	}()

	return postgres.RunMigrations(ctx, db, s.logger, command)
}
