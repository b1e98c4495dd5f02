package cli

import (
	"context"
	"database/sql"
	"fmt"

	"wordregistry/internal/config"
	"wordregistry/internal/repository/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewMigrateCommand creates the migrate command and its up/down subcommands
func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
		Long: `Apply or roll back the PostgreSQL schema for the words table.

serve applies pending migrations on startup; use this command to run them
ahead of a deploy or to roll back.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), func(m migrator) error { return m.up() })
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be positive, got %d", steps)
			}
			return runMigrate(cmd.Context(), func(m migrator) error { return m.down(steps) })
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	cmd.AddCommand(down)

	return cmd
}

// migrator binds a connected database to the migration helpers
type migrator struct {
	db     *sql.DB
	logger *zap.Logger
}

func (m migrator) up() error {
	return postgres.MigrateUp(m.db, m.logger)
}

func (m migrator) down(steps int) error {
	return postgres.MigrateDown(m.db, steps, m.logger)
}

func runMigrate(ctx context.Context, run func(migrator) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	db, err := postgres.Connect(ctx, cfg.DatabaseURL, postgres.DefaultConnectOptions, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	return run(migrator{db: db, logger: logger})
}
