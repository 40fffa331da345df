package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/turkishstudent/backend/internal/logger"
	"go.uber.org/zap"
)

func newMigrateCmd() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1")
			}

			cfg, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			db, err := connectDB(cfg.DSN())
			if err != nil {
				return err
			}
			defer db.Close()

			if args[0] == "down" {
				if err := rollbackMigrations(db, cfg.Migrations.Path, steps); err != nil {
					return err
				}
				logger.Logger.Info("Migrations rolled back", zap.Int("steps", steps))
				return nil
			}

			if err := runMigrations(db, cfg.Migrations.Path); err != nil {
				return err
			}
			logger.Logger.Info("Migrations applied")
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back with down")

	return cmd
}
