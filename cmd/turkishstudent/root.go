package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/turkishstudent/backend/internal/config"
	"github.com/turkishstudent/backend/internal/logger"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "turkishstudent",
		Short:         "TurkishStudent learning backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newImportVocabularyCmd(),
	)

	return root
}

// bootstrap loads configuration and initializes the global logger
func bootstrap() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}
