package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/turkishstudent/backend/internal/importer"
	"github.com/turkishstudent/backend/internal/logger"
	"github.com/turkishstudent/backend/internal/repositories"
	"github.com/turkishstudent/backend/internal/services"
	"go.uber.org/zap"
)

func newImportVocabularyCmd() *cobra.Command {
	var (
		file  string
		sheet string
	)

	cmd := &cobra.Command{
		Use:   "import-vocabulary",
		Short: "Import vocabulary entries from an .xlsx spreadsheet",
		Long: "Import vocabulary entries from an .xlsx spreadsheet. The first row names the fields " +
			"(turkishWord, englishTranslation, difficultyLevel, ...). Words that already exist are skipped.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if err := runMigrations(db, cfg.Migrations.Path); err != nil {
				return err
			}

			repo := repositories.NewVocabularyRepository(db, logger.Logger)
			svc := services.NewVocabularyService(repo, nil, logger.Logger)

			result, err := importer.New(svc, logger.Logger).ImportFile(cmd.Context(), file, sheet)
			if err != nil {
				return err
			}

			for _, rowErr := range result.Errors {
				logger.Logger.Warn("Row rejected",
					zap.Int("row", rowErr.Row),
					zap.String("message", rowErr.Message),
					zap.Strings("fields", rowErr.Violations.Fields()),
				)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "processed %d, created %d, skipped %d, failed %d\n",
				result.Processed, result.Created, result.Skipped, len(result.Errors))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the .xlsx file")
	cmd.Flags().StringVar(&sheet, "sheet", importer.DefaultSheet, "sheet to read")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
