// Package importer loads vocabulary entries from spreadsheets.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/turkishstudent/backend/internal/models"
	"github.com/turkishstudent/backend/internal/validation"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// DefaultSheet is the sheet read when none is given
const DefaultSheet = "Sheet1"

var ErrMissingHeader = errors.New("sheet has no header row")

// VocabularyCreator is the write side of the vocabulary service used by imports
type VocabularyCreator interface {
	Create(ctx context.Context, payload map[string]any) (*models.Vocabulary, error)
}

// RowError describes a rejected row. Row is the 1-based spreadsheet row number.
type RowError struct {
	Row        int                   `json:"row"`
	Message    string                `json:"message"`
	Violations validation.Violations `json:"violations,omitempty"`
}

// ImportResult holds the outcome of an import
type ImportResult struct {
	Processed int        `json:"processed"`
	Created   int        `json:"created"`
	Skipped   int        `json:"skipped"`
	Errors    []RowError `json:"errors"`
}

// Importer feeds spreadsheet rows through the vocabulary service
type Importer struct {
	service VocabularyCreator
	logger  *zap.Logger
}

// New creates a new importer
func New(service VocabularyCreator, logger *zap.Logger) *Importer {
	return &Importer{
		service: service,
		logger:  logger,
	}
}

// ImportFile imports vocabulary from an .xlsx file on disk
func (i *Importer) ImportFile(ctx context.Context, path, sheet string) (*ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	return i.importSheet(ctx, f, sheet)
}

// Import imports vocabulary from an .xlsx stream
func (i *Importer) Import(ctx context.Context, r io.Reader, sheet string) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	return i.importSheet(ctx, f, sheet)
}

func (i *Importer) importSheet(ctx context.Context, f *excelize.File, sheet string) (*ImportResult, error) {
	if sheet == "" {
		sheet = DefaultSheet
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrMissingHeader
	}

	header := lo.Map(rows[0], func(name string, _ int) string { return strings.TrimSpace(name) })
	if lo.EveryBy(header, func(name string) bool { return name == "" }) {
		return nil, ErrMissingHeader
	}

	result := &ImportResult{Errors: make([]RowError, 0)}
	for idx, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		payload := rowPayload(header, row)
		if len(payload) == 0 {
			continue
		}
		rowNum := idx + 2
		result.Processed++

		if _, err := i.service.Create(ctx, payload); err != nil {
			i.recordFailure(result, rowNum, err)
			continue
		}
		result.Created++
	}

	i.logger.Info("vocabulary import finished",
		zap.String("sheet", sheet),
		zap.Int("processed", result.Processed),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", len(result.Errors)),
	)

	return result, nil
}

func (i *Importer) recordFailure(result *ImportResult, row int, err error) {
	if errors.Is(err, models.ErrVocabularyExists) {
		result.Skipped++
		return
	}
	if violations, ok := validation.AsViolations(err); ok {
		result.Errors = append(result.Errors, RowError{Row: row, Message: "validation failed", Violations: violations})
		return
	}
	i.logger.Error("failed to import vocabulary row", zap.Int("row", row), zap.Error(err))
	result.Errors = append(result.Errors, RowError{Row: row, Message: err.Error()})
}

// rowPayload maps non-empty cells to their header names. Cells under a blank header are ignored.
func rowPayload(header, row []string) map[string]any {
	payload := make(map[string]any, len(header))
	for col, cell := range row {
		if col >= len(header) || header[col] == "" {
			continue
		}
		if cell = strings.TrimSpace(cell); cell != "" {
			payload[header[col]] = cell
		}
	}
	return payload
}
