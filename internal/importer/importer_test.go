package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turkishstudent/backend/internal/models"
	"github.com/turkishstudent/backend/internal/validation"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// mockCreator is a mock implementation of VocabularyCreator
type mockCreator struct {
	payloads []map[string]any
	errs     map[string]error
}

func (m *mockCreator) Create(ctx context.Context, payload map[string]any) (*models.Vocabulary, error) {
	m.payloads = append(m.payloads, payload)
	word, _ := payload["turkishWord"].(string)
	if err := m.errs[word]; err != nil {
		return nil, err
	}
	return &models.Vocabulary{TurkishWord: word}, nil
}

func buildWorkbook(t *testing.T, sheet string, rows [][]any) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	if sheet != DefaultSheet {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	return f
}

func workbookBytes(t *testing.T, sheet string, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := buildWorkbook(t, sheet, rows)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImporter_Import(t *testing.T) {
	creator := &mockCreator{errs: map[string]error{
		"ev": fmt.Errorf("%w: 'ev'", models.ErrVocabularyExists),
		"su": validation.Violations{{Field: "difficultyLevel", Kind: validation.ViolationRange}},
		"göz": errors.New("database error"),
	}}
	buf := workbookBytes(t, DefaultSheet, [][]any{
		{"turkishWord", "englishTranslation", "difficultyLevel", "", "frequencyRank"},
		{"merhaba", "hello", 1, "ignored", 12.5},
		{"ev", "house", 1},
		{nil, nil, nil, "under a blank header"},
		{"su", "water", 9},
		{" göz ", "eye"},
	})

	result, err := New(creator, zap.NewNop()).Import(context.Background(), buf, "")
	require.NoError(t, err)

	assert.Equal(t, 4, result.Processed)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 2)

	assert.Equal(t, 5, result.Errors[0].Row)
	assert.Equal(t, "validation failed", result.Errors[0].Message)
	require.Len(t, result.Errors[0].Violations, 1)
	assert.Equal(t, "difficultyLevel", result.Errors[0].Violations[0].Field)

	assert.Equal(t, 6, result.Errors[1].Row)
	assert.Equal(t, "database error", result.Errors[1].Message)

	require.Len(t, creator.payloads, 4)
	assert.Equal(t, map[string]any{
		"turkishWord":        "merhaba",
		"englishTranslation": "hello",
		"difficultyLevel":    "1",
		"frequencyRank":      "12.5",
	}, creator.payloads[0])
	assert.Equal(t, "göz", creator.payloads[3]["turkishWord"])
}

func TestImporter_ImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.xlsx")
	f := buildWorkbook(t, "Words", [][]any{
		{"turkishWord", "englishTranslation"},
		{"kitap", "book"},
		{"kalem", "pen"},
	})
	require.NoError(t, f.SaveAs(path))

	creator := &mockCreator{}
	result, err := New(creator, zap.NewNop()).ImportFile(context.Background(), path, "Words")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 2, result.Created)
	assert.Empty(t, result.Errors)
}

func TestImporter_Errors(t *testing.T) {
	tests := []struct {
		name  string
		rows  [][]any
		sheet string
		err   error
	}{
		{
			name:  "empty sheet",
			rows:  nil,
			sheet: DefaultSheet,
			err:   ErrMissingHeader,
		},
		{
			name:  "blank header",
			rows:  [][]any{{"", " "}, {"a", "b"}},
			sheet: DefaultSheet,
			err:   ErrMissingHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := workbookBytes(t, DefaultSheet, tt.rows)

			_, err := New(&mockCreator{}, zap.NewNop()).Import(context.Background(), buf, tt.sheet)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("unknown sheet", func(t *testing.T) {
		buf := workbookBytes(t, DefaultSheet, [][]any{{"turkishWord"}})

		_, err := New(&mockCreator{}, zap.NewNop()).Import(context.Background(), buf, "Missing")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := New(&mockCreator{}, zap.NewNop()).ImportFile(context.Background(), filepath.Join(t.TempDir(), "nope.xlsx"), "")
		assert.Error(t, err)
	})
}

func TestRowPayload(t *testing.T) {
	header := []string{"turkishWord", "", "englishTranslation"}

	assert.Equal(t, map[string]any{"turkishWord": "ev"}, rowPayload(header, []string{"ev", "x", "  ", "extra"}))
	assert.Empty(t, rowPayload(header, []string{"", ""}))
}
