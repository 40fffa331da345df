package models

import (
	"errors"
	"math"

	"github.com/turkishstudent/backend/internal/validation"
)

const (
	// MinDifficultyLevel is the easiest difficulty level
	MinDifficultyLevel = 1
	// MaxDifficultyLevel is the hardest difficulty level
	MaxDifficultyLevel = 5
	// DefaultPageLimit is the page size used when a listing does not ask for one
	DefaultPageLimit = 20
)

var (
	ErrVocabularyNotFound   = errors.New("vocabulary entry not found")
	ErrVocabularyExists     = errors.New("vocabulary entry already exists")
	ErrGrammarPointNotFound = errors.New("grammar point not found")
	ErrNoFieldsToUpdate     = errors.New("no fields to update")
	ErrInvalidID            = errors.New("invalid id")
)

// Page represents one page of a paginated listing
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// pageOffset is (page-1)*limit, clamped to math.MaxInt when the product overflows
func pageOffset(page, limit int) int {
	if page <= 1 || limit <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// NewPage wraps items with pagination metadata
func NewPage[T any](items []T, total, page, limit int) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if limit > 0 && total > 0 {
		totalPages = total / limit
		if total%limit != 0 {
			totalPages++
		}
	}
	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

func pagination(rec validation.Record) (int, int) {
	page, ok := rec.Int("page")
	if !ok {
		page = 1
	}
	limit, ok := rec.Int("limit")
	if !ok {
		limit = DefaultPageLimit
	}
	return page, limit
}

func optString(rec validation.Record, key string) *string {
	if v, ok := rec.String(key); ok {
		return &v
	}
	return nil
}

func optInt(rec validation.Record, key string) *int {
	if v, ok := rec.Int(key); ok {
		return &v
	}
	return nil
}

func optFloat(rec validation.Record, key string) *float64 {
	if v, ok := rec.Float(key); ok {
		return &v
	}
	return nil
}

func optStrings(rec validation.Record, key string) *[]string {
	if v, ok := rec.Strings(key); ok {
		return &v
	}
	return nil
}
