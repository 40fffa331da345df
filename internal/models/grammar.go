package models

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/turkishstudent/backend/internal/validation"
)

// GrammarSchema declares the payload accepted when creating a grammar point.
// "examples" has no declared shape and is stored as given.
var GrammarSchema = validation.MustSchema("grammar",
	validation.String("title").Require(),
	validation.String("explanation").Require(),
	validation.String("description"),
	validation.String("grammarType"),
	validation.Integer("difficultyLevel").Min(MinDifficultyLevel).Max(MaxDifficultyLevel),
	validation.Any("examples"),
	validation.StringList("rules"),
	validation.StringList("exceptions"),
	validation.StringList("relatedPoints"),
	validation.String("lessonId"),
)

// GrammarUpdateSchema declares the payload accepted for partial updates
var GrammarUpdateSchema = GrammarSchema.Partial()

// GrammarFilterSchema declares the query string accepted by grammar listings
var GrammarFilterSchema = validation.MustSchema("grammar_filter",
	validation.String("search"),
	validation.Integer("difficultyLevel").Min(MinDifficultyLevel),
	validation.String("grammarType"),
	validation.Integer("page").Min(1).WithDefault(1),
	validation.Integer("limit").Min(1).WithDefault(DefaultPageLimit),
)

// GrammarPoint represents a grammar topic with rules and examples
type GrammarPoint struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Explanation     string          `json:"explanation"`
	Description     string          `json:"description,omitempty"`
	GrammarType     string          `json:"grammarType,omitempty"`
	DifficultyLevel *int            `json:"difficultyLevel,omitempty"` // 1-5
	Examples        json.RawMessage `json:"examples,omitempty"`
	Rules           []string        `json:"rules,omitempty"`
	Exceptions      []string        `json:"exceptions,omitempty"`
	RelatedPoints   []string        `json:"relatedPoints,omitempty"`
	LessonID        string          `json:"lessonId,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// GrammarListItem represents a grammar point in list responses
type GrammarListItem struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	GrammarType     string `json:"grammarType,omitempty"`
	DifficultyLevel *int   `json:"difficultyLevel,omitempty"`
}

// CreateGrammarRequest represents a validated request to create a grammar point
type CreateGrammarRequest struct {
	Title           string
	Explanation     string
	Description     *string
	GrammarType     *string
	DifficultyLevel *int
	Examples        json.RawMessage // nil when absent or null
	Rules           []string
	Exceptions      []string
	RelatedPoints   []string
	LessonID        *string
}

// UpdateGrammarRequest represents a validated partial update. Nil fields are left unchanged.
type UpdateGrammarRequest struct {
	Title           *string
	Explanation     *string
	Description     *string
	GrammarType     *string
	DifficultyLevel *int
	Examples        *json.RawMessage // set to "null" to clear
	Rules           *[]string
	Exceptions      *[]string
	RelatedPoints   *[]string
	LessonID        *string
}

// GrammarFilter represents validated listing parameters with pagination applied
type GrammarFilter struct {
	Search          string
	DifficultyLevel *int
	GrammarType     string
	Page            int
	Limit           int
}

// NewCreateGrammarRequest builds a request from a record validated by GrammarSchema
func NewCreateGrammarRequest(rec validation.Record) (*CreateGrammarRequest, error) {
	title, _ := rec.String("title")
	explanation, _ := rec.String("explanation")

	req := &CreateGrammarRequest{
		Title:           title,
		Explanation:     explanation,
		Description:     optString(rec, "description"),
		GrammarType:     optString(rec, "grammarType"),
		DifficultyLevel: optInt(rec, "difficultyLevel"),
		LessonID:        optString(rec, "lessonId"),
	}
	if rules := optStrings(rec, "rules"); rules != nil {
		req.Rules = *rules
	}
	if exceptions := optStrings(rec, "exceptions"); exceptions != nil {
		req.Exceptions = *exceptions
	}
	if related := optStrings(rec, "relatedPoints"); related != nil {
		req.RelatedPoints = *related
	}

	if examples, ok := rec.Get("examples"); ok && examples != nil {
		raw, err := json.Marshal(examples)
		if err != nil {
			return nil, fmt.Errorf("failed to encode examples: %w", err)
		}
		req.Examples = raw
	}

	return req, nil
}

// NewUpdateGrammarRequest builds a request from a record validated by GrammarUpdateSchema
func NewUpdateGrammarRequest(rec validation.Record) (*UpdateGrammarRequest, error) {
	req := &UpdateGrammarRequest{
		Title:           optString(rec, "title"),
		Explanation:     optString(rec, "explanation"),
		Description:     optString(rec, "description"),
		GrammarType:     optString(rec, "grammarType"),
		DifficultyLevel: optInt(rec, "difficultyLevel"),
		Rules:           optStrings(rec, "rules"),
		Exceptions:      optStrings(rec, "exceptions"),
		RelatedPoints:   optStrings(rec, "relatedPoints"),
		LessonID:        optString(rec, "lessonId"),
	}

	if examples, ok := rec.Get("examples"); ok {
		raw, err := json.Marshal(examples)
		if err != nil {
			return nil, fmt.Errorf("failed to encode examples: %w", err)
		}
		msg := json.RawMessage(raw)
		req.Examples = &msg
	}

	return req, nil
}

// NewGrammarFilter builds a filter from a record validated by GrammarFilterSchema
func NewGrammarFilter(rec validation.Record) GrammarFilter {
	search, _ := rec.String("search")
	grammarType, _ := rec.String("grammarType")
	page, limit := pagination(rec)

	return GrammarFilter{
		Search:          search,
		DifficultyLevel: optInt(rec, "difficultyLevel"),
		GrammarType:     grammarType,
		Page:            page,
		Limit:           limit,
	}
}

// Offset returns the number of rows to skip for the requested page
func (f GrammarFilter) Offset() int {
	return pageOffset(f.Page, f.Limit)
}
