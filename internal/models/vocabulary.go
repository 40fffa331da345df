package models

import (
	"time"

	"github.com/turkishstudent/backend/internal/validation"
)

// VocabularySchema declares the payload accepted when creating a vocabulary entry
var VocabularySchema = validation.MustSchema("vocabulary",
	validation.String("turkishWord").Require(),
	validation.String("englishTranslation").Require(),
	validation.String("pronunciation"),
	validation.String("partOfSpeech"),
	validation.String("usageContext"),
	validation.String("exampleSentenceTr"),
	validation.String("exampleSentenceEn"),
	validation.Integer("difficultyLevel").Min(MinDifficultyLevel).Max(MaxDifficultyLevel),
	validation.Number("frequencyRank"),
	validation.URL("audioUrl"),
	validation.URL("imageUrl"),
	validation.String("lessonId"),
	validation.String("categoryId"),
)

// VocabularyUpdateSchema declares the payload accepted for partial updates
var VocabularyUpdateSchema = VocabularySchema.Partial()

// VocabularyFilterSchema declares the query string accepted by vocabulary listings
var VocabularyFilterSchema = validation.MustSchema("vocabulary_filter",
	validation.String("search"),
	validation.Integer("difficultyLevel").Min(MinDifficultyLevel),
	validation.String("partOfSpeech"),
	validation.String("categoryId"),
	validation.Integer("page").Min(1).WithDefault(1),
	validation.Integer("limit").Min(1).WithDefault(DefaultPageLimit),
)

// Vocabulary represents a Turkish word with its translation and learning metadata
type Vocabulary struct {
	ID                 string    `json:"id"`
	TurkishWord        string    `json:"turkishWord"`
	EnglishTranslation string    `json:"englishTranslation"`
	Pronunciation      string    `json:"pronunciation,omitempty"`
	PartOfSpeech       string    `json:"partOfSpeech,omitempty"`
	UsageContext       string    `json:"usageContext,omitempty"`
	ExampleSentenceTr  string    `json:"exampleSentenceTr,omitempty"`
	ExampleSentenceEn  string    `json:"exampleSentenceEn,omitempty"`
	DifficultyLevel    *int      `json:"difficultyLevel,omitempty"` // 1-5
	FrequencyRank      *float64  `json:"frequencyRank,omitempty"`
	AudioURL           string    `json:"audioUrl,omitempty"`
	ImageURL           string    `json:"imageUrl,omitempty"`
	LessonID           string    `json:"lessonId,omitempty"`
	CategoryID         string    `json:"categoryId,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// VocabularyListItem represents a vocabulary entry in list responses
type VocabularyListItem struct {
	ID                 string `json:"id"`
	TurkishWord        string `json:"turkishWord"`
	EnglishTranslation string `json:"englishTranslation"`
	PartOfSpeech       string `json:"partOfSpeech,omitempty"`
	DifficultyLevel    *int   `json:"difficultyLevel,omitempty"`
}

// CreateVocabularyRequest represents a validated request to create a vocabulary entry
type CreateVocabularyRequest struct {
	TurkishWord        string
	EnglishTranslation string
	Pronunciation      *string
	PartOfSpeech       *string
	UsageContext       *string
	ExampleSentenceTr  *string
	ExampleSentenceEn  *string
	DifficultyLevel    *int
	FrequencyRank      *float64
	AudioURL           *string
	ImageURL           *string
	LessonID           *string
	CategoryID         *string
}

// UpdateVocabularyRequest represents a validated partial update. Nil fields are left unchanged.
type UpdateVocabularyRequest struct {
	TurkishWord        *string
	EnglishTranslation *string
	Pronunciation      *string
	PartOfSpeech       *string
	UsageContext       *string
	ExampleSentenceTr  *string
	ExampleSentenceEn  *string
	DifficultyLevel    *int
	FrequencyRank      *float64
	AudioURL           *string
	ImageURL           *string
	LessonID           *string
	CategoryID         *string
}

// VocabularyFilter represents validated listing parameters with pagination applied
type VocabularyFilter struct {
	Search          string
	DifficultyLevel *int
	PartOfSpeech    string
	CategoryID      string
	Page            int
	Limit           int
}

// NewCreateVocabularyRequest builds a request from a record validated by VocabularySchema
func NewCreateVocabularyRequest(rec validation.Record) *CreateVocabularyRequest {
	turkishWord, _ := rec.String("turkishWord")
	englishTranslation, _ := rec.String("englishTranslation")

	return &CreateVocabularyRequest{
		TurkishWord:        turkishWord,
		EnglishTranslation: englishTranslation,
		Pronunciation:      optString(rec, "pronunciation"),
		PartOfSpeech:       optString(rec, "partOfSpeech"),
		UsageContext:       optString(rec, "usageContext"),
		ExampleSentenceTr:  optString(rec, "exampleSentenceTr"),
		ExampleSentenceEn:  optString(rec, "exampleSentenceEn"),
		DifficultyLevel:    optInt(rec, "difficultyLevel"),
		FrequencyRank:      optFloat(rec, "frequencyRank"),
		AudioURL:           optString(rec, "audioUrl"),
		ImageURL:           optString(rec, "imageUrl"),
		LessonID:           optString(rec, "lessonId"),
		CategoryID:         optString(rec, "categoryId"),
	}
}

// NewUpdateVocabularyRequest builds a request from a record validated by VocabularyUpdateSchema
func NewUpdateVocabularyRequest(rec validation.Record) *UpdateVocabularyRequest {
	return &UpdateVocabularyRequest{
		TurkishWord:        optString(rec, "turkishWord"),
		EnglishTranslation: optString(rec, "englishTranslation"),
		Pronunciation:      optString(rec, "pronunciation"),
		PartOfSpeech:       optString(rec, "partOfSpeech"),
		UsageContext:       optString(rec, "usageContext"),
		ExampleSentenceTr:  optString(rec, "exampleSentenceTr"),
		ExampleSentenceEn:  optString(rec, "exampleSentenceEn"),
		DifficultyLevel:    optInt(rec, "difficultyLevel"),
		FrequencyRank:      optFloat(rec, "frequencyRank"),
		AudioURL:           optString(rec, "audioUrl"),
		ImageURL:           optString(rec, "imageUrl"),
		LessonID:           optString(rec, "lessonId"),
		CategoryID:         optString(rec, "categoryId"),
	}
}

// NewVocabularyFilter builds a filter from a record validated by VocabularyFilterSchema
func NewVocabularyFilter(rec validation.Record) VocabularyFilter {
	search, _ := rec.String("search")
	partOfSpeech, _ := rec.String("partOfSpeech")
	categoryID, _ := rec.String("categoryId")
	page, limit := pagination(rec)

	return VocabularyFilter{
		Search:          search,
		DifficultyLevel: optInt(rec, "difficultyLevel"),
		PartOfSpeech:    partOfSpeech,
		CategoryID:      categoryID,
		Page:            page,
		Limit:           limit,
	}
}

// Offset returns the number of rows to skip for the requested page
func (f VocabularyFilter) Offset() int {
	return pageOffset(f.Page, f.Limit)
}
