package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/turkishstudent/backend/internal/models"
	"go.uber.org/zap"
)

// VocabularyRepository is the interface that wraps methods for vocabulary table data access
type VocabularyRepository interface {
	// List returns one page of entries matching the filter together with the total number of matches.
	List(ctx context.Context, filter models.VocabularyFilter) ([]models.VocabularyListItem, int, error)
	// GetByID returns models.ErrVocabularyNotFound when no entry has the given id.
	GetByID(ctx context.Context, id string) (*models.Vocabulary, error)
	// ExistsByWord checks if an entry with the same Turkish word exists.
	ExistsByWord(ctx context.Context, word string) (bool, error)
	// Create inserts the entry and fills its ID and timestamps.
	Create(ctx context.Context, entry *models.Vocabulary) error
	// Update writes the non-nil fields of the request.
	//
	// Returns models.ErrNoFieldsToUpdate for an empty request and models.ErrVocabularyNotFound for an unknown id.
	Update(ctx context.Context, id string, req *models.UpdateVocabularyRequest) error
	// Delete returns models.ErrVocabularyNotFound when no entry has the given id.
	Delete(ctx context.Context, id string) error
}

type vocabularyService struct {
	repo     VocabularyRepository
	observer ViolationObserver
	logger   *zap.Logger
}

// NewVocabularyService creates a new vocabulary service. A nil observer discards violations.
func NewVocabularyService(repo VocabularyRepository, observer ViolationObserver, logger *zap.Logger) *vocabularyService {
	if observer == nil {
		observer = nopObserver{}
	}
	return &vocabularyService{
		repo:     repo,
		observer: observer,
		logger:   logger,
	}
}

// List validates the listing parameters and returns the requested page
func (s *vocabularyService) List(ctx context.Context, query map[string]any) (*models.Page[models.VocabularyListItem], error) {
	rec, err := validate(s.observer, models.VocabularyFilterSchema, query)
	if err != nil {
		return nil, err
	}
	filter := models.NewVocabularyFilter(rec)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list vocabulary", zap.Error(err))
		return nil, fmt.Errorf("failed to list vocabulary: %w", err)
	}

	page := models.NewPage(items, total, filter.Page, filter.Limit)
	return &page, nil
}

// Get retrieves a vocabulary entry by ID
func (s *vocabularyService) Get(ctx context.Context, id string) (*models.Vocabulary, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Create validates the payload and stores a new entry.
// Returns models.ErrVocabularyExists when the Turkish word is already present.
func (s *vocabularyService) Create(ctx context.Context, payload map[string]any) (*models.Vocabulary, error) {
	rec, err := validate(s.observer, models.VocabularySchema, payload)
	if err != nil {
		return nil, err
	}
	req := models.NewCreateVocabularyRequest(rec)

	exists, err := s.repo.ExistsByWord(ctx, req.TurkishWord)
	if err != nil {
		return nil, fmt.Errorf("failed to check vocabulary existence: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: '%s'", models.ErrVocabularyExists, req.TurkishWord)
	}

	entry := &models.Vocabulary{
		TurkishWord:        req.TurkishWord,
		EnglishTranslation: req.EnglishTranslation,
		Pronunciation:      deref(req.Pronunciation),
		PartOfSpeech:       deref(req.PartOfSpeech),
		UsageContext:       deref(req.UsageContext),
		ExampleSentenceTr:  deref(req.ExampleSentenceTr),
		ExampleSentenceEn:  deref(req.ExampleSentenceEn),
		DifficultyLevel:    req.DifficultyLevel,
		FrequencyRank:      req.FrequencyRank,
		AudioURL:           deref(req.AudioURL),
		ImageURL:           deref(req.ImageURL),
		LessonID:           deref(req.LessonID),
		CategoryID:         deref(req.CategoryID),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("failed to create vocabulary", zap.Error(err), zap.String("turkish_word", req.TurkishWord))
		return nil, fmt.Errorf("failed to create vocabulary: %w", err)
	}

	return entry, nil
}

// Update validates the partial payload, applies it and returns the updated entry
func (s *vocabularyService) Update(ctx context.Context, id string, payload map[string]any) (*models.Vocabulary, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	rec, err := validate(s.observer, models.VocabularyUpdateSchema, payload)
	if err != nil {
		return nil, err
	}
	if rec.Len() == 0 {
		return nil, models.ErrNoFieldsToUpdate
	}
	req := models.NewUpdateVocabularyRequest(rec)

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.TurkishWord != nil && *req.TurkishWord != current.TurkishWord {
		exists, err := s.repo.ExistsByWord(ctx, *req.TurkishWord)
		if err != nil {
			return nil, fmt.Errorf("failed to check vocabulary existence: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: '%s'", models.ErrVocabularyExists, *req.TurkishWord)
		}
	}

	if err := s.repo.Update(ctx, id, req); err != nil {
		if !errors.Is(err, models.ErrVocabularyNotFound) {
			s.logger.Error("failed to update vocabulary", zap.Error(err), zap.String("id", id))
		}
		return nil, fmt.Errorf("failed to update vocabulary: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}

// Delete removes a vocabulary entry by ID
func (s *vocabularyService) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete vocabulary: %w", err)
	}
	return nil
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", models.ErrInvalidID, id)
	}
	return nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
