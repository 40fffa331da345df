package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/turkishstudent/backend/internal/models"
	"go.uber.org/zap"
)

// GrammarRepository is the interface that wraps methods for grammar_points table data access
type GrammarRepository interface {
	// List returns one page of grammar points matching the filter together with the total number of matches.
	List(ctx context.Context, filter models.GrammarFilter) ([]models.GrammarListItem, int, error)
	// GetByID returns models.ErrGrammarPointNotFound when no grammar point has the given id.
	GetByID(ctx context.Context, id string) (*models.GrammarPoint, error)
	// Create inserts the grammar point and fills its ID and timestamps.
	Create(ctx context.Context, point *models.GrammarPoint) error
	// Update writes the non-nil fields of the request.
	Update(ctx context.Context, id string, req *models.UpdateGrammarRequest) error
	// Delete returns models.ErrGrammarPointNotFound when no grammar point has the given id.
	Delete(ctx context.Context, id string) error
}

type grammarService struct {
	repo     GrammarRepository
	observer ViolationObserver
	logger   *zap.Logger
}

// NewGrammarService creates a new grammar service. A nil observer discards violations.
func NewGrammarService(repo GrammarRepository, observer ViolationObserver, logger *zap.Logger) *grammarService {
	if observer == nil {
		observer = nopObserver{}
	}
	return &grammarService{
		repo:     repo,
		observer: observer,
		logger:   logger,
	}
}

// List validates the listing parameters and returns the requested page
func (s *grammarService) List(ctx context.Context, query map[string]any) (*models.Page[models.GrammarListItem], error) {
	rec, err := validate(s.observer, models.GrammarFilterSchema, query)
	if err != nil {
		return nil, err
	}
	filter := models.NewGrammarFilter(rec)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list grammar points", zap.Error(err))
		return nil, fmt.Errorf("failed to list grammar points: %w", err)
	}

	page := models.NewPage(items, total, filter.Page, filter.Limit)
	return &page, nil
}

// Get retrieves a grammar point by ID
func (s *grammarService) Get(ctx context.Context, id string) (*models.GrammarPoint, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Create validates the payload and stores a new grammar point
func (s *grammarService) Create(ctx context.Context, payload map[string]any) (*models.GrammarPoint, error) {
	rec, err := validate(s.observer, models.GrammarSchema, payload)
	if err != nil {
		return nil, err
	}
	req, err := models.NewCreateGrammarRequest(rec)
	if err != nil {
		return nil, err
	}

	point := &models.GrammarPoint{
		Title:           req.Title,
		Explanation:     req.Explanation,
		Description:     deref(req.Description),
		GrammarType:     deref(req.GrammarType),
		DifficultyLevel: req.DifficultyLevel,
		Examples:        req.Examples,
		Rules:           req.Rules,
		Exceptions:      req.Exceptions,
		RelatedPoints:   req.RelatedPoints,
		LessonID:        deref(req.LessonID),
	}
	if err := s.repo.Create(ctx, point); err != nil {
		s.logger.Error("failed to create grammar point", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("failed to create grammar point: %w", err)
	}

	return point, nil
}

// Update validates the partial payload, applies it and returns the updated grammar point
func (s *grammarService) Update(ctx context.Context, id string, payload map[string]any) (*models.GrammarPoint, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	rec, err := validate(s.observer, models.GrammarUpdateSchema, payload)
	if err != nil {
		return nil, err
	}
	if rec.Len() == 0 {
		return nil, models.ErrNoFieldsToUpdate
	}
	req, err := models.NewUpdateGrammarRequest(rec)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, req); err != nil {
		if !errors.Is(err, models.ErrGrammarPointNotFound) {
			s.logger.Error("failed to update grammar point", zap.Error(err), zap.String("id", id))
		}
		return nil, fmt.Errorf("failed to update grammar point: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}

// Delete removes a grammar point by ID
func (s *grammarService) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete grammar point: %w", err)
	}
	return nil
}
