package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turkishstudent/backend/internal/models"
	"github.com/turkishstudent/backend/internal/validation"
	"go.uber.org/zap"
)

// mockGrammarRepository is a mock implementation of GrammarRepository
type mockGrammarRepository struct {
	items      []models.GrammarListItem
	total      int
	point      *models.GrammarPoint
	err        error
	lastFilter models.GrammarFilter
	created    *models.GrammarPoint
	lastUpdate *models.UpdateGrammarRequest
}

func (m *mockGrammarRepository) List(ctx context.Context, filter models.GrammarFilter) ([]models.GrammarListItem, int, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.items, m.total, nil
}

func (m *mockGrammarRepository) GetByID(ctx context.Context, id string) (*models.GrammarPoint, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.point, nil
}

func (m *mockGrammarRepository) Create(ctx context.Context, point *models.GrammarPoint) error {
	if m.err != nil {
		return m.err
	}
	point.ID = testID
	m.created = point
	return nil
}

func (m *mockGrammarRepository) Update(ctx context.Context, id string, req *models.UpdateGrammarRequest) error {
	m.lastUpdate = req
	return m.err
}

func (m *mockGrammarRepository) Delete(ctx context.Context, id string) error {
	return m.err
}

func TestGrammarService_List(t *testing.T) {
	repo := &mockGrammarRepository{items: []models.GrammarListItem{{ID: testID, Title: "Plural"}}, total: 1}
	svc := NewGrammarService(repo, nil, zap.NewNop())

	page, err := svc.List(context.Background(), map[string]any{"grammarType": "suffix", "limit": "10"})

	require.NoError(t, err)
	assert.Equal(t, models.GrammarFilter{GrammarType: "suffix", Page: 1, Limit: 10}, repo.lastFilter)
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Items, 1)
}

func TestGrammarService_Create(t *testing.T) {
	tests := []struct {
		name          string
		payload       map[string]any
		mockRepo      *mockGrammarRepository
		expectedIndex *int
		expectedError bool
		validate      func(*testing.T, *models.GrammarPoint)
	}{
		{
			name: "success",
			payload: map[string]any{
				"title":       "Vowel harmony",
				"explanation": "Suffix vowels follow the last stem vowel",
				"examples":    map[string]any{"evler": "houses"},
				"rules":       []any{"a, ı, o, u take -lar", "e, i, ö, ü take -ler"},
			},
			mockRepo: &mockGrammarRepository{},
			validate: func(t *testing.T, g *models.GrammarPoint) {
				assert.Equal(t, testID, g.ID)
				assert.JSONEq(t, `{"evler":"houses"}`, string(g.Examples))
				assert.Len(t, g.Rules, 2)
				assert.Nil(t, g.Exceptions)
			},
		},
		{
			name: "bad rule element",
			payload: map[string]any{
				"title":       "t",
				"explanation": "e",
				"rules":       []any{"a", 3, "c"},
			},
			mockRepo:      &mockGrammarRepository{},
			expectedIndex: intPtr(1),
		},
		{
			name:          "repository error",
			payload:       map[string]any{"title": "t", "explanation": "e"},
			mockRepo:      &mockGrammarRepository{err: errors.New("database error")},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := &mockViolationObserver{}
			svc := NewGrammarService(tt.mockRepo, obs, zap.NewNop())

			point, err := svc.Create(context.Background(), tt.payload)

			switch {
			case tt.expectedIndex != nil:
				violations, ok := validation.AsViolations(err)
				require.True(t, ok)
				require.Len(t, violations, 1)
				assert.Equal(t, validation.ViolationElementType, violations[0].Kind)
				assert.Equal(t, tt.expectedIndex, violations[0].Index)
				assert.Equal(t, []string{"grammar"}, obs.schemas)
			case tt.expectedError:
				assert.Error(t, err)
				assert.Nil(t, point)
			default:
				require.NoError(t, err)
				tt.validate(t, point)
			}
		})
	}
}

func TestGrammarService_Update(t *testing.T) {
	tests := []struct {
		name          string
		payload       map[string]any
		mockRepo      *mockGrammarRepository
		expectedError error
	}{
		{
			name:     "success",
			payload:  map[string]any{"exceptions": []any{"kalem: kalemler"}},
			mockRepo: &mockGrammarRepository{point: &models.GrammarPoint{ID: testID}},
		},
		{
			name:          "empty payload",
			payload:       map[string]any{},
			mockRepo:      &mockGrammarRepository{},
			expectedError: models.ErrNoFieldsToUpdate,
		},
		{
			name:          "not found",
			payload:       map[string]any{"title": "Plural"},
			mockRepo:      &mockGrammarRepository{err: models.ErrGrammarPointNotFound},
			expectedError: models.ErrGrammarPointNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewGrammarService(tt.mockRepo, nil, zap.NewNop())

			point, err := svc.Update(context.Background(), testID, tt.payload)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, point)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, tt.mockRepo.lastUpdate.Exceptions)
			assert.Equal(t, []string{"kalem: kalemler"}, *tt.mockRepo.lastUpdate.Exceptions)
			assert.Nil(t, tt.mockRepo.lastUpdate.Rules)
		})
	}
}

func TestGrammarService_GetAndDelete_InvalidID(t *testing.T) {
	svc := NewGrammarService(&mockGrammarRepository{}, nil, zap.NewNop())

	_, err := svc.Get(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, models.ErrInvalidID)

	err = svc.Delete(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, models.ErrInvalidID)
}
