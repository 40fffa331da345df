package cache

import (
	"context"

	"github.com/turkishstudent/backend/internal/models"
	"github.com/turkishstudent/backend/internal/services"
)

// VocabularyRepository caches GetByID lookups of the wrapped repository.
// Writes evict the entry before and after reaching the wrapped repository.
type VocabularyRepository struct {
	services.VocabularyRepository
	store *Store
}

// NewVocabularyRepository wraps repo with a read-through cache
func NewVocabularyRepository(repo services.VocabularyRepository, store *Store) *VocabularyRepository {
	return &VocabularyRepository{
		VocabularyRepository: repo,
		store:                store,
	}
}

// GetByID returns the cached entry or loads and caches it
func (r *VocabularyRepository) GetByID(ctx context.Context, id string) (*models.Vocabulary, error) {
	var cached models.Vocabulary
	if r.store.Get(ctx, id, &cached) {
		return &cached, nil
	}

	entry, err := r.VocabularyRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store.Set(ctx, id, entry)
	return entry, nil
}

// Update writes through and evicts the entry
func (r *VocabularyRepository) Update(ctx context.Context, id string, req *models.UpdateVocabularyRequest) error {
	r.store.Invalidate(ctx, id)
	err := r.VocabularyRepository.Update(ctx, id, req)
	// A read racing the write may have cached the old row again.
	r.store.Invalidate(ctx, id)
	return err
}

// Delete removes the entry and evicts it
func (r *VocabularyRepository) Delete(ctx context.Context, id string) error {
	r.store.Invalidate(ctx, id)
	err := r.VocabularyRepository.Delete(ctx, id)
	// A read racing the write may have cached the old row again.
	r.store.Invalidate(ctx, id)
	return err
}

// GrammarRepository caches GetByID lookups of the wrapped repository
type GrammarRepository struct {
	services.GrammarRepository
	store *Store
}

// NewGrammarRepository wraps repo with a read-through cache
func NewGrammarRepository(repo services.GrammarRepository, store *Store) *GrammarRepository {
	return &GrammarRepository{
		GrammarRepository: repo,
		store:             store,
	}
}

// GetByID returns the cached grammar point or loads and caches it
func (r *GrammarRepository) GetByID(ctx context.Context, id string) (*models.GrammarPoint, error) {
	var cached models.GrammarPoint
	if r.store.Get(ctx, id, &cached) {
		return &cached, nil
	}

	point, err := r.GrammarRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store.Set(ctx, id, point)
	return point, nil
}

// Update writes through and evicts the grammar point
func (r *GrammarRepository) Update(ctx context.Context, id string, req *models.UpdateGrammarRequest) error {
	r.store.Invalidate(ctx, id)
	err := r.GrammarRepository.Update(ctx, id, req)
	// A read racing the write may have cached the old row again.
	r.store.Invalidate(ctx, id)
	return err
}

// Delete removes the grammar point and evicts it
func (r *GrammarRepository) Delete(ctx context.Context, id string) error {
	r.store.Invalidate(ctx, id)
	err := r.GrammarRepository.Delete(ctx, id)
	// A read racing the write may have cached the old row again.
	r.store.Invalidate(ctx, id)
	return err
}
