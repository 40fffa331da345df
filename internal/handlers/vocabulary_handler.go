package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/turkishstudent/backend/internal/models"
	"github.com/turkishstudent/backend/internal/validation"
	"go.uber.org/zap"
)

// VocabularyService is the interface that wraps methods for vocabulary business logic.
//
// Payload and query arguments are raw decoded values. Rejected input is reported as validation.Violations.
type VocabularyService interface {
	// List returns a page of vocabulary entries filtered by the query parameters.
	List(ctx context.Context, query map[string]any) (*models.Page[models.VocabularyListItem], error)
	// Get returns models.ErrVocabularyNotFound for an unknown id and models.ErrInvalidID for a malformed one.
	Get(ctx context.Context, id string) (*models.Vocabulary, error)
	// Create returns models.ErrVocabularyExists when the Turkish word is already stored.
	Create(ctx context.Context, payload map[string]any) (*models.Vocabulary, error)
	// Update applies a partial payload and returns the updated entry.
	Update(ctx context.Context, id string, payload map[string]any) (*models.Vocabulary, error)
	// Delete removes the entry.
	Delete(ctx context.Context, id string) error
}

// VocabularyHandler handles HTTP requests for vocabulary entries
type VocabularyHandler struct {
	BaseHandler
	service VocabularyService
}

// NewVocabularyHandler creates a new vocabulary handler
func NewVocabularyHandler(svc VocabularyService, logger *zap.Logger) *VocabularyHandler {
	return &VocabularyHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers the student and admin vocabulary routes
func (h *VocabularyHandler) RegisterRoutes(r chi.Router) {
	r.Route("/vocabulary", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
	})
	r.Route("/admin/vocabulary", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles GET /api/v1/vocabulary
// @Summary List vocabulary
// @Description Get a paginated list of vocabulary entries
// @Tags vocabulary
// @Produce json
// @Param search query string false "Search in Turkish word, translation and pronunciation"
// @Param difficultyLevel query int false "Difficulty level, 1 or greater"
// @Param partOfSpeech query string false "Part of speech"
// @Param categoryId query string false "Category ID"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20)"
// @Success 200 {object} models.Page[models.VocabularyListItem]
// @Failure 400 {object} ViolationsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/vocabulary [get]
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), validation.FromQuery(r.URL.Query()))
	if err != nil {
		h.respondServiceError(w, r, err, "get vocabulary")
		return
	}

	h.respondJSON(w, http.StatusOK, page)
}

// Get handles GET /api/v1/vocabulary/{id}
// @Summary Get vocabulary entry
// @Description Get a vocabulary entry by ID
// @Tags vocabulary
// @Produce json
// @Param id path string true "Vocabulary entry ID"
// @Success 200 {object} models.Vocabulary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/vocabulary/{id} [get]
func (h *VocabularyHandler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, r, err, "get vocabulary entry")
		return
	}

	h.respondJSON(w, http.StatusOK, entry)
}

// Create handles POST /api/v1/admin/vocabulary
// @Summary Create vocabulary entry
// @Description Validate and store a new vocabulary entry
// @Tags admin-vocabulary
// @Accept json
// @Produce json
// @Param entry body object true "Vocabulary entry payload"
// @Success 201 {object} models.Vocabulary
// @Failure 400 {object} ViolationsResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/vocabulary [post]
func (h *VocabularyHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r)
	if err != nil {
		h.respondDecodeError(w, err)
		return
	}

	entry, err := h.service.Create(r.Context(), payload)
	if err != nil {
		h.respondServiceError(w, r, err, "create vocabulary entry")
		return
	}

	h.respondJSON(w, http.StatusCreated, entry)
}

// Update handles PATCH /api/v1/admin/vocabulary/{id}
// @Summary Update vocabulary entry
// @Description Partially update a vocabulary entry. Only sent fields are changed.
// @Tags admin-vocabulary
// @Accept json
// @Produce json
// @Param id path string true "Vocabulary entry ID"
// @Param entry body object true "Fields to update"
// @Success 200 {object} models.Vocabulary
// @Failure 400 {object} ViolationsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/vocabulary/{id} [patch]
func (h *VocabularyHandler) Update(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r)
	if err != nil {
		h.respondDecodeError(w, err)
		return
	}

	entry, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		h.respondServiceError(w, r, err, "update vocabulary entry")
		return
	}

	h.respondJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /api/v1/admin/vocabulary/{id}
// @Summary Delete vocabulary entry
// @Tags admin-vocabulary
// @Param id path string true "Vocabulary entry ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/vocabulary/{id} [delete]
func (h *VocabularyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, r, err, "delete vocabulary entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
