package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/turkishstudent/backend/internal/models"
	"github.com/turkishstudent/backend/internal/validation"
	"go.uber.org/zap"
)

// GrammarService is the interface that wraps methods for grammar point business logic.
type GrammarService interface {
	List(ctx context.Context, query map[string]any) (*models.Page[models.GrammarListItem], error)
	// Get returns models.ErrGrammarPointNotFound for an unknown id.
	Get(ctx context.Context, id string) (*models.GrammarPoint, error)
	Create(ctx context.Context, payload map[string]any) (*models.GrammarPoint, error)
	Update(ctx context.Context, id string, payload map[string]any) (*models.GrammarPoint, error)
	Delete(ctx context.Context, id string) error
}

// GrammarHandler handles HTTP requests for grammar points
type GrammarHandler struct {
	BaseHandler
	service GrammarService
}

// NewGrammarHandler creates a new grammar handler
func NewGrammarHandler(svc GrammarService, logger *zap.Logger) *GrammarHandler {
	return &GrammarHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers the student and admin grammar routes
func (h *GrammarHandler) RegisterRoutes(r chi.Router) {
	r.Route("/grammar", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
	})
	r.Route("/admin/grammar", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles GET /api/v1/grammar
// @Summary List grammar points
// @Tags grammar
// @Produce json
// @Param search query string false "Search in title, explanation and description"
// @Param difficultyLevel query int false "Difficulty level, 1 or greater"
// @Param grammarType query string false "Grammar type"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20)"
// @Success 200 {object} models.Page[models.GrammarListItem]
// @Failure 400 {object} ViolationsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/grammar [get]
func (h *GrammarHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), validation.FromQuery(r.URL.Query()))
	if err != nil {
		h.respondServiceError(w, r, err, "get grammar points")
		return
	}

	h.respondJSON(w, http.StatusOK, page)
}

// Get handles GET /api/v1/grammar/{id}
// @Summary Get grammar point
// @Tags grammar
// @Produce json
// @Param id path string true "Grammar point ID"
// @Success 200 {object} models.GrammarPoint
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/grammar/{id} [get]
func (h *GrammarHandler) Get(w http.ResponseWriter, r *http.Request) {
	point, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, r, err, "get grammar point")
		return
	}

	h.respondJSON(w, http.StatusOK, point)
}

// Create handles POST /api/v1/admin/grammar
// @Summary Create grammar point
// @Description Validate and store a new grammar point. "examples" accepts any JSON value.
// @Tags admin-grammar
// @Accept json
// @Produce json
// @Param point body object true "Grammar point payload"
// @Success 201 {object} models.GrammarPoint
// @Failure 400 {object} ViolationsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/grammar [post]
func (h *GrammarHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r)
	if err != nil {
		h.respondDecodeError(w, err)
		return
	}

	point, err := h.service.Create(r.Context(), payload)
	if err != nil {
		h.respondServiceError(w, r, err, "create grammar point")
		return
	}

	h.respondJSON(w, http.StatusCreated, point)
}

// Update handles PATCH /api/v1/admin/grammar/{id}
// @Summary Update grammar point
// @Tags admin-grammar
// @Accept json
// @Produce json
// @Param id path string true "Grammar point ID"
// @Param point body object true "Fields to update"
// @Success 200 {object} models.GrammarPoint
// @Failure 400 {object} ViolationsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/grammar/{id} [patch]
func (h *GrammarHandler) Update(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r)
	if err != nil {
		h.respondDecodeError(w, err)
		return
	}

	point, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		h.respondServiceError(w, r, err, "update grammar point")
		return
	}

	h.respondJSON(w, http.StatusOK, point)
}

// Delete handles DELETE /api/v1/admin/grammar/{id}
// @Summary Delete grammar point
// @Tags admin-grammar
// @Param id path string true "Grammar point ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/grammar/{id} [delete]
func (h *GrammarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, r, err, "delete grammar point")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
