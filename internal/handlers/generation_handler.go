package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/turkishstudent/backend/internal/generation"
	"github.com/turkishstudent/backend/internal/middleware"
	"go.uber.org/zap"
)

// GenerationService forwards content generation requests to the AI service
type GenerationService interface {
	Generate(ctx context.Context, task string, body []byte, requestID string) (*generation.Response, error)
}

// GenerationHandler relays generation requests to the AI service
type GenerationHandler struct {
	BaseHandler
	service GenerationService
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(svc GenerationService, logger *zap.Logger) *GenerationHandler {
	return &GenerationHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers the AI proxy routes
func (h *GenerationHandler) RegisterRoutes(r chi.Router) {
	r.Post("/ai/{task}", h.Generate)
}

// Generate handles POST /api/v1/ai/{task}
// @Summary Generate content
// @Description Forward the request body to the AI generation service. The upstream status and body are returned unchanged.
// @Tags ai
// @Accept json
// @Produce json
// @Param task path string true "Generation task" Enums(vocabulary, grammar, example-sentences, exercises, lesson)
// @Param request body object false "Task input"
// @Success 200 {object} object
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/ai/{task} [post]
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.respondDecodeError(w, err)
		return
	}
	if len(body) > 0 && !json.Valid(body) {
		h.respondError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	task := chi.URLParam(r, "task")
	resp, err := h.service.Generate(r.Context(), task, body, middleware.GetRequestID(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, generation.ErrUnknownTask):
			h.respondError(w, http.StatusNotFound, generation.ErrUnknownTask.Error())
		case errors.Is(err, generation.ErrNotConfigured):
			h.respondError(w, http.StatusServiceUnavailable, generation.ErrNotConfigured.Error())
		case errors.Is(err, generation.ErrUnavailable):
			h.respondError(w, http.StatusBadGateway, generation.ErrUnavailable.Error())
		default:
			h.logger.Error("failed to forward generation request", zap.Error(err), zap.String("task", task))
			h.respondError(w, http.StatusInternalServerError, "failed to forward generation request")
		}
		return
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode)
	if _, err := w.Write(resp.Body); err != nil {
		h.logger.Error("failed to write generation response", zap.Error(err))
	}
}
