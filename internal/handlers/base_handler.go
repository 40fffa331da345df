package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/turkishstudent/backend/internal/models"
	"github.com/turkishstudent/backend/internal/validation"
	"go.uber.org/zap"
)

var (
	errEmptyBody   = errors.New("request body is required")
	errNotAnObject = errors.New("request body must be a JSON object")
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ViolationsResponse is the body of a rejected payload
type ViolationsResponse struct {
	Error      string                 `json:"error"`
	Violations []validation.Violation `json:"violations"`
}

type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, ErrorResponse{Error: message})
}

// respondViolations sends every field violation of a rejected payload
func (h *BaseHandler) respondViolations(w http.ResponseWriter, violations validation.Violations) {
	h.respondJSON(w, http.StatusBadRequest, ViolationsResponse{
		Error:      "validation failed",
		Violations: violations,
	})
}

// respondServiceError maps a service error to its HTTP status.
// Unexpected errors are logged and reported as "failed to <action>".
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	if violations, ok := validation.AsViolations(err); ok {
		h.respondViolations(w, violations)
		return
	}

	for _, mapping := range []struct {
		target error
		status int
	}{
		{models.ErrInvalidID, http.StatusBadRequest},
		{models.ErrNoFieldsToUpdate, http.StatusBadRequest},
		{models.ErrVocabularyNotFound, http.StatusNotFound},
		{models.ErrGrammarPointNotFound, http.StatusNotFound},
		{models.ErrVocabularyExists, http.StatusConflict},
	} {
		if errors.Is(err, mapping.target) {
			h.respondError(w, mapping.status, mapping.target.Error())
			return
		}
	}

	h.logger.Error("failed to "+action, zap.Error(err), zap.String("path", r.URL.Path))
	h.respondError(w, http.StatusInternalServerError, "failed to "+action)
}

// decodeBody decodes a JSON object body. Numbers are kept as json.Number so the
// validation layer sees them exactly as sent.
func decodeBody(r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyBody
		}
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			return nil, err
		}
		return nil, errNotAnObject
	}
	if payload == nil {
		return nil, errNotAnObject
	}
	return payload, nil
}

// respondDecodeError reports a body that could not be decoded
func (h *BaseHandler) respondDecodeError(w http.ResponseWriter, err error) {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		h.respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	h.respondError(w, http.StatusBadRequest, err.Error())
}
