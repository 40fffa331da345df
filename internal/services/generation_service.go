package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/turkishstudent/backend/internal/generation"
	"go.uber.org/zap"
)

// Forwarder sends a generation request to the AI service and returns its reply unchanged
type Forwarder interface {
	Forward(ctx context.Context, task string, body []byte, requestID string) (*generation.Response, error)
}

type generationService struct {
	forwarder Forwarder
	observer  ProxyObserver
	logger    *zap.Logger
}

// NewGenerationService creates a new generation service. A nil observer discards measurements.
func NewGenerationService(forwarder Forwarder, observer ProxyObserver, logger *zap.Logger) *generationService {
	if observer == nil {
		observer = nopObserver{}
	}
	return &generationService{
		forwarder: forwarder,
		observer:  observer,
		logger:    logger,
	}
}

// Generate forwards body to the given task of the AI service
func (s *generationService) Generate(ctx context.Context, task string, body []byte, requestID string) (*generation.Response, error) {
	if !generation.IsKnownTask(task) {
		return nil, fmt.Errorf("%w: %s", generation.ErrUnknownTask, task)
	}

	start := time.Now()
	resp, err := s.forwarder.Forward(ctx, task, body, requestID)
	if err != nil {
		if !errors.Is(err, generation.ErrNotConfigured) {
			s.observer.ObserveAIProxy(task, "error", time.Since(start))
		}
		return nil, err
	}
	s.observer.ObserveAIProxy(task, strconv.Itoa(resp.StatusCode), time.Since(start))

	s.logger.Debug("generation request forwarded",
		zap.String("task", task),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)
	return resp, nil
}
