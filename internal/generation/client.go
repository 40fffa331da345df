// Package generation forwards content generation requests to the external AI service
package generation

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Tasks lists the generation tasks the AI service accepts
var Tasks = []string{
	"vocabulary",
	"grammar",
	"example-sentences",
	"exercises",
	"lesson",
}

var (
	// ErrUnknownTask is returned for a task that is not in Tasks
	ErrUnknownTask = errors.New("unknown generation task")
	// ErrNotConfigured is returned when no AI service URL is configured
	ErrNotConfigured = errors.New("ai service is not configured")
	// ErrUnavailable is returned when the AI service could not be reached
	ErrUnavailable = errors.New("ai service unavailable")
)

// IsKnownTask reports whether task is a supported generation task
func IsKnownTask(task string) bool {
	return slices.Contains(Tasks, task)
}

// Config holds AI service client settings
type Config struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	RetryCount    int
	RetryWaitTime time.Duration
}

// Response is the upstream reply relayed to the caller unchanged
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Client forwards generation requests to the AI service
type Client struct {
	http       *resty.Client
	configured bool
	logger     *zap.Logger
}

// NewClient creates a client for the AI service at cfg.BaseURL
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.RetryWaitTime <= 0 {
		cfg.RetryWaitTime = 200 * time.Millisecond
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWaitTime).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(retryCondition)
	if cfg.APIKey != "" {
		rc.SetAuthToken(cfg.APIKey)
	}

	return &Client{
		http:       rc,
		configured: cfg.BaseURL != "",
		logger:     logger,
	}
}

// retryCondition retries network errors, throttling and server errors
func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	code := r.StatusCode()
	return code == 429 || code >= 500
}

// Forward posts body to the task endpoint of the AI service and returns its reply as is.
// Upstream error statuses are not errors; only an unreachable service is.
func (c *Client) Forward(ctx context.Context, task string, body []byte, requestID string) (*Response, error) {
	if !IsKnownTask(task) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTask, task)
	}
	if !c.configured {
		return nil, ErrNotConfigured
	}
	if len(body) == 0 {
		body = []byte("{}")
	}

	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if requestID != "" {
		req.SetHeader("X-Request-ID", requestID)
	}

	resp, err := req.Post("/generate/" + url.PathEscape(task))
	if err != nil {
		c.logger.Error("failed to reach ai service", zap.Error(err), zap.String("task", task))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.IsError() {
		c.logger.Warn("ai service returned an error",
			zap.String("task", task),
			zap.Int("status", resp.StatusCode()),
		)
	}

	return &Response{
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        resp.Body(),
	}, nil
}
