package services

import (
	"time"

	"github.com/turkishstudent/backend/internal/validation"
)

// ViolationObserver records rejected payloads
type ViolationObserver interface {
	ObserveViolations(schema string, violations validation.Violations)
}

// ProxyObserver records forwarded generation requests
type ProxyObserver interface {
	ObserveAIProxy(task, status string, d time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveViolations(string, validation.Violations) {}

func (nopObserver) ObserveAIProxy(string, string, time.Duration) {}

// validate runs the validation boundary and reports violations to the observer
func validate(observer ViolationObserver, schema *validation.Schema, payload map[string]any) (validation.Record, error) {
	rec, violations := validation.Validate(schema, payload)
	if len(violations) > 0 {
		observer.ObserveViolations(schema.Name, violations)
		return validation.Record{}, violations
	}
	return rec, nil
}
