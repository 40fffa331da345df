// Package metrics exposes Prometheus instrumentation of the API
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/turkishstudent/backend/internal/validation"
)

const namespace = "turkishstudent"

// Metrics holds the collectors of the application on a private registry
type Metrics struct {
	registry   *prometheus.Registry
	violations *prometheus.CounterVec
	requests   *prometheus.CounterVec
	aiProxy    *prometheus.HistogramVec
}

// New creates and registers all collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_violations_total",
			Help:      "Number of validation violations by schema and violation kind.",
		}, []string{"schema", "kind"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of handled HTTP requests.",
		}, []string{"method", "route", "status"}),
		aiProxy: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ai_proxy_duration_seconds",
			Help:      "Latency of requests forwarded to the AI generation service.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"task", "status"}),
	}

	m.registry.MustRegister(
		m.violations,
		m.requests,
		m.aiProxy,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveViolations counts each violation under the schema that reported it
func (m *Metrics) ObserveViolations(schema string, violations validation.Violations) {
	for _, v := range violations {
		m.violations.WithLabelValues(schema, string(v.Kind)).Inc()
	}
}

// ObserveRequest counts a handled HTTP request. route is the matched route pattern.
func (m *Metrics) ObserveRequest(method, route string, status int) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// ObserveAIProxy records the latency of a forwarded generation request.
// status is the upstream status code, or "error" when the service was unreachable.
func (m *Metrics) ObserveAIProxy(task, status string, d time.Duration) {
	m.aiProxy.WithLabelValues(task, status).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
