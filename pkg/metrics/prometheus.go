// Package metrics exposes Prometheus metrics for the force calculator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the calculator's collectors.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	evaluations         *prometheus.CounterVec
	errors              *prometheus.CounterVec
	rateLimited         prometheus.Counter
}

var globalManager *Manager //nolint:gochecknoglobals // process-wide collectors

// Separate registry so the default Go collectors stay out of /metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // process-wide registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a Manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "archwire",
		subsystem:        "",
		histogramBuckets: []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint and method",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.evaluations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluations_total",
		Help:      "Force evaluations by resulting force status and binding risk",
	}, []string{"force_status", "binding_risk"})

	m.errors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_total",
		Help:      "Failed requests by endpoint and error type",
	}, []string{"endpoint", "error_type"})

	m.rateLimited = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the per-IP rate limiter",
	})
}

func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

func (m *Manager) RecordEvaluation(forceStatus, bindingRisk string) {
	m.evaluations.WithLabelValues(forceStatus, bindingRisk).Inc()
}

func (m *Manager) RecordError(endpoint, errorType string) {
	m.errors.WithLabelValues(endpoint, errorType).Inc()
}

func (m *Manager) RecordRateLimited() {
	m.rateLimited.Inc()
}

// RecordHTTPRequest records one served request on the global manager.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// RecordEvaluation counts one dashboard evaluation.
func RecordEvaluation(forceStatus, bindingRisk string) {
	globalManager.RecordEvaluation(forceStatus, bindingRisk)
}

func RecordError(endpoint, errorType string) {
	globalManager.RecordError(endpoint, errorType)
}

func RecordRateLimited() {
	globalManager.RecordRateLimited()
}

// GetRegistry returns the registry served on /metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
