// Package metrics provides the Prometheus metrics exported by the services.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the HTTP metrics and the registry they live in.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	validationFailures  *prometheus.CounterVec
}

// NewManager creates a Manager with its own registry, so tests and
// multiple services in one process never collide on the default one.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "itemdemo",
		subsystem:        "http",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	m.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   m.histogramBuckets,
	}, []string{"method", "route"})

	m.validationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "validation_failures_total",
		Help:      "Requests rejected by schema validation, by route.",
	}, []string{"route"})

	m.registry.MustRegister(m.httpRequests, m.httpRequestDuration, m.validationFailures)

	return m
}

// ObserveRequest records one finished request.
func (m *Manager) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// IncValidationFailure counts a schema validation rejection.
func (m *Manager) IncValidationFailure(route string) {
	m.validationFailures.WithLabelValues(route).Inc()
}

// Registry exposes the underlying registry.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
