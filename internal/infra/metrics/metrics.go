// Package metrics exposes the relay's Prometheus collectors.
package metrics

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "clubrelay"

// Webhook outcomes
const (
	WebhookPing         = "ping"
	WebhookProcessed    = "processed"
	WebhookDeduplicated = "deduplicated"
	WebhookIgnored      = "ignored"
	WebhookRejected     = "rejected"
)

// Metrics holds every collector on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	WebhookEvents      *prometheus.CounterVec
	DedupStoreFallback *prometheus.CounterVec
	PushResults        *prometheus.CounterVec
	SweepItems         *prometheus.CounterVec
	BackgroundFailures *prometheus.CounterVec
	DeviceRegistered   *prometheus.CounterVec
	HTTPRequests       *prometheus.HistogramVec
}

// New registers the collectors plus the Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		WebhookEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "events_total",
			Help:      "Inbound webhook deliveries by topic domain and outcome.",
		}, []string{"domain", "outcome"}),
		DedupStoreFallback: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "dedup_fallback_total",
			Help:      "Dedup decisions taken without the dedup store, by path.",
		}, []string{"path"}),
		PushResults: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "push",
			Name:      "sends_total",
			Help:      "Push send attempts by result.",
		}, []string{"result"}),
		SweepItems: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "deletion",
			Name:      "sweep_items_total",
			Help:      "Deletion sweep items by status.",
		}, []string{"status"}),
		BackgroundFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "background",
			Name:      "task_failures_total",
			Help:      "Best-effort background tasks that failed or panicked.",
		}, []string{"task"}),
		DeviceRegistered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "devices",
			Name:      "registrations_total",
			Help:      "Device registrations by platform.",
		}, []string{"platform"}),
		HTTPRequests: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method, route and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "code"}),
	}
}

// RegisterDBStats exports connection pool stats for db under dbName.
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, dbName))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
