// Package metrics exposes authentication and resource counters to Prometheus.
package metrics

import (
	"database/sql"
	"net/http"

	"roster/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login outcomes.
const (
	LoginSucceeded = "success"
	LoginRejected  = "invalid_credentials"
	LoginFailed    = "error"
)

// Metrics owns a private registry so tests and multiple fx apps never collide
// on the global one.
type Metrics struct {
	registry *prometheus.Registry

	logins          *prometheus.CounterVec
	tokenRejections *prometheus.CounterVec
	notFound        *prometheus.CounterVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		logins: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_logins_total",
			Help: "Total number of login attempts by outcome",
		}, []string{"outcome"}),
		tokenRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_token_rejections_total",
			Help: "Total number of bearer tokens rejected by failure kind",
		}, []string{"kind"}),
		notFound: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_resource_not_found_total",
			Help: "Total number of lookups for missing resources by kind",
		}, []string{"kind"}),
	}
}

// RecordLogin counts one login attempt. A nil receiver is a no-op.
func (m *Metrics) RecordLogin(outcome string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(outcome).Inc()
}

// RecordTokenRejection counts one rejected bearer token.
func (m *Metrics) RecordTokenRejection(kind string) {
	if m == nil {
		return
	}
	m.tokenRejections.WithLabelValues(kind).Inc()
}

// RecordNotFound counts one lookup of a missing resource.
func (m *Metrics) RecordNotFound(kind string) {
	if m == nil {
		return
	}
	m.notFound.WithLabelValues(kind).Inc()
}

// RegisterDBStats exports connection pool statistics of db under dbName.
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) error {
	if m == nil {
		return nil
	}

	return errors.Wrap(m.registry.Register(collectors.NewDBStatsCollector(db, dbName)), "failed to register db stats collector")
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests that gather directly.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
