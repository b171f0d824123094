// Package metrics defines the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kantin"

// Production outcomes used as the "outcome" label.
const (
	OutcomeSuccess      = "success"
	OutcomeInsufficient = "insufficient_stock"
	OutcomeExhausted    = "concurrency_exhausted"
	OutcomeError        = "error"
)

// Metrics holds every collector, registered on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	productionRuns     *prometheus.CounterVec
	productionDuration prometheus.Histogram
	ledgerRetries      prometheus.Counter
	restocks           prometheus.Counter
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// New creates the collectors and registers them, plus the Go and process
// collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		productionRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "production_runs_total",
			Help:      "Production runs by outcome.",
		}, []string{"outcome"}),
		productionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "production_duration_seconds",
			Help:      "Wall time of production runs including retries.",
			Buckets:   prometheus.DefBuckets,
		}),
		ledgerRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "transaction_retries_total",
			Help:      "Ledger transactions retried after a serialization failure or deadlock.",
		}),
		restocks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "inventory",
			Name:      "restocks_total",
			Help:      "Successful restock operations.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.productionRuns,
		m.productionDuration,
		m.ledgerRetries,
		m.restocks,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// ObserveProduction records the outcome and duration of a production run.
func (m *Metrics) ObserveProduction(outcome string, d time.Duration) {
	m.productionRuns.WithLabelValues(outcome).Inc()
	m.productionDuration.Observe(d.Seconds())
}

// IncLedgerRetry counts one retried ledger transaction.
func (m *Metrics) IncLedgerRetry() { m.ledgerRetries.Inc() }

// IncRestock counts one successful restock.
func (m *Metrics) IncRestock() { m.restocks.Inc() }

// ObserveHTTP records a finished HTTP request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
