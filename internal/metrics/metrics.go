// Package metrics holds the Prometheus collectors for solves and HTTP traffic.
//
// Every Metrics owns its registry, so several servers (or tests) can live in
// one process without duplicate-registration panics.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/linsolve/gaussjordan"
	"github.com/katalvlaran/linsolve/matrix"
)

// Solve outcomes used as the "outcome" label.
const (
	OutcomeOK                = "ok"
	OutcomeDimensionMismatch = "dimension_mismatch"
	OutcomeSingular          = "singular_system"
	OutcomeNonFinite         = "non_finite"
	OutcomeInvalid           = "invalid"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	registry *prometheus.Registry

	// Solver metrics
	SolvesTotal   *prometheus.CounterVec
	SolveDuration prometheus.Histogram
	Dimension     prometheus.Histogram

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		SolvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "linsolve_solves_total",
				Help: "Total number of solve calls by outcome",
			},
			[]string{"outcome"},
		),
		SolveDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "linsolve_solve_duration_seconds",
				Help:    "Elimination time in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
		),
		Dimension: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "linsolve_system_dimension",
				Help:    "Dimension n of submitted systems",
				Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024},
			},
		),

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "linsolve_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "linsolve_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
	}

	m.registry.MustRegister(
		m.SolvesTotal,
		m.SolveDuration,
		m.Dimension,
		m.RequestsTotal,
		m.RequestDuration,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordSolve records one solve attempt of dimension n.
// n <= 0 (shape rejected before a dimension was known) skips the histogram.
func (m *Metrics) RecordSolve(n int, err error, duration time.Duration) {
	m.SolvesTotal.WithLabelValues(Outcome(err)).Inc()
	if err == nil {
		m.SolveDuration.Observe(duration.Seconds())
	}
	if n > 0 {
		m.Dimension.Observe(float64(n))
	}
}

// RecordHTTPRequest records one finished HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// Outcome maps a solve error to its label value.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	switch gaussjordan.KindOf(err) {
	case gaussjordan.KindDimensionMismatch:
		return OutcomeDimensionMismatch
	case gaussjordan.KindSingularSystem:
		return OutcomeSingular
	}
	if errors.Is(err, matrix.ErrNaNInf) {
		return OutcomeNonFinite
	}

	return OutcomeInvalid
}
