// Package metrics exposes Prometheus metrics for portfolio aggregation.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/aristath/fundfolio/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Aggregation results used as label values.
const (
	ResultOK               = "ok"
	ResultInvalidPortfolio = "invalid_portfolio"
	ResultFundNotFound     = "fund_not_found"
	ResultUnknownCountry   = "unknown_country"
	ResultError            = "error"
)

// Registry holds all fundfolio metrics on its own Prometheus registry, so
// several registries can coexist in one process. A nil *Registry is valid
// and records nothing.
type Registry struct {
	registry *prometheus.Registry

	Aggregations        *prometheus.CounterVec
	AggregationDuration *prometheus.HistogramVec
	FundsPerPortfolio   prometheus.Histogram
	Comparisons         prometheus.Counter
	Snapshots           prometheus.Gauge
}

// NewRegistry creates a registry with every fundfolio metric registered
func NewRegistry() *Registry {
	m := &Registry{
		registry: prometheus.NewRegistry(),

		Aggregations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fundfolio_aggregations_total",
				Help: "Portfolio aggregations by result",
			},
			[]string{"result"},
		),

		AggregationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fundfolio_aggregation_duration_seconds",
				Help:    "Duration of portfolio aggregation in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
			},
			[]string{"result"},
		),

		FundsPerPortfolio: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fundfolio_portfolio_funds",
				Help:    "Number of funds in successfully aggregated portfolios",
				Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
			},
		),

		Comparisons: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "fundfolio_comparisons_total",
				Help: "Portfolio comparisons served",
			},
		),

		Snapshots: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "fundfolio_registered_snapshots",
				Help: "Portfolio snapshots held in memory",
			},
		),
	}

	m.registry.MustRegister(
		m.Aggregations,
		m.AggregationDuration,
		m.FundsPerPortfolio,
		m.Comparisons,
		m.Snapshots,
	)

	return m
}

// Result classifies an aggregation error into a label value.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, domain.ErrInvalidPortfolio):
		return ResultInvalidPortfolio
	case errors.Is(err, domain.ErrFundNotFound):
		return ResultFundNotFound
	case errors.Is(err, domain.ErrUnknownCountry):
		return ResultUnknownCountry
	default:
		return ResultError
	}
}

// RecordAggregation records one aggregation attempt.
func (m *Registry) RecordAggregation(err error, funds int, d time.Duration) {
	if m == nil {
		return
	}
	result := Result(err)
	m.Aggregations.WithLabelValues(result).Inc()
	m.AggregationDuration.WithLabelValues(result).Observe(d.Seconds())
	if err == nil {
		m.FundsPerPortfolio.Observe(float64(funds))
	}
}

// RecordComparison counts one served comparison.
func (m *Registry) RecordComparison() {
	if m == nil {
		return
	}
	m.Comparisons.Inc()
}

// SetSnapshots sets the number of registered snapshots.
func (m *Registry) SetSnapshots(n int) {
	if m == nil {
		return
	}
	m.Snapshots.Set(float64(n))
}

// Gatherer returns the underlying Prometheus registry.
func (m *Registry) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
