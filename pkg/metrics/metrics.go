// Package metrics exports Prometheus metrics about validation runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/valida"
)

// Metrics implements valida.Observer.
type Metrics struct {
	// Finished runs by outcome: valid, invalid, error
	Runs *prometheus.CounterVec

	// Recorded field errors by validator name
	FieldErrors *prometheus.CounterVec

	// Run latency, structural failures included
	Duration prometheus.Histogram
}

// New creates the metrics and registers them with reg.
// A nil reg falls back to the default Prometheus registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "valida_runs_total",
			Help: "Total validation runs by outcome",
		}, []string{"outcome"}),

		FieldErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "valida_field_errors_total",
			Help: "Total field errors by validator",
		}, []string{"validator"}),

		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "valida_run_duration_seconds",
			Help:    "Duration of validation runs including asynchronous validators",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// ObserveRun records a finished run.
func (m *Metrics) ObserveRun(report valida.RunReport) {
	if m == nil {
		return
	}

	m.Runs.WithLabelValues(string(report.Outcome)).Inc()
	m.Duration.Observe(report.Duration.Seconds())

	for _, errs := range report.Errors {
		for _, e := range errs {
			m.FieldErrors.WithLabelValues(e.Validator).Inc()
		}
	}
}
