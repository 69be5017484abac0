// Package telemetry exposes Prometheus instrumentation for the engine's
// expensive paths. Collectors register on an explicit registry supplied by
// the caller; the package keeps no process-wide state.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the engine collectors. A nil *Metrics is valid and turns
// every observation into a no-op, so the engine never branches on whether
// the caller wired instrumentation.
type Metrics struct {
	TradesGraded         prometheus.Counter
	SimulationIterations prometheus.Counter
	SimulationDuration   prometheus.Histogram
	SimulationsTruncated prometheus.Counter
}

// NewMetrics builds and registers the engine collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TradesGraded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tradegrader_trades_graded_total",
			Help: "Total number of trades graded",
		}),
		SimulationIterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tradegrader_simulation_iterations_total",
			Help: "Total season-simulation iterations executed",
		}),
		SimulationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tradegrader_simulation_duration_seconds",
			Help:    "Wall time of simulation runs in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
		}),
		SimulationsTruncated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tradegrader_simulations_truncated_total",
			Help: "Simulation runs cut short by the caller's budget",
		}),
	}
	reg.MustRegister(m.TradesGraded, m.SimulationIterations, m.SimulationDuration, m.SimulationsTruncated)
	return m
}

// GradeObserved records one completed grading call.
func (m *Metrics) GradeObserved() {
	if m == nil {
		return
	}
	m.TradesGraded.Inc()
}

// SimulationObserved records one completed simulation run.
func (m *Metrics) SimulationObserved(iterations int, elapsed time.Duration, truncated bool) {
	if m == nil {
		return
	}
	m.SimulationIterations.Add(float64(iterations))
	m.SimulationDuration.Observe(elapsed.Seconds())
	if truncated {
		m.SimulationsTruncated.Inc()
	}
}
