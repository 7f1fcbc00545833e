package metrics

import (
	coremetrics "github.com/Asiantown/GeoEvents/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records run summaries in Prometheus metrics.
type PromSink struct {
	runs        *prometheus.CounterVec
	events      *prometheus.CounterVec
	assigned    prometheus.Counter
	fleet       prometheus.Gauge
	coverage    *prometheus.GaugeVec
	utilization *prometheus.HistogramVec
}

// NewPromSink registers run metrics on the default Prometheus registerer.
// The scrape server is started separately with StartPromServer.
func NewPromSink() (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{}
	var err error

	s.runs, err = registerOrReuse(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pipeline_runs_total",
		Help: "Total number of extraction, scheduling and scenario runs",
	}, []string{"kind"}))
	if err != nil {
		return nil, err
	}
	s.events, err = registerOrReuse(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stationary_events_total",
		Help: "Total number of stationary events extracted",
	}, []string{"quality"}))
	if err != nil {
		return nil, err
	}
	s.assigned, err = registerOrReuse(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "patrol_events_assigned_total",
		Help: "Total number of events assigned to boats",
	}))
	if err != nil {
		return nil, err
	}
	s.fleet, err = registerOrReuse(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "patrol_fleet_size",
		Help: "Number of boats in the most recent scheduling run",
	}))
	if err != nil {
		return nil, err
	}
	s.coverage, err = registerOrReuse(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "scenario_risk_coverage_ratio",
		Help: "Share of risk-weighted value covered per scenario",
	}, []string{"scenario"}))
	if err != nil {
		return nil, err
	}
	s.utilization, err = registerOrReuse(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scenario_utilization",
		Help:    "Fleet utilization observed per scenario",
		Buckets: prometheus.LinearBuckets(0, 0.1, 11),
	}, []string{"scenario", "stat"}))
	if err != nil {
		return nil, err
	}
	return s, nil
}

// registerOrReuse registers c, falling back to the collector already present
// when another sink registered the same metric earlier.
func registerOrReuse[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(C), nil
		}
		var zero C
		return zero, err
	}
	return c, nil
}

// RecordExtractRun counts the run and its emitted events by quality.
func (s *PromSink) RecordExtractRun(run coremetrics.ExtractRun) error {
	s.runs.WithLabelValues("extract").Inc()
	s.events.WithLabelValues("good").Add(float64(run.Events - run.SparseEvents))
	s.events.WithLabelValues("sparse").Add(float64(run.SparseEvents))
	return nil
}

// RecordPatrolRun counts the run, the assigned events and the fleet size.
func (s *PromSink) RecordPatrolRun(run coremetrics.PatrolRun) error {
	s.runs.WithLabelValues("patrol").Inc()
	s.assigned.Add(float64(run.Assigned))
	s.fleet.Set(float64(run.Boats))
	return nil
}

// RecordScenarioRun exports coverage and utilization for the scenario.
func (s *PromSink) RecordScenarioRun(run coremetrics.ScenarioRun) error {
	s.runs.WithLabelValues("scenario").Inc()
	s.coverage.WithLabelValues(run.Scenario).Set(run.RiskCoverageRatio)
	s.utilization.WithLabelValues(run.Scenario, "avg").Observe(run.AvgUtilization)
	s.utilization.WithLabelValues(run.Scenario, "max").Observe(run.MaxUtilization)
	return nil
}
