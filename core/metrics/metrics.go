package metrics

import "time"

// ExtractRun summarizes one extraction pass over a track.
type ExtractRun struct {
	RunID        string
	TrackID      string
	Points       int // track points consumed
	Events       int // events emitted after merging
	SparseEvents int // events flagged sparse
	Elapsed      time.Duration
	Time         time.Time
}

// PatrolRun summarizes one scheduling pass over a fleet.
type PatrolRun struct {
	RunID       string
	Boats       int
	Events      int // candidate events offered
	Assigned    int // events actually served
	TotalWeight float64
	Elapsed     time.Duration
	Time        time.Time
}

// ScenarioRun summarizes one scenario of a parameter sweep.
type ScenarioRun struct {
	RunID             string
	Scenario          string
	EventsCovered     int
	UnservedEvents    int
	TotalWeight       float64
	RiskCoverageRatio float64
	AvgUtilization    float64
	MaxUtilization    float64
	Time              time.Time
}

// Sink records run summaries for observability purposes.
type Sink interface {
	RecordExtractRun(run ExtractRun) error
	RecordPatrolRun(run PatrolRun) error
	RecordScenarioRun(run ScenarioRun) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordExtractRun(ExtractRun) error   { return nil }
func (NopSink) RecordPatrolRun(PatrolRun) error     { return nil }
func (NopSink) RecordScenarioRun(ScenarioRun) error { return nil }
