package metrics

// MultiSink fans every record out to a list of sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink combines several sinks into one.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordExtractRun forwards the run to all sinks, returning the first error.
func (m *MultiSink) RecordExtractRun(run ExtractRun) error {
	for _, s := range m.Sinks {
		if err := s.RecordExtractRun(run); err != nil {
			return err
		}
	}
	return nil
}

// RecordPatrolRun forwards the run to all sinks, returning the first error.
func (m *MultiSink) RecordPatrolRun(run PatrolRun) error {
	for _, s := range m.Sinks {
		if err := s.RecordPatrolRun(run); err != nil {
			return err
		}
	}
	return nil
}

// RecordScenarioRun forwards the run to all sinks, returning the first error.
func (m *MultiSink) RecordScenarioRun(run ScenarioRun) error {
	for _, s := range m.Sinks {
		if err := s.RecordScenarioRun(run); err != nil {
			return err
		}
	}
	return nil
}
