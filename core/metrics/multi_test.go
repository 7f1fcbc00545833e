package metrics

import (
	"errors"
	"testing"
)

type countSink struct {
	extract  int
	patrol   int
	scenario int
	err      error
}

func (c *countSink) RecordExtractRun(ExtractRun) error   { c.extract++; return c.err }
func (c *countSink) RecordPatrolRun(PatrolRun) error     { c.patrol++; return c.err }
func (c *countSink) RecordScenarioRun(ScenarioRun) error { c.scenario++; return c.err }

func TestMultiSinkForwardsAll(t *testing.T) {
	s1 := &countSink{}
	s2 := &countSink{}
	m := NewMultiSink(s1, s2)

	if err := m.RecordExtractRun(ExtractRun{}); err != nil {
		t.Fatalf("extract: %v", err)
	}
	if err := m.RecordPatrolRun(PatrolRun{}); err != nil {
		t.Fatalf("patrol: %v", err)
	}
	if err := m.RecordScenarioRun(ScenarioRun{}); err != nil {
		t.Fatalf("scenario: %v", err)
	}
	if s1.extract != 1 || s1.patrol != 1 || s1.scenario != 1 {
		t.Fatalf("first sink missed records: %+v", s1)
	}
	if s2.extract != 1 || s2.patrol != 1 || s2.scenario != 1 {
		t.Fatalf("second sink missed records: %+v", s2)
	}
}

func TestMultiSinkReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	s1 := &countSink{err: boom}
	s2 := &countSink{}
	m := NewMultiSink(s1, s2)

	if err := m.RecordPatrolRun(PatrolRun{}); !errors.Is(err, boom) {
		t.Fatalf("expected boom got %v", err)
	}
	if s2.patrol != 0 {
		t.Fatalf("expected short-circuit before second sink")
	}
}
