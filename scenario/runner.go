package scenario

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Asiantown/GeoEvents/core/metrics"
	"github.com/Asiantown/GeoEvents/core/model"
	"github.com/Asiantown/GeoEvents/core/patrol"
	"github.com/Asiantown/GeoEvents/infra/logger"
)

// Result holds the outcome of one scenario of a sweep.
type Result struct {
	Definition  Definition
	Assignments []model.Assignment
	Summary     Summary
}

// Runner executes scenario sweeps. Scenarios fan out over a bounded worker
// pool; results come back in definition order regardless of completion
// order.
type Runner struct {
	Sink  metrics.Sink
	Log   logger.Logger
	RunID string
	// Workers bounds how many scenarios run concurrently. Values below
	// one mean serial execution.
	Workers int
}

// Run evaluates every definition against copies of the base events and
// fleet. The first scheduling error fails the whole sweep. Cancelling ctx
// stops new scenarios from starting; already running ones finish.
func (r *Runner) Run(ctx context.Context, events []model.StationaryEvent, boats []model.PatrolBoat, defs []Definition) ([]Result, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(defs) {
		workers = len(defs)
	}

	results := make([]Result, len(defs))
	errs := make([]error, len(defs))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	canceled := false
	for i := range defs {
		if ctx.Err() != nil {
			canceled = true
			break
		}
		select {
		case <-ctx.Done():
			canceled = true
		case sem <- struct{}{}:
		}
		if canceled {
			break
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i], errs[i] = r.runOne(events, boats, defs[i])
		}(i)
	}
	wg.Wait()

	if canceled {
		return nil, ctx.Err()
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (r *Runner) runOne(events []model.StationaryEvent, boats []model.PatrolBoat, def Definition) (Result, error) {
	log := r.logger()
	scenarioEvents := Apply(events, def)
	scenarioBoats := ScaleBoats(boats, def)
	assignments, err := patrol.Assign(scenarioEvents, scenarioBoats)
	if err != nil {
		return Result{}, fmt.Errorf("scenario %s: %w", def.Name, err)
	}
	sum := Summarize(assignments, scenarioEvents)
	sum.Scenario = def.Name

	log.Debugw("scenario evaluated", map[string]any{
		"scenario": def.Name,
		"events":   len(scenarioEvents),
		"boats":    len(scenarioBoats),
		"covered":  sum.EventsCovered,
	})
	if err := r.sink().RecordScenarioRun(metrics.ScenarioRun{
		RunID:             r.RunID,
		Scenario:          def.Name,
		EventsCovered:     sum.EventsCovered,
		UnservedEvents:    sum.UnservedEvents,
		TotalWeight:       sum.TotalWeight,
		RiskCoverageRatio: sum.RiskCoverageRatio,
		AvgUtilization:    sum.AvgUtilization,
		MaxUtilization:    sum.MaxUtilization,
		Time:              time.Now(),
	}); err != nil {
		// Metric delivery never fails a sweep.
		log.Warnf("record scenario %s: %v", def.Name, err)
	}
	return Result{Definition: def, Assignments: assignments, Summary: sum}, nil
}

func (r *Runner) logger() logger.Logger {
	if r.Log != nil {
		return r.Log
	}
	return logger.NopLogger{}
}

func (r *Runner) sink() metrics.Sink {
	if r.Sink != nil {
		return r.Sink
	}
	return metrics.NopSink{}
}
