package scenario

import (
	"github.com/montanaflynn/stats"

	"github.com/Asiantown/GeoEvents/core/model"
)

// Summary aggregates one scenario's schedule into coverage and utilization
// figures.
type Summary struct {
	Scenario          string  `json:"scenario"`
	EventsCovered     int     `json:"events_covered"`
	UnservedEvents    int     `json:"unserved_events"`
	TotalWeight       float64 `json:"total_weight"`
	RiskCoverageRatio float64 `json:"risk_coverage_ratio"`
	AvgUtilization    float64 `json:"avg_utilization"`
	MaxUtilization    float64 `json:"max_utilization"`
}

// Summarize reduces the assignments produced for a scenario's events into a
// Summary. Ratios fall back to zero when the scenario had no events or no
// boats. The caller sets the Scenario name.
func Summarize(assignments []model.Assignment, events []model.StationaryEvent) Summary {
	covered := make(map[int]struct{})
	utilizations := make([]float64, 0, len(assignments))
	var s Summary
	for _, a := range assignments {
		for _, id := range a.Events {
			covered[id] = struct{}{}
		}
		s.TotalWeight += a.TotalWeight
		utilizations = append(utilizations, a.Utilization)
	}
	s.EventsCovered = len(covered)
	if unserved := len(events) - len(covered); unserved > 0 {
		s.UnservedEvents = unserved
	}

	var riskTotal, riskCovered float64
	for _, e := range events {
		riskTotal += e.Value()
		if _, ok := covered[e.EventID]; ok {
			riskCovered += e.Value()
		}
	}
	if riskTotal > 0 {
		s.RiskCoverageRatio = riskCovered / riskTotal
	}
	if len(utilizations) > 0 {
		if avg, err := stats.Mean(utilizations); err == nil {
			s.AvgUtilization = avg
		}
		if max, err := stats.Max(utilizations); err == nil {
			s.MaxUtilization = max
		}
	}
	return s
}
