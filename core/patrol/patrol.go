package patrol

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/Asiantown/GeoEvents/core/geo"
	"github.com/Asiantown/GeoEvents/core/model"
)

// ErrInvalidBoat reports a boat whose speed or shift budget is not positive.
var ErrInvalidBoat = errors.New("invalid boat configuration")

// Assign produces one itinerary per boat, in boat input order. The whole
// fleet is validated up front: any invalid boat fails the run with
// ErrInvalidBoat and no partial result. Each event is served by at most one
// boat. Neither input slice is mutated.
func Assign(events []model.StationaryEvent, boats []model.PatrolBoat) ([]model.Assignment, error) {
	for _, b := range boats {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("%w: boat %s: %v", ErrInvalidBoat, b.BoatID, err)
		}
	}

	remaining := make([]model.StationaryEvent, len(events))
	copy(remaining, events)
	// Priority order: most valuable first, earliest start on ties. The
	// per-boat end-time sort below is stable, so this order also breaks
	// end-time ties during each boat's walk.
	sort.SliceStable(remaining, func(i, j int) bool {
		vi, vj := remaining[i].Value(), remaining[j].Value()
		if vi != vj {
			return vi > vj
		}
		return remaining[i].StartTime < remaining[j].StartTime
	})

	assignments := make([]model.Assignment, 0, len(boats))
	for _, boat := range boats {
		selected, timeUsed := scheduleForBoat(remaining, boat)

		ids := make([]int, len(selected))
		taken := make(map[int]struct{}, len(selected))
		total := 0.0
		for i, e := range selected {
			ids[i] = e.EventID
			taken[e.EventID] = struct{}{}
			total += e.Value()
		}
		assignments = append(assignments, model.Assignment{
			BoatID:      boat.BoatID,
			Events:      ids,
			TotalWeight: total,
			Utilization: timeUsed / boat.ShiftLimit,
			TimeUsed:    timeUsed,
		})

		kept := remaining[:0]
		for _, e := range remaining {
			if _, ok := taken[e.EventID]; !ok {
				kept = append(kept, e)
			}
		}
		remaining = kept
	}
	return assignments, nil
}

// scheduleForBoat simulates one continuous shift over the pool and returns
// the events served in visit order plus the time consumed. The boat's clock
// starts at zero with event windows shifted so the earliest candidate start
// lands on zero as well.
func scheduleForBoat(pool []model.StationaryEvent, boat model.PatrolBoat) ([]model.StationaryEvent, float64) {
	if len(pool) == 0 {
		return nil, 0
	}
	offset := pool[0].StartTime
	for _, e := range pool[1:] {
		if e.StartTime < offset {
			offset = e.StartTime
		}
	}

	candidates := make([]model.StationaryEvent, len(pool))
	copy(candidates, pool)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].EndTime < candidates[j].EndTime
	})

	var (
		selected []model.StationaryEvent
		timeUsed float64
		clock    float64
	)
	lat, lon := boat.BaseLat, boat.BaseLon

	for _, event := range candidates {
		start := event.StartTime - offset
		end := event.EndTime - offset
		travel := geo.Distance(lat, lon, event.CentroidLat, event.CentroidLon) / boat.SpeedMps
		arrival := clock + travel
		wait := 0.0
		if arrival < start {
			wait = start - arrival
			arrival = start
		}
		// Arriving at or after the window's end means the visit cannot
		// happen; skipping moves neither the clock nor the boat.
		if arrival >= end {
			continue
		}
		window := end - arrival
		dwell := boat.DetectBuffer
		if dwell <= 0 {
			dwell = math.Min(event.DurationSec, window)
		}
		if dwell <= 0 || dwell > window {
			continue
		}
		additional := travel + wait + dwell
		if timeUsed+additional > boat.ShiftLimit {
			continue
		}
		selected = append(selected, event)
		timeUsed += additional
		clock = arrival + dwell
		lat, lon = event.CentroidLat, event.CentroidLon
	}
	return selected, timeUsed
}
