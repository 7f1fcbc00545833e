// Package scenario evaluates what-if variations of a patrol allocation
// problem: scaled risks, bounding-box filters and fleet changes. Each
// scenario is a pure computation over copies of the base inputs, which lets
// a sweep fan out across a bounded worker pool.
package scenario

import (
	"math"

	"github.com/Asiantown/GeoEvents/core/model"
)

// Definition describes one variation of the base problem. Zero values leave
// the corresponding input untouched: a nil bound keeps the bounding box open
// on that side, and zero scale factors mean "unchanged".
type Definition struct {
	Name           string   `json:"name" yaml:"name"`
	RiskScale      float64  `json:"risk_scale" yaml:"risk_scale"`
	LatMin         *float64 `json:"lat_min" yaml:"lat_min"`
	LatMax         *float64 `json:"lat_max" yaml:"lat_max"`
	LonMin         *float64 `json:"lon_min" yaml:"lon_min"`
	LonMax         *float64 `json:"lon_max" yaml:"lon_max"`
	BoatMultiplier float64  `json:"boat_multiplier" yaml:"boat_multiplier"`
	DuplicateBoats int      `json:"duplicate_boats" yaml:"duplicate_boats"`
}

func (d Definition) withDefaults() Definition {
	if d.RiskScale == 0 {
		d.RiskScale = 1
	}
	if d.BoatMultiplier == 0 {
		d.BoatMultiplier = 1
	}
	return d
}

func (d Definition) bounds() (latMin, latMax, lonMin, lonMax float64) {
	latMin, latMax = math.Inf(-1), math.Inf(1)
	lonMin, lonMax = math.Inf(-1), math.Inf(1)
	if d.LatMin != nil {
		latMin = *d.LatMin
	}
	if d.LatMax != nil {
		latMax = *d.LatMax
	}
	if d.LonMin != nil {
		lonMin = *d.LonMin
	}
	if d.LonMax != nil {
		lonMax = *d.LonMax
	}
	return latMin, latMax, lonMin, lonMax
}

// Apply returns the events visible to the scenario: those whose centroid
// lies inside the bounding box (inclusive on every edge), with risk scaled
// by RiskScale. The input slice is never modified.
func Apply(events []model.StationaryEvent, def Definition) []model.StationaryEvent {
	def = def.withDefaults()
	latMin, latMax, lonMin, lonMax := def.bounds()
	out := make([]model.StationaryEvent, 0, len(events))
	for _, e := range events {
		if e.CentroidLat < latMin || e.CentroidLat > latMax {
			continue
		}
		if e.CentroidLon < lonMin || e.CentroidLon > lonMax {
			continue
		}
		e.Risk *= def.RiskScale
		out = append(out, e)
	}
	return out
}

// ScaleBoats returns the scenario's fleet: every boat with its shift budget
// multiplied by BoatMultiplier, followed by DuplicateBoats extra copies of
// the unscaled base fleet. The input slice is never modified.
func ScaleBoats(boats []model.PatrolBoat, def Definition) []model.PatrolBoat {
	def = def.withDefaults()
	out := make([]model.PatrolBoat, 0, len(boats))
	for _, b := range boats {
		b.ShiftLimit *= def.BoatMultiplier
		out = append(out, b)
	}
	for i := 0; i < def.DuplicateBoats; i++ {
		out = append(out, boats...)
	}
	return out
}
