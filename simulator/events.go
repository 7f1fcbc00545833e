// Package simulator produces synthetic input data for the extraction and
// allocation pipeline: pre-extracted stationary events for scheduler runs,
// and raw loiter/transit tracks for end-to-end extraction runs. Output is
// deterministic for a given seed.
package simulator

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/Asiantown/GeoEvents/core/model"
)

// ErrNoEvents is returned when the configured horizon cannot fit a single
// event.
var ErrNoEvents = errors.New("no events generated; adjust parameters")

// clusterCenters are the hotspots events gather around, in degrees.
var clusterCenters = [][2]float64{
	{0, 0},
	{0.15, 0.05},
	{-0.1, 0.12},
}

// GenerateEvents produces a synthetic event set. Each vessel walks a
// timeline of loiter events separated by random gaps until its horizon is
// exhausted; centroids scatter around shared hotspot centers so that
// allocation runs see spatially clustered work.
func GenerateEvents(cfg EventConfig) ([]model.StationaryEvent, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	var events []model.StationaryEvent
	id := 1
	for vessel := 1; vessel <= cfg.NumVessels; vessel++ {
		cursor := rng.Float64() * cfg.MinGap
		for n := 0; n < cfg.EventsPerVessel; n++ {
			duration := uniform(rng, cfg.MinDuration, cfg.MaxDuration)
			if cursor+duration > cfg.Horizon {
				break
			}
			lat, lon := clusterPoint(rng, cfg.ClusterRadiusM)
			numPoints := int(duration / 60)
			if numPoints < 6 {
				numPoints = 6
			}
			quality := model.QualitySparse
			if numPoints >= 10 {
				quality = model.QualityGood
			}
			events = append(events, model.StationaryEvent{
				EventID:       id,
				StartTime:     round2(cursor),
				EndTime:       round2(cursor + duration),
				DurationSec:   round2(duration),
				CentroidLat:   lat,
				CentroidLon:   lon,
				DriftRadiusM:  round2(uniform(rng, 20, cfg.ClusterRadiusM/5)),
				NumPoints:     numPoints,
				SourceTrackID: fmt.Sprintf("VESSEL_%02d", vessel),
				QualityFlag:   quality,
				Risk:          round2(uniform(rng, 0.8, 1.5) * (1 + 0.2*float64(vessel))),
			})
			id++
			cursor += duration + uniform(rng, cfg.MinGap, cfg.MaxGap)
		}
	}
	if len(events) == 0 {
		return nil, ErrNoEvents
	}
	return events, nil
}

// clusterPoint picks a hotspot and offsets it by a random distance and
// bearing, using the small-angle meters-to-degrees conversion.
func clusterPoint(rng *rand.Rand, radiusM float64) (lat, lon float64) {
	c := clusterCenters[rng.Intn(len(clusterCenters))]
	return offsetPoint(rng, c[0], c[1], radiusM)
}

func offsetPoint(rng *rand.Rand, centerLat, centerLon, radiusM float64) (lat, lon float64) {
	distance := rng.Float64() * radiusM
	bearing := rng.Float64() * 2 * math.Pi
	lat = centerLat + distance*math.Cos(bearing)/111000.0
	lon = centerLon + distance*math.Sin(bearing)/(111000.0*math.Cos((centerLat+1e-6)*math.Pi/180))
	return round6(lat), round6(lon)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }
