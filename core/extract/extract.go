package extract

import (
	"errors"
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/Asiantown/GeoEvents/core/geo"
	"github.com/Asiantown/GeoEvents/core/model"
)

// ErrInvalidParameter reports a non-positive extraction threshold.
var ErrInvalidParameter = errors.New("invalid extraction parameter")

// DefaultMinPoints is the minimum event size used when Options.MinPoints is
// left at zero.
const DefaultMinPoints = 2

// Options controls a single extraction run.
type Options struct {
	TimeThreshold     float64 // minimum stationary duration in seconds, must be > 0
	DistanceThreshold float64 // neighborhood radius in meters, must be > 0
	GapMerge          float64 // when > 0, merge events separated by at most this many seconds
	MinPoints         int     // minimum points per event; 0 means DefaultMinPoints
	TrackID           string  // optional label copied onto each event
}

// Events returns the stationary events found in points, ordered by start
// time and numbered from 1. The input may arrive in any order; the sweep
// sorts a copy by time and never mutates the caller's slice. An empty input
// yields an empty result and no error.
func Events(points []model.TrackPoint, opts Options) ([]model.StationaryEvent, error) {
	if opts.TimeThreshold <= 0 || opts.DistanceThreshold <= 0 {
		return nil, fmt.Errorf("%w: time and distance thresholds must be positive", ErrInvalidParameter)
	}
	if len(points) == 0 {
		return nil, nil
	}
	minPoints := opts.MinPoints
	if minPoints == 0 {
		minPoints = DefaultMinPoints
	}

	pts := make([]model.TrackPoint, len(points))
	copy(pts, points)
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].Time < pts[j].Time })

	var events []model.StationaryEvent
	n := len(pts)
	i := 0
	counter := 1
	for i < n {
		anchor := pts[i]
		deadline := anchor.Time + opts.TimeThreshold
		lastValid := i
		j := i
		valid := true
		for j < n && pts[j].Time < deadline {
			if withinDistance(anchor, pts[j], opts.DistanceThreshold) {
				lastValid = j
				j++
			} else {
				valid = false
				break
			}
		}
		if !valid {
			i++
			continue
		}
		// The stream ended before the deadline: no later anchor can
		// accumulate the full time threshold either, so the sweep stops.
		if j == n {
			break
		}

		// Drift continuation: keep extending while the vessel stays
		// inside the distance bound of the anchor.
		for j < n && withinDistance(anchor, pts[j], opts.DistanceThreshold) {
			lastValid = j
			j++
		}

		duration := pts[lastValid].Time - anchor.Time
		numPts := lastValid - i + 1
		if numPts >= minPoints && duration >= opts.TimeThreshold {
			window := pts[i : lastValid+1]
			lat, lon, radius := centroidRadius(window)
			events = append(events, model.StationaryEvent{
				EventID:       counter,
				StartTime:     anchor.Time,
				EndTime:       pts[lastValid].Time,
				DurationSec:   duration,
				CentroidLat:   lat,
				CentroidLon:   lon,
				DriftRadiusM:  radius,
				NumPoints:     numPts,
				SourceTrackID: opts.TrackID,
				QualityFlag:   qualityFlag(window, opts.TimeThreshold, minPoints),
				Risk:          model.DefaultRisk,
			})
			counter++
			next := lastValid + 1
			for next < n && withinDistance(anchor, pts[next], opts.DistanceThreshold) {
				next++
			}
			i = next
		} else {
			i++
		}
	}

	if opts.GapMerge > 0 && len(events) > 0 {
		events = mergeEvents(events, opts.GapMerge, opts.DistanceThreshold/2)
		for idx := range events {
			events[idx].EventID = idx + 1
		}
	}
	return events, nil
}

func withinDistance(a, b model.TrackPoint, threshold float64) bool {
	return geo.Distance(a.Lat, a.Lon, b.Lat, b.Lon) <= threshold
}

func centroidRadius(points []model.TrackPoint) (lat, lon, radius float64) {
	for _, p := range points {
		lat += p.Lat
		lon += p.Lon
	}
	lat /= float64(len(points))
	lon /= float64(len(points))
	for _, p := range points {
		if d := geo.Distance(lat, lon, p.Lat, p.Lon); d > radius {
			radius = d
		}
	}
	return lat, lon, radius
}

// qualityFlag downgrades events that are too small or too thinly sampled to
// trust: fewer points than max(minPoints, 2), or a median sampling interval
// above a quarter of the time threshold.
func qualityFlag(points []model.TrackPoint, timeThreshold float64, minPoints int) model.Quality {
	if len(points) < max(minPoints, 2) {
		return model.QualitySparse
	}
	intervals := samplingIntervals(points)
	if len(intervals) > 0 {
		if med, err := stats.Median(intervals); err == nil && med > timeThreshold/4 {
			return model.QualitySparse
		}
	}
	return model.QualityGood
}

func samplingIntervals(points []model.TrackPoint) []float64 {
	intervals := make([]float64, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		intervals = append(intervals, points[i].Time-points[i-1].Time)
	}
	return intervals
}
