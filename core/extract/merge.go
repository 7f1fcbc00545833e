package extract

import (
	"math"

	"github.com/Asiantown/GeoEvents/core/geo"
	"github.com/Asiantown/GeoEvents/core/model"
)

// mergeEvents folds adjacent events whose time gap is at most gapMerge
// seconds and whose centroids lie within centroidThreshold meters. Events
// arrive in emission order; the result is a fresh slice and the caller
// renumbers ids afterwards.
func mergeEvents(events []model.StationaryEvent, gapMerge, centroidThreshold float64) []model.StationaryEvent {
	merged := []model.StationaryEvent{events[0]}
	for _, event := range events[1:] {
		prev := merged[len(merged)-1]
		gap := event.StartTime - prev.EndTime
		centroidDist := geo.Distance(prev.CentroidLat, prev.CentroidLon, event.CentroidLat, event.CentroidLon)
		if gap <= gapMerge && centroidDist <= centroidThreshold {
			merged[len(merged)-1] = combineEvents(prev, event)
		} else {
			merged = append(merged, event)
		}
	}
	return merged
}

// combineEvents folds b into a. The merged centroid is weighted by point
// counts, and the radius grows by each side's centroid shift so it still
// bounds every original sample. Quality survives only when both sides were
// good.
func combineEvents(a, b model.StationaryEvent) model.StationaryEvent {
	total := a.NumPoints + b.NumPoints
	lat := (a.CentroidLat*float64(a.NumPoints) + b.CentroidLat*float64(b.NumPoints)) / float64(total)
	lon := (a.CentroidLon*float64(a.NumPoints) + b.CentroidLon*float64(b.NumPoints)) / float64(total)
	radius := math.Max(
		a.DriftRadiusM+geo.Distance(a.CentroidLat, a.CentroidLon, lat, lon),
		b.DriftRadiusM+geo.Distance(b.CentroidLat, b.CentroidLon, lat, lon),
	)
	quality := model.QualitySparse
	if a.QualityFlag == model.QualityGood && b.QualityFlag == model.QualityGood {
		quality = model.QualityGood
	}
	source := a.SourceTrackID
	if source == "" {
		source = b.SourceTrackID
	}
	return model.StationaryEvent{
		EventID:       a.EventID,
		StartTime:     a.StartTime,
		EndTime:       b.EndTime,
		DurationSec:   b.EndTime - a.StartTime,
		CentroidLat:   lat,
		CentroidLon:   lon,
		DriftRadiusM:  radius,
		NumPoints:     total,
		SourceTrackID: source,
		QualityFlag:   quality,
		Risk:          model.DefaultRisk,
	}
}
