package datafile

import (
	"encoding/json"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/Asiantown/GeoEvents/core/model"
)

// WriteEventsGeoJSON emits events as a GeoJSON FeatureCollection of
// centroid points, for map tooling. Properties mirror the CSV columns;
// the centroid itself lives in the geometry.
func WriteEventsGeoJSON(w io.Writer, events []model.StationaryEvent) error {
	fc := geojson.NewFeatureCollection()
	for _, e := range events {
		f := geojson.NewFeature(orb.Point{e.CentroidLon, e.CentroidLat})
		f.Properties["event_id"] = e.EventID
		f.Properties["start_time"] = e.StartTime
		f.Properties["end_time"] = e.EndTime
		f.Properties["duration_sec"] = e.DurationSec
		f.Properties["drift_radius_m"] = e.DriftRadiusM
		f.Properties["num_points"] = e.NumPoints
		f.Properties["source_track_id"] = e.SourceTrackID
		f.Properties["quality_flag"] = e.QualityFlag.String()
		f.Properties["risk"] = e.Risk
		fc.Append(f)
	}
	enc := json.NewEncoder(w)
	return enc.Encode(fc)
}
