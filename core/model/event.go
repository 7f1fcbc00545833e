package model

// DefaultRisk is the weight assumed for events that were not scored by
// upstream risk tooling.
const DefaultRisk = 1.0

// Quality labels how trustworthy an extracted event is.
type Quality int

const (
	// QualityGood marks events backed by a dense, regular point sample.
	QualityGood Quality = iota
	// QualitySparse marks events with too few points or irregular sampling.
	QualitySparse
)

// String returns the flag as written in event files.
func (q Quality) String() string {
	if q == QualitySparse {
		return "sparse"
	}
	return "good"
}

// ParseQuality maps a textual flag to a Quality. Unknown or empty values
// default to good, mirroring how upstream tooling treats the column.
func ParseQuality(s string) Quality {
	if s == "sparse" {
		return QualitySparse
	}
	return QualityGood
}

// StationaryEvent is a period during which a vessel loitered inside a small
// spatial neighborhood of its anchor point.
type StationaryEvent struct {
	EventID       int     // 1-based id, unique within one extraction run
	StartTime     float64 // time of the first contributing point, seconds
	EndTime       float64 // time of the last contributing point, seconds
	DurationSec   float64 // EndTime - StartTime
	CentroidLat   float64 // arithmetic mean latitude of contributing points
	CentroidLon   float64 // arithmetic mean longitude of contributing points
	DriftRadiusM  float64 // max distance in meters from the centroid
	NumPoints     int     // number of contributing points
	SourceTrackID string  // identifier of the originating track
	QualityFlag   Quality
	Risk          float64 // relative priority weight, 1.0 unless set upstream
}

// Value returns the scheduling weight of the event: risk times duration.
func (e StationaryEvent) Value() float64 {
	return e.Risk * e.DurationSec
}
