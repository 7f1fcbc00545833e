package model

// TrackPoint is a single GPS fix on a vessel track. Time is expressed in
// seconds on an arbitrary monotonic epoch; only differences between points
// are meaningful.
type TrackPoint struct {
	Lat  float64 // latitude in degrees
	Lon  float64 // longitude in degrees
	Time float64 // seconds since an arbitrary epoch
}
