// Package geo provides the great-circle distance shared by the event
// extractor and the patrol scheduler. Both must measure with the same
// routine so travel-time estimates stay consistent with the clustering
// that produced the events.
package geo

import "math"

// EarthRadiusMeters is the spherical earth radius used for all distance
// computations in this module.
const EarthRadiusMeters = 6371000.0

// Distance returns the haversine great-circle distance in meters between
// two lat/lon pairs expressed in degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMeters * c
}
