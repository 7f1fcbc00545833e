package simulator

import (
	"math/rand"

	"github.com/Asiantown/GeoEvents/core/model"
)

// GenerateTrack produces a raw vessel track alternating between loiter
// periods at the hotspot centers and straight transits between them. Loiter
// samples jitter within JitterM meters of the center, so extraction runs
// with a distance threshold comfortably above the jitter recover one event
// per loiter.
func GenerateTrack(cfg TrackConfig) ([]model.TrackPoint, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	var points []model.TrackPoint
	clock := 0.0
	for i := 0; i < cfg.Loiters; i++ {
		center := clusterCenters[i%len(clusterCenters)]
		end := clock + cfg.LoiterDuration
		for ; clock <= end; clock += cfg.SampleInterval {
			lat, lon := offsetPoint(rng, center[0], center[1], cfg.JitterM)
			points = append(points, model.TrackPoint{Lat: lat, Lon: lon, Time: clock})
		}
		if i == cfg.Loiters-1 {
			break
		}
		next := clusterCenters[(i+1)%len(clusterCenters)]
		steps := int(cfg.TransitDuration / cfg.SampleInterval)
		for s := 1; s <= steps; s++ {
			frac := float64(s) / float64(steps+1)
			points = append(points, model.TrackPoint{
				Lat:  center[0] + frac*(next[0]-center[0]),
				Lon:  center[1] + frac*(next[1]-center[1]),
				Time: clock,
			})
			clock += cfg.SampleInterval
		}
	}
	return points, nil
}
