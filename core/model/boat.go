package model

import "fmt"

// PatrolBoat describes a boat available for one shift of event visits.
type PatrolBoat struct {
	BoatID       string
	BaseLat      float64 // start-of-shift latitude in degrees
	BaseLon      float64 // start-of-shift longitude in degrees
	SpeedMps     float64 // cruise speed in meters per second
	ShiftLimit   float64 // shift budget in seconds
	DetectBuffer float64 // fixed on-site dwell in seconds; 0 means dwell the event duration
}

// Validate checks that the boat configuration is sound.
// Speed and shift budget must both be positive.
func (b PatrolBoat) Validate() error {
	if b.SpeedMps <= 0 {
		return fmt.Errorf("speed must be positive, got %v", b.SpeedMps)
	}
	if b.ShiftLimit <= 0 {
		return fmt.Errorf("shift limit must be positive, got %v", b.ShiftLimit)
	}
	return nil
}
