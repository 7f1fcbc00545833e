package simulator

import "fmt"

// EventConfig holds parameters for bulk synthetic event generation. Zero
// values fall back to the defaults used by the command-line tool.
type EventConfig struct {
	NumVessels      int     // distinct source tracks to simulate
	EventsPerVessel int     // loiter events attempted per vessel
	Horizon         float64 // planning horizon in seconds
	MinDuration     float64 // shortest event duration in seconds
	MaxDuration     float64 // longest event duration in seconds
	MinGap          float64 // shortest gap between a vessel's events
	MaxGap          float64 // longest gap between a vessel's events
	ClusterRadiusM  float64 // spread of event centroids around hotspot centers
	Seed            int64
}

// SetDefaults fills unset fields with the standard generator parameters.
func (c *EventConfig) SetDefaults() {
	if c.NumVessels == 0 {
		c.NumVessels = 5
	}
	if c.EventsPerVessel == 0 {
		c.EventsPerVessel = 4
	}
	if c.Horizon == 0 {
		c.Horizon = 86400
	}
	if c.MinDuration == 0 {
		c.MinDuration = 600
	}
	if c.MaxDuration == 0 {
		c.MaxDuration = 3600
	}
	if c.MinGap == 0 {
		c.MinGap = 300
	}
	if c.MaxGap == 0 {
		c.MaxGap = 3600
	}
	if c.ClusterRadiusM == 0 {
		c.ClusterRadiusM = 3000
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
}

// Validate checks that the ranges are usable.
func (c EventConfig) Validate() error {
	if c.NumVessels < 0 || c.EventsPerVessel < 0 {
		return fmt.Errorf("vessel and event counts must not be negative")
	}
	if c.MinDuration < 0 || c.MaxDuration < c.MinDuration {
		return fmt.Errorf("duration range [%v, %v] invalid", c.MinDuration, c.MaxDuration)
	}
	if c.MinGap < 0 || c.MaxGap < c.MinGap {
		return fmt.Errorf("gap range [%v, %v] invalid", c.MinGap, c.MaxGap)
	}
	if c.ClusterRadiusM < 0 {
		return fmt.Errorf("cluster radius must not be negative")
	}
	return nil
}

// TrackConfig holds parameters for raw track generation: a vessel
// alternating between loiter periods at hotspot centers and transits
// between them.
type TrackConfig struct {
	Loiters         int     // stationary periods to embed
	LoiterDuration  float64 // seconds spent at each loiter point
	TransitDuration float64 // seconds traveling between loiter points
	SampleInterval  float64 // seconds between position fixes
	JitterM         float64 // max offset around a loiter point, meters
	Seed            int64
}

// SetDefaults fills unset fields with the standard generator parameters.
func (c *TrackConfig) SetDefaults() {
	if c.Loiters == 0 {
		c.Loiters = 3
	}
	if c.LoiterDuration == 0 {
		c.LoiterDuration = 1800
	}
	if c.TransitDuration == 0 {
		c.TransitDuration = 600
	}
	if c.SampleInterval == 0 {
		c.SampleInterval = 30
	}
	if c.JitterM == 0 {
		c.JitterM = 15
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
}

// Validate checks that the ranges are usable.
func (c TrackConfig) Validate() error {
	if c.Loiters < 1 {
		return fmt.Errorf("at least one loiter period required")
	}
	if c.SampleInterval <= 0 {
		return fmt.Errorf("sample interval must be positive")
	}
	if c.LoiterDuration < c.SampleInterval {
		return fmt.Errorf("loiter duration %v shorter than sample interval %v", c.LoiterDuration, c.SampleInterval)
	}
	if c.TransitDuration < 0 || c.JitterM < 0 {
		return fmt.Errorf("transit duration and jitter must not be negative")
	}
	return nil
}
