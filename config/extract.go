package config

import "fmt"

// ExtractConfig provides fallback thresholds for the extract command when
// the corresponding flags are not set. Zero thresholds mean "no fallback":
// the command then requires explicit flags.
type ExtractConfig struct {
	// TimeThreshold is the minimum stationary duration in seconds.
	TimeThreshold float64 `json:"time_threshold"`
	// DistanceThreshold is the neighborhood radius in meters.
	DistanceThreshold float64 `json:"distance_threshold"`
	// GapMerge merges events separated by at most this many seconds.
	GapMerge float64 `json:"gap_merge"`
	// MinPoints is the minimum sample count per event.
	MinPoints int `json:"min_points"`
}

// SetDefaults applies sane defaults.
func (c *ExtractConfig) SetDefaults() {
	if c.MinPoints == 0 {
		c.MinPoints = 2
	}
}

// Validate checks field ranges.
func (c ExtractConfig) Validate() error {
	if c.TimeThreshold < 0 || c.DistanceThreshold < 0 || c.GapMerge < 0 {
		return fmt.Errorf("extraction thresholds must not be negative")
	}
	if c.MinPoints < 0 {
		return fmt.Errorf("min_points must not be negative")
	}
	return nil
}
