package config

import "fmt"

// SweepConfig tunes scenario sweep execution.
type SweepConfig struct {
	// Parallel bounds how many scenarios run concurrently.
	Parallel int `json:"parallel"`
	// PromAddr, when set, serves Prometheus scrapes on this address for
	// the duration of a sweep.
	PromAddr string `json:"prom_addr"`
}

// SetDefaults applies sane defaults.
func (c *SweepConfig) SetDefaults() {
	if c.Parallel == 0 {
		c.Parallel = 1
	}
}

// Validate checks field ranges.
func (c SweepConfig) Validate() error {
	if c.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1")
	}
	return nil
}
