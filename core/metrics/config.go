package metrics

import "github.com/Asiantown/GeoEvents/core/factory"

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
}
