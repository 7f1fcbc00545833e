package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Asiantown/GeoEvents/core/metrics"
)

// Config groups the runtime settings shared by the command-line tools.
type Config struct {
	Logging LoggingConfig  `json:"logging"`
	Metrics metrics.Config `json:"metrics"`
	Extract ExtractConfig  `json:"extract"`
	Sweep   SweepConfig    `json:"sweep"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

// Load reads the configuration file at path. GE_-prefixed environment
// variables override file values, with __ separating nesting levels
// (GE_LOGGING__LEVEL=debug overrides logging.level).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("GE_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "ge_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	c.Logging.SetDefaults()
	c.Extract.SetDefaults()
	c.Sweep.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Extract.Validate(); err != nil {
		return err
	}
	return c.Sweep.Validate()
}
