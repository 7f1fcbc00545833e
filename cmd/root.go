package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Asiantown/GeoEvents/config"
	"github.com/Asiantown/GeoEvents/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "geoevents",
	Short: "Stationary-event extraction and patrol allocation",
	Long: `geoevents turns raw vessel tracks into stationary events and allocates
patrol boats across them. Subcommands cover the full pipeline: extraction,
allocation, scenario sweeps, synthetic data, an LP reference bound and
report plotting.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configured file and applies the log level. When the
// default path is absent, built-in defaults apply; an explicitly given path
// must exist.
func loadConfig() (*config.Config, error) {
	if !rootCmd.PersistentFlags().Lookup("config").Changed {
		if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
			return config.Default(), nil
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, err
	}
	return cfg, nil
}

// withOutput writes through fn into path, or into fallback when path is
// empty.
func withOutput(path string, fallback io.Writer, fn func(io.Writer) error) error {
	if path == "" {
		return fn(fallback)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// withInput reads through fn from path.
func withInput(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return fn(f)
}
