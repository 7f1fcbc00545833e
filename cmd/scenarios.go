package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Asiantown/GeoEvents/core/metrics"
	"github.com/Asiantown/GeoEvents/core/model"
	"github.com/Asiantown/GeoEvents/infra/logger"
	inframetrics "github.com/Asiantown/GeoEvents/infra/metrics"
	"github.com/Asiantown/GeoEvents/pkg/datafile"
	"github.com/Asiantown/GeoEvents/pkg/plot"
	"github.com/Asiantown/GeoEvents/scenario"
)

var (
	scenariosEvents   string
	scenariosBoats    string
	scenariosFile     string
	scenariosOutput   string
	scenariosPerBoat  string
	scenariosPlot     string
	scenariosParallel int
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Sweep the allocation across what-if scenarios",
	Long: `scenarios replays the boat allocation for every definition in a scenario
file, against the same base events and fleet, and writes one summary row per
scenario. Optional outputs cover per-boat itineraries and an HTML report.`,
	RunE: runScenarios,
}

func init() {
	scenariosCmd.Flags().StringVar(&scenariosEvents, "events", "", "base events CSV")
	scenariosCmd.Flags().StringVar(&scenariosBoats, "boats", "", "base fleet JSON")
	scenariosCmd.Flags().StringVar(&scenariosFile, "scenarios", "", "scenario definitions file, YAML or JSON")
	scenariosCmd.Flags().StringVarP(&scenariosOutput, "output", "o", "", "summary CSV path (stdout when omitted)")
	scenariosCmd.Flags().StringVar(&scenariosPerBoat, "per-boat-json", "", "optional per-boat itinerary JSON path")
	scenariosCmd.Flags().StringVar(&scenariosPlot, "plot", "", "optional HTML report path")
	scenariosCmd.Flags().IntVar(&scenariosParallel, "parallel", 0, "concurrent scenarios (sweep config when omitted)")
	_ = scenariosCmd.MarkFlagRequired("events")
	_ = scenariosCmd.MarkFlagRequired("boats")
	_ = scenariosCmd.MarkFlagRequired("scenarios")
	rootCmd.AddCommand(scenariosCmd)
}

func runScenarios(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New("scenarios")

	var events []model.StationaryEvent
	if err := withInput(scenariosEvents, func(r io.Reader) error {
		var rerr error
		events, rerr = datafile.ReadEvents(r)
		return rerr
	}); err != nil {
		return fmt.Errorf("read events: %w", err)
	}
	var boats []model.PatrolBoat
	if err := withInput(scenariosBoats, func(r io.Reader) error {
		var rerr error
		boats, rerr = datafile.ReadBoats(r)
		return rerr
	}); err != nil {
		return fmt.Errorf("read boats: %w", err)
	}
	defs, err := scenario.Load(scenariosFile)
	if err != nil {
		return fmt.Errorf("read scenarios: %w", err)
	}

	sink, err := metrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return fmt.Errorf("metrics sink: %w", err)
	}
	if cfg.Sweep.PromAddr != "" {
		go func() {
			if err := inframetrics.StartPromServer(ctx, cfg.Sweep.PromAddr); err != nil {
				log.Errorf("prom server: %v", err)
			}
		}()
	}

	parallel := scenariosParallel
	if parallel <= 0 {
		parallel = cfg.Sweep.Parallel
	}
	runner := scenario.Runner{
		Sink:    sink,
		Log:     log,
		RunID:   uuid.NewString(),
		Workers: parallel,
	}
	results, err := runner.Run(ctx, events, boats, defs)
	if err != nil {
		return err
	}
	log.Infof("run %s: %d scenarios evaluated", runner.RunID, len(results))

	summaries := make([]scenario.Summary, len(results))
	perBoat := make(map[string][]model.Assignment, len(results))
	for i, res := range results {
		summaries[i] = res.Summary
		perBoat[res.Definition.Name] = res.Assignments
	}

	if err := withOutput(scenariosOutput, cmd.OutOrStdout(), func(w io.Writer) error {
		return datafile.WriteSummary(w, summaries)
	}); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	if scenariosPerBoat != "" {
		if err := withOutput(scenariosPerBoat, os.Stdout, func(w io.Writer) error {
			return datafile.WritePerBoat(w, perBoat)
		}); err != nil {
			return fmt.Errorf("write per-boat itineraries: %w", err)
		}
	}
	if scenariosPlot != "" {
		if err := withOutput(scenariosPlot, os.Stdout, func(w io.Writer) error {
			return plot.Render(w, summaries, "", "")
		}); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
