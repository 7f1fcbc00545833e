package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Asiantown/GeoEvents/benchmark"
	"github.com/Asiantown/GeoEvents/core/model"
	"github.com/Asiantown/GeoEvents/pkg/datafile"
)

var (
	benchmarkEvents string
	benchmarkBoats  string
	benchmarkLimit  int
)

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Score the greedy allocator against an LP relaxation",
	RunE:  runBenchmark,
}

func init() {
	benchmarkCmd.Flags().StringVar(&benchmarkEvents, "events", "", "events CSV")
	benchmarkCmd.Flags().StringVar(&benchmarkBoats, "boats", "", "fleet JSON")
	benchmarkCmd.Flags().IntVar(&benchmarkLimit, "limit", benchmark.DefaultEventLimit, "events considered by the LP")
	_ = benchmarkCmd.MarkFlagRequired("events")
	_ = benchmarkCmd.MarkFlagRequired("boats")
	rootCmd.AddCommand(benchmarkCmd)
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	var events []model.StationaryEvent
	if err := withInput(benchmarkEvents, func(r io.Reader) error {
		var rerr error
		events, rerr = datafile.ReadEvents(r)
		return rerr
	}); err != nil {
		return fmt.Errorf("read events: %w", err)
	}
	var boats []model.PatrolBoat
	if err := withInput(benchmarkBoats, func(r io.Reader) error {
		var rerr error
		boats, rerr = datafile.ReadBoats(r)
		return rerr
	}); err != nil {
		return fmt.Errorf("read boats: %w", err)
	}

	res, err := benchmark.Compare(events, boats, benchmarkLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "LP objective:        %.2f\n", res.LPObjective)
	fmt.Fprintf(out, "Heuristic objective: %.2f\n", res.HeuristicObjective)
	fmt.Fprintf(out, "Gap:                 %.2f%%\n", res.GapPercent)

	ids := make([]string, 0, len(res.LPSelections))
	for id := range res.LPSelections {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(out, "  %s: %v\n", id, res.LPSelections[id])
	}
	return nil
}
