package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Asiantown/GeoEvents/core/metrics"
	"github.com/Asiantown/GeoEvents/core/model"
	"github.com/Asiantown/GeoEvents/core/patrol"
	"github.com/Asiantown/GeoEvents/infra/logger"
	"github.com/Asiantown/GeoEvents/pkg/datafile"
)

var assignOutput string

var assignCmd = &cobra.Command{
	Use:   "assign <events-csv> <boats-json>",
	Short: "Allocate patrol boats across stationary events",
	Args:  cobra.ExactArgs(2),
	RunE:  runAssign,
}

func init() {
	assignCmd.Flags().StringVarP(&assignOutput, "output", "o", "", "assignments CSV path (stdout when omitted)")
	rootCmd.AddCommand(assignCmd)
}

func runAssign(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var events []model.StationaryEvent
	if err := withInput(args[0], func(r io.Reader) error {
		var rerr error
		events, rerr = datafile.ReadEvents(r)
		return rerr
	}); err != nil {
		return fmt.Errorf("read events: %w", err)
	}
	var boats []model.PatrolBoat
	if err := withInput(args[1], func(r io.Reader) error {
		var rerr error
		boats, rerr = datafile.ReadBoats(r)
		return rerr
	}); err != nil {
		return fmt.Errorf("read boats: %w", err)
	}

	log := logger.New("assign")
	runID := uuid.NewString()
	start := time.Now()
	assignments, err := patrol.Assign(events, boats)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	assigned := 0
	var totalWeight float64
	for _, a := range assignments {
		assigned += len(a.Events)
		totalWeight += a.TotalWeight
	}
	sink, err := metrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return fmt.Errorf("metrics sink: %w", err)
	}
	if err := sink.RecordPatrolRun(metrics.PatrolRun{
		RunID:       runID,
		Boats:       len(boats),
		Events:      len(events),
		Assigned:    assigned,
		TotalWeight: totalWeight,
		Elapsed:     elapsed,
		Time:        time.Now(),
	}); err != nil {
		log.Warnf("record patrol run: %v", err)
	}
	log.Infof("run %s: %d/%d events assigned across %d boats", runID, assigned, len(events), len(boats))

	if err := withOutput(assignOutput, cmd.OutOrStdout(), func(w io.Writer) error {
		return datafile.WriteAssignments(w, assignments)
	}); err != nil {
		return fmt.Errorf("write assignments: %w", err)
	}
	return nil
}
