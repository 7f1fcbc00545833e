package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Asiantown/GeoEvents/core/extract"
	"github.com/Asiantown/GeoEvents/core/metrics"
	"github.com/Asiantown/GeoEvents/core/model"
	"github.com/Asiantown/GeoEvents/infra/logger"
	"github.com/Asiantown/GeoEvents/pkg/datafile"
)

var (
	extractTimeThreshold float64
	extractDistThreshold float64
	extractGapMerge      float64
	extractMinPoints     int
	extractTrackID       string
	extractOutput        string
	extractGeoJSON       string
)

var extractCmd = &cobra.Command{
	Use:   "extract [tracks-file]",
	Short: "Convert raw track points into stationary events",
	Long: `extract reads "lat lon time" rows from the given file (or stdin) and
writes the detected stationary events as CSV. Thresholds fall back to the
extract section of the configuration file when flags are omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().Float64Var(&extractTimeThreshold, "time-threshold", 0, "minimum stationary duration in seconds")
	extractCmd.Flags().Float64Var(&extractDistThreshold, "distance-threshold", 0, "neighborhood radius in meters")
	extractCmd.Flags().Float64Var(&extractGapMerge, "gap-merge", 0, "merge events separated by at most this many seconds")
	extractCmd.Flags().IntVar(&extractMinPoints, "min-points", 0, "minimum samples per event")
	extractCmd.Flags().StringVar(&extractTrackID, "track-id", "", "identifier stamped on extracted events")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "events CSV path (stdout when omitted)")
	extractCmd.Flags().StringVar(&extractGeoJSON, "geojson", "", "optional GeoJSON output path")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts := extract.Options{
		TimeThreshold:     extractTimeThreshold,
		DistanceThreshold: extractDistThreshold,
		GapMerge:          extractGapMerge,
		MinPoints:         extractMinPoints,
		TrackID:           extractTrackID,
	}
	if opts.TimeThreshold == 0 {
		opts.TimeThreshold = cfg.Extract.TimeThreshold
	}
	if opts.DistanceThreshold == 0 {
		opts.DistanceThreshold = cfg.Extract.DistanceThreshold
	}
	if opts.GapMerge == 0 {
		opts.GapMerge = cfg.Extract.GapMerge
	}
	if opts.MinPoints == 0 {
		opts.MinPoints = cfg.Extract.MinPoints
	}
	if opts.TimeThreshold <= 0 || opts.DistanceThreshold <= 0 {
		return fmt.Errorf("time and distance thresholds are required, via flags or the extract config section")
	}

	var points []model.TrackPoint
	if len(args) == 1 {
		err = withInput(args[0], func(r io.Reader) error {
			var rerr error
			points, rerr = datafile.ReadTrackPoints(r)
			return rerr
		})
	} else {
		points, err = datafile.ReadTrackPoints(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("read tracks: %w", err)
	}

	log := logger.New("extract")
	runID := uuid.NewString()
	start := time.Now()
	events, err := extract.Events(points, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	sparse := 0
	for _, e := range events {
		if e.QualityFlag == model.QualitySparse {
			sparse++
		}
	}
	sink, err := metrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return fmt.Errorf("metrics sink: %w", err)
	}
	if err := sink.RecordExtractRun(metrics.ExtractRun{
		RunID:        runID,
		TrackID:      extractTrackID,
		Points:       len(points),
		Events:       len(events),
		SparseEvents: sparse,
		Elapsed:      elapsed,
		Time:         time.Now(),
	}); err != nil {
		log.Warnf("record extract run: %v", err)
	}
	log.Infof("run %s: %d points -> %d events (%d sparse)", runID, len(points), len(events), sparse)

	if err := withOutput(extractOutput, cmd.OutOrStdout(), func(w io.Writer) error {
		return datafile.WriteEvents(w, events)
	}); err != nil {
		return fmt.Errorf("write events: %w", err)
	}
	if extractGeoJSON != "" {
		if err := withOutput(extractGeoJSON, os.Stdout, func(w io.Writer) error {
			return datafile.WriteEventsGeoJSON(w, events)
		}); err != nil {
			return fmt.Errorf("write geojson: %w", err)
		}
	}
	return nil
}
