package datafile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Asiantown/GeoEvents/core/model"
)

var eventColumns = []string{
	"event_id", "start_time", "end_time", "duration_sec",
	"centroid_lat", "centroid_lon", "drift_radius_m", "num_points",
	"source_track_id", "quality_flag", "risk",
}

// WriteEvents emits events as CSV with the canonical column set.
func WriteEvents(w io.Writer, events []model.StationaryEvent) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(eventColumns); err != nil {
		return err
	}
	for _, e := range events {
		rec := []string{
			strconv.Itoa(e.EventID),
			formatFloat(e.StartTime),
			formatFloat(e.EndTime),
			formatFloat(e.DurationSec),
			formatFloat(e.CentroidLat),
			formatFloat(e.CentroidLon),
			formatFloat(e.DriftRadiusM),
			strconv.Itoa(e.NumPoints),
			e.SourceTrackID,
			e.QualityFlag.String(),
			formatFloat(e.Risk),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadEvents parses an event CSV. Columns are matched by header name, so
// their order does not matter. A missing risk column (or empty cell)
// defaults to 1.0 and a missing quality_flag defaults to good, matching
// files written before those columns existed.
func ReadEvents(r io.Reader) ([]model.StationaryEvent, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range eventColumns[:8] {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("events csv: missing column %s", name)
		}
	}

	var events []model.StationaryEvent
	row := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row++
		e, err := parseEventRecord(rec, col)
		if err != nil {
			return nil, fmt.Errorf("events csv row %d: %w", row, err)
		}
		events = append(events, e)
	}
	return events, nil
}

func parseEventRecord(rec []string, col map[string]int) (model.StationaryEvent, error) {
	get := func(name string) string {
		if i, ok := col[name]; ok && i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	var e model.StationaryEvent
	var err error
	if e.EventID, err = strconv.Atoi(get("event_id")); err != nil {
		return e, fmt.Errorf("event_id: %w", err)
	}
	if e.StartTime, err = strconv.ParseFloat(get("start_time"), 64); err != nil {
		return e, fmt.Errorf("start_time: %w", err)
	}
	if e.EndTime, err = strconv.ParseFloat(get("end_time"), 64); err != nil {
		return e, fmt.Errorf("end_time: %w", err)
	}
	if e.DurationSec, err = strconv.ParseFloat(get("duration_sec"), 64); err != nil {
		return e, fmt.Errorf("duration_sec: %w", err)
	}
	if e.CentroidLat, err = strconv.ParseFloat(get("centroid_lat"), 64); err != nil {
		return e, fmt.Errorf("centroid_lat: %w", err)
	}
	if e.CentroidLon, err = strconv.ParseFloat(get("centroid_lon"), 64); err != nil {
		return e, fmt.Errorf("centroid_lon: %w", err)
	}
	if e.DriftRadiusM, err = strconv.ParseFloat(get("drift_radius_m"), 64); err != nil {
		return e, fmt.Errorf("drift_radius_m: %w", err)
	}
	if e.NumPoints, err = strconv.Atoi(get("num_points")); err != nil {
		return e, fmt.Errorf("num_points: %w", err)
	}
	e.SourceTrackID = get("source_track_id")
	e.QualityFlag = model.ParseQuality(get("quality_flag"))
	e.Risk = model.DefaultRisk
	if s := get("risk"); s != "" {
		if e.Risk, err = strconv.ParseFloat(s, 64); err != nil {
			return e, fmt.Errorf("risk: %w", err)
		}
	}
	return e, nil
}
