package datafile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Asiantown/GeoEvents/scenario"
)

var summaryColumns = []string{
	"scenario", "events_covered", "unserved_events", "total_weight",
	"risk_coverage_ratio", "avg_utilization", "max_utilization",
}

// WriteSummary emits one CSV row per scenario summary.
func WriteSummary(w io.Writer, rows []scenario.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryColumns); err != nil {
		return err
	}
	for _, s := range rows {
		rec := []string{
			s.Scenario,
			strconv.Itoa(s.EventsCovered),
			strconv.Itoa(s.UnservedEvents),
			formatFloat(s.TotalWeight),
			formatFloat(s.RiskCoverageRatio),
			formatFloat(s.AvgUtilization),
			formatFloat(s.MaxUtilization),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadSummary parses a summary CSV written by WriteSummary. Columns are
// matched by header name.
func ReadSummary(r io.Reader) ([]scenario.Summary, error) {
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
	for _, name := range summaryColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("summary csv: missing column %s", name)
		}
	}

	var rows []scenario.Summary
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		s, err := parseSummaryRecord(rec, col)
		if err != nil {
			return nil, fmt.Errorf("summary csv row %d: %w", line, err)
		}
		rows = append(rows, s)
	}
	return rows, nil
}

func parseSummaryRecord(rec []string, col map[string]int) (scenario.Summary, error) {
	get := func(name string) string {
		if i, ok := col[name]; ok && i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	var s scenario.Summary
	var err error
	s.Scenario = get("scenario")
	if s.EventsCovered, err = strconv.Atoi(get("events_covered")); err != nil {
		return s, fmt.Errorf("events_covered: %w", err)
	}
	if s.UnservedEvents, err = strconv.Atoi(get("unserved_events")); err != nil {
		return s, fmt.Errorf("unserved_events: %w", err)
	}
	if s.TotalWeight, err = strconv.ParseFloat(get("total_weight"), 64); err != nil {
		return s, fmt.Errorf("total_weight: %w", err)
	}
	if s.RiskCoverageRatio, err = strconv.ParseFloat(get("risk_coverage_ratio"), 64); err != nil {
		return s, fmt.Errorf("risk_coverage_ratio: %w", err)
	}
	if s.AvgUtilization, err = strconv.ParseFloat(get("avg_utilization"), 64); err != nil {
		return s, fmt.Errorf("avg_utilization: %w", err)
	}
	if s.MaxUtilization, err = strconv.ParseFloat(get("max_utilization"), 64); err != nil {
		return s, fmt.Errorf("max_utilization: %w", err)
	}
	return s, nil
}
