package datafile

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/Asiantown/GeoEvents/core/model"
)

var assignmentColumns = []string{"boat_id", "events", "total_weight", "utilization", "time_used"}

// WriteAssignments emits one CSV row per boat. Visited event ids are
// semicolon-joined in visit order.
func WriteAssignments(w io.Writer, assignments []model.Assignment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(assignmentColumns); err != nil {
		return err
	}
	for _, a := range assignments {
		ids := make([]string, len(a.Events))
		for i, id := range a.Events {
			ids[i] = strconv.Itoa(id)
		}
		rec := []string{
			a.BoatID,
			strings.Join(ids, ";"),
			formatFloat(a.TotalWeight),
			formatFloat(a.Utilization),
			formatFloat(a.TimeUsed),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type assignmentRecord struct {
	BoatID      string  `json:"boat_id"`
	Events      []int   `json:"events"`
	TotalWeight float64 `json:"total_weight"`
	Utilization float64 `json:"utilization"`
	TimeUsed    float64 `json:"time_used"`
}

// WritePerBoat emits assignments grouped by scenario name as indented JSON.
// Scenario keys map to lists of per-boat itineraries.
func WritePerBoat(w io.Writer, byScenario map[string][]model.Assignment) error {
	out := make(map[string][]assignmentRecord, len(byScenario))
	for name, assignments := range byScenario {
		records := make([]assignmentRecord, len(assignments))
		for i, a := range assignments {
			records[i] = assignmentRecord{
				BoatID:      a.BoatID,
				Events:      a.Events,
				TotalWeight: a.TotalWeight,
				Utilization: a.Utilization,
				TimeUsed:    a.TimeUsed,
			}
		}
		out[name] = records
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
