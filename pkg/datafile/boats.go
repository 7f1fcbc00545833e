package datafile

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Asiantown/GeoEvents/core/model"
)

type boatRecord struct {
	BoatID       string  `json:"boat_id"`
	BaseLat      float64 `json:"base_lat"`
	BaseLon      float64 `json:"base_lon"`
	SpeedMps     float64 `json:"speed_mps"`
	ShiftLimit   float64 `json:"shift_limit"`
	DetectBuffer float64 `json:"detect_buffer"`
}

// ReadBoats parses a JSON array of patrol boat descriptions.
func ReadBoats(r io.Reader) ([]model.PatrolBoat, error) {
	var records []boatRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("boats json: %w", err)
	}
	boats := make([]model.PatrolBoat, len(records))
	for i, rec := range records {
		boats[i] = model.PatrolBoat{
			BoatID:       rec.BoatID,
			BaseLat:      rec.BaseLat,
			BaseLon:      rec.BaseLon,
			SpeedMps:     rec.SpeedMps,
			ShiftLimit:   rec.ShiftLimit,
			DetectBuffer: rec.DetectBuffer,
		}
	}
	return boats, nil
}

// WriteBoats emits the fleet as indented JSON in the format ReadBoats
// accepts.
func WriteBoats(w io.Writer, boats []model.PatrolBoat) error {
	records := make([]boatRecord, len(boats))
	for i, b := range boats {
		records[i] = boatRecord{
			BoatID:       b.BoatID,
			BaseLat:      b.BaseLat,
			BaseLon:      b.BaseLon,
			SpeedMps:     b.SpeedMps,
			ShiftLimit:   b.ShiftLimit,
			DetectBuffer: b.DetectBuffer,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
