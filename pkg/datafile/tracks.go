package datafile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Asiantown/GeoEvents/core/model"
)

// ReadTrackPoints parses "lat lon time" rows from r. Fields may be
// separated by whitespace or commas. Blank lines, #-comments, rows with
// fewer than three fields and rows whose leading fields do not parse as
// numbers (headers) are skipped.
func ReadTrackPoints(r io.Reader) ([]model.TrackPoint, error) {
	var points []model.TrackPoint
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(fields) < 3 {
			continue
		}
		lat, errLat := strconv.ParseFloat(fields[0], 64)
		lon, errLon := strconv.ParseFloat(fields[1], 64)
		ts, errTime := strconv.ParseFloat(fields[2], 64)
		if errLat != nil || errLon != nil || errTime != nil {
			continue
		}
		points = append(points, model.TrackPoint{Lat: lat, Lon: lon, Time: ts})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

// WriteTrackPoints emits points in the format ReadTrackPoints accepts, one
// whitespace-separated row per point.
func WriteTrackPoints(w io.Writer, points []model.TrackPoint) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "# lat lon time"); err != nil {
		return err
	}
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%.6f %.6f %.1f\n", p.Lat, p.Lon, p.Time); err != nil {
			return err
		}
	}
	return bw.Flush()
}
