package extract

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/Asiantown/GeoEvents/core/geo"
	"github.com/Asiantown/GeoEvents/core/model"
)

func loiterPoints(lat, lon, start, end, step float64) []model.TrackPoint {
	var pts []model.TrackPoint
	for t := start; t <= end; t += step {
		pts = append(pts, model.TrackPoint{Lat: lat, Lon: lon, Time: t})
	}
	return pts
}

func TestEventsSingleLoiter(t *testing.T) {
	pts := loiterPoints(0, 0, 0, 120, 2)
	events, err := Events(pts, Options{TimeThreshold: 60, DistanceThreshold: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event got %d", len(events))
	}
	e := events[0]
	if e.EventID != 1 {
		t.Errorf("expected id 1 got %d", e.EventID)
	}
	if e.StartTime != 0 || e.EndTime != 120 || e.DurationSec != 120 {
		t.Errorf("unexpected span: start=%v end=%v duration=%v", e.StartTime, e.EndTime, e.DurationSec)
	}
	if e.NumPoints != 61 {
		t.Errorf("expected 61 points got %d", e.NumPoints)
	}
	if e.QualityFlag != model.QualityGood {
		t.Errorf("expected good quality got %v", e.QualityFlag)
	}
	if e.CentroidLat != 0 || e.CentroidLon != 0 || e.DriftRadiusM != 0 {
		t.Errorf("unexpected centroid: lat=%v lon=%v radius=%v", e.CentroidLat, e.CentroidLon, e.DriftRadiusM)
	}
	if e.Risk != 1 {
		t.Errorf("expected default risk 1 got %v", e.Risk)
	}
}

func TestEventsRejectsBadParameters(t *testing.T) {
	pts := loiterPoints(0, 0, 0, 120, 2)
	for _, opts := range []Options{
		{TimeThreshold: 0, DistanceThreshold: 50},
		{TimeThreshold: 60, DistanceThreshold: 0},
		{TimeThreshold: -1, DistanceThreshold: 50},
		{TimeThreshold: 60, DistanceThreshold: -5},
	} {
		if _, err := Events(pts, opts); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("expected ErrInvalidParameter for %+v, got %v", opts, err)
		}
	}
}

func TestEventsEmptyInput(t *testing.T) {
	events, err := Events(nil, Options{TimeThreshold: 60, DistanceThreshold: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events got %d", len(events))
	}
}

func TestEventsOrderIndependent(t *testing.T) {
	pts := loiterPoints(0, 0, 0, 120, 2)
	pts = append(pts, loiterPoints(0.5, 0.5, 300, 500, 5)...)
	opts := Options{TimeThreshold: 60, DistanceThreshold: 50}

	ordered, err := Events(pts, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ordered) != 2 {
		t.Fatalf("expected 2 events got %d", len(ordered))
	}

	shuffled := make([]model.TrackPoint, len(pts))
	copy(shuffled, pts)
	r := rand.New(rand.NewSource(7))
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	fromShuffled, err := Events(shuffled, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(ordered, fromShuffled) {
		t.Fatalf("shuffled input changed the result:\n%+v\nvs\n%+v", ordered, fromShuffled)
	}
}

func TestEventsInputNotMutated(t *testing.T) {
	pts := []model.TrackPoint{
		{Lat: 0, Lon: 0, Time: 120},
		{Lat: 0, Lon: 0, Time: 0},
		{Lat: 0, Lon: 0, Time: 60},
	}
	if _, err := Events(pts, Options{TimeThreshold: 50, DistanceThreshold: 50}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pts[0].Time != 120 || pts[1].Time != 0 || pts[2].Time != 60 {
		t.Fatalf("input slice was reordered: %+v", pts)
	}
}

func TestEventsAnchorRejectionAdvancesOnePoint(t *testing.T) {
	// An excursion two seconds in rejects the first anchor, and the
	// excursion point itself cannot anchor either. The sweep must advance
	// one point at a time so the loiter from t=4 is still found.
	pts := []model.TrackPoint{
		{Lat: 0, Lon: 0, Time: 0},
		{Lat: 0.5, Lon: 0, Time: 2},
	}
	pts = append(pts, loiterPoints(0, 0, 4, 200, 2)...)

	events, err := Events(pts, Options{TimeThreshold: 60, DistanceThreshold: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event got %d", len(events))
	}
	e := events[0]
	if e.StartTime != 4 || e.EndTime != 200 {
		t.Errorf("unexpected span: start=%v end=%v", e.StartTime, e.EndTime)
	}
	if e.NumPoints != 99 {
		t.Errorf("expected 99 points got %d", e.NumPoints)
	}
}

func TestEventsSparseQualityByMedianInterval(t *testing.T) {
	// Four samples 50s apart confirm stationarity but sample far too
	// thinly: the median interval exceeds a quarter of the threshold.
	pts := []model.TrackPoint{
		{Lat: 0, Lon: 0, Time: 0},
		{Lat: 0, Lon: 0, Time: 50},
		{Lat: 0, Lon: 0, Time: 100},
		{Lat: 0, Lon: 0, Time: 150},
	}
	events, err := Events(pts, Options{TimeThreshold: 60, DistanceThreshold: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event got %d", len(events))
	}
	e := events[0]
	if e.NumPoints != 4 || e.DurationSec != 150 {
		t.Errorf("unexpected event: %+v", e)
	}
	if e.QualityFlag != model.QualitySparse {
		t.Errorf("expected sparse quality got %v", e.QualityFlag)
	}
}

func TestEventsStopsWhenTrailingDataShort(t *testing.T) {
	// The second cluster only spans 20s, below the threshold, so once the
	// sweep reaches it there is no way to confirm stationarity and the
	// whole run stops.
	pts := loiterPoints(0, 0, 0, 120, 2)
	pts = append(pts, loiterPoints(1, 1, 130, 150, 2)...)

	events, err := Events(pts, Options{TimeThreshold: 60, DistanceThreshold: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event got %d", len(events))
	}
	if events[0].EndTime != 120 {
		t.Errorf("expected first cluster only, got end=%v", events[0].EndTime)
	}
}

func TestEventsDistanceBoundaryInclusive(t *testing.T) {
	const latOff = 0.00045 // roughly 50 m north
	threshold := geo.Distance(0, 0, latOff, 0)
	pts := []model.TrackPoint{
		{Lat: 0, Lon: 0, Time: 0},
		{Lat: latOff, Lon: 0, Time: 30},
		{Lat: 0, Lon: 0, Time: 70},
		{Lat: 0, Lon: 0, Time: 120},
	}
	events, err := Events(pts, Options{TimeThreshold: 60, DistanceThreshold: threshold})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A point at exactly the threshold distance is inside the bound. Were
	// the comparison strict, the first anchor would be rejected and no
	// event could be confirmed at all.
	if len(events) != 1 {
		t.Fatalf("expected 1 event got %d", len(events))
	}
	if events[0].NumPoints != 4 {
		t.Errorf("expected 4 points got %d", events[0].NumPoints)
	}
}

func TestEventsMinPointsFiltersSmallWindows(t *testing.T) {
	pts := []model.TrackPoint{
		{Lat: 0, Lon: 0, Time: 0},
		{Lat: 0, Lon: 0, Time: 40},
		{Lat: 0, Lon: 0, Time: 80},
	}
	events, err := Events(pts, Options{TimeThreshold: 60, DistanceThreshold: 50, MinPoints: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events with MinPoints=5, got %d", len(events))
	}

	events, err = Events(pts, Options{TimeThreshold: 60, DistanceThreshold: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event with default MinPoints, got %d", len(events))
	}
}

func TestEventsTrackIDCopied(t *testing.T) {
	pts := loiterPoints(0, 0, 0, 120, 2)
	events, err := Events(pts, Options{TimeThreshold: 60, DistanceThreshold: 50, TrackID: "VESSEL_07"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].SourceTrackID != "VESSEL_07" {
		t.Fatalf("expected track id on event, got %+v", events)
	}
}
