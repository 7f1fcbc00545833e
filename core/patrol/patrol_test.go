package patrol

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/Asiantown/GeoEvents/core/geo"
	"github.com/Asiantown/GeoEvents/core/model"
)

func TestAssignRejectsInvalidBoat(t *testing.T) {
	events := []model.StationaryEvent{{EventID: 1, EndTime: 600, DurationSec: 600, Risk: 1}}
	cases := [][]model.PatrolBoat{
		{{BoatID: "A", SpeedMps: 0, ShiftLimit: 3600}},
		{{BoatID: "A", SpeedMps: 5, ShiftLimit: 0}},
		{{BoatID: "A", SpeedMps: 5, ShiftLimit: 3600}, {BoatID: "B", SpeedMps: -2, ShiftLimit: 3600}},
	}
	for _, boats := range cases {
		if _, err := Assign(events, boats); !errors.Is(err, ErrInvalidBoat) {
			t.Fatalf("expected ErrInvalidBoat for %+v, got %v", boats, err)
		}
	}
}

func TestAssignEmptyInputs(t *testing.T) {
	asns, err := Assign(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(asns) != 0 {
		t.Fatalf("expected no assignments got %d", len(asns))
	}

	boats := []model.PatrolBoat{{BoatID: "A", SpeedMps: 5, ShiftLimit: 3600}}
	asns, err = Assign(nil, boats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(asns) != 1 {
		t.Fatalf("expected 1 assignment got %d", len(asns))
	}
	a := asns[0]
	if a.BoatID != "A" || len(a.Events) != 0 || a.TimeUsed != 0 || a.Utilization != 0 || a.TotalWeight != 0 {
		t.Fatalf("expected idle assignment got %+v", a)
	}
}

func TestAssignShiftLimitExcludesShortShiftBoat(t *testing.T) {
	// One 600s event close to base. Serving it costs roughly 600s of
	// travel plus dwell, beyond boat A's budget but well within boat B's.
	events := []model.StationaryEvent{{
		EventID: 1, StartTime: 0, EndTime: 600, DurationSec: 600,
		CentroidLat: 0, CentroidLon: 0.001, Risk: 1,
	}}
	boats := []model.PatrolBoat{
		{BoatID: "A", BaseLat: 0, BaseLon: 0, SpeedMps: 5, ShiftLimit: 300},
		{BoatID: "B", BaseLat: 0, BaseLon: 0, SpeedMps: 5, ShiftLimit: 3600},
	}

	asns, err := Assign(events, boats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(asns) != 2 {
		t.Fatalf("expected 2 assignments got %d", len(asns))
	}
	a, b := asns[0], asns[1]
	if len(a.Events) != 0 || a.TimeUsed != 0 || a.TotalWeight != 0 {
		t.Errorf("boat A should sit idle, got %+v", a)
	}
	if !reflect.DeepEqual(b.Events, []int{1}) {
		t.Fatalf("boat B should serve event 1, got %v", b.Events)
	}
	if b.TotalWeight != 600 {
		t.Errorf("expected weight 600 got %v", b.TotalWeight)
	}
	if math.Abs(b.TimeUsed-600) > 1e-6 {
		t.Errorf("expected ~600s used got %v", b.TimeUsed)
	}
	if math.Abs(b.Utilization-1.0/6) > 1e-9 {
		t.Errorf("expected utilization ~1/6 got %v", b.Utilization)
	}
}

func TestAssignDwellCappedByWindow(t *testing.T) {
	// Travel consumes 100s of the event's window, so with no detect
	// buffer the dwell is the 500s left, not the full 600s duration.
	events := []model.StationaryEvent{{
		EventID: 1, StartTime: 0, EndTime: 600, DurationSec: 600,
		CentroidLat: 0, CentroidLon: 0.01, Risk: 1,
	}}
	speed := geo.Distance(0, 0, 0, 0.01) / 100
	boats := []model.PatrolBoat{{BoatID: "A", SpeedMps: speed, ShiftLimit: 10000}}

	asns, err := Assign(events, boats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := asns[0]
	if !reflect.DeepEqual(a.Events, []int{1}) {
		t.Fatalf("expected event 1 got %v", a.Events)
	}
	if math.Abs(a.TimeUsed-600) > 1e-6 {
		t.Errorf("expected ~600s (100 travel + 500 dwell) got %v", a.TimeUsed)
	}
}

func TestAssignDetectBufferFixedDwell(t *testing.T) {
	events := []model.StationaryEvent{{
		EventID: 1, StartTime: 0, EndTime: 600, DurationSec: 600, Risk: 1,
	}}
	boats := []model.PatrolBoat{{BoatID: "A", SpeedMps: 5, ShiftLimit: 3600, DetectBuffer: 120}}

	asns, err := Assign(events, boats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := asns[0]
	if !reflect.DeepEqual(a.Events, []int{1}) {
		t.Fatalf("expected event 1 got %v", a.Events)
	}
	if a.TimeUsed != 120 {
		t.Errorf("expected fixed 120s dwell got %v", a.TimeUsed)
	}
	if a.Utilization != 120.0/3600.0 {
		t.Errorf("unexpected utilization %v", a.Utilization)
	}
}

func TestAssignDetectBufferExceedingWindowSkips(t *testing.T) {
	events := []model.StationaryEvent{{
		EventID: 1, StartTime: 0, EndTime: 600, DurationSec: 600, Risk: 1,
	}}
	boats := []model.PatrolBoat{{BoatID: "A", SpeedMps: 5, ShiftLimit: 3600, DetectBuffer: 700}}

	asns, err := Assign(events, boats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(asns[0].Events) != 0 || asns[0].TimeUsed != 0 {
		t.Fatalf("expected no visit when buffer exceeds window, got %+v", asns[0])
	}
}

func TestAssignPriorityBreaksEndTimeTies(t *testing.T) {
	// Both events close at the same time and only one can be served.
	// The more valuable one must win even though it appears second in
	// the input and has the later start.
	events := []model.StationaryEvent{
		{EventID: 1, StartTime: 100, EndTime: 600, DurationSec: 500, Risk: 1},
		{EventID: 2, StartTime: 200, EndTime: 600, DurationSec: 400, Risk: 2},
	}
	boats := []model.PatrolBoat{{BoatID: "A", SpeedMps: 5, ShiftLimit: 1000}}

	asns, err := Assign(events, boats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := asns[0]
	if !reflect.DeepEqual(a.Events, []int{2}) {
		t.Fatalf("expected high-value event 2 got %v", a.Events)
	}
	if a.TimeUsed != 500 {
		t.Errorf("expected 100 wait + 400 dwell got %v", a.TimeUsed)
	}
	if a.TotalWeight != 800 {
		t.Errorf("expected weight 800 got %v", a.TotalWeight)
	}
}

func TestAssignWaitsForWindowStart(t *testing.T) {
	events := []model.StationaryEvent{
		{EventID: 1, StartTime: 0, EndTime: 300, DurationSec: 300, Risk: 1},
		{EventID: 2, StartTime: 1000, EndTime: 1600, DurationSec: 600, Risk: 1},
	}
	boats := []model.PatrolBoat{{BoatID: "A", SpeedMps: 5, ShiftLimit: 10000}}

	asns, err := Assign(events, boats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := asns[0]
	if !reflect.DeepEqual(a.Events, []int{1, 2}) {
		t.Fatalf("expected visits [1 2] got %v", a.Events)
	}
	// 300 dwell, then 700 idle waiting for the second window, then 600.
	if a.TimeUsed != 1600 {
		t.Errorf("expected 1600s used got %v", a.TimeUsed)
	}
	if a.Utilization != 1600.0/10000.0 {
		t.Errorf("unexpected utilization %v", a.Utilization)
	}
}

func TestAssignOffsetRecomputedPerBoat(t *testing.T) {
	// Once boat A consumes the early event, boat B's pool starts at
	// t=1000 and its clock realigns, so B spends only the dwell.
	events := []model.StationaryEvent{
		{EventID: 1, StartTime: 0, EndTime: 300, DurationSec: 300, CentroidLat: 0, CentroidLon: 0, Risk: 1},
		{EventID: 2, StartTime: 1000, EndTime: 1600, DurationSec: 600, CentroidLat: 0.5, CentroidLon: 0.5, Risk: 1},
	}
	boats := []model.PatrolBoat{
		{BoatID: "A", BaseLat: 0, BaseLon: 0, SpeedMps: 5, ShiftLimit: 300},
		{BoatID: "B", BaseLat: 0.5, BaseLon: 0.5, SpeedMps: 5, ShiftLimit: 3600},
	}

	asns, err := Assign(events, boats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(asns[0].Events, []int{1}) {
		t.Fatalf("expected boat A on event 1, got %v", asns[0].Events)
	}
	if !reflect.DeepEqual(asns[1].Events, []int{2}) {
		t.Fatalf("expected boat B on event 2, got %v", asns[1].Events)
	}
	if asns[1].TimeUsed != 600 {
		t.Errorf("expected 600s for boat B got %v", asns[1].TimeUsed)
	}
}

func TestAssignNoDoubleBooking(t *testing.T) {
	events := []model.StationaryEvent{
		{EventID: 1, StartTime: 0, EndTime: 300, DurationSec: 300, Risk: 1},
		{EventID: 2, StartTime: 400, EndTime: 700, DurationSec: 300, Risk: 1},
	}
	boats := []model.PatrolBoat{
		{BoatID: "A", SpeedMps: 5, ShiftLimit: 10000},
		{BoatID: "B", SpeedMps: 5, ShiftLimit: 10000},
	}

	asns, err := Assign(events, boats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(asns[0].Events, []int{1, 2}) {
		t.Fatalf("expected boat A to take both events, got %v", asns[0].Events)
	}
	if len(asns[1].Events) != 0 {
		t.Fatalf("boat B must not re-serve claimed events, got %v", asns[1].Events)
	}

	seen := map[int]bool{}
	for _, a := range asns {
		for _, id := range a.Events {
			if seen[id] {
				t.Fatalf("event %d booked twice", id)
			}
			seen[id] = true
		}
	}
}

func TestAssignStaysWithinShiftLimits(t *testing.T) {
	var events []model.StationaryEvent
	for i := 1; i <= 5; i++ {
		events = append(events, model.StationaryEvent{
			EventID:     i,
			StartTime:   float64(1000 * i),
			EndTime:     float64(1000*i + 600),
			DurationSec: 600,
			CentroidLat: 0,
			CentroidLon: 0.01 * float64(i),
			Risk:        1 + 0.1*float64(i),
		})
	}
	boats := []model.PatrolBoat{
		{BoatID: "A", BaseLat: 0, BaseLon: 0, SpeedMps: 3, ShiftLimit: 2000},
		{BoatID: "B", BaseLat: 0, BaseLon: 0.05, SpeedMps: 4, ShiftLimit: 1500},
	}

	asns, err := Assign(events, boats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, a := range asns {
		limit := boats[i].ShiftLimit
		if a.TimeUsed > limit {
			t.Errorf("boat %s exceeded its shift: used %v of %v", a.BoatID, a.TimeUsed, limit)
		}
		if a.Utilization < 0 || a.Utilization > 1 {
			t.Errorf("boat %s utilization out of range: %v", a.BoatID, a.Utilization)
		}
		if want := a.TimeUsed / limit; a.Utilization != want {
			t.Errorf("boat %s utilization %v does not match time used %v", a.BoatID, a.Utilization, a.TimeUsed)
		}
	}
}

func TestAssignSkipsZeroWindowEvents(t *testing.T) {
	events := []model.StationaryEvent{{EventID: 1, StartTime: 100, EndTime: 100, DurationSec: 0, Risk: 1}}
	boats := []model.PatrolBoat{{BoatID: "A", SpeedMps: 5, ShiftLimit: 3600}}

	asns, err := Assign(events, boats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(asns[0].Events) != 0 {
		t.Fatalf("expected empty-window event to be skipped, got %v", asns[0].Events)
	}
}

func TestAssignInputsNotMutated(t *testing.T) {
	events := []model.StationaryEvent{
		{EventID: 1, StartTime: 500, EndTime: 900, DurationSec: 400, Risk: 1},
		{EventID: 2, StartTime: 0, EndTime: 600, DurationSec: 600, Risk: 3},
	}
	before := make([]model.StationaryEvent, len(events))
	copy(before, events)

	boats := []model.PatrolBoat{{BoatID: "A", SpeedMps: 5, ShiftLimit: 10000}}
	if _, err := Assign(events, boats); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(events, before) {
		t.Fatalf("input events were mutated:\n%+v\nvs\n%+v", events, before)
	}
}
