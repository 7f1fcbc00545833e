package geo

import (
	"math"
	"testing"
)

func TestDistanceZero(t *testing.T) {
	if d := Distance(48.85, 2.35, 48.85, 2.35); d != 0 {
		t.Fatalf("expected zero distance, got %f", d)
	}
}

func TestDistanceOneDegreeLatitude(t *testing.T) {
	// One degree of latitude is roughly 111.19 km on a 6371 km sphere.
	d := Distance(0, 0, 1, 0)
	want := EarthRadiusMeters * math.Pi / 180
	if math.Abs(d-want) > 1 {
		t.Fatalf("expected %f, got %f", want, d)
	}
}

func TestDistanceLongitudeShrinksWithLatitude(t *testing.T) {
	equator := Distance(0, 0, 0, 1)
	arctic := Distance(60, 0, 60, 1)
	if arctic >= equator {
		t.Fatalf("longitude step at 60N (%f) should be shorter than at equator (%f)", arctic, equator)
	}
	// cos(60 deg) = 0.5, so the ratio should be close to one half.
	if ratio := arctic / equator; math.Abs(ratio-0.5) > 0.01 {
		t.Fatalf("expected ratio near 0.5, got %f", ratio)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	ab := Distance(45.0, -1.5, 46.2, -2.7)
	ba := Distance(46.2, -2.7, 45.0, -1.5)
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("distance not symmetric: %f vs %f", ab, ba)
	}
}

func TestDistanceKnownPair(t *testing.T) {
	// Paris to London, roughly 343-344 km.
	d := Distance(48.8566, 2.3522, 51.5074, -0.1278)
	if d < 340000 || d > 348000 {
		t.Fatalf("Paris-London distance out of range: %f", d)
	}
}
