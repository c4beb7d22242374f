package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp(5,0,1): got %v, want 1", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp(-5,0,1): got %v, want 0", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp(0.5,0,1): got %v, want 0.5", got)
	}
	// Swapped bounds are normalized.
	if got := Clamp(5, 1, 0); got != 1 {
		t.Errorf("Clamp(5,1,0): got %v, want 1", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1, 1+1e-13, 1e-12) {
		t.Error("values within eps reported unequal")
	}
	if NearlyEqual(1, 1.1, 1e-12) {
		t.Error("distant values reported equal")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Error("zero comparison with default eps failed")
	}
}

func TestDBConversionRoundTrip(t *testing.T) {
	for _, db := range []float64{-60, -6, 0, 6, 20} {
		back := LinearToDB(DBToLinear(db))
		if math.Abs(back-db) > 1e-12 {
			t.Errorf("round trip %v dB: got %v", db, back)
		}
	}
	if LinearToDB(1) != 0 {
		t.Errorf("LinearToDB(1): got %v, want 0", LinearToDB(1))
	}
}
