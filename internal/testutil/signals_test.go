package testutil

import (
	"math"
	"testing"
)

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDomain(t *testing.T) {
	RequireSliceNearlyEqual(t, Domain(8, 0.5, 4), []float64{8, 8.5, 9, 9.5}, 0)
}

func TestPeakSpectrum(t *testing.T) {
	d := Domain(1, 0.5, 59)
	s := PeakSpectrum(d, 10, 1.5, 4)
	RequireFinite(t, s)

	peak := 0
	for i := range s {
		if s[i] > s[peak] {
			peak = i
		}
	}
	if math.Abs(d[peak]-10) > 0.5 {
		t.Fatalf("peak at %v Hz, want ~10", d[peak])
	}
}

func TestConstant(t *testing.T) {
	for i, v := range Constant(2.5, 3) {
		if v != 2.5 {
			t.Fatalf("Constant()[%d] = %v, want 2.5", i, v)
		}
	}
}
