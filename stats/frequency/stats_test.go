package frequency

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-eeg/internal/testutil"
)

const tolerance = 1e-9

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil, nil)
	if s != (Stats{}) {
		t.Fatalf("expected zero Stats, got %+v", s)
	}
}

func TestCalculateAllZero(t *testing.T) {
	d := testutil.Domain(0.5, 0.5, 80)
	s := Calculate(d, make([]float64, 80))

	if s.BinCount != 80 {
		t.Fatalf("BinCount = %d, want 80", s.BinCount)
	}
	if s.Total != 0 || s.Centroid != 0 || s.Flatness != 0 {
		t.Fatalf("unexpected stats for silent spectrum: %+v", s)
	}
	if s.Edge != d[0] {
		t.Fatalf("Edge = %v, want %v", s.Edge, d[0])
	}
}

func TestCalculateSingleBin(t *testing.T) {
	d := testutil.Domain(1, 0.5, 40)
	p := make([]float64, 40)
	p[18] = 2 // 10 Hz

	s := Calculate(d, p)

	testutil.RequireNearlyEqual(t, s.Centroid, 10, tolerance)
	testutil.RequireNearlyEqual(t, s.Spread, 0, tolerance)
	testutil.RequireNearlyEqual(t, s.PeakFreq, 10, 0)
	testutil.RequireNearlyEqual(t, s.Max, 2, 0)
	testutil.RequireNearlyEqual(t, s.Total, 1, tolerance)
	testutil.RequireNearlyEqual(t, s.Edge, 10, 0)
	if s.Flatness != 0 {
		t.Fatalf("Flatness = %v, want 0", s.Flatness)
	}
}

func TestCalculateFlatSpectrum(t *testing.T) {
	d := testutil.Domain(1, 1, 20)
	s := Calculate(d, testutil.Constant(3, 20))

	testutil.RequireNearlyEqual(t, s.Centroid, 10.5, tolerance)
	testutil.RequireNearlyEqual(t, s.Flatness, 1, 1e-12)
	testutil.RequireNearlyEqual(t, s.Mean, 3, tolerance)
	testutil.RequireNearlyEqual(t, s.Min, 3, 0)
	testutil.RequireNearlyEqual(t, s.Total, 60, tolerance)
	// 95% of 20 equal bins is reached at the 19th bin.
	testutil.RequireNearlyEqual(t, s.Edge, 19, 0)
}

func TestCalculateTwoBins(t *testing.T) {
	d := testutil.Domain(0, 1, 30)
	p := make([]float64, 30)
	p[10] = 3
	p[20] = 1

	s := Calculate(d, p)

	testutil.RequireNearlyEqual(t, s.Centroid, (10*3+20*1)/4.0, tolerance)
	wantSpread := math.Sqrt((3*math.Pow(10-12.5, 2) + 1*math.Pow(20-12.5, 2)) / 4)
	testutil.RequireNearlyEqual(t, s.Spread, wantSpread, tolerance)
}

func TestCalculateUsesCommonPrefix(t *testing.T) {
	d := testutil.Domain(1, 1, 5)
	s := Calculate(d, []float64{1, 2, 3})
	if s.BinCount != 3 {
		t.Fatalf("BinCount = %d, want 3", s.BinCount)
	}
}

func TestIndividualFunctionsMatchCalculate(t *testing.T) {
	d := testutil.Domain(0.5, 0.25, 160)
	p := testutil.PeakSpectrum(d, 10, 1.2, 3)
	s := Calculate(d, p)

	testutil.RequireNearlyEqual(t, Centroid(d, p), s.Centroid, tolerance)
	testutil.RequireNearlyEqual(t, Flatness(p), s.Flatness, tolerance)
	testutil.RequireNearlyEqual(t, Edge(d, p, EdgeFraction), s.Edge, tolerance)

	if math.Abs(s.PeakFreq-10) > 0.25 {
		t.Fatalf("PeakFreq = %v, want ~10", s.PeakFreq)
	}
}
