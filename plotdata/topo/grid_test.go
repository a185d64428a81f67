package topo

import (
	"errors"
	"math"
	"testing"
)

func TestSampleGrid(t *testing.T) {
	ip := mustInterpolator(t, fourLabels, [][]float64{{0, 10, 20, 30}}, 0, 1)

	g, err := ip.SampleGrid(3, 0, 5)
	if err != nil {
		t.Fatal(err)
	}

	c, r := g.Dims()
	if c != 5 || r != 5 {
		t.Fatalf("Dims = %d,%d want 5,5", c, r)
	}
	if g.X(0) != -1 || g.X(2) != 0 || g.X(4) != 1 || g.Y(1) != -0.5 {
		t.Fatalf("unexpected coordinates: %v %v %v %v", g.X(0), g.X(2), g.X(4), g.Y(1))
	}

	// Corners lie outside the head.
	for _, cr := range [][2]int{{0, 0}, {4, 0}, {0, 4}, {4, 4}} {
		if v := g.Z(cr[0], cr[1]); !math.IsNaN(v) {
			t.Fatalf("corner %v = %v, want NaN", cr, v)
		}
	}

	want := ip.Interpolate(3, 0, Point{X: 0, Y: 0})
	if got := g.Z(2, 2); got != want {
		t.Fatalf("centre = %v, want %v", got, want)
	}

	// (0.5, -0.5) is within rounding of electrode 3.
	if got := g.Z(3, 1); math.Abs(got-1) > 1e-9 {
		t.Fatalf("Z at electrode 3 = %v, want 1", got)
	}

	e := g.Extent()
	if math.Abs(e.Max-1) > 1e-9 || e.Min < -1 || e.Min > e.Max {
		t.Fatalf("grid extent = %v", e)
	}
}

func TestSampleGridResolution(t *testing.T) {
	ip := mustInterpolator(t, fourLabels, [][]float64{{0, 10, 20, 30}}, 0, 1)
	if _, err := ip.SampleGrid(3, 0, 1); !errors.Is(err, ErrResolution) {
		t.Fatalf("err = %v, want ErrResolution", err)
	}
}

func TestGridExtentEmpty(t *testing.T) {
	g := &Grid{n: 2, values: []float64{math.NaN(), math.Inf(1), math.NaN(), math.Inf(-1)}}
	e := g.Extent()
	if !math.IsInf(e.Min, 1) || !math.IsInf(e.Max, -1) {
		t.Fatalf("extent = %v, want empty", e)
	}
}
