package topo

import (
	"errors"
	"fmt"
	"math"
)

var ErrResolution = errors.New("topo: grid resolution must be >= 2")

// Grid is a square lattice of interpolated values over [-1, 1]². Samples
// outside the unit head circle are NaN.
//
// Grid satisfies gonum/plot's plotter.GridXYZ.
type Grid struct {
	n      int
	values []float64
}

// SampleGrid evaluates ip on a resolution×resolution lattice.
func (ip *Interpolator) SampleGrid(k int, frequency float64, resolution int) (*Grid, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("%w: %d", ErrResolution, resolution)
	}

	g := &Grid{n: resolution, values: make([]float64, resolution*resolution)}
	for r := range resolution {
		y := g.Y(r)
		for c := range resolution {
			x := g.X(c)
			if x*x+y*y > 1 {
				g.values[r*resolution+c] = math.NaN()
				continue
			}
			g.values[r*resolution+c] = ip.Interpolate(k, frequency, Point{X: x, Y: y})
		}
	}
	return g, nil
}

// Dims returns the column and row counts.
func (g *Grid) Dims() (c, r int) { return g.n, g.n }

// Z returns the value at column c, row r.
func (g *Grid) Z(c, r int) float64 { return g.values[r*g.n+c] }

// X returns the plane coordinate of column c.
func (g *Grid) X(c int) float64 { return coord(c, g.n) }

// Y returns the plane coordinate of row r.
func (g *Grid) Y(r int) float64 { return coord(r, g.n) }

func coord(i, n int) float64 {
	return -1 + 2*float64(i)/float64(n-1)
}

// Extent returns the range of the finite samples, or [+Inf, -Inf] when
// there are none.
func (g *Grid) Extent() Range {
	out := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range g.values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out.Min = math.Min(out.Min, v)
		out.Max = math.Max(out.Max, v)
	}
	return out
}
