package topo

import "math"

// Point is a position on the projected scalp plane. The head outline is the
// unit circle; the nose points towards negative Y.
type Point struct {
	X float64
	Y float64
}

// project maps spherical angles (azimuth theta, polar phi) to the plane.
func project(theta, phi float64) Point {
	return Point{
		X: math.Sin(phi) * math.Cos(theta),
		Y: -math.Sin(phi) * math.Sin(theta),
	}
}

// LayoutSize is the number of positions in the 10-20 layout.
const LayoutSize = 19

var layout1020 = [LayoutSize]Point{
	project(-0.4*math.Pi, -0.5*math.Pi),
	project(0.4*math.Pi, 0.5*math.Pi),
	project(-0.25*math.Pi, -0.25*math.Pi),
	project(0.25*math.Pi, 0.25*math.Pi),
	project(0, -0.25*math.Pi),
	project(0, 0.25*math.Pi),
	project(0.25*math.Pi, -0.25*math.Pi),
	project(-0.25*math.Pi, 0.25*math.Pi),
	project(0.4*math.Pi, -0.5*math.Pi),
	project(-0.4*math.Pi, 0.5*math.Pi),
	project(-0.2*math.Pi, -0.5*math.Pi),
	project(0.2*math.Pi, 0.5*math.Pi),
	project(0, -0.5*math.Pi),
	project(0, 0.5*math.Pi),
	project(0.2*math.Pi, -0.5*math.Pi),
	project(-0.2*math.Pi, 0.5*math.Pi),
	project(0.5*math.Pi, 0.2*math.Pi),
	project(0, 0),
	project(-0.5*math.Pi, 0.2*math.Pi),
}

// Layout1020 returns a copy of the projected 10-20 electrode positions.
func Layout1020() [LayoutSize]Point {
	return layout1020
}

// Position returns layout position i.
func Position(i int) (Point, bool) {
	if i < 0 || i >= LayoutSize {
		return Point{}, false
	}
	return layout1020[i], true
}
