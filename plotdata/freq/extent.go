package freq

import "math"

// Range is a closed [Min, Max] interval. The empty range is [+Inf, -Inf].
type Range struct {
	Min float64
	Max float64
}

// EmptyRange returns the range that any widening replaces.
func EmptyRange() Range {
	return Range{Min: math.Inf(1), Max: math.Inf(-1)}
}

// IsEmpty reports whether r contains no value.
func (r Range) IsEmpty() bool {
	return r.Min > r.Max
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Midpoint returns the centre of r.
func (r Range) Midpoint() float64 {
	return (r.Max + r.Min) / 2
}

// Extent bounds a plot: X is the frequency range, Y the signal-value range.
type Extent struct {
	X Range
	Y Range
}

// NewExtent returns an extent with both ranges empty. Axes pointed at it
// with SetExtent share one scale that starts from nothing.
func NewExtent() *Extent {
	return &Extent{X: EmptyRange(), Y: EmptyRange()}
}

// widenY grows e.Y to integer bounds covering [lo, hi].
func (e *Extent) widenY(lo, hi float64) {
	e.Y.Min = math.Floor(math.Min(e.Y.Min, lo))
	e.Y.Max = math.Ceil(math.Max(e.Y.Max, hi))
}
