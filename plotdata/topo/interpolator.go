package topo

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-eeg/internal/scratch"
)

var (
	ErrTooManyElectrodes  = errors.New("topo: more electrodes than layout positions")
	ErrRowLength          = errors.New("topo: correlation row length does not match electrode count")
	ErrDegenerateGeometry = errors.New("topo: query point coincides with an electrode")
	ErrDegenerateExtent   = errors.New("topo: extent has zero width")
	ErrNoContributors     = errors.New("topo: no electrode contributed a value")
)

var (
	floatPool = scratch.NewPool[float64]()
	indexPool = scratch.NewPool[int]()
)

// Range is a closed [Min, Max] value interval. The empty range is [+Inf, -Inf].
type Range struct {
	Min float64
	Max float64
}

// Midpoint returns the centre of r.
func (r Range) Midpoint() float64 {
	return (r.Max + r.Min) / 2
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Interpolator maps per-electrode values to any point of the scalp plane.
type Interpolator struct {
	cfg Config

	labels       []string
	correlations [][]float64
	startFreq    float64
	stepSize     float64
	extent       Range
}

// New builds an interpolator over correlations[bin][electrode].
//
// Spaces are removed from labels. The extent is the [min, max] of all values;
// with no values it is [+Inf, -Inf]. A matrix with a single row ignores the
// query frequency; otherwise row i covers startFreq + i*stepSize.
func New(labels []string, correlations [][]float64, startFreq, stepSize float64, opts ...Option) (*Interpolator, error) {
	if len(labels) > LayoutSize {
		return nil, fmt.Errorf("%w: %d labels, %d positions", ErrTooManyElectrodes, len(labels), LayoutSize)
	}

	stripped := make([]string, len(labels))
	for i, l := range labels {
		stripped[i] = strings.ReplaceAll(l, " ", "")
	}

	extent := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	for bin, row := range correlations {
		if len(row) != len(labels) {
			return nil, fmt.Errorf("%w: row %d has %d values, %d electrodes", ErrRowLength, bin, len(row), len(labels))
		}
		if len(row) == 0 {
			continue
		}
		extent.Min = math.Min(extent.Min, floats.Min(row))
		extent.Max = math.Max(extent.Max, floats.Max(row))
	}

	return &Interpolator{
		cfg:          ApplyOptions(opts...),
		labels:       stripped,
		correlations: correlations,
		startFreq:    startFreq,
		stepSize:     stepSize,
		extent:       extent,
	}, nil
}

// NewFromMatrix is New with rows of m as frequency bins and columns as
// electrodes. The values are copied out of m.
func NewFromMatrix(labels []string, m mat.Matrix, startFreq, stepSize float64, opts ...Option) (*Interpolator, error) {
	r, _ := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, m)
	}
	return New(labels, rows, startFreq, stepSize, opts...)
}

// SetExtent overrides the normalization range.
func (ip *Interpolator) SetExtent(lo, hi float64) *Interpolator {
	ip.extent.Min = lo
	ip.extent.Max = hi
	return ip
}

// BinIndex maps a frequency to its correlation row. A single-row matrix
// always resolves to 0. ok is false when the row does not exist.
func (ip *Interpolator) BinIndex(frequency float64) (bin int, ok bool) {
	if len(ip.correlations) <= 1 {
		return 0, len(ip.correlations) == 1
	}
	pos := math.Floor(math.Max((frequency-ip.startFreq)/ip.stepSize, 0))
	if !(pos < float64(len(ip.correlations))) {
		return 0, false
	}
	return int(pos), true
}

// result carries the pieces of one evaluation that the strict variant
// inspects.
type result struct {
	value      float64
	weightSum  float64
	coincident bool
}

// Interpolate estimates the normalized intensity at p for frequency.
//
// Every electrode is weighted by the inverse squared distance to p, and the
// min(k, E) heaviest are considered. Each contributes
// 2*w*(v-mid)/(max-min) against the extent, and the sum is divided by the
// total weight of the contributing electrodes. An electrode whose frequency
// bin does not exist still uses one of the k slots but adds nothing.
//
// If p lies exactly on a considered electrode its weight is infinite and the
// result is that electrode's normalized value. The result is NaN when no
// electrode contributed and NaN or ±Inf when the extent has zero width.
func (ip *Interpolator) Interpolate(k int, frequency float64, p Point) float64 {
	return ip.evaluate(k, frequency, p).value
}

// InterpolateStrict is Interpolate with degenerate cases reported as errors.
// The computed value is returned alongside the error.
func (ip *Interpolator) InterpolateStrict(k int, frequency float64, p Point) (float64, error) {
	r := ip.evaluate(k, frequency, p)
	switch {
	case r.coincident:
		return r.value, fmt.Errorf("%w: (%g, %g)", ErrDegenerateGeometry, p.X, p.Y)
	case ip.extent.Span() == 0:
		return r.value, fmt.Errorf("%w: [%g, %g]", ErrDegenerateExtent, ip.extent.Min, ip.extent.Max)
	case r.weightSum == 0:
		return r.value, fmt.Errorf("%w: k=%d frequency=%g", ErrNoContributors, k, frequency)
	}
	return r.value, nil
}

func (ip *Interpolator) evaluate(k int, frequency float64, p Point) result {
	n := len(ip.labels)

	fb := floatPool.Get(3 * n)
	defer floatPool.Put(fb)
	ib := indexPool.Get(n)
	defer indexPool.Put(ib)

	parts := fb.Split(3, n)
	weights, dx, dy := parts[0], parts[1], parts[2]
	for i := range n {
		pos := layout1020[i]
		dx[i] = pos.X - p.X
		dy[i] = pos.Y - p.Y
	}
	vecmath.Power(weights, dx, dy)
	for i, d := range weights {
		weights[i] = 1 / d
	}

	mid := ip.extent.Midpoint()
	span := ip.extent.Span()

	var (
		intensity, weightSum float64
		snapSum              float64
		snapCount            int
	)
	for _, e := range nearest(ib.Slice(), weights, k) {
		bin, ok := ip.BinIndex(frequency)
		if !ok {
			continue
		}
		v := ip.correlations[bin][e]
		w := weights[e]
		if math.IsInf(w, 1) {
			snapSum += 2 * (v - mid) / span
			snapCount++
		}
		intensity += 2 * w * (v - mid) / span
		weightSum += w
	}

	if snapCount > 0 {
		return result{value: snapSum / float64(snapCount), weightSum: weightSum, coincident: true}
	}
	return result{value: intensity / weightSum, weightSum: weightSum}
}

// Labels returns the electrode labels with spaces removed.
func (ip *Interpolator) Labels() []string { return ip.labels }

// Correlations returns the value matrix indexed [bin][electrode].
func (ip *Interpolator) Correlations() [][]float64 { return ip.correlations }

// Extent returns the normalization range.
func (ip *Interpolator) Extent() Range { return ip.extent }

// Name returns the map title.
func (ip *Interpolator) Name() string { return ip.cfg.Name }

// Units returns the value unit label.
func (ip *Interpolator) Units() string { return ip.cfg.Units }

// ElectrodeCount returns the number of electrodes.
func (ip *Interpolator) ElectrodeCount() int { return len(ip.labels) }

// BinCount returns the number of frequency bins.
func (ip *Interpolator) BinCount() int { return len(ip.correlations) }

// StartFrequency returns the frequency of the first bin.
func (ip *Interpolator) StartFrequency() float64 { return ip.startFreq }

// StepSize returns the bin spacing.
func (ip *Interpolator) StepSize() float64 { return ip.stepSize }
