package freq

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-eeg/internal/interp"
)

var (
	ErrInvalidStepCount = errors.New("freq: step count must be >= 1")
	ErrLengthMismatch   = errors.New("freq: trace length does not match domain")
	ErrTraceIndex       = errors.New("freq: trace index out of range")
	ErrOutOfDomain      = errors.New("freq: frequency outside the axis domain")
)

// Axis is an evenly spaced frequency domain with the traces plotted on it.
type Axis struct {
	startFrequency float64
	stepSize       float64
	label          string

	domain []float64
	traces [][]float64
	extent *Extent

	cfg Config
}

// New builds the domain start, start+step, ... with stepCount samples.
//
// Samples are produced by repeated addition, so rounding accumulates the
// same way a running sum does. The X extent is fixed to the first and last
// sample; the Y extent starts empty.
func New(startFrequency, stepSize float64, stepCount int, label string, opts ...Option) (*Axis, error) {
	if stepCount < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStepCount, stepCount)
	}

	domain := make([]float64, stepCount)
	f := startFrequency
	for i := range domain {
		domain[i] = f
		f += stepSize
	}

	return &Axis{
		startFrequency: startFrequency,
		stepSize:       stepSize,
		label:          label,
		domain:         domain,
		extent: &Extent{
			X: Range{Min: domain[0], Max: domain[stepCount-1]},
			Y: EmptyRange(),
		},
		cfg: ApplyOptions(opts...),
	}, nil
}

// SetExtent makes e the extent of the axis. Several axes given the same
// pointer share one scale: each AddTrace on any of them widens e. The caller
// owns e from here on; its ranges are not validated. Use [NewExtent] for a
// shared scale that starts empty; a zero Extent has Y = [0, 0].
//
// A nil e is not stored: the axis gets a private extent over its own domain
// with an empty Y range.
func (a *Axis) SetExtent(e *Extent) *Axis {
	if e == nil {
		e = &Extent{
			X: Range{Min: a.domain[0], Max: a.domain[len(a.domain)-1]},
			Y: EmptyRange(),
		}
	}
	a.extent = e
	return a
}

// AddTrace appends trace and widens the Y extent to the integer bounds
// around its values. The slice is stored as given, not copied.
func (a *Axis) AddTrace(trace []float64) error {
	if len(trace) != len(a.domain) {
		return fmt.Errorf("%w: got %d samples, domain has %d", ErrLengthMismatch, len(trace), len(a.domain))
	}

	a.extent.widenY(floats.Min(trace), floats.Max(trace))
	a.traces = append(a.traces, trace)
	return nil
}

// ValueAt reads trace i at frequency f, interpolating between bins.
func (a *Axis) ValueAt(i int, f float64) (float64, error) {
	if i < 0 || i >= len(a.traces) {
		return 0, fmt.Errorf("%w: %d of %d", ErrTraceIndex, i, len(a.traces))
	}

	lo, hi := a.domain[0], a.domain[len(a.domain)-1]
	if lo > hi {
		lo, hi = hi, lo
	}
	if f < lo || f > hi {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfDomain, f, lo, hi)
	}

	if len(a.domain) == 1 || a.stepSize == 0 {
		return a.traces[i][0], nil
	}
	return interp.At(a.traces[i], (f-a.startFrequency)/a.stepSize), nil
}

// BandAt returns the first configured band containing f.
func (a *Axis) BandAt(f float64) (Band, bool) {
	for _, b := range a.cfg.Bands {
		if b.Contains(f) {
			return b, true
		}
	}
	return Band{}, false
}

// Domain returns the frequency samples. Callers must not modify it.
func (a *Axis) Domain() []float64 { return a.domain }

// Traces returns the traces in insertion order.
func (a *Axis) Traces() [][]float64 { return a.traces }

// Trace returns trace i, or nil if i is out of range.
func (a *Axis) Trace(i int) []float64 {
	if i < 0 || i >= len(a.traces) {
		return nil
	}
	return a.traces[i]
}

// Extent returns the current extent pointer.
func (a *Axis) Extent() *Extent { return a.extent }

// Label returns the display name.
func (a *Axis) Label() string { return a.label }

// StartFrequency returns the first domain sample as configured.
func (a *Axis) StartFrequency() float64 { return a.startFrequency }

// StepSize returns the domain spacing.
func (a *Axis) StepSize() float64 { return a.stepSize }

// StepCount returns the number of domain samples.
func (a *Axis) StepCount() int { return len(a.domain) }

// Bands returns the configured bands.
func (a *Axis) Bands() []Band { return a.cfg.Bands }

// Axes returns the configured axis orientations.
func (a *Axis) Axes() []Orientation { return a.cfg.Axes }
