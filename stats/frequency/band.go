package frequency

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-eeg/plotdata/freq"
)

var ErrLengthMismatch = errors.New("frequency: trace length does not match domain")

// PowerFromAmplitude squares an amplitude spectrum into a power spectrum.
func PowerFromAmplitude(amplitude []float64) []float64 {
	if len(amplitude) == 0 {
		return nil
	}
	out := make([]float64, len(amplitude))
	vecmath.MulBlock(out, amplitude, amplitude)
	return out
}

// BandPower integrates power over the bins whose frequency lies in band,
// using the bin width of domain.
func BandPower(domain, power []float64, band freq.Band) float64 {
	n := min(len(domain), len(power))
	sum := 0.0
	for i := range n {
		if band.Contains(domain[i]) {
			sum += power[i]
		}
	}
	return sum * binWidth(domain[:n])
}

// RelativeBandPower returns the band's share of the total power, or 0 for
// a silent spectrum.
func RelativeBandPower(domain, power []float64, band freq.Band) float64 {
	n := min(len(domain), len(power))
	total := floats.Sum(power[:n]) * binWidth(domain[:n])
	if total == 0 {
		return 0
	}
	return BandPower(domain, power, band) / total
}

// PeakFrequency returns the frequency of the largest bin inside band.
// ok is false when no bin falls in the band.
func PeakFrequency(domain, power []float64, band freq.Band) (f float64, ok bool) {
	n := min(len(domain), len(power))
	best := -1
	for i := range n {
		if !band.Contains(domain[i]) {
			continue
		}
		if best < 0 || power[i] > power[best] {
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return domain[best], true
}

// BandMatrix reduces per-electrode power traces to one row per band:
// out[b][e] is the power of traces[e] in bands[b]. With relative set, each
// value is the band's share of that electrode's total power.
func BandMatrix(domain []float64, traces [][]float64, bands []freq.Band, relative bool) ([][]float64, error) {
	for e, tr := range traces {
		if len(tr) != len(domain) {
			return nil, fmt.Errorf("%w: trace %d has %d samples, domain has %d", ErrLengthMismatch, e, len(tr), len(domain))
		}
	}

	out := make([][]float64, len(bands))
	for b, band := range bands {
		row := make([]float64, len(traces))
		for e, tr := range traces {
			if relative {
				row[e] = RelativeBandPower(domain, tr, band)
			} else {
				row[e] = BandPower(domain, tr, band)
			}
		}
		out[b] = row
	}
	return out, nil
}
