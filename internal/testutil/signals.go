package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates uniform noise in [-amplitude, amplitude) with a
// fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Domain returns start, start+step, ... with n samples.
func Domain(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// PeakSpectrum evaluates a 1/f background plus a Gaussian peak centred on
// peakHz over domain. It resembles a resting EEG power spectrum with an
// alpha peak when peakHz is around 10.
func PeakSpectrum(domain []float64, peakHz, widthHz, peakPower float64) []float64 {
	out := make([]float64, len(domain))
	for i, f := range domain {
		bg := 0.0
		if f > 0 {
			bg = 1 / f
		}
		d := (f - peakHz) / widthHz
		out[i] = bg + peakPower*math.Exp(-0.5*d*d)
	}
	return out
}

// Constant returns n copies of value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}
