package frequency

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Stats holds descriptive statistics of one power spectrum.
type Stats struct {
	BinCount int
	Max      float64
	PeakFreq float64 // frequency of the maximum (Hz)
	Min      float64
	Mean     float64
	Total    float64 // integrated power: sum of power times bin width
	// Spectral shape descriptors
	Centroid float64 // power-weighted mean frequency (Hz)
	Spread   float64 // power-weighted standard deviation around the centroid (Hz)
	Flatness float64 // geometric over arithmetic mean, 0..1
	Edge     float64 // frequency below which 95% of the power lies (Hz)
}

// EdgeFraction is the power fraction used for [Stats.Edge].
const EdgeFraction = 0.95

// Calculate computes all statistics of power sampled at domain.
//
// Only the common prefix of domain and power is used. The bin width is taken
// from the first two domain samples; a single-bin spectrum has width 1.
func Calculate(domain, power []float64) Stats {
	n := min(len(domain), len(power))
	if n == 0 {
		return Stats{}
	}
	domain, power = domain[:n], power[:n]

	var s Stats
	s.BinCount = n
	peak := floats.MaxIdx(power)
	s.Max = power[peak]
	s.PeakFreq = domain[peak]
	s.Min = floats.Min(power)

	sum := floats.Sum(power)
	s.Mean = sum / float64(n)
	s.Total = sum * binWidth(domain)

	s.Centroid = centroid(domain, power, sum)
	s.Spread = spread(domain, power, s.Centroid, sum)
	s.Flatness = flatness(power)
	s.Edge = edge(domain, power, EdgeFraction, sum)
	return s
}

func binWidth(domain []float64) float64 {
	if len(domain) < 2 {
		return 1
	}
	return math.Abs(domain[1] - domain[0])
}

// Centroid returns the power-weighted mean frequency.
//
//	centroid = sum(f_i * P_i) / sum(P_i)
func Centroid(domain, power []float64) float64 {
	n := min(len(domain), len(power))
	if n == 0 {
		return 0
	}
	return centroid(domain[:n], power[:n], floats.Sum(power[:n]))
}

func centroid(domain, power []float64, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	return floats.Dot(domain, power) / sum
}

func spread(domain, power []float64, cent, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	weightedSqSum := 0.0
	for i, p := range power {
		d := domain[i] - cent
		weightedSqSum += d * d * p
	}
	return math.Sqrt(weightedSqSum / sum)
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1.
//
//	Flatness = exp(mean(log(P_i))) / mean(P_i)
//
// Any zero or negative bin makes the geometric mean, and so the flatness, 0.
func Flatness(power []float64) float64 {
	return flatness(power)
}

func flatness(power []float64) float64 {
	n := len(power)
	if n == 0 {
		return 0
	}

	sumLin := 0.0
	sumLog := 0.0
	for _, p := range power {
		if p <= 0 {
			return 0
		}
		sumLin += p
		sumLog += math.Log(p)
	}

	meanLin := sumLin / float64(n)
	return math.Exp(sumLog/float64(n)) / meanLin
}

// Edge returns the frequency below which fraction (0..1) of the total power
// lies. With fraction 0.95 this is the spectral edge frequency used in EEG
// monitoring.
func Edge(domain, power []float64, fraction float64) float64 {
	n := min(len(domain), len(power))
	if n == 0 {
		return 0
	}
	return edge(domain[:n], power[:n], fraction, floats.Sum(power[:n]))
}

func edge(domain, power []float64, fraction, total float64) float64 {
	if total == 0 {
		return domain[0]
	}
	threshold := fraction * total
	cum := 0.0
	for i, p := range power {
		cum += p
		if cum >= threshold {
			return domain[i]
		}
	}
	return domain[len(domain)-1]
}
