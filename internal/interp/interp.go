package interp

import "math"

// Linear2 interpolates between x0 and x1 at t in [0,1].
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// At evaluates samples at the fractional index pos.
//
// pos is clamped to [0, len(samples)-1]. Interior segments use [Hermite4];
// the first and last segment fall back to [Linear2]. An empty slice yields NaN.
func At(samples []float64, pos float64) float64 {
	n := len(samples)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 || pos <= 0 {
		return samples[0]
	}
	if pos >= float64(n-1) {
		return samples[n-1]
	}

	i := int(pos)
	t := pos - float64(i)
	if t == 0 {
		return samples[i]
	}
	if i == 0 || i+2 >= n {
		return Linear2(t, samples[i], samples[i+1])
	}
	return Hermite4(t, samples[i-1], samples[i], samples[i+1], samples[i+2])
}
