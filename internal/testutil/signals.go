package testutil

import (
	"math"
	"math/rand"
)

// Grid returns n evenly spaced x values starting at start.
func Grid(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Interleave packs x and y columns into a flat x0, y0, x1, y1, ... slice.
// It panics if the columns differ in length.
func Interleave(x, y []float64) []float64 {
	if len(x) != len(y) {
		panic("testutil: column length mismatch")
	}
	out := make([]float64, 2*len(x))
	for i := range x {
		out[2*i] = x[i]
		out[2*i+1] = y[i]
	}
	return out
}

// GaussianPeak samples height*exp(-(x-center)^2/(2 sigma^2)) on xs.
func GaussianPeak(xs []float64, center, height, sigma float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		d := x - center
		out[i] = height * math.Exp(-d*d/(2*sigma*sigma))
	}
	return out
}

// Polynomial evaluates coeffs[0] + coeffs[1]*x + ... on xs.
func Polynomial(xs []float64, coeffs ...float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		v := 0.0
		for k := len(coeffs) - 1; k >= 0; k-- {
			v = v*x + coeffs[k]
		}
		out[i] = v
	}
	return out
}

// DeterministicNoise generates uniform noise in [-amplitude, amplitude]
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// SortedRandomX returns n non-decreasing x values with random positive
// gaps. Roughly one gap in eight is zero so duplicates are exercised.
func SortedRandomX(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	x := rng.Float64() * 100
	for i := range out {
		out[i] = x
		if rng.Intn(8) != 0 {
			x += rng.Float64()
		}
	}
	return out
}

// DC generates a constant-valued slice.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
