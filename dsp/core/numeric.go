// Package core holds small index and slice helpers shared by the dsp
// packages.
package core

// ClampInt limits value to the inclusive range [min, max].
func ClampInt(value, min, max int) int {
	if min > max {
		min, max = max, min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Reflect folds an index that ran past either end of [0, n) back into range
// by mirroring around the first and last element (the edge itself is not
// repeated). n must be positive.
func Reflect(idx, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	idx %= period
	if idx < 0 {
		idx += period
	}
	if idx >= n {
		idx = period - idx
	}
	return idx
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	clear(buf)
}
