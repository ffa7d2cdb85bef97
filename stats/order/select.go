package order

import (
	"errors"
	"fmt"
	"slices"
)

// Errors returned by selection functions.
var (
	ErrEmpty = errors.New("order: empty input")
	ErrIndex = errors.New("order: rank out of range")
)

// Median returns the median of values without modifying them.
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	return quickselect(slices.Clone(values), MedianIndex(len(values))), nil
}

// MedianInPlace returns the median of values, reordering values while
// searching. Callers that need the original order must pass a copy.
func MedianInPlace(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	return quickselect(values, MedianIndex(len(values))), nil
}

// Select returns the k-th smallest value (0-based) of values, reordering
// values so that values[k] holds it, everything before it is <= and
// everything after it is >=.
func Select(values []float64, k int) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	if k < 0 || k >= len(values) {
		return 0, fmt.Errorf("%w: k=%d n=%d", ErrIndex, k, len(values))
	}
	return quickselect(values, k), nil
}

// MedianIndex returns the sorted-order index the median is taken from.
func MedianIndex(n int) int {
	return (n - 1) / 2
}

func quickselect(a []float64, k int) float64 {
	low, high := 0, len(a)-1
	for {
		if high <= low {
			return a[k]
		}
		if high == low+1 {
			if a[low] > a[high] {
				a[low], a[high] = a[high], a[low]
			}
			return a[k]
		}

		// Order low, middle, high so that a[middle] <= a[low] <= a[high]
		// and park the smallest of the three at low+1 as a sentinel.
		middle := (low + high) / 2
		if a[middle] > a[high] {
			a[middle], a[high] = a[high], a[middle]
		}
		if a[low] > a[high] {
			a[low], a[high] = a[high], a[low]
		}
		if a[middle] > a[low] {
			a[middle], a[low] = a[low], a[middle]
		}
		a[middle], a[low+1] = a[low+1], a[middle]

		pivot := a[low]
		ll, hh := low+1, high
		for {
			for ll++; pivot > a[ll]; ll++ {
			}
			for hh--; a[hh] > pivot; hh-- {
			}
			if hh < ll {
				break
			}
			a[ll], a[hh] = a[hh], a[ll]
		}
		a[low], a[hh] = a[hh], a[low]

		if hh <= k {
			low = ll
		}
		if hh >= k {
			high = hh - 1
		}
	}
}
