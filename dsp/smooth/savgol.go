package smooth

import (
	"fmt"

	"github.com/cwbudde/algo-ms/dsp/signal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultOrder is the polynomial order Smooth uses for Savitzky-Golay.
const DefaultOrder = 3

// SavitzkyGolay fits a polynomial of the given order to each window of
// points by least squares and replaces the centre intensity by the fitted
// value. window is the number of points; even windows use window-1 points.
// Windows not larger than order, or too short to determine the fit, return
// a copy.
func SavitzkyGolay(s signal.Signal, window, cycles, order int) (signal.Signal, error) {
	n := s.Len()
	if order < 0 {
		return signal.Signal{}, fmt.Errorf("%w: order %d", ErrInvalidOrder, order)
	}
	half := (window - 1) / 2
	if n == 0 || cycles < 1 || window <= order || 2*half+1 <= order {
		return s.Copy(), nil
	}

	weights, err := savgolWeights(half, order)
	if err != nil {
		return signal.Signal{}, err
	}

	ys := s.Ys()
	ext := make([]float64, n+2*half)
	for range cycles {
		first, last := ys[0], ys[n-1]
		for k := range half {
			ext[k] = first
			ext[half+n+k] = last
		}
		copy(ext[half:], ys)

		out := make([]float64, n)
		for i := range out {
			out[i] = floats.Dot(weights, ext[i:i+len(weights)])
		}
		ys = out
	}
	return withY(s, ys), nil
}

// savgolWeights returns the row of the Vandermonde pseudo-inverse that
// evaluates the fitted polynomial at the window centre.
func savgolWeights(half, order int) ([]float64, error) {
	taps := 2*half + 1
	a := mat.NewDense(taps, order+1, nil)
	for r := range taps {
		k := float64(r - half)
		v := 1.0
		for c := 0; c <= order; c++ {
			a.Set(r, c, v)
			v *= k
		}
	}

	var ata mat.Dense
	ata.Mul(a.T(), a)
	var pinv mat.Dense
	if err := pinv.Solve(&ata, a.T()); err != nil {
		return nil, fmt.Errorf("smooth: savitzky-golay weights: %w", err)
	}
	return mat.Row(nil, 0, &pinv), nil
}
