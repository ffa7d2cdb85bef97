package signal

import (
	"math"

	"github.com/cwbudde/algo-ms/dsp/interp"
	"github.com/cwbudde/algo-ms/stats/order"
	"gonum.org/v1/gonum/floats"
)

// NoiseEstimate is a robust centre (Level) and spread (Width) of a
// signal's intensities.
type NoiseEstimate struct {
	Level float64
	Width float64
}

// Intensity returns the linearly interpolated y at x, or 0 when x lies
// outside the signal.
func Intensity(s Signal, x float64) (float64, error) {
	n := s.Len()
	if n == 0 {
		return 0, ErrEmptySignal
	}
	if n == 1 {
		if x == s.X(0) {
			return s.Y(0), nil
		}
		return 0, nil
	}

	idx, ok := bracket(s, x)
	if !ok {
		return 0, nil
	}
	switch x {
	case s.X(idx):
		return s.Y(idx), nil
	case s.X(idx - 1):
		return s.Y(idx - 1), nil
	}
	return interp.InterpolateY(s.X(idx-1), s.Y(idx-1), s.X(idx), s.Y(idx), x), nil
}

// Centroid returns the midpoint between the two positions where the peak
// around x crosses height.
func Centroid(s Signal, x, height float64) (float64, error) {
	if s.Len() == 0 {
		return 0, ErrEmptySignal
	}
	left, right, ok := peakEdges(s, x, height)
	if !ok {
		return 0, nil
	}
	if left == right {
		return s.X(left), nil
	}
	xl, xr := crossings(s, left, right, height)
	return (xl + xr) / 2, nil
}

// Width returns the peak width around x measured at height.
func Width(s Signal, x, height float64) (float64, error) {
	if s.Len() == 0 {
		return 0, ErrEmptySignal
	}
	left, right, ok := peakEdges(s, x, height)
	if !ok || left == right {
		return 0, nil
	}
	xl, xr := crossings(s, left, right, height)
	return math.Abs(xr - xl), nil
}

// peakEdges walks outwards from the segment containing x while y stays
// above height and returns the first index at or below height on each side
// (or the signal end).
func peakEdges(s Signal, x, height float64) (left, right int, ok bool) {
	idx, ok := bracket(s, x)
	if !ok {
		return 0, 0, false
	}
	left = idx - 1
	for left > 0 && s.Y(left) > height {
		left--
	}
	right = idx
	for right < s.Len()-1 && s.Y(right) > height {
		right++
	}
	return left, right, true
}

func crossings(s Signal, left, right int, height float64) (xl, xr float64) {
	xl = interp.InterpolateX(s.X(left), s.Y(left), s.X(left+1), s.Y(left+1), height)
	xr = interp.InterpolateX(s.X(right-1), s.Y(right-1), s.X(right), s.Y(right), height)
	return xl, xr
}

// Area integrates s with the trapezoidal rule. Signals with fewer than two
// points have zero area.
func Area(s Signal) float64 {
	if s.Len() < 2 {
		return 0
	}
	area := 0.0
	for i := 1; i < s.Len(); i++ {
		x1, y1 := s.X(i-1), s.Y(i-1)
		x2, y2 := s.X(i), s.Y(i)
		area += y1*(x2-x1) + (y2-y1)*(x2-x1)/2
	}
	return area
}

// AreaRange integrates s between minX and maxX after subtracting baseline.
// An empty baseline leaves the intensities untouched.
func AreaRange(s Signal, minX, maxX float64, baseline Signal) float64 {
	if s.Len() == 0 || minX == maxX {
		return 0
	}
	cropped := Crop(s, minX, maxX)
	if baseline.Len() > 0 {
		cropped = SubtractBaseline(cropped, baseline)
	}
	return Area(cropped)
}

// Noise estimates the noise level as the median intensity and the noise
// width as twice the median absolute deviation from that level.
func Noise(s Signal) NoiseEstimate {
	if s.Len() == 0 {
		return NoiseEstimate{}
	}
	ys := s.Ys()
	level, _ := order.MedianInPlace(ys)

	floats.AddConst(-level, ys)
	for i, v := range ys {
		ys[i] = math.Abs(v)
	}
	width, _ := order.MedianInPlace(ys)

	return NoiseEstimate{Level: level, Width: 2 * width}
}

// NoiseRange estimates noise from the points with x in [minX, maxX).
func NoiseRange(s Signal, minX, maxX float64) NoiseEstimate {
	i1 := LocateX(s, minX)
	i2 := LocateX(s, maxX)
	return Noise(s.Slice(i1, i2))
}

// NoiseAt estimates noise around x within x ± x*window.
func NoiseAt(s Signal, x, window float64) NoiseEstimate {
	w := x * window
	return NoiseRange(s, x-w, x+w)
}

// LocalMaxima returns the points at which y stops rising. Plateaus keep the
// rising state, so a flat top is reported at its last point.
func LocalMaxima(s Signal) Signal {
	n := s.Len()
	if n == 0 {
		return Signal{}
	}

	buf := make([]float64, 0, 2*(n/2+1))
	rising := false
	currentX, currentY := s.X(0), s.Y(0)
	for i := 0; i < n; i++ {
		y := s.Y(i)
		if y > currentY {
			rising = true
		} else if y < currentY && rising {
			buf = append(buf, currentX, currentY)
			rising = false
		}
		currentX, currentY = s.X(i), y
	}

	out := make([]float64, len(buf))
	copy(out, buf)
	return Unchecked(out)
}
