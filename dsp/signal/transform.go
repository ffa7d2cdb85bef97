package signal

import (
	"github.com/cwbudde/algo-ms/dsp/interp"
	"github.com/cwbudde/algo-vecmath"
)

// Crop keeps the points with x in [minX, maxX]. When a bound falls strictly
// inside a segment an interpolated point is added exactly at the bound.
// Reversed bounds are swapped; a range that misses the signal yields an
// empty signal.
func Crop(s Signal, minX, maxX float64) Signal {
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	n := s.Len()
	if n == 0 || maxX < s.X(0) || minX > s.X(n-1) {
		return Signal{}
	}

	i1 := LocateX(s, minX)
	i2 := locateAfter(s, maxX)
	leftEdge := i1 > 0 && s.X(i1) != minX
	rightEdge := i2 > 0 && i2 < n && s.X(i2-1) != maxX

	size := i2 - i1
	if leftEdge {
		size++
	}
	if rightEdge {
		size++
	}
	out := make([]float64, 0, 2*size)

	if leftEdge {
		y := interp.InterpolateY(s.X(i1-1), s.Y(i1-1), s.X(i1), s.Y(i1), minX)
		out = append(out, minX, y)
	}
	out = append(out, s.Data()[2*i1:2*i2]...)
	if rightEdge {
		y := interp.InterpolateY(s.X(i2-1), s.Y(i2-1), s.X(i2), s.Y(i2), maxX)
		out = append(out, maxX, y)
	}
	return Unchecked(out)
}

// Offset shifts every point by (dx, dy).
func Offset(s Signal, dx, dy float64) Signal {
	if s.Len() == 0 {
		return Signal{}
	}
	out := make([]float64, 2*s.Len())
	for i := range s.Len() {
		out[2*i] = s.X(i) + dx
		out[2*i+1] = s.Y(i) + dy
	}
	return Unchecked(out)
}

// Multiply scales x by sx and y by sy. A negative sx reverses the x order;
// callers doing that must re-sort before using order-dependent operations.
func Multiply(s Signal, sx, sy float64) Signal {
	if s.Len() == 0 {
		return Signal{}
	}
	out := make([]float64, 2*s.Len())
	vecmath.MulBlock(out, s.Data(), scalePattern(s.Len(), sx, sy))
	return Unchecked(out)
}

// Normalize divides every y by the maximum y, so the tallest point ends up
// at 1. It fails with ErrZeroMaximum when that maximum is 0.
func Normalize(s Signal) (Signal, error) {
	if s.Len() == 0 {
		return Signal{}, nil
	}
	idx, _ := LocateMaxY(s)
	maxY := s.Y(idx)
	if maxY == 0 {
		return Signal{}, ErrZeroMaximum
	}
	return Multiply(s, 1, 1/maxY), nil
}

// scalePattern returns sx, sy repeated n times to match the interleaved
// point layout.
func scalePattern(n int, sx, sy float64) []float64 {
	p := make([]float64, 2*n)
	for i := range n {
		p[2*i] = sx
		p[2*i+1] = sy
	}
	return p
}
