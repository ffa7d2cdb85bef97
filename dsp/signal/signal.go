package signal

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ms/dsp/buffer"
)

// Errors returned by signal constructors and operations.
var (
	ErrShape          = errors.New("signal: data must hold (x, y) pairs")
	ErrLengthMismatch = errors.New("signal: x and y lengths differ")
	ErrUnsorted       = errors.New("signal: x values must be non-decreasing")
	ErrEmptySignal    = errors.New("signal: signal contains no data")
	ErrZeroMaximum    = errors.New("signal: maximum intensity is zero")
)

// Signal is an ordered sequence of (x, y) points backed by a two-column
// buffer. The zero value is an empty signal.
type Signal struct {
	buf *buffer.Buffer[float64]
}

// Box is the axis-aligned bounding rectangle of a signal.
type Box struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// New returns a signal of n points, all at (0, 0).
func New(n int) Signal {
	return Signal{buf: buffer.New[float64](n, 2)}
}

// FromData wraps a flat x0, y0, x1, y1, ... slice without copying after
// checking its shape and x order.
func FromData(data []float64) (Signal, error) {
	b, err := buffer.FromSlice(data, 2)
	if err != nil {
		return Signal{}, fmt.Errorf("%w: %w", ErrShape, err)
	}
	s := Signal{buf: b}
	if err := CheckSorted(s); err != nil {
		return Signal{}, err
	}
	return s, nil
}

// FromXY builds a signal from separate x and y columns.
func FromXY(x, y []float64) (Signal, error) {
	if len(x) != len(y) {
		return Signal{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	data := make([]float64, 2*len(x))
	for i := range x {
		data[2*i] = x[i]
		data[2*i+1] = y[i]
	}
	return FromData(data)
}

// FromBuffer views a two-column buffer as a signal.
func FromBuffer(b *buffer.Buffer[float64]) (Signal, error) {
	if b.Len() > 0 && b.Cell() != 2 {
		return Signal{}, fmt.Errorf("%w: buffer has %d columns", ErrShape, b.Cell())
	}
	s := Signal{buf: b}
	if err := CheckSorted(s); err != nil {
		return Signal{}, err
	}
	return s, nil
}

// Unchecked wraps data without verifying the x order. It panics if data
// does not hold whole (x, y) pairs.
func Unchecked(data []float64) Signal {
	b, err := buffer.FromSlice(data, 2)
	if err != nil {
		panic(err)
	}
	return Signal{buf: b}
}

// CheckSorted reports ErrUnsorted if any x is smaller than its predecessor.
func CheckSorted(s Signal) error {
	for i := 1; i < s.Len(); i++ {
		if s.X(i) < s.X(i-1) {
			return fmt.Errorf("%w: x[%d]=%g < x[%d]=%g", ErrUnsorted, i, s.X(i), i-1, s.X(i-1))
		}
	}
	return nil
}

// Len returns the number of points.
func (s Signal) Len() int { return s.buf.Len() }

// X returns the x value of point i.
func (s Signal) X(i int) float64 { return s.buf.At(i, 0) }

// Y returns the y value of point i.
func (s Signal) Y(i int) float64 { return s.buf.At(i, 1) }

// Data returns the flat backing slice.
func (s Signal) Data() []float64 { return s.buf.Data() }

// Buffer returns the backing buffer.
func (s Signal) Buffer() *buffer.Buffer[float64] { return s.buf }

// Xs returns a copy of the x column.
func (s Signal) Xs() []float64 {
	if s.Len() == 0 {
		return nil
	}
	return s.buf.Column(0)
}

// Ys returns a copy of the y column.
func (s Signal) Ys() []float64 {
	if s.Len() == 0 {
		return nil
	}
	return s.buf.Column(1)
}

// Slice returns the points [i, j) as a view sharing memory with s.
func (s Signal) Slice(i, j int) Signal {
	if i >= j {
		return Signal{}
	}
	return Unchecked(s.Data()[2*i : 2*j : 2*j])
}

// Copy returns a deep copy of s.
func (s Signal) Copy() Signal {
	if s.Len() == 0 {
		return Signal{}
	}
	return Signal{buf: s.buf.Copy()}
}
