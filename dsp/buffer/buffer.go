package buffer

import (
	"errors"
	"fmt"
)

// Errors returned by buffer constructors.
var (
	ErrInvalidCell = errors.New("buffer: cell width must be >= 1")
	ErrShape       = errors.New("buffer: data length is not a multiple of cell width")
)

// Number is the set of element types a Buffer can hold.
type Number interface {
	~float64 | ~int
}

// Buffer is a flat row-major buffer with an explicit logical shape of
// Len rows by Cell columns.
type Buffer[T Number] struct {
	data   []T
	length int
	cell   int
}

// New returns a zero-filled Buffer of length rows with cell columns each.
// Negative lengths are treated as 0 and cell values below 1 as 1.
func New[T Number](length, cell int) *Buffer[T] {
	if length < 0 {
		length = 0
	}
	if cell < 1 {
		cell = 1
	}
	return &Buffer[T]{
		data:   make([]T, length*cell),
		length: length,
		cell:   cell,
	}
}

// FromSlice wraps data without copying. The slice length must be a multiple
// of cell. Mutations to the slice are visible through the Buffer.
func FromSlice[T Number](data []T, cell int) (*Buffer[T], error) {
	if cell < 1 {
		return nil, ErrInvalidCell
	}
	if len(data)%cell != 0 {
		return nil, fmt.Errorf("%w: len=%d cell=%d", ErrShape, len(data), cell)
	}
	return &Buffer[T]{data: data, length: len(data) / cell, cell: cell}, nil
}

// Data returns the underlying flat slice.
func (b *Buffer[T]) Data() []T {
	if b == nil {
		return nil
	}
	return b.data
}

// Len returns the number of rows.
func (b *Buffer[T]) Len() int {
	if b == nil {
		return 0
	}
	return b.length
}

// Cell returns the number of values per row.
func (b *Buffer[T]) Cell() int {
	if b == nil {
		return 0
	}
	return b.cell
}

// Dim returns 1 for single-column buffers and 2 otherwise.
func (b *Buffer[T]) Dim() int {
	if b.Cell() <= 1 {
		return 1
	}
	return 2
}

// Row returns the i-th row as a sub-slice sharing memory with the buffer.
func (b *Buffer[T]) Row(i int) []T {
	if debugChecks {
		b.checkRow(i)
	}
	return b.data[i*b.cell : (i+1)*b.cell : (i+1)*b.cell]
}

// At returns the value at row i, column j.
func (b *Buffer[T]) At(i, j int) T {
	if debugChecks {
		b.checkRow(i)
		b.checkCol(j)
	}
	return b.data[i*b.cell+j]
}

// Set stores v at row i, column j.
func (b *Buffer[T]) Set(i, j int, v T) {
	if debugChecks {
		b.checkRow(i)
		b.checkCol(j)
	}
	b.data[i*b.cell+j] = v
}

// Column returns a copy of column j.
func (b *Buffer[T]) Column(j int) []T {
	if debugChecks {
		b.checkCol(j)
	}
	out := make([]T, b.Len())
	for i := range out {
		out[i] = b.data[i*b.cell+j]
	}
	return out
}

// Copy returns a deep copy of the buffer.
func (b *Buffer[T]) Copy() *Buffer[T] {
	if b == nil {
		return nil
	}
	s := make([]T, len(b.data))
	copy(s, b.data)
	return &Buffer[T]{data: s, length: b.length, cell: b.cell}
}

func (b *Buffer[T]) checkRow(i int) {
	if i < 0 || i >= b.length {
		panic(fmt.Sprintf("buffer: row %d out of range [0,%d)", i, b.length))
	}
}

func (b *Buffer[T]) checkCol(j int) {
	if j < 0 || j >= b.cell {
		panic(fmt.Sprintf("buffer: column %d out of range [0,%d)", j, b.cell))
	}
}
