package formula

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/cwbudde/algo-ms/dsp/buffer"
)

// Errors returned for invalid search constraints.
var (
	ErrNoElements     = errors.New("formula: no elements")
	ErrLengthMismatch = errors.New("formula: minimum, maximum and masses differ in length")
	ErrInvalidBounds  = errors.New("formula: counts must satisfy 0 <= minimum <= maximum")
	ErrInvalidMass    = errors.New("formula: element masses must be finite and >= 0")
	ErrInvalidWindow  = errors.New("formula: low mass exceeds high mass")
)

// Composition holds one count per element, in constraint order.
type Composition []int

// Constraints bound a composition search. Index i of Minimum, Maximum and
// Masses describes the same element.
type Constraints struct {
	Minimum []int
	Maximum []int
	Masses  []float64
	LoMass  float64
	HiMass  float64
}

// Validate reports the first inconsistency in c.
func (c Constraints) Validate() error {
	n := len(c.Masses)
	if n == 0 {
		return ErrNoElements
	}
	if len(c.Minimum) != n || len(c.Maximum) != n {
		return fmt.Errorf("%w: %d, %d, %d", ErrLengthMismatch, len(c.Minimum), len(c.Maximum), n)
	}
	for i := range n {
		if c.Minimum[i] < 0 || c.Minimum[i] > c.Maximum[i] {
			return fmt.Errorf("%w: element %d has [%d, %d]", ErrInvalidBounds, i, c.Minimum[i], c.Maximum[i])
		}
		if m := c.Masses[i]; m < 0 || math.IsNaN(m) || math.IsInf(m, 0) {
			return fmt.Errorf("%w: element %d has mass %g", ErrInvalidMass, i, m)
		}
	}
	if !(c.LoMass <= c.HiMass) {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidWindow, c.LoMass, c.HiMass)
	}
	return nil
}

// Mass returns the mass of counts under c's element masses.
func (c Constraints) Mass(counts Composition) float64 {
	mass := 0.0
	for i, n := range counts {
		mass += float64(n) * c.Masses[i]
	}
	return mass
}

// Search returns an iterator over all compositions within the bounds of c
// whose mass lies in [LoMass, HiMass]. Each yielded slice is owned by the
// caller. Breaking out of the loop stops the search.
func Search(c Constraints) (iter.Seq[Composition], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c = Constraints{
		Minimum: slices.Clone(c.Minimum),
		Maximum: slices.Clone(c.Maximum),
		Masses:  slices.Clone(c.Masses),
		LoMass:  c.LoMass,
		HiMass:  c.HiMass,
	}

	return func(yield func(Composition) bool) {
		current := slices.Clone(c.Minimum)
		s := searcher{c: c, current: current, yield: yield}
		s.walk(0, c.Mass(current))
	}, nil
}

type searcher struct {
	c       Constraints
	current Composition
	yield   func(Composition) bool
}

// walk varies the count at pos and above. mass is the mass of current,
// where every position >= pos still holds its minimum. It returns false
// once the consumer has stopped.
func (s *searcher) walk(pos int, mass float64) bool {
	if pos == len(s.current) {
		// Re-summed so the window test does not see accumulated rounding.
		m := s.c.Mass(s.current)
		if m >= s.c.LoMass && m <= s.c.HiMass {
			return s.yield(slices.Clone(s.current))
		}
		return true
	}

	lo, hi := s.c.Minimum[pos], s.c.Maximum[pos]
	defer func() { s.current[pos] = lo }()
	for s.current[pos] = lo; s.current[pos] <= hi && mass <= s.c.HiMass; s.current[pos]++ {
		if !s.walk(pos+1, mass) {
			return false
		}
		mass += s.c.Masses[pos]
	}
	return true
}

// Compositions returns the first limit results of Search as a buffer with
// one row per composition. A limit <= 0 yields an empty buffer.
func Compositions(c Constraints, limit int) (*buffer.Buffer[int], error) {
	seq, err := Search(c)
	if err != nil {
		return nil, err
	}
	width := len(c.Masses)
	if limit <= 0 {
		return buffer.New[int](0, width), nil
	}

	data := make([]int, 0, min(limit, 1024)*width)
	count := 0
	for comp := range seq {
		data = append(data, comp...)
		count++
		if count == limit {
			break
		}
	}

	out, err := buffer.FromSlice(slices.Clip(data), width)
	if err != nil {
		return nil, err
	}
	return out, nil
}
