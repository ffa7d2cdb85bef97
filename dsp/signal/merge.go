package signal

import "github.com/cwbudde/algo-ms/dsp/interp"

// merger describes how two signals are folded into one. both combines an
// A value with a B value at the same x; lone maps a B value that has no A
// counterpart. A values without a B counterpart pass through unchanged.
type merger struct {
	both func(a, b float64) float64
	lone func(b float64) float64
}

var (
	combineOp  = merger{both: func(a, b float64) float64 { return a + b }, lone: identity}
	overlayOp  = merger{both: func(a, b float64) float64 { return max(a, b) }, lone: identity}
	subtractOp = merger{both: func(a, b float64) float64 { return a - b }, lone: func(b float64) float64 { return -b }}
)

func identity(v float64) float64 { return v }

// Combine sums two signals. Every input point yields one output point; the
// other signal's contribution at that x is linearly interpolated, and is
// zero before its first point and after its last.
func Combine(a, b Signal) Signal { return merge(a, b, combineOp) }

// Overlay takes the pointwise maximum of two signals, merged like Combine.
func Overlay(a, b Signal) Signal { return merge(a, b, overlayOp) }

// Subtract computes a - b, merged like Combine. Points only present in b
// appear negated.
func Subtract(a, b Signal) Signal { return merge(a, b, subtractOp) }

func merge(a, b Signal, m merger) Signal {
	lenA, lenB := a.Len(), b.Len()
	if lenA+lenB == 0 {
		return Signal{}
	}

	buf := make([]float64, 0, 2*(lenA+lenB))
	i, j := 0, 0
	for i < lenA || j < lenB {
		switch {
		case i < lenA && j < lenB:
			xa, xb := a.X(i), b.X(j)
			switch {
			case xa < xb:
				y := a.Y(i)
				if j > 0 {
					y = m.both(y, interp.InterpolateY(b.X(j-1), b.Y(j-1), xb, b.Y(j), xa))
				}
				buf = append(buf, xa, y)
				i++
			case xa > xb:
				y := m.lone(b.Y(j))
				if i > 0 {
					y = m.both(interp.InterpolateY(a.X(i-1), a.Y(i-1), xa, a.Y(i), xb), b.Y(j))
				}
				buf = append(buf, xb, y)
				j++
			default:
				buf = append(buf, xa, m.both(a.Y(i), b.Y(j)))
				i++
				j++
			}
		case i < lenA:
			buf = append(buf, a.X(i), a.Y(i))
			i++
		default:
			buf = append(buf, b.X(j), m.lone(b.Y(j)))
			j++
		}
	}

	out := make([]float64, len(buf))
	copy(out, buf)
	return Unchecked(out)
}

// SubtractBaseline subtracts a piecewise-linear baseline from s and clips
// negative intensities to 0. An empty baseline returns an unclipped copy;
// a single-point baseline is subtracted as a constant.
func SubtractBaseline(s, baseline Signal) Signal {
	n := s.Len()
	if n == 0 {
		return Signal{}
	}
	out := s.Copy()
	data := out.Data()

	switch baseline.Len() {
	case 0:
		return out
	case 1:
		level := baseline.Y(0)
		for i := range n {
			data[2*i+1] -= level
		}
	default:
		j := 1
		last := baseline.Len() - 1
		a, b := segment(baseline, j)
		for i := range n {
			x := data[2*i]
			for x > baseline.X(j) && j < last {
				j++
				a, b = segment(baseline, j)
			}
			data[2*i+1] -= a*x + b
		}
	}

	for i := range n {
		if data[2*i+1] < 0 {
			data[2*i+1] = 0
		}
	}
	return out
}

// segment returns slope and intercept of the baseline line ending at j.
func segment(s Signal, j int) (a, b float64) {
	x1, y1 := s.X(j-1), s.Y(j-1)
	x2, y2 := s.X(j), s.Y(j)
	if x2 == x1 {
		return 0, y2
	}
	a = (y2 - y1) / (x2 - x1)
	return a, y1 - a*x1
}
