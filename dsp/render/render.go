package render

import (
	"math"

	"github.com/cwbudde/algo-ms/dsp/signal"
)

// Rescale maps every point to (round(x*scaleX+shiftX),
// round(y*scaleY+shiftY)), rounding halves away from zero.
func Rescale(s signal.Signal, scaleX, scaleY, shiftX, shiftY float64) signal.Signal {
	out := signal.Multiply(s, scaleX, scaleY)
	data := out.Data()
	for i := 0; i < len(data); i += 2 {
		data[i] = math.Round(data[i] + shiftX)
		data[i+1] = math.Round(data[i+1] + shiftY)
	}
	return out
}

// Filter decimates s for display at the given x resolution. Points are
// collected into a bucket until one lies at least resolution past the
// bucket start. The bucket is then flushed as its minimum and maximum
// (both at the bucket start x) and its last point, each only when it adds
// something, followed by the point that closed the bucket. The last input
// point always closes a bucket.
func Filter(s signal.Signal, resolution float64) signal.Signal {
	n := s.Len()
	if n == 0 {
		return signal.Signal{}
	}

	buf := make([]float64, 0, 2*n)
	buf = append(buf, s.X(0), s.Y(0))

	lastX, prevX := s.X(0), s.X(0)
	minY, maxY, prevY := s.Y(0), s.Y(0), s.Y(0)
	for i := 1; i < n; i++ {
		x, y := s.X(i), s.Y(i)
		if x-lastX < resolution && i != n-1 {
			minY = min(minY, y)
			maxY = max(maxY, y)
			prevX, prevY = x, y
			continue
		}

		k := len(buf)
		if buf[k-2] != lastX || buf[k-1] != minY {
			buf = append(buf, lastX, minY)
		}
		if maxY != minY {
			buf = append(buf, lastX, maxY)
		}
		if prevY != maxY {
			buf = append(buf, prevX, prevY)
		}
		buf = append(buf, x, y)

		lastX, prevX = x, x
		minY, maxY, prevY = y, y, y
	}

	out := make([]float64, len(buf))
	copy(out, buf)
	return signal.Unchecked(out)
}
