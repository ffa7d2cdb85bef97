package baseline

import (
	"math"
	"slices"

	"github.com/cwbudde/algo-ms/dsp/core"
	"github.com/cwbudde/algo-ms/dsp/signal"
	"github.com/cwbudde/algo-ms/dsp/smooth"
)

// MinRasterStep is the smallest m/z distance between raster points.
const MinRasterStep = 50.0

// Point is the baseline at one raster position.
type Point struct {
	X     float64
	Level float64
	Width float64
}

// Baseline is an ascending list of raster points.
type Baseline []Point

// Signal returns the (X, Level) pairs as a signal.
func (b Baseline) Signal() signal.Signal {
	data := make([]float64, 0, 2*len(b))
	for _, p := range b {
		data = append(data, p.X, p.Level)
	}
	return signal.Unchecked(data)
}

// Estimate computes the baseline of s.
func Estimate(s signal.Signal, opts ...Option) (Baseline, error) {
	n := s.Len()
	if n == 0 {
		return nil, signal.ErrEmptySignal
	}
	cfg := ApplyOptions(opts...)

	if cfg.SingleSegment {
		noise := signal.Noise(s)
		level := noise.Level - noise.Width*cfg.Offset
		return Baseline{
			{X: s.X(0), Level: level, Width: noise.Width},
			{X: s.X(n - 1), Level: level, Width: noise.Width},
		}, nil
	}

	xs := raster(s, cfg.Window)
	levels := make([]float64, len(xs))
	widths := make([]float64, len(xs))
	for i, x := range xs {
		w := x * cfg.Window
		i1 := signal.LocateX(s, x-w)
		i2 := signal.LocateX(s, x+w)
		if i1 == i2 {
			levels[i] = s.Y(core.ClampInt(i1, 0, n-1))
			continue
		}
		noise := signal.Noise(s.Slice(i1, i2))
		levels[i] = noise.Level
		widths[i] = noise.Width
	}

	window := 5 * cfg.Window * (s.X(n-1) - s.X(0))
	levels, err := smoothColumn(xs, levels, window)
	if err != nil {
		return nil, err
	}
	widths, err = smoothColumn(xs, widths, window)
	if err != nil {
		return nil, err
	}

	out := make(Baseline, len(xs))
	for i, x := range xs {
		width := math.Abs(widths[i])
		out[i] = Point{
			X:     x,
			Level: max(0, levels[i]-width*cfg.Offset),
			Width: width,
		}
	}
	return out, nil
}

// raster steps down from the last x by max(MinRasterStep, x*window) and
// returns the visited positions in ascending order, ending at the first x
// clipped to zero.
func raster(s signal.Signal, window float64) []float64 {
	minimum := max(0, s.X(0))
	var xs []float64
	for x := s.X(s.Len() - 1); x > minimum; x -= max(MinRasterStep, x*window) {
		xs = append(xs, x)
	}
	xs = append(xs, minimum)
	slices.Sort(xs)
	return xs
}

func smoothColumn(xs, ys []float64, mzWindow float64) ([]float64, error) {
	col, err := signal.FromXY(xs, ys)
	if err != nil {
		return nil, err
	}
	sm, err := smooth.Smooth(col, smooth.MethodGaussian, mzWindow, 2)
	if err != nil {
		return nil, err
	}
	return sm.Ys(), nil
}
