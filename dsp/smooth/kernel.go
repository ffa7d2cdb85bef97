package smooth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ms/dsp/conv"
	"github.com/cwbudde/algo-ms/dsp/core"
	"github.com/cwbudde/algo-ms/dsp/signal"
)

// MovingAverage replaces every intensity by the mean of the window+1
// intensities centred on it. window is clamped to the signal length and
// rounded down to an even number; 0 leaves the signal unchanged. Each of
// the cycles passes smooths the output of the previous one.
func MovingAverage(s signal.Signal, window, cycles int) signal.Signal {
	return smoothKernel(s, window, cycles, boxKernel)
}

// Gaussian is MovingAverage with Gaussian weights
// exp(-r^2 / (k^2/16)), k being the kernel size and r the distance from its
// centre.
func Gaussian(s signal.Signal, window, cycles int) signal.Signal {
	return smoothKernel(s, window, cycles, gaussKernel)
}

func boxKernel(size int) []float64 {
	k := make([]float64, size)
	for i := range k {
		k[i] = 1 / float64(size)
	}
	return k
}

func gaussKernel(size int) []float64 {
	k := make([]float64, size)
	scale := float64(size*size) / 16
	mid := float64(size-1) / 2
	sum := 0.0
	for i := range k {
		r := float64(i) - mid
		k[i] = math.Exp(-(r * r / scale))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

func smoothKernel(s signal.Signal, window, cycles int, makeKernel func(int) []float64) signal.Signal {
	n := s.Len()
	window = core.ClampInt(window, 0, n)
	window -= window % 2
	if n == 0 || cycles < 1 || window <= 0 {
		return s.Copy()
	}

	kernel := makeKernel(window + 1)
	half := window / 2
	ys := s.Ys()
	ext := make([]float64, n+window)
	for range cycles {
		for k := range ext {
			ext[k] = ys[core.Reflect(k-half, n)]
		}
		out, err := conv.ConvolveMode(ext, kernel, conv.ModeValid)
		if err != nil {
			// ext and kernel are never empty here.
			panic(fmt.Sprintf("smooth: %v", err))
		}
		ys = out
	}
	return withY(s, ys)
}

// withY returns a copy of s carrying the intensities ys.
func withY(s signal.Signal, ys []float64) signal.Signal {
	out := s.Copy()
	data := out.Data()
	for i, y := range ys {
		data[2*i+1] = y
	}
	return out
}
