package smooth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-ms/dsp/signal"
)

// Errors returned by the smoothing dispatcher.
var (
	ErrUnknownMethod = errors.New("smooth: unknown method")
	ErrInvalidOrder  = errors.New("smooth: polynomial order must be non-negative")
)

// Method selects a smoothing kernel.
type Method int

const (
	MethodMovingAverage Method = iota
	MethodGaussian
	MethodSavitzkyGolay
)

func (m Method) String() string {
	switch m {
	case MethodMovingAverage:
		return "MA"
	case MethodGaussian:
		return "GA"
	case MethodSavitzkyGolay:
		return "SG"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod accepts the short codes MA, GA and SG as well as the long
// names, case-insensitively.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(name) {
	case "ma", "moving-average", "movingaverage":
		return MethodMovingAverage, nil
	case "ga", "gaussian":
		return MethodGaussian, nil
	case "sg", "savitzky-golay", "savgol":
		return MethodSavitzkyGolay, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// WindowPoints converts an m/z window into the approximate number of
// points it covers, assuming the points are spread evenly over the
// signal's x range.
func WindowPoints(s signal.Signal, mzWindow float64) int {
	n := s.Len()
	if n < 2 {
		return 0
	}
	span := s.X(n-1) - s.X(0)
	if span <= 0 {
		return 0
	}
	return int(mzWindow * float64(n) / span)
}

// Smooth smooths s with method over an m/z window.
func Smooth(s signal.Signal, method Method, mzWindow float64, cycles int) (signal.Signal, error) {
	if s.Len() == 0 {
		return signal.Signal{}, nil
	}
	window := WindowPoints(s, mzWindow)
	switch method {
	case MethodMovingAverage:
		return MovingAverage(s, window, cycles), nil
	case MethodGaussian:
		return Gaussian(s, window, cycles), nil
	case MethodSavitzkyGolay:
		return SavitzkyGolay(s, window, cycles, DefaultOrder)
	}
	return signal.Signal{}, fmt.Errorf("%w: %v", ErrUnknownMethod, method)
}
