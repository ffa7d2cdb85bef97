package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-ms/dsp/signal"
)

// Shape selects a peak line shape.
type Shape int

const (
	ShapeGaussian Shape = iota
	ShapeLorentzian
	ShapeGaussLorentzian
)

var shapeNames = map[Shape]string{
	ShapeGaussian:        "gaussian",
	ShapeLorentzian:      "lorentzian",
	ShapeGaussLorentzian: "gausslorentzian",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape converts a shape name (case-insensitive, dashes ignored) into
// a Shape.
func ParseShape(name string) (Shape, error) {
	key := strings.ReplaceAll(strings.ToLower(name), "-", "")
	for s, n := range shapeNames {
		if n == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

func (s Shape) check() error {
	if _, ok := shapeNames[s]; !ok {
		return fmt.Errorf("%w: %v", ErrUnknownShape, s)
	}
	return nil
}

// extent returns how many FWHMs the shape is modelled left and right of
// its centre.
func (s Shape) extent() (left, right float64) {
	switch s {
	case ShapeLorentzian:
		return 10, 10
	case ShapeGaussLorentzian:
		return 5, 10
	default:
		return 5, 5
	}
}

// unit evaluates the shape with height 1 centred at c.
func (s Shape) unit(x, c, fwhm float64) float64 {
	if s == ShapeGaussian || (s == ShapeGaussLorentzian && x < c) {
		f := fwhm / 1.66
		return math.Exp(-(x - c) * (x - c) / (f * f))
	}
	f := fwhm / 2
	return 1 / (1 + (x-c)*(x-c)/(f*f))
}

// Gaussian samples a Gaussian peak centred at x with the given baseline
// and apex heights at points evenly spaced x-positions.
func Gaussian(x, minY, maxY, fwhm float64, points int) (signal.Signal, error) {
	return sample(ShapeGaussian, x, minY, maxY, fwhm, points)
}

// Lorentzian samples a Lorentzian peak, see Gaussian.
func Lorentzian(x, minY, maxY, fwhm float64, points int) (signal.Signal, error) {
	return sample(ShapeLorentzian, x, minY, maxY, fwhm, points)
}

// GaussLorentzian samples the hybrid shape, see Gaussian.
func GaussLorentzian(x, minY, maxY, fwhm float64, points int) (signal.Signal, error) {
	return sample(ShapeGaussLorentzian, x, minY, maxY, fwhm, points)
}

func sample(shape Shape, x, minY, maxY, fwhm float64, points int) (signal.Signal, error) {
	if !(fwhm > 0) {
		return signal.Signal{}, fmt.Errorf("%w: %g", ErrInvalidFWHM, fwhm)
	}
	if points < 1 {
		return signal.Signal{}, fmt.Errorf("%w: %d", ErrInvalidPoints, points)
	}

	left, right := shape.extent()
	minX := x - left*fwhm
	step := (left + right) * fwhm / float64(points)
	amplitude := maxY - minY

	data := make([]float64, 2*points)
	for i := range points {
		xi := minX + float64(i)*step
		data[2*i] = xi
		data[2*i+1] = minY + amplitude*shape.unit(xi, x, fwhm)
	}
	return signal.Unchecked(data), nil
}
