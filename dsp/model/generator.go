package model

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-ms/dsp/signal"
)

// DefaultSeed seeds generators created without WithSeed or WithRand.
const DefaultSeed = 1

// Generator renders peak lists into profiles. Its noise source is seeded,
// so a generator built with the same options produces the same profiles.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the noise seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the noise source directly.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// NewGenerator creates a generator seeded with DefaultSeed unless an option
// says otherwise.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{rng: rand.New(rand.NewSource(DefaultSeed))}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Rasterize sums the shapes of all peaks on the given ascending raster.
// Each peak only touches raster points inside its modelled extent. A
// non-zero noise adds uniform noise in [-noise/2, noise/2) to every point.
func (g *Generator) Rasterize(peaks []Peak, raster []float64, noise float64, shape Shape) (signal.Signal, error) {
	if err := checkPeaks(peaks); err != nil {
		return signal.Signal{}, err
	}
	if len(raster) == 0 {
		return signal.Signal{}, ErrEmptyRaster
	}
	if err := shape.check(); err != nil {
		return signal.Signal{}, err
	}

	profile, err := signal.FromXY(raster, make([]float64, len(raster)))
	if err != nil {
		return signal.Signal{}, fmt.Errorf("model: raster: %w", err)
	}
	data := profile.Data()

	left, right := shape.extent()
	for _, p := range peaks {
		i1 := signal.LocateX(profile, p.MZ-left*p.FWHM)
		i2 := signal.LocateX(profile, p.MZ+right*p.FWHM)
		for j := i1; j < i2; j++ {
			data[2*j+1] += p.Intensity * shape.unit(data[2*j], p.MZ, p.FWHM)
		}
	}

	if noise != 0 {
		for i := range profile.Len() {
			data[2*i+1] += noise*g.rng.Float64() - noise/2
		}
	}
	return profile, nil
}

// Profile builds a raster for peaks and renders them onto it.
func (g *Generator) Profile(peaks []Peak, pointsPerFWHM int, noise float64, shape Shape) (signal.Signal, error) {
	if err := shape.check(); err != nil {
		return signal.Signal{}, err
	}
	raster, err := Raster(peaks, pointsPerFWHM)
	if err != nil {
		return signal.Signal{}, err
	}
	return g.Rasterize(peaks, raster, noise, shape)
}

// Rasterize renders peaks with a fresh default-seeded generator.
func Rasterize(peaks []Peak, raster []float64, noise float64, shape Shape) (signal.Signal, error) {
	return NewGenerator().Rasterize(peaks, raster, noise, shape)
}

// Profile renders peaks on their own raster with a fresh default-seeded
// generator.
func Profile(peaks []Peak, pointsPerFWHM int, noise float64, shape Shape) (signal.Signal, error) {
	return NewGenerator().Profile(peaks, pointsPerFWHM, noise, shape)
}
