package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-ms/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntensity(t *testing.T) {
	s := parabola(t)
	cases := []struct {
		x, want float64
	}{
		{-1, 0},
		{0, 0},
		{1.5, 2.5},
		{2, 4},
		{2.5, 6.5},
		{3, 9},
		{3.1, 0},
	}
	for _, c := range cases {
		got, err := Intensity(s, c.x)
		require.NoError(t, err)
		assert.InDelta(t, c.want, got, 1e-12, "x=%v", c.x)
	}

	_, err := Intensity(Signal{}, 1)
	require.ErrorIs(t, err, ErrEmptySignal)

	one := mustSignal(t, 5, 3)
	got, _ := Intensity(one, 5)
	assert.Equal(t, 3.0, got)
	got, _ = Intensity(one, 6)
	assert.Equal(t, 0.0, got)
}

func TestCentroidAndWidthSymmetric(t *testing.T) {
	s := mustSignal(t, 0, 0, 1, 0, 2, 10, 3, 0, 4, 0)

	c, err := Centroid(s, 2, 5)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, c, 1e-12)

	w, err := Width(s, 2, 5)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, w, 1e-12)
}

func TestCentroidAndWidthAsymmetric(t *testing.T) {
	s := mustSignal(t, 0, 0, 1, 10, 3, 0)

	c, err := Centroid(s, 1, 5)
	require.NoError(t, err)
	assert.InDelta(t, 1.25, c, 1e-12)

	w, err := Width(s, 1, 5)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, w, 1e-12)
}

func TestCentroidOfSampledGaussian(t *testing.T) {
	xs := testutil.Grid(499, 0.01, 201)
	s, err := FromXY(xs, testutil.GaussianPeak(xs, 500.003, 1000, 0.05))
	require.NoError(t, err)

	c, err := Centroid(s, 500, 500)
	require.NoError(t, err)
	assert.InDelta(t, 500.003, c, 1e-3)

	// FWHM of a Gaussian is 2*sqrt(2 ln 2)*sigma.
	w, err := Width(s, 500, 500)
	require.NoError(t, err)
	assert.InDelta(t, 2.3548*0.05, w, 2e-3)
}

func TestPeakMetricsOutsideDomain(t *testing.T) {
	s := parabola(t)
	c, err := Centroid(s, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c)

	w, err := Width(s, -10, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, w)

	_, err = Centroid(Signal{}, 1, 1)
	require.ErrorIs(t, err, ErrEmptySignal)
	_, err = Width(Signal{}, 1, 1)
	require.ErrorIs(t, err, ErrEmptySignal)
}

func TestPeakWalkStopsAtSignalEnd(t *testing.T) {
	// Every point is above the height, so both walks run to the ends.
	s := mustSignal(t, 0, 6, 1, 8, 2, 10, 3, 8)
	w, err := Width(s, 2.5, 5)
	require.NoError(t, err)
	testutil.RequireFinite(t, []float64{w})
}

func TestArea(t *testing.T) {
	s := mustSignal(t, 0, 0, 1, 2, 2, 0)
	assert.InDelta(t, 2.0, Area(s), 1e-12)
	assert.Equal(t, 0.0, Area(mustSignal(t, 1, 5)))
	assert.Equal(t, 0.0, Area(Signal{}))
}

func TestAreaRange(t *testing.T) {
	s := mustSignal(t, 0, 2, 1, 2, 2, 2, 3, 2, 4, 2)
	assert.InDelta(t, 4.0, AreaRange(s, 1, 3, Signal{}), 1e-12)
	assert.InDelta(t, 4.0, AreaRange(s, 3, 1, Signal{}), 1e-12, "bounds are swapped")
	assert.InDelta(t, 3.0, AreaRange(s, 0.5, 2, Signal{}), 1e-12)
	assert.Equal(t, 0.0, AreaRange(s, 2, 2, Signal{}))

	base := mustSignal(t, 0, 1)
	assert.InDelta(t, 2.0, AreaRange(s, 1, 3, base), 1e-12)
}

func TestNoise(t *testing.T) {
	s := mustSignal(t, 0, 1, 1, 2, 2, 3, 3, 4, 4, 100)
	n := Noise(s)
	assert.Equal(t, NoiseEstimate{Level: 3, Width: 2}, n)
	assert.Equal(t, 100.0, s.Y(4), "input is not reordered")

	even := mustSignal(t, 0, 4, 1, 1, 2, 3, 3, 2)
	assert.Equal(t, NoiseEstimate{Level: 2, Width: 2}, Noise(even))

	assert.Equal(t, NoiseEstimate{}, Noise(Signal{}))
}

func TestNoiseRangeAndAt(t *testing.T) {
	xs := testutil.Grid(0, 1, 100)
	ys := make([]float64, 100)
	for i := range ys {
		if i >= 50 {
			ys[i] = 10
		}
	}
	s, err := FromXY(xs, ys)
	require.NoError(t, err)

	assert.Equal(t, 0.0, NoiseRange(s, 0, 40).Level)
	assert.Equal(t, 10.0, NoiseRange(s, 60, 99).Level)
	assert.Equal(t, 10.0, NoiseAt(s, 80, 0.1).Level)
	assert.Equal(t, NoiseEstimate{}, NoiseRange(s, 200, 300))
}

func TestLocalMaxima(t *testing.T) {
	s := mustSignal(t,
		0, 0,
		1, 5,
		2, 1,
		3, 3,
		4, 3,
		5, 0,
		6, 2,
	)
	got := LocalMaxima(s)
	assert.Equal(t, []float64{1, 5, 4, 3}, got.Data(), "plateau reported at its last point, trailing rise ignored")
	assert.Equal(t, 0, LocalMaxima(Signal{}).Len())
}

func TestAreaOfSampledGaussian(t *testing.T) {
	const height, sigma = 40.0, 0.8
	x := testutil.Grid(90, 0.01, 2001)
	s, err := FromXY(x, testutil.GaussianPeak(x, 100, height, sigma))
	require.NoError(t, err)

	testutil.RequireNearlyEqual(t, Area(s), height*sigma*math.Sqrt(2*math.Pi), 1e-6)
}
