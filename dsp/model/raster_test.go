package model

import (
	"testing"

	"github.com/cwbudde/algo-ms/dsp/buffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterUniformForSinglePeak(t *testing.T) {
	r, err := Raster([]Peak{{MZ: 100, Intensity: 1, FWHM: 0.5}}, 10)
	require.NoError(t, err)

	assert.Equal(t, 97.5, r[0])
	assert.GreaterOrEqual(t, len(r), 99)
	assert.LessOrEqual(t, len(r), 100)
	for i := 1; i < len(r); i++ {
		assert.InDelta(t, 0.05, r[i]-r[i-1], 1e-9)
	}
	assert.Less(t, r[len(r)-1], 102.5)
}

func TestRasterStepGrowsWithMass(t *testing.T) {
	peaks := []Peak{
		{MZ: 1000, Intensity: 1, FWHM: 1},
		{MZ: 200, Intensity: 1, FWHM: 0.1},
	}
	r, err := Raster(peaks, 5)
	require.NoError(t, err)

	assert.InDelta(t, 195, r[0], 1e-9)
	assert.InDelta(t, 0.02, r[1]-r[0], 1e-9)
	for i := 2; i < len(r); i++ {
		assert.GreaterOrEqual(t, r[i]-r[i-1], r[i-1]-r[i-2]-1e-12)
	}
	assert.Less(t, r[len(r)-1], 1005.0)
	assert.LessOrEqual(t, r[len(r)-1]-r[len(r)-2], 0.2+1e-9)
}

func TestRasterErrors(t *testing.T) {
	_, err := Raster(nil, 10)
	require.ErrorIs(t, err, ErrNoPeaks)
	_, err = Raster([]Peak{{MZ: 1, FWHM: -1}}, 10)
	require.ErrorIs(t, err, ErrInvalidFWHM)
	_, err = Raster([]Peak{{MZ: 1, FWHM: 1}}, 0)
	require.ErrorIs(t, err, ErrInvalidPoints)
}

func TestPeakBufferRoundTrip(t *testing.T) {
	peaks := []Peak{{MZ: 500.2, Intensity: 1000, FWHM: 0.1}, {MZ: 640, Intensity: 20, FWHM: 0.2}}
	b := PeakBuffer(peaks)
	assert.Equal(t, 3, b.Cell())
	assert.Equal(t, []float64{500.2, 1000, 0.1, 640, 20, 0.2}, b.Data())

	got, err := PeaksFromBuffer(b)
	require.NoError(t, err)
	assert.Equal(t, peaks, got)

	_, err = PeaksFromBuffer(buffer.New[float64](2, 2))
	require.ErrorIs(t, err, ErrPeakShape)

	empty, err := PeaksFromBuffer(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
