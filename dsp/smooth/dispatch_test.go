package smooth

import (
	"testing"

	"github.com/cwbudde/algo-ms/dsp/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	for name, want := range map[string]Method{
		"MA":             MethodMovingAverage,
		"ga":             MethodGaussian,
		"SG":             MethodSavitzkyGolay,
		"savitzky-golay": MethodSavitzkyGolay,
	} {
		got, err := ParseMethod(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseMethod("median")
	require.ErrorIs(t, err, ErrUnknownMethod)

	assert.Equal(t, "GA", MethodGaussian.String())
	assert.Equal(t, "Method(9)", Method(9).String())
}

func TestWindowPoints(t *testing.T) {
	// 101 points over 10 m/z: 0.5 m/z covers about 5 points.
	s := newSignal(t, make([]float64, 101)...)
	assert.Equal(t, 5, WindowPoints(s, 0.5))
	assert.Equal(t, 0, WindowPoints(newSignal(t, 1), 0.5))

	flat, err := signal.FromData([]float64{5, 1, 5, 2})
	require.NoError(t, err)
	assert.Equal(t, 0, WindowPoints(flat, 1))
}

func TestSmoothDispatch(t *testing.T) {
	s := newSignal(t, 0, 0, 0, 9, 0, 0, 0, 0, 0, 0, 0)

	// Eleven points over 1 m/z: a 0.2 m/z window is two points.
	ma, err := Smooth(s, MethodMovingAverage, 0.2, 1)
	require.NoError(t, err)
	assert.Equal(t, MovingAverage(s, 2, 1).Data(), ma.Data())

	ga, err := Smooth(s, MethodGaussian, 0.2, 1)
	require.NoError(t, err)
	assert.Equal(t, Gaussian(s, 2, 1).Data(), ga.Data())

	sg, err := Smooth(s, MethodSavitzkyGolay, 0.5, 1)
	require.NoError(t, err)
	want, _ := SavitzkyGolay(s, 5, 1, DefaultOrder)
	assert.Equal(t, want.Data(), sg.Data())

	_, err = Smooth(s, Method(42), 0.2, 1)
	require.ErrorIs(t, err, ErrUnknownMethod)

	empty, err := Smooth(signal.Signal{}, MethodGaussian, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}
