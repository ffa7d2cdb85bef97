package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/cwbudde/algo-ms/dsp/model"
	"github.com/cwbudde/algo-ms/dsp/smooth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOutput(t *testing.T, out string) (xs, ys []float64) {
	t.Helper()
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(line)
		require.Len(t, fields, 2, line)
		x, err := strconv.ParseFloat(fields[0], 64)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(fields[1], 64)
		require.NoError(t, err)
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

func TestParsePeaks(t *testing.T) {
	got, err := parsePeaks("100:1000:0.2, 150.5:400:0.3")
	require.NoError(t, err)
	assert.Equal(t, []model.Peak{
		{MZ: 100, Intensity: 1000, FWHM: 0.2},
		{MZ: 150.5, Intensity: 400, FWHM: 0.3},
	}, got)

	_, err = parsePeaks("100:1000")
	require.Error(t, err)
	_, err = parsePeaks("100:x:1")
	require.Error(t, err)
	_, err = parsePeaks("")
	require.ErrorIs(t, err, model.ErrNoPeaks)
}

func TestParseRange(t *testing.T) {
	lo, hi, err := parseRange("99.5:101")
	require.NoError(t, err)
	assert.Equal(t, 99.5, lo)
	assert.Equal(t, 101.0, hi)

	_, _, err = parseRange("99.5")
	require.Error(t, err)
}

func TestReadXY(t *testing.T) {
	s, err := readXY(strings.NewReader("# header\n1 2\n\n2\t3 extra\n3 1\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 2, 3, 3, 1}, s.Data())

	_, err = readXY(strings.NewReader("1\n"))
	require.Error(t, err)
	_, err = readXY(strings.NewReader("2 1\n1 1\n"))
	require.Error(t, err)
}

func TestRunSynthesizes(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-peaks", "100:50:0.5", "-points", "8"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	xs, ys := parseOutput(t, stdout.String())
	require.NotEmpty(t, xs)
	assert.IsNonDecreasing(t, xs)

	best := 0
	for i, y := range ys {
		if y > ys[best] {
			best = i
		}
	}
	assert.InDelta(t, 100, xs[best], 0.1)
	assert.InDelta(t, 50, ys[best], 1)
}

func TestRunPipeline(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{
		"-peaks", "100:50:0.5,103:20:0.5",
		"-noise", "2",
		"-crop", "98:105",
		"-smooth", smooth.MethodSavitzkyGolay.String(),
		"-smooth-window", "0.3",
		"-baseline",
		"-normalize",
		"-v",
	}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	xs, ys := parseOutput(t, stdout.String())
	assert.GreaterOrEqual(t, xs[0], 98.0)
	assert.LessOrEqual(t, xs[len(xs)-1], 105.0)

	maxY := 0.0
	for _, y := range ys {
		assert.GreaterOrEqual(t, y, 0.0)
		maxY = max(maxY, y)
	}
	assert.InDelta(t, 100, maxY, 1e-9)

	log := stderr.String()
	for _, stepName := range []string{"profile", "crop", "smooth", "baseline", "normalize"} {
		assert.Contains(t, log, "step="+stepName)
	}
}

func TestRunSummary(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-peaks", "100:50:0.5,103:20:0.5", "-format", "summary", "-top", "1"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "points")
	assert.Contains(t, out, "noise level")
	assert.Contains(t, out, "Centroid")
	assert.Contains(t, out, "100.0")
	assert.NotContains(t, out, "103.0")
}

func TestRunFilter(t *testing.T) {
	var full, filtered, stderr bytes.Buffer
	require.NoError(t, run([]string{"-peaks", "100:50:0.5", "-points", "40"}, &full, &stderr))
	require.NoError(t, run([]string{"-peaks", "100:50:0.5", "-points", "40", "-filter", "0.5"}, &filtered, &stderr))

	a, _ := parseOutput(t, full.String())
	b, _ := parseOutput(t, filtered.String())
	assert.Less(t, len(b), len(a))
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.ErrorIs(t, run(nil, &stdout, &stderr), errNoInput)
	require.ErrorIs(t, run([]string{"-peaks", "100:1:1", "-shape", "box"}, &stdout, &stderr), model.ErrUnknownShape)
	require.ErrorIs(t, run([]string{"-peaks", "100:1:1", "-smooth", "xx"}, &stdout, &stderr), smooth.ErrUnknownMethod)
	require.ErrorIs(t, run([]string{"-peaks", "100:1:0"}, &stdout, &stderr), model.ErrInvalidFWHM)
	require.Error(t, run([]string{"-peaks", "100:1:1", "-format", "csv"}, &stdout, &stderr))
	require.Error(t, run([]string{"-in", "/nonexistent/spectrum.txt"}, &stdout, &stderr))
}
