package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-ms/dsp/signal"
)

func writeXY(w io.Writer, s signal.Signal) error {
	bw := make([]byte, 0, 64)
	for i := range s.Len() {
		bw = bw[:0]
		bw = strconv.AppendFloat(bw, s.X(i), 'g', -1, 64)
		bw = append(bw, '\t')
		bw = strconv.AppendFloat(bw, s.Y(i), 'g', -1, 64)
		bw = append(bw, '\n')
		if _, err := w.Write(bw); err != nil {
			return err
		}
	}
	return nil
}

type maximum struct {
	x, y            float64
	centroid, width float64
}

func writeSummary(w io.Writer, s signal.Signal, top int) error {
	box, err := signal.BoxOf(s)
	if err != nil {
		return err
	}
	noise := signal.Noise(s)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		key string
		val string
	}{
		{"points", strconv.Itoa(s.Len())},
		{"m/z range", fmt.Sprintf("%.4f - %.4f", box.MinX, box.MaxX)},
		{"intensity range", fmt.Sprintf("%.4f - %.4f", box.MinY, box.MaxY)},
		{"noise level", fmt.Sprintf("%.4f", noise.Level)},
		{"noise width", fmt.Sprintf("%.4f", noise.Width)},
		{"area", fmt.Sprintf("%.4f", signal.Area(s))},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.key, r.val); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	maxima := topMaxima(s, top)
	if len(maxima) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(tw, "\nm/z\tIntensity\tCentroid\tFWHM\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "---\t---------\t--------\t----\n"); err != nil {
		return err
	}
	for _, m := range maxima {
		if _, err := fmt.Fprintf(tw, "%.4f\t%.4f\t%.4f\t%.4f\n", m.x, m.y, m.centroid, m.width); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// topMaxima returns the n most intense local maxima above the noise,
// measured at half height.
func topMaxima(s signal.Signal, n int) []maximum {
	noise := signal.Noise(s)
	peaks := signal.LocalMaxima(s)

	var out []maximum
	for i := range peaks.Len() {
		x, y := peaks.X(i), peaks.Y(i)
		if y <= noise.Level+noise.Width {
			continue
		}
		half := noise.Level + (y-noise.Level)/2
		c, err := signal.Centroid(s, x, half)
		if err != nil {
			c = x
		}
		fwhm, err := signal.Width(s, x, half)
		if err != nil {
			fwhm = 0
		}
		out = append(out, maximum{x: x, y: y, centroid: c, width: fwhm})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].y > out[j].y })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
