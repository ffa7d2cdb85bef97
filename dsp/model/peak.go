package model

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ms/dsp/buffer"
)

// Errors returned by the modelling functions.
var (
	ErrPeakShape     = errors.New("model: peak buffer must have 3 columns")
	ErrInvalidFWHM   = errors.New("model: fwhm must be > 0")
	ErrInvalidPoints = errors.New("model: points must be > 0")
	ErrUnknownShape  = errors.New("model: unknown peak shape")
	ErrNoPeaks       = errors.New("model: peak list is empty")
	ErrEmptyRaster   = errors.New("model: raster is empty")
)

// Peak is a centroided peak.
type Peak struct {
	MZ        float64
	Intensity float64
	FWHM      float64
}

// PeaksFromBuffer reads a flat (m/z, intensity, fwhm) buffer.
func PeaksFromBuffer(b *buffer.Buffer[float64]) ([]Peak, error) {
	if b.Len() == 0 {
		return nil, nil
	}
	if b.Cell() != 3 {
		return nil, fmt.Errorf("%w: got %d", ErrPeakShape, b.Cell())
	}
	peaks := make([]Peak, b.Len())
	for i := range peaks {
		row := b.Row(i)
		peaks[i] = Peak{MZ: row[0], Intensity: row[1], FWHM: row[2]}
	}
	return peaks, nil
}

// PeakBuffer packs peaks into a 3-column buffer.
func PeakBuffer(peaks []Peak) *buffer.Buffer[float64] {
	b := buffer.New[float64](len(peaks), 3)
	for i, p := range peaks {
		row := b.Row(i)
		row[0], row[1], row[2] = p.MZ, p.Intensity, p.FWHM
	}
	return b
}

func checkPeaks(peaks []Peak) error {
	if len(peaks) == 0 {
		return ErrNoPeaks
	}
	for i, p := range peaks {
		if !(p.FWHM > 0) {
			return fmt.Errorf("%w: peak %d has fwhm %g", ErrInvalidFWHM, i, p.FWHM)
		}
	}
	return nil
}
