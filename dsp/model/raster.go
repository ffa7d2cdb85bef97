package model

import "fmt"

// Raster builds an ascending m/z grid covering all peaks plus 5 times the
// widest FWHM on either side. The step grows linearly with m/z from
// minFWHM/pointsPerFWHM at the low end to maxFWHM/pointsPerFWHM at the
// high end. The grid never holds more points than the span divided by the
// smallest step.
func Raster(peaks []Peak, pointsPerFWHM int) ([]float64, error) {
	if err := checkPeaks(peaks); err != nil {
		return nil, err
	}
	if pointsPerFWHM < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPoints, pointsPerFWHM)
	}

	minX, maxX := peaks[0].MZ, peaks[0].MZ
	minFWHM, maxFWHM := peaks[0].FWHM, peaks[0].FWHM
	for _, p := range peaks[1:] {
		minX = min(minX, p.MZ)
		maxX = max(maxX, p.MZ)
		minFWHM = min(minFWHM, p.FWHM)
		maxFWHM = max(maxFWHM, p.FWHM)
	}
	minX -= 5 * maxFWHM
	maxX += 5 * maxFWHM

	points := float64(pointsPerFWHM)
	minStep := minFWHM / points
	maxStep := maxFWHM / points
	size := int((maxX - minX) / minStep)

	// step(x) = a*x + b with step(minX) = minStep and step(maxX) = maxStep.
	a := (maxStep - minStep) / (maxX - minX)
	b := minStep - a*minX

	raster := make([]float64, 0, size)
	for x := minX; x < maxX && len(raster) < size; x += a*x + b {
		raster = append(raster, x)
	}
	return raster, nil
}
