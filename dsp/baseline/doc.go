// Package baseline estimates the slowly varying background under a signal.
//
// [Estimate] lays a raster over the m/z axis, computes a robust noise level
// and width in a relative window around every raster point, smooths both
// curves and lowers the level by a multiple of the width. The resulting
// [Baseline] converts to a signal for [signal.SubtractBaseline].
package baseline
