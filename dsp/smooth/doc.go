// Package smooth implements intensity smoothing for signals.
//
// Kernels:
//
//   - [MovingAverage]: flat window
//   - [Gaussian]: Gaussian-weighted window
//   - [SavitzkyGolay]: least-squares polynomial fit per window
//
// Window sizes are given in points. [Smooth] converts an m/z window into
// points for the signal at hand and dispatches on a [Method].
//
// The x column is never changed. Moving-average and Gaussian smoothing
// mirror the signal at both ends; Savitzky-Golay extends it with copies of
// the first and last intensity.
package smooth
