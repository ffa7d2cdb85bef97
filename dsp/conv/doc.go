// Package conv provides linear convolution for the smoothing kernels.
//
// Two strategies are available:
//
//   - Direct convolution: O(N*M) accumulation, best for short kernels
//   - Overlap-add: FFT-based block convolution for long kernels
//
// [Convolve] picks between them by kernel length; [ConvolveMode] trims the
// full result to the same or valid region. Smoothing pads the intensity
// column by mirroring before calling it with [ModeValid], so the output
// lines up point for point with the input.
//
//	full, err := conv.Convolve(y, kernel)
//	smoothed, err := conv.ConvolveMode(padded, kernel, conv.ModeValid)
//
// For repeated convolution with the same kernel, create an [OverlapAdd]
// once and call [OverlapAdd.Process] per signal.
package conv
