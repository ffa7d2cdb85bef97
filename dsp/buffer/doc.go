// Package buffer provides the flat, shape-aware numeric buffer that every
// algorithm in this module reads and writes.
//
// A [Buffer] owns a single []T holding Len rows of Cell values each, in
// row-major order. Spectral signals are Buffer[float64] with Cell 2 (x, y),
// peak lists use Cell 3 (m/z, intensity, fwhm) and composition results are
// Buffer[int] with one column per element.
//
// Row, At and Set validate indices only when the module is built with the
// msdebug tag; release builds rely on the slice bounds checks of the Go
// runtime.
package buffer
