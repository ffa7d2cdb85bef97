// Package model synthesises profile spectra from peak lists.
//
// A [Peak] is an (m/z, intensity, FWHM) triple. Three line shapes are
// supported, selected by [Shape]:
//
//   - Gaussian: exp(-(x-c)^2 / (fwhm/1.66)^2), modelled over c ± 5 fwhm
//   - Lorentzian: 1 / (1 + (x-c)^2 / (fwhm/2)^2), modelled over c ± 10 fwhm
//   - Gauss-Lorentzian: Gaussian left of the centre, Lorentzian from the
//     centre on, modelled over c - 5 fwhm to c + 10 fwhm
//
// [Gaussian], [Lorentzian] and [GaussLorentzian] sample a single shape on a
// uniform grid. [Raster] builds an adaptive grid whose step grows with m/z
// from the narrowest to the widest peak's FWHM, and a [Generator] sums
// peak shapes onto such a grid with optional seeded uniform noise.
package model
