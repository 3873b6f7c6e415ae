// Package conv applies finite smoothing and differentiation kernels to
// spectra.
//
// Two strategies are available:
//
//   - [Direct]: O(N*M) time-domain convolution, used for short kernels
//   - [OverlapAdd]: FFT block convolution, used for long kernels
//
// [Convolve] picks between them by kernel length and [ConvolveMode]
// trims the full result to the shape the caller needs. Savitzky–Golay
// smoothing of the recursive baseline uses [ModeSame]:
//
//	smoothed, err := conv.ConvolveMode(spectrum, kernel, conv.ModeSame)
package conv
