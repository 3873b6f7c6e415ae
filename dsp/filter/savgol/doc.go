// Package savgol implements Savitzky–Golay smoothing.
//
// Each output sample is the value at the window centre of the
// least-squares polynomial fitted to the surrounding window. Interior
// samples are produced by convolving with the precomputed [Coefficients];
// the first and last half-windows are evaluated from a polynomial fitted
// to the first and last full window, so polynomials up to the filter
// order pass through unchanged everywhere.
package savgol
