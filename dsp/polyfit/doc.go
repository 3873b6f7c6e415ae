// Package polyfit fits least-squares polynomials to sampled data.
//
// Abscissae are mapped onto [-1, 1] before the Vandermonde system is
// built, which keeps the sixth-order fits used by IModPoly well
// conditioned on spectra of a few thousand pixels. The system is solved
// with a QR factorisation from gonum.
package polyfit
