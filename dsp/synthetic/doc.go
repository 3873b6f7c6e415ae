// Package synthetic builds reproducible Raman test spectra from Gaussian
// bands, a polynomial background and seeded Gaussian noise, for
// benchmarking baseline removal where the true baseline is known.
package synthetic
