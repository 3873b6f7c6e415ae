// Package normalize rescales baseline-corrected Raman spectra for
// comparison and export.
//
//   - [MinMax]:  min 0, max 1
//   - [MaxBand]: min 0, a chosen band at 1
//   - [SNV]:     standard normal variate, mean 0 and standard deviation 1
//   - [AUC]:     min 0, unit area
//
// All functions return a new slice and leave the input untouched.
package normalize
