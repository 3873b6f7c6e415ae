// Package quality scores baseline-corrected Raman spectra.
//
// [ASSI] gives a single bounded figure of merit for a spectrum; [SNR]
// gives a per-pixel signal-to-noise estimate for repeated accumulations
// with a shot-noise model.
package quality
