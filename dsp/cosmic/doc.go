// Package cosmic removes cosmic-ray spikes from Raman spectra.
//
// Cosmic rays hit the detector as one- or two-pixel spikes far narrower
// than any Raman band. Baseline estimation assumes they are gone, so
// spectra pass through [FilterSingle] or, for repeated accumulations of the
// same sample, [FilterMulti] first.
//
// Both filters flag spike pixels, widen the flags by a structuring width
// and replace flagged pixels by linear interpolation between the nearest
// clean neighbours.
package cosmic
