// Package interp provides piecewise-linear resampling of sampled spectra.
//
//   - [Linear2]:    2-point linear interpolation
//   - [Piecewise]:  resample (xp, fp) onto arbitrary query points, holding
//     the end values outside the sampled range
//   - [FillMasked]: replace flagged samples by interpolating their
//     unflagged neighbours
package interp
