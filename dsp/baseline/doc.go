// Package baseline separates Raman bands from the slowly varying
// autofluorescence background of a spectrum.
//
// # BubbleFill
//
// [Estimate] grows flat-topped "bubbles" under the spectrum. Every pixel
// centres one bubble whose width comes from a default minimum width and
// optional per-range [Override] values. A bubble rises until it touches
// the residual (spectrum minus the current baseline) anywhere inside its
// window; the baseline then advances to the upper envelope of all
// bubbles. Passes repeat on the new residual until the envelope moves by
// less than Epsilon or MaxIterations passes have run.
//
// Because a bubble can never rise above the signal inside its window, the
// baseline stays below the spectrum everywhere and cannot follow any
// feature narrower than the local minimum width:
//
//	res, err := baseline.Estimate(spectrum,
//		baseline.WithMinWidth(40),
//		baseline.WithOverrides(baseline.Override{Start: 0, End: 120, Width: 8}),
//	)
//	raman := res.Residual(spectrum)
//
// The minimum width should exceed the widest Raman band of interest.
// Narrower widths let the baseline intrude further into bands.
//
// # Edges
//
// Bubble windows are truncated symmetrically at both ends of the
// spectrum, so the outermost pixels carry bubbles only a pixel or two
// wide and the baseline there follows the signal closely. The first and
// last pixel always equal the signal.
//
// # Seams
//
// Where neighbouring pixels use widths that differ by BlendRatio or more,
// the baseline is averaged over a short transition and clamped back under
// the signal, which hides the step between the two regimes.
//
// # Classic algorithms
//
// [Recursive] is the original recursive circular-bubble fill with
// polynomial detrending and Savitzky–Golay smoothing. [MorphBR] is the
// morphological b-opening of Perez-Pueyo et al. [IModPoly] and [ModPoly]
// are the iterative polynomial fits of Zhao et al. and Lieber et al.
//
// # Concurrency
//
// Functions in this package hold no shared state. An [Estimator] reuses
// its scratch buffers and must not be shared between goroutines;
// [EstimateBatch] runs many spectra in parallel.
package baseline
