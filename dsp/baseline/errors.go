package baseline

import "errors"

var (
	// ErrInvalidInput reports an empty or non-finite spectrum, a mismatched
	// axis, or a configuration value out of range.
	ErrInvalidInput = errors.New("baseline: invalid input")

	// ErrInvalidWindowSpec reports a width override outside the spectrum,
	// with an empty range, or with a non-positive width.
	ErrInvalidWindowSpec = errors.New("baseline: invalid window spec")

	// ErrNonConvergence is the warning carried by Result.Warning when the
	// iteration cap was reached. The baseline is still usable.
	ErrNonConvergence = errors.New("baseline: iteration cap reached before convergence")
)
