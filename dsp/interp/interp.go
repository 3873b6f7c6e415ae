package interp

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmpty is returned when there are no sample points to interpolate.
	ErrEmpty = errors.New("interp: no sample points")
	// ErrLengthMismatch is returned when paired slices differ in length.
	ErrLengthMismatch = errors.New("interp: length mismatch")
)

// Linear2 interpolates between x0 and x1 at frac in [0,1].
func Linear2(frac, x0, x1 float64) float64 {
	return x0 + frac*(x1-x0)
}

// Piecewise evaluates the piecewise-linear function through (xp, fp) at
// each x. xp must be increasing. Queries left of xp[0] return fp[0] and
// queries right of the last point return the last value.
func Piecewise(x, xp, fp []float64) ([]float64, error) {
	if len(xp) == 0 {
		return nil, ErrEmpty
	}
	if len(xp) != len(fp) {
		return nil, fmt.Errorf("%w: %d sample positions, %d values", ErrLengthMismatch, len(xp), len(fp))
	}

	out := make([]float64, len(x))
	last := len(xp) - 1
	for i, q := range x {
		switch {
		case q <= xp[0]:
			out[i] = fp[0]
		case q >= xp[last]:
			out[i] = fp[last]
		default:
			// First index with xp[k] >= q; q lies in (xp[k-1], xp[k]].
			k := sort.SearchFloat64s(xp, q)
			if xp[k] == q {
				out[i] = fp[k]
				continue
			}
			frac := (q - xp[k-1]) / (xp[k] - xp[k-1])
			out[i] = Linear2(frac, fp[k-1], fp[k])
		}
	}
	return out, nil
}

// FillMasked returns a copy of signal in which every sample with mask[i]
// set is replaced by linear interpolation between the nearest unmasked
// samples on either side. Masked runs touching an end take the nearest
// unmasked value. If every sample is masked the signal is returned
// unchanged.
func FillMasked(signal []float64, mask []bool) ([]float64, error) {
	if len(signal) != len(mask) {
		return nil, fmt.Errorf("%w: %d samples, %d mask entries", ErrLengthMismatch, len(signal), len(mask))
	}

	out := make([]float64, len(signal))
	copy(out, signal)

	prev := -1
	for i := 0; i <= len(signal); i++ {
		if i < len(signal) && mask[i] {
			continue
		}
		// Fill the gap (prev, i).
		if i-prev > 1 {
			for j := prev + 1; j < i; j++ {
				switch {
				case prev < 0 && i == len(signal):
					// Nothing to anchor on.
				case prev < 0:
					out[j] = signal[i]
				case i == len(signal):
					out[j] = signal[prev]
				default:
					frac := float64(j-prev) / float64(i-prev)
					out[j] = Linear2(frac, signal[prev], signal[i])
				}
			}
		}
		prev = i
	}
	return out, nil
}
