package baseline

import (
	"fmt"
	"math"
)

// Erode returns the flat morphological erosion of signal: each output
// sample is the minimum over [i-halfWidths[i], i+halfWidths[i]], clipped
// to the signal.
func Erode(signal []float64, halfWidths []int) ([]float64, error) {
	if err := checkMorph(signal, halfWidths); err != nil {
		return nil, err
	}

	return slide(signal, halfWidths, math.Min), nil
}

// Dilate returns the flat morphological dilation of signal, the windowed
// maximum counterpart of [Erode].
func Dilate(signal []float64, halfWidths []int) ([]float64, error) {
	if err := checkMorph(signal, halfWidths); err != nil {
		return nil, err
	}

	return slide(signal, halfWidths, math.Max), nil
}

// Open returns the morphological opening, a dilation of the erosion.
func Open(signal []float64, halfWidths []int) ([]float64, error) {
	if err := checkMorph(signal, halfWidths); err != nil {
		return nil, err
	}

	return open(signal, halfWidths), nil
}

// BOpen returns the b-opening of signal: the pointwise minimum of the
// opening and the mean of its dilation and erosion. It follows the
// baseline more closely than a plain opening between bands.
func BOpen(signal []float64, halfWidths []int) ([]float64, error) {
	if err := checkMorph(signal, halfWidths); err != nil {
		return nil, err
	}

	opened := open(signal, halfWidths)
	up := slide(opened, halfWidths, math.Max)
	down := slide(opened, halfWidths, math.Min)

	out := make([]float64, len(signal))
	for i := range out {
		out[i] = math.Min((up[i]+down[i])/2, opened[i])
	}

	return out, nil
}

// MorphBR splits spectrum into its Raman and baseline components with a
// b-opening of constant half-width.
func MorphBR(spectrum []float64, halfWidth int) (raman, base []float64, err error) {
	if err := validateSamples(spectrum); err != nil {
		return nil, nil, err
	}

	if halfWidth < 1 {
		return nil, nil, fmt.Errorf("%w: half-width must be >= 1: %d", ErrInvalidInput, halfWidth)
	}

	hws := make([]int, len(spectrum))
	for i := range hws {
		hws[i] = halfWidth
	}

	base, err = BOpen(spectrum, hws)
	if err != nil {
		return nil, nil, err
	}

	raman = Result{Baseline: base}.Residual(spectrum)

	return raman, base, nil
}

func checkMorph(signal []float64, halfWidths []int) error {
	if len(signal) == 0 {
		return fmt.Errorf("%w: empty signal", ErrInvalidInput)
	}

	if len(halfWidths) != len(signal) {
		return fmt.Errorf("%w: %d half-widths for %d samples", ErrInvalidInput, len(halfWidths), len(signal))
	}

	for i, h := range halfWidths {
		if h < 0 {
			return fmt.Errorf("%w: negative half-width %d at %d", ErrInvalidWindowSpec, h, i)
		}
	}

	return nil
}

func open(signal []float64, halfWidths []int) []float64 {
	return slide(slide(signal, halfWidths, math.Min), halfWidths, math.Max)
}

// slide reduces each clipped window of signal with pick.
func slide(signal []float64, halfWidths []int, pick func(a, b float64) float64) []float64 {
	n := len(signal)
	out := make([]float64, n)

	for i, h := range halfWidths {
		lo, hi := max(0, i-h), min(n-1, i+h)
		v := signal[lo]
		for j := lo + 1; j <= hi; j++ {
			v = pick(v, signal[j])
		}

		out[i] = v
	}

	return out
}
