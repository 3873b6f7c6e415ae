package baseline

import (
	"errors"
	"fmt"
	"math"

	"github.com/mr-sheg/orpl/dsp/core"
	"github.com/mr-sheg/orpl/dsp/filter/savgol"
	"github.com/mr-sheg/orpl/dsp/polyfit"
)

const (
	smoothOrder    = 3
	minSmoothWidth = 10
)

// Recursive splits spectrum into its Raman and baseline components with
// the recursive circular-bubble fill.
//
// The spectrum is detrended with a polynomial of order FitOrder, shifted
// to zero and scaled to a square aspect ratio. A circular bubble is grown
// under the whole spectrum; where it touches, the range is split and new
// bubbles are grown in both parts until a range is narrower than its
// minimum width. Ranges touching an end use half bubbles anchored at that
// end. The upper envelope of all bubbles is scaled back, retrended and
// smoothed with a cubic Savitzky–Golay filter.
//
// MinWidth and Overrides set the minimum width; the width at the middle
// of a range applies to that range.
func Recursive(spectrum []float64, opts ...Option) (raman, base []float64, err error) {
	if err := validateSamples(spectrum); err != nil {
		return nil, nil, err
	}

	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	n := len(spectrum)
	widths, err := Schedule(n, cfg.MinWidth, cfg.Overrides)
	if err != nil {
		return nil, nil, err
	}

	order := min(cfg.FitOrder, n-1)
	fit, err := polyfit.FitIndex(spectrum, order)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: detrend: %w", ErrInvalidInput, err)
	}

	trend := fit.EvalIndex(n)
	flat := make([]float64, n)
	for i, v := range spectrum {
		flat[i] = v - trend[i]
	}

	lo, _, hi, _ := core.MinMax(flat)
	scale := (hi - lo) / float64(n)
	if scale == 0 {
		scale = 1
	}

	for i := range flat {
		flat[i] = (flat[i] - lo) / scale
	}

	env := make([]float64, n)
	fillRanges(flat, env, widths)

	base = make([]float64, n)
	for i := range base {
		base[i] = env[i]*scale + trend[i] + lo
	}

	base, err = smooth(base, widths)
	if err != nil {
		return nil, nil, err
	}

	raman = Result{Baseline: base}.Residual(spectrum)

	return raman, base, nil
}

type span struct{ lo, hi int }

// fillRanges raises env to the envelope of the bubbles grown under s.
func fillRanges(s, env []float64, widths []int) {
	n := len(s)
	queue := []span{{0, n}}

	for k := 0; k < len(queue); k++ {
		r := queue[k]
		if r.lo == r.hi {
			continue
		}

		var align alignment
		switch {
		case r.lo == 0 && r.hi != n:
			align = alignLeft
		case r.lo != 0 && r.hi == n:
			align = alignRight
		default:
			if r.hi-r.lo < widths[(r.lo+r.hi)/2] {
				continue
			}

			align = alignCenter
		}

		touch := growArc(s[r.lo:r.hi], env[r.lo:r.hi], align) + r.lo
		if touch == r.lo {
			queue = append(queue, span{touch + 1, r.hi})
		} else {
			queue = append(queue, span{r.lo, touch}, span{touch, r.hi})
		}
	}
}

type alignment int

const (
	alignCenter alignment = iota
	alignLeft
	alignRight
)

// growArc raises a circular arc under seg until it touches, keeps the
// larger of env and the arc and returns the touching index.
func growArc(seg, env []float64, align alignment) int {
	m := float64(len(seg))

	width, middle := m, m/2
	switch align {
	case alignLeft:
		width, middle = 2*m, 0
	case alignRight:
		width, middle = 2*m, m
	}

	radius2 := (width / 2) * (width / 2)
	arc := func(i int) float64 {
		d := float64(i) - middle
		return math.Sqrt(math.Max(radius2-d*d, 0)) - width
	}

	touch, gap := 0, math.Inf(1)
	for i, v := range seg {
		if d := v - arc(i); d < gap {
			touch, gap = i, d
		}
	}

	for i := range env {
		env[i] = math.Max(env[i], arc(i)+gap)
	}

	return touch
}

// smooth applies the cubic Savitzky–Golay filter whose window follows the
// smallest bubble width. Spectra shorter than the smallest usable window
// are returned unchanged.
func smooth(base []float64, widths []int) ([]float64, error) {
	narrow := widths[0]
	for _, w := range widths[1:] {
		narrow = min(narrow, w)
	}

	window := 2*(max(narrow, minSmoothWidth)/4) + 3
	if window > len(base) {
		window = len(base) - (1 - len(base)%2)
	}

	if window <= smoothOrder+1 {
		return base, nil
	}

	out, err := savgol.Filter(base, window, smoothOrder)
	if errors.Is(err, savgol.ErrTooShort) {
		return base, nil
	}

	return out, err
}
