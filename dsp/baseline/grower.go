package baseline

import (
	"math"

	"github.com/mr-sheg/orpl/dsp/core"
)

// grower raises flat-topped bubbles under a spectrum and advances the
// running baseline to their upper envelope. Its buffers are reused
// across spectra of any length.
type grower struct {
	half     []int
	residual []float64
	height   []float64
	lift     []float64
	eps      float64
}

// reset prepares the grower for a spectrum whose bubble half-widths are
// half. The slice is retained, not copied.
func (g *grower) reset(half []int, eps float64) {
	n := len(half)
	g.half = half
	g.eps = eps
	g.residual = core.EnsureLen(g.residual, n)
	g.height = core.EnsureLen(g.height, n)
	g.lift = core.EnsureLen(g.lift, n)
}

// init sets the running baseline to the global minimum of spectrum.
func (g *grower) init(spectrum, base []float64) {
	lo, _, _, _ := core.MinMax(spectrum)
	core.Fill(base, lo)
}

// pass runs one growth step and returns the largest lift applied.
func (g *grower) pass(spectrum, base []float64) float64 {
	r := g.residual
	for i, v := range spectrum {
		d := v - base[i]
		if d < g.eps {
			d = 0
		}

		r[i] = d
	}

	// Each bubble rises until it touches the residual inside its window.
	for i, h := range g.half {
		top := r[i]
		for j := i - h; j <= i+h; j++ {
			if r[j] < top {
				top = r[j]
			}
		}

		g.height[i] = top
	}

	// The lift of a pixel is the tallest bubble covering it.
	core.Zero(g.lift)

	for i, h := range g.half {
		top := g.height[i]
		if top == 0 {
			continue
		}

		for j := i - h; j <= i+h; j++ {
			if top > g.lift[j] {
				g.lift[j] = top
			}
		}
	}

	var delta float64
	for j, v := range spectrum {
		next := math.Min(base[j]+g.lift[j], v)
		if d := next - base[j]; d > delta {
			delta = d
		}

		base[j] = next
	}

	return delta
}
