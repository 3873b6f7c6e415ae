package baseline

import (
	"math"

	"github.com/mr-sheg/orpl/dsp/core"
)

// assembler smooths the steps that appear where the bubble width changes
// abruptly between neighbouring pixels.
type assembler struct {
	ratio     float64
	maxRadius int
	envelope  []float64
}

// blend rewrites base around every seam of widths. Blended values are the
// moving average of the unblended envelope, clamped to spectrum. The
// first and last pixel are never touched.
func (a *assembler) blend(spectrum, base []float64, widths []int) int {
	cuts := seams(widths, a.ratio)
	if len(cuts) == 0 {
		return 0
	}

	n := len(base)
	a.envelope = core.EnsureLen(a.envelope, n)
	copy(a.envelope, base)

	for _, k := range cuts {
		t := a.radius(widths[k-1], widths[k])
		for j := max(1, k-t); j < min(n-1, k+t); j++ {
			lo, hi := max(0, j-t), min(n-1, j+t)

			var sum float64
			for m := lo; m <= hi; m++ {
				sum += a.envelope[m]
			}

			mean := sum / float64(hi-lo+1)
			base[j] = math.Min(mean, spectrum[j])
		}
	}

	return len(cuts)
}

func (a *assembler) radius(left, right int) int {
	t := max(1, min(left, right)/2)
	if a.maxRadius > 0 {
		t = min(t, a.maxRadius)
	}

	return t
}
