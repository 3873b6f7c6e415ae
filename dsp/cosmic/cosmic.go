package cosmic

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/mr-sheg/orpl/dsp/core"
	"github.com/mr-sheg/orpl/dsp/interp"
)

var (
	ErrEmpty          = errors.New("cosmic: empty signal")
	ErrWidth          = errors.New("cosmic: width must be > 0")
	ErrLengthMismatch = errors.New("cosmic: accumulations differ in length")
	ErrDegenerate     = errors.New("cosmic: accumulation sums to zero")
)

// Default filter settings.
const (
	DefaultWidth     = 3
	DefaultStdFactor = 5
	DefaultDisparity = 0.1
)

// DetectSingle flags pixels whose squared second difference exceeds the
// mean plus stdFactor standard deviations of all squared second
// differences. The first and last pixel are never flagged.
func DetectSingle(signal []float64, stdFactor float64) []bool {
	flags := make([]bool, len(signal))
	if len(signal) < 3 {
		return flags
	}

	lo, _, hi, _ := core.MinMax(signal)
	scale := hi - lo
	if scale == 0 {
		return flags
	}

	diff2 := make([]float64, len(signal)-2)
	for i := range diff2 {
		d := (signal[i+2] - 2*signal[i+1] + signal[i]) / scale
		diff2[i] = d * d
	}

	mean, std := stat.PopMeanStdDev(diff2, nil)
	threshold := mean + stdFactor*std
	for i, d := range diff2 {
		flags[i+1] = d > threshold
	}
	return flags
}

// FilterSingle removes cosmic rays from a single accumulation. Smaller
// stdFactor values make the detector more sensitive.
func FilterSingle(signal []float64, width int, stdFactor float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmpty
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrWidth, width)
	}

	flags := Dilate(DetectSingle(signal, stdFactor), width)
	return interp.FillMasked(signal, flags)
}

// FilterMulti removes cosmic rays from repeated accumulations of the same
// sample. Each accumulation is compared, after normalising to unit sum,
// with the normalised mean of all accumulations; pixels deviating by more
// than disparity times the peak of the normalised mean are repaired.
func FilterMulti(accumulations [][]float64, width int, disparity float64) ([][]float64, error) {
	if len(accumulations) == 0 || len(accumulations[0]) == 0 {
		return nil, ErrEmpty
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrWidth, width)
	}

	n := len(accumulations[0])
	mean := make([]float64, n)
	for k, acc := range accumulations {
		if len(acc) != n {
			return nil, fmt.Errorf("%w: accumulation %d has %d pixels, want %d", ErrLengthMismatch, k, len(acc), n)
		}
		for i, v := range acc {
			mean[i] += v / float64(len(accumulations))
		}
	}

	meanSum := sum(mean)
	if meanSum == 0 {
		return nil, fmt.Errorf("%w: mean spectrum", ErrDegenerate)
	}
	peak := 0.0
	for i := range mean {
		mean[i] /= meanSum
		peak = max(peak, mean[i])
	}

	out := make([][]float64, len(accumulations))
	for k, acc := range accumulations {
		accSum := sum(acc)
		if accSum == 0 {
			return nil, fmt.Errorf("%w: accumulation %d", ErrDegenerate, k)
		}

		flags := make([]bool, n)
		flagged := false
		for i, v := range acc {
			d := v/accSum - mean[i]
			if d < 0 {
				d = -d
			}
			if d/peak > disparity {
				flags[i] = true
				flagged = true
			}
		}

		if !flagged {
			out[k] = core.Clone(acc)
			continue
		}

		repaired, err := interp.FillMasked(acc, Dilate(flags, width))
		if err != nil {
			return nil, err
		}
		out[k] = repaired
	}
	return out, nil
}

// Dilate widens every flagged run to cover width pixels per flag: a flag
// at i sets [i-width/2, i+(width-1)/2].
func Dilate(flags []bool, width int) []bool {
	out := make([]bool, len(flags))
	left, right := width/2, (width-1)/2
	for i, f := range flags {
		if !f {
			continue
		}
		for j := max(0, i-left); j <= min(len(flags)-1, i+right); j++ {
			out[j] = true
		}
	}
	return out
}

func sum(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v
	}
	return s
}
