package normalize

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"

	"github.com/mr-sheg/orpl/dsp/core"
)

var (
	ErrEmpty      = errors.New("normalize: empty signal")
	ErrDegenerate = errors.New("normalize: degenerate signal")
	ErrBandIndex  = errors.New("normalize: band index out of range")
)

// MinMax shifts signal to a minimum of 0 and scales it to a maximum of 1.
func MinMax(signal []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmpty
	}
	lo, _, hi, _ := core.MinMax(signal)
	if hi == lo {
		return nil, fmt.Errorf("%w: constant signal", ErrDegenerate)
	}
	return shiftScale(signal, lo, 1/(hi-lo)), nil
}

// MaxBand shifts signal to a minimum of 0 and scales it so that the
// sample at bandIndex equals 1.
func MaxBand(signal []float64, bandIndex int) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmpty
	}
	if bandIndex < 0 || bandIndex >= len(signal) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrBandIndex, bandIndex, len(signal))
	}
	lo, _, _, _ := core.MinMax(signal)
	ref := signal[bandIndex] - lo
	if ref == 0 {
		return nil, fmt.Errorf("%w: band %d sits at the signal minimum", ErrDegenerate, bandIndex)
	}
	return shiftScale(signal, lo, 1/ref), nil
}

// SNV centres signal on its mean and divides by its population standard
// deviation.
func SNV(signal []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmpty
	}
	mean, std := stat.PopMeanStdDev(signal, nil)
	if std == 0 {
		return nil, fmt.Errorf("%w: zero standard deviation", ErrDegenerate)
	}
	return shiftScale(signal, mean, 1/std), nil
}

// AUC shifts signal to a minimum of 0 and scales it to a unit sum.
func AUC(signal []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmpty
	}
	lo, _, _, _ := core.MinMax(signal)
	out := make([]float64, len(signal))
	for i, v := range signal {
		out[i] = v - lo
	}
	area := vecmath.Sum(out)
	if area == 0 {
		return nil, fmt.Errorf("%w: zero area", ErrDegenerate)
	}
	vecmath.ScaleBlockInPlace(out, 1/area)
	return out, nil
}

func shiftScale(signal []float64, offset, scale float64) []float64 {
	out := make([]float64, len(signal))
	for i, v := range signal {
		out[i] = v - offset
	}
	vecmath.ScaleBlockInPlace(out, scale)
	return out
}
