package quality

import (
	"errors"
	"fmt"
	"math"

	"github.com/mr-sheg/orpl/dsp/normalize"
)

var (
	ErrEmpty          = errors.New("quality: empty input")
	ErrLengthMismatch = errors.New("quality: shape mismatch")
)

// ASSI returns the average signed squared intensity of a Raman spectrum
// after SNV normalisation. Spectra dominated by positive bands score
// close to 1; residual baselines and negative lobes pull the score down.
// A constant spectrum scores 0.
func ASSI(raman []float64) (float64, error) {
	if len(raman) == 0 {
		return 0, ErrEmpty
	}

	z, err := normalize.SNV(raman)
	if errors.Is(err, normalize.ErrDegenerate) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var acc float64
	for _, v := range z {
		acc += math.Copysign(v*v, v)
	}
	return acc / float64(len(z)), nil
}

// SNR returns the per-pixel Raman signal-to-noise ratio of repeated
// accumulations: sqrt(N*exposure*power) * R / sqrt(R + B), where R and B
// are the accumulation-averaged Raman and baseline intensities and N the
// number of accumulations. Pixels with R + B <= 0 score 0.
func SNR(raman, baseline [][]float64, exposure, power float64) ([]float64, error) {
	if len(raman) == 0 || len(raman[0]) == 0 {
		return nil, ErrEmpty
	}
	if len(baseline) != len(raman) {
		return nil, fmt.Errorf("%w: %d Raman and %d baseline accumulations", ErrLengthMismatch, len(raman), len(baseline))
	}

	n := len(raman[0])
	avgR := make([]float64, n)
	avgB := make([]float64, n)
	count := float64(len(raman))
	for k := range raman {
		if len(raman[k]) != n || len(baseline[k]) != n {
			return nil, fmt.Errorf("%w: accumulation %d", ErrLengthMismatch, k)
		}
		for i := 0; i < n; i++ {
			avgR[i] += raman[k][i] / count
			avgB[i] += baseline[k][i] / count
		}
	}

	gain := math.Sqrt(count * exposure * power)
	out := make([]float64, n)
	for i := range out {
		total := avgR[i] + avgB[i]
		if total <= 0 {
			continue
		}
		out[i] = gain * avgR[i] / math.Sqrt(total)
	}
	return out, nil
}
