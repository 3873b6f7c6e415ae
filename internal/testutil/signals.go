package testutil

import (
	"math"
	"math/rand"
)

// Gaussian returns a peak of the given height and full width at half
// maximum centred at center, sampled on pixels 0..length-1.
func Gaussian(length int, center, height, fwhm float64) []float64 {
	out := make([]float64, length)
	sigma := fwhm / (2 * math.Sqrt(2*math.Ln2))
	for i := range out {
		d := float64(i) - center
		out[i] = height * math.Exp(-d*d/(2*sigma*sigma))
	}
	return out
}

// Ramp returns offset + slope*i for i in [0, length).
func Ramp(length int, offset, slope float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = offset + slope*float64(i)
	}
	return out
}

// Sigmoid returns a logistic step from low to high centred at center with
// the given spread in pixels.
func Sigmoid(length int, low, high, center, spread float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = low + (high-low)/(1+math.Exp(-(float64(i)-center)/spread))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Sum adds the given signals element-wise. All signals must share the
// length of the first one.
func Sum(signals ...[]float64) []float64 {
	if len(signals) == 0 {
		return nil
	}
	out := make([]float64, len(signals[0]))
	for _, s := range signals {
		for i := range out {
			out[i] += s[i]
		}
	}
	return out
}
