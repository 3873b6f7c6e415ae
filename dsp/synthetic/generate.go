package synthetic

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

var (
	ErrLength = errors.New("synthetic: length must be > 0")
	ErrPeak   = errors.New("synthetic: invalid peak")
)

// Peak is a Gaussian Raman band.
type Peak struct {
	Center float64 // pixel position
	Height float64
	FWHM   float64 // full width at half maximum, in pixels
}

// Components holds a synthetic spectrum and the parts it was built from.
// Spectrum = Baseline + Raman + Noise.
type Components struct {
	Spectrum []float64
	Raman    []float64
	Baseline []float64
	Noise    []float64
}

// Generator creates deterministic spectra of a fixed length.
type Generator struct {
	length int
	seed   int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the noise seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithLength sets the number of pixels.
func WithLength(length int) Option {
	return func(g *Generator) {
		if length > 0 {
			g.length = length
		}
	}
}

// NewGenerator creates a generator for 1000-pixel spectra with seed 1,
// adjusted by opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{length: 1000, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Length returns the number of pixels per spectrum.
func (g *Generator) Length() int {
	return g.length
}

// Raman sums the given Gaussian bands.
func (g *Generator) Raman(peaks ...Peak) ([]float64, error) {
	out := make([]float64, g.length)
	for k, p := range peaks {
		if p.FWHM <= 0 || math.IsNaN(p.Center) || math.IsNaN(p.Height) {
			return nil, fmt.Errorf("%w: peak %d %+v", ErrPeak, k, p)
		}
		sigma := p.FWHM / (2 * math.Sqrt(2*math.Ln2))
		for i := range out {
			d := float64(i) - p.Center
			out[i] += p.Height * math.Exp(-d*d/(2*sigma*sigma))
		}
	}
	return out, nil
}

// Baseline evaluates the polynomial sum(coeffs[k] * i^k) on every pixel.
func (g *Generator) Baseline(coeffs ...float64) []float64 {
	out := make([]float64, g.length)
	for i := range out {
		x := float64(i)
		var y float64
		for k := len(coeffs) - 1; k >= 0; k-- {
			y = y*x + coeffs[k]
		}
		out[i] = y
	}
	return out
}

// Noise returns zero-mean Gaussian noise with the given standard deviation.
func (g *Generator) Noise(std float64) []float64 {
	out := make([]float64, g.length)
	if std <= 0 {
		return out
	}
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = rng.NormFloat64() * std
	}
	return out
}

// Spectrum composes a spectrum whose baseline is normalised to [0, 1],
// whose Raman part peaks at ratio, and whose noise has standard deviation
// noiseStd. The whole set is then scaled so the spectrum peaks at 1.
func (g *Generator) Spectrum(peaks []Peak, baselineCoeffs []float64, ratio, noiseStd float64) (Components, error) {
	if g.length <= 0 {
		return Components{}, ErrLength
	}

	raman, err := g.Raman(peaks...)
	if err != nil {
		return Components{}, err
	}
	if _, _, top := extent(raman); top > 0 {
		for i := range raman {
			raman[i] *= ratio / top
		}
	}

	baseline := g.Baseline(baselineCoeffs...)
	rescale(baseline, 0, 1)

	noise := g.Noise(noiseStd)

	spectrum := make([]float64, g.length)
	peak := math.Inf(-1)
	for i := range spectrum {
		spectrum[i] = baseline[i] + raman[i] + noise[i]
		peak = max(peak, spectrum[i])
	}

	if peak > 0 {
		for _, s := range [][]float64{spectrum, raman, baseline, noise} {
			for i := range s {
				s[i] /= peak
			}
		}
	}

	return Components{Spectrum: spectrum, Raman: raman, Baseline: baseline, Noise: noise}, nil
}

// rescale maps x linearly so that its minimum is lo and its maximum hi.
// Constant input is shifted to lo.
func rescale(x []float64, lo, hi float64) {
	minVal, span, _ := extent(x)
	for i, v := range x {
		if span == 0 {
			x[i] = lo
			continue
		}
		x[i] = lo + (v-minVal)/span*(hi-lo)
	}
}

func extent(x []float64) (minVal, span, maxVal float64) {
	if len(x) == 0 {
		return 0, 0, 0
	}
	minVal, maxVal = x[0], x[0]
	for _, v := range x {
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}
	return minVal, maxVal - minVal, maxVal
}
