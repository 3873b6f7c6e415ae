package baseline

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/mr-sheg/orpl/dsp/polyfit"
)

// PolyConfig holds the parameters of [IModPoly] and [ModPoly].
type PolyConfig struct {
	// Order is the order of the fitted baseline polynomial.
	Order int
	// Precision stops the iteration once the relative change of the
	// residual standard deviation falls below it.
	Precision float64
	// MaxIterations bounds the number of fits.
	MaxIterations int
}

// PolyOption mutates a PolyConfig.
type PolyOption func(*PolyConfig)

// DefaultPolyConfig returns order 6, precision 0.005 and at most 1000
// fits.
func DefaultPolyConfig() PolyConfig {
	return PolyConfig{
		Order:         6,
		Precision:     0.005,
		MaxIterations: 1000,
	}
}

// WithPolyOrder sets the polynomial order.
func WithPolyOrder(order int) PolyOption {
	return func(cfg *PolyConfig) {
		if order >= 0 {
			cfg.Order = order
		}
	}
}

// WithPrecision sets the convergence threshold.
func WithPrecision(precision float64) PolyOption {
	return func(cfg *PolyConfig) {
		if precision > 0 {
			cfg.Precision = precision
		}
	}
}

// WithPolyMaxIterations sets the fit limit.
func WithPolyMaxIterations(n int) PolyOption {
	return func(cfg *PolyConfig) {
		if n > 0 {
			cfg.MaxIterations = n
		}
	}
}

// ApplyPolyOptions applies zero or more options to the default config.
func ApplyPolyOptions(opts ...PolyOption) PolyConfig {
	cfg := DefaultPolyConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// IModPoly splits spectrum into its Raman and baseline components with the
// improved modified polynomial fit: samples above the fit plus one
// residual standard deviation are clipped to it and the fit is repeated.
func IModPoly(spectrum []float64, opts ...PolyOption) (raman, base []float64, err error) {
	return modPoly(spectrum, true, ApplyPolyOptions(opts...))
}

// ModPoly is [IModPoly] clipping at the fit itself.
func ModPoly(spectrum []float64, opts ...PolyOption) (raman, base []float64, err error) {
	return modPoly(spectrum, false, ApplyPolyOptions(opts...))
}

func modPoly(spectrum []float64, improved bool, cfg PolyConfig) (raman, base []float64, err error) {
	if err := validateSamples(spectrum); err != nil {
		return nil, nil, err
	}

	n := len(spectrum)
	if n <= cfg.Order {
		return nil, nil, fmt.Errorf("%w: %d samples for order %d", ErrInvalidInput, n, cfg.Order)
	}

	data := append([]float64(nil), spectrum...)
	residual := make([]float64, n)

	var std float64
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		fit, err := polyfit.FitIndex(data, cfg.Order)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		base = fit.EvalIndex(n)
		for i := range data {
			residual[i] = data[i] - base[i]
		}

		prev := std
		_, std = stat.PopMeanStdDev(residual, nil)

		limit := 0.0
		if improved {
			limit = std
		}

		for i := range data {
			if data[i] > base[i]+limit {
				data[i] = base[i] + limit
			}
		}

		if std == 0 || math.Abs((std-prev)/std) < cfg.Precision {
			break
		}
	}

	raman = Result{Baseline: base}.Residual(spectrum)

	return raman, base, nil
}
