package baseline

import (
	"fmt"
	"log/slog"
	"math"
)

const (
	// DefaultMinWidth is the default minimum bubble width in pixels.
	DefaultMinWidth = 50
	// DefaultMaxIterations caps the number of growth passes.
	DefaultMaxIterations = 100
	// DefaultEpsilon is the convergence and clamping tolerance.
	DefaultEpsilon = 1e-9
	// DefaultBlendRatio is the width ratio from which a seam is blended.
	DefaultBlendRatio = 2.0
	// DefaultMaxBlendRadius caps the half-length of a seam transition.
	DefaultMaxBlendRadius = 16
	// DefaultFitOrder is the detrending order of [Recursive].
	DefaultFitOrder = 1
)

// Config holds the parameters of a BubbleFill estimation.
type Config struct {
	// MinWidth is the bubble width used wherever no override applies.
	MinWidth int
	// Overrides set the width of pixel ranges; later entries win.
	Overrides []Override
	// MaxIterations bounds the number of growth passes.
	MaxIterations int
	// Epsilon is the smallest lift that still counts as progress. Residuals
	// below it are treated as zero.
	Epsilon float64
	// BlendRatio is the width ratio across neighbouring pixels from which
	// the seam is smoothed. Zero or negative disables blending.
	BlendRatio float64
	// MaxBlendRadius caps the half-length of a seam transition.
	MaxBlendRadius int
	// FitOrder is the order of the polynomial [Recursive] removes before
	// filling. Zero only removes the offset.
	FitOrder int
	// Logger receives per-pass debug records. Nil discards them.
	Logger *slog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default estimation parameters.
func DefaultConfig() Config {
	return Config{
		MinWidth:       DefaultMinWidth,
		MaxIterations:  DefaultMaxIterations,
		Epsilon:        DefaultEpsilon,
		BlendRatio:     DefaultBlendRatio,
		MaxBlendRadius: DefaultMaxBlendRadius,
		FitOrder:       DefaultFitOrder,
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithMinWidth sets the default bubble width. Values <= 0 are kept and
// rejected by Validate.
func WithMinWidth(width int) Option {
	return func(cfg *Config) {
		cfg.MinWidth = width
	}
}

// WithOverrides appends per-range width overrides.
func WithOverrides(overrides ...Override) Option {
	return func(cfg *Config) {
		cfg.Overrides = append(cfg.Overrides, overrides...)
	}
}

// WithMaxIterations sets the pass limit.
func WithMaxIterations(n int) Option {
	return func(cfg *Config) {
		cfg.MaxIterations = n
	}
}

// WithEpsilon sets the convergence tolerance.
func WithEpsilon(eps float64) Option {
	return func(cfg *Config) {
		cfg.Epsilon = eps
	}
}

// WithBlendRatio sets the seam detection ratio. Zero or negative disables
// blending.
func WithBlendRatio(ratio float64) Option {
	return func(cfg *Config) {
		if !math.IsNaN(ratio) {
			cfg.BlendRatio = ratio
		}
	}
}

// WithMaxBlendRadius caps the seam transition half-length.
func WithMaxBlendRadius(radius int) Option {
	return func(cfg *Config) {
		if radius > 0 {
			cfg.MaxBlendRadius = radius
		}
	}
}

// WithFitOrder sets the detrending order used by [Recursive]. Negative
// orders are ignored.
func WithFitOrder(order int) Option {
	return func(cfg *Config) {
		if order >= 0 {
			cfg.FitOrder = order
		}
	}
}

// WithLogger routes debug and warning records to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// Validate reports parameters that cannot produce a baseline.
func (c Config) Validate() error {
	if c.MinWidth <= 0 {
		return fmt.Errorf("%w: minimum width must be > 0: %d", ErrInvalidInput, c.MinWidth)
	}

	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations must be >= 1: %d", ErrInvalidInput, c.MaxIterations)
	}

	if !(c.Epsilon > 0) || math.IsInf(c.Epsilon, 0) {
		return fmt.Errorf("%w: epsilon must be finite and > 0: %v", ErrInvalidInput, c.Epsilon)
	}

	if c.MaxBlendRadius < 1 {
		return fmt.Errorf("%w: max blend radius must be >= 1: %d", ErrInvalidInput, c.MaxBlendRadius)
	}

	return nil
}

func (c Config) logger() *slog.Logger {
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return logger.With(slog.String("component", "baseline"))
}
