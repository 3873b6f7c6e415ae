package baseline

import (
	"errors"
	"log/slog"
	"math"
	"testing"
)

func TestApplyOptionsDefaults(t *testing.T) {
	cfg := ApplyOptions()

	if cfg.MinWidth != DefaultMinWidth {
		t.Fatalf("MinWidth = %d, want %d", cfg.MinWidth, DefaultMinWidth)
	}
	if cfg.MaxIterations != DefaultMaxIterations {
		t.Fatalf("MaxIterations = %d, want %d", cfg.MaxIterations, DefaultMaxIterations)
	}
	if cfg.Epsilon != DefaultEpsilon {
		t.Fatalf("Epsilon = %v, want %v", cfg.Epsilon, DefaultEpsilon)
	}
	if cfg.BlendRatio != DefaultBlendRatio || cfg.MaxBlendRadius != DefaultMaxBlendRadius {
		t.Fatalf("blend = (%v, %d), want (%v, %d)", cfg.BlendRatio, cfg.MaxBlendRadius, DefaultBlendRatio, DefaultMaxBlendRadius)
	}
	if cfg.FitOrder != DefaultFitOrder {
		t.Fatalf("FitOrder = %d, want %d", cfg.FitOrder, DefaultFitOrder)
	}
	if cfg.Logger != nil || cfg.Overrides != nil {
		t.Fatalf("unexpected non-nil defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestApplyOptions(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	cfg := ApplyOptions(
		nil,
		WithMinWidth(30),
		WithOverrides(Override{Start: 0, End: 5, Width: 2}),
		WithOverrides(Override{Start: 5, End: 9, Width: 3}),
		WithMaxIterations(12),
		WithEpsilon(1e-6),
		WithBlendRatio(0),
		WithMaxBlendRadius(4),
		WithFitOrder(2),
		WithLogger(logger),
	)

	if cfg.MinWidth != 30 || cfg.MaxIterations != 12 || cfg.Epsilon != 1e-6 {
		t.Fatalf("core fields = %+v", cfg)
	}
	if len(cfg.Overrides) != 2 || cfg.Overrides[1].Width != 3 {
		t.Fatalf("Overrides = %+v, want both appended", cfg.Overrides)
	}
	if cfg.BlendRatio != 0 || cfg.MaxBlendRadius != 4 || cfg.FitOrder != 2 {
		t.Fatalf("blend or fit fields = %+v", cfg)
	}
	if cfg.Logger != logger {
		t.Fatal("Logger not set")
	}
}

func TestOptionsIgnoreOutOfRange(t *testing.T) {
	cfg := ApplyOptions(WithBlendRatio(math.NaN()), WithMaxBlendRadius(0), WithFitOrder(-2))
	want := DefaultConfig()

	if cfg.BlendRatio != want.BlendRatio || cfg.MaxBlendRadius != want.MaxBlendRadius || cfg.FitOrder != want.FitOrder {
		t.Fatalf("ApplyOptions() = %+v, want defaults", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero width", ApplyOptions(WithMinWidth(0))},
		{"negative width", ApplyOptions(WithMinWidth(-3))},
		{"zero iterations", ApplyOptions(WithMaxIterations(0))},
		{"negative epsilon", ApplyOptions(WithEpsilon(-1))},
		{"infinite epsilon", ApplyOptions(WithEpsilon(math.Inf(1)))},
		{"zero blend radius", Config{MinWidth: 1, MaxIterations: 1, Epsilon: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Validate() = %v, want %v", err, ErrInvalidInput)
			}
		})
	}
}
