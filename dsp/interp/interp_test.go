package interp

import (
	"errors"
	"testing"

	"github.com/mr-sheg/orpl/internal/testutil"
)

func TestLinear2(t *testing.T) {
	if got := Linear2(0.25, 1, 5); got != 2 {
		t.Fatalf("Linear2 = %v, want 2", got)
	}
}

func TestPiecewise(t *testing.T) {
	xp := []float64{0, 1, 3}
	fp := []float64{0, 10, 30}

	got, err := Piecewise([]float64{-1, 0, 0.5, 1, 2, 3, 4}, xp, fp)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0, 5, 10, 20, 30, 30}, 1e-12)
}

func TestPiecewiseErrors(t *testing.T) {
	if _, err := Piecewise([]float64{1}, nil, nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if _, err := Piecewise([]float64{1}, []float64{0, 1}, []float64{0}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestFillMasked(t *testing.T) {
	tests := []struct {
		name   string
		signal []float64
		mask   []bool
		want   []float64
	}{
		{
			name:   "interior run",
			signal: []float64{0, 99, 99, 3, 4},
			mask:   []bool{false, true, true, false, false},
			want:   []float64{0, 1, 2, 3, 4},
		},
		{
			name:   "leading run",
			signal: []float64{99, 99, 5, 6},
			mask:   []bool{true, true, false, false},
			want:   []float64{5, 5, 5, 6},
		},
		{
			name:   "trailing run",
			signal: []float64{1, 2, 99},
			mask:   []bool{false, false, true},
			want:   []float64{1, 2, 2},
		},
		{
			name:   "all masked",
			signal: []float64{7, 8},
			mask:   []bool{true, true},
			want:   []float64{7, 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FillMasked(tt.signal, tt.mask)
			if err != nil {
				t.Fatal(err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tt.want, 1e-12)
		})
	}
}
