package normalize

import (
	"errors"
	"math"
	"testing"

	"github.com/mr-sheg/orpl/internal/testutil"
)

func TestMinMax(t *testing.T) {
	got, err := MinMax([]float64{2, 4, 6, 3})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0.5, 1, 0.25}, 1e-12)
}

func TestMaxBand(t *testing.T) {
	got, err := MaxBand([]float64{1, 3, 5, 2}, 1)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 1, 2, 0.5}, 1e-12)
}

func TestSNV(t *testing.T) {
	got, err := SNV([]float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}

	var mean, sq float64
	for _, v := range got {
		mean += v
	}
	mean /= float64(len(got))
	for _, v := range got {
		sq += (v - mean) * (v - mean)
	}
	std := math.Sqrt(sq / float64(len(got)))

	if math.Abs(mean) > 1e-12 || math.Abs(std-1) > 1e-12 {
		t.Fatalf("mean=%v std=%v, want 0 and 1", mean, std)
	}
}

func TestAUC(t *testing.T) {
	got, err := AUC([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 1.0 / 6, 2.0 / 6, 3.0 / 6}, 1e-12)
}

func TestNormalizeErrors(t *testing.T) {
	flat := testutil.DC(3, 4)

	tests := []struct {
		name string
		fn   func() error
		want error
	}{
		{"minmax empty", func() error { _, err := MinMax(nil); return err }, ErrEmpty},
		{"minmax flat", func() error { _, err := MinMax(flat); return err }, ErrDegenerate},
		{"maxband index", func() error { _, err := MaxBand(flat, 4); return err }, ErrBandIndex},
		{"maxband at minimum", func() error { _, err := MaxBand([]float64{1, 2}, 0); return err }, ErrDegenerate},
		{"snv flat", func() error { _, err := SNV(flat); return err }, ErrDegenerate},
		{"auc flat", func() error { _, err := AUC(flat); return err }, ErrDegenerate},
		{"auc empty", func() error { _, err := AUC(nil); return err }, ErrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}
