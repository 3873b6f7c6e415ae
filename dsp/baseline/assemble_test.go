package baseline

import (
	"testing"

	"github.com/mr-sheg/orpl/internal/testutil"
)

func TestAssemblerBlendsSeam(t *testing.T) {
	spectrum := testutil.DC(10, 10)
	widths := []int{2, 2, 2, 2, 2, 8, 8, 8, 8, 8}
	base := []float64{1, 1, 1, 1, 1, 4, 4, 4, 4, 4}

	a := assembler{ratio: DefaultBlendRatio, maxRadius: DefaultMaxBlendRadius}
	if n := a.blend(spectrum, base, widths); n != 1 {
		t.Fatalf("blend() seams = %d, want 1", n)
	}

	want := []float64{1, 1, 1, 1, 2, 3, 4, 4, 4, 4}
	testutil.RequireSliceNearlyEqual(t, base, want, 1e-12)
}

func TestAssemblerClampsToSpectrum(t *testing.T) {
	spectrum := []float64{10, 10, 10, 10, 10, 2.5, 10, 10, 10, 10}
	widths := []int{2, 2, 2, 2, 2, 8, 8, 8, 8, 8}
	base := []float64{1, 1, 1, 1, 1, 2.5, 4, 4, 4, 4}

	a := assembler{ratio: DefaultBlendRatio, maxRadius: DefaultMaxBlendRadius}
	a.blend(spectrum, base, widths)

	testutil.RequireBelow(t, base, spectrum, 0)
	if base[5] != 2.5 {
		t.Fatalf("base[5] = %v, want 2.5", base[5])
	}
}

func TestAssemblerLeavesEndsAndSmallRatios(t *testing.T) {
	spectrum := testutil.DC(10, 6)
	widths := []int{2, 8, 8, 8, 3, 3}
	base := []float64{0, 6, 6, 6, 6, 6}

	a := assembler{ratio: DefaultBlendRatio, maxRadius: DefaultMaxBlendRadius}
	a.blend(spectrum, base, widths)

	if base[0] != 0 {
		t.Fatalf("first pixel changed: %v", base[0])
	}

	// 8 -> 3 is a seam, radius 1 around pixel 4.
	testutil.RequireSliceNearlyEqual(t, base[3:], []float64{6, 6, 6}, 1e-12)

	off := assembler{ratio: 0, maxRadius: DefaultMaxBlendRadius}
	if n := off.blend(spectrum, base, widths); n != 0 {
		t.Fatalf("disabled blend() seams = %d, want 0", n)
	}
}

func TestAssemblerRadius(t *testing.T) {
	a := assembler{maxRadius: 16}

	tests := []struct {
		left, right, want int
	}{
		{1, 50, 1},
		{4, 40, 2},
		{20, 100, 10},
		{100, 400, 16},
	}

	for _, tt := range tests {
		if got := a.radius(tt.left, tt.right); got != tt.want {
			t.Fatalf("radius(%d, %d) = %d, want %d", tt.left, tt.right, got, tt.want)
		}
	}
}
