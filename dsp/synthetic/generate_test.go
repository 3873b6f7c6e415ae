package synthetic

import (
	"errors"
	"math"
	"testing"
)

func TestRamanBands(t *testing.T) {
	g := NewGenerator(WithLength(200))

	raman, err := g.Raman(Peak{Center: 50, Height: 2, FWHM: 10}, Peak{Center: 150, Height: 1, FWHM: 4})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(raman[50]-2) > 1e-9 || math.Abs(raman[150]-1) > 1e-9 {
		t.Fatalf("band heights = %v/%v, want 2/1", raman[50], raman[150])
	}
	if math.Abs(raman[55]-1) > 1e-9 {
		t.Fatalf("half maximum = %v, want 1", raman[55])
	}

	if _, err := g.Raman(Peak{Center: 1, Height: 1, FWHM: 0}); !errors.Is(err, ErrPeak) {
		t.Fatalf("expected ErrPeak, got %v", err)
	}
}

func TestBaselinePolynomial(t *testing.T) {
	g := NewGenerator(WithLength(4))
	got := g.Baseline(1, -2, 0.5)
	want := []float64{1, -0.5, -1, -0.5}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("Baseline = %v, want %v", got, want)
		}
	}
}

func TestNoiseReproducible(t *testing.T) {
	a := NewGenerator(WithSeed(7)).Noise(0.1)
	b := NewGenerator(WithSeed(7)).Noise(0.1)
	c := NewGenerator(WithSeed(8)).Noise(0.1)

	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise differs at %d for equal seeds", i)
		}
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
	for _, v := range NewGenerator().Noise(0) {
		if v != 0 {
			t.Fatal("zero std must produce silence")
		}
	}
}

func TestSpectrumComposition(t *testing.T) {
	g := NewGenerator(WithLength(500), WithSeed(3))
	c, err := g.Spectrum(
		[]Peak{{Center: 120, Height: 1, FWHM: 8}, {Center: 300, Height: 0.5, FWHM: 15}},
		[]float64{1, 0.002, -1e-6},
		0.5,
		0.01,
	)
	if err != nil {
		t.Fatal(err)
	}

	peak := math.Inf(-1)
	for i := range c.Spectrum {
		sum := c.Baseline[i] + c.Raman[i] + c.Noise[i]
		if math.Abs(sum-c.Spectrum[i]) > 1e-12 {
			t.Fatalf("pixel %d: components sum to %v, spectrum %v", i, sum, c.Spectrum[i])
		}
		peak = max(peak, c.Spectrum[i])
	}
	if math.Abs(peak-1) > 1e-12 {
		t.Fatalf("spectrum max = %v, want 1", peak)
	}
}
