package polyfit

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrEmpty          = errors.New("polyfit: empty input")
	ErrLengthMismatch = errors.New("polyfit: x and y lengths differ")
	ErrOrder          = errors.New("polyfit: invalid order")
	ErrSingular       = errors.New("polyfit: singular system")
)

// Poly is a fitted polynomial. Coefficients are in ascending powers of the
// normalised abscissa (x - center) / scale.
type Poly struct {
	Coeffs []float64
	center float64
	scale  float64
}

// Order returns the polynomial order.
func (p Poly) Order() int {
	return len(p.Coeffs) - 1
}

// Eval evaluates the polynomial at x.
func (p Poly) Eval(x float64) float64 {
	t := (x - p.center) / p.scale
	var y float64
	for k := len(p.Coeffs) - 1; k >= 0; k-- {
		y = y*t + p.Coeffs[k]
	}
	return y
}

// EvalAll evaluates the polynomial at every element of x.
func (p Poly) EvalAll(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = p.Eval(v)
	}
	return out
}

// EvalIndex evaluates the polynomial at the pixel positions 0..n-1.
func (p Poly) EvalIndex(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = p.Eval(float64(i))
	}
	return out
}

// Fit returns the least-squares polynomial of the given order through
// (x, y). At least order+1 points are required.
func Fit(x, y []float64, order int) (Poly, error) {
	if len(x) == 0 {
		return Poly{}, ErrEmpty
	}
	if len(x) != len(y) {
		return Poly{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if order < 0 || len(x) < order+1 {
		return Poly{}, fmt.Errorf("%w: order %d with %d points", ErrOrder, order, len(x))
	}

	center, scale := normalisation(x)
	a := vandermonde(x, order, center, scale)

	var qr mat.QR
	qr.Factorize(a)

	var coef mat.VecDense
	if err := qr.SolveVecTo(&coef, false, mat.NewVecDense(len(y), append([]float64(nil), y...))); err != nil {
		return Poly{}, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	coeffs := make([]float64, order+1)
	for k := range coeffs {
		coeffs[k] = coef.AtVec(k)
	}
	return Poly{Coeffs: coeffs, center: center, scale: scale}, nil
}

// FitIndex fits y against its pixel positions 0..len(y)-1.
func FitIndex(y []float64, order int) (Poly, error) {
	x := make([]float64, len(y))
	for i := range x {
		x[i] = float64(i)
	}
	return Fit(x, y, order)
}

func normalisation(x []float64) (center, scale float64) {
	lo, hi := x[0], x[0]
	for _, v := range x[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	center = (lo + hi) / 2
	scale = (hi - lo) / 2
	if scale == 0 {
		scale = 1
	}
	return center, scale
}

func vandermonde(x []float64, order int, center, scale float64) *mat.Dense {
	a := mat.NewDense(len(x), order+1, nil)
	for i, v := range x {
		t := (v - center) / scale
		p := 1.0
		for k := 0; k <= order; k++ {
			a.Set(i, k, p)
			p *= t
		}
	}
	return a
}
