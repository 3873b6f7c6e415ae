package savgol

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/mr-sheg/orpl/dsp/conv"
	"github.com/mr-sheg/orpl/dsp/polyfit"
)

var (
	ErrWindowLength = errors.New("savgol: window length must be odd and positive")
	ErrPolyOrder    = errors.New("savgol: polynomial order must be >= 0 and below the window length")
	ErrTooShort     = errors.New("savgol: signal shorter than window")
)

// Coefficients returns the smoothing kernel for the given odd window
// length and polynomial order. Tap k weights the sample at offset
// k - windowLength/2 from the output position.
func Coefficients(windowLength, polyOrder int) ([]float64, error) {
	if err := validate(windowLength, polyOrder); err != nil {
		return nil, err
	}

	half := windowLength / 2
	a := mat.NewDense(windowLength, polyOrder+1, nil)
	for row := 0; row < windowLength; row++ {
		t := float64(row-half) / float64(max(half, 1))
		p := 1.0
		for col := 0; col <= polyOrder; col++ {
			a.Set(row, col, p)
			p *= t
		}
	}

	var qr mat.QR
	qr.Factorize(a)

	// Solving against the identity yields the pseudo-inverse; its first row
	// maps a window onto the fitted value at the centre.
	var pinv mat.Dense
	if err := qr.SolveTo(&pinv, false, eye(windowLength)); err != nil {
		return nil, fmt.Errorf("savgol: coefficient design failed: %w", err)
	}

	return mat.Row(nil, 0, &pinv), nil
}

// Filter smooths x with a Savitzky–Golay filter. The returned slice has
// the same length as x.
func Filter(x []float64, windowLength, polyOrder int) ([]float64, error) {
	if err := validate(windowLength, polyOrder); err != nil {
		return nil, err
	}
	if len(x) < windowLength {
		return nil, fmt.Errorf("%w: %d samples, window %d", ErrTooShort, len(x), windowLength)
	}

	coeffs, err := Coefficients(windowLength, polyOrder)
	if err != nil {
		return nil, err
	}

	kernel := make([]float64, len(coeffs))
	for i, c := range coeffs {
		kernel[len(coeffs)-1-i] = c
	}

	out, err := conv.ConvolveMode(x, kernel, conv.ModeSame)
	if err != nil {
		return nil, err
	}

	if err := fitEdges(out, x, windowLength, polyOrder); err != nil {
		return nil, err
	}
	return out, nil
}

// fitEdges overwrites the first and last half-windows of out with the
// polynomial fitted to the first and last full windows of x.
func fitEdges(out, x []float64, windowLength, polyOrder int) error {
	half := windowLength / 2
	n := len(x)

	pos := make([]float64, windowLength)
	for i := range pos {
		pos[i] = float64(i)
	}

	head, err := polyfit.Fit(pos, x[:windowLength], polyOrder)
	if err != nil {
		return fmt.Errorf("savgol: edge fit: %w", err)
	}
	tail, err := polyfit.Fit(pos, x[n-windowLength:], polyOrder)
	if err != nil {
		return fmt.Errorf("savgol: edge fit: %w", err)
	}

	for i := 0; i < half; i++ {
		out[i] = head.Eval(float64(i))
		out[n-half+i] = tail.Eval(float64(windowLength - half + i))
	}
	return nil
}

func validate(windowLength, polyOrder int) error {
	if windowLength <= 0 || windowLength%2 == 0 {
		return fmt.Errorf("%w: %d", ErrWindowLength, windowLength)
	}
	if polyOrder < 0 || polyOrder >= windowLength {
		return fmt.Errorf("%w: order %d, window %d", ErrPolyOrder, polyOrder, windowLength)
	}
	return nil
}

func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
