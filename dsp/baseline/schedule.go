package baseline

import "fmt"

// Override sets the minimum bubble width of the pixels in [Start, End).
type Override struct {
	Start int
	End   int
	Width int
}

// Schedule returns the minimum bubble width of every pixel of a spectrum
// of the given length. Pixels not covered by an override use
// defaultWidth; where overrides overlap, the later one wins.
func Schedule(length, defaultWidth int, overrides []Override) ([]int, error) {
	return scheduleInto(nil, length, defaultWidth, overrides)
}

func scheduleInto(dst []int, length, defaultWidth int, overrides []Override) ([]int, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: spectrum length must be > 0: %d", ErrInvalidInput, length)
	}
	if defaultWidth <= 0 {
		return nil, fmt.Errorf("%w: minimum width must be > 0: %d", ErrInvalidInput, defaultWidth)
	}
	for k, o := range overrides {
		if err := o.validate(length); err != nil {
			return nil, fmt.Errorf("override %d: %w", k, err)
		}
	}

	if cap(dst) >= length {
		dst = dst[:length]
	} else {
		dst = make([]int, length)
	}
	for i := range dst {
		dst[i] = defaultWidth
	}
	for _, o := range overrides {
		for i := o.Start; i < o.End; i++ {
			dst[i] = o.Width
		}
	}
	return dst, nil
}

func (o Override) validate(length int) error {
	if o.Start < 0 || o.End > length || o.Start >= o.End {
		return fmt.Errorf("%w: range [%d,%d) not within [0,%d)", ErrInvalidWindowSpec, o.Start, o.End, length)
	}
	if o.Width <= 0 {
		return fmt.Errorf("%w: %w: width must be > 0: %d", ErrInvalidWindowSpec, ErrInvalidInput, o.Width)
	}
	return nil
}

// HalfWidths converts per-pixel widths to bubble half-widths, truncated
// symmetrically at both ends so that no window reaches past the
// spectrum: half[i] = min(width[i]/2, i, len-1-i).
func HalfWidths(widths []int) []int {
	return halfWidthsInto(nil, widths)
}

func halfWidthsInto(dst []int, widths []int) []int {
	n := len(widths)
	if cap(dst) >= n {
		dst = dst[:n]
	} else {
		dst = make([]int, n)
	}
	for i, w := range widths {
		dst[i] = min(w/2, i, n-1-i)
	}
	return dst
}

// seams returns the pixels k where widths[k-1] and widths[k] differ by a
// factor of at least ratio. A ratio <= 0 disables seam detection.
func seams(widths []int, ratio float64) []int {
	if ratio <= 0 {
		return nil
	}
	var out []int
	for k := 1; k < len(widths); k++ {
		a, b := widths[k-1], widths[k]
		if a == b {
			continue
		}
		if float64(max(a, b)) >= ratio*float64(min(a, b)) {
			out = append(out, k)
		}
	}
	return out
}
