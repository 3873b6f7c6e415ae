package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// MinMax returns the smallest and largest value of x together with their
// first positions. An empty slice yields zeros and positions of -1.
func MinMax(x []float64) (minVal float64, minPos int, maxVal float64, maxPos int) {
	if len(x) == 0 {
		return 0, -1, 0, -1
	}

	minVal, maxVal = x[0], x[0]
	for i, v := range x[1:] {
		if v < minVal {
			minVal = v
			minPos = i + 1
		}
		if v > maxVal {
			maxVal = v
			maxPos = i + 1
		}
	}

	return minVal, minPos, maxVal, maxPos
}

// ArgMin returns the index of the first smallest element, or -1 for an empty slice.
func ArgMin(x []float64) int {
	_, pos, _, _ := MinMax(x)
	return pos
}

// FirstNonFinite returns the index of the first NaN or Inf in x, or -1.
func FirstNonFinite(x []float64) int {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}
