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
// A non-positive eps falls back to a small default tolerance.
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

// LinearToDB converts a linear amplitude to decibels (20*log10).
func LinearToDB(amplitude float64) float64 {
	return 20 * math.Log10(amplitude)
}

// DBToLinear converts decibels to a linear amplitude.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}
