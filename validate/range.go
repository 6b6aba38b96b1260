// Package validate contains float comparisons used when checking compositions.
package validate

import "math"

// FloatingPointTolerance is absolute tolerance of Close.
const FloatingPointTolerance = 0.000001

// InRange returns true, if value is in [start, end].
func InRange(start float64, end float64, value float64) bool {
	return value >= start && value <= end
}

// Close returns true, if a and b differ by at most FloatingPointTolerance.
func Close(a, b float64) bool {
	return math.Abs(a-b) <= FloatingPointTolerance
}

// Sum ...
func Sum(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum
}

// Normalized returns true, if values are non negative and sum up to 1.
func Normalized(values []float64) bool {
	for _, v := range values {
		if v < 0 {
			return false
		}
	}
	return Close(Sum(values), 1.0)
}
