package errors

import (
	"math"
)

// CountNaN returns how many entries of values are NaN.
func CountNaN(values []float64) int {
	n := 0
	for _, v := range values {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}

// CheckFraction validates that a ratio lies strictly between 0 and 1.
func CheckFraction(param string, value float64) error {
	if math.IsNaN(value) || value <= 0 || value >= 1 {
		return NewValidationError(param, "must be in the open interval (0, 1)", value)
	}
	return nil
}
