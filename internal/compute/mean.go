// Package compute holds the arithmetic core of seshat: turning number
// tokens into floats and reducing a sequence to its arithmetic mean.
package compute

import "errors"

// ErrNoNumbers is returned when a mean is requested over an empty sequence.
// Dividing by a zero count would yield NaN, not an error, so the empty case
// is rejected up front.
var ErrNoNumbers = errors.New("no numbers provided")

// Mean returns the arithmetic mean of values. The sequence must contain at
// least one element.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrNoNumbers
	}
	return Sum(values) / float64(len(values)), nil
}

// Sum returns the sum of values under IEEE-754 semantics.
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
