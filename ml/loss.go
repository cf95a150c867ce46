package ml

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// MeanSquaredError returns sum((a[k]-b[k])^2) / (2*n). The extra factor of two
// is the half-MSE convention whose derivative is simply a-b.
func MeanSquaredError(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: vectors have %d and %d values", ErrDimensionMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("%w: empty vectors", ErrDimensionMismatch)
	}
	diff := make([]float64, len(a))
	floats.SubTo(diff, a, b)
	return floats.Dot(diff, diff) / (2.0 * float64(len(a))), nil
}
