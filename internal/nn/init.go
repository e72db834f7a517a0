package nn

import (
	"math/rand"

	"github.com/RishabSA/automatic-differentiation/internal/matrix"
)

// DefaultInitRange is the half-width of the uniform distribution used for
// Linear weights when no range is configured.
const DefaultInitRange = 0.01

// Uniform creates a rows×cols matrix with values drawn from U(-bound, bound).
//
// If r is nil the global math/rand source is used.
func Uniform(rows, cols int, bound float64, r *rand.Rand) *matrix.Matrix {
	float := rand.Float64
	if r != nil {
		float = r.Float64
	}

	values := make([]float64, rows*cols)
	for i := range values {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		values[i] = (float()*2 - 1) * bound
	}

	m, err := matrix.FromSlice(rows, cols, values)
	if err != nil {
		panic(err)
	}
	return m
}

// Zeros creates a rows×cols matrix of zeros.
//
// This is commonly used for bias initialization.
func Zeros(rows, cols int) *matrix.Matrix {
	return matrix.New(rows, cols)
}
