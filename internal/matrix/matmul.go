package matrix

import (
	"fmt"

	"github.com/RishabSA/automatic-differentiation/internal/autodiff"
)

// MatMul performs matrix multiplication: (m, k) @ (k, n) -> (m, n).
//
// Each output entry is a chain of scalar multiplies accumulated with scalar
// adds, C[i,j] = 0 + A[i,0]*B[0,j] + ... + A[i,k-1]*B[k-1,j], so every
// intermediate product is a node of the graph and gradients reach both
// operands without a dedicated backward rule.
//
// Returns an error wrapping ErrDimensionMismatch when a.Cols != b.Rows.
func MatMul(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, fmt.Errorf("matrix.MatMul: (%d, %d) @ (%d, %d): %w",
			a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	m, k, n := a.rows, a.cols, b.cols
	out := newUninit(m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := autodiff.New(0)
			for t := 0; t < k; t++ {
				sum = sum.Add(a.data[i*k+t].Mul(b.data[t*n+j]))
			}
			out.data[i*n+j] = sum
		}
	}
	return out, nil
}

// MatMul is the method form of MatMul(m, other).
func (m *Matrix) MatMul(other *Matrix) (*Matrix, error) {
	return MatMul(m, other)
}
