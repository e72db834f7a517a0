package matrix

import (
	"fmt"

	"github.com/RishabSA/automatic-differentiation/internal/autodiff"
)

// Add returns m + other elementwise.
//
// Broadcast rules, checked before any computation:
//   - same shape: elementwise
//   - other is 1×1: the single element is added to every entry
//   - other is 1×cols: the row is added to every row (bias)
//
// Any other shape returns an error wrapping ErrDimensionMismatch.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	return m.zip("Add", other, autodiff.Var.Add)
}

// Sub returns m - other elementwise, with the same broadcast rules as Add.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	return m.zip("Sub", other, autodiff.Var.Sub)
}

func (m *Matrix) zip(op string, other *Matrix, f func(a, b autodiff.Var) autodiff.Var) (*Matrix, error) {
	var pick func(i, j int) autodiff.Var
	switch {
	case m.SameShape(other):
		pick = func(i, j int) autodiff.Var { return other.data[i*other.cols+j] }
	case other.rows == 1 && other.cols == 1:
		pick = func(int, int) autodiff.Var { return other.data[0] }
	case other.rows == 1 && other.cols == m.cols:
		pick = func(_, j int) autodiff.Var { return other.data[j] }
	default:
		return nil, fmt.Errorf("matrix.%s: (%d, %d) and (%d, %d): %w",
			op, m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}

	out := newUninit(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[i*m.cols+j] = f(m.data[i*m.cols+j], pick(i, j))
		}
	}
	return out, nil
}

// Apply returns a new matrix with f applied to every element.
func (m *Matrix) Apply(f func(autodiff.Var) autodiff.Var) *Matrix {
	out := newUninit(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = f(v)
	}
	return out
}

// AddScalar adds the constant c to every element.
func (m *Matrix) AddScalar(c float64) *Matrix {
	return m.Apply(func(v autodiff.Var) autodiff.Var { return v.AddScalar(c) })
}

// SubScalar subtracts the constant c from every element.
func (m *Matrix) SubScalar(c float64) *Matrix {
	return m.Apply(func(v autodiff.Var) autodiff.Var { return v.SubScalar(c) })
}

// MulScalar multiplies every element by the constant c.
func (m *Matrix) MulScalar(c float64) *Matrix {
	return m.Apply(func(v autodiff.Var) autodiff.Var { return v.MulScalar(c) })
}

// DivScalar divides every element by the constant c.
func (m *Matrix) DivScalar(c float64) *Matrix {
	return m.Apply(func(v autodiff.Var) autodiff.Var { return v.DivScalar(c) })
}

// Pow raises every element to the integer power p.
func (m *Matrix) Pow(p int) *Matrix {
	return m.Apply(func(v autodiff.Var) autodiff.Var { return v.Pow(p) })
}

// Transpose returns the cols×rows transpose. Elements are shared with m, not
// copied, so gradients reach the original nodes.
func (m *Matrix) Transpose() *Matrix {
	out := newUninit(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// Row returns row i as a 1×cols matrix sharing elements with m.
func (m *Matrix) Row(i int) *Matrix {
	start := m.index(i, 0)
	out := newUninit(1, m.cols)
	copy(out.data, m.data[start:start+m.cols])
	return out
}

// Sum returns the sum of all elements as a single Var.
func (m *Matrix) Sum() autodiff.Var {
	return autodiff.Sum(m.data...)
}

// Mean returns the mean of all elements.
func (m *Matrix) Mean() autodiff.Var {
	return m.Sum().DivScalar(float64(len(m.data)))
}
