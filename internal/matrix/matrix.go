// Package matrix implements a dense matrix of differentiable scalars.
//
// A Matrix is a rows×cols grid of autodiff.Var stored in row-major order.
// Every operation is expressed with scalar Var operations, so gradients flow
// through matrix code without any matrix-level backward rules: the matrix
// has no gradient storage of its own, gradients live in the element nodes.
//
// Example:
//
//	a, _ := matrix.FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	b, _ := matrix.FromSlice(3, 1, []float64{1, 0, -1})
//	c, err := matrix.MatMul(a, b) // 2×1
//	if err != nil {
//	    return err
//	}
//
//	loss := c.Sum()
//	loss.SetGrad(1)
//	loss.Backward()
//	fmt.Println(a.Grads()) // dloss/da
package matrix

import (
	"fmt"

	"github.com/RishabSA/automatic-differentiation/internal/autodiff"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a rows×cols grid of autodiff.Var.
type Matrix struct {
	rows, cols int
	data       []autodiff.Var // row-major, len == rows*cols
}

// New creates a rows×cols matrix of fresh zero-valued leaves.
//
// Panics if rows or cols is not positive.
func New(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix.New: invalid shape (%d, %d)", rows, cols))
	}
	m := newUninit(rows, cols)
	for i := range m.data {
		m.data[i] = autodiff.New(0)
	}
	return m
}

// newUninit allocates the grid without creating nodes; callers fill every slot.
func newUninit(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]autodiff.Var, rows*cols)}
}

// FromSlice creates a rows×cols matrix of leaves from row-major values.
func FromSlice(rows, cols int, values []float64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("matrix.FromSlice: shape (%d, %d): %w", rows, cols, ErrBadShape)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("matrix.FromSlice: %d values for shape (%d, %d): %w",
			len(values), rows, cols, ErrBadShape)
	}

	m := newUninit(rows, cols)
	for i, v := range values {
		m.data[i] = autodiff.New(v)
	}
	return m, nil
}

// FromVars wraps row-major vars as a rows×cols matrix without copying.
// The matrix takes ownership of vars.
func FromVars(rows, cols int, vars []autodiff.Var) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("matrix.FromVars: shape (%d, %d): %w", rows, cols, ErrBadShape)
	}
	if len(vars) != rows*cols {
		return nil, fmt.Errorf("matrix.FromVars: %d vars for shape (%d, %d): %w",
			len(vars), rows, cols, ErrBadShape)
	}
	return &Matrix{rows: rows, cols: cols, data: vars}, nil
}

// FromDense creates a matrix of leaves holding the values of d.
func FromDense(d mat.Matrix) (*Matrix, error) {
	rows, cols := d.Dims()
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("matrix.FromDense: shape (%d, %d): %w", rows, cols, ErrBadShape)
	}

	m := newUninit(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.data[i*cols+j] = autodiff.New(d.At(i, j))
		}
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// Len returns the number of elements.
func (m *Matrix) Len() int { return len(m.data) }

// SameShape reports whether m and other have identical dimensions.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

func (m *Matrix) index(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for shape (%d, %d)", i, j, m.rows, m.cols))
	}
	return i*m.cols + j
}

// At returns the element at (i, j). The returned Var shares its node with
// the matrix, so reading its gradient after Backward gives the element's
// gradient.
//
// Panics if the index is out of range.
func (m *Matrix) At(i, j int) autodiff.Var {
	return m.data[m.index(i, j)]
}

// Set stores v at (i, j).
func (m *Matrix) Set(i, j int, v autodiff.Var) {
	m.data[m.index(i, j)] = v
}

// SetValue replaces the element at (i, j) with a fresh leaf holding value.
func (m *Matrix) SetValue(i, j int, value float64) {
	m.data[m.index(i, j)] = autodiff.New(value)
}

// Elements returns the backing elements in row-major order.
// The slice is shared with m.
func (m *Matrix) Elements() []autodiff.Var {
	return m.data
}

// ResetGradAndParents resets the graph state of every element.
func (m *Matrix) ResetGradAndParents() {
	for _, v := range m.data {
		v.ResetGradAndParents()
	}
}

// Values returns a snapshot of the element values.
func (m *Matrix) Values() *mat.Dense {
	out := make([]float64, len(m.data))
	for i, v := range m.data {
		out[i] = v.Value()
	}
	return mat.NewDense(m.rows, m.cols, out)
}

// Grads returns a snapshot of the element gradients.
func (m *Matrix) Grads() *mat.Dense {
	out := make([]float64, len(m.data))
	for i, v := range m.data {
		out[i] = v.Grad()
	}
	return mat.NewDense(m.rows, m.cols, out)
}

// String implements fmt.Stringer, printing the values.
func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix(%d x %d) =\n%v", m.rows, m.cols, mat.Formatted(m.Values(), mat.Squeeze()))
}
