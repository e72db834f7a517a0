package matrix_test

import (
	"testing"

	"github.com/RishabSA/automatic-differentiation/internal/autodiff"
	"github.com/RishabSA/automatic-differentiation/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func mustFromSlice(t *testing.T, rows, cols int, values ...float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromSlice(rows, cols, values)
	require.NoError(t, err)
	return m
}

// TestNew tests zero initialization with distinct leaves.
func TestNew(t *testing.T) {
	m := matrix.New(2, 3)

	rows, cols := m.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 6, m.Len())
	assert.True(t, mat.Equal(mat.NewDense(2, 3, nil), m.Values()))
	assert.False(t, m.At(0, 0).Same(m.At(0, 1)), "elements must not share a node")

	assert.Panics(t, func() { matrix.New(0, 3) })
	assert.Panics(t, func() { m.At(2, 0) })
}

// TestFromSlice tests construction and shape validation.
func TestFromSlice(t *testing.T) {
	m := mustFromSlice(t, 2, 2, 1, 2, 3, 4)
	assert.Equal(t, 3.0, m.At(1, 0).Value())

	_, err := matrix.FromSlice(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromSlice(-1, 2, nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestFromVars tests wrapping existing nodes.
func TestFromVars(t *testing.T) {
	a, b := autodiff.New(1), autodiff.New(2)

	m, err := matrix.FromVars(1, 2, []autodiff.Var{a, b})
	require.NoError(t, err)
	assert.True(t, m.At(0, 0).Same(a))
	assert.True(t, m.At(0, 1).Same(b))

	_, err = matrix.FromVars(2, 2, []autodiff.Var{a, b})
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromVars(0, 2, nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestFromDense tests round-tripping through gonum.
func TestFromDense(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	m, err := matrix.FromDense(d)
	require.NoError(t, err)
	assert.True(t, mat.Equal(d, m.Values()))
}

// TestSetAndElements tests element replacement.
func TestSetAndElements(t *testing.T) {
	m := matrix.New(1, 2)
	v := autodiff.New(5)

	m.Set(0, 1, v)
	m.SetValue(0, 0, 2)

	assert.True(t, m.At(0, 1).Same(v))
	assert.Equal(t, 2.0, m.Elements()[0].Value())
}

// TestAdd tests elementwise and broadcast addition.
func TestAdd(t *testing.T) {
	a := mustFromSlice(t, 2, 2, 1, 2, 3, 4)

	tests := []struct {
		name  string
		other *matrix.Matrix
		want  []float64
	}{
		{"SameShape", mustFromSlice(t, 2, 2, 10, 20, 30, 40), []float64{11, 22, 33, 44}},
		{"Scalar", mustFromSlice(t, 1, 1, 5), []float64{6, 7, 8, 9}},
		{"Row", mustFromSlice(t, 1, 2, 100, 200), []float64{101, 202, 103, 204}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := a.Add(tt.other)
			require.NoError(t, err)
			assert.True(t, mat.Equal(mat.NewDense(2, 2, tt.want), out.Values()))
		})
	}
}

// TestSub_Broadcast tests that a broadcast scalar collects gradient from every entry.
func TestSub_Broadcast(t *testing.T) {
	a := mustFromSlice(t, 2, 3, 1, 2, 3, 4, 5, 6)
	s := mustFromSlice(t, 1, 1, 1)

	out, err := a.Sub(s)
	require.NoError(t, err)
	assert.True(t, mat.Equal(mat.NewDense(2, 3, []float64{0, 1, 2, 3, 4, 5}), out.Values()))

	loss := out.Sum()
	loss.SetGrad(1)
	loss.Backward()

	assert.Equal(t, -6.0, s.At(0, 0).Grad())
	assert.Equal(t, 1.0, a.At(1, 2).Grad())
}

// TestAdd_DimensionMismatch tests that incompatible shapes are rejected.
func TestAdd_DimensionMismatch(t *testing.T) {
	a := matrix.New(2, 3)

	_, err := a.Add(matrix.New(3, 2))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = a.Sub(matrix.New(2, 1))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestScalarOps tests literal elementwise operations.
func TestScalarOps(t *testing.T) {
	a := mustFromSlice(t, 1, 3, 1, 2, 3)

	assert.True(t, mat.Equal(mat.NewDense(1, 3, []float64{2, 4, 6}), a.MulScalar(2).Values()))
	assert.True(t, mat.Equal(mat.NewDense(1, 3, []float64{0.5, 1, 1.5}), a.DivScalar(2).Values()))
	assert.True(t, mat.Equal(mat.NewDense(1, 3, []float64{4, 5, 6}), a.AddScalar(3).Values()))
	assert.True(t, mat.Equal(mat.NewDense(1, 3, []float64{0, 1, 2}), a.SubScalar(1).Values()))
	assert.True(t, mat.Equal(mat.NewDense(1, 3, []float64{1, 8, 27}), a.Pow(3).Values()))
}

// TestMatMul tests values of a 2×3 @ 3×2 product.
func TestMatMul(t *testing.T) {
	a := mustFromSlice(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustFromSlice(t, 3, 2, 7, 8, 9, 10, 11, 12)

	c, err := matrix.MatMul(a, b)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(a.Values(), b.Values())
	assert.True(t, mat.Equal(&want, c.Values()))
}

// TestMatMul_Backward tests that gradients reach both operands.
func TestMatMul_Backward(t *testing.T) {
	a := mustFromSlice(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustFromSlice(t, 3, 2, 7, 8, 9, 10, 11, 12)

	c, err := a.MatMul(b)
	require.NoError(t, err)

	loss := c.Sum()
	loss.SetGrad(1)
	loss.Backward()

	// d(sum(A@B))/dA = 1 @ B^T, d/dB = A^T @ 1
	ones := mat.NewDense(2, 2, []float64{1, 1, 1, 1})
	var wantA, wantB mat.Dense
	wantA.Mul(ones, b.Values().T())
	wantB.Mul(a.Values().T(), ones)

	assert.True(t, mat.EqualApprox(&wantA, a.Grads(), 1e-12), "dA = %v", mat.Formatted(a.Grads()))
	assert.True(t, mat.EqualApprox(&wantB, b.Grads(), 1e-12), "dB = %v", mat.Formatted(b.Grads()))
}

// TestMatMul_DimensionMismatch tests the inner-dimension check.
func TestMatMul_DimensionMismatch(t *testing.T) {
	_, err := matrix.MatMul(matrix.New(2, 3), matrix.New(2, 3))
	require.Error(t, err)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestTranspose tests that transposed elements share nodes.
func TestTranspose(t *testing.T) {
	a := mustFromSlice(t, 2, 3, 1, 2, 3, 4, 5, 6)
	at := a.Transpose()

	assert.Equal(t, 3, at.Rows())
	assert.Equal(t, 2, at.Cols())
	assert.True(t, at.At(2, 1).Same(a.At(1, 2)))
	assert.True(t, mat.Equal(a.Values().T(), at.Values()))
}

// TestRowAndMean tests row extraction and mean reduction.
func TestRowAndMean(t *testing.T) {
	a := mustFromSlice(t, 2, 2, 1, 2, 3, 4)

	row := a.Row(1)
	assert.True(t, row.At(0, 1).Same(a.At(1, 1)))

	mean := a.Mean()
	mean.SetGrad(1)
	mean.Backward()

	assert.Equal(t, 2.5, mean.Value())
	assert.Equal(t, 0.25, a.At(0, 0).Grad())
}

// TestResetGradAndParents tests bulk reset.
func TestResetGradAndParents(t *testing.T) {
	a := mustFromSlice(t, 1, 2, 1, 2)
	s := a.MulScalar(3).Sum()
	s.SetGrad(1)
	s.Backward()
	require.Equal(t, 3.0, a.At(0, 1).Grad())

	a.ResetGradAndParents()

	assert.True(t, mat.Equal(mat.NewDense(1, 2, nil), a.Grads()))
	assert.Equal(t, 0, a.At(0, 0).PendingDependents())
}

// TestString tests the formatted dump.
func TestString(t *testing.T) {
	a := mustFromSlice(t, 1, 2, 1, 2)
	assert.Contains(t, a.String(), "Matrix(1 x 2)")
}
