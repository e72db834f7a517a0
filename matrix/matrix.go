// Copyright 2025 The automatic-differentiation Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides dense 2-D matrices of autodiff variables.
//
// Matrix operations are built from scalar Var operations, so gradients flow
// through them without any matrix-level backward rules.
//
// Example:
//
//	a, _ := matrix.FromSlice(2, 2, []float64{1, 2, 3, 4})
//	b, _ := matrix.FromSlice(2, 1, []float64{1, 1})
//
//	c, err := a.MatMul(b)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	loss := c.Sum()
//	loss.SetGrad(1)
//	loss.Backward()
//
//	fmt.Println(mat.Formatted(a.Grads()))
package matrix

import (
	"github.com/RishabSA/automatic-differentiation/internal/matrix"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a rows×cols grid of autodiff variables.
type Matrix = matrix.Matrix

// Errors.
var (
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrBadShape          = matrix.ErrBadShape
)

// New creates a rows×cols matrix of fresh zero leaves.
//
// Panics if rows or cols is not positive.
func New(rows, cols int) *Matrix {
	return matrix.New(rows, cols)
}

// FromSlice creates a matrix from row-major values.
func FromSlice(rows, cols int, values []float64) (*Matrix, error) {
	return matrix.FromSlice(rows, cols, values)
}

// FromDense creates a matrix of leaves holding the values of d.
func FromDense(d mat.Matrix) (*Matrix, error) {
	return matrix.FromDense(d)
}

// MatMul computes a @ b.
func MatMul(a, b *Matrix) (*Matrix, error) {
	return matrix.MatMul(a, b)
}
