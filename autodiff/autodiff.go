// Copyright 2025 The automatic-differentiation Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation on scalars.
//
// Every arithmetic or elementary operation on a Var records the partial
// derivative with respect to each operand. Calling Backward on a result
// propagates its gradient to every Var it was computed from.
//
// Example:
//
//	import "github.com/RishabSA/automatic-differentiation/autodiff"
//
//	func main() {
//	    x := autodiff.New(2)
//	    y := autodiff.New(3)
//
//	    z := x.Mul(y).Add(x.Sin())
//
//	    z.SetGrad(1)
//	    z.Backward()
//
//	    fmt.Println(x.Grad()) // y + cos(x)
//	    fmt.Println(y.Grad()) // x
//	}
package autodiff

import (
	"github.com/RishabSA/automatic-differentiation/internal/autodiff"
)

// Var is a handle to a node in the computation graph.
type Var = autodiff.Var

// New creates a leaf variable with the given value and zero gradient.
func New(value float64) Var {
	return autodiff.New(value)
}

// Sum adds all vs together. Sum of nothing is a fresh zero leaf.
func Sum(vs ...Var) Var {
	return autodiff.Sum(vs...)
}

// Gradient checking

// Func is a scalar function of several variables, built from Var operations.
type Func = autodiff.Func

// ErrGradientMismatch is returned by CheckGradient when analytic and numerical
// gradients disagree.
var ErrGradientMismatch = autodiff.ErrGradientMismatch

// NumericalGradient estimates the gradient of f at x by central differences.
func NumericalGradient(f Func, x []float64) []float64 {
	return autodiff.NumericalGradient(f, x)
}

// AnalyticGradient evaluates f at x and returns the gradient from Backward.
func AnalyticGradient(f Func, x []float64) []float64 {
	return autodiff.AnalyticGradient(f, x)
}

// CheckGradient compares the analytic and numerical gradients of f at x.
//
// Example:
//
//	f := func(v []autodiff.Var) autodiff.Var { return v[0].Mul(v[1]).Exp() }
//	if err := autodiff.CheckGradient(f, []float64{0.5, 1.5}, 1e-4); err != nil {
//	    log.Fatal(err)
//	}
func CheckGradient(f Func, x []float64, tol float64) error {
	return autodiff.CheckGradient(f, x, tol)
}
