package autodiff

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
)

// ErrGradientMismatch is returned by CheckGradient when the gradient computed
// by Backward disagrees with the finite-difference estimate.
var ErrGradientMismatch = errors.New("autodiff: analytic and numerical gradients differ")

// GradCheckStep is the finite-difference step used by NumericalGradient.
const GradCheckStep = 1e-6

// Func is a scalar function of several Vars, built from Var operations.
type Func func(xs []Var) Var

// NumericalGradient estimates the gradient of f at x using central differences.
func NumericalGradient(f Func, x []float64) []float64 {
	eval := func(p []float64) float64 {
		return f(leaves(p)).Value()
	}
	return fd.Gradient(nil, eval, x, &fd.Settings{
		Formula: fd.Central,
		Step:    GradCheckStep,
	})
}

// AnalyticGradient evaluates f at x, runs Backward from the result with a
// seed of 1.0 and returns the gradient of every input.
func AnalyticGradient(f Func, x []float64) []float64 {
	xs := leaves(x)
	out := f(xs)
	out.SetGrad(1)
	out.Backward()

	grads := make([]float64, len(xs))
	for i, v := range xs {
		grads[i] = v.Grad()
	}
	return grads
}

// CheckGradient compares AnalyticGradient against NumericalGradient at x.
//
// Components are accepted when they agree within tol, either absolutely or
// relative to their magnitude. The first disagreeing component is reported
// as an error wrapping ErrGradientMismatch.
func CheckGradient(f Func, x []float64, tol float64) error {
	analytic := AnalyticGradient(f, x)
	numerical := NumericalGradient(f, x)

	for i := range analytic {
		if !scalar.EqualWithinAbsOrRel(analytic[i], numerical[i], tol, tol) {
			return fmt.Errorf("%w: input %d at %g: analytic %g, numerical %g",
				ErrGradientMismatch, i, x[i], analytic[i], numerical[i])
		}
	}
	return nil
}

func leaves(values []float64) []Var {
	xs := make([]Var, len(values))
	for i, v := range values {
		xs[i] = New(v)
	}
	return xs
}
