package autodiff

import "math"

// ReLU returns max(0, x).
//
// Backward: 1 if x > 0, else 0.
func (x Var) ReLU() Var {
	if xv := x.Value(); xv > 0 {
		return unary(x, xv, 1)
	}
	return unary(x, 0, 0)
}

// LeakyReLU returns x for x > 0 and alpha·x otherwise.
//
// Backward: 1 if x > 0, else alpha.
func (x Var) LeakyReLU(alpha float64) Var {
	if xv := x.Value(); xv > 0 {
		return unary(x, xv, 1)
	}
	return unary(x, alpha*x.Value(), alpha)
}

// Sigmoid returns σ(x) = 1 / (1 + exp(-x)).
//
// Backward: σ(x)·(1 - σ(x)).
func (x Var) Sigmoid() Var {
	s := sigmoid(x.Value())
	return unary(x, s, s*(1-s))
}

// Tanh returns tanh(x).
//
// Backward: 1 - tanh²(x).
func (x Var) Tanh() Var {
	t := math.Tanh(x.Value())
	return unary(x, t, 1-t*t)
}

// SiLU returns x·σ(x), also known as Swish.
//
// Backward, with s = σ(x):
//
//	dy/dx = s + x·s·(1 - s)
func (x Var) SiLU() Var {
	xv := x.Value()
	s := sigmoid(xv)
	return unary(x, xv*s, s+xv*s*(1-s))
}

// ELU returns x for x > 0 and alpha·(exp(x) - 1) otherwise.
//
// Backward: 1 if x > 0, else alpha·exp(x).
func (x Var) ELU(alpha float64) Var {
	xv := x.Value()
	if xv > 0 {
		return unary(x, xv, 1)
	}
	e := math.Exp(xv)
	return unary(x, alpha*(e-1), alpha*e)
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
