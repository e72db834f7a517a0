package autodiff

import "math"

// Log returns the natural logarithm of x.
//
// Backward: ∂z/∂x = 1/x.
//
// Note: x must be positive. Non-positive inputs yield NaN or -Inf.
func (x Var) Log() Var {
	xv := x.Value()
	return unary(x, math.Log(xv), 1/xv)
}

// Exp returns e^x.
//
// Backward: ∂z/∂x = e^x.
func (x Var) Exp() Var {
	e := math.Exp(x.Value())
	return unary(x, e, e)
}

// Abs returns |x|.
//
// Backward: ∂z/∂x = sign(x), with 0 at x = 0.
func (x Var) Abs() Var {
	xv := x.Value()
	var d float64
	switch {
	case xv > 0:
		d = 1
	case xv < 0:
		d = -1
	}
	return unary(x, math.Abs(xv), d)
}
