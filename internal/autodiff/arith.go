package autodiff

import "math"

// Add returns x + y.
//
// Backward: ∂z/∂x = 1, ∂z/∂y = 1.
func (x Var) Add(y Var) Var {
	return binary(x, y, x.Value()+y.Value(), 1, 1)
}

// Sub returns x - y.
//
// Backward: ∂z/∂x = 1, ∂z/∂y = -1.
func (x Var) Sub(y Var) Var {
	return binary(x, y, x.Value()-y.Value(), 1, -1)
}

// Mul returns x * y.
//
// Backward: ∂z/∂x = y, ∂z/∂y = x.
func (x Var) Mul(y Var) Var {
	xv, yv := x.Value(), y.Value()
	return binary(x, y, xv*yv, yv, xv)
}

// Div returns x / y.
//
// Backward: ∂z/∂x = 1/y, ∂z/∂y = -x/y².
//
// A zero denominator yields ±Inf or NaN; no error is raised.
func (x Var) Div(y Var) Var {
	xv, yv := x.Value(), y.Value()
	return binary(x, y, xv/yv, 1/yv, -xv/(yv*yv))
}

// AddScalar returns x + c. The constant c gets no graph edge.
func (x Var) AddScalar(c float64) Var {
	return unary(x, x.Value()+c, 1)
}

// SubScalar returns x - c.
func (x Var) SubScalar(c float64) Var {
	return unary(x, x.Value()-c, 1)
}

// MulScalar returns x * c.
func (x Var) MulScalar(c float64) Var {
	return unary(x, x.Value()*c, c)
}

// DivScalar returns x / c.
func (x Var) DivScalar(c float64) Var {
	return unary(x, x.Value()/c, 1/c)
}

// Neg returns -x.
func (x Var) Neg() Var {
	return unary(x, -x.Value(), -1)
}

// Pow returns x raised to the integer power p.
//
// Backward: ∂z/∂x = p·x^(p-1).
func (x Var) Pow(p int) Var {
	xv := x.Value()
	if p == 0 {
		return unary(x, 1, 0)
	}
	return unary(x, math.Pow(xv, float64(p)), float64(p)*math.Pow(xv, float64(p-1)))
}

// Sum returns the sum of vs as a left-folded chain of Add, starting from a
// constant zero leaf. Sum of no arguments is that zero leaf.
func Sum(vs ...Var) Var {
	total := New(0)
	for _, v := range vs {
		total = total.Add(v)
	}
	return total
}
