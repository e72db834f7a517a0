package autodiff

import "math"

// Sin returns sin(x). ∂z/∂x = cos(x).
func (x Var) Sin() Var {
	xv := x.Value()
	return unary(x, math.Sin(xv), math.Cos(xv))
}

// Cos returns cos(x). ∂z/∂x = -sin(x).
func (x Var) Cos() Var {
	xv := x.Value()
	return unary(x, math.Cos(xv), -math.Sin(xv))
}

// Tan returns tan(x). ∂z/∂x = sec²(x).
func (x Var) Tan() Var {
	xv := x.Value()
	sec := 1 / math.Cos(xv)
	return unary(x, math.Tan(xv), sec*sec)
}

// Sec returns sec(x) = 1/cos(x). ∂z/∂x = sec(x)·tan(x).
func (x Var) Sec() Var {
	xv := x.Value()
	sec := 1 / math.Cos(xv)
	return unary(x, sec, sec*math.Tan(xv))
}

// Csc returns csc(x) = 1/sin(x). ∂z/∂x = -csc(x)·cot(x).
func (x Var) Csc() Var {
	xv := x.Value()
	csc := 1 / math.Sin(xv)
	return unary(x, csc, -csc/math.Tan(xv))
}

// Cot returns cot(x) = 1/tan(x). ∂z/∂x = -csc²(x).
func (x Var) Cot() Var {
	xv := x.Value()
	csc := 1 / math.Sin(xv)
	return unary(x, 1/math.Tan(xv), -csc*csc)
}
