package autodiff

// edge links a result node to one of its operands.
type edge struct {
	partial float64 // ∂result/∂operand, evaluated when the edge was created
	n       *node   // operand
}

// node is a vertex of the computation graph.
//
// A node stays alive as long as a Var handle or a downstream edge points at
// it, so temporaries created inside an expression remain reachable for the
// backward pass after the expression's local variables are gone.
type node struct {
	value    float64
	grad     float64
	pending  int    // downstream edges not yet propagated through this node
	operands []edge // nodes this one was computed from
}

// link records operand as an input of n with the given partial derivative.
func (n *node) link(partial float64, operand *node) {
	n.operands = append(n.operands, edge{partial: partial, n: operand})
	operand.pending++
}

// unary builds the result of a one-operand operation.
func unary(x Var, value, dx float64) Var {
	xn := x.node()
	z := New(value)
	z.n.link(dx, xn)
	return z
}

// binary builds the result of a two-operand operation.
func binary(x, y Var, value, dx, dy float64) Var {
	xn, yn := x.node(), y.node()
	z := New(value)
	z.n.link(dx, xn)
	z.n.link(dy, yn)
	return z
}
