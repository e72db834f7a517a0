// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// Every Var is a handle to a node in a dynamically built computation graph.
// Operations on Vars allocate a new node and record, for each operand, the
// partial derivative of the result with respect to that operand. Backward then
// sweeps the graph from an output node and accumulates gradients into every
// node that contributed to it.
//
// Architecture:
//   - node: value, accumulated gradient, pending-dependents counter, operand edges
//   - Var: value-type handle sharing a node; copies observe the same value and gradient
//   - Operations: partial derivatives are evaluated eagerly at construction time
//   - Backward: reverse-topological sweep gated on per-node dependent counts
//
// Usage:
//
//	x := autodiff.New(3.0)
//	y := x.Mul(x).AddScalar(1) // y = x² + 1
//
//	y.SetGrad(1.0)
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = 6.0
//
// The graph is meant to be rebuilt on every forward pass. Leaf parameters that
// survive between iterations must be reset with ResetGradAndParents before the
// next forward pass, otherwise stale edges and counters leak into it.
package autodiff

import (
	"fmt"
	"math"
)

// Var is a differentiable scalar value.
//
// Var is a lightweight handle; copying it does not copy the underlying node.
// Two copies of the same Var observe the same value and gradient.
//
// The zero Var has no node and panics on use. Construct Vars with New or
// as the result of an operation.
type Var struct {
	n *node
}

// New creates a leaf Var holding value, with no operands and zero gradient.
func New(value float64) Var {
	return Var{n: &node{value: value}}
}

// node returns the underlying node, panicking on the zero Var.
func (v Var) node() *node {
	if v.n == nil {
		panic("autodiff: use of zero Var (construct with autodiff.New)")
	}
	return v.n
}

// Valid reports whether v refers to a node.
func (v Var) Valid() bool {
	return v.n != nil
}

// Value returns the current value.
func (v Var) Value() float64 {
	return v.node().value
}

// SetValue overwrites the value in place.
//
// The write is not recorded in the graph. Optimizers use it to update
// parameters without making the update itself differentiable.
func (v Var) SetValue(value float64) {
	v.node().value = value
}

// Grad returns the accumulated gradient.
func (v Var) Grad() float64 {
	return v.node().grad
}

// SetGrad overwrites the accumulated gradient.
//
// Backward expects the output's gradient to be seeded, conventionally with 1.0.
func (v Var) SetGrad(grad float64) {
	v.node().grad = grad
}

// PendingDependents returns the number of downstream edges that still have
// to propagate through this Var.
func (v Var) PendingDependents() int {
	return v.node().pending
}

// NumOperands returns the number of operand edges recorded on this Var.
func (v Var) NumOperands() int {
	return len(v.node().operands)
}

// Same reports whether v and other share the same node.
func (v Var) Same(other Var) bool {
	return v.n != nil && v.n == other.n
}

// ResetGradAndParents clears the gradient, the pending-dependents counter and
// all operand edges, detaching v from the graph it was built in.
//
// Call it on every leaf parameter before each forward pass.
func (v Var) ResetGradAndParents() {
	n := v.node()
	n.grad = 0
	n.pending = 0
	n.operands = nil
}

// IsFinite reports whether the value is neither NaN nor infinite.
//
// Operations never validate their domain (log of a negative number yields NaN,
// division by zero yields Inf). Callers that want strict checking can test
// results with IsFinite.
func (v Var) IsFinite() bool {
	value := v.Value()
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// String implements fmt.Stringer.
func (v Var) String() string {
	if v.n == nil {
		return "Var(<nil>)"
	}
	return fmt.Sprintf("Var(val=%g, grad=%g)", v.n.value, v.n.grad)
}
