package nn

import (
	"github.com/RishabSA/automatic-differentiation/internal/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Parameter represents a trainable matrix in a neural network.
//
// Gradients are not stored on the Parameter itself: they live in the element
// nodes of the matrix and are read after Backward.
//
// Example:
//
//	weight := nn.NewParameter("weight", matrix.New(3, 2))
//	// ... forward, loss.Backward() ...
//	fmt.Println(weight.Grad())
type Parameter struct {
	name   string
	matrix *matrix.Matrix
}

// NewParameter creates a new named parameter around m.
func NewParameter(name string, m *matrix.Matrix) *Parameter {
	return &Parameter{name: name, matrix: m}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Matrix returns the parameter matrix.
func (p *Parameter) Matrix() *matrix.Matrix {
	return p.matrix
}

// Grad returns a snapshot of the accumulated gradient.
func (p *Parameter) Grad() *mat.Dense {
	return p.matrix.Grads()
}

// ZeroGrad clears gradients and graph edges on every element.
//
// This should be called before each forward pass, since the graph is rebuilt
// on every iteration.
func (p *Parameter) ZeroGrad() {
	p.matrix.ResetGradAndParents()
}

// Step applies param -= lr * grad to every element in place.
// The update is not recorded in the graph.
func (p *Parameter) Step(lr float64) {
	for _, v := range p.matrix.Elements() {
		v.SetValue(v.Value() - lr*v.Grad())
	}
}

// GradNorm returns the L2 norm of the gradients of all params taken together.
func GradNorm(params []*Parameter) float64 {
	var grads []float64
	for _, p := range params {
		for _, v := range p.matrix.Elements() {
			grads = append(grads, v.Grad())
		}
	}
	if len(grads) == 0 {
		return 0
	}
	return floats.Norm(grads, 2)
}
