package nn

import (
	"math"

	"github.com/RishabSA/automatic-differentiation/internal/autodiff"
	"github.com/RishabSA/automatic-differentiation/internal/matrix"
)

// Default slopes for the parameterized activations.
const (
	DefaultLeakyReLUAlpha = 0.01
	DefaultELUAlpha       = 1.0
)

// stateless provides the no-op half of Layer for activations.
type stateless struct{}

// ResetGrad is a no-op: activations own no parameters.
func (stateless) ResetGrad() {}

// OptimizeWeights is a no-op: activations own no parameters.
func (stateless) OptimizeWeights(float64) {}

// Trainable returns false.
func (stateless) Trainable() bool { return false }

// ReLU is a Rectified Linear Unit activation layer.
//
// Applies the element-wise function: f(x) = max(0, x)
type ReLU struct{ stateless }

// NewReLU creates a new ReLU activation layer.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU to every element.
func (r *ReLU) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	return input.Apply(autodiff.Var.ReLU), nil
}

// LeakyReLU applies f(x) = x for x > 0 and Alpha·x otherwise.
type LeakyReLU struct {
	stateless
	Alpha float64
}

// NewLeakyReLU creates a LeakyReLU layer. A zero alpha selects DefaultLeakyReLUAlpha.
func NewLeakyReLU(alpha float64) *LeakyReLU {
	if alpha == 0 {
		alpha = DefaultLeakyReLUAlpha
	}
	return &LeakyReLU{Alpha: alpha}
}

// Forward applies LeakyReLU to every element.
func (r *LeakyReLU) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	return input.Apply(func(v autodiff.Var) autodiff.Var { return v.LeakyReLU(r.Alpha) }), nil
}

// Sigmoid is a sigmoid activation layer.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
//
// Sigmoid squashes values to the range (0, 1), which makes it the usual
// output layer in front of BCELoss.
type Sigmoid struct{ stateless }

// NewSigmoid creates a new Sigmoid activation layer.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies Sigmoid to every element.
func (s *Sigmoid) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	return input.Apply(autodiff.Var.Sigmoid), nil
}

// Tanh is a hyperbolic tangent activation layer.
type Tanh struct{ stateless }

// NewTanh creates a new Tanh activation layer.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Forward applies Tanh to every element.
func (t *Tanh) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	return input.Apply(autodiff.Var.Tanh), nil
}

// SiLU (Swish) activation layer: f(x) = x·σ(x).
type SiLU struct{ stateless }

// NewSiLU creates a new SiLU activation layer.
func NewSiLU() *SiLU {
	return &SiLU{}
}

// Forward applies SiLU to every element.
func (s *SiLU) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	return input.Apply(autodiff.Var.SiLU), nil
}

// ELU applies f(x) = x for x > 0 and Alpha·(exp(x) - 1) otherwise.
type ELU struct {
	stateless
	Alpha float64
}

// NewELU creates an ELU layer. A zero alpha selects DefaultELUAlpha.
func NewELU(alpha float64) *ELU {
	if alpha == 0 {
		alpha = DefaultELUAlpha
	}
	return &ELU{Alpha: alpha}
}

// Forward applies ELU to every element.
func (e *ELU) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	return input.Apply(func(v autodiff.Var) autodiff.Var { return v.ELU(e.Alpha) }), nil
}

// Softmax normalizes every row into a probability distribution.
//
// For each row:
//
//	softmax(x)_i = exp(x_i - max(x)) / Σ_j exp(x_j - max(x))
//
// The row maximum is subtracted as a constant. Softmax is invariant to that
// shift, so gradients are unchanged while exp cannot overflow.
type Softmax struct{ stateless }

// NewSoftmax creates a new Softmax layer.
func NewSoftmax() *Softmax {
	return &Softmax{}
}

// Forward applies Softmax row by row.
func (s *Softmax) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	rows, cols := input.Shape()
	out := make([]autodiff.Var, 0, rows*cols)

	exps := make([]autodiff.Var, cols)
	for i := 0; i < rows; i++ {
		maxVal := math.Inf(-1)
		for j := 0; j < cols; j++ {
			maxVal = math.Max(maxVal, input.At(i, j).Value())
		}

		for j := 0; j < cols; j++ {
			exps[j] = input.At(i, j).SubScalar(maxVal).Exp()
		}
		sum := autodiff.Sum(exps...)

		for j := 0; j < cols; j++ {
			out = append(out, exps[j].Div(sum))
		}
	}
	return matrix.FromVars(rows, cols, out)
}
