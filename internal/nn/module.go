// Package nn implements neural network layers on top of the scalar autodiff engine.
//
// This package provides building blocks for constructing neural networks:
//   - Layer interface: capability set shared by every layer
//   - Parameter: named trainable matrix
//   - Linear: fully connected layer
//   - Activations: ReLU, LeakyReLU, Sigmoid, Tanh, SiLU, ELU, Softmax
//   - Loss functions: MSE, MAE, BCE, cross-entropy
//   - Sequential: ordered container of layers
//   - Checkpoint: saving and restoring trained weights
//
// Layers never implement backward rules of their own. Their forward passes
// are built from autodiff.Var operations, so calling Backward on a loss
// fills in the gradient of every parameter element.
package nn

import (
	"github.com/RishabSA/automatic-differentiation/internal/matrix"
)

// Layer is the interface implemented by every network layer.
//
// Layers can be composed to build networks:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(4, 16),
//	    nn.NewReLU(),
//	    nn.NewLinear(16, 1),
//	)
type Layer interface {
	// Forward computes the output of the layer, building a fresh graph.
	//
	// Returns an error wrapping matrix.ErrDimensionMismatch when the input
	// shape is incompatible with the layer.
	Forward(input *matrix.Matrix) (*matrix.Matrix, error)

	// ResetGrad clears gradients and graph edges on the layer's parameters.
	// It must run before each forward pass. No-op for stateless layers.
	ResetGrad()

	// OptimizeWeights applies one gradient descent step with learning rate lr,
	// writing parameter values directly. No-op for stateless layers.
	OptimizeWeights(lr float64)

	// Trainable reports whether the layer owns parameters.
	Trainable() bool
}

// ParameterOwner is implemented by layers that expose their parameters.
type ParameterOwner interface {
	Parameters() []*Parameter
}
