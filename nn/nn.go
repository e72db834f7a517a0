// Copyright 2025 The automatic-differentiation Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"io"
	"math/rand"

	"github.com/RishabSA/automatic-differentiation/internal/matrix"
	"github.com/RishabSA/automatic-differentiation/internal/nn"
)

// Layer is the interface implemented by every network layer.
type Layer = nn.Layer

// ParameterOwner is implemented by layers that expose their parameters.
type ParameterOwner = nn.ParameterOwner

// Parameter represents a trainable parameter in a neural network.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and matrix.
func NewParameter(name string, m *matrix.Matrix) *Parameter {
	return nn.NewParameter(name, m)
}

// GradNorm returns the L2 norm of all parameter gradients taken together.
func GradNorm(params []*Parameter) float64 {
	return nn.GradNorm(params)
}

// Layers

// Linear represents a fully connected (dense) layer.
type Linear = nn.Linear

// LinearConfig holds optional initialization settings for Linear.
type LinearConfig = nn.LinearConfig

// NewLinear creates a new linear layer with weights from U(-0.01, 0.01).
//
// Example:
//
//	layer := nn.NewLinear(784, 128)
func NewLinear(inFeatures, outFeatures int) *Linear {
	return nn.NewLinear(inFeatures, outFeatures)
}

// NewLinearWithConfig creates a new linear layer with custom initialization.
//
// Example:
//
//	layer := nn.NewLinearWithConfig(1, 1, nn.LinearConfig{
//	    Rand: rand.New(rand.NewSource(42)),
//	})
func NewLinearWithConfig(inFeatures, outFeatures int, config LinearConfig) *Linear {
	return nn.NewLinearWithConfig(inFeatures, outFeatures, config)
}

// Activations

// ReLU represents a Rectified Linear Unit activation.
type ReLU = nn.ReLU

// NewReLU creates a new ReLU activation.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// LeakyReLU represents a leaky ReLU activation.
type LeakyReLU = nn.LeakyReLU

// NewLeakyReLU creates a new LeakyReLU activation. Zero alpha selects 0.01.
func NewLeakyReLU(alpha float64) *LeakyReLU {
	return nn.NewLeakyReLU(alpha)
}

// Sigmoid represents a sigmoid activation.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a new Sigmoid activation.
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// Tanh represents a hyperbolic tangent activation.
type Tanh = nn.Tanh

// NewTanh creates a new Tanh activation.
func NewTanh() *Tanh {
	return nn.NewTanh()
}

// SiLU represents a SiLU (swish) activation.
type SiLU = nn.SiLU

// NewSiLU creates a new SiLU activation.
func NewSiLU() *SiLU {
	return nn.NewSiLU()
}

// ELU represents an exponential linear unit activation.
type ELU = nn.ELU

// NewELU creates a new ELU activation. Zero alpha selects 1.
func NewELU(alpha float64) *ELU {
	return nn.NewELU(alpha)
}

// Softmax represents a row-wise softmax.
type Softmax = nn.Softmax

// NewSoftmax creates a new Softmax layer.
func NewSoftmax() *Softmax {
	return nn.NewSoftmax()
}

// Containers

// Sequential represents a sequential container of layers.
type Sequential = nn.Sequential

// NewSequential creates a new sequential container.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10),
//	)
func NewSequential(layers ...Layer) *Sequential {
	return nn.NewSequential(layers...)
}

// Loss Functions

// Loss reduces labels and predictions to a scalar.
type Loss = nn.Loss

// MSELoss represents Mean Squared Error loss.
type MSELoss = nn.MSELoss

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// MAELoss represents Mean Absolute Error loss.
type MAELoss = nn.MAELoss

// NewMAELoss creates a new MAE loss function.
func NewMAELoss() *MAELoss {
	return nn.NewMAELoss()
}

// BCELoss represents Binary Cross-Entropy loss.
type BCELoss = nn.BCELoss

// NewBCELoss creates a new BCE loss function. Zero eps selects 1e-7.
func NewBCELoss(eps float64) *BCELoss {
	return nn.NewBCELoss(eps)
}

// CrossEntropyLoss represents softmax cross-entropy over raw logits.
type CrossEntropyLoss = nn.CrossEntropyLoss

// NewCrossEntropyLoss creates a new cross-entropy loss function.
func NewCrossEntropyLoss() *CrossEntropyLoss {
	return nn.NewCrossEntropyLoss()
}

// Initialization

// Uniform creates a rows×cols matrix with values from U(-bound, bound).
func Uniform(rows, cols int, bound float64, r *rand.Rand) *matrix.Matrix {
	return nn.Uniform(rows, cols, bound, r)
}

// Zeros creates a rows×cols matrix of zeros.
func Zeros(rows, cols int) *matrix.Matrix {
	return nn.Zeros(rows, cols)
}

// Checkpoints

// Checkpoint represents a training state snapshot of a Sequential network.
type Checkpoint = nn.Checkpoint

// LoadCheckpoint loads a checkpoint from the file at path into model.
//
// Example:
//
//	model := nn.NewSequential(nn.NewLinear(1, 1))
//	checkpoint, err := nn.LoadCheckpoint("linreg.adgr", model)
func LoadCheckpoint(path string, model *Sequential) (*Checkpoint, error) {
	return nn.LoadCheckpoint(path, model)
}

// DecodeCheckpoint reads a checkpoint from r into model.
func DecodeCheckpoint(r io.Reader, model *Sequential) (*Checkpoint, error) {
	return nn.DecodeCheckpoint(r, model)
}
