// Copyright 2025 The automatic-differentiation Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers and building blocks.
//
// # Overview
//
// This package contains:
//   - Layers: Linear
//   - Activations: ReLU, LeakyReLU, Sigmoid, Tanh, SiLU, ELU, Softmax
//   - Loss functions: MSELoss, MAELoss, BCELoss, CrossEntropyLoss
//   - Utilities: Sequential, Layer interface, Parameter, Checkpoint
//   - Initialization: Uniform, Zeros
//
// # Basic Usage
//
//	import "github.com/RishabSA/automatic-differentiation/nn"
//
//	func main() {
//	    model := nn.NewSequential(
//	        nn.NewLinear(2, 8),
//	        nn.NewTanh(),
//	        nn.NewLinear(8, 1),
//	        nn.NewSigmoid(),
//	    )
//
//	    output, err := model.Forward(input)
//	}
//
// # Layers
//
// Linear: fully connected layer, y = x @ W + b
//
//	layer := nn.NewLinear(inFeatures, outFeatures)
//
// Activations apply element-wise, except Softmax which normalizes each row:
//
//	relu := nn.NewReLU()
//	leaky := nn.NewLeakyReLU(0.1)
//	softmax := nn.NewSoftmax()
//
// # Loss Functions
//
// Losses reduce labels and predictions of the same shape to one scalar Var:
//
//	criterion := nn.NewMSELoss()
//	loss, err := criterion.Forward(labels, preds)
//	loss.SetGrad(1)
//	loss.Backward()
//
// # Saving Weights
//
// StateDict returns parameter values as gonum matrices keyed by layer index
// and name; LoadStateDict writes them back:
//
//	state := model.StateDict() // {"0.weight": ..., "0.bias": ...}
//	err := other.LoadStateDict(state)
//
// Checkpoint bundles a model with its training state in a single file:
//
//	ckpt := &nn.Checkpoint{Model: model, Epoch: 100, Loss: 0.01, LR: 0.01}
//	err := ckpt.Save("model.adgr")
//	loaded, err := nn.LoadCheckpoint("model.adgr", other)
package nn
