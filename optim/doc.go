// Copyright 2025 The automatic-differentiation Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent applied layer by layer
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/RishabSA/automatic-differentiation/nn"
//	    "github.com/RishabSA/automatic-differentiation/optim"
//	)
//
//	func main() {
//	    model := nn.NewSequential(nn.NewLinear(1, 1))
//	    criterion := nn.NewMSELoss()
//
//	    optimizer := optim.NewSGD(model, optim.SGDConfig{LR: 0.01})
//
//	    for epoch := range 1000 {
//	        // 1. Drop the previous graph and gradients
//	        optimizer.ZeroGrad()
//
//	        // 2. Forward pass
//	        preds, _ := model.Forward(x)
//	        loss, _ := criterion.Forward(y, preds)
//
//	        // 3. Backward pass
//	        loss.SetGrad(1)
//	        loss.Backward()
//
//	        // 4. Update parameters
//	        optimizer.Step()
//	    }
//	}
//
// # Optimizers
//
// SGD takes the network and lets every trainable layer update itself:
//
//	optimizer := optim.NewSGD(model, optim.SGDConfig{LR: 0.01})
//
// Adam takes a parameter list and keeps moment estimates per element:
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.001})
package optim
