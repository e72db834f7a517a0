// Copyright 2025 The automatic-differentiation Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/RishabSA/automatic-differentiation/internal/nn"
	"github.com/RishabSA/automatic-differentiation/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// Network is the view of a model that SGD needs.
type Network = optim.Network

// SGD (gradient descent)

// SGD represents the plain gradient descent optimizer.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer over the trainable layers of network.
//
// Example:
//
//	model := nn.NewSequential(nn.NewLinear(1, 1))
//	optimizer := optim.NewSGD(model, optim.SGDConfig{LR: 0.01})
func NewSGD(network Network, config SGDConfig) *SGD {
	return optim.NewSGD(network, config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	model := nn.NewSequential(nn.NewLinear(4, 1))
//	optimizer := optim.NewAdam(
//	    model.Parameters(),
//	    optim.AdamConfig{
//	        LR:    0.001,
//	        Betas: [2]float64{0.9, 0.999},
//	        Eps:   1e-8,
//	    },
//	)
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}
