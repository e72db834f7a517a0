package optim

import (
	"github.com/RishabSA/automatic-differentiation/internal/nn"
)

// Network is the view of a model the SGD optimizer needs.
type Network interface {
	Layers() []nn.Layer
}

// SGD implements plain gradient descent over a network's trainable layers.
//
// Update rule, applied by each trainable layer to its own parameters:
//
//	param = param - lr * gradient
//
// Example:
//
//	optimizer := optim.NewSGD(model, optim.SGDConfig{LR: 0.01})
//
//	for epoch := range epochs {
//	    optimizer.ZeroGrad()
//	    loss := trainStep(model, batch)
//	    loss.SetGrad(1)
//	    loss.Backward()
//	    optimizer.Step()
//	}
type SGD struct {
	network Network
	lr      float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer for network.
func NewSGD(network Network, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		network: network,
		lr:      config.LR,
	}
}

// Step asks every trainable layer to apply param -= lr * grad.
func (s *SGD) Step() {
	for _, layer := range s.network.Layers() {
		if layer.Trainable() {
			layer.OptimizeWeights(s.lr)
		}
	}
}

// ZeroGrad resets gradients and the old graph on every trainable layer.
func (s *SGD) ZeroGrad() {
	for _, layer := range s.network.Layers() {
		if layer.Trainable() {
			layer.ResetGrad()
		}
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
