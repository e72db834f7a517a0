// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: gradient descent over the trainable layers of a network
//   - Adam: Adaptive Moment Estimation over a parameter list
//
// Optimizers read gradients straight off the parameter nodes and write the
// updated values back in place. The update is not part of the computation
// graph and is never differentiated.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model, optim.SGDConfig{LR: 0.001})
//
//	for epoch := range epochs {
//	    optimizer.ZeroGrad()
//
//	    preds, _ := model.Forward(x)
//	    loss, _ := lossFunc.Forward(y, preds)
//
//	    loss.SetGrad(1)
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Reset gradients and graph state before the next forward pass
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies gradient updates to all parameters.
	//
	// Gradients must already have been accumulated by Backward.
	Step()

	// ZeroGrad resets gradients and graph edges on all parameters.
	//
	// This must be called before each forward pass, since the graph is
	// rebuilt on every iteration and stale edges would corrupt the next
	// backward sweep.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}
