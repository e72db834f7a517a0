package optim_test

import (
	"math/rand"
	"testing"

	"github.com/RishabSA/automatic-differentiation/internal/autodiff"
	"github.com/RishabSA/automatic-differentiation/internal/matrix"
	"github.com/RishabSA/automatic-differentiation/internal/nn"
	"github.com/RishabSA/automatic-differentiation/internal/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time interface checks.
var (
	_ optim.Optimizer = (*optim.SGD)(nil)
	_ optim.Optimizer = (*optim.Adam)(nil)
	_ optim.Network   = (*nn.Sequential)(nil)
)

// singleLinear builds a 1→1 network with w = 1 and b = 0.
func singleLinear() (*nn.Sequential, *nn.Linear) {
	layer := nn.NewLinear(1, 1)
	layer.Weight().Matrix().At(0, 0).SetValue(1)
	return nn.NewSequential(layer, nn.NewReLU()), layer
}

// TestSGD_SimpleUpdate tests basic SGD parameter update.
func TestSGD_SimpleUpdate(t *testing.T) {
	model, layer := singleLinear()
	w := layer.Weight().Matrix().At(0, 0)
	b := layer.Bias().Matrix().At(0, 0)
	w.SetGrad(0.5)
	b.SetGrad(-1)

	sgd := optim.NewSGD(model, optim.SGDConfig{LR: 0.1})
	sgd.Step()

	// w = 1 - 0.1*0.5, b = 0 - 0.1*(-1)
	assert.InDelta(t, 0.95, w.Value(), 1e-12)
	assert.InDelta(t, 0.1, b.Value(), 1e-12)
}

// TestSGD_ZeroGrad tests that ZeroGrad clears gradients.
func TestSGD_ZeroGrad(t *testing.T) {
	model, layer := singleLinear()
	w := layer.Weight().Matrix().At(0, 0)
	w.SetGrad(3)

	sgd := optim.NewSGD(model, optim.SGDConfig{})
	sgd.ZeroGrad()

	assert.Equal(t, 0.0, w.Grad())

	sgd.Step()
	assert.Equal(t, 1.0, w.Value(), "zero gradient must leave weights unchanged")
}

// TestSGD_GetSetLR tests learning rate getter and setter.
func TestSGD_GetSetLR(t *testing.T) {
	model, _ := singleLinear()

	sgd := optim.NewSGD(model, optim.SGDConfig{})
	assert.Equal(t, 0.01, sgd.GetLR())

	sgd.SetLR(0.5)
	assert.Equal(t, 0.5, sgd.GetLR())
}

// TestConvergence_LinearRegression fits y = 5x + 3 with one Linear layer.
func TestConvergence_LinearRegression(t *testing.T) {
	xs := make([]float64, 10)
	ys := make([]float64, 10)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = 5*xs[i] + 3
	}
	x, err := matrix.FromSlice(10, 1, xs)
	require.NoError(t, err)
	y, err := matrix.FromSlice(10, 1, ys)
	require.NoError(t, err)

	layer := nn.NewLinearWithConfig(1, 1, nn.LinearConfig{Rand: rand.New(rand.NewSource(42))})
	model := nn.NewSequential(layer)
	mse := nn.NewMSELoss()
	sgd := optim.NewSGD(model, optim.SGDConfig{LR: 0.01})

	var loss autodiff.Var
	for epoch := 0; epoch < 1000; epoch++ {
		sgd.ZeroGrad()

		preds, err := model.Forward(x)
		require.NoError(t, err)
		loss, err = mse.Forward(y, preds)
		require.NoError(t, err)

		loss.SetGrad(1)
		loss.Backward()
		sgd.Step()
	}

	w := layer.Weight().Matrix().At(0, 0).Value()
	b := layer.Bias().Matrix().At(0, 0).Value()
	assert.InEpsilon(t, 5.0, w, 0.02)
	assert.InEpsilon(t, 3.0, b, 0.02)
	assert.Less(t, loss.Value(), 1e-3)
}

// TestAdam_SimpleUpdate tests the first Adam step.
func TestAdam_SimpleUpdate(t *testing.T) {
	_, layer := singleLinear()
	w := layer.Weight().Matrix().At(0, 0)
	w.SetGrad(2)

	adam := optim.NewAdam(layer.Parameters(), optim.AdamConfig{LR: 0.1})
	assert.Equal(t, 0.1, adam.GetLR())
	adam.Step()

	// After bias correction the first step is lr * sign(grad).
	assert.InDelta(t, 0.9, w.Value(), 1e-6)
	assert.Equal(t, 0.0, layer.Bias().Matrix().At(0, 0).Value(), "zero gradient must not move bias")
}

// TestAdam_BiasCorrection tests that a constant gradient gives constant steps.
func TestAdam_BiasCorrection(t *testing.T) {
	_, layer := singleLinear()
	w := layer.Weight().Matrix().At(0, 0)

	adam := optim.NewAdam(layer.Parameters(), optim.AdamConfig{LR: 0.01})
	prev := w.Value()
	for i := 0; i < 5; i++ {
		w.SetGrad(-3)
		adam.Step()
		assert.InDelta(t, 0.01, w.Value()-prev, 1e-6, "step %d", i)
		prev = w.Value()
	}
}

// TestAdam_ZeroGrad tests that ZeroGrad clears gradients.
func TestAdam_ZeroGrad(t *testing.T) {
	_, layer := singleLinear()
	layer.Bias().Matrix().At(0, 0).SetGrad(4)

	adam := optim.NewAdam(layer.Parameters(), optim.AdamConfig{})
	adam.ZeroGrad()

	assert.Equal(t, 0.0, nn.GradNorm(layer.Parameters()))

	adam.SetLR(0.2)
	assert.Equal(t, 0.2, adam.GetLR())
}

// TestConvergence_SimpleQuadratic minimizes (w - 3)² with Adam.
func TestConvergence_SimpleQuadratic(t *testing.T) {
	w := nn.NewParameter("w", matrix.New(1, 1))
	adam := optim.NewAdam([]*nn.Parameter{w}, optim.AdamConfig{LR: 0.1})

	for i := 0; i < 500; i++ {
		adam.ZeroGrad()
		loss := w.Matrix().At(0, 0).SubScalar(3).Pow(2)
		loss.SetGrad(1)
		loss.Backward()
		adam.Step()
	}

	assert.InDelta(t, 3.0, w.Matrix().At(0, 0).Value(), 0.1)
}
