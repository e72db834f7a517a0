package main

import (
	"fmt"
	"math/rand"

	"github.com/RishabSA/automatic-differentiation/internal/matrix"
	"github.com/RishabSA/automatic-differentiation/internal/nn"
	"github.com/RishabSA/automatic-differentiation/internal/optim"
)

type linregConfig struct {
	Epochs int
	LR     float64
	Seed   int64
}

type linregResult struct {
	Model  *nn.Sequential
	Weight float64
	Bias   float64
	Loss   float64
}

// linregData returns x = 0..9 and y = 5x + 3 as column matrices.
func linregData() (x, y *matrix.Matrix, err error) {
	xs := make([]float64, 10)
	ys := make([]float64, 10)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = 5*xs[i] + 3
	}

	if x, err = matrix.FromSlice(len(xs), 1, xs); err != nil {
		return nil, nil, err
	}
	if y, err = matrix.FromSlice(len(ys), 1, ys); err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// trainLinreg runs full-batch SGD on a single Linear layer. progress, if
// non-nil, is called after every epoch.
func trainLinreg(cfg linregConfig, progress func(epoch int, loss float64)) (linregResult, error) {
	x, y, err := linregData()
	if err != nil {
		return linregResult{}, err
	}

	layer := nn.NewLinearWithConfig(1, 1, nn.LinearConfig{Rand: rand.New(rand.NewSource(cfg.Seed))})
	model := nn.NewSequential(layer)
	criterion := nn.NewMSELoss()
	optimizer := optim.NewSGD(model, optim.SGDConfig{LR: cfg.LR})

	var loss float64
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		optimizer.ZeroGrad()

		preds, err := model.Forward(x)
		if err != nil {
			return linregResult{}, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		l, err := criterion.Forward(y, preds)
		if err != nil {
			return linregResult{}, fmt.Errorf("epoch %d: %w", epoch, err)
		}

		l.SetGrad(1)
		l.Backward()
		optimizer.Step()

		loss = l.Value()
		if progress != nil {
			progress(epoch, loss)
		}
	}

	return linregResult{
		Model:  model,
		Weight: layer.Weight().Matrix().At(0, 0).Value(),
		Bias:   layer.Bias().Matrix().At(0, 0).Value(),
		Loss:   loss,
	}, nil
}
