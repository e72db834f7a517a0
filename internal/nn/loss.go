package nn

import (
	"fmt"

	"github.com/RishabSA/automatic-differentiation/internal/autodiff"
	"github.com/RishabSA/automatic-differentiation/internal/matrix"
)

// DefaultBCEEpsilon keeps log arguments away from zero in BCELoss.
const DefaultBCEEpsilon = 1e-7

// Loss reduces labels and predictions of equal shape to a scalar.
type Loss interface {
	Forward(labels, preds *matrix.Matrix) (autodiff.Var, error)
}

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((labels - preds)²)
//
// MSE is commonly used for regression tasks where the goal is to predict
// continuous values.
//
// Example:
//
//	mse := nn.NewMSELoss()
//	preds, _ := model.Forward(input)
//	loss, err := mse.Forward(labels, preds)
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward computes the MSE loss.
//
// Returns an error wrapping matrix.ErrDimensionMismatch if shapes differ.
func (m *MSELoss) Forward(labels, preds *matrix.Matrix) (autodiff.Var, error) {
	return reduceMean("MSELoss", labels, preds, func(y, p autodiff.Var) autodiff.Var {
		return y.Sub(p).Pow(2)
	})
}

// MAELoss computes Mean Absolute Error loss.
//
// Loss = mean(|labels - preds|)
type MAELoss struct{}

// NewMAELoss creates a new MAE loss function.
func NewMAELoss() *MAELoss {
	return &MAELoss{}
}

// Forward computes the MAE loss.
func (m *MAELoss) Forward(labels, preds *matrix.Matrix) (autodiff.Var, error) {
	return reduceMean("MAELoss", labels, preds, func(y, p autodiff.Var) autodiff.Var {
		return y.Sub(p).Abs()
	})
}

// BCELoss computes Binary Cross-Entropy loss.
//
// Loss = -mean(y·log(p + ε) + (1 - y)·log(1 - p + ε))
//
// Predictions are expected in (0, 1), typically from a Sigmoid layer.
type BCELoss struct {
	Eps float64 // Added inside both logarithms (default: 1e-7)
}

// NewBCELoss creates a BCE loss function. A zero eps selects DefaultBCEEpsilon.
func NewBCELoss(eps float64) *BCELoss {
	if eps == 0 {
		eps = DefaultBCEEpsilon
	}
	return &BCELoss{Eps: eps}
}

// Forward computes the BCE loss.
func (b *BCELoss) Forward(labels, preds *matrix.Matrix) (autodiff.Var, error) {
	eps := b.Eps
	return reduceMean("BCELoss", labels, preds, func(y, p autodiff.Var) autodiff.Var {
		logP := p.AddScalar(eps).Log()
		logOneMinusP := autodiff.New(1).Sub(p).AddScalar(eps).Log()

		term1 := y.Mul(logP)
		term2 := autodiff.New(1).Sub(y).Mul(logOneMinusP)
		return term1.Add(term2).Neg()
	})
}

// reduceMean sums f(label, pred) over all elements and divides by the count.
func reduceMean(name string, labels, preds *matrix.Matrix, f func(y, p autodiff.Var) autodiff.Var) (autodiff.Var, error) {
	if !labels.SameShape(preds) {
		return autodiff.Var{}, fmt.Errorf("%s: labels (%d, %d) and predictions (%d, %d): %w",
			name, labels.Rows(), labels.Cols(), preds.Rows(), preds.Cols(), matrix.ErrDimensionMismatch)
	}

	ys, ps := labels.Elements(), preds.Elements()
	loss := autodiff.New(0)
	for i := range ys {
		loss = loss.Add(f(ys[i], ps[i]))
	}

	return loss.DivScalar(float64(len(ys))), nil
}
