package nn

import (
	"fmt"
	"math"

	"github.com/RishabSA/automatic-differentiation/internal/autodiff"
	"github.com/RishabSA/automatic-differentiation/internal/matrix"
)

// CrossEntropyLoss computes cross-entropy loss for multi-class classification.
//
// Uses the LogSoftmax + NLL decomposition with the log-sum-exp trick:
//
//	log_probs = logits - (max + log(Σ exp(logits - max)))
//	Loss      = -mean_over_rows(Σ labels · log_probs)
//
// Gradient with respect to logits, for one-hot labels:
//
//	∂L/∂logits = (Softmax(logits) - labels) / batch_size
//
// Usage:
//
//	criterion := nn.NewCrossEntropyLoss()
//	logits, _ := model.Forward(input)          // [batch_size, num_classes]
//	loss, err := criterion.Forward(labels, logits) // labels: one-hot, same shape
//
// Expects raw logits, so the model should not end in a Softmax layer.
type CrossEntropyLoss struct{}

// NewCrossEntropyLoss creates a new cross-entropy loss function.
func NewCrossEntropyLoss() *CrossEntropyLoss {
	return &CrossEntropyLoss{}
}

// Forward computes the mean cross-entropy over rows.
//
// labels holds a probability distribution per row, usually one-hot.
func (c *CrossEntropyLoss) Forward(labels, logits *matrix.Matrix) (autodiff.Var, error) {
	if !labels.SameShape(logits) {
		return autodiff.Var{}, fmt.Errorf("CrossEntropyLoss: labels (%d, %d) and logits (%d, %d): %w",
			labels.Rows(), labels.Cols(), logits.Rows(), logits.Cols(), matrix.ErrDimensionMismatch)
	}

	total := autodiff.New(0)
	for i := 0; i < logits.Rows(); i++ {
		// The max shift is a constant: it cancels out of the gradient.
		maxLogit := math.Inf(-1)
		for j := 0; j < logits.Cols(); j++ {
			maxLogit = math.Max(maxLogit, logits.At(i, j).Value())
		}

		sumExp := autodiff.New(0)
		for j := 0; j < logits.Cols(); j++ {
			sumExp = sumExp.Add(logits.At(i, j).SubScalar(maxLogit).Exp())
		}
		logSumExp := sumExp.Log().AddScalar(maxLogit)

		for j := 0; j < logits.Cols(); j++ {
			logProb := logits.At(i, j).Sub(logSumExp)
			total = total.Sub(labels.At(i, j).Mul(logProb))
		}
	}

	return total.DivScalar(float64(logits.Rows())), nil
}
