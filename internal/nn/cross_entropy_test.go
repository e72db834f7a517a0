package nn_test

import (
	"math"
	"testing"

	"github.com/RishabSA/automatic-differentiation/internal/matrix"
	"github.com/RishabSA/automatic-differentiation/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCrossEntropyLoss_Value tests the loss against a direct computation.
func TestCrossEntropyLoss_Value(t *testing.T) {
	logits := fromSlice(t, 2, 3,
		2.0, 1.0, 0.1,
		0.5, 2.5, -1.0,
	)
	labels := fromSlice(t, 2, 3,
		1, 0, 0,
		0, 1, 0,
	)

	loss, err := nn.NewCrossEntropyLoss().Forward(labels, logits)
	require.NoError(t, err)

	row0 := -math.Log(math.Exp(2) / (math.Exp(2) + math.Exp(1) + math.Exp(0.1)))
	row1 := -math.Log(math.Exp(2.5) / (math.Exp(0.5) + math.Exp(2.5) + math.Exp(-1)))
	assert.InDelta(t, (row0+row1)/2, loss.Value(), 1e-12)
}

// TestCrossEntropyLoss_Gradient tests ∂L/∂logits = (softmax - labels) / N.
func TestCrossEntropyLoss_Gradient(t *testing.T) {
	logits := fromSlice(t, 1, 3, 0.3, -0.2, 1.1)
	labels := fromSlice(t, 1, 3, 0, 0, 1)

	loss, err := nn.NewCrossEntropyLoss().Forward(labels, logits)
	require.NoError(t, err)
	loss.SetGrad(1)
	loss.Backward()

	probs, err := nn.NewSoftmax().Forward(fromSlice(t, 1, 3, 0.3, -0.2, 1.1))
	require.NoError(t, err)

	for j := 0; j < 3; j++ {
		want := probs.At(0, j).Value() - labels.At(0, j).Value()
		assert.InDelta(t, want, logits.At(0, j).Grad(), 1e-12, "column %d", j)
	}
}

// TestCrossEntropyLoss_NumericalStability tests large logits.
func TestCrossEntropyLoss_NumericalStability(t *testing.T) {
	logits := fromSlice(t, 1, 2, 1000, 1000)
	labels := fromSlice(t, 1, 2, 1, 0)

	loss, err := nn.NewCrossEntropyLoss().Forward(labels, logits)
	require.NoError(t, err)
	assert.True(t, loss.IsFinite())
	assert.InDelta(t, math.Ln2, loss.Value(), 1e-12)
}

// TestCrossEntropyLoss_ShapeMismatch tests shape validation.
func TestCrossEntropyLoss_ShapeMismatch(t *testing.T) {
	_, err := nn.NewCrossEntropyLoss().Forward(matrix.New(2, 3), matrix.New(2, 2))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
