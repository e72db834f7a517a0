package nn

import (
	"fmt"
	"math/rand"

	"github.com/RishabSA/automatic-differentiation/internal/matrix"
	"gonum.org/v1/gonum/mat"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input matrix with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias row with shape [1, out_features], broadcast over rows
//   - y is the output matrix with shape [batch_size, out_features]
//
// Weights are initialized from U(-0.01, 0.01) unless configured otherwise.
// Biases are initialized to zeros.
//
// Example:
//
//	layer := nn.NewLinear(3, 2)
//	output, err := layer.Forward(input) // input: [N, 3], output: [N, 2]
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [in_features, out_features]
	bias        *Parameter // [1, out_features]
}

// LinearConfig holds optional initialization settings for Linear.
type LinearConfig struct {
	InitRange float64    // Half-width of the uniform weight init (default: 0.01)
	Rand      *rand.Rand // Random source (default: global math/rand)
}

// NewLinear creates a new Linear layer with default initialization.
func NewLinear(inFeatures, outFeatures int) *Linear {
	return NewLinearWithConfig(inFeatures, outFeatures, LinearConfig{})
}

// NewLinearWithConfig creates a new Linear layer.
//
// Parameters:
//   - inFeatures: Number of input features
//   - outFeatures: Number of output features
//   - config: Initialization settings; zero fields take defaults
//
// Panics if either feature count is not positive.
func NewLinearWithConfig(inFeatures, outFeatures int, config LinearConfig) *Linear {
	if config.InitRange == 0 {
		config.InitRange = DefaultInitRange
	}

	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", Uniform(inFeatures, outFeatures, config.InitRange, config.Rand)),
		bias:        NewParameter("bias", Zeros(1, outFeatures)),
	}
}

// Forward computes y = x @ W + b.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
func (l *Linear) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	if input.Cols() != l.inFeatures {
		return nil, fmt.Errorf("Linear.Forward: expected input with %d features, got %d: %w",
			l.inFeatures, input.Cols(), matrix.ErrDimensionMismatch)
	}

	output, err := matrix.MatMul(input, l.weight.Matrix())
	if err != nil {
		return nil, err
	}
	return output.Add(l.bias.Matrix())
}

// ResetGrad clears gradients and graph edges on W and b.
func (l *Linear) ResetGrad() {
	l.weight.ZeroGrad()
	l.bias.ZeroGrad()
}

// OptimizeWeights applies W -= lr * dW and b -= lr * db.
func (l *Linear) OptimizeWeights(lr float64) {
	l.weight.Step(lr)
	l.bias.Step(lr)
}

// Trainable returns true.
func (l *Linear) Trainable() bool {
	return true
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}

// StateDict returns a snapshot of the parameter values by name.
func (l *Linear) StateDict() map[string]*mat.Dense {
	return map[string]*mat.Dense{
		"weight": l.weight.Matrix().Values(),
		"bias":   l.bias.Matrix().Values(),
	}
}

// LoadStateDict copies parameter values from a state dictionary.
//
// Values are written into the existing element nodes, so Vars obtained from
// the layer before loading stay attached to it.
func (l *Linear) LoadStateDict(stateDict map[string]*mat.Dense) error {
	for _, p := range l.Parameters() {
		values, ok := stateDict[p.Name()]
		if !ok {
			return fmt.Errorf("missing %s in state dict", p.Name())
		}
		if err := loadValues(p.Matrix(), values); err != nil {
			return fmt.Errorf("%s: %w", p.Name(), err)
		}
	}
	return nil
}

func loadValues(dst *matrix.Matrix, src mat.Matrix) error {
	rows, cols := src.Dims()
	if rows != dst.Rows() || cols != dst.Cols() {
		return fmt.Errorf("shape mismatch: expected (%d, %d), got (%d, %d): %w",
			dst.Rows(), dst.Cols(), rows, cols, matrix.ErrDimensionMismatch)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst.At(i, j).SetValue(src.At(i, j))
		}
	}
	return nil
}
