package nn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RishabSA/automatic-differentiation/internal/matrix"
	"gonum.org/v1/gonum/mat"
)

// Sequential is a network that chains layers together.
//
// Each layer's output becomes the next layer's input. The layer list is built
// once and persists across training iterations, while the computation graph
// hanging off its parameters is rebuilt on every Forward.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 8),
//	    nn.NewTanh(),
//	    nn.NewLinear(8, 1),
//	    nn.NewSigmoid(),
//	)
//
//	output, err := model.Forward(input)
type Sequential struct {
	layers []Layer
}

// NewSequential creates a network from an ordered list of layers.
func NewSequential(layers ...Layer) *Sequential {
	return &Sequential{
		layers: layers,
	}
}

// Forward applies all layers in order.
//
// The first layer error aborts the pass and is returned with the index of
// the failing layer.
func (s *Sequential) Forward(input *matrix.Matrix) (*matrix.Matrix, error) {
	output := input

	for i, layer := range s.layers {
		var err error
		output, err = layer.Forward(output)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}

	return output, nil
}

// Add appends a layer to the network.
func (s *Sequential) Add(layer Layer) {
	s.layers = append(s.layers, layer)
}

// Layers returns the layers in order. The slice is shared with s.
func (s *Sequential) Layers() []Layer {
	return s.layers
}

// Len returns the number of layers.
func (s *Sequential) Len() int {
	return len(s.layers)
}

// Layer returns the layer at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Layer(index int) Layer {
	if index < 0 || index >= len(s.layers) {
		panic("Sequential.Layer: index out of bounds")
	}
	return s.layers[index]
}

// Parameters returns the parameters of every layer that exposes them.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter

	for _, layer := range s.layers {
		if owner, ok := layer.(ParameterOwner); ok {
			params = append(params, owner.Parameters()...)
		}
	}

	return params
}

// Architecture describes the feature sizes through the Linear layers,
// e.g. "[1 -> 8 -> 1]". A network without Linear layers gives "[]".
func (s *Sequential) Architecture() string {
	var dims []string
	for _, layer := range s.layers {
		l, ok := layer.(*Linear)
		if !ok {
			continue
		}
		if len(dims) == 0 {
			dims = append(dims, strconv.Itoa(l.InFeatures()))
		}
		dims = append(dims, strconv.Itoa(l.OutFeatures()))
	}
	return "[" + strings.Join(dims, " -> ") + "]"
}

// StateDict returns parameter values keyed by layer index and name
// (e.g. "0.weight", "0.bias", "2.weight").
func (s *Sequential) StateDict() map[string]*mat.Dense {
	stateDict := make(map[string]*mat.Dense)

	for i, layer := range s.layers {
		owner, ok := layer.(ParameterOwner)
		if !ok {
			continue
		}
		for _, p := range owner.Parameters() {
			stateDict[fmt.Sprintf("%d.%s", i, p.Name())] = p.Matrix().Values()
		}
	}

	return stateDict
}

// LoadStateDict loads parameter values saved by StateDict.
func (s *Sequential) LoadStateDict(stateDict map[string]*mat.Dense) error {
	for i, layer := range s.layers {
		owner, ok := layer.(ParameterOwner)
		if !ok {
			continue
		}
		for _, p := range owner.Parameters() {
			key := fmt.Sprintf("%d.%s", i, p.Name())
			values, ok := stateDict[key]
			if !ok {
				return fmt.Errorf("failed to load layer %d: missing %s in state dict", i, key)
			}
			if err := loadValues(p.Matrix(), values); err != nil {
				return fmt.Errorf("failed to load layer %d: %s: %w", i, p.Name(), err)
			}
		}
	}

	return nil
}
