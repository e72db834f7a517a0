// Copyright 2025 The automatic-differentiation Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/RishabSA/automatic-differentiation/matrix"
	"github.com/RishabSA/automatic-differentiation/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLayerInterface verifies that concrete types implement the Layer interface.
func TestLayerInterface(t *testing.T) {
	tests := []struct {
		name      string
		layer     nn.Layer
		trainable bool
	}{
		{"Linear", nn.NewLinear(3, 3), true},
		{"ReLU", nn.NewReLU(), false},
		{"LeakyReLU", nn.NewLeakyReLU(0), false},
		{"Sigmoid", nn.NewSigmoid(), false},
		{"Tanh", nn.NewTanh(), false},
		{"SiLU", nn.NewSiLU(), false},
		{"ELU", nn.NewELU(0), false},
		{"Softmax", nn.NewSoftmax(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := matrix.New(2, 3)

			output, err := tt.layer.Forward(input)
			require.NoError(t, err)
			assert.Equal(t, 2, output.Rows())
			assert.Equal(t, 3, output.Cols())
			assert.Equal(t, tt.trainable, tt.layer.Trainable())

			_, owns := tt.layer.(nn.ParameterOwner)
			assert.Equal(t, tt.trainable, owns)
		})
	}
}

// TestLossInterface verifies that every loss satisfies nn.Loss.
func TestLossInterface(t *testing.T) {
	var losses = []nn.Loss{nn.NewMSELoss(), nn.NewMAELoss(), nn.NewBCELoss(0), nn.NewCrossEntropyLoss()}

	labels, err := matrix.FromSlice(1, 2, []float64{0, 1})
	require.NoError(t, err)
	preds, err := matrix.FromSlice(1, 2, []float64{0.25, 0.75})
	require.NoError(t, err)

	for _, loss := range losses {
		v, err := loss.Forward(labels, preds)
		require.NoError(t, err)
		assert.Greater(t, v.Value(), 0.0)
	}
}
