package nn_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/RishabSA/automatic-differentiation/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func newCheckpointModel(config nn.LinearConfig) *nn.Sequential {
	return nn.NewSequential(
		nn.NewLinearWithConfig(2, 3, config),
		nn.NewReLU(),
		nn.NewLinearWithConfig(3, 1, config),
	)
}

func TestCheckpoint_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.adgr")
	src := newCheckpointModel(seeded())

	checkpoint := &nn.Checkpoint{
		Model:    src,
		Epoch:    7,
		Loss:     0.25,
		LR:       0.01,
		Metadata: map[string]string{"dataset": "xor"},
	}
	require.NoError(t, checkpoint.Save(path))

	dst := newCheckpointModel(nn.LinearConfig{InitRange: 0.5})
	loaded, err := nn.LoadCheckpoint(path, dst)
	require.NoError(t, err)

	assert.Same(t, dst, loaded.Model)
	assert.Equal(t, 7, loaded.Epoch)
	assert.Equal(t, 0.25, loaded.Loss)
	assert.Equal(t, 0.01, loaded.LR)
	assert.Equal(t, "xor", loaded.Metadata["dataset"])
	assert.False(t, loaded.CreatedAt.IsZero())

	want := src.StateDict()
	for key, values := range dst.StateDict() {
		assert.True(t, mat.Equal(want[key], values), "mismatch for %s", key)
	}
}

func TestCheckpoint_EncodeDecode(t *testing.T) {
	src := newCheckpointModel(seeded())

	var buf bytes.Buffer
	require.NoError(t, (&nn.Checkpoint{Model: src, Epoch: 1}).Encode(&buf))

	dst := newCheckpointModel(nn.LinearConfig{})
	loaded, err := nn.DecodeCheckpoint(&buf, dst)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Epoch)

	x := fromSlice(t, 1, 2, 0.5, -1)
	a, err := src.Forward(x)
	require.NoError(t, err)
	b, err := dst.Forward(x)
	require.NoError(t, err)
	assert.Equal(t, a.At(0, 0).Value(), b.At(0, 0).Value())
}

func TestCheckpoint_ArchitectureMismatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&nn.Checkpoint{Model: newCheckpointModel(seeded())}).Encode(&buf))

	other := nn.NewSequential(nn.NewLinear(2, 4), nn.NewLinear(4, 1))
	_, err := nn.DecodeCheckpoint(&buf, other)
	assert.ErrorContains(t, err, "architecture mismatch")
}

func TestCheckpoint_LoadMissingFile(t *testing.T) {
	_, err := nn.LoadCheckpoint(filepath.Join(t.TempDir(), "nope.adgr"), newCheckpointModel(nn.LinearConfig{}))
	assert.ErrorContains(t, err, "failed to load checkpoint")
}
