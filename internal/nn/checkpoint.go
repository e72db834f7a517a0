package nn

import (
	"fmt"
	"io"
	"time"

	"github.com/RishabSA/automatic-differentiation/internal/serialization"
	"gonum.org/v1/gonum/mat"
)

// Checkpoint represents a training state snapshot of a Sequential network.
//
// Example:
//
//	checkpoint := &nn.Checkpoint{
//	    Model: model,
//	    Epoch: 10,
//	    Loss:  0.123,
//	    LR:    0.01,
//	}
//	err := checkpoint.Save("epoch_10.adgr")
//
// To resume training:
//
//	checkpoint, err := nn.LoadCheckpoint("epoch_10.adgr", model)
//	startEpoch := checkpoint.Epoch + 1
type Checkpoint struct {
	Model     *Sequential       // The network whose parameters are saved
	Epoch     int               // Training epoch number
	Loss      float64           // Loss value at this checkpoint
	LR        float64           // Learning rate in effect
	Metadata  map[string]string // Additional metadata
	CreatedAt time.Time         // When the checkpoint was created
}

func (c *Checkpoint) header() serialization.Header {
	return serialization.Header{
		ModelType:    "Sequential",
		Architecture: c.Model.Architecture(),
		CreatedAt:    c.CreatedAt,
		Metadata:     c.Metadata,
		CheckpointMeta: &serialization.CheckpointMeta{
			Epoch: c.Epoch,
			Loss:  c.Loss,
			LR:    c.LR,
		},
	}
}

// Save writes the checkpoint to the file at path.
func (c *Checkpoint) Save(path string) error {
	if err := serialization.SaveFile(path, c.Model.StateDict(), c.header()); err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}
	return nil
}

// Encode writes the checkpoint to w.
func (c *Checkpoint) Encode(w io.Writer) error {
	if err := serialization.Write(w, c.Model.StateDict(), c.header()); err != nil {
		return fmt.Errorf("failed to write checkpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint loads a checkpoint from the file at path into model.
//
// The model must be constructed with the same architecture as when the
// checkpoint was saved.
func LoadCheckpoint(path string, model *Sequential) (*Checkpoint, error) {
	stateDict, header, err := serialization.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load checkpoint: %w", err)
	}
	return restore(model, stateDict, header)
}

// DecodeCheckpoint reads a checkpoint from r into model.
func DecodeCheckpoint(r io.Reader, model *Sequential) (*Checkpoint, error) {
	stateDict, header, err := serialization.Read(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read checkpoint: %w", err)
	}
	return restore(model, stateDict, header)
}

func restore(model *Sequential, stateDict map[string]*mat.Dense, header serialization.Header) (*Checkpoint, error) {
	if arch := model.Architecture(); header.Architecture != arch {
		return nil, fmt.Errorf("architecture mismatch: checkpoint %s, model %s", header.Architecture, arch)
	}
	if err := model.LoadStateDict(stateDict); err != nil {
		return nil, err
	}

	checkpoint := &Checkpoint{
		Model:     model,
		Metadata:  header.Metadata,
		CreatedAt: header.CreatedAt,
	}
	if meta := header.CheckpointMeta; meta != nil {
		checkpoint.Epoch = meta.Epoch
		checkpoint.Loss = meta.Loss
		checkpoint.LR = meta.LR
	}
	return checkpoint, nil
}
