package serialization

import (
	"time"
)

// Format constants.
const (
	MagicBytes      = "ADGR"
	FormatVersion   = 1
	HeaderAlignment = 64   // Matrix data starts on a 64-byte boundary
	FixedHeaderSize = 64   // Fixed header size (0x40 bytes)
	ChecksumSize    = 32   // SHA-256 checksum size (32 bytes)
	ChecksumOffset  = 0x20 // Checksum offset in the fixed header
)

// DTypeFloat64 is the only element type written.
const DTypeFloat64 = "float64"

// elemSize is the encoded size of one float64.
const elemSize = 8

// Flags for the fixed header.
const (
	FlagHasMetadata   uint32 = 1 << 0 // bit 0: custom metadata included
	FlagHasCheckpoint uint32 = 1 << 1 // bit 1: training state included
)

// Header represents the JSON header of a checkpoint file.
type Header struct {
	FormatVersion  int               `json:"format_version"`       // Version of the file format
	LibraryVersion string            `json:"library_version"`      // Version of the library that wrote the file
	ModelType      string            `json:"model_type"`           // Type of model (e.g., "Sequential", "Linear")
	Architecture   string            `json:"architecture"`         // Layer sizes, e.g. "[1 -> 8 -> 1]"
	CreatedAt      time.Time         `json:"created_at"`           // When the file was created
	Tensors        []TensorMeta      `json:"tensors"`              // Matrix metadata
	Metadata       map[string]string `json:"metadata"`             // Custom metadata
	CheckpointMeta *CheckpointMeta   `json:"checkpoint,omitempty"` // Training state (optional)
}

// CheckpointMeta contains training state information for checkpoints.
type CheckpointMeta struct {
	Epoch int     `json:"epoch"` // Training epoch number
	Loss  float64 `json:"loss"`  // Loss value at checkpoint
	LR    float64 `json:"lr"`    // Learning rate in effect
}

// TensorMeta describes one matrix in the data section.
type TensorMeta struct {
	Name   string `json:"name"`   // Matrix name (e.g., "0.weight")
	DType  string `json:"dtype"`  // Element type, always "float64"
	Shape  []int  `json:"shape"`  // [rows, cols]
	Offset int64  `json:"offset"` // Offset in the data section
	Size   int64  `json:"size"`   // Size in bytes
}

// alignedOffset returns the data section offset for a header of n bytes.
func alignedOffset(n int64) int64 {
	pos := int64(FixedHeaderSize) + n
	padding := (HeaderAlignment - (pos % HeaderAlignment)) % HeaderAlignment
	return pos + padding
}
