package serialization

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"time"

	"gonum.org/v1/gonum/mat"
)

// LibraryVersion is recorded in every header written.
const LibraryVersion = "0.1.0"

// Write encodes stateDict to w.
//
// Matrices are stored in name order, so equal state dicts give identical
// data sections. Header fields describing the data (FormatVersion, Tensors)
// are filled in; CreatedAt and LibraryVersion are set when zero.
func Write(w io.Writer, stateDict map[string]*mat.Dense, header Header) error {
	names := make([]string, 0, len(stateDict))
	for name := range stateDict {
		names = append(names, name)
	}
	sort.Strings(names)

	header.FormatVersion = FormatVersion
	if header.LibraryVersion == "" {
		header.LibraryVersion = LibraryVersion
	}
	if header.CreatedAt.IsZero() {
		header.CreatedAt = time.Now().UTC()
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	// Lay out the data section and collect it for the checksum.
	var data []byte
	header.Tensors = make([]TensorMeta, 0, len(names))
	for _, name := range names {
		m := stateDict[name]
		rows, cols := m.Dims()

		meta := TensorMeta{
			Name:   name,
			DType:  DTypeFloat64,
			Shape:  []int{rows, cols},
			Offset: int64(len(data)),
			Size:   int64(rows * cols * elemSize),
		}
		if err := ValidateTensorName(name); err != nil {
			return err
		}
		header.Tensors = append(header.Tensors, meta)

		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				data = binary.LittleEndian.AppendUint64(data, math.Float64bits(m.At(i, j)))
			}
		}
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	flags := uint32(0)
	if len(header.Metadata) > 0 {
		flags |= FlagHasMetadata
	}
	if header.CheckpointMeta != nil {
		flags |= FlagHasCheckpoint
	}

	checksum := ComputeChecksum(data)

	fixed := make([]byte, FixedHeaderSize)
	copy(fixed[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:8], FormatVersion)
	binary.LittleEndian.PutUint32(fixed[8:12], flags)
	// 0x0C-0x0F reserved
	binary.LittleEndian.PutUint64(fixed[16:24], uint64(len(headerJSON)))
	binary.LittleEndian.PutUint64(fixed[24:32], uint64(len(data)))
	copy(fixed[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	dataOffset := alignedOffset(int64(len(headerJSON)))
	padding := make([]byte, dataOffset-int64(FixedHeaderSize)-int64(len(headerJSON)))

	for _, chunk := range [][]byte{fixed, headerJSON, padding, data} {
		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("failed to write checkpoint: %w", err)
		}
	}

	return nil
}

// SaveFile writes stateDict to the file at path, replacing it if present.
func SaveFile(path string, stateDict map[string]*mat.Dense, header Header) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	buf := bufio.NewWriter(file)
	if err := Write(buf, stateDict, header); err != nil {
		return err
	}
	return buf.Flush()
}
