package serialization

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
)

// ReaderOptions configures Read.
type ReaderOptions struct {
	SkipChecksumValidation bool            // Skip checksum validation (faster but less safe)
	ValidationLevel        ValidationLevel // Validation strictness level
}

// Read decodes a state dict written by Write, with strict validation.
func Read(r io.Reader) (map[string]*mat.Dense, Header, error) {
	return ReadWithOptions(r, ReaderOptions{ValidationLevel: ValidationStrict})
}

// ReadWithOptions decodes a state dict written by Write.
func ReadWithOptions(r io.Reader, opts ReaderOptions) (map[string]*mat.Dense, Header, error) {
	var header Header

	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, header, fmt.Errorf("failed to read fixed header: %w", err)
	}

	// 0x00-0x03: magic
	if string(fixed[0:4]) != MagicBytes {
		return nil, header, ErrInvalidMagic
	}

	// 0x04-0x07: version
	if version := binary.LittleEndian.Uint32(fixed[4:8]); version != FormatVersion {
		return nil, header, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	// 0x10-0x17: header size, 0x18-0x1F: data size
	headerSize := binary.LittleEndian.Uint64(fixed[16:24])
	dataSize := binary.LittleEndian.Uint64(fixed[24:32])
	if headerSize > MaxHeaderSize {
		return nil, header, ErrHeaderTooLarge
	}

	var stored [32]byte
	copy(stored[:], fixed[ChecksumOffset:ChecksumOffset+ChecksumSize])

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, header, fmt.Errorf("failed to read header JSON: %w", err)
	}
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, header, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	//nolint:gosec // G115: headerSize is bounded by MaxHeaderSize
	padding := alignedOffset(int64(headerSize)) - int64(FixedHeaderSize) - int64(headerSize)
	if _, err := io.CopyN(io.Discard, r, padding); err != nil {
		return nil, header, fmt.Errorf("failed to skip padding: %w", err)
	}

	if err := ValidateDataSize(header.Tensors, dataSize); err != nil {
		return nil, header, err
	}

	//nolint:gosec // G115: dataSize is bounded by MaxDataSize
	if err := ValidateHeader(&header, int64(dataSize), opts.ValidationLevel); err != nil {
		return nil, header, fmt.Errorf("validation failed: %w", err)
	}

	// The buffer grows with the bytes actually read, not the declared size.
	var buf bytes.Buffer
	//nolint:gosec // G115: dataSize is bounded by MaxDataSize
	if _, err := io.CopyN(&buf, r, int64(dataSize)); err != nil {
		return nil, header, fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	data := buf.Bytes()

	if !opts.SkipChecksumValidation {
		if err := ValidateChecksum(ComputeChecksum(data), stored); err != nil {
			return nil, header, err
		}
	}

	stateDict := make(map[string]*mat.Dense, len(header.Tensors))
	for _, t := range header.Tensors {
		if err := ValidateTensorShape(t); err != nil {
			return nil, header, err
		}
		if t.Offset < 0 || t.Offset > int64(len(data))-t.Size {
			return nil, header, &ValidationError{Type: "out_of_bounds", Tensor: t.Name, Details: "region outside data section"}
		}

		raw := data[t.Offset : t.Offset+t.Size]
		values := make([]float64, len(raw)/elemSize)
		for i := range values {
			values[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*elemSize:]))
		}
		stateDict[t.Name] = mat.NewDense(t.Shape[0], t.Shape[1], values)
	}

	return stateDict, header, nil
}

// LoadFile reads a state dict from the file at path.
func LoadFile(path string) (map[string]*mat.Dense, Header, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, Header{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(bufio.NewReader(file))
}
