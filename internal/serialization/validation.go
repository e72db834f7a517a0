package serialization

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize    = 100 * 1024 * 1024 // 100MB - maximum header size
	MaxTensorCount   = 100_000           // Maximum number of matrices in a file
	MaxTensorNameLen = 4096              // Maximum matrix name length
	MaxDataSize      = 1 << 34           // 16GB - maximum data section size
)

// ValidationLevel controls the strictness of validation.
type ValidationLevel int

const (
	// ValidationStrict performs all validation checks (default).
	ValidationStrict ValidationLevel = iota
	// ValidationNormal checks names and shapes but not offsets.
	ValidationNormal
	// ValidationNone skips validation. Use only with trusted input.
	ValidationNone
)

// ValidateTensorOffsets checks for overlapping offsets and out-of-bounds regions.
func ValidateTensorOffsets(tensors []TensorMeta, dataSize int64) error {
	sorted := make([]TensorMeta, len(tensors))
	copy(sorted, tensors)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i, t := range sorted {
		if t.Offset < 0 || t.Size < 0 {
			return &ValidationError{
				Type:    "negative_offset",
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset=%d, size=%d (negative values not allowed)", t.Offset, t.Size),
			}
		}

		if t.Offset > dataSize-t.Size {
			return &ValidationError{
				Type:    "out_of_bounds",
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset %d + size %d > data_size %d", t.Offset, t.Size, dataSize),
			}
		}

		if i < len(sorted)-1 {
			next := sorted[i+1]
			if t.Offset > next.Offset-t.Size {
				return &ValidationError{
					Type:    "offset_overlap",
					Tensor:  t.Name,
					Tensor2: next.Name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
						t.Offset, t.Offset+t.Size, next.Offset, next.Offset+next.Size),
				}
			}
		}
	}

	return nil
}

// ValidateTensorName rejects empty, overlong, and path-like names.
func ValidateTensorName(name string) error {
	if name == "" {
		return &ValidationError{Type: "invalid_name", Details: "empty name"}
	}

	if len(name) > MaxTensorNameLen {
		return &ValidationError{
			Type:    "name_too_long",
			Tensor:  name,
			Details: fmt.Sprintf("length %d > max %d", len(name), MaxTensorNameLen),
		}
	}

	if strings.Contains(name, "..") {
		return &ValidationError{
			Type:    "invalid_name",
			Tensor:  name,
			Details: "contains '..'",
		}
	}

	if strings.ContainsAny(name, "/\\\x00") {
		return &ValidationError{
			Type:    "invalid_name",
			Tensor:  name,
			Details: "contains path separator or null byte",
		}
	}

	return nil
}

// ValidateTensorShape checks that t is a float64 matrix whose byte size
// matches its shape.
func ValidateTensorShape(t TensorMeta) error {
	if t.DType != DTypeFloat64 {
		return &ValidationError{
			Type:    "unsupported_dtype",
			Tensor:  t.Name,
			Details: fmt.Sprintf("got %q, want %q", t.DType, DTypeFloat64),
		}
	}

	if len(t.Shape) != 2 || t.Shape[0] <= 0 || t.Shape[1] <= 0 {
		return &ValidationError{
			Type:    "invalid_shape",
			Tensor:  t.Name,
			Details: fmt.Sprintf("shape %v is not a positive [rows, cols]", t.Shape),
		}
	}

	if int64(t.Shape[0]) > MaxDataSize/elemSize/int64(t.Shape[1]) {
		return &ValidationError{
			Type:    "too_large",
			Tensor:  t.Name,
			Details: fmt.Sprintf("shape %v exceeds max data size %d", t.Shape, MaxDataSize),
		}
	}

	if want := int64(t.Shape[0]) * int64(t.Shape[1]) * elemSize; t.Size != want {
		return &ValidationError{
			Type:    "size_mismatch",
			Tensor:  t.Name,
			Details: fmt.Sprintf("size %d bytes, shape %v needs %d", t.Size, t.Shape, want),
		}
	}

	return nil
}

// ValidateDataSize checks that dataSize is exactly the sum of the declared
// tensor sizes and within MaxDataSize.
func ValidateDataSize(tensors []TensorMeta, dataSize uint64) error {
	if dataSize > MaxDataSize {
		return fmt.Errorf("%w: %d bytes exceeds max %d", ErrDataSizeMismatch, dataSize, MaxDataSize)
	}

	var total int64
	for _, t := range tensors {
		if t.Size < 0 || t.Size > math.MaxInt64-total {
			return &ValidationError{
				Type:    "invalid_size",
				Tensor:  t.Name,
				Details: fmt.Sprintf("size %d", t.Size),
			}
		}
		total += t.Size
	}

	//nolint:gosec // G115: dataSize is bounded by MaxDataSize
	if int64(dataSize) != total {
		return fmt.Errorf("%w: declared %d, tensors need %d", ErrDataSizeMismatch, dataSize, total)
	}

	return nil
}

// ValidateHeader performs header validation at the given level.
func ValidateHeader(h *Header, dataSize int64, level ValidationLevel) error {
	if level == ValidationNone {
		return nil
	}

	if len(h.Tensors) > MaxTensorCount {
		return &ValidationError{
			Type:    "too_many_tensors",
			Details: fmt.Sprintf("got %d, max %d", len(h.Tensors), MaxTensorCount),
		}
	}

	seen := make(map[string]bool, len(h.Tensors))
	for _, t := range h.Tensors {
		if err := ValidateTensorName(t.Name); err != nil {
			return err
		}
		if seen[t.Name] {
			return &ValidationError{Type: "duplicate_name", Tensor: t.Name, Details: "name appears twice"}
		}
		seen[t.Name] = true

		if err := ValidateTensorShape(t); err != nil {
			return err
		}
	}

	if level == ValidationStrict {
		if err := ValidateTensorOffsets(h.Tensors, dataSize); err != nil {
			return err
		}
	}

	return nil
}
