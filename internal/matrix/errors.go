package matrix

import "errors"

// Common errors.
var (
	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add of
	// different shapes with no broadcast rule, or MatMul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadShape indicates a non-positive shape or a backing slice whose
	// length does not match rows*cols.
	ErrBadShape = errors.New("matrix: invalid shape")
)
