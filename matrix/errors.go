// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Kernels return these sentinels wrapped with a call-site tag
// ("Mul: matrix: dimension mismatch"); callers match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDataLength indicates that a backing slice does not hold rows*cols values,
	// or that COO triplet slices differ in length.
	ErrDataLength = errors.New("matrix: data length does not match shape")
)

// matrixErrorf wraps err with the kernel tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
