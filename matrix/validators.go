// SPDX-License-Identifier: MIT
// Package: matrix
//
// Shared guards for the kernels. Each returns a plain sentinel; kernels wrap
// it with their own tag.

package matrix

// validateNotNil ensures none of the operands is nil.
func validateNotNil(ms ...*Dense) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions.
func validateSameShape(a, b *Dense) error {
	if err := validateNotNil(a, b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}
