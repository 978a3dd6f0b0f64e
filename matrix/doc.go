// SPDX-License-Identifier: MIT

// Package matrix provides the dense and sparse linear-algebra kernels used by
// the GCN trainer.
//
// The package offers:
//
//   - Dense: a row-major float64 matrix stored in one flat slice. Public
//     indexers (At/Set) return sentinel errors instead of panicking.
//   - Products: Mul (a·b), MulTransA (aᵀ·b) and MulTransB (a·bᵀ). Backward
//     passes use the transposed forms so no explicit transposes are allocated.
//   - Element-wise helpers: AddInPlace, Scale, Hadamard,
//     AddRowVector, Apply, plus reductions ColSums, ArgmaxRows, FrobeniusNorm.
//   - CSR: a compressed sparse row matrix built from COO triplets, with SpMM
//     (sparse × dense) and Transpose. Graph propagation Â·X uses it.
//
// Determinism:
//
//	Every kernel accumulates in a fixed loop order. Large products are split
//	into row blocks that run concurrently (see SetWorkers), but each output row
//	is computed by exactly one goroutine in the same order as the sequential
//	path, so results are bit-for-bit identical for any worker count.
//
// Errors:
//
//	ErrInvalidDimensions - requested shape has a non-positive side.
//	ErrOutOfRange        - row/column index outside the matrix.
//	ErrDimensionMismatch - incompatible operand shapes.
//	ErrNilMatrix         - nil operand.
//	ErrDataLength        - backing slice length does not match the shape.
package matrix
