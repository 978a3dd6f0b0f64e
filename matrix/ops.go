// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Products (Mul, MulTransA, MulTransB) for forward and backward passes.
//   - Element-wise kernels and reductions used by the model, loss and
//     regularizers.
//
// Determinism:
//   - Fixed loop orders (i→k→j for products, flat 0..n-1 for element-wise).
//   - All functions allocate a fresh result unless the name ends in InPlace.

package matrix

import "math"

// Mul returns the matrix product a·b.
// Stage 1 (Validate): nil-checks and a.Cols == b.Rows.
// Stage 2 (Execute): i→k→j accumulation, row blocks in parallel.
// Complexity: O(r*n*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, matrixErrorf("Mul", err)
	}
	if a.c != b.r {
		return nil, matrixErrorf("Mul", ErrDimensionMismatch)
	}
	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf("Mul", err)
	}

	n, c := a.c, b.c
	if err = forRowBlocks(a.r, a.r*n*c, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			dst := out.data[i*c : (i+1)*c]
			for k := 0; k < n; k++ {
				aik := a.data[i*n+k]
				if aik == 0 {
					continue
				}
				src := b.data[k*c : (k+1)*c]
				for j := range dst {
					dst[j] += aik * src[j]
				}
			}
		}

		return nil
	}); err != nil {
		return nil, matrixErrorf("Mul", err)
	}

	return out, nil
}

// MulTransA returns aᵀ·b without materialising aᵀ.
// a is n×r, b is n×c; the result is r×c.
// Complexity: O(r*n*c).
func MulTransA(a, b *Dense) (*Dense, error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, matrixErrorf("MulTransA", err)
	}
	if a.r != b.r {
		return nil, matrixErrorf("MulTransA", ErrDimensionMismatch)
	}
	out, err := NewDense(a.c, b.c)
	if err != nil {
		return nil, matrixErrorf("MulTransA", err)
	}

	n, r, c := a.r, a.c, b.c
	if err = forRowBlocks(r, r*n*c, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			dst := out.data[i*c : (i+1)*c]
			for k := 0; k < n; k++ {
				aki := a.data[k*r+i]
				if aki == 0 {
					continue
				}
				src := b.data[k*c : (k+1)*c]
				for j := range dst {
					dst[j] += aki * src[j]
				}
			}
		}

		return nil
	}); err != nil {
		return nil, matrixErrorf("MulTransA", err)
	}

	return out, nil
}

// MulTransB returns a·bᵀ without materialising bᵀ.
// a is r×n, b is c×n; the result is r×c.
// Complexity: O(r*n*c).
func MulTransB(a, b *Dense) (*Dense, error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, matrixErrorf("MulTransB", err)
	}
	if a.c != b.c {
		return nil, matrixErrorf("MulTransB", ErrDimensionMismatch)
	}
	out, err := NewDense(a.r, b.r)
	if err != nil {
		return nil, matrixErrorf("MulTransB", err)
	}

	n, c := a.c, b.r
	if err = forRowBlocks(a.r, a.r*n*c, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			ai := a.data[i*n : (i+1)*n]
			for j := 0; j < c; j++ {
				bj := b.data[j*n : (j+1)*n]
				var s float64
				for k := range ai {
					s += ai[k] * bj[k]
				}
				out.data[i*c+j] = s
			}
		}

		return nil
	}); err != nil {
		return nil, matrixErrorf("MulTransB", err)
	}

	return out, nil
}

// AddInPlace performs dst += alpha*src. Used to accumulate gradients.
// Complexity: O(r*c).
func AddInPlace(dst, src *Dense, alpha float64) error {
	if err := validateSameShape(dst, src); err != nil {
		return matrixErrorf("AddInPlace", err)
	}
	for i, v := range src.data {
		dst.data[i] += alpha * v
	}

	return nil
}

// Scale returns alpha*m.
// Complexity: O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf("Scale", err)
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}

	return out, nil
}

// Hadamard returns the element-wise product a ⊙ b.
// Complexity: O(r*c).
func Hadamard(a, b *Dense) (*Dense, error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Hadamard", err)
	}
	out := a.Clone()
	for i, v := range b.data {
		out.data[i] *= v
	}

	return out, nil
}

// AddRowVector adds v to every row of m in place (bias broadcast).
// len(v) must equal m.Cols().
// Complexity: O(r*c).
func AddRowVector(m *Dense, v []float64) error {
	if err := validateNotNil(m); err != nil {
		return matrixErrorf("AddRowVector", err)
	}
	if len(v) != m.c {
		return matrixErrorf("AddRowVector", ErrDimensionMismatch)
	}
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		for j := range row {
			row[j] += v[j]
		}
	}

	return nil
}

// Apply returns a new matrix with fn applied to every element.
// Complexity: O(r*c).
func Apply(m *Dense, fn func(float64) float64) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf("Apply", err)
	}
	out := m.Clone()
	for i, v := range out.data {
		out.data[i] = fn(v)
	}

	return out, nil
}

// ColSums returns the per-column sums of m (bias gradients).
// Complexity: O(r*c).
func ColSums(m *Dense) ([]float64, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf("ColSums", err)
	}
	sums := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		for j, v := range row {
			sums[j] += v
		}
	}

	return sums, nil
}

// ArgmaxRows returns, for every row, the column of its largest value.
// Ties resolve to the lowest column index.
// Complexity: O(r*c).
func ArgmaxRows(m *Dense) ([]int, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf("ArgmaxRows", err)
	}
	idx := make([]int, m.r)
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		best := 0
		for j := 1; j < len(row); j++ {
			if row[j] > row[best] {
				best = j
			}
		}
		idx[i] = best
	}

	return idx, nil
}

// FrobeniusNorm returns sqrt(Σ m_ij²).
// Complexity: O(r*c).
func FrobeniusNorm(m *Dense) (float64, error) {
	if err := validateNotNil(m); err != nil {
		return 0, matrixErrorf("FrobeniusNorm", err)
	}
	var s float64
	for _, v := range m.data {
		s += v * v
	}

	return math.Sqrt(s), nil
}
