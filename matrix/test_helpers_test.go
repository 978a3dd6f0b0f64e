// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for kernel tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gcnreg/matrix"
	"github.com/stretchr/testify/require"
)

// MustRows builds a Dense from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandDense returns an r×c matrix filled from a seeded source in [-1,1).
func RandDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	for i := range m.Raw() {
		m.Raw()[i] = rng.Float64()*2 - 1
	}

	return m
}

// naiveMul is the textbook triple loop used as an oracle.
func naiveMul(a, b [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = make([]float64, len(b[0]))
		for j := range b[0] {
			for k := range b {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}

// toRows copies a Dense into nested slices.
func toRows(m *matrix.Dense) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = append([]float64(nil), m.Row(i)...)
	}

	return out
}

// RandCSR builds an r×c CSR keeping each entry with probability ½.
func RandCSR(t testing.TB, r, c int, seed int64) *matrix.CSR {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var rows, cols []int
	var vals []float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Float64() < 0.5 {
				rows, cols = append(rows, i), append(cols, j)
				vals = append(vals, rng.Float64()*2-1)
			}
		}
	}
	m, err := matrix.NewCSR(r, c, rows, cols, vals)
	require.NoError(t, err)

	return m
}

// transposeRows returns the transpose of a row slice.
func transposeRows(a [][]float64) [][]float64 {
	out := make([][]float64, len(a[0]))
	for j := range out {
		out[j] = make([]float64, len(a))
		for i := range a {
			out[j][i] = a[i][j]
		}
	}

	return out
}
