// SPDX-License-Identifier: MIT
// Package core_test: shared fixtures.

package core_test

import (
	"testing"

	"github.com/katalvlaran/gcnreg/core"
	"github.com/katalvlaran/gcnreg/matrix"
	"github.com/stretchr/testify/require"
)

// Path4 is the undirected path 0-1-2-3 with both directions listed.
var Path4 = core.EdgeIndex{
	Src: []int{0, 1, 1, 2, 2, 3},
	Dst: []int{1, 0, 2, 1, 3, 2},
}

// MustDense builds a Dense from rows or fails the test.
func MustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseRows(rows)
	require.NoError(t, err)

	return m
}

// MustGraph builds a 4-node, 2-class graph over Path4 with one node per split
// and the last node unassigned.
func MustGraph(t testing.TB, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	x := MustDense(t, [][]float64{{1, 0}, {0, 1}, {1, 1}, {0, 0}})
	train := core.Mask{true, false, false, false}
	val := core.Mask{false, true, false, false}
	test := core.Mask{false, false, true, false}
	opts = append([]core.GraphOption{core.WithMasks(train, val, test), core.WithName("path4")}, opts...)
	g, err := core.NewGraph(x, []int{0, 1, 0, 1}, Path4, opts...)
	require.NoError(t, err)

	return g
}
