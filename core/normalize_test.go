// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gcnreg/core"
	"github.com/stretchr/testify/require"
)

func TestNormalizedAdjacency_TwoNodes(t *testing.T) {
	x := MustDense(t, [][]float64{{1}, {2}})
	g, err := core.NewGraph(x, []int{0, 1}, core.EdgeIndex{Src: []int{0, 1}, Dst: []int{1, 0}})
	require.NoError(t, err)

	adj, err := g.NormalizedAdjacency()
	require.NoError(t, err)
	// Self-loops added; every degree is 2, so every entry is 1/2.
	require.InDeltaSlice(t, []float64{0.5, 0.5, 0.5, 0.5}, adj.ToDense().Raw(), 1e-12)
}

func TestNormalizedAdjacency_KeepsExistingSelfLoop(t *testing.T) {
	x := MustDense(t, [][]float64{{1}, {2}})
	g, err := core.NewGraph(x, []int{0, 0},
		core.EdgeIndex{Src: []int{0, 0}, Dst: []int{0, 1}},
		core.WithEdgeWeights([]float64{3, 1}),
	)
	require.NoError(t, err)

	adj, err := g.NormalizedAdjacency()
	require.NoError(t, err)
	require.Equal(t, 3, adj.NNZ()) // (0,0) kept, (1,0) edge, (1,1) added

	// deg[0] = 3 (existing loop), deg[1] = 1 (edge 0→1) + 1 (added loop) = 2.
	v, err := adj.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 1.0, v, 1e-12)
	v, err = adj.At(1, 0)
	require.NoError(t, err)
	require.InDelta(t, 1/math.Sqrt(3*2), v, 1e-12)
	v, err = adj.At(1, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.5, v, 1e-12)
}

func TestNormalizedAdjacency_SymmetricForUndirected(t *testing.T) {
	g := MustGraph(t)
	adj, err := g.NormalizedAdjacency()
	require.NoError(t, err)

	d := adj.ToDense()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a, _ := d.At(i, j)
			b, _ := d.At(j, i)
			require.InDelta(t, a, b, 1e-12)
		}
	}
}
