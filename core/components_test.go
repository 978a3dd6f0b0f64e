// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/katalvlaran/gcnreg/core"
	"github.com/stretchr/testify/require"
)

func TestComponents_Path(t *testing.T) {
	g := MustGraph(t)
	comp, count := g.Components()
	require.Equal(t, 1, count)
	require.Equal(t, []int{0, 0, 0, 0}, comp)
	require.Zero(t, g.Isolated())
}

func TestComponents_DirectedEdgesAndSingletons(t *testing.T) {
	// 0→1, 3→2, 4 has only a self-loop, 5 has nothing.
	x := MustDense(t, [][]float64{{0}, {0}, {0}, {0}, {0}, {0}})
	edges := core.EdgeIndex{Src: []int{0, 3, 4}, Dst: []int{1, 2, 4}}
	g, err := core.NewGraph(x, make([]int, 6), edges)
	require.NoError(t, err)

	comp, count := g.Components()
	require.Equal(t, 4, count)
	require.Equal(t, []int{0, 0, 1, 1, 2, 3}, comp)
	require.Equal(t, 2, g.Isolated())
}
