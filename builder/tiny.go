// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/gcnreg/core"
	"github.com/katalvlaran/gcnreg/matrix"
)

// Tiny returns the fixed path graph 0-1-2-3 with two classes {0,1} and {2,3}.
// Nodes 0 and 3 train, node 1 validates and node 2 tests.
func Tiny() (*core.Graph, error) {
	x, err := matrix.NewDenseRows([][]float64{
		{1, 0},
		{0.8, 0.2},
		{0.1, 0.9},
		{0, 1},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodTiny, err)
	}
	edges := core.EdgeIndex{
		Src: []int{0, 1, 1, 2, 2, 3},
		Dst: []int{1, 0, 2, 1, 3, 2},
	}
	train := core.Mask{true, false, false, true}
	val := core.Mask{false, true, false, false}
	test := core.Mask{false, false, true, false}

	g, err := core.NewGraph(x, []int{0, 0, 1, 1}, edges, core.WithMasks(train, val, test), core.WithName("tiny"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodTiny, err)
	}

	return g, nil
}
