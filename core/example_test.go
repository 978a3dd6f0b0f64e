// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/gcnreg/core"
	"github.com/katalvlaran/gcnreg/matrix"
)

// ExampleDirichletEnergy measures how far apart two connected nodes' outputs are.
func ExampleDirichletEnergy() {
	out, _ := matrix.NewDenseRows([][]float64{{0, 0}, {1, 1}})
	edges := core.EdgeIndex{Src: []int{0}, Dst: []int{1}}

	e, _ := core.DirichletEnergy(out, edges, nil)
	fmt.Printf("%.1f\n", e)
	// Output: 1.0
}
