// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/gcnreg/matrix"
)

// ExampleCSR_SpMM propagates features over a 3-node path 0-1-2.
func ExampleCSR_SpMM() {
	adj, _ := matrix.NewCSR(3, 3,
		[]int{0, 1, 1, 2},
		[]int{1, 0, 2, 1},
		[]float64{1, 1, 1, 1},
	)
	x, _ := matrix.NewDenseRows([][]float64{{1}, {10}, {100}})

	out, _ := adj.SpMM(x)
	fmt.Print(out)
	// Output:
	// [10]
	// [101]
	// [10]
}
