// SPDX-License-Identifier: MIT
// Package core: symmetric GCN normalization.
//
// Contract:
//   - Nodes without a self-loop receive one with weight 1; existing self-loops
//     keep their weight.
//   - deg[i] = Σ w_e over edges with Dst[e] == i (self-loops included).
//   - Â[dst][src] = deg[src]^-1/2 · w · deg[dst]^-1/2, so (Â·X)[i] aggregates
//     messages flowing into node i.
//   - Zero-degree rows (possible only with zero weights) contribute nothing.

package core

import (
	"math"

	"github.com/katalvlaran/gcnreg/matrix"
)

// NormalizedAdjacency builds the propagation matrix D^-1/2 (A + I) D^-1/2.
// Complexity: O(E log E + N).
func (g *Graph) NormalizedAdjacency() (*matrix.CSR, error) {
	n := g.NumNodes()
	e := g.edges.Len()

	hasLoop := make([]bool, n)
	for k := 0; k < e; k++ {
		if g.edges.Src[k] == g.edges.Dst[k] {
			hasLoop[g.edges.Src[k]] = true
		}
	}

	rows := make([]int, 0, e+n) // dst
	cols := make([]int, 0, e+n) // src
	vals := make([]float64, 0, e+n)
	for k := 0; k < e; k++ {
		w := 1.0
		if g.weights != nil {
			w = g.weights[k]
		}
		rows = append(rows, g.edges.Dst[k])
		cols = append(cols, g.edges.Src[k])
		vals = append(vals, w)
	}
	for i := 0; i < n; i++ {
		if !hasLoop[i] {
			rows = append(rows, i)
			cols = append(cols, i)
			vals = append(vals, 1)
		}
	}

	deg := make([]float64, n)
	for k, d := range rows {
		deg[d] += vals[k]
	}
	inv := make([]float64, n)
	for i, d := range deg {
		if d > 0 {
			inv[i] = 1 / math.Sqrt(d)
		}
	}
	for k := range vals {
		vals[k] *= inv[cols[k]] * inv[rows[k]]
	}

	return matrix.NewCSR(n, n, rows, cols, vals)
}
