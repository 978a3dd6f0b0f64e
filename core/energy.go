// SPDX-License-Identifier: MIT
// Package core: Dirichlet energy.

package core

import (
	"fmt"

	"github.com/katalvlaran/gcnreg/matrix"
)

// DirichletEnergy returns ½ Σ_e w_e · ‖out[Src[e]] − out[Dst[e]]‖².
//
// weight may be nil (all ones); otherwise it must hold one value per edge.
// With non-negative weights the result is ≥ 0, and it is 0 exactly when every
// connected pair has identical rows. Scaling all weights by k scales the
// energy by k.
//
// Errors: ErrEdgeShape, ErrEdgeOutOfRange (endpoint ≥ out.Rows()),
// ErrWeightLength, matrix.ErrNilMatrix.
// Complexity: O(E·C).
func DirichletEnergy(out *matrix.Dense, edges EdgeIndex, weight []float64) (float64, error) {
	if out == nil {
		return 0, fmt.Errorf("DirichletEnergy: %w", matrix.ErrNilMatrix)
	}
	if err := edges.validate(out.Rows()); err != nil {
		return 0, fmt.Errorf("DirichletEnergy: %w", err)
	}
	if weight != nil && len(weight) != edges.Len() {
		return 0, fmt.Errorf("DirichletEnergy: weights=%d edges=%d: %w", len(weight), edges.Len(), ErrWeightLength)
	}

	var energy float64
	for e := range edges.Src {
		a, b := out.Row(edges.Src[e]), out.Row(edges.Dst[e])
		var sq float64
		for j := range a {
			d := a[j] - b[j]
			sq += d * d
		}
		if weight != nil {
			sq *= weight[e]
		}
		energy += sq
	}

	return energy / 2, nil
}
