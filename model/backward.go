// SPDX-License-Identifier: MIT

package model

import (
	"fmt"

	"github.com/katalvlaran/gcnreg/matrix"
)

// Backward accumulates parameter gradients from dLogits = ∂L/∂logits of the
// most recent training forward pass. The cached pass is consumed: a second
// Backward without a new Forward(x, true) returns ErrNoForward.
//
// Per layer, with P = drop(H)·W̃ and Z = Â·P + b:
//
//	∂b = colsum(∂Z)
//	∂P = Âᵀ·∂Z
//	∂W = (drop(H)ᵀ·∂P) ⊙ M_dc
//	∂H = (∂P·W̃ᵀ) ⊙ M_drop
//
// Complexity: O(L·(N·F·H + nnz(Â)·H)).
func (m *GCN) Backward(dLogits *matrix.Dense) error {
	if m.cache == nil {
		return fmt.Errorf("Backward: %w", ErrNoForward)
	}
	if dLogits == nil {
		return fmt.Errorf("Backward: %w", matrix.ErrNilMatrix)
	}
	if dLogits.Rows() != m.adj.Rows() || dLogits.Cols() != m.cfg.Classes {
		return fmt.Errorf("Backward: gradient %dx%d, want %dx%d: %w",
			dLogits.Rows(), dLogits.Cols(), m.adj.Rows(), m.cfg.Classes, matrix.ErrDimensionMismatch)
	}
	caches := m.cache
	m.cache = nil

	g := dLogits
	last := len(m.ls) - 1
	for l := last; l >= 0; l-- {
		c, ly := caches[l], m.ls[l]

		dz := g
		if l < last {
			dz = reluGrad(g, c.z)
		}

		db, err := matrix.ColSums(dz)
		if err != nil {
			return fmt.Errorf("Backward: layer %d: %w", l, err)
		}
		gb := ly.gb.Raw()
		for j, v := range db {
			gb[j] += v
		}

		dp, err := m.adjT.SpMM(dz)
		if err != nil {
			return fmt.Errorf("Backward: layer %d: %w", l, err)
		}
		dw, err := matrix.MulTransA(c.in, dp)
		if err != nil {
			return fmt.Errorf("Backward: layer %d: %w", l, err)
		}
		if c.dcMask != nil {
			if dw, err = matrix.Hadamard(dw, c.dcMask); err != nil {
				return fmt.Errorf("Backward: layer %d: %w", l, err)
			}
		}
		if err = matrix.AddInPlace(ly.gw, dw, 1); err != nil {
			return fmt.Errorf("Backward: layer %d: %w", l, err)
		}

		if l == 0 {
			break
		}
		dh, err := matrix.MulTransB(dp, c.wEff)
		if err != nil {
			return fmt.Errorf("Backward: layer %d: %w", l, err)
		}
		if c.dropMask != nil {
			if dh, err = matrix.Hadamard(dh, c.dropMask); err != nil {
				return fmt.Errorf("Backward: layer %d: %w", l, err)
			}
		}
		g = dh
	}

	return nil
}

// reluGrad returns g ⊙ 1[z > 0].
func reluGrad(g, z *matrix.Dense) *matrix.Dense {
	out := g.Clone()
	raw, zr := out.Raw(), z.Raw()
	for i := range raw {
		if zr[i] <= 0 {
			raw[i] = 0
		}
	}

	return out
}
