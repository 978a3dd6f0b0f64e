// SPDX-License-Identifier: MIT

package model

import (
	"fmt"

	"github.com/katalvlaran/gcnreg/matrix"
)

// Forward computes the N×C logits for features x.
//
// With train=true dropout and DropConnect draw fresh masks from the model's
// random source and the pass is cached for Backward. With train=false the
// pass is deterministic and neither the cache nor the random source changes.
//
// Complexity: O(L·(N·F·H + nnz(Â)·H)).
func (m *GCN) Forward(x *matrix.Dense, train bool) (*matrix.Dense, error) {
	if x == nil {
		return nil, fmt.Errorf("Forward: %w", matrix.ErrNilMatrix)
	}
	if x.Rows() != m.adj.Rows() || x.Cols() != m.cfg.InFeatures {
		return nil, fmt.Errorf("Forward: features %dx%d, want %dx%d: %w",
			x.Rows(), x.Cols(), m.adj.Rows(), m.cfg.InFeatures, ErrInputShape)
	}

	var caches []layerCache
	if train {
		caches = make([]layerCache, len(m.ls))
	}

	h := x
	last := len(m.ls) - 1
	for l, ly := range m.ls {
		in, dropMask := h, (*matrix.Dense)(nil)
		if train && m.cfg.Dropout > 0 {
			in, dropMask = m.dropout(h)
		}
		wEff, dcMask := ly.w, (*matrix.Dense)(nil)
		if train && m.DropConnectRate() > 0 {
			wEff, dcMask = m.dropConnect(ly.w)
		}

		xw, err := matrix.Mul(in, wEff)
		if err != nil {
			return nil, fmt.Errorf("Forward: layer %d: %w", l, err)
		}
		z, err := m.adj.SpMM(xw)
		if err != nil {
			return nil, fmt.Errorf("Forward: layer %d: %w", l, err)
		}
		if err = matrix.AddRowVector(z, ly.b.Raw()); err != nil {
			return nil, fmt.Errorf("Forward: layer %d: %w", l, err)
		}

		if train {
			caches[l] = layerCache{in: in, dropMask: dropMask, wEff: wEff, dcMask: dcMask, z: z}
		}
		if l == last {
			h = z
			break
		}
		if h, err = matrix.Apply(z, relu); err != nil {
			return nil, fmt.Errorf("Forward: layer %d: %w", l, err)
		}
	}

	if train {
		m.cache = caches
	}

	return h, nil
}

func relu(v float64) float64 {
	if v > 0 {
		return v
	}

	return 0
}

// dropout returns a masked copy of h and the per-element scale it applied.
func (m *GCN) dropout(h *matrix.Dense) (*matrix.Dense, *matrix.Dense) {
	return m.bernoulliScale(h, m.cfg.Dropout)
}

// dropConnect returns W ⊙ M / (1 − p) and the per-weight scale it applied.
func (m *GCN) dropConnect(w *matrix.Dense) (*matrix.Dense, *matrix.Dense) {
	return m.bernoulliScale(w, m.cfg.DropConnect)
}

// bernoulliScale zeroes each element with probability p and scales survivors
// by 1/(1−p). Draws are taken in row-major order. The returned mask has the
// shape of src and holds the applied scale per element.
func (m *GCN) bernoulliScale(src *matrix.Dense, p float64) (*matrix.Dense, *matrix.Dense) {
	out, mask := src.Clone(), src.Clone()
	raw, mr := out.Raw(), mask.Raw()
	keep := 1 / (1 - p)
	for i := range raw {
		if m.rng.Float64() < p {
			raw[i], mr[i] = 0, 0
			continue
		}
		mr[i] = keep
		raw[i] *= keep
	}

	return out, mask
}
