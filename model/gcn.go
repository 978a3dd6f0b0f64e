// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/gcnreg/matrix"
)

// GCN is a stack of graph convolution layers over a fixed adjacency.
type GCN struct {
	cfg   Config
	adj   *matrix.CSR
	adjT  *matrix.CSR
	rng   *rand.Rand
	ls    []*layer
	cache []layerCache
}

// New builds a GCN with Glorot-uniform weights and zero biases drawn from rng.
// adj must be N×N; rng drives initialization, dropout and DropConnect.
// Complexity: O(Σ in·out) for initialization.
func New(cfg Config, adj *matrix.CSR, rng *rand.Rand) (*GCN, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("model.New: %w", err)
	}
	if adj == nil || rng == nil {
		return nil, fmt.Errorf("model.New: nil adjacency or rng: %w", ErrBadConfig)
	}
	if adj.Rows() != adj.Cols() {
		return nil, fmt.Errorf("model.New: adjacency %dx%d: %w", adj.Rows(), adj.Cols(), ErrBadConfig)
	}

	m := &GCN{cfg: cfg, adj: adj, adjT: adj.Transpose(), rng: rng}
	dims := cfg.dims()
	for l := 0; l < cfg.Layers; l++ {
		in, out := dims[l], dims[l+1]
		ly, err := newLayer(in, out, rng)
		if err != nil {
			return nil, fmt.Errorf("model.New: layer %d: %w", l, err)
		}
		m.ls = append(m.ls, ly)
	}

	return m, nil
}

func newLayer(in, out int, rng *rand.Rand) (*layer, error) {
	w, err := matrix.NewDense(in, out)
	if err != nil {
		return nil, err
	}
	bound := math.Sqrt(6 / float64(in+out))
	raw := w.Raw()
	for i := range raw {
		raw[i] = (rng.Float64()*2 - 1) * bound
	}
	b, err := matrix.NewDense(1, out)
	if err != nil {
		return nil, err
	}
	gw, err := matrix.NewDense(in, out)
	if err != nil {
		return nil, err
	}

	return &layer{w: w, b: b, gw: gw, gb: b.Clone()}, nil
}

// Config returns the configuration the model was built with.
func (m *GCN) Config() Config { return m.cfg }

// NumLayers returns the number of GCN layers.
func (m *GCN) NumLayers() int { return len(m.ls) }

// Params returns the trainable parameters in layer order:
// layers.0.weight, layers.0.bias, layers.1.weight, ...
// Values and gradients are live views; optimizers update them in place.
func (m *GCN) Params() []Param {
	ps := make([]Param, 0, 2*len(m.ls))
	for l, ly := range m.ls {
		ps = append(ps,
			Param{Name: fmt.Sprintf("layers.%d.weight", l), Value: ly.w, Grad: ly.gw},
			Param{Name: fmt.Sprintf("layers.%d.bias", l), Value: ly.b, Grad: ly.gb},
		)
	}

	return ps
}

// Weights returns the weight matrices (no biases) in layer order.
func (m *GCN) Weights() []*matrix.Dense {
	ws := make([]*matrix.Dense, len(m.ls))
	for l, ly := range m.ls {
		ws[l] = ly.w
	}

	return ws
}

// DropConnectRate returns the active DropConnect rate, 0 when disabled.
func (m *GCN) DropConnectRate() float64 {
	if !m.cfg.UseDropConnect {
		return 0
	}

	return m.cfg.DropConnect
}

// ZeroGrad clears every gradient accumulator.
func (m *GCN) ZeroGrad() {
	for _, ly := range m.ls {
		ly.gw.Zero()
		ly.gb.Zero()
	}
}

// AddWeightGrads accumulates alpha·grads[l] into the weight gradient of layer l.
// len(grads) must equal NumLayers(); nil entries are skipped.
func (m *GCN) AddWeightGrads(grads []*matrix.Dense, alpha float64) error {
	if len(grads) != len(m.ls) {
		return fmt.Errorf("AddWeightGrads: got %d grads for %d layers: %w", len(grads), len(m.ls), matrix.ErrDimensionMismatch)
	}
	for l, g := range grads {
		if g == nil {
			continue
		}
		if err := matrix.AddInPlace(m.ls[l].gw, g, alpha); err != nil {
			return fmt.Errorf("AddWeightGrads: layer %d: %w", l, err)
		}
	}

	return nil
}
