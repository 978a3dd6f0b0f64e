// SPDX-License-Identifier: MIT
// Package core: value types (EdgeIndex, Mask, Split) and Graph options.

package core

import "fmt"

// EdgeIndex is the 2×E edge list: edge e goes from Src[e] to Dst[e].
// Undirected graphs list both directions.
type EdgeIndex struct {
	Src []int
	Dst []int
}

// Len returns the number of edges.
func (ei EdgeIndex) Len() int { return len(ei.Src) }

// Clone returns a deep copy.
func (ei EdgeIndex) Clone() EdgeIndex {
	return EdgeIndex{
		Src: append([]int(nil), ei.Src...),
		Dst: append([]int(nil), ei.Dst...),
	}
}

// validate checks shape and endpoint ranges against n nodes.
func (ei EdgeIndex) validate(n int) error {
	if len(ei.Src) != len(ei.Dst) {
		return fmt.Errorf("src=%d dst=%d: %w", len(ei.Src), len(ei.Dst), ErrEdgeShape)
	}
	for e := range ei.Src {
		s, d := ei.Src[e], ei.Dst[e]
		if s < 0 || s >= n || d < 0 || d >= n {
			return fmt.Errorf("edge %d (%d→%d), n=%d: %w", e, s, d, n, ErrEdgeOutOfRange)
		}
	}

	return nil
}

// Mask selects a subset of nodes: Mask[i] is true when node i belongs to it.
type Mask []bool

// MaskFromIndices builds an n-node mask selecting idx.
func MaskFromIndices(n int, idx []int) (Mask, error) {
	m := make(Mask, n)
	for _, i := range idx {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("mask index %d, n=%d: %w", i, n, ErrMaskIndex)
		}
		m[i] = true
	}

	return m, nil
}

// Count returns the number of selected nodes.
func (m Mask) Count() int {
	c := 0
	for _, v := range m {
		if v {
			c++
		}
	}

	return c
}

// Indices returns the selected node indices in ascending order.
func (m Mask) Indices() []int {
	idx := make([]int, 0, m.Count())
	for i, v := range m {
		if v {
			idx = append(idx, i)
		}
	}

	return idx
}

// Split names one of the three node masks.
type Split int

const (
	// Train selects the training mask.
	Train Split = iota
	// Val selects the validation mask.
	Val
	// Test selects the test mask.
	Test
)

// String implements fmt.Stringer.
func (s Split) String() string {
	switch s {
	case Train:
		return "train"
	case Val:
		return "val"
	case Test:
		return "test"
	default:
		return fmt.Sprintf("Split(%d)", int(s))
	}
}

// GraphOption configures optional Graph parts before validation.
type GraphOption func(g *Graph)

// WithEdgeWeights attaches one weight per edge (default: all ones).
func WithEdgeWeights(w []float64) GraphOption {
	return func(g *Graph) { g.weights = append([]float64(nil), w...) }
}

// WithMasks sets the train/val/test masks. A nil mask selects no nodes.
func WithMasks(train, val, test Mask) GraphOption {
	return func(g *Graph) {
		g.masks[Train] = append(Mask(nil), train...)
		g.masks[Val] = append(Mask(nil), val...)
		g.masks[Test] = append(Mask(nil), test...)
	}
}

// WithName labels the graph (dataset name) for logs.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// GraphStats is a read-only summary for logs and admission checks.
type GraphStats struct {
	Name     string
	Nodes    int
	Edges    int
	Features int
	Classes  int
	Train    int
	Val      int
	Test     int
}
