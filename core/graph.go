// SPDX-License-Identifier: MIT
// Package core: Graph construction and accessors.

package core

import (
	"fmt"

	"github.com/katalvlaran/gcnreg/matrix"
)

// Graph is an immutable node-classification dataset.
type Graph struct {
	name     string
	features *matrix.Dense
	labels   []int
	edges    EdgeIndex
	weights  []float64 // nil means all ones
	masks    [3]Mask
	classes  int
}

// NewGraph validates and assembles a Graph. Inputs are copied.
// Stage 1 (Validate): features, labels, edges, weights, masks.
// Stage 2 (Finalize): resolve nil masks to empty masks and count classes.
// Complexity: O(N*F + E).
func NewGraph(features *matrix.Dense, labels []int, edges EdgeIndex, opts ...GraphOption) (*Graph, error) {
	if features == nil {
		return nil, ErrNilFeatures
	}
	g := &Graph{
		features: features.Clone(),
		labels:   append([]int(nil), labels...),
		edges:    edges.Clone(),
	}
	for _, opt := range opts {
		opt(g)
	}

	n := features.Rows()
	if len(labels) != n {
		return nil, fmt.Errorf("labels=%d nodes=%d: %w", len(labels), n, ErrLabelCount)
	}
	for i, y := range labels {
		if y < 0 {
			return nil, fmt.Errorf("node %d label %d: %w", i, y, ErrNegativeLabel)
		}
		if y+1 > g.classes {
			g.classes = y + 1
		}
	}
	if err := g.edges.validate(n); err != nil {
		return nil, err
	}
	if g.weights != nil && len(g.weights) != g.edges.Len() {
		return nil, fmt.Errorf("weights=%d edges=%d: %w", len(g.weights), g.edges.Len(), ErrWeightLength)
	}
	if err := g.validateMasks(n); err != nil {
		return nil, err
	}

	return g, nil
}

// validateMasks resolves nil masks and enforces length and disjointness.
func (g *Graph) validateMasks(n int) error {
	for s := range g.masks {
		if g.masks[s] == nil {
			g.masks[s] = make(Mask, n)
		}
		if len(g.masks[s]) != n {
			return fmt.Errorf("%s mask=%d nodes=%d: %w", Split(s), len(g.masks[s]), n, ErrMaskLength)
		}
	}
	for i := 0; i < n; i++ {
		selected := 0
		for s := range g.masks {
			if g.masks[s][i] {
				selected++
			}
		}
		if selected > 1 {
			return fmt.Errorf("node %d: %w", i, ErrMaskOverlap)
		}
	}

	return nil
}

// Name returns the dataset name given by WithName.
func (g *Graph) Name() string { return g.name }

// NumNodes returns N.
func (g *Graph) NumNodes() int { return g.features.Rows() }

// NumFeatures returns F.
func (g *Graph) NumFeatures() int { return g.features.Cols() }

// NumClasses returns max(label)+1.
func (g *Graph) NumClasses() int { return g.classes }

// NumEdges returns E.
func (g *Graph) NumEdges() int { return g.edges.Len() }

// Features returns the feature matrix. Callers must not mutate it.
func (g *Graph) Features() *matrix.Dense { return g.features }

// Labels returns a copy of the labels.
func (g *Graph) Labels() []int { return append([]int(nil), g.labels...) }

// Edges returns a copy of the edge index.
func (g *Graph) Edges() EdgeIndex { return g.edges.Clone() }

// EdgeWeights returns a copy of the edge weights, or nil when unweighted.
func (g *Graph) EdgeWeights() []float64 {
	if g.weights == nil {
		return nil
	}

	return append([]float64(nil), g.weights...)
}

// Mask returns a copy of the mask for split s.
func (g *Graph) Mask(s Split) (Mask, error) {
	if s < Train || s > Test {
		return nil, fmt.Errorf("%s: %w", s, ErrUnknownSplit)
	}

	return append(Mask(nil), g.masks[s]...), nil
}

// Stats returns a snapshot of sizes.
// Complexity: O(N).
func (g *Graph) Stats() GraphStats {
	return GraphStats{
		Name:     g.name,
		Nodes:    g.NumNodes(),
		Edges:    g.NumEdges(),
		Features: g.NumFeatures(),
		Classes:  g.classes,
		Train:    g.masks[Train].Count(),
		Val:      g.masks[Val].Count(),
		Test:     g.masks[Test].Count(),
	}
}
