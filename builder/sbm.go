// SPDX-License-Identifier: MIT
// Package: gcnreg/builder
//
// sbm.go - stochastic block model generator.
//
// Model:
//   - Node i belongs to class i mod K (balanced classes).
//   - Each unordered pair {i,j}, i<j, is connected with probability pIn when
//     both nodes share a class and pOut otherwise; kept edges are listed in
//     both directions.
//   - Features are the class centroid (1 on every feature f with f mod K = c)
//     plus N(0, σ²) noise.
//   - Masks come from one rng.Perm(n): the first ⌈train·n⌉ nodes train, the
//     next ⌊val·n⌋ validate, the rest test.
//
// Determinism:
//   - Draw order is fixed: edges (i asc, j asc), then features (row-major),
//     then the permutation.
//
// Complexity:
//   - Time: O(n² + n·F).  Space: O(|E| + n·F).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gcnreg/core"
	"github.com/katalvlaran/gcnreg/matrix"
)

// SBM samples a planted-partition graph with nodes vertices, classes
// communities and features-dimensional node features.
func SBM(nodes, classes, features int, pIn, pOut float64, opts ...Option) (*core.Graph, error) {
	if err := validateMin(MethodSBM, "classes", classes, MinSBMClasses); err != nil {
		return nil, err
	}
	if err := validateMin(MethodSBM, "nodes", nodes, classes); err != nil {
		return nil, err
	}
	if err := validateMin(MethodSBM, "features", features, MinSBMFeatures); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodSBM, "pIn", pIn); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodSBM, "pOut", pOut); err != nil {
		return nil, err
	}

	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", MethodSBM, ErrNeedRandSource)
	}
	rng := cfg.rng

	// 1) Planted labels.
	labels := make([]int, nodes)
	for i := range labels {
		labels[i] = i % classes
	}

	// 2) Edges.
	var edges core.EdgeIndex
	for i := 0; i < nodes; i++ {
		for j := i + 1; j < nodes; j++ {
			p := pOut
			if labels[i] == labels[j] {
				p = pIn
			}
			if rng.Float64() < p {
				edges.Src = append(edges.Src, i, j)
				edges.Dst = append(edges.Dst, j, i)
			}
		}
	}

	// 3) Features.
	x, err := matrix.NewDense(nodes, features)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodSBM, err)
	}
	raw := x.Raw()
	for i := 0; i < nodes; i++ {
		for f := 0; f < features; f++ {
			v := cfg.noiseSigma * rng.NormFloat64()
			if f%classes == labels[i] {
				v++
			}
			raw[i*features+f] = v
		}
	}

	// 4) Split.
	train, val, test := splitMasks(nodes, cfg.trainFrac, cfg.valFrac, rng.Perm(nodes))

	name := cfg.name
	if name == "" {
		name = fmt.Sprintf("sbm-%d-%d", nodes, classes)
	}
	g, err := core.NewGraph(x, labels, edges, core.WithMasks(train, val, test), core.WithName(name))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodSBM, err)
	}

	return g, nil
}

// splitMasks assigns perm[:nTrain] to train, the next nVal to val and the
// rest to test. At least one node always trains.
func splitMasks(n int, trainFrac, valFrac float64, perm []int) (train, val, test core.Mask) {
	nTrain := int(math.Ceil(trainFrac * float64(n)))
	if nTrain < 1 {
		nTrain = 1
	}
	if nTrain > n {
		nTrain = n
	}
	nVal := int(math.Floor(valFrac * float64(n)))
	if nTrain+nVal > n {
		nVal = n - nTrain
	}

	train, val, test = make(core.Mask, n), make(core.Mask, n), make(core.Mask, n)
	for k, node := range perm {
		switch {
		case k < nTrain:
			train[node] = true
		case k < nTrain+nVal:
			val[node] = true
		default:
			test[node] = true
		}
	}

	return train, val, test
}
