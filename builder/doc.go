// SPDX-License-Identifier: MIT

// Package builder generates seeded synthetic node-classification graphs.
//
// It offers:
//
//   - SBM: a stochastic block model with planted classes, class-centred
//     Gaussian features and a random train/val/test split.
//   - Tiny: a fixed 4-node, 2-class, 3-edge fixture for smoke tests.
//
// Configuration follows the functional-options style:
//
//   - Option:           a function that mutates builderConfig before use.
//   - WithSeed/WithRand: the random source; SBM requires one.
//   - WithSplit:        train and validation ratios; the rest is test.
//   - WithFeatureNoise: standard deviation of the feature noise.
//   - WithName:         dataset name carried by the graph.
//
// Guarantees:
//
//   - Same parameters, options and seed ⇒ identical graphs.
//   - Option constructors panic on meaningless values; SBM itself only
//     returns sentinel errors (ErrTooFewNodes, ErrInvalidProbability,
//     ErrNeedRandSource).
//   - Edges are undirected and listed in both directions; no self-loops.
package builder
