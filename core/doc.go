// SPDX-License-Identifier: MIT

// Package core defines the node-classification Graph: node features, integer
// labels, an edge index, optional per-edge weights and the train/val/test
// masks, together with the two graph-level computations the trainer needs:
//
//   - NormalizedAdjacency: the GCN propagation matrix D^-1/2 (A + I) D^-1/2
//     as a matrix.CSR, with self-loops added for nodes that lack one.
//   - DirichletEnergy: ½ Σ_e w_e ‖out[src_e] − out[dst_e]‖², a smoothness
//     measure of a node-output matrix over the edge set.
//
// A Graph is validated once by NewGraph and is immutable afterwards; every
// accessor returns a copy or a read-only view, so it can be shared across
// training and evaluation passes without locks.
//
// Errors:
//
//	ErrNilFeatures      - features matrix is nil.
//	ErrLabelCount       - len(labels) differs from the number of feature rows.
//	ErrNegativeLabel    - a label is < 0.
//	ErrEdgeShape        - Src and Dst have different lengths.
//	ErrEdgeOutOfRange   - an edge endpoint is not a valid node index.
//	ErrWeightLength     - len(weights) differs from the number of edges.
//	ErrMaskLength       - a mask is not one entry per node.
//	ErrMaskIndex        - MaskFromIndices got an index outside [0, N).
//	ErrMaskOverlap      - a node is selected by more than one mask.
//	ErrUnknownSplit     - Split value is not Train, Val or Test.
package core
