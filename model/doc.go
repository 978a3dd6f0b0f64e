// SPDX-License-Identifier: MIT

// Package model implements a multi-layer Graph Convolutional Network with
// hand-derived gradients.
//
// Layer l computes
//
//	Z_l = Â · (drop(H_l) · W̃_l) + b_l,   H_{l+1} = ReLU(Z_l)  (l < L−1)
//
// and the last layer's Z is returned as the class logits. Â is the symmetric
// normalized adjacency from core.Graph.NormalizedAdjacency.
//
// Training mode applies inverted dropout to each layer input and, when
// DropConnect is enabled, replaces every weight matrix by W ⊙ M / (1 − p) with a
// fresh Bernoulli mask M per forward pass. Evaluation mode uses neither, which
// matches the expectation of the training-time layer, and leaves the model and
// its random source untouched.
//
// Gradients:
//
//	Backward(dLogits) walks the cached training pass in reverse and accumulates
//	∂L/∂W and ∂L/∂b into the parameter gradients; ZeroGrad clears them. Extra
//	gradient terms (the regularizer) are added with AddWeightGrads.
package model
