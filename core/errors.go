// SPDX-License-Identifier: MIT
// Package core: sentinel errors.
// Every message is prefixed with "core: "; constructors wrap them with the
// offending value using %w so callers branch with errors.Is.

package core

import "errors"

var (
	// ErrNilFeatures indicates that the feature matrix is nil.
	ErrNilFeatures = errors.New("core: features matrix is nil")

	// ErrLabelCount indicates len(labels) != number of feature rows.
	ErrLabelCount = errors.New("core: label count does not match node count")

	// ErrNegativeLabel indicates a class label below zero.
	ErrNegativeLabel = errors.New("core: negative class label")

	// ErrEdgeShape indicates that the edge index rows have different lengths.
	ErrEdgeShape = errors.New("core: edge index rows differ in length")

	// ErrEdgeOutOfRange indicates an edge endpoint outside [0, N).
	ErrEdgeOutOfRange = errors.New("core: edge endpoint out of range")

	// ErrWeightLength indicates len(weights) != number of edges.
	ErrWeightLength = errors.New("core: edge weight count does not match edge count")

	// ErrMaskLength indicates a mask whose length is not the node count.
	ErrMaskLength = errors.New("core: mask length does not match node count")

	// ErrMaskIndex indicates a mask index outside [0, N).
	ErrMaskIndex = errors.New("core: mask index out of range")

	// ErrMaskOverlap indicates a node selected by more than one split.
	ErrMaskOverlap = errors.New("core: masks are not mutually exclusive")

	// ErrUnknownSplit indicates a Split outside Train/Val/Test.
	ErrUnknownSplit = errors.New("core: unknown split")
)
