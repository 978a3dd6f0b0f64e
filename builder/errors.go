// SPDX-License-Identifier: MIT
// Package: gcnreg/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the call site, never in the sentinel.
//   • Generators never panic; option constructors (WithX) do.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates a size parameter (nodes, classes, features) below
// its minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic generator without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf prefixes a sentinel with the generator name and a detail.
// It returns an error of the form "<Method>: <detail>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
