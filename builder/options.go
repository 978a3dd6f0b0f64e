// SPDX-License-Identifier: MIT
// Package: gcnreg/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes a generator by mutating a builderConfig before use.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSplit sets the fraction of nodes assigned to the train and validation
// masks; the remainder goes to test. Panics unless train > 0, val ≥ 0 and
// train+val ≤ 1.
func WithSplit(train, val float64) Option {
	if train <= 0 || val < 0 || train+val > 1 {
		panic(fmt.Sprintf("builder: WithSplit(%g, %g) needs train>0, val>=0, train+val<=1", train, val))
	}
	return func(c *builderConfig) {
		c.trainFrac, c.valFrac = train, val
	}
}

// WithFeatureNoise sets the standard deviation of the Gaussian noise added to
// class centroids. Panics if sigma < 0.
func WithFeatureNoise(sigma float64) Option {
	if sigma < 0 {
		panic("builder: WithFeatureNoise(sigma<0)")
	}
	return func(c *builderConfig) {
		c.noiseSigma = sigma
	}
}

// WithName sets the dataset name carried by the generated graph.
// Empty means "use the generator default".
func WithName(name string) Option {
	return func(c *builderConfig) {
		c.name = name
	}
}
