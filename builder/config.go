// SPDX-License-Identifier: MIT
// Package: gcnreg/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng        = nil   (stochastic generators reject it)
//   • trainFrac  = 0.6
//   • valFrac    = 0.2
//   • noiseSigma = 1.0
//   • name       = ""    (generator picks one)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by generators.
type builderConfig struct {
	rng        *rand.Rand
	trainFrac  float64
	valFrac    float64
	noiseSigma float64
	name       string
}

const (
	defaultTrainFrac  = 0.6
	defaultValFrac    = 0.2
	defaultNoiseSigma = 1.0
)

// newBuilderConfig applies opts over the defaults; last option wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		trainFrac:  defaultTrainFrac,
		valFrac:    defaultValFrac,
		noiseSigma: defaultNoiseSigma,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
