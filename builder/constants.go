// SPDX-License-Identifier: MIT

package builder

// Generator names used to prefix errors.
const (
	MethodSBM  = "SBM"
	MethodTiny = "Tiny"
)

// Parameter domains.
const (
	MinProbability = 0.0
	MaxProbability = 1.0

	MinSBMClasses  = 2
	MinSBMFeatures = 1
)
