// SPDX-License-Identifier: MIT

package builder

// validateMin ensures got ≥ min.
// Complexity: O(1).
func validateMin(method, param string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewNodes, "%s=%d < min=%d", param, got, min)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1).
func validateProbability(method, param string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability, "%s=%.6f not in [%.1f,%.1f]",
			param, p, MinProbability, MaxProbability)
	}

	return nil
}
