// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFile indicates that a required dataset file does not exist.
	ErrMissingFile = errors.New("dataset: missing file")

	// ErrMalformed indicates a file whose content does not match the layout.
	ErrMalformed = errors.New("dataset: malformed file")
)

// malformedf wraps ErrMalformed with the file and a detail.
func malformedf(file, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", file, fmt.Sprintf(format, args...), ErrMalformed)
}
