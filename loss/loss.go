// SPDX-License-Identifier: MIT

// Package loss computes the masked cross-entropy objective and accuracy over
// node logits.
//
// CrossEntropy averages −log softmax(logits[i])[y_i] over the selected rows
// and returns the gradient with respect to the logits: (softmax − onehot)/|mask|
// on selected rows and 0 elsewhere. Softmax is computed with the row maximum
// subtracted so large logits do not overflow.
package loss

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gcnreg/core"
	"github.com/katalvlaran/gcnreg/matrix"
)

var (
	// ErrEmptyMask indicates a loss over a mask that selects no nodes.
	ErrEmptyMask = errors.New("loss: mask selects no nodes")

	// ErrShape indicates logits, labels and mask disagree on the node count.
	ErrShape = errors.New("loss: logits, labels and mask sizes differ")

	// ErrLabelOutOfRange indicates a selected label ≥ number of logit columns.
	ErrLabelOutOfRange = errors.New("loss: label out of range")
)

func checkShapes(logits *matrix.Dense, labels []int, mask core.Mask) error {
	if logits == nil {
		return matrix.ErrNilMatrix
	}
	if len(labels) != logits.Rows() || len(mask) != logits.Rows() {
		return fmt.Errorf("rows=%d labels=%d mask=%d: %w", logits.Rows(), len(labels), len(mask), ErrShape)
	}

	return nil
}

// CrossEntropy returns the mean cross-entropy over masked rows and its
// gradient with respect to logits.
// Complexity: O(N·C).
func CrossEntropy(logits *matrix.Dense, labels []int, mask core.Mask) (float64, *matrix.Dense, error) {
	if err := checkShapes(logits, labels, mask); err != nil {
		return 0, nil, fmt.Errorf("CrossEntropy: %w", err)
	}
	count := mask.Count()
	if count == 0 {
		return 0, nil, fmt.Errorf("CrossEntropy: %w", ErrEmptyMask)
	}
	grad, err := matrix.NewDense(logits.Rows(), logits.Cols())
	if err != nil {
		return 0, nil, fmt.Errorf("CrossEntropy: %w", err)
	}

	c := logits.Cols()
	inv := 1 / float64(count)
	var total float64
	for i, selected := range mask {
		if !selected {
			continue
		}
		y := labels[i]
		if y >= c {
			return 0, nil, fmt.Errorf("CrossEntropy: node %d label %d classes %d: %w", i, y, c, ErrLabelOutOfRange)
		}
		row := logits.Row(i)
		mx := row[0]
		for _, v := range row[1:] {
			if v > mx {
				mx = v
			}
		}
		var z float64
		for _, v := range row {
			z += math.Exp(v - mx)
		}
		logZ := mx + math.Log(z)
		total += logZ - row[y]

		g := grad.Row(i)
		for j, v := range row {
			g[j] = math.Exp(v-logZ) * inv
		}
		g[y] -= inv
	}

	return total * inv, grad, nil
}

// Accuracy returns the fraction of masked rows whose arg-max logit equals the
// label. An empty mask yields 0.
// Complexity: O(N·C).
func Accuracy(logits *matrix.Dense, labels []int, mask core.Mask) (float64, error) {
	if err := checkShapes(logits, labels, mask); err != nil {
		return 0, fmt.Errorf("Accuracy: %w", err)
	}
	pred, err := matrix.ArgmaxRows(logits)
	if err != nil {
		return 0, fmt.Errorf("Accuracy: %w", err)
	}

	correct, count := 0, 0
	for i, selected := range mask {
		if !selected {
			continue
		}
		count++
		if pred[i] == labels[i] {
			correct++
		}
	}
	if count == 0 {
		return 0, nil
	}

	return float64(correct) / float64(count), nil
}
