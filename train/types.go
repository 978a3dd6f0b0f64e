// SPDX-License-Identifier: MIT

package train

import (
	"errors"
	"math"
)

var (
	// ErrIncompatible indicates a model whose input or output width does not
	// fit the graph.
	ErrIncompatible = errors.New("train: model does not fit graph")

	// ErrNilDependency indicates a nil model, optimizer or graph.
	ErrNilDependency = errors.New("train: nil dependency")

	// ErrEpochs indicates a non-positive epoch budget.
	ErrEpochs = errors.New("train: epochs must be ≥ 1")
)

// RunInfo identifies one training run.
type RunInfo struct {
	ID    string // unique run id (uuid in the CLI)
	Index int    // 0-based position among repeated runs
	Seed  int64
}

// StepResult is what one TrainStep reports.
type StepResult struct {
	Loss     float64 // cross-entropy over the train mask
	Reg      float64 // reg_weight · R
	TrainAcc float64
	Energy   float64 // Dirichlet energy of the training-mode logits
}

// EpochMetrics is one row of History.
type EpochMetrics struct {
	Epoch    int // 1-based
	Loss     float64
	Reg      float64
	TrainAcc float64
	ValAcc   float64
	TestAcc  float64
	Energy   float64
}

// History is the ordered list of per-epoch metrics of one run.
type History struct {
	Epochs []EpochMetrics
}

// Append records one epoch.
func (h *History) Append(m EpochMetrics) { h.Epochs = append(h.Epochs, m) }

// Len returns the number of recorded epochs.
func (h *History) Len() int { return len(h.Epochs) }

// BestTest returns the maximum test accuracy, 0 for an empty history.
func (h *History) BestTest() float64 {
	if len(h.Epochs) == 0 {
		return 0
	}
	best := math.Inf(-1)
	for _, e := range h.Epochs {
		best = math.Max(best, e.TestAcc)
	}

	return best
}

// MinEnergy returns the minimum Dirichlet energy, 0 for an empty history.
// It is independent of BestTest: the two may come from different epochs.
func (h *History) MinEnergy() float64 {
	if len(h.Epochs) == 0 {
		return 0
	}
	low := math.Inf(1)
	for _, e := range h.Epochs {
		low = math.Min(low, e.Energy)
	}

	return low
}

// Observer receives metrics as a run progresses.
type Observer interface {
	ObserveEpoch(run RunInfo, m EpochMetrics)
	ObserveRun(run RunInfo, h *History)
}

type nopObserver struct{}

func (nopObserver) ObserveEpoch(RunInfo, EpochMetrics) {}
func (nopObserver) ObserveRun(RunInfo, *History)       {}
