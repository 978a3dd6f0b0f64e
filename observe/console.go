// SPDX-License-Identifier: MIT

package observe

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/gcnreg/train"
)

// Console prints one line per epoch and the best/min line per run.
// Write errors are kept; the first one is returned by Err.
type Console struct {
	w   io.Writer
	err error
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console { return &Console{w: w} }

// ObserveEpoch implements train.Observer.
func (c *Console) ObserveEpoch(_ train.RunInfo, m train.EpochMetrics) {
	c.printf("Epoch: %03d, Loss: %.4f, Reg: %.4f, train_acc:%.4f, val_acc:%.4f, test_acc: %.4f, dirichlet_energy_value: %.4f\n",
		m.Epoch, m.Loss, m.Reg, m.TrainAcc, m.ValAcc, m.TestAcc, m.Energy)
}

// ObserveRun implements train.Observer.
func (c *Console) ObserveRun(_ train.RunInfo, h *train.History) {
	c.printf("best test: %.4f de: %.4f\n", h.BestTest(), h.MinEnergy())
}

// Summary prints the mean and population standard deviation of the best test
// accuracy over several runs. It prints nothing for fewer than two runs.
func (c *Console) Summary(hs []*train.History) {
	if len(hs) < 2 {
		return
	}
	mean, std := MeanStd(bestTests(hs))
	c.printf("runs: %d mean best test: %.4f std: %.4f\n", len(hs), mean, std)
}

// Err returns the first write error.
func (c *Console) Err() error { return c.err }

func (c *Console) printf(format string, args ...interface{}) {
	if c.err != nil {
		return
	}
	if _, err := fmt.Fprintf(c.w, format, args...); err != nil {
		c.err = fmt.Errorf("observe.Console: %w", err)
	}
}

func bestTests(hs []*train.History) []float64 {
	out := make([]float64, len(hs))
	for i, h := range hs {
		out[i] = h.BestTest()
	}

	return out
}

// MeanStd returns the mean and population standard deviation of v.
func MeanStd(v []float64) (mean, std float64) {
	if len(v) == 0 {
		return 0, 0
	}
	for _, x := range v {
		mean += x
	}
	mean /= float64(len(v))
	for _, x := range v {
		std += (x - mean) * (x - mean)
	}

	return mean, math.Sqrt(std / float64(len(v)))
}
