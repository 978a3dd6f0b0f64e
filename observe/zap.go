// SPDX-License-Identifier: MIT

package observe

import (
	"github.com/katalvlaran/gcnreg/train"
	"go.uber.org/zap"
)

// Zap logs epochs at debug level and run summaries at info level.
type Zap struct {
	log *zap.Logger
}

// NewZap returns a Zap observer; nil means zap.NewNop().
func NewZap(l *zap.Logger) *Zap {
	if l == nil {
		l = zap.NewNop()
	}

	return &Zap{log: l}
}

// ObserveEpoch implements train.Observer.
func (z *Zap) ObserveEpoch(run train.RunInfo, m train.EpochMetrics) {
	z.log.Debug("epoch",
		zap.String("run_id", run.ID),
		zap.Int("epoch", m.Epoch),
		zap.Float64("loss", m.Loss),
		zap.Float64("reg", m.Reg),
		zap.Float64("train_acc", m.TrainAcc),
		zap.Float64("val_acc", m.ValAcc),
		zap.Float64("test_acc", m.TestAcc),
		zap.Float64("dirichlet_energy", m.Energy),
	)
}

// ObserveRun implements train.Observer.
func (z *Zap) ObserveRun(run train.RunInfo, h *train.History) {
	z.log.Info("run summary",
		zap.String("run_id", run.ID),
		zap.Int("run", run.Index),
		zap.Int64("seed", run.Seed),
		zap.Int("epochs", h.Len()),
		zap.Float64("best_test", h.BestTest()),
		zap.Float64("min_energy", h.MinEnergy()),
	)
}
