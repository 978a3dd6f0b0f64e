// SPDX-License-Identifier: MIT

package train

import (
	"github.com/katalvlaran/gcnreg/regularize"
	"go.uber.org/zap"
)

// Option customizes a Trainer. Option constructors panic on nil arguments.
type Option func(*Trainer)

// WithRegularizer adds weight·R to the training objective.
func WithRegularizer(r regularize.Regularizer, weight float64) Option {
	if r == nil {
		panic("train: WithRegularizer(nil)")
	}
	return func(t *Trainer) {
		t.reg, t.regWeight = r, weight
	}
}

// WithObserver sets the metrics sink.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("train: WithObserver(nil)")
	}
	return func(t *Trainer) {
		t.obs = o
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("train: WithLogger(nil)")
	}
	return func(t *Trainer) {
		t.log = l
	}
}

// WithRun tags every observation with run.
func WithRun(run RunInfo) Option {
	return func(t *Trainer) {
		t.run = run
	}
}
