// SPDX-License-Identifier: MIT

package train

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gcnreg/core"
	"github.com/katalvlaran/gcnreg/loss"
	"github.com/katalvlaran/gcnreg/matrix"
	"github.com/katalvlaran/gcnreg/model"
	"github.com/katalvlaran/gcnreg/optim"
	"github.com/katalvlaran/gcnreg/regularize"
	"go.uber.org/zap"
)

// Trainer drives one model over one graph.
type Trainer struct {
	model *model.GCN
	opt   optim.Optimizer
	graph *core.Graph

	reg       regularize.Regularizer
	regWeight float64
	obs       Observer
	log       *zap.Logger
	run       RunInfo

	x      *matrix.Dense
	labels []int
	edges  core.EdgeIndex
	masks  [3]core.Mask
}

// New binds m, opt and g. Defaults: no regularizer, no observer, no-op logger.
func New(m *model.GCN, opt optim.Optimizer, g *core.Graph, opts ...Option) (*Trainer, error) {
	if m == nil || opt == nil || g == nil {
		return nil, fmt.Errorf("train.New: %w", ErrNilDependency)
	}
	cfg := m.Config()
	if cfg.InFeatures != g.NumFeatures() {
		return nil, fmt.Errorf("train.New: model takes %d features, graph has %d: %w",
			cfg.InFeatures, g.NumFeatures(), ErrIncompatible)
	}
	if cfg.Classes < g.NumClasses() {
		return nil, fmt.Errorf("train.New: model emits %d classes, graph has %d: %w",
			cfg.Classes, g.NumClasses(), ErrIncompatible)
	}

	t := &Trainer{
		model:  m,
		opt:    opt,
		graph:  g,
		reg:    regularize.None{},
		obs:    nopObserver{},
		log:    zap.NewNop(),
		x:      g.Features(),
		labels: g.Labels(),
		edges:  g.Edges(),
	}
	for _, s := range []core.Split{core.Train, core.Val, core.Test} {
		mask, err := g.Mask(s)
		if err != nil {
			return nil, fmt.Errorf("train.New: %w", err)
		}
		t.masks[s] = mask
	}
	for _, o := range opts {
		o(t)
	}

	return t, nil
}

// Info returns the configured run identity.
func (t *Trainer) Info() RunInfo { return t.run }

// TrainStep performs one optimizer update on the full graph.
//
// Stage 1: clear gradients; training-mode forward.
// Stage 2: cross-entropy over the train mask and the weighted penalty.
// Stage 3: backpropagate both; one optimizer step.
// Stage 4: train accuracy and Dirichlet energy of the same logits.
//
// Complexity: one forward and one backward pass.
func (t *Trainer) TrainStep() (StepResult, error) {
	t.model.ZeroGrad()
	out, err := t.model.Forward(t.x, true)
	if err != nil {
		return StepResult{}, fmt.Errorf("TrainStep: %w", err)
	}

	ce, dOut, err := loss.CrossEntropy(out, t.labels, t.masks[core.Train])
	if err != nil {
		return StepResult{}, fmt.Errorf("TrainStep: %w", err)
	}
	r, rGrads, err := t.reg.Penalty(t.model, t.x, t.model.Config().Classes)
	if err != nil {
		return StepResult{}, fmt.Errorf("TrainStep: %w", err)
	}

	if err = t.model.Backward(dOut); err != nil {
		return StepResult{}, fmt.Errorf("TrainStep: %w", err)
	}
	if err = t.model.AddWeightGrads(rGrads, t.regWeight); err != nil {
		return StepResult{}, fmt.Errorf("TrainStep: %w", err)
	}
	if err = t.opt.Step(t.model.Params()); err != nil {
		return StepResult{}, fmt.Errorf("TrainStep: %w", err)
	}

	acc, err := loss.Accuracy(out, t.labels, t.masks[core.Train])
	if err != nil {
		return StepResult{}, fmt.Errorf("TrainStep: %w", err)
	}
	energy, err := core.DirichletEnergy(out, t.edges, nil)
	if err != nil {
		return StepResult{}, fmt.Errorf("TrainStep: %w", err)
	}

	return StepResult{Loss: ce, Reg: t.regWeight * r, TrainAcc: acc, Energy: energy}, nil
}

// Evaluate returns the evaluation-mode accuracy on split s.
func (t *Trainer) Evaluate(s core.Split) (float64, error) {
	if s < core.Train || s > core.Test {
		return 0, fmt.Errorf("Evaluate: %s: %w", s, core.ErrUnknownSplit)
	}
	out, err := t.model.Forward(t.x, false)
	if err != nil {
		return 0, fmt.Errorf("Evaluate(%s): %w", s, err)
	}
	acc, err := loss.Accuracy(out, t.labels, t.masks[s])
	if err != nil {
		return 0, fmt.Errorf("Evaluate(%s): %w", s, err)
	}

	return acc, nil
}

// Val returns the validation accuracy.
func (t *Trainer) Val() (float64, error) { return t.Evaluate(core.Val) }

// Test returns the test accuracy.
func (t *Trainer) Test() (float64, error) { return t.Evaluate(core.Test) }

// Run runs epochs iterations of train → val → test and returns the history.
// Cancellation is checked between epochs; on cancellation the partial history
// is returned together with the context error and ObserveRun is not called.
func (t *Trainer) Run(ctx context.Context, epochs int) (*History, error) {
	if epochs < 1 {
		return nil, fmt.Errorf("Run: epochs=%d: %w", epochs, ErrEpochs)
	}
	log := t.log.With(zap.String("run_id", t.run.ID), zap.Int("run", t.run.Index))
	log.Info("run started",
		zap.String("dataset", t.graph.Name()),
		zap.Int64("seed", t.run.Seed),
		zap.Int("epochs", epochs),
		zap.String("regularizer", t.reg.Name()),
		zap.Float64("reg_weight", t.regWeight),
	)

	h := &History{Epochs: make([]EpochMetrics, 0, epochs)}
	for epoch := 1; epoch <= epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			log.Warn("run cancelled", zap.Int("completed_epochs", h.Len()))
			return h, fmt.Errorf("Run: before epoch %d: %w", epoch, err)
		}

		step, err := t.TrainStep()
		if err != nil {
			return h, fmt.Errorf("Run: epoch %d: %w", epoch, err)
		}
		val, err := t.Val()
		if err != nil {
			return h, fmt.Errorf("Run: epoch %d: %w", epoch, err)
		}
		test, err := t.Test()
		if err != nil {
			return h, fmt.Errorf("Run: epoch %d: %w", epoch, err)
		}

		m := EpochMetrics{
			Epoch:    epoch,
			Loss:     step.Loss,
			Reg:      step.Reg,
			TrainAcc: step.TrainAcc,
			ValAcc:   val,
			TestAcc:  test,
			Energy:   step.Energy,
		}
		h.Append(m)
		t.obs.ObserveEpoch(t.run, m)
	}

	log.Info("run finished",
		zap.Float64("best_test", h.BestTest()),
		zap.Float64("min_energy", h.MinEnergy()),
	)
	t.obs.ObserveRun(t.run, h)

	return h, nil
}
