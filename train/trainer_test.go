// SPDX-License-Identifier: MIT

package train_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gcnreg/builder"
	"github.com/katalvlaran/gcnreg/core"
	"github.com/katalvlaran/gcnreg/model"
	"github.com/katalvlaran/gcnreg/optim"
	"github.com/katalvlaran/gcnreg/regularize"
	"github.com/katalvlaran/gcnreg/train"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recorder struct {
	epochs []train.EpochMetrics
	runs   int
}

func (r *recorder) ObserveEpoch(_ train.RunInfo, m train.EpochMetrics) { r.epochs = append(r.epochs, m) }
func (r *recorder) ObserveRun(train.RunInfo, *train.History)          { r.runs++ }

func newTrainer(t *testing.T, g *core.Graph, seed int64, mcfg func(*model.Config), opts ...train.Option) (*train.Trainer, *model.GCN) {
	t.Helper()
	adj, err := g.NormalizedAdjacency()
	require.NoError(t, err)
	cfg := model.Config{InFeatures: g.NumFeatures(), Hidden: 8, Classes: g.NumClasses(), Layers: 2}
	if mcfg != nil {
		mcfg(&cfg)
	}
	m, err := model.New(cfg, adj, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	tr, err := train.New(m, optim.NewAdam(0.01, 5e-4), g, opts...)
	require.NoError(t, err)

	return tr, m
}

func sbm(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.SBM(60, 3, 6, 0.3, 0.01, builder.WithSeed(11), builder.WithFeatureNoise(0.5))
	require.NoError(t, err)

	return g
}

func TestNew_Validation(t *testing.T) {
	g, err := builder.Tiny()
	require.NoError(t, err)
	adj, err := g.NormalizedAdjacency()
	require.NoError(t, err)

	_, err = train.New(nil, optim.NewAdam(0.01, 0), g)
	require.ErrorIs(t, err, train.ErrNilDependency)

	m, err := model.New(model.Config{InFeatures: 3, Hidden: 2, Classes: 2, Layers: 2}, adj, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	_, err = train.New(m, optim.NewAdam(0.01, 0), g)
	require.ErrorIs(t, err, train.ErrIncompatible)

	m, err = model.New(model.Config{InFeatures: 2, Hidden: 2, Classes: 1, Layers: 2}, adj, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	_, err = train.New(m, optim.NewAdam(0.01, 0), g)
	require.ErrorIs(t, err, train.ErrIncompatible)
}

func TestEvaluate_HasNoSideEffects(t *testing.T) {
	tr, m := newTrainer(t, sbm(t), 1, func(c *model.Config) {
		c.Dropout = 0.5
		c.UseDropConnect = true
		c.DropConnect = 0.3
	})
	_, err := tr.TrainStep()
	require.NoError(t, err)

	before := m.Weights()[0].Clone()
	v1, err := tr.Val()
	require.NoError(t, err)
	v2, err := tr.Val()
	require.NoError(t, err)
	require.Equal(t, v1, v2)
	t1, err := tr.Test()
	require.NoError(t, err)
	t2, err := tr.Evaluate(core.Test)
	require.NoError(t, err)
	require.Equal(t, t1, t2)
	require.Equal(t, before.Raw(), m.Weights()[0].Raw())

	_, err = tr.Evaluate(core.Split(9))
	require.ErrorIs(t, err, core.ErrUnknownSplit)
}

func TestTrainStep_ReducesLoss(t *testing.T) {
	tr, _ := newTrainer(t, sbm(t), 2, nil)

	first, err := tr.TrainStep()
	require.NoError(t, err)
	var last train.StepResult
	for i := 0; i < 100; i++ {
		last, err = tr.TrainStep()
		require.NoError(t, err)
	}
	require.Less(t, last.Loss, first.Loss)
	require.GreaterOrEqual(t, last.TrainAcc, first.TrainAcc)
	require.GreaterOrEqual(t, last.Energy, 0.0)
	require.Zero(t, last.Reg)
}

func TestTrainStep_ReportsWeightedPenalty(t *testing.T) {
	g := sbm(t)
	tr, m := newTrainer(t, g, 3, nil, train.WithRegularizer(regularize.DropConnect{}, 0.5))

	r, _, err := regularize.DropConnect{}.Penalty(m, g.Features(), g.NumClasses())
	require.NoError(t, err)
	step, err := tr.TrainStep()
	require.NoError(t, err)
	require.InDelta(t, 0.5*r, step.Reg, 1e-12)
	require.Greater(t, step.Reg, 0.0)
}

func TestRun_ReproducibleAndObserved(t *testing.T) {
	g, err := builder.Tiny()
	require.NoError(t, err)

	run := func() (*train.History, *recorder) {
		rec := &recorder{}
		tr, _ := newTrainer(t, g, 42, func(c *model.Config) { c.Dropout = 0.5 },
			train.WithRegularizer(regularize.DropConnect{}, 0.001),
			train.WithObserver(rec),
			train.WithRun(train.RunInfo{ID: "r", Seed: 42}),
		)
		h, err := tr.Run(context.Background(), 5)
		require.NoError(t, err)

		return h, rec
	}

	h1, rec := run()
	h2, _ := run()
	require.Equal(t, h1.Epochs, h2.Epochs)
	require.Equal(t, 5, h1.Len())
	require.Len(t, rec.epochs, 5)
	require.Equal(t, 1, rec.runs)
	for i, e := range h1.Epochs {
		require.Equal(t, i+1, e.Epoch)
	}
}

func TestRun_Cancelled(t *testing.T) {
	g, err := builder.Tiny()
	require.NoError(t, err)
	rec := &recorder{}
	tr, _ := newTrainer(t, g, 1, nil, train.WithObserver(rec))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h, err := tr.Run(ctx, 3)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, h.Len())
	require.Zero(t, rec.runs)

	_, err = tr.Run(context.Background(), 0)
	require.ErrorIs(t, err, train.ErrEpochs)
}

func TestRun_LogsLifecycle(t *testing.T) {
	g, err := builder.Tiny()
	require.NoError(t, err)
	obsCore, logs := observer.New(zapcore.InfoLevel)
	tr, _ := newTrainer(t, g, 1, nil, train.WithLogger(zap.New(obsCore)), train.WithRun(train.RunInfo{ID: "abc"}))

	_, err = tr.Run(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("run started").Len())
	finished := logs.FilterMessage("run finished").All()
	require.Len(t, finished, 1)
	require.Equal(t, "abc", finished[0].ContextMap()["run_id"])
}

func TestHistory_BestAndMinAreIndependent(t *testing.T) {
	var h train.History
	require.Zero(t, h.BestTest())
	require.Zero(t, h.MinEnergy())

	h.Append(train.EpochMetrics{Epoch: 1, TestAcc: 0.5, Energy: 1.0})
	h.Append(train.EpochMetrics{Epoch: 2, TestAcc: 0.9, Energy: 3.0})
	h.Append(train.EpochMetrics{Epoch: 3, TestAcc: 0.7, Energy: 0.2})
	require.Equal(t, 0.9, h.BestTest())
	require.Equal(t, 0.2, h.MinEnergy())
}

func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { train.WithObserver(nil) })
	require.Panics(t, func() { train.WithLogger(nil) })
	require.Panics(t, func() { train.WithRegularizer(nil, 1) })
}
