// SPDX-License-Identifier: MIT

// Command gcntrain trains a graph convolutional network for node
// classification with a Rademacher complexity penalty and prints per-epoch
// metrics, including the Dirichlet energy of the logits.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/gcnreg/builder"
	"github.com/katalvlaran/gcnreg/config"
	"github.com/katalvlaran/gcnreg/core"
	"github.com/katalvlaran/gcnreg/dataset"
	"github.com/katalvlaran/gcnreg/matrix"
	"github.com/katalvlaran/gcnreg/model"
	"github.com/katalvlaran/gcnreg/observe"
	"github.com/katalvlaran/gcnreg/optim"
	"github.com/katalvlaran/gcnreg/regularize"
	"github.com/katalvlaran/gcnreg/train"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		var exitErr *config.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is main without the process exit, so tests can drive it.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, help, err := config.Parse(args, stderr)
	if err != nil || help {
		return err
	}

	log, err := cfg.NewLogger(stderr)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	workers := matrix.SetWorkers(cfg.Workers)
	log.Info("starting",
		zap.String("device", "cpu"),
		zap.Int("workers", workers),
		zap.String("dataset", cfg.Dataset),
		zap.Int64("seed", cfg.Seed))

	g, err := loadGraph(cfg)
	if err != nil {
		return err
	}
	stats := g.Stats()
	_, components := g.Components()
	log.Info("graph loaded",
		zap.String("name", g.Name()),
		zap.Int("nodes", stats.Nodes),
		zap.Int("edges", stats.Edges),
		zap.Int("features", stats.Features),
		zap.Int("classes", stats.Classes),
		zap.Int("train", stats.Train),
		zap.Int("val", stats.Val),
		zap.Int("test", stats.Test),
		zap.Int("components", components),
		zap.Int("isolated", g.Isolated()))

	adj, err := g.NormalizedAdjacency()
	if err != nil {
		return fmt.Errorf("gcntrain: %w", err)
	}
	reg, err := regularize.Parse(cfg.RegKind)
	if err != nil {
		return fmt.Errorf("gcntrain: %w", err)
	}

	console := observe.NewConsole(stdout)
	metrics := observe.NewPrometheus("gcntrain")
	obs := observe.Multi{console, observe.NewZap(log), metrics}

	histories := make([]*train.History, 0, cfg.Runs)
	for r := 0; r < cfg.Runs; r++ {
		info := train.RunInfo{ID: uuid.NewString(), Index: r, Seed: cfg.Seed + int64(r)}
		h, err := runOnce(ctx, cfg, g, adj, reg, info, obs, log)
		if err != nil {
			return err
		}
		histories = append(histories, h)
	}
	console.Summary(histories)

	if cfg.MetricsFile != "" {
		if err = metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		log.Info("metrics written", zap.String("path", cfg.MetricsFile))
	}

	return console.Err()
}

// runOnce builds a fresh model and optimizer for one seed and trains it.
func runOnce(
	ctx context.Context,
	cfg *config.Config,
	g *core.Graph,
	adj *matrix.CSR,
	reg regularize.Regularizer,
	info train.RunInfo,
	obs train.Observer,
	log *zap.Logger,
) (*train.History, error) {
	m, err := model.New(model.Config{
		InFeatures:     g.NumFeatures(),
		Hidden:         cfg.HiddenSize,
		Classes:        g.NumClasses(),
		Layers:         cfg.NumLayers,
		Dropout:        cfg.Dropout,
		UseDropConnect: cfg.UseVarDrop,
		DropConnect:    cfg.DropP,
	}, adj, rand.New(rand.NewSource(info.Seed)))
	if err != nil {
		return nil, fmt.Errorf("gcntrain: %w", err)
	}

	var opt optim.Optimizer
	switch cfg.Optimizer {
	case "sgd":
		opt = optim.NewSGD(cfg.LR, cfg.Momentum, cfg.WeightDecay)
	default:
		opt = optim.NewAdam(cfg.LR, cfg.WeightDecay)
	}

	t, err := train.New(m, opt, g,
		train.WithRegularizer(reg, cfg.RegWeight),
		train.WithObserver(obs),
		train.WithLogger(log),
		train.WithRun(info))
	if err != nil {
		return nil, fmt.Errorf("gcntrain: %w", err)
	}

	return t.Run(ctx, cfg.Epochs)
}

// loadGraph generates or reads the graph named by cfg.Dataset.
func loadGraph(cfg *config.Config) (*core.Graph, error) {
	switch cfg.Dataset {
	case config.DatasetTiny:
		return builder.Tiny()
	case config.DatasetSynthetic:
		s := cfg.Synthetic
		return builder.SBM(s.Nodes, s.Classes, s.Features, s.PIn, s.POut,
			builder.WithSeed(cfg.Seed),
			builder.WithFeatureNoise(s.Noise),
			builder.WithName(config.DatasetSynthetic))
	default:
		return dataset.LoadSAINT(dataset.Dir(cfg.DataRoot, cfg.Dataset))
	}
}
