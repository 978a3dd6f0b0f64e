// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// ExitError carries the process exit code for a configuration failure.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// bind registers every flag of the trainer on fs, writing into cfg.
// Flag defaults are the current values of cfg.
func bind(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.NumLayers, "num-layers", cfg.NumLayers, "Number of GCN layers.")
	fs.Var(intsValue{&cfg.NumNeighbors}, "num-neighbors", "Neighbors sampled per layer, comma separated (accepted, unused: training is full-batch).")
	fs.IntVar(&cfg.HiddenSize, "hidden-size", cfg.HiddenSize, "Hidden layer width.")
	fs.IntVar(&cfg.BatchSize, "batch-size", cfg.BatchSize, "Batch size (accepted, unused: training is full-batch).")
	fs.Float64Var(&cfg.Dropout, "dropout", cfg.Dropout, "Dropout rate on layer inputs, in [0,1).")
	fs.Float64Var(&cfg.LR, "lr", cfg.LR, "Learning rate.")
	fs.Float64Var(&cfg.WeightDecay, "weight-decay", cfg.WeightDecay, "L2 weight decay.")
	fs.IntVar(&cfg.Epochs, "epochs", cfg.Epochs, "Number of training epochs.")
	fs.IntVar(&cfg.Runs, "runs", cfg.Runs, "Number of independent runs (seed, seed+1, ...).")
	fs.Float64Var(&cfg.RegWeight, "reg-weight", cfg.RegWeight, "Weight of the Rademacher penalty.")
	fs.Float64Var(&cfg.DropP, "dropp", cfg.DropP, "DropConnect rate, in [0,1).")
	fs.Var(boolValue{&cfg.UseVarDrop}, "use-vardrop", "Enable DropConnect: true/false, 1/0, yes/no, on/off.")
	fs.StringVar(&cfg.Dataset, "dataset", cfg.Dataset, "Dataset name under --data-root, or 'synthetic' / 'tiny'.")
	fs.StringVar(&cfg.DataRoot, "data-root", cfg.DataRoot, "Directory holding the datasets (default ../2024KDD/dataset).")

	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed of the first run.")
	fs.StringVar(&cfg.RegKind, "reg-kind", cfg.RegKind, "Penalty: 'dc', 'pinf-q1' or 'none'.")
	fs.StringVar(&cfg.Optimizer, "optimizer", cfg.Optimizer, "Optimizer: 'adam' or 'sgd'.")
	fs.Float64Var(&cfg.Momentum, "momentum", cfg.Momentum, "SGD momentum.")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Worker goroutines for matrix kernels (0 = GOMAXPROCS).")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: 'debug', 'info', 'warn' or 'error'.")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: 'console' or 'json'.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "Write Prometheus metrics to this textfile at the end.")

	fs.IntVar(&cfg.Synthetic.Nodes, "synthetic-nodes", cfg.Synthetic.Nodes, "Synthetic graph: number of nodes.")
	fs.IntVar(&cfg.Synthetic.Classes, "synthetic-classes", cfg.Synthetic.Classes, "Synthetic graph: number of classes.")
	fs.IntVar(&cfg.Synthetic.Features, "synthetic-features", cfg.Synthetic.Features, "Synthetic graph: feature dimension.")
	fs.Float64Var(&cfg.Synthetic.PIn, "synthetic-p-in", cfg.Synthetic.PIn, "Synthetic graph: intra-class edge probability.")
	fs.Float64Var(&cfg.Synthetic.POut, "synthetic-p-out", cfg.Synthetic.POut, "Synthetic graph: inter-class edge probability.")
	fs.Float64Var(&cfg.Synthetic.Noise, "synthetic-noise", cfg.Synthetic.Noise, "Synthetic graph: feature noise standard deviation.")
}

// Parse resolves the configuration from args: defaults, then the YAML file
// named by --config, then every flag given explicitly. It returns (nil, true,
// nil) when help was requested and an *ExitError with code 2 on bad input.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	cfg := Default()
	fs := flag.NewFlagSet("gcntrain", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
gcntrain - full-batch GCN node classification with a Rademacher penalty.

Usage:
  gcntrain [options]

Options:
`)
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "YAML file with configuration; flags override it.")
	bind(fs, &cfg)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}

	if *configPath != "" {
		fileCfg, err := LoadFile(*configPath, Default())
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		// Re-apply explicit flags on top of the file.
		over := flag.NewFlagSet("override", flag.ContinueOnError)
		over.SetOutput(io.Discard)
		bind(over, &fileCfg)
		var setErr error
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "config" || setErr != nil {
				return
			}
			setErr = over.Set(f.Name, f.Value.String())
		})
		if setErr != nil {
			return nil, false, &ExitError{Code: 2, Message: setErr.Error()}
		}
		cfg = fileCfg
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &cfg, false, nil
}
