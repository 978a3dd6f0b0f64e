// SPDX-License-Identifier: MIT

// Package config resolves the trainer configuration from defaults, an optional
// YAML file and command-line flags, in that order of precedence, and builds
// the zap logger it describes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig indicates a configuration that fails validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidBool indicates a boolean string outside the accepted set.
	ErrInvalidBool = errors.New("config: invalid boolean")

	// ErrInvalidList indicates a malformed comma-separated integer list.
	ErrInvalidList = errors.New("config: invalid integer list")
)

// Dataset names that are generated instead of loaded.
const (
	DatasetSynthetic = "synthetic"
	DatasetTiny      = "tiny"
)

// Config is the complete trainer configuration.
type Config struct {
	NumLayers    int     `yaml:"num_layers" validate:"min=1"`
	NumNeighbors []int   `yaml:"num_neighbors" validate:"min=1,dive,min=-1"`
	HiddenSize   int     `yaml:"hidden_size" validate:"min=1"`
	BatchSize    int     `yaml:"batch_size" validate:"min=1"`
	Dropout      float64 `yaml:"dropout" validate:"gte=0,lt=1"`
	LR           float64 `yaml:"lr" validate:"gt=0"`
	WeightDecay  float64 `yaml:"weight_decay" validate:"gte=0"`
	Epochs       int     `yaml:"epochs" validate:"min=1"`
	Runs         int     `yaml:"runs" validate:"min=1"`
	RegWeight    float64 `yaml:"reg_weight" validate:"gte=0"`
	DropP        float64 `yaml:"dropp" validate:"gte=0,lt=1"`
	UseVarDrop   bool    `yaml:"use_vardrop"`
	Dataset      string  `yaml:"dataset" validate:"required"`
	DataRoot     string  `yaml:"data_root"`

	Seed        int64   `yaml:"seed"`
	RegKind     string  `yaml:"reg_kind" validate:"oneof=dc pinf-q1 none"`
	Optimizer   string  `yaml:"optimizer" validate:"oneof=adam sgd"`
	Momentum    float64 `yaml:"momentum" validate:"gte=0,lt=1"`
	Workers     int     `yaml:"workers" validate:"min=0"`
	LogLevel    string  `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat   string  `yaml:"log_format" validate:"oneof=console json"`
	MetricsFile string  `yaml:"metrics_file"`

	Synthetic Synthetic `yaml:"synthetic"`
}

// Synthetic sizes the stochastic block model used by --dataset synthetic.
type Synthetic struct {
	Nodes    int     `yaml:"nodes" validate:"min=2"`
	Classes  int     `yaml:"classes" validate:"min=2,ltefield=Nodes"`
	Features int     `yaml:"features" validate:"min=1"`
	PIn      float64 `yaml:"p_in" validate:"gte=0,lte=1"`
	POut     float64 `yaml:"p_out" validate:"gte=0,lte=1"`
	Noise    float64 `yaml:"noise" validate:"gte=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		NumLayers:    2,
		NumNeighbors: []int{2, 2},
		HiddenSize:   128,
		BatchSize:    2048,
		Dropout:      0.5,
		LR:           0.01,
		WeightDecay:  0,
		Epochs:       500,
		Runs:         1,
		RegWeight:    0.001,
		DropP:        0.001,
		UseVarDrop:   true,
		Dataset:      "cora",
		Seed:         42,
		RegKind:      "dc",
		Optimizer:    "adam",
		Momentum:     0.9,
		Workers:      0,
		LogLevel:     "info",
		LogFormat:    "console",
		Synthetic: Synthetic{
			Nodes:    200,
			Classes:  4,
			Features: 16,
			PIn:      0.1,
			POut:     0.005,
			Noise:    1.0,
		},
	}
}

// LoadFile overlays the YAML document at path onto base. Keys absent from
// the file keep their value in base; unknown keys are an error.
func LoadFile(path string, base Config) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config.LoadFile: %w", err)
	}
	cfg := base
	cfg.NumNeighbors = append([]int(nil), base.NumNeighbors...)
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("config.LoadFile: %s: %w", path, err)
	}

	return cfg, nil
}
