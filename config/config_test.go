// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/gcnreg/config"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 2, cfg.NumLayers)
	require.Equal(t, []int{2, 2}, cfg.NumNeighbors)
	require.Equal(t, 128, cfg.HiddenSize)
	require.Equal(t, 500, cfg.Epochs)
	require.Equal(t, 0.001, cfg.RegWeight)
	require.True(t, cfg.UseVarDrop)
	require.Equal(t, "cora", cfg.Dataset)
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"true", "TRUE", "1", "yes", "On"} {
		v, err := config.ParseBool(s)
		require.NoError(t, err, s)
		require.True(t, v, s)
	}
	for _, s := range []string{"false", "0", "no", " off "} {
		v, err := config.ParseBool(s)
		require.NoError(t, err, s)
		require.False(t, v, s)
	}
	for _, s := range []string{"", "t", "2", "maybe"} {
		_, err := config.ParseBool(s)
		require.ErrorIs(t, err, config.ErrInvalidBool, s)
	}
}

func TestParseInts(t *testing.T) {
	v, err := config.ParseInts("10, 5")
	require.NoError(t, err)
	require.Equal(t, []int{10, 5}, v)

	v, err = config.ParseInts("[25,-1]")
	require.NoError(t, err)
	require.Equal(t, []int{25, -1}, v)

	_, err = config.ParseInts("")
	require.ErrorIs(t, err, config.ErrInvalidList)
	_, err = config.ParseInts("1,x")
	require.ErrorIs(t, err, config.ErrInvalidList)
}

func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := config.Default()
	cfg.Dropout = 1
	cfg.Epochs = 0
	cfg.RegKind = "l2"
	cfg.Synthetic.Classes = 500

	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.ErrorContains(t, err, "dropout must be less than 1")
	require.ErrorContains(t, err, "epochs must be at least 1")
	require.ErrorContains(t, err, `reg_kind must be one of: dc pinf-q1 none, got "l2"`)
	require.ErrorContains(t, err, "synthetic.classes must not exceed Nodes")
}

func TestParse_Flags(t *testing.T) {
	var out bytes.Buffer
	cfg, help, err := config.Parse([]string{
		"--epochs", "5", "--use-vardrop", "no", "--num-neighbors", "10,5", "--dataset", "tiny", "--seed", "7",
	}, &out)
	require.NoError(t, err)
	require.False(t, help)
	require.Equal(t, 5, cfg.Epochs)
	require.False(t, cfg.UseVarDrop)
	require.Equal(t, []int{10, 5}, cfg.NumNeighbors)
	require.Equal(t, "tiny", cfg.Dataset)
	require.Equal(t, int64(7), cfg.Seed)
}

func TestParse_Errors(t *testing.T) {
	var out bytes.Buffer
	for _, args := range [][]string{
		{"--use-vardrop", "maybe"},
		{"--epochs", "x"},
		{"--dropout", "1.5"},
		{"--log-format", "xml"},
		{"stray"},
	} {
		_, _, err := config.Parse(args, &out)
		var exit *config.ExitError
		require.ErrorAs(t, err, &exit, "%v", args)
		require.Equal(t, 2, exit.Code)
	}
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	cfg, help, err := config.Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	require.True(t, help)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "-reg-weight")
}

func TestParse_FileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
epochs: 50
lr: 0.05
use_vardrop: false
num_neighbors: [4, 4, 4]
synthetic:
  nodes: 30
`), 0o644))

	cfg, _, err := config.Parse([]string{"--config", path, "--epochs", "9"}, &bytes.Buffer{})
	require.NoError(t, err)
	// The flag overrides the file; the file overrides the defaults.
	require.Equal(t, 9, cfg.Epochs)
	require.Equal(t, 0.05, cfg.LR)
	require.False(t, cfg.UseVarDrop)
	require.Equal(t, []int{4, 4, 4}, cfg.NumNeighbors)
	require.Equal(t, 30, cfg.Synthetic.Nodes)
	require.Equal(t, 4, cfg.Synthetic.Classes)
	require.Equal(t, 128, cfg.HiddenSize)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), config.Default())
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("epochz: 3\n"), 0o644))
	_, err = config.LoadFile(path, config.Default())
	require.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	cfg, err := config.LoadFile(empty, config.Default())
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"

	log, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown")
	require.NoError(t, log.Sync())
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)

	cfg.LogFormat = "console"
	cfg.LogLevel = "loud"
	_, err = cfg.NewLogger(&buf)
	require.Error(t, err)
}
