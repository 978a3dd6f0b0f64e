// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gcnreg/config"
	"github.com/katalvlaran/gcnreg/dataset"
)

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &stdout, &stderr, []string{"-h"})
	require.NoError(t, err)
	require.Contains(t, stderr.String(), "Usage:")
	require.Empty(t, stdout.String())
}

func TestRun_BadFlagExitsWithUsageCode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &stdout, &stderr, []string{"--use-vardrop", "perhaps"})
	var exit *config.ExitError
	require.ErrorAs(t, err, &exit)
	require.Equal(t, 2, exit.Code)
}

func TestRun_TinyIsReproducible(t *testing.T) {
	args := []string{"--dataset", "tiny", "--epochs", "5", "--seed", "1", "--hidden-size", "8", "--log-level", "error"}

	var first, second, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), &first, &stderr, args))
	require.NoError(t, run(context.Background(), &second, &stderr, args))
	require.Equal(t, first.String(), second.String())

	lines := strings.Split(strings.TrimRight(first.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	require.True(t, strings.HasPrefix(lines[0], "Epoch: 001, Loss: "), lines[0])
	require.True(t, strings.HasPrefix(lines[4], "Epoch: 005, "), lines[4])
	require.True(t, strings.HasPrefix(lines[5], "best test: "), lines[5])
}

func TestRun_SyntheticRunsAndMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gcntrain.prom")
	args := []string{
		"--dataset", "synthetic", "--synthetic-nodes", "40", "--synthetic-classes", "2",
		"--synthetic-features", "4", "--hidden-size", "8", "--epochs", "3", "--runs", "2",
		"--reg-kind", "pinf-q1", "--optimizer", "sgd", "--log-format", "json",
		"--metrics-file", path,
	}

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), &stdout, &stderr, args))
	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	best := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "best test: ") {
			best++
		}
	}
	require.Equal(t, 2, best)
	require.Len(t, lines, 2*3+2+1)
	require.True(t, strings.HasPrefix(lines[len(lines)-1], "runs: 2 mean best test: "), lines[len(lines)-1])
	require.Contains(t, stderr.String(), `"device":"cpu"`)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "gcntrain_best_test_accuracy")
	require.Contains(t, string(raw), "gcntrain_epochs_total")
}

func TestRun_MissingDataset(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &stdout, &stderr,
		[]string{"--dataset", "cora", "--data-root", t.TempDir(), "--log-level", "error"})
	require.ErrorIs(t, err, dataset.ErrMissingFile)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	err := run(ctx, &stdout, &stderr, []string{"--dataset", "tiny", "--epochs", "3", "--log-level", "error"})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, stdout.String())
}
