// SPDX-License-Identifier: MIT

package dataset_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/gcnreg/core"
	"github.com/katalvlaran/gcnreg/dataset"
	"github.com/sbinet/npyio/npy"
	"github.com/sbinet/npyio/npz"
	"github.com/stretchr/testify/require"
)

// writeFixture lays out a 3-node path 0-1-2 in the GraphSAINT format.
func writeFixture(t *testing.T, classMap string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "toy")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	writeNPY2D(t, filepath.Join(dir, dataset.FileFeatures), 3, 2, []float32{1, 0, 0, 1, 0.5, 0.5})

	z, err := npz.Create(filepath.Join(dir, dataset.FileAdjacency))
	require.NoError(t, err)
	require.NoError(t, z.Write("indptr", []int32{0, 1, 3, 4}))
	require.NoError(t, z.Write("indices", []int32{1, 0, 2, 1}))
	require.NoError(t, z.Write("data", []float32{1, 1, 1, 1}))
	require.NoError(t, z.Write("shape", []int64{3, 3}))
	require.NoError(t, z.Close())

	require.NoError(t, os.WriteFile(filepath.Join(dir, dataset.FileClassMap), []byte(classMap), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataset.FileRoles),
		[]byte(`{"tr":[0],"va":[1],"te":[2]}`), 0o644))

	return dir
}

// writeNPY2D writes an N×F little-endian float32 array in NPY format 1.0.
func writeNPY2D(t *testing.T, path string, n, f int, data []float32) {
	t.Helper()
	dict := fmt.Sprintf("{'descr': '<f4', 'fortran_order': False, 'shape': (%d, %d), }", n, f)
	pad := 64 - (10+len(dict)+1)%64
	header := dict + strings.Repeat(" ", pad%64) + "\n"

	var buf bytes.Buffer
	buf.WriteString("\x93NUMPY\x01\x00")
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(len(header))))
	buf.WriteString(header)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, data))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestWriteNPY2D_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.npy")
	writeNPY2D(t, path, 2, 2, []float32{1, 2, 3, 4})

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	r, err := npy.NewReader(f)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, r.Header.Descr.Shape)
	var v []float32
	require.NoError(t, r.Read(&v))
	require.Equal(t, []float32{1, 2, 3, 4}, v)
}

func TestLoadSAINT(t *testing.T) {
	dir := writeFixture(t, `{"0": 1, "1": 0, "2": 1}`)

	g, err := dataset.LoadSAINT(dir)
	require.NoError(t, err)
	require.Equal(t, core.GraphStats{
		Name: "toy", Nodes: 3, Edges: 4, Features: 2, Classes: 2, Train: 1, Val: 1, Test: 1,
	}, g.Stats())
	require.Equal(t, []int{1, 0, 1}, g.Labels())
	require.Equal(t, core.EdgeIndex{Src: []int{0, 1, 1, 2}, Dst: []int{1, 0, 2, 1}}, g.Edges())
	require.InDeltaSlice(t, []float64{1, 0, 0, 1, 0.5, 0.5}, g.Features().Raw(), 1e-7)
	require.Equal(t, []float64{1, 1, 1, 1}, g.EdgeWeights())
}

func TestLoadSAINT_MultiHotClasses(t *testing.T) {
	dir := writeFixture(t, `{"0": [0, 0, 1], "1": [1, 0, 0], "2": [0, 1, 1]}`)

	g, err := dataset.LoadSAINT(dir)
	require.NoError(t, err)
	require.Equal(t, []int{2, 0, 1}, g.Labels())
}

func TestLoadSAINT_MissingFile(t *testing.T) {
	dir := writeFixture(t, `{"0": 1, "1": 0, "2": 1}`)
	require.NoError(t, os.Remove(filepath.Join(dir, dataset.FileRoles)))

	_, err := dataset.LoadSAINT(dir)
	require.ErrorIs(t, err, dataset.ErrMissingFile)

	_, err = dataset.LoadSAINT(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, dataset.ErrMissingFile)
}

func TestLoadSAINT_Malformed(t *testing.T) {
	dir := writeFixture(t, `{"0": 1, "1": 0}`)
	_, err := dataset.LoadSAINT(dir)
	require.ErrorIs(t, err, dataset.ErrMalformed)

	dir = writeFixture(t, `{"0": 1, "1": 0, "7": 1}`)
	_, err = dataset.LoadSAINT(dir)
	require.ErrorIs(t, err, dataset.ErrMalformed)

	dir = writeFixture(t, `not json`)
	_, err = dataset.LoadSAINT(dir)
	require.ErrorIs(t, err, dataset.ErrMalformed)
}

func TestDir(t *testing.T) {
	require.Equal(t, filepath.Join("data", "cora"), dataset.Dir("data", "cora"))
	require.Equal(t, filepath.Join(dataset.DefaultRoot, "cora"), dataset.Dir("", "cora"))
}
