// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/gcnreg/core"
	"github.com/katalvlaran/gcnreg/matrix"
)

// File names of the GraphSAINT layout.
const (
	FileAdjacency = "adj_full.npz"
	FileFeatures  = "feats.npy"
	FileClassMap  = "class_map.json"
	FileRoles     = "role.json"
)

// DefaultRoot is the dataset root used when none is configured.
const DefaultRoot = "../2024KDD/dataset"

// Dir returns the directory of dataset name under root.
func Dir(root, name string) string {
	if root == "" {
		root = DefaultRoot
	}

	return filepath.Join(root, name)
}

// LoadSAINT reads a GraphSAINT dataset directory into a core.Graph named after
// the directory.
//
// Stage 1: feats.npy fixes N and F.
// Stage 2: adj_full.npz becomes the edge index (row → column), with edge
// weights when the archive carries a data array.
// Stage 3: class_map.json gives one label per node; multi-hot rows resolve to
// their first maximum.
// Stage 4: role.json gives the train/val/test index lists.
//
// Complexity: O(N·F + nnz).
func LoadSAINT(dir string) (*core.Graph, error) {
	x, err := loadFeatures(filepath.Join(dir, FileFeatures))
	if err != nil {
		return nil, fmt.Errorf("LoadSAINT: %w", err)
	}
	n := x.Rows()

	edges, weights, err := loadAdjacency(filepath.Join(dir, FileAdjacency), n)
	if err != nil {
		return nil, fmt.Errorf("LoadSAINT: %w", err)
	}
	labels, err := loadClassMap(filepath.Join(dir, FileClassMap), n)
	if err != nil {
		return nil, fmt.Errorf("LoadSAINT: %w", err)
	}
	train, val, test, err := loadRoles(filepath.Join(dir, FileRoles), n)
	if err != nil {
		return nil, fmt.Errorf("LoadSAINT: %w", err)
	}

	opts := []core.GraphOption{core.WithMasks(train, val, test), core.WithName(filepath.Base(dir))}
	if weights != nil {
		opts = append(opts, core.WithEdgeWeights(weights))
	}
	g, err := core.NewGraph(x, labels, edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("LoadSAINT: %w", err)
	}

	return g, nil
}

// missing maps a not-exist error onto ErrMissingFile.
func missing(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", path, ErrMissingFile)
	}

	return fmt.Errorf("%s: %w", path, err)
}

func loadFeatures(path string) (*matrix.Dense, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, missing(path, err)
	}
	a, err := readNPY(path)
	if err != nil {
		return nil, malformedf(path, "%v", err)
	}
	if len(a.shape) != 2 {
		return nil, malformedf(path, "shape %v, want 2-D", a.shape)
	}
	x, err := matrix.NewDenseFrom(a.shape[0], a.shape[1], a.floats())
	if err != nil {
		return nil, malformedf(path, "%v", err)
	}

	return x, nil
}

func loadAdjacency(path string, n int) (core.EdgeIndex, []float64, error) {
	var edges core.EdgeIndex
	if _, err := os.Stat(path); err != nil {
		return edges, nil, missing(path, err)
	}
	z, err := openNPZ(path)
	if err != nil {
		return edges, nil, malformedf(path, "%v", err)
	}
	defer z.Close()

	indptr, err := z.read("indptr")
	if err != nil {
		return edges, nil, malformedf(path, "%v", err)
	}
	indices, err := z.read("indices")
	if err != nil {
		return edges, nil, malformedf(path, "%v", err)
	}
	if indptr.i == nil || indices.i == nil {
		return edges, nil, malformedf(path, "indptr and indices must be integer arrays")
	}
	if z.has("shape") {
		shape, err := z.read("shape")
		if err != nil {
			return edges, nil, malformedf(path, "%v", err)
		}
		if len(shape.i) != 2 || shape.i[0] != n || shape.i[1] != n {
			return edges, nil, malformedf(path, "shape %v, want [%d %d]", shape.i, n, n)
		}
	}
	if len(indptr.i) != n+1 || indptr.i[0] != 0 || indptr.i[n] != len(indices.i) {
		return edges, nil, malformedf(path, "indptr of length %d does not describe %d rows and %d entries",
			len(indptr.i), n, len(indices.i))
	}

	var weights []float64
	if z.has("data") {
		data, err := z.read("data")
		if err != nil {
			return edges, nil, malformedf(path, "%v", err)
		}
		if weights = data.floats(); len(weights) != len(indices.i) {
			return edges, nil, malformedf(path, "data length %d, want %d", len(weights), len(indices.i))
		}
	}

	nnz := len(indices.i)
	edges.Src = make([]int, 0, nnz)
	edges.Dst = make([]int, 0, nnz)
	for r := 0; r < n; r++ {
		lo, hi := indptr.i[r], indptr.i[r+1]
		if lo > hi {
			return edges, nil, malformedf(path, "indptr decreases at row %d", r)
		}
		for k := lo; k < hi; k++ {
			edges.Src = append(edges.Src, r)
			edges.Dst = append(edges.Dst, indices.i[k])
		}
	}

	return edges, weights, nil
}

func readJSON(path string, v interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return missing(path, err)
	}
	if err = json.Unmarshal(raw, v); err != nil {
		return malformedf(path, "%v", err)
	}

	return nil
}

func loadClassMap(path string, n int) ([]int, error) {
	var cm map[string]json.RawMessage
	if err := readJSON(path, &cm); err != nil {
		return nil, err
	}

	labels := make([]int, n)
	seen := make([]bool, n)
	for key, raw := range cm {
		node, err := strconv.Atoi(key)
		if err != nil || node < 0 || node >= n {
			return nil, malformedf(path, "node id %q out of range [0,%d)", key, n)
		}
		if labels[node], err = parseClass(raw); err != nil {
			return nil, malformedf(path, "node %d: %v", node, err)
		}
		seen[node] = true
	}
	for node, ok := range seen {
		if !ok {
			return nil, malformedf(path, "node %d has no class", node)
		}
	}

	return labels, nil
}

// parseClass accepts an integer class or a multi-hot list.
func parseClass(raw json.RawMessage) (int, error) {
	var c int
	if err := json.Unmarshal(raw, &c); err == nil {
		if c < 0 {
			return 0, fmt.Errorf("negative class %d", c)
		}
		return c, nil
	}
	var hot []float64
	if err := json.Unmarshal(raw, &hot); err != nil {
		return 0, fmt.Errorf("class is neither an integer nor a list")
	}
	if len(hot) == 0 {
		return 0, fmt.Errorf("empty multi-hot list")
	}
	best := 0
	for j, v := range hot {
		if v > hot[best] {
			best = j
		}
	}

	return best, nil
}

func loadRoles(path string, n int) (train, val, test core.Mask, err error) {
	var roles map[string][]int
	if err = readJSON(path, &roles); err != nil {
		return nil, nil, nil, err
	}

	masks := make([]core.Mask, 3)
	for k, name := range []string{"tr", "va", "te"} {
		idx, ok := roles[name]
		if !ok {
			return nil, nil, nil, malformedf(path, "missing role %q", name)
		}
		if masks[k], err = core.MaskFromIndices(n, idx); err != nil {
			return nil, nil, nil, malformedf(path, "role %q: %v", name, err)
		}
	}

	return masks[0], masks[1], masks[2], nil
}
