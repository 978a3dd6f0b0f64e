// SPDX-License-Identifier: MIT

// Package regularize computes Rademacher-complexity penalties for a GCN and
// their gradients with respect to the weight matrices.
//
// Every penalty shares the data-dependent factor
//
//	c(X, K) = sqrt(2·ln(2K) / N)
//
// where N is the number of feature rows and K the number of classes, and
// multiplies it by a feature-norm bound and a product of per-layer weight norms.
package regularize

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gcnreg/matrix"
)

var (
	// ErrUnknownKind indicates an unrecognised regularizer name.
	ErrUnknownKind = errors.New("regularize: unknown kind")

	// ErrClasses indicates a class count below one.
	ErrClasses = errors.New("regularize: number of classes must be ≥ 1")

	// ErrNoFeatures indicates nil or empty input features.
	ErrNoFeatures = errors.New("regularize: empty features")

	// ErrNoWeights indicates a model without weight matrices.
	ErrNoWeights = errors.New("regularize: model has no weights")
)

// Names accepted by Parse.
const (
	KindDropConnect = "dc"
	KindPInfQ1      = "pinf-q1"
	KindNone        = "none"
)

// Model is the view of a network a penalty needs.
type Model interface {
	Weights() []*matrix.Dense
	DropConnectRate() float64
}

// Regularizer returns a scalar penalty and ∂R/∂W_l for every weight matrix,
// aligned with m.Weights().
type Regularizer interface {
	Name() string
	Penalty(m Model, x *matrix.Dense, classes int) (float64, []*matrix.Dense, error)
}

// Parse returns the regularizer registered under kind.
func Parse(kind string) (Regularizer, error) {
	switch kind {
	case KindDropConnect:
		return DropConnect{}, nil
	case KindPInfQ1:
		return PInfQ1{}, nil
	case KindNone:
		return None{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
}

// DropConnect bounds the Rademacher complexity of a DropConnect GCN:
//
//	R = c(X, K) · max_i‖x_i‖₂ · Π_l sqrt(q)·‖W_l‖_F,   q = 1 − p
//
// ∂R/∂W_l = R · W_l / ‖W_l‖_F², zero when ‖W_l‖_F = 0.
type DropConnect struct{}

// Name implements Regularizer.
func (DropConnect) Name() string { return KindDropConnect }

// Penalty implements Regularizer.
// Complexity: O(N·F + Σ|W_l|).
func (DropConnect) Penalty(m Model, x *matrix.Dense, classes int) (float64, []*matrix.Dense, error) {
	c, ws, err := prepare("DropConnect", m, x, classes)
	if err != nil {
		return 0, nil, err
	}
	sq := math.Sqrt(1 - m.DropConnectRate())

	norms := make([]float64, len(ws))
	r := c * maxRowNorm(x, l2)
	for l, w := range ws {
		if norms[l], err = matrix.FrobeniusNorm(w); err != nil {
			return 0, nil, fmt.Errorf("DropConnect: layer %d: %w", l, err)
		}
		r *= sq * norms[l]
	}

	grads := make([]*matrix.Dense, len(ws))
	for l, w := range ws {
		if norms[l] == 0 {
			grads[l] = zerosLike(w)
			continue
		}
		if grads[l], err = matrix.Scale(w, r/(norms[l]*norms[l])); err != nil {
			return 0, nil, fmt.Errorf("DropConnect: layer %d: %w", l, err)
		}
	}

	return r, grads, nil
}

// PInfQ1 uses the ℓ∞ feature bound with the max-column ℓ1 weight norm
// ν(W) = max_j Σ_i |W_ij|:
//
//	R = c(X, K) · max_i‖x_i‖_∞ · Π_l ν(W_l)
//
// The subgradient is R/ν_l · sign(W_l) on the arg-max column (lowest index on
// ties) and zero elsewhere.
type PInfQ1 struct{}

// Name implements Regularizer.
func (PInfQ1) Name() string { return KindPInfQ1 }

// Penalty implements Regularizer.
func (PInfQ1) Penalty(m Model, x *matrix.Dense, classes int) (float64, []*matrix.Dense, error) {
	c, ws, err := prepare("PInfQ1", m, x, classes)
	if err != nil {
		return 0, nil, err
	}

	nus := make([]float64, len(ws))
	cols := make([]int, len(ws))
	r := c * maxRowNorm(x, linf)
	for l, w := range ws {
		nus[l], cols[l] = maxColumnL1(w)
		r *= nus[l]
	}

	grads := make([]*matrix.Dense, len(ws))
	for l, w := range ws {
		g := zerosLike(w)
		grads[l] = g
		if nus[l] == 0 {
			continue
		}
		scale := r / nus[l]
		wr, gr, n := w.Raw(), g.Raw(), w.Cols()
		for i := 0; i < w.Rows(); i++ {
			k := i*n + cols[l]
			switch {
			case wr[k] > 0:
				gr[k] = scale
			case wr[k] < 0:
				gr[k] = -scale
			}
		}
	}

	return r, grads, nil
}

// None is the zero penalty.
type None struct{}

// Name implements Regularizer.
func (None) Name() string { return KindNone }

// Penalty implements Regularizer; every gradient is nil.
func (None) Penalty(m Model, _ *matrix.Dense, _ int) (float64, []*matrix.Dense, error) {
	if m == nil {
		return 0, nil, fmt.Errorf("None: %w", ErrNoWeights)
	}

	return 0, make([]*matrix.Dense, len(m.Weights())), nil
}

// prepare validates inputs and returns c(X, K) with the model weights.
func prepare(method string, m Model, x *matrix.Dense, classes int) (float64, []*matrix.Dense, error) {
	if classes < 1 {
		return 0, nil, fmt.Errorf("%s: classes=%d: %w", method, classes, ErrClasses)
	}
	if x == nil || x.Rows() == 0 {
		return 0, nil, fmt.Errorf("%s: %w", method, ErrNoFeatures)
	}
	if m == nil || len(m.Weights()) == 0 {
		return 0, nil, fmt.Errorf("%s: %w", method, ErrNoWeights)
	}

	return math.Sqrt(2 * math.Log(2*float64(classes)) / float64(x.Rows())), m.Weights(), nil
}

func l2(row []float64) float64 {
	s := 0.0
	for _, v := range row {
		s += v * v
	}

	return math.Sqrt(s)
}

func linf(row []float64) float64 {
	s := 0.0
	for _, v := range row {
		s = math.Max(s, math.Abs(v))
	}

	return s
}

func maxRowNorm(x *matrix.Dense, norm func([]float64) float64) float64 {
	best := 0.0
	for i := 0; i < x.Rows(); i++ {
		best = math.Max(best, norm(x.Row(i)))
	}

	return best
}

// maxColumnL1 returns max_j Σ_i |W_ij| and its column.
func maxColumnL1(w *matrix.Dense) (float64, int) {
	sums := make([]float64, w.Cols())
	raw, n := w.Raw(), w.Cols()
	for k, v := range raw {
		sums[k%n] += math.Abs(v)
	}
	best, col := 0.0, 0
	for j, s := range sums {
		if s > best {
			best, col = s, j
		}
	}

	return best, col
}

func zerosLike(w *matrix.Dense) *matrix.Dense {
	z := w.Clone()
	z.Zero()

	return z
}
