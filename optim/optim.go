// SPDX-License-Identifier: MIT

package optim

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gcnreg/matrix"
	"github.com/katalvlaran/gcnreg/model"
)

var (
	// ErrNilParam indicates a parameter with a nil value or gradient.
	ErrNilParam = errors.New("optim: nil parameter value or gradient")

	// ErrParamShape indicates a parameter whose shape changed between steps.
	ErrParamShape = errors.New("optim: parameter shape changed")
)

// Optimizer applies one update to every parameter.
type Optimizer interface {
	Step(params []model.Param) error
}

// Default Adam hyperparameters (PyTorch defaults).
const (
	DefaultBeta1   = 0.9
	DefaultBeta2   = 0.999
	DefaultEpsilon = 1e-8
)

// Adam implements the Adam optimizer.
type Adam struct {
	LR          float64
	Beta1       float64
	Beta2       float64
	Epsilon     float64
	WeightDecay float64

	t     int
	state map[string]*adamState
}

type adamState struct {
	m, v *matrix.Dense
}

// NewAdam returns Adam with the default betas and epsilon.
func NewAdam(lr, weightDecay float64) *Adam {
	return &Adam{
		LR:          lr,
		Beta1:       DefaultBeta1,
		Beta2:       DefaultBeta2,
		Epsilon:     DefaultEpsilon,
		WeightDecay: weightDecay,
		state:       make(map[string]*adamState),
	}
}

// Steps returns the number of completed steps.
func (a *Adam) Steps() int { return a.t }

// Step performs one Adam update.
// Complexity: O(total parameter count).
func (a *Adam) Step(params []model.Param) error {
	if a.state == nil {
		a.state = make(map[string]*adamState)
	}
	a.t++
	bc1 := 1 - math.Pow(a.Beta1, float64(a.t))
	bc2 := 1 - math.Pow(a.Beta2, float64(a.t))

	for _, p := range params {
		if p.Value == nil || p.Grad == nil {
			return fmt.Errorf("Adam.Step: %s: %w", p.Name, ErrNilParam)
		}
		st, err := a.stateFor(p)
		if err != nil {
			return err
		}
		w, g := p.Value.Raw(), p.Grad.Raw()
		m, v := st.m.Raw(), st.v.Raw()
		for i := range w {
			gi := g[i]
			if a.WeightDecay != 0 {
				gi += a.WeightDecay * w[i]
			}
			m[i] = a.Beta1*m[i] + (1-a.Beta1)*gi
			v[i] = a.Beta2*v[i] + (1-a.Beta2)*gi*gi
			mHat := m[i] / bc1
			vHat := v[i] / bc2
			w[i] -= a.LR * mHat / (math.Sqrt(vHat) + a.Epsilon)
		}
	}

	return nil
}

func (a *Adam) stateFor(p model.Param) (*adamState, error) {
	st, ok := a.state[p.Name]
	if !ok {
		m, err := matrix.NewDense(p.Value.Rows(), p.Value.Cols())
		if err != nil {
			return nil, fmt.Errorf("Adam.Step: %s: %w", p.Name, err)
		}
		st = &adamState{m: m, v: m.Clone()}
		a.state[p.Name] = st
	}
	if st.m.Rows() != p.Value.Rows() || st.m.Cols() != p.Value.Cols() {
		return nil, fmt.Errorf("Adam.Step: %s: %w", p.Name, ErrParamShape)
	}

	return st, nil
}

// SGD implements gradient descent with optional momentum.
type SGD struct {
	LR          float64
	Momentum    float64
	WeightDecay float64

	velocity map[string]*matrix.Dense
}

// NewSGD returns an SGD optimizer.
func NewSGD(lr, momentum, weightDecay float64) *SGD {
	return &SGD{LR: lr, Momentum: momentum, WeightDecay: weightDecay, velocity: make(map[string]*matrix.Dense)}
}

// Step performs one SGD update: buf = μ·buf + g; w -= lr·buf.
// Complexity: O(total parameter count).
func (s *SGD) Step(params []model.Param) error {
	if s.velocity == nil {
		s.velocity = make(map[string]*matrix.Dense)
	}
	for _, p := range params {
		if p.Value == nil || p.Grad == nil {
			return fmt.Errorf("SGD.Step: %s: %w", p.Name, ErrNilParam)
		}
		w, g := p.Value.Raw(), p.Grad.Raw()

		if s.Momentum == 0 {
			for i := range w {
				w[i] -= s.LR * (g[i] + s.WeightDecay*w[i])
			}
			continue
		}

		buf, ok := s.velocity[p.Name]
		if !ok {
			var err error
			if buf, err = matrix.NewDense(p.Value.Rows(), p.Value.Cols()); err != nil {
				return fmt.Errorf("SGD.Step: %s: %w", p.Name, err)
			}
			s.velocity[p.Name] = buf
		} else if buf.Rows() != p.Value.Rows() || buf.Cols() != p.Value.Cols() {
			return fmt.Errorf("SGD.Step: %s: %w", p.Name, ErrParamShape)
		}
		b := buf.Raw()
		for i := range w {
			gi := g[i] + s.WeightDecay*w[i]
			b[i] = s.Momentum*b[i] + gi
			w[i] -= s.LR * b[i]
		}
	}

	return nil
}
