// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gcnreg/matrix"
)

var (
	// ErrBadConfig indicates an invalid model configuration.
	ErrBadConfig = errors.New("model: invalid configuration")

	// ErrNoForward indicates Backward without a preceding training forward pass.
	ErrNoForward = errors.New("model: backward called without a training forward pass")

	// ErrInputShape indicates features whose shape does not match the model.
	ErrInputShape = errors.New("model: input shape mismatch")
)

// Config sizes and regularizes the network.
type Config struct {
	InFeatures int // F
	Hidden     int // width of every hidden layer
	Classes    int // C
	Layers     int // number of GCN layers, ≥ 1

	Dropout        float64 // inverted-dropout rate on layer inputs, in [0,1)
	UseDropConnect bool
	DropConnect    float64 // weight drop rate when UseDropConnect, in [0,1)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.InFeatures < 1:
		return fmt.Errorf("in_features=%d: %w", c.InFeatures, ErrBadConfig)
	case c.Hidden < 1:
		return fmt.Errorf("hidden=%d: %w", c.Hidden, ErrBadConfig)
	case c.Classes < 1:
		return fmt.Errorf("classes=%d: %w", c.Classes, ErrBadConfig)
	case c.Layers < 1:
		return fmt.Errorf("layers=%d: %w", c.Layers, ErrBadConfig)
	case c.Dropout < 0 || c.Dropout >= 1:
		return fmt.Errorf("dropout=%g: %w", c.Dropout, ErrBadConfig)
	case c.DropConnect < 0 || c.DropConnect >= 1:
		return fmt.Errorf("dropconnect=%g: %w", c.DropConnect, ErrBadConfig)
	}

	return nil
}

// dims returns the layer widths [F, H, ..., H, C].
func (c Config) dims() []int {
	d := make([]int, 0, c.Layers+1)
	d = append(d, c.InFeatures)
	for i := 1; i < c.Layers; i++ {
		d = append(d, c.Hidden)
	}

	return append(d, c.Classes)
}

// Param is a named trainable tensor and its gradient accumulator.
type Param struct {
	Name  string
	Value *matrix.Dense
	Grad  *matrix.Dense
}

// layer holds one GCN layer's parameters and gradients. b is 1×out.
type layer struct {
	w, b   *matrix.Dense
	gw, gb *matrix.Dense
}

// layerCache keeps what Backward needs from a training forward pass.
type layerCache struct {
	in       *matrix.Dense // layer input after dropout
	dropMask *matrix.Dense // per-element input scale (0 or 1/(1-p)); nil without dropout
	wEff     *matrix.Dense // weight used in the pass (masked under DropConnect)
	dcMask   *matrix.Dense // per-weight scale (0 or 1/(1-p)); nil without DropConnect
	z        *matrix.Dense // pre-activation
}
