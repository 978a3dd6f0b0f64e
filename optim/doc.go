// SPDX-License-Identifier: MIT

// Package optim updates model parameters in place from their accumulated
// gradients.
//
// Adam follows the PyTorch update rule, including L2 weight decay added to the
// gradient before the moment updates. SGD is plain gradient descent with
// optional momentum and the same weight-decay convention.
//
// Optimizers keep per-parameter state keyed by parameter name, so the slice
// passed to Step must describe the same parameters on every call.
package optim
