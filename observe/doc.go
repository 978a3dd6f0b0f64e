// SPDX-License-Identifier: MIT

// Package observe provides train.Observer implementations: the console
// report, structured zap logging, Prometheus gauges and a fan-out.
package observe
