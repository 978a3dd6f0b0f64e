// SPDX-License-Identifier: MIT

package observe

import "github.com/katalvlaran/gcnreg/train"

// Multi forwards every observation to each observer in order.
type Multi []train.Observer

// ObserveEpoch implements train.Observer.
func (m Multi) ObserveEpoch(run train.RunInfo, e train.EpochMetrics) {
	for _, o := range m {
		o.ObserveEpoch(run, e)
	}
}

// ObserveRun implements train.Observer.
func (m Multi) ObserveRun(run train.RunInfo, h *train.History) {
	for _, o := range m {
		o.ObserveRun(run, h)
	}
}
