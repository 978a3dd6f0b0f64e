// SPDX-License-Identifier: MIT

// Package train runs full-batch GCN training with a Rademacher penalty.
//
// A Trainer owns one model, one optimizer and one graph. Each epoch of Run
// performs
//
//	TrainStep → Val → Test → History.Append → Observer.ObserveEpoch
//
// and after the last epoch Observer.ObserveRun receives the complete History.
// There is no early stopping: the loop ends when the epoch budget is spent or
// the context is cancelled between epochs.
//
// Only TrainStep mutates the model. Evaluate, Val and Test run the network in
// evaluation mode and are free of side effects, so repeated calls agree.
package train
