// SPDX-License-Identifier: MIT

package observe

import (
	"fmt"

	"github.com/katalvlaran/gcnreg/train"
	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus exposes the latest epoch metrics and run summaries as gauges
// labelled by run_id, in a private registry.
type Prometheus struct {
	registry *prometheus.Registry

	epoch     *prometheus.GaugeVec
	loss      *prometheus.GaugeVec
	reg       *prometheus.GaugeVec
	trainAcc  *prometheus.GaugeVec
	valAcc    *prometheus.GaugeVec
	testAcc   *prometheus.GaugeVec
	energy    *prometheus.GaugeVec
	bestTest  *prometheus.GaugeVec
	minEnergy *prometheus.GaugeVec
	epochs    *prometheus.CounterVec
}

// NewPrometheus creates the gauges under namespace and registers them.
func NewPrometheus(namespace string) *Prometheus {
	gauge := func(name, help string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help},
			[]string{"run_id"},
		)
	}

	p := &Prometheus{
		registry:  prometheus.NewRegistry(),
		epoch:     gauge("epoch", "Last completed epoch"),
		loss:      gauge("loss", "Cross-entropy over the train mask"),
		reg:       gauge("reg", "Weighted Rademacher penalty"),
		trainAcc:  gauge("train_accuracy", "Train accuracy"),
		valAcc:    gauge("val_accuracy", "Validation accuracy"),
		testAcc:   gauge("test_accuracy", "Test accuracy"),
		energy:    gauge("dirichlet_energy", "Dirichlet energy of the training logits"),
		bestTest:  gauge("best_test_accuracy", "Best test accuracy of a finished run"),
		minEnergy: gauge("min_dirichlet_energy", "Minimum Dirichlet energy of a finished run"),
		epochs: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "epochs_total", Help: "Completed epochs"},
			[]string{"run_id"},
		),
	}
	p.registry.MustRegister(
		p.epoch, p.loss, p.reg, p.trainAcc, p.valAcc, p.testAcc, p.energy,
		p.bestTest, p.minEnergy, p.epochs,
	)

	return p
}

// Registry returns the private registry.
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

// ObserveEpoch implements train.Observer.
func (p *Prometheus) ObserveEpoch(run train.RunInfo, m train.EpochMetrics) {
	id := run.ID
	p.epoch.WithLabelValues(id).Set(float64(m.Epoch))
	p.loss.WithLabelValues(id).Set(m.Loss)
	p.reg.WithLabelValues(id).Set(m.Reg)
	p.trainAcc.WithLabelValues(id).Set(m.TrainAcc)
	p.valAcc.WithLabelValues(id).Set(m.ValAcc)
	p.testAcc.WithLabelValues(id).Set(m.TestAcc)
	p.energy.WithLabelValues(id).Set(m.Energy)
	p.epochs.WithLabelValues(id).Inc()
}

// ObserveRun implements train.Observer.
func (p *Prometheus) ObserveRun(run train.RunInfo, h *train.History) {
	p.bestTest.WithLabelValues(run.ID).Set(h.BestTest())
	p.minEnergy.WithLabelValues(run.ID).Set(h.MinEnergy())
}

// WriteTextfile writes the registry in the node-exporter textfile format.
func (p *Prometheus) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, p.registry); err != nil {
		return fmt.Errorf("observe.Prometheus: %w", err)
	}

	return nil
}
