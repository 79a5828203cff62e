package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(
		Observer.prometheus.Points,
		Observer.prometheus.Epochs,
		Observer.prometheus.Runs,
		Observer.prometheus.Epoch,
	)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// IncrementPoints counts a mutation of the training set.
func (m *Metrics) IncrementPoints(action string) {
	m.prometheus.Points.WithLabelValues(action).Inc()
}

// IncrementEpochs counts a trained epoch.
func (m *Metrics) IncrementEpochs() {
	m.prometheus.Epochs.Inc()
}

// IncrementRuns counts a started training run.
func (m *Metrics) IncrementRuns() {
	m.prometheus.Runs.Inc()
}

// SetEpoch tracks the epoch counter of the current run.
func (m *Metrics) SetEpoch(n int) {
	m.prometheus.Epoch.Set(float64(n))
}
