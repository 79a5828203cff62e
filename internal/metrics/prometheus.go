package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Points *prometheus.CounterVec
	Epochs prometheus.Counter
	Runs   prometheus.Counter
	Epoch  prometheus.Gauge
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Points: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "neuron",
				Name:      "points",
			}, []string{"action"}),
		Epochs: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "neuron",
				Name:      "epochs",
			}),
		Runs: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "neuron",
				Name:      "runs",
			}),
		Epoch: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "neuron",
				Name:      "epoch",
			}),
	}
}
