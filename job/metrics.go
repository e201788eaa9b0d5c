// SPDX-License-Identifier: MIT

package job

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	methods  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	methods, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "framelogic_job_methods_total",
		Help: "Job methods executed, by method and outcome",
	}, []string{"method", "status"}))
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "framelogic_job_method_duration_seconds",
		Help:    "Duration of job methods",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.25, 1, 5},
	}, []string{"method"}))
	if err != nil {
		return nil, err
	}

	return &metrics{methods: methods, duration: duration}, nil
}

// register adds c to reg, reusing a collector registered earlier by
// another Runner on the same registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}

	return c, nil
}
