package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	registry *prometheus.Registry

	disambiguations *prometheus.CounterVec
	failures        *prometheus.CounterVec
	duration        prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		disambiguations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wsd_disambiguations_total",
				Help: "Disambiguated words by method.",
			},
			[]string{"method"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wsd_failures_total",
				Help: "Failed disambiguations by HTTP status.",
			},
			[]string{"status"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "wsd_disambiguation_duration_seconds",
				Help:    "Time spent disambiguating one word.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}

	m.registry.MustRegister(
		m.disambiguations,
		m.failures,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}
