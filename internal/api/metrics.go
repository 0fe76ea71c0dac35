package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blade_decisions_total",
		Help: "Solve invocations by outcome.",
	}, []string{"outcome"})

	decisionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "blade_decision_duration_seconds",
		Help:    "End-to-end solve duration including session load and persistence.",
		Buckets: prometheus.DefBuckets,
	})
)
