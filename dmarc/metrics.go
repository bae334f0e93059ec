package dmarc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricDiscovery = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dmarcpolicy_discovery_total",
			Help: "Policy discoveries, by mode and record provenance.",
		},
		[]string{
			"mode",    // legacy, psd, treewalk
			"comment", // provenance comment, or "none"
		},
	)
	metricEvaluation = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dmarcpolicy_evaluation_total",
			Help: "Alignment evaluations, by result.",
		},
		[]string{
			"status", // pass, fail, none, permerror
		},
	)
)
