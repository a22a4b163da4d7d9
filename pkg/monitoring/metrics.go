package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

// Domain-specific metric collectors.
//
// These complement the generic controller-runtime metrics (reconcile counts,
// durations, work queue depth, etc.) with operator-specific state that the
// framework cannot know about.
var (
	installationInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "syndesis_operator_installation_info",
			Help: "Info-style metric for Syndesis installation discovery and phase tracking. Always 1.",
		},
		[]string{"name", "namespace", "phase"},
	)

	resolutionTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "syndesis_operator_configuration_resolution_total",
			Help: "Total number of configuration resolution runs.",
		},
		[]string{"result"},
	)

	resolutionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "syndesis_operator_configuration_resolution_duration_seconds",
			Help:    "Latency of configuration resolution runs in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"result"},
	)

	generatedSecretsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "syndesis_operator_generated_secrets_total",
			Help: "Total number of secret values generated because no persisted value existed.",
		},
		[]string{"field"},
	)

	routeLookupTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "syndesis_operator_route_lookup_total",
			Help: "Total number of cluster route host lookups.",
		},
		[]string{"result"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		installationInfo,
		resolutionTotal,
		resolutionDuration,
		generatedSecretsTotal,
		routeLookupTotal,
	)
}

// Collectors returns all registered metric collectors. This is useful for
// testing that metrics are properly registered.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		installationInfo,
		resolutionTotal,
		resolutionDuration,
		generatedSecretsTotal,
		routeLookupTotal,
	}
}
