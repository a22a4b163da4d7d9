package monitoring

import "time"

// SetInstallationInfo sets the info-style gauge for a Syndesis installation.
// Old phase labels are automatically cleaned up via DeletePartialMatch.
func SetInstallationInfo(name, namespace, phase string) {
	installationInfo.DeletePartialMatch(map[string]string{
		"name":      name,
		"namespace": namespace,
	})
	installationInfo.WithLabelValues(name, namespace, phase).Set(1)
}

// RecordResolution records the result and duration of a configuration
// resolution run.
func RecordResolution(err error, duration time.Duration) {
	result := "success"
	if err != nil {
		result = "error"
	}
	resolutionTotal.WithLabelValues(result).Inc()
	resolutionDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// RecordGeneratedSecret counts a secret value that was freshly generated
// because no persisted value existed for the given field.
func RecordGeneratedSecret(field string) {
	generatedSecretsTotal.WithLabelValues(field).Inc()
}

// RecordRouteLookup records the result of a cluster route host lookup.
func RecordRouteLookup(err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	routeLookupTotal.WithLabelValues(result).Inc()
}
