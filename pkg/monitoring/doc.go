// Package monitoring provides Prometheus metrics and recording helpers for
// the Syndesis Operator. It exposes domain-specific gauges and counters
// that complement the generic controller-runtime metrics already registered
// by the framework.
//
// All metrics follow the naming convention syndesis_operator_<metric>_<unit>
// and are registered against controller-runtime's default Prometheus registry
// on import.
//
// Usage in controllers:
//
//	monitoring.SetInstallationInfo(syndesis.Name, syndesis.Namespace, string(syndesis.Status.Phase))
//	monitoring.RecordResolution(err, elapsed)
package monitoring
