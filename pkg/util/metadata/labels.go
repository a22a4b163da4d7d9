package metadata

import (
	"maps"
)

// Standard Kubernetes label keys following kubernetes.io conventions.
//
// See: https://kubernetes.io/docs/concepts/overview/working-with-objects/common-labels/
const (
	// LabelAppName is the standard label key for the application name.
	LabelAppName = "app.kubernetes.io/name"

	// LabelAppInstance is the standard label key for the unique instance name.
	LabelAppInstance = "app.kubernetes.io/instance"

	// LabelAppVersion is the standard label key for the application version.
	LabelAppVersion = "app.kubernetes.io/version"

	// LabelAppComponent is the standard label key for the component within the
	// application.
	LabelAppComponent = "app.kubernetes.io/component"

	// LabelAppPartOf is the standard label key for the name of a higher level
	// application this one is part of.
	LabelAppPartOf = "app.kubernetes.io/part-of"

	// LabelAppManagedBy is the standard label key for the tool managing the
	// resource.
	LabelAppManagedBy = "app.kubernetes.io/managed-by"
)

const (
	// AppNameSyndesis is the fixed application name for all Syndesis resources.
	AppNameSyndesis = "syndesis"

	// ManagedBySyndesis identifies the operator managing these resources.
	ManagedBySyndesis = "syndesis-operator"
)

const (
	// ComponentServer identifies the integration server component.
	ComponentServer = "syndesis-server"

	// ComponentMeta identifies the metadata service component.
	ComponentMeta = "syndesis-meta"

	// ComponentUI identifies the user interface component.
	ComponentUI = "syndesis-ui"

	// ComponentDatabase identifies the database component.
	ComponentDatabase = "syndesis-db"

	// ComponentPrometheus identifies the monitoring component.
	ComponentPrometheus = "syndesis-prometheus"

	// ComponentOauth identifies the OAuth proxy component.
	ComponentOauth = "syndesis-oauthproxy"

	// ComponentInfrastructure identifies operator-owned infrastructure such as
	// the global configuration secret.
	ComponentInfrastructure = "syndesis-infra"
)

const (
	// LabelSyndesisInstance identifies which Syndesis installation a resource
	// belongs to.
	LabelSyndesisInstance = "syndesis.io/app"

	// LabelSyndesisType distinguishes infrastructure resources from user
	// integrations.
	LabelSyndesisType = "syndesis.io/type"

	// TypeInfrastructure is the LabelSyndesisType value for operator-managed
	// infrastructure resources.
	TypeInfrastructure = "infrastructure"
)

// BuildStandardLabels returns a map of standard kubernetes labels.
// instanceName should be the name of the Syndesis CR (used for instance label).
// component is the name of the component (e.g. syndesis-server, syndesis-db).
func BuildStandardLabels(instanceName, component string) map[string]string {
	return map[string]string{
		LabelAppName:      AppNameSyndesis,
		LabelAppInstance:  instanceName,
		LabelAppComponent: component,
		LabelAppPartOf:    AppNameSyndesis,
		LabelAppManagedBy: ManagedBySyndesis,
	}
}

// AddInstanceLabel adds the installation label to the provided labels map.
func AddInstanceLabel(labels map[string]string, instanceName string) map[string]string {
	labels[LabelSyndesisInstance] = instanceName
	return labels
}

// AddTypeLabel adds the resource type label to the provided labels map.
func AddTypeLabel(labels map[string]string, resourceType string) map[string]string {
	labels[LabelSyndesisType] = resourceType
	return labels
}

// selectorLabelsAllowList contains the keys that are allowed in label selectors.
// These must be stable identity labels, not mutable metadata.
var selectorLabelsAllowList = map[string]bool{
	LabelAppComponent:     true,
	LabelAppInstance:      true,
	LabelSyndesisInstance: true,
	LabelSyndesisType:     true,
}

// GetSelectorLabels filters the provided labels map to return only those keys
// allowed in resource selectors (Identity Labels).
//
// This separates stable identity labels from mutable metadata labels like
// versions, ensuring that changes to mutable metadata do not trigger
// unnecessary recreation of immutable resources.
func GetSelectorLabels(labels map[string]string) map[string]string {
	selectorLabels := make(map[string]string)
	for k, v := range labels {
		if selectorLabelsAllowList[k] {
			selectorLabels[k] = v
		}
	}
	return selectorLabels
}

// MergeLabels merges custom labels with standard labels.
//
// Note that standard labels take precedence over custom labels to prevent users
// from overriding critical operator-managed labels.
func MergeLabels(standardLabels, customLabels map[string]string) map[string]string {
	merged := make(map[string]string)

	// Copy custom labels first (if provided)
	maps.Copy(merged, customLabels)

	// Copy standard labels (overwriting any duplicates from custom)
	maps.Copy(merged, standardLabels)

	return merged
}
