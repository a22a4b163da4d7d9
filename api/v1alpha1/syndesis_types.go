/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ============================================================================
// Syndesis Spec (User-editable API)
// ============================================================================
//
// The desired state an administrator declares for one installation. Every
// field is optional; an absent field keeps the value resolved from the
// configuration template and the operator environment. Boolean toggles are
// pointers so that an explicit "false" can be told apart from "not set".

// SyndesisSpec defines the desired state of Syndesis.
type SyndesisSpec struct {
	// RouteHostname is the externally reachable hostname for the
	// installation's UI and API. Leave empty to let the operator adopt the
	// host advertised by the cluster route.
	// +optional
	// +kubebuilder:validation:MaxLength=253
	RouteHostname string `json:"routeHostname,omitempty"`

	// DemoData loads sample data into the installation when true.
	// +optional
	DemoData *bool `json:"demoData,omitempty"`

	// DeployIntegrations controls whether the backend server deploys
	// integrations to the cluster.
	// +optional
	DeployIntegrations *bool `json:"deployIntegrations,omitempty"`

	// TestSupport enables backend test endpoints.
	// +optional
	TestSupport *bool `json:"testSupport,omitempty"`

	// DevSupport switches component images to development builds.
	// +optional
	DevSupport *bool `json:"devSupport,omitempty"`

	// ImageStreamNamespace is the namespace the database image stream is
	// pulled from.
	// +optional
	// +kubebuilder:validation:MaxLength=63
	ImageStreamNamespace string `json:"imageStreamNamespace,omitempty"`

	// Integration configures limits applied to user integrations.
	// +optional
	Integration IntegrationSpec `json:"integration,omitempty"`

	// MavenRepositories replaces the default maven mirror list wholesale
	// when non-empty. Keys are repository ids, values are repository URLs.
	// +optional
	MavenRepositories map[string]string `json:"mavenRepositories,omitempty"`

	// Addons toggles and configures the optional add-ons.
	// +optional
	Addons AddonsSpec `json:"addons,omitempty"`

	// Components configures connection identity of the deployable
	// workloads. Image references and resource sizing are intentionally not
	// part of this API.
	// +optional
	Components ComponentsSpec `json:"components,omitempty"`
}

// IntegrationSpec defines limits applied to user integrations.
type IntegrationSpec struct {
	// Limit is the maximum number of integrations a user may activate.
	// Zero means unlimited.
	// +optional
	// +kubebuilder:validation:Minimum=0
	Limit *int32 `json:"limit,omitempty"`

	// StateCheckInterval is the integration state poll interval in seconds.
	// +optional
	// +kubebuilder:validation:Minimum=0
	StateCheckInterval *int32 `json:"stateCheckInterval,omitempty"`
}

// ============================================================================
// Add-on Section Specs
// ============================================================================

// AddonsSpec groups the optional add-ons. Each add-on block is overlaid
// onto the resolved configuration independently of its siblings.
type AddonsSpec struct {
	// +optional
	Jaeger JaegerConfiguration `json:"jaeger,omitempty"`
	// +optional
	Ops AddonConfiguration `json:"ops,omitempty"`
	// +optional
	Todo AddonConfiguration `json:"todo,omitempty"`
	// +optional
	Knative AddonConfiguration `json:"knative,omitempty"`
	// +optional
	DV DvConfiguration `json:"dv,omitempty"`
	// +optional
	CamelK CamelKConfiguration `json:"camelk,omitempty"`
}

// AddonConfiguration is the minimal shape shared by add-ons that only carry
// an enabled toggle.
type AddonConfiguration struct {
	// +optional
	Enabled *bool `json:"enabled,omitempty"`
}

// JaegerConfiguration configures the distributed tracing add-on.
type JaegerConfiguration struct {
	// +optional
	Enabled *bool `json:"enabled,omitempty"`

	// SamplerType selects the jaeger sampler (e.g. "const").
	// +optional
	// +kubebuilder:validation:MaxLength=63
	SamplerType string `json:"samplerType,omitempty"`

	// SamplerParam is passed verbatim to the chosen sampler.
	// +optional
	// +kubebuilder:validation:MaxLength=63
	SamplerParam string `json:"samplerParam,omitempty"`
}

// DvConfiguration configures the data virtualization add-on.
type DvConfiguration struct {
	// +optional
	Enabled *bool `json:"enabled,omitempty"`
}

// CamelKConfiguration configures the camel-k connector runtime add-on.
type CamelKConfiguration struct {
	// +optional
	Enabled *bool `json:"enabled,omitempty"`

	// CamelVersion pins the camel core version used by the runtime.
	// +optional
	// +kubebuilder:validation:MaxLength=63
	CamelVersion string `json:"camelVersion,omitempty"`

	// CamelKRuntime pins the camel-k runtime version.
	// +optional
	// +kubebuilder:validation:MaxLength=63
	CamelKRuntime string `json:"camelkRuntime,omitempty"`
}

// ============================================================================
// Component Section Specs
// ============================================================================

// ComponentsSpec is the user-facing subset of the workload configuration.
type ComponentsSpec struct {
	// +optional
	Database DatabaseConfiguration `json:"database,omitempty"`
	// +optional
	Server ServerConfiguration `json:"server,omitempty"`
}

// DatabaseConfiguration configures the connection identity of the database.
type DatabaseConfiguration struct {
	// User is the database user the backend connects as.
	// +optional
	// +kubebuilder:validation:MaxLength=63
	User string `json:"user,omitempty"`

	// Name is the database name.
	// +optional
	// +kubebuilder:validation:MaxLength=63
	Name string `json:"name,omitempty"`

	// URL is the database connection URL. Set it to point the installation
	// at an externally managed database.
	// +optional
	// +kubebuilder:validation:MaxLength=512
	URL string `json:"url,omitempty"`
}

// ServerConfiguration configures the backend server.
type ServerConfiguration struct {
	// OpenShiftMaster is the cluster API endpoint advertised to the server.
	// +optional
	// +kubebuilder:validation:MaxLength=512
	OpenShiftMaster string `json:"openshiftMaster,omitempty"`
}

// ============================================================================
// Status Specs
// ============================================================================

// SyndesisPhase tracks where an installation is in its lifecycle.
// +kubebuilder:validation:Enum=NotInstalled;Installing;Starting;StartupFailed;Installed;Upgrading;Missing
type SyndesisPhase string

const (
	// SyndesisPhaseNotInstalled means the installation has not started yet.
	SyndesisPhaseNotInstalled SyndesisPhase = "NotInstalled"

	// SyndesisPhaseInstalling means the operator is resolving configuration
	// and rendering the installation.
	SyndesisPhaseInstalling SyndesisPhase = "Installing"

	// SyndesisPhaseStarting means resources exist and workloads are coming up.
	SyndesisPhaseStarting SyndesisPhase = "Starting"

	// SyndesisPhaseStartupFailed means the installation could not be
	// resolved or started; the spec must change before another attempt.
	SyndesisPhaseStartupFailed SyndesisPhase = "StartupFailed"

	// SyndesisPhaseInstalled means the installation is fully resolved and
	// running.
	SyndesisPhaseInstalled SyndesisPhase = "Installed"

	// SyndesisPhaseUpgrading means an upgrade job is in flight.
	SyndesisPhaseUpgrading SyndesisPhase = "Upgrading"

	// SyndesisPhaseMissing means previously managed resources are gone.
	SyndesisPhaseMissing SyndesisPhase = "Missing"
)

// SyndesisStatus defines the observed state of Syndesis.
type SyndesisStatus struct {
	// +optional
	Phase SyndesisPhase `json:"phase,omitempty"`

	// Reason carries a short machine-readable cause for a degraded phase.
	// +optional
	// +kubebuilder:validation:MaxLength=63
	Reason string `json:"reason,omitempty"`

	// Description is a human-readable elaboration of the phase.
	// +optional
	// +kubebuilder:validation:MaxLength=1024
	Description string `json:"description,omitempty"`

	// Version is the installed platform version.
	// +optional
	// +kubebuilder:validation:MaxLength=63
	Version string `json:"version,omitempty"`
}

// ============================================================================
// Root Objects
// ============================================================================

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Phase",type="string",JSONPath=".status.phase"
// +kubebuilder:printcolumn:name="Version",type="string",JSONPath=".status.version"
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// Syndesis is the Schema for one installation of the integration platform.
type Syndesis struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   SyndesisSpec   `json:"spec,omitempty"`
	Status SyndesisStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// SyndesisList contains a list of Syndesis.
type SyndesisList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Syndesis `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Syndesis{}, &SyndesisList{})
}
