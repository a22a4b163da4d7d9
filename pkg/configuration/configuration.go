package configuration

import (
	"context"
	"crypto/rand"
	"io"

	syndesisv1alpha1 "github.com/syndesisio/syndesis-operator/api/v1alpha1"
)

// Config is the fully resolved runtime configuration for one installation.
// A fresh value is built on every reconciliation pass; only the secret fields
// outlive the pass, persisted externally and re-supplied on the next one.
type Config struct {
	// ProductName is the product identity used in labels and route lookup.
	ProductName string `json:"productName,omitempty"`

	// AllowLocalHost permits localhost callbacks during development.
	AllowLocalHost bool `json:"allowLocalHost,omitempty"`

	// Productized marks a downstream productized build.
	Productized bool `json:"productized,omitempty"`

	// DevSupport switches component images to development builds.
	DevSupport bool `json:"devSupport,omitempty"`

	// Scheduled makes image stream imports scheduled.
	Scheduled bool `json:"scheduled,omitempty"`

	// ImageStreamNamespace is the namespace the database image stream is
	// pulled from.
	ImageStreamNamespace string `json:"imageStreamNamespace,omitempty"`

	// PrometheusRules carries additional recording/alerting rules.
	PrometheusRules string `json:"prometheusRules,omitempty"`

	// OpenShiftProject is the namespace the installation lives in.
	OpenShiftProject string `json:"openshiftProject,omitempty"`

	// OpenShiftOauthClientSecret authenticates the installation's OAuth
	// client against the cluster. Generated on first resolution.
	OpenShiftOauthClientSecret string `json:"openshiftOauthClientSecret,omitempty"`

	// RouteHostname is the externally reachable hostname.
	RouteHostname string `json:"routeHostname,omitempty"`

	// OpenShiftConsoleURL is the cluster console URL surfaced in the UI.
	OpenShiftConsoleURL string `json:"openshiftConsoleUrl,omitempty"`

	Syndesis SyndesisConfig `json:"syndesis,omitempty"`
}

// SyndesisConfig groups the add-on and component configuration.
type SyndesisConfig struct {
	Addons     AddonsSpec     `json:"addons,omitempty"`
	Components ComponentsSpec `json:"components,omitempty"`
}

// ============================================================================
// Add-on Configuration
// ============================================================================

// AddonsSpec holds one entry per optional add-on. The blocks are disjoint:
// overlaying one add-on never touches a sibling's fields.
type AddonsSpec struct {
	Jaeger  JaegerConfiguration `json:"jaeger,omitempty"`
	Ops     AddonConfiguration  `json:"ops,omitempty"`
	Todo    AddonConfiguration  `json:"todo,omitempty"`
	Knative AddonConfiguration  `json:"knative,omitempty"`
	DV      DvConfiguration     `json:"dv,omitempty"`
	CamelK  CamelKConfiguration `json:"camelk,omitempty"`
}

// AddonConfiguration is the minimal add-on shape: an enabled toggle.
type AddonConfiguration struct {
	Enabled bool `json:"enabled,omitempty"`
}

// JaegerConfiguration configures the distributed tracing add-on.
type JaegerConfiguration struct {
	Enabled      bool   `json:"enabled,omitempty"`
	SamplerType  string `json:"samplerType,omitempty"`
	SamplerParam string `json:"samplerParam,omitempty"`
}

// DvConfiguration configures the data virtualization add-on.
type DvConfiguration struct {
	Enabled   bool      `json:"enabled,omitempty"`
	Image     string    `json:"image,omitempty"`
	Resources Resources `json:"resources,omitempty"`
}

// CamelKConfiguration configures the camel-k connector runtime add-on.
type CamelKConfiguration struct {
	Enabled       bool   `json:"enabled,omitempty"`
	Image         string `json:"image,omitempty"`
	CamelVersion  string `json:"camelVersion,omitempty"`
	CamelKRuntime string `json:"camelkRuntime,omitempty"`
}

// ============================================================================
// Component Configuration
// ============================================================================

// ComponentsSpec holds one entry per deployable workload.
type ComponentsSpec struct {
	Oauth      OauthConfiguration      `json:"oauth,omitempty"`
	UI         UIConfiguration         `json:"ui,omitempty"`
	S2I        S2IConfiguration        `json:"s2i,omitempty"`
	Server     ServerConfiguration     `json:"server,omitempty"`
	Meta       MetaConfiguration       `json:"meta,omitempty"`
	Database   DatabaseConfiguration   `json:"database,omitempty"`
	Prometheus PrometheusConfiguration `json:"prometheus,omitempty"`
	Upgrade    UpgradeConfiguration    `json:"upgrade,omitempty"`
}

// OauthConfiguration configures the auth proxy in front of the UI.
type OauthConfiguration struct {
	Image string `json:"image,omitempty"`

	// CookieSecret signs the proxy session cookie. Generated on first
	// resolution.
	CookieSecret string `json:"cookieSecret,omitempty"`
}

// UIConfiguration configures the UI server.
type UIConfiguration struct {
	Image string `json:"image,omitempty"`
}

// S2IConfiguration configures the source-to-image builder.
type S2IConfiguration struct {
	Image string `json:"image,omitempty"`
}

// ServerConfiguration configures the backend server.
type ServerConfiguration struct {
	Image                         string         `json:"image,omitempty"`
	ControllersIntegrationEnabled bool           `json:"controllersIntegrationEnabled,omitempty"`
	Resources                     Resources      `json:"resources,omitempty"`
	Features                      ServerFeatures `json:"features,omitempty"`

	// SyndesisEncryptKey encrypts values at rest. Generated on first
	// resolution.
	SyndesisEncryptKey string `json:"syndesisEncryptKey,omitempty"`

	// ClientStateAuthenticationKey authenticates serialized client state.
	// Generated on first resolution.
	ClientStateAuthenticationKey string `json:"clientStateAuthenticationKey,omitempty"`

	// ClientStateEncryptionKey encrypts serialized client state. Generated
	// on first resolution.
	ClientStateEncryptionKey string `json:"clientStateEncryptionKey,omitempty"`
}

// ServerFeatures carries the backend server feature flags and limits.
type ServerFeatures struct {
	IntegrationLimit              int32  `json:"integrationLimit,omitempty"`
	IntegrationStateCheckInterval int32  `json:"integrationStateCheckInterval,omitempty"`
	DemoData                      bool   `json:"demoData,omitempty"`
	DeployIntegrations            bool   `json:"deployIntegrations,omitempty"`
	TestSupport                   bool   `json:"testSupport,omitempty"`
	OpenShiftMaster               string `json:"openshiftMaster,omitempty"`

	// MavenRepositories maps repository ids to mirror URLs. An overlay with
	// a non-empty map replaces the whole list, never merges per key.
	MavenRepositories map[string]string `json:"mavenRepositories,omitempty"`
}

// MetaConfiguration configures the connector metadata service.
type MetaConfiguration struct {
	Image     string              `json:"image,omitempty"`
	Resources ResourcesWithVolume `json:"resources,omitempty"`
}

// DatabaseConfiguration configures the backing database.
type DatabaseConfiguration struct {
	ImageStreamNamespace string `json:"imageStreamNamespace,omitempty"`
	Image                string `json:"image,omitempty"`
	User                 string `json:"user,omitempty"`
	Name                 string `json:"name,omitempty"`
	URL                  string `json:"url,omitempty"`

	// Password is the database credential. Generated on first resolution.
	Password string `json:"password,omitempty"`

	// SampledbPassword is the sample database credential. Generated on
	// first resolution.
	SampledbPassword string `json:"sampledbPassword,omitempty"`

	Exporter  ExporterConfiguration `json:"exporter,omitempty"`
	Resources ResourcesWithVolume   `json:"resources,omitempty"`
}

// ExporterConfiguration configures the database metrics exporter sidecar.
type ExporterConfiguration struct {
	Image string `json:"image,omitempty"`
}

// PrometheusConfiguration configures the metrics collector.
type PrometheusConfiguration struct {
	Image     string              `json:"image,omitempty"`
	Resources ResourcesWithVolume `json:"resources,omitempty"`
}

// UpgradeConfiguration configures the upgrade job.
type UpgradeConfiguration struct {
	Image     string              `json:"image,omitempty"`
	Resources VolumeOnlyResources `json:"resources,omitempty"`
}

// Resources sizes a workload's memory.
type Resources struct {
	Memory string `json:"memory,omitempty"`
}

// ResourcesWithVolume sizes a workload's memory and persistent volume.
type ResourcesWithVolume struct {
	Memory         string `json:"memory,omitempty"`
	VolumeCapacity string `json:"volumeCapacity,omitempty"`
}

// VolumeOnlyResources sizes only a persistent volume.
type VolumeOnlyResources struct {
	VolumeCapacity string `json:"volumeCapacity,omitempty"`
}

// ============================================================================
// Resolver
// ============================================================================

// Resolver runs the resolution pipeline. It owns no state across passes;
// everything that must survive a pass lives in the cluster (the custom
// resource and the persisted secrets).
type Resolver struct {
	// TemplatePath locates the base configuration document.
	TemplatePath string

	// Environment is the injected view of the process environment.
	Environment Environment

	// Routes resolves the externally reachable route host.
	Routes RouteHostResolver

	// Random is the source for secret generation. Defaults to crypto/rand.
	Random io.Reader
}

// NewResolver creates a Resolver reading random bytes from crypto/rand.
func NewResolver(templatePath string, env Environment, routes RouteHostResolver) *Resolver {
	return &Resolver{
		TemplatePath: templatePath,
		Environment:  env,
		Routes:       routes,
		Random:       rand.Reader,
	}
}

// Resolve runs all five stages in order and returns the resolved Config.
// persisted carries the secret values materialized by an earlier pass; pass
// the zero value on a first installation.
//
// The returned Config is fully valid, or the error is typed: *DecodeError for
// malformed input (degrade the installation), *RouteNotFoundError when the
// route does not exist yet (retry on a later pass).
func (r *Resolver) Resolve(
	ctx context.Context,
	syndesis *syndesisv1alpha1.Syndesis,
	persisted SecretValues,
) (*Config, error) {
	config, err := LoadFromFile(r.TemplatePath)
	if err != nil {
		return nil, err
	}

	if err := config.SetFromEnvironment(r.Environment); err != nil {
		return nil, err
	}

	if err := config.SetFromCustomResource(syndesis); err != nil {
		return nil, err
	}
	config.ApplyPersistedSecrets(persisted)

	config.GeneratePasswords(r.random())

	if err := config.SetRoute(ctx, r.Routes, syndesis); err != nil {
		return nil, err
	}

	return config, nil
}

func (r *Resolver) random() io.Reader {
	if r.Random != nil {
		return r.Random
	}
	return rand.Reader
}
