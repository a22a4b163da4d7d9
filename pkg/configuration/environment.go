package configuration

import (
	"os"
	"strings"
)

// Environment variables recognized by the overlay. Anything else in the
// process environment is ignored.
const (
	EnvOauthImage        = "OAUTH_IMAGE"
	EnvUIImage           = "UI_IMAGE"
	EnvS2IImage          = "S2I_IMAGE"
	EnvServerImage       = "SERVER_IMAGE"
	EnvMetaImage         = "META_IMAGE"
	EnvDatabaseImage     = "DATABASE_IMAGE"
	EnvPsqlExporterImage = "PSQL_EXPORTER_IMAGE"
	EnvPrometheusImage   = "PROMETHEUS_IMAGE"
	EnvUpgradeImage      = "UPGRADE_IMAGE"
	EnvDvImage           = "DV_IMAGE"
	EnvCamelKImage       = "CAMELK_IMAGE"

	EnvDatabaseNamespace = "DATABASE_NAMESPACE"
	EnvCamelVersion      = "CAMEL_VERSION"
	EnvCamelKRuntime     = "CAMELK_RUNTIME"
	EnvRouteHostname     = "ROUTE_HOSTNAME"

	EnvDevSupport         = "DEV_SUPPORT"
	EnvTestSupport        = "TEST_SUPPORT"
	EnvDemoData           = "DEMO_DATA"
	EnvControllersEnabled = "CONTROLLERS_INTEGRATION_ENABLED"
)

// Environment is an explicit, injected view of the process environment. The
// overlay never reads process-global state, which keeps it testable and keeps
// resolution reproducible for a given input.
type Environment map[string]string

// FromOS captures the current process environment.
func FromOS() Environment {
	env := make(Environment)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

// SetFromEnvironment overlays the recognized variables onto the Config.
// Unset variables never alter their field. Boolean variables are tri-state:
// absent leaves the field unchanged, the literal "true" sets it, any other
// present value clears it.
//
// The overlay is atomic: it mutates a scratch copy and commits only on
// success, so a failed pass never leaks a half-applied Config downstream.
func (c *Config) SetFromEnvironment(env Environment) error {
	scratch := *c

	setStringFromEnv(env, EnvOauthImage, &scratch.Syndesis.Components.Oauth.Image)
	setStringFromEnv(env, EnvUIImage, &scratch.Syndesis.Components.UI.Image)
	setStringFromEnv(env, EnvS2IImage, &scratch.Syndesis.Components.S2I.Image)
	setStringFromEnv(env, EnvServerImage, &scratch.Syndesis.Components.Server.Image)
	setStringFromEnv(env, EnvMetaImage, &scratch.Syndesis.Components.Meta.Image)
	setStringFromEnv(env, EnvDatabaseImage, &scratch.Syndesis.Components.Database.Image)
	setStringFromEnv(env, EnvPsqlExporterImage, &scratch.Syndesis.Components.Database.Exporter.Image)
	setStringFromEnv(env, EnvPrometheusImage, &scratch.Syndesis.Components.Prometheus.Image)
	setStringFromEnv(env, EnvUpgradeImage, &scratch.Syndesis.Components.Upgrade.Image)
	setStringFromEnv(env, EnvDvImage, &scratch.Syndesis.Addons.DV.Image)
	setStringFromEnv(env, EnvCamelKImage, &scratch.Syndesis.Addons.CamelK.Image)

	setStringFromEnv(env, EnvDatabaseNamespace, &scratch.Syndesis.Components.Database.ImageStreamNamespace)
	setStringFromEnv(env, EnvCamelVersion, &scratch.Syndesis.Addons.CamelK.CamelVersion)
	setStringFromEnv(env, EnvCamelKRuntime, &scratch.Syndesis.Addons.CamelK.CamelKRuntime)
	setStringFromEnv(env, EnvRouteHostname, &scratch.RouteHostname)

	scratch.DevSupport = setBoolFromEnv(env, EnvDevSupport, scratch.DevSupport)
	scratch.Syndesis.Components.Server.Features.TestSupport = setBoolFromEnv(
		env, EnvTestSupport, scratch.Syndesis.Components.Server.Features.TestSupport)
	scratch.Syndesis.Components.Server.Features.DemoData = setBoolFromEnv(
		env, EnvDemoData, scratch.Syndesis.Components.Server.Features.DemoData)
	scratch.Syndesis.Components.Server.ControllersIntegrationEnabled = setBoolFromEnv(
		env, EnvControllersEnabled, scratch.Syndesis.Components.Server.ControllersIntegrationEnabled)

	*c = scratch
	return nil
}

func setStringFromEnv(env Environment, key string, field *string) {
	if v, ok := env[key]; ok {
		*field = v
	}
}

// setBoolFromEnv reads key as a tri-state boolean: absent returns current,
// "true" returns true, any other present value returns false.
func setBoolFromEnv(env Environment, key string, current bool) bool {
	v, ok := env[key]
	if !ok {
		return current
	}
	return v == "true"
}
