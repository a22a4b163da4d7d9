package configuration

import (
	syndesisv1alpha1 "github.com/syndesisio/syndesis-operator/api/v1alpha1"
)

// SetFromCustomResource overlays the sparse administrator-authored spec onto
// the Config, field by field. A zero-valued source field keeps the current
// destination value; pointer booleans overlay only when non-nil, so an
// explicit "false" wins over a template "true". Map-valued fields replace
// the destination map wholesale when non-empty.
//
// The custom resource shape is a strict subset of Config: image references
// and resource sizing cannot be expressed there and always keep their
// template or environment values. Each add-on block overlays independently;
// enabling one add-on never perturbs a sibling's fields.
func (c *Config) SetFromCustomResource(syndesis *syndesisv1alpha1.Syndesis) error {
	if syndesis == nil {
		return nil
	}
	spec := syndesis.Spec

	if spec.RouteHostname != "" {
		c.RouteHostname = spec.RouteHostname
	}
	if spec.ImageStreamNamespace != "" {
		c.ImageStreamNamespace = spec.ImageStreamNamespace
	}
	if spec.DevSupport != nil {
		c.DevSupport = *spec.DevSupport
	}

	c.overlayServerFeatures(spec)
	c.overlayAddons(spec.Addons)
	c.overlayComponents(spec.Components)

	return nil
}

func (c *Config) overlayServerFeatures(spec syndesisv1alpha1.SyndesisSpec) {
	features := &c.Syndesis.Components.Server.Features

	if spec.DemoData != nil {
		features.DemoData = *spec.DemoData
	}
	if spec.DeployIntegrations != nil {
		features.DeployIntegrations = *spec.DeployIntegrations
	}
	if spec.TestSupport != nil {
		features.TestSupport = *spec.TestSupport
	}
	if spec.Integration.Limit != nil {
		features.IntegrationLimit = *spec.Integration.Limit
	}
	if spec.Integration.StateCheckInterval != nil {
		features.IntegrationStateCheckInterval = *spec.Integration.StateCheckInterval
	}

	// Whole-map replacement, never a per-key merge.
	if len(spec.MavenRepositories) > 0 {
		repositories := make(map[string]string, len(spec.MavenRepositories))
		for id, url := range spec.MavenRepositories {
			repositories[id] = url
		}
		features.MavenRepositories = repositories
	}
}

func (c *Config) overlayAddons(addons syndesisv1alpha1.AddonsSpec) {
	jaeger := &c.Syndesis.Addons.Jaeger
	if addons.Jaeger.Enabled != nil {
		jaeger.Enabled = *addons.Jaeger.Enabled
	}
	if addons.Jaeger.SamplerType != "" {
		jaeger.SamplerType = addons.Jaeger.SamplerType
	}
	if addons.Jaeger.SamplerParam != "" {
		jaeger.SamplerParam = addons.Jaeger.SamplerParam
	}

	if addons.Ops.Enabled != nil {
		c.Syndesis.Addons.Ops.Enabled = *addons.Ops.Enabled
	}
	if addons.Todo.Enabled != nil {
		c.Syndesis.Addons.Todo.Enabled = *addons.Todo.Enabled
	}
	if addons.Knative.Enabled != nil {
		c.Syndesis.Addons.Knative.Enabled = *addons.Knative.Enabled
	}
	if addons.DV.Enabled != nil {
		c.Syndesis.Addons.DV.Enabled = *addons.DV.Enabled
	}

	camelK := &c.Syndesis.Addons.CamelK
	if addons.CamelK.Enabled != nil {
		camelK.Enabled = *addons.CamelK.Enabled
	}
	if addons.CamelK.CamelVersion != "" {
		camelK.CamelVersion = addons.CamelK.CamelVersion
	}
	if addons.CamelK.CamelKRuntime != "" {
		camelK.CamelKRuntime = addons.CamelK.CamelKRuntime
	}
}

func (c *Config) overlayComponents(components syndesisv1alpha1.ComponentsSpec) {
	database := &c.Syndesis.Components.Database
	if components.Database.User != "" {
		database.User = components.Database.User
	}
	if components.Database.Name != "" {
		database.Name = components.Database.Name
	}
	if components.Database.URL != "" {
		database.URL = components.Database.URL
	}

	if components.Server.OpenShiftMaster != "" {
		c.Syndesis.Components.Server.Features.OpenShiftMaster = components.Server.OpenShiftMaster
	}
}
