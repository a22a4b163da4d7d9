package metadata_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/syndesisio/syndesis-operator/pkg/util/metadata"
)

func TestBuildStandardLabels(t *testing.T) {
	tests := map[string]struct {
		instanceName  string
		componentName string
		want          map[string]string
	}{
		"typical case": {
			instanceName:  "app",
			componentName: "syndesis-server",
			want: map[string]string{
				"app.kubernetes.io/name":       "syndesis",
				"app.kubernetes.io/instance":   "app",
				"app.kubernetes.io/component":  "syndesis-server",
				"app.kubernetes.io/part-of":    "syndesis",
				"app.kubernetes.io/managed-by": "syndesis-operator",
			},
		},
		"empty strings allowed": {
			instanceName:  "",
			componentName: "",
			want: map[string]string{
				"app.kubernetes.io/name":       "syndesis",
				"app.kubernetes.io/instance":   "",
				"app.kubernetes.io/component":  "",
				"app.kubernetes.io/part-of":    "syndesis",
				"app.kubernetes.io/managed-by": "syndesis-operator",
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := metadata.BuildStandardLabels(tc.instanceName, tc.componentName)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("BuildStandardLabels() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeLabels(t *testing.T) {
	tests := map[string]struct {
		standardLabels map[string]string
		customLabels   map[string]string
		want           map[string]string
	}{
		"standard labels win on conflicts": {
			standardLabels: map[string]string{
				"app.kubernetes.io/name":       "syndesis",
				"app.kubernetes.io/instance":   "app",
				"app.kubernetes.io/component":  "syndesis-db",
				"app.kubernetes.io/managed-by": "syndesis-operator",
			},
			customLabels: map[string]string{
				"app.kubernetes.io/name":      "user-app",      // conflict
				"app.kubernetes.io/component": "user-override", // conflict
				"env":                         "production",    // no conflict
				"team":                        "integrations",  // no conflict
			},
			want: map[string]string{
				"app.kubernetes.io/name":       "syndesis",
				"app.kubernetes.io/instance":   "app",
				"app.kubernetes.io/component":  "syndesis-db",
				"app.kubernetes.io/managed-by": "syndesis-operator",
				"env":                          "production",
				"team":                         "integrations",
			},
		},
		"nil maps handled correctly": {
			standardLabels: nil,
			customLabels:   nil,
			want:           map[string]string{},
		},
		"only custom labels": {
			standardLabels: nil,
			customLabels: map[string]string{
				"env":  "dev",
				"team": "integrations",
			},
			want: map[string]string{
				"env":  "dev",
				"team": "integrations",
			},
		},
		"only standard labels": {
			standardLabels: map[string]string{
				"app.kubernetes.io/name":      "syndesis",
				"app.kubernetes.io/component": "syndesis-ui",
			},
			customLabels: nil,
			want: map[string]string{
				"app.kubernetes.io/name":      "syndesis",
				"app.kubernetes.io/component": "syndesis-ui",
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := metadata.MergeLabels(tc.standardLabels, tc.customLabels)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("MergeLabels() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddSyndesisLabels(t *testing.T) {
	t.Run("AddInstanceLabel", func(t *testing.T) {
		labels := map[string]string{"app.kubernetes.io/name": "syndesis"}
		metadata.AddInstanceLabel(labels, "app")
		if labels["syndesis.io/app"] != "app" {
			t.Errorf("AddInstanceLabel failed")
		}
	})

	t.Run("AddTypeLabel", func(t *testing.T) {
		labels := map[string]string{"app.kubernetes.io/name": "syndesis"}
		metadata.AddTypeLabel(labels, metadata.TypeInfrastructure)
		if labels["syndesis.io/type"] != "infrastructure" {
			t.Errorf("AddTypeLabel failed")
		}
	})
}

func TestLabelOperations_ComplexScenarios(t *testing.T) {
	tests := map[string]struct {
		setupFunc func() map[string]string
		want      map[string]string
	}{
		"build standard labels then add syndesis labels": {
			setupFunc: func() map[string]string {
				labels := metadata.BuildStandardLabels("app", "syndesis-infra")
				metadata.AddInstanceLabel(labels, "app")
				metadata.AddTypeLabel(labels, metadata.TypeInfrastructure)
				return labels
			},
			want: map[string]string{
				"app.kubernetes.io/name":       "syndesis",
				"app.kubernetes.io/instance":   "app",
				"app.kubernetes.io/component":  "syndesis-infra",
				"app.kubernetes.io/part-of":    "syndesis",
				"app.kubernetes.io/managed-by": "syndesis-operator",
				"syndesis.io/app":              "app",
				"syndesis.io/type":             "infrastructure",
			},
		},
		"merge custom labels then add syndesis labels": {
			setupFunc: func() map[string]string {
				standard := metadata.BuildStandardLabels("app", "syndesis-prometheus")
				custom := map[string]string{
					"env":  "production",
					"team": "integrations",
				}
				labels := metadata.MergeLabels(standard, custom)
				metadata.AddInstanceLabel(labels, "app")
				return labels
			},
			want: map[string]string{
				"app.kubernetes.io/name":       "syndesis",
				"app.kubernetes.io/instance":   "app",
				"app.kubernetes.io/component":  "syndesis-prometheus",
				"app.kubernetes.io/part-of":    "syndesis",
				"app.kubernetes.io/managed-by": "syndesis-operator",
				"syndesis.io/app":              "app",
				"env":                          "production",
				"team":                         "integrations",
			},
		},
		"merge with conflicting syndesis labels - standard wins": {
			setupFunc: func() map[string]string {
				labels := metadata.BuildStandardLabels("app", "syndesis-server")
				metadata.AddInstanceLabel(labels, "app")

				conflicting := map[string]string{
					"syndesis.io/app": "other-app",
					"custom":          "value",
				}
				return metadata.MergeLabels(labels, conflicting)
			},
			want: map[string]string{
				"app.kubernetes.io/name":       "syndesis",
				"app.kubernetes.io/instance":   "app",
				"app.kubernetes.io/component":  "syndesis-server",
				"app.kubernetes.io/part-of":    "syndesis",
				"app.kubernetes.io/managed-by": "syndesis-operator",
				"syndesis.io/app":              "app",
				"custom":                       "value",
			},
		},
		"add labels to empty map": {
			setupFunc: func() map[string]string {
				labels := make(map[string]string)
				metadata.AddInstanceLabel(labels, "app")
				metadata.AddTypeLabel(labels, metadata.TypeInfrastructure)
				return labels
			},
			want: map[string]string{
				"syndesis.io/app":  "app",
				"syndesis.io/type": "infrastructure",
			},
		},
		"overwrite instance label multiple times - last wins": {
			setupFunc: func() map[string]string {
				labels := make(map[string]string)
				metadata.AddInstanceLabel(labels, "first")
				metadata.AddInstanceLabel(labels, "second")
				metadata.AddInstanceLabel(labels, "third")
				return labels
			},
			want: map[string]string{
				"syndesis.io/app": "third",
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := tc.setupFunc()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Label operations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetSelectorLabels(t *testing.T) {
	labels := map[string]string{
		"app.kubernetes.io/name":       "syndesis",
		"app.kubernetes.io/instance":   "app",
		"app.kubernetes.io/managed-by": "syndesis-operator",
		"app.kubernetes.io/part-of":    "syndesis",
		"syndesis.io/app":              "app",
		"other-label":                  "value",
	}

	want := map[string]string{
		"app.kubernetes.io/instance": "app",
		"syndesis.io/app":            "app",
	}

	got := metadata.GetSelectorLabels(labels)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetSelectorLabels() mismatch (-want +got):\n%s", diff)
	}
}
