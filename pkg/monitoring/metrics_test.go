package monitoring

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestCollectorsRegistered(t *testing.T) {
	t.Helper()
	collectors := Collectors()
	if len(collectors) == 0 {
		t.Fatal("expected at least one collector, got 0")
	}
}

func TestMetricNamingConvention(t *testing.T) {
	for _, c := range Collectors() {
		ch := make(chan *prometheus.Desc, 10)
		c.Describe(ch)
		close(ch)

		for desc := range ch {
			name := extractMetricName(desc)
			if !strings.HasPrefix(name, "syndesis_operator_") {
				t.Errorf("metric %q does not start with syndesis_operator_ prefix", name)
			}
		}
	}
}

func TestMetricHelpNonEmpty(t *testing.T) {
	for _, c := range Collectors() {
		ch := make(chan *prometheus.Desc, 10)
		c.Describe(ch)
		close(ch)

		for desc := range ch {
			help := extractHelp(desc)
			if help == "" {
				t.Errorf("metric %q has empty help string", desc.String())
			}
		}
	}
}

func TestMetricLabels(t *testing.T) {
	tests := []struct {
		name       string
		collector  prometheus.Collector
		wantLabels []string
	}{
		{
			name:       "installationInfo",
			collector:  installationInfo,
			wantLabels: []string{"name", "namespace", "phase"},
		},
		{
			name:       "resolutionTotal",
			collector:  resolutionTotal,
			wantLabels: []string{"result"},
		},
		{
			name:       "generatedSecretsTotal",
			collector:  generatedSecretsTotal,
			wantLabels: []string{"field"},
		},
		{
			name:       "routeLookupTotal",
			collector:  routeLookupTotal,
			wantLabels: []string{"result"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := make(chan *prometheus.Desc, 1)
			tt.collector.Describe(ch)
			desc := <-ch
			close(ch)

			descStr := desc.String()
			for _, label := range tt.wantLabels {
				if !strings.Contains(descStr, label) {
					t.Errorf("metric %s missing label %q in descriptor: %s", tt.name, label, descStr)
				}
			}
		})
	}
}

// extractMetricName pulls fqName from the Desc string representation.
// Format: Desc{fqName: "syndesis_...", help: "...", ...}
func extractMetricName(desc *prometheus.Desc) string {
	s := desc.String()
	prefix := "fqName: \""
	start := strings.Index(s, prefix)
	if start < 0 {
		return ""
	}
	start += len(prefix)
	end := strings.Index(s[start:], "\"")
	if end < 0 {
		return ""
	}
	return s[start : start+end]
}

// extractHelp pulls the help text from the Desc string representation.
func extractHelp(desc *prometheus.Desc) string {
	s := desc.String()
	prefix := "help: \""
	start := strings.Index(s, prefix)
	if start < 0 {
		return ""
	}
	start += len(prefix)
	end := strings.Index(s[start:], "\"")
	if end < 0 {
		return ""
	}
	return s[start : start+end]
}
