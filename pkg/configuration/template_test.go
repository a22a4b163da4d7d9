package configuration

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	got, err := LoadFromFile("testdata/config-test.yaml")
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if diff := cmp.Diff(configLiteral(), got); diff != "" {
		t.Errorf("LoadFromFile() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		path string
	}{
		"Missing File": {
			path: "testdata/does-not-exist.yaml",
		},
		"Malformed Document": {
			path: writeTemplate(t, "productName: [this is not\n  a string\n"),
		},
		"Unknown Key": {
			path: writeTemplate(t, "productName: syndesis\nnoSuchField: true\n"),
		},
		"Wrong Structural Shape": {
			path: writeTemplate(t, "syndesis:\n  components: \"not a mapping\"\n"),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFromFile(tc.path)

			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("LoadFromFile() error = %v, want *DecodeError", err)
			}
		})
	}
}
