package configuration

import (
	"os"

	"sigs.k8s.io/yaml"
)

// LoadFromFile decodes the base configuration document at path into a fresh
// Config. The document ships with the operator and defaults every field; all
// later stages only override, never remove.
//
// The parse is strict: unknown keys and type mismatches yield a *DecodeError,
// as does an absent or unreadable file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Source: "configuration template", Err: err}
	}

	config := &Config{}
	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return nil, &DecodeError{Source: "configuration template", Err: err}
	}

	return config, nil
}
