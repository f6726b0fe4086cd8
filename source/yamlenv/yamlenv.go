// Package yamlenv loads raw value maps from YAML documents.
package yamlenv

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Load decodes a flat YAML mapping into a raw value map.
func Load(b []byte) (map[string]any, error) {
	var out map[string]any
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// Read decodes a flat YAML mapping from r into a raw value map.
func Read(r io.Reader) (map[string]any, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Load(b)
}
