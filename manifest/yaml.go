package manifest

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// ParseYAML decodes a YAML manifest. Decoding is strict: unknown fields
// and duplicate keys are rejected so manifest typos fail loudly instead
// of silently dropping declarations.
func ParseYAML(src []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.UnmarshalWithOptions(src, &m, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("manifest: decode yaml: %w", err)
	}

	return &m, nil
}
