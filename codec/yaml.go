package codec

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// YAML encodes documents as a single YAML document.
type YAML struct{}

func (YAML) Encode(doc map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (YAML) Name() string { return "yaml" }
