package codec

import (
	j "github.com/goccy/go-json"
)

// JSON encodes documents with goccy/go-json. Byte payloads are rendered as
// base64 strings.
type JSON struct {
	// Indent, when non-empty, pretty-prints with this indent.
	Indent string
}

func (e JSON) Encode(doc map[string]any) ([]byte, error) {
	if e.Indent != "" {
		return j.MarshalIndent(doc, "", e.Indent)
	}
	return j.Marshal(doc)
}

func (JSON) Name() string { return "json" }
