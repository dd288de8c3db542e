// Package codec provides goxviz.Encoder implementations for the supported
// wire formats. Every encoder emits map keys in sorted order so the same
// document always encodes to the same bytes.
package codec

import (
	"fmt"
	"sort"

	goxviz "github.com/reoring/goxviz"
)

var registry = map[string]func() goxviz.Encoder{
	"json":    func() goxviz.Encoder { return JSON{} },
	"msgpack": func() goxviz.Encoder { return MessagePack{} },
	"yaml":    func() goxviz.Encoder { return YAML{} },
}

// ByName returns the encoder registered under name.
func ByName(name string) (goxviz.Encoder, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("codec: unknown format %q (want one of %v)", name, Names())
	}
	return f(), nil
}

// Names lists the registered format names.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
