package goxviz

import (
	"errors"
	"fmt"
)

// Encoder performs wire serialization of an assembled document. It receives
// plain nested maps and slices only, never builder types.
type Encoder interface {
	Encode(doc map[string]any) ([]byte, error)
	// Name identifies the wire format (for example "json").
	Name() string
}

// ErrNilDocument is returned when Encode is called without a document.
var ErrNilDocument = errors.New("goxviz: nil document")

// Encode hands the plain form of d to enc.
func Encode(d *Document, enc Encoder) ([]byte, error) {
	if d == nil {
		return nil, ErrNilDocument
	}
	b, err := enc.Encode(d.Object())
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", enc.Name(), err)
	}
	return b, nil
}
