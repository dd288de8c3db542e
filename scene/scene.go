// Package scene reads declarative scene files and replays them through a
// builder.Builder, one frame per message.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scene is a sequence of frames.
type Scene struct {
	Frames []Frame `yaml:"frames" jsonschema:"minItems=1"`
}

// Frame is everything written for one timestamp, keyed by stream id.
type Frame struct {
	Poses      map[string]PoseSpec        `yaml:"poses"`
	Variables  map[string][]VariableSpec  `yaml:"variables,omitempty"`
	Primitives map[string][]PrimitiveSpec `yaml:"primitives,omitempty"`
}

// MapOriginSpec is a geographic anchor.
type MapOriginSpec struct {
	Longitude float64 `yaml:"longitude"`
	Latitude  float64 `yaml:"latitude"`
	Altitude  float64 `yaml:"altitude,omitempty"`
}

// PoseSpec describes one pose stream.
type PoseSpec struct {
	Timestamp   *float64       `yaml:"timestamp"`
	MapOrigin   *MapOriginSpec `yaml:"map_origin,omitempty"`
	Position    []float64      `yaml:"position,omitempty" jsonschema:"minItems=3,maxItems=3"`
	Orientation []float64      `yaml:"orientation,omitempty" jsonschema:"minItems=3,maxItems=3"`
}

// VariableSpec describes one variable.
type VariableSpec struct {
	Values []any  `yaml:"values"`
	ID     string `yaml:"id,omitempty"`
}

// PrimitiveSpec describes one primitive. Which fields apply depends on Kind.
type PrimitiveSpec struct {
	Kind     string         `yaml:"kind" jsonschema:"enum=image,enum=polygon,enum=polyline,enum=point,enum=circle,enum=stadium,enum=text"`
	Vertices [][]float64    `yaml:"vertices,omitempty"`
	Position []float64      `yaml:"position,omitempty"`
	Start    []float64      `yaml:"start,omitempty"`
	End      []float64      `yaml:"end,omitempty"`
	Radius   float64        `yaml:"radius,omitempty"`
	Text     string         `yaml:"text,omitempty"`
	Data     string         `yaml:"data,omitempty" jsonschema:"description=Encoded image payload"`
	Width    int            `yaml:"width_px,omitempty"`
	Height   int            `yaml:"height_px,omitempty"`
	Colors   [][]uint8      `yaml:"colors,omitempty"`
	Style    map[string]any `yaml:"style,omitempty"`
	// ID "auto" assigns a random UUID.
	ID      string   `yaml:"id,omitempty"`
	Classes []string `yaml:"classes,omitempty"`
}

// Load reads a YAML scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read scene file %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML scene document.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid scene YAML: %w", err)
	}
	if len(s.Frames) == 0 {
		return nil, fmt.Errorf("scene has no frames")
	}
	return &s, nil
}
