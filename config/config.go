// Package config loads builder configuration from YAML or TOML files.
package config

import (
	"fmt"
	"strings"

	goxviz "github.com/reoring/goxviz"
)

// Warning policy names accepted in config files.
const (
	PolicyFlush  = "flush"
	PolicyReject = "reject"
)

// StreamConfig declares what a stream carries.
type StreamConfig struct {
	Category      string `yaml:"category" toml:"category"`
	PrimitiveType string `yaml:"primitive_type,omitempty" toml:"primitive_type"`
}

// Config is the builder configuration.
type Config struct {
	// PrimaryPoseStream is the pose stream every message must carry.
	PrimaryPoseStream string `yaml:"primary_pose_stream" toml:"primary_pose_stream"`
	// DisabledStreams are validated but never written to output.
	DisabledStreams []string `yaml:"disabled_streams,omitempty" toml:"disabled_streams"`
	// Streams declares per-stream metadata checked on every flush.
	Streams map[string]StreamConfig `yaml:"streams,omitempty" toml:"streams"`
	// WarningPolicy is "flush" (default) or "reject".
	WarningPolicy string `yaml:"warning_policy,omitempty" toml:"warning_policy"`
	// Language selects issue message language ("en" or "ja").
	Language string `yaml:"language,omitempty" toml:"language"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		PrimaryPoseStream: goxviz.PrimaryPoseStream,
		WarningPolicy:     PolicyFlush,
		Language:          "en",
	}
}

// Validate checks the configuration for unknown values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.PrimaryPoseStream) == "" {
		return fmt.Errorf("config missing primary_pose_stream")
	}
	switch c.WarningPolicy {
	case "", PolicyFlush, PolicyReject:
	default:
		return fmt.Errorf("config warning_policy %q must be %q or %q", c.WarningPolicy, PolicyFlush, PolicyReject)
	}
	switch c.Language {
	case "", "en", "ja":
	default:
		return fmt.Errorf("config language %q must be \"en\" or \"ja\"", c.Language)
	}
	for id, s := range c.Streams {
		if !goxviz.Category(s.Category).Valid() {
			return fmt.Errorf("config stream %s: unknown category %q", id, s.Category)
		}
		if s.PrimitiveType != "" && !goxviz.PrimitiveKind(s.PrimitiveType).Valid() {
			return fmt.Errorf("config stream %s: unknown primitive_type %q", id, s.PrimitiveType)
		}
	}
	return nil
}

// Policy returns the warning policy as a goxviz value.
func (c *Config) Policy() goxviz.WarningPolicy {
	if c.WarningPolicy == PolicyReject {
		return goxviz.WarnReject
	}
	return goxviz.WarnFlush
}

// StreamMetadata converts Streams into validator metadata.
func (c *Config) StreamMetadata() map[string]goxviz.StreamMetadata {
	if len(c.Streams) == 0 {
		return nil
	}
	out := make(map[string]goxviz.StreamMetadata, len(c.Streams))
	for id, s := range c.Streams {
		out[id] = goxviz.StreamMetadata{
			Category:      goxviz.Category(s.Category),
			PrimitiveType: goxviz.PrimitiveKind(s.PrimitiveType),
		}
	}
	return out
}
