/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for recolor.
package config

import (
	"encoding/json"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/recolor/preset"
	"bennypowers.dev/recolor/remap"
)

// MaxNameLength is the longest display name a custom mapping may have.
const MaxNameLength = 50

// Config represents the recolor configuration.
type Config struct {
	// Files specifies markup files to process (paths or globs).
	Files []FileSpec `yaml:"files" json:"files"`

	// Preset is the default mapping: a preset id or a key of Mappings.
	Preset string `yaml:"preset" json:"preset"`

	// Mappings are custom named mappings keyed by id.
	Mappings map[string]MappingSpec `yaml:"mappings" json:"mappings"`
}

// FileSpec represents a markup file specification.
// It can be specified as a simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the file path (supports globs).
	Path string `yaml:"path" json:"path"`

	// Mapping overrides the default mapping for this file.
	Mapping string `yaml:"mapping" json:"mapping"`
}

// MappingSpec is the raw, unvalidated form of a custom mapping.
type MappingSpec struct {
	// Name is the display name. Defaults to the title-cased id.
	Name string `yaml:"name" json:"name"`

	// Colors maps color names or family-shade pairs: blue: purple, blue-500: indigo-600
	Colors map[string]string `yaml:"colors" json:"colors"`

	// Overrides maps exact utilities: bg-white: bg-slate-50
	Overrides map[string]string `yaml:"overrides" json:"overrides"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Files:    nil,
		Preset:   "",
		Mappings: nil,
	}
}

// MappingForPath returns the mapping id to apply to an expanded file path.
// A FileSpec whose pattern, resolved against rootDir, matches path
// overrides the global preset.
func (c *Config) MappingForPath(rootDir, path string) string {
	target := filepath.ToSlash(filepath.Clean(path))
	for _, spec := range c.Files {
		if spec.Mapping == "" {
			continue
		}
		pattern := spec.Path
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(rootDir, pattern)
		}
		pattern = filepath.ToSlash(pattern)
		if pattern == target {
			return spec.Mapping
		}
		if matched, _ := doublestar.Match(pattern, target); matched {
			return spec.Mapping
		}
	}
	return c.Preset
}

// MappingIDs returns the custom mapping ids in sorted order.
func (c *Config) MappingIDs() []string {
	return slices.Sorted(maps.Keys(c.Mappings))
}

// Resolve returns the validated mapping for id. Custom mappings shadow
// presets of the same id. Invalid pairs are reported to sink and dropped.
func (c *Config) Resolve(id string, sink remap.Diagnostics) (remap.MappingConfig, error) {
	if id == "" {
		return remap.MappingConfig{}, ErrNoMapping
	}

	if spec, ok := c.Mappings[id]; ok {
		return spec.Build(id, sink), nil
	}

	if p, ok := preset.Get(id); ok {
		return p, nil
	}

	return remap.MappingConfig{}, fmt.Errorf("%w: %s", ErrUnknownMapping, id)
}

// Build validates the spec into a mapping. Overrides are merged over colors
// so exact utilities are consulted first by the resolution ladder.
func (s MappingSpec) Build(id string, sink remap.Diagnostics) remap.MappingConfig {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		name = DisplayName(id)
	}
	return remap.MappingConfig{
		Name: name,
		Mappings: remap.Merge(
			remap.BuildMapping(trimPairs(s.Colors), sink),
			remap.BuildOverrides(trimPairs(s.Overrides), sink),
		),
	}
}

// trimPairs trims both sides of every pair. Keys that collide after
// trimming resolve in sorted order, so the last spelling wins.
func trimPairs(raw map[string]string) map[string]string {
	trimmed := make(map[string]string, len(raw))
	for _, from := range slices.Sorted(maps.Keys(raw)) {
		trimmed[strings.TrimSpace(from)] = strings.TrimSpace(raw[from])
	}
	return trimmed
}

// DisplayName derives a display name from a mapping id:
// "brand-refresh" -> "Brand Refresh".
func DisplayName(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}
