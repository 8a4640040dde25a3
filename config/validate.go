/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/recolor/preset"
)

// ValidationError represents a configuration problem.
type ValidationError struct {
	// FilePath is the path to the config file, if known.
	FilePath string
	// Path is the dotted path to the problematic element.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// collector records dropped mapping pairs as validation errors.
type collector struct {
	path   string
	errors []ValidationError
}

func (c *collector) Warn(format string, args ...any) {
	c.errors = append(c.errors, ValidationError{
		Path:    c.path,
		Message: fmt.Sprintf(format, args...),
	})
}

// Validate checks every custom mapping, per-file mapping reference and the
// default preset. It returns nil when the config is usable as written.
func (c *Config) Validate(filePath string) []ValidationError {
	var errs []ValidationError

	for _, id := range c.MappingIDs() {
		spec := c.Mappings[id]
		path := "mappings." + id

		if strings.TrimSpace(id) == "" {
			errs = append(errs, ValidationError{Path: "mappings", Message: "mapping id is empty"})
			continue
		}

		if len(strings.TrimSpace(spec.Name)) > MaxNameLength {
			errs = append(errs, ValidationError{
				Path:       path + ".name",
				Message:    fmt.Sprintf("name must be %d characters or less", MaxNameLength),
				Suggestion: "shorten the name",
			})
		}

		if len(spec.Colors) == 0 && len(spec.Overrides) == 0 {
			errs = append(errs, ValidationError{
				Path:       path,
				Message:    "mapping has no colors or overrides",
				Suggestion: "add at least one color mapping",
			})
		}

		errs = append(errs, duplicateSources(path+".colors", spec.Colors)...)
		errs = append(errs, duplicateSources(path+".overrides", spec.Overrides)...)

		col := &collector{path: path}
		spec.Build(id, col)
		errs = append(errs, col.errors...)
	}

	if c.Preset != "" && !c.knows(c.Preset) {
		errs = append(errs, ValidationError{
			Path:       "preset",
			Message:    fmt.Sprintf("unknown mapping %q", c.Preset),
			Suggestion: "use one of: " + strings.Join(c.knownIDs(), ", "),
		})
	}

	for i, spec := range c.Files {
		if spec.Mapping != "" && !c.knows(spec.Mapping) {
			errs = append(errs, ValidationError{
				Path:    fmt.Sprintf("files[%d].mapping", i),
				Message: fmt.Sprintf("unknown mapping %q", spec.Mapping),
			})
		}
	}

	for i := range errs {
		errs[i].FilePath = filePath
	}

	return errs
}

func (c *Config) knows(id string) bool {
	if _, ok := c.Mappings[id]; ok {
		return true
	}
	_, ok := preset.Get(id)
	return ok
}

func (c *Config) knownIDs() []string {
	ids := append(c.MappingIDs(), preset.IDs()...)
	slices.Sort(ids)
	return slices.Compact(ids)
}

// duplicateSources reports keys that collide once surrounding whitespace is trimmed.
func duplicateSources(path string, pairs map[string]string) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]string, len(pairs))
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		trimmed := strings.TrimSpace(key)
		if prev, ok := seen[trimmed]; ok {
			errs = append(errs, ValidationError{
				Path:    path,
				Message: fmt.Sprintf("duplicate source color %q (also written as %q)", trimmed, prev),
			})
			continue
		}
		seen[trimmed] = key
	}
	return errs
}
