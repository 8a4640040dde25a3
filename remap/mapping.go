/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package remap rewrites color utility classes using color mapping tables.
package remap

import (
	"maps"
	"slices"

	"bennypowers.dev/recolor/palette"
	"bennypowers.dev/recolor/parser"
)

// Mapping maps source color keys to target values.
//
// Keys take three forms, resolved with different priority by RemapToken:
//   - a complete utility: "bg-blue-500": "bg-red-500"
//   - a color name: "blue": "purple"
//   - a family-shade pair: "blue-500": "orange-400"
type Mapping map[string]string

// MappingConfig is a named mapping table.
type MappingConfig struct {
	Name     string  `json:"name" yaml:"name"`
	Mappings Mapping `json:"mappings" yaml:"mappings"`
}

// Diagnostics receives notices about dropped mapping entries.
// internal/logger satisfies it.
type Diagnostics interface {
	Warn(format string, args ...any)
}

type discard struct{}

func (discard) Warn(string, ...any) {}

func sinkOrDiscard(sink Diagnostics) Diagnostics {
	if sink == nil {
		return discard{}
	}
	return sink
}

// IsValidColorName reports whether name is a color family or special color.
func IsValidColorName(name string) bool {
	return palette.IsValidColorName(name)
}

// BuildMapping validates raw color pairs and returns only the valid ones.
// Both sides must be color names, or both must be family-shade pairs.
// Invalid pairs are reported to sink and dropped; a nil sink discards them.
func BuildMapping(raw map[string]string, sink Diagnostics) Mapping {
	sink = sinkOrDiscard(sink)
	valid := make(Mapping, len(raw))

	for _, from := range slices.Sorted(maps.Keys(raw)) {
		to := raw[from]

		switch {
		case palette.IsValidColorName(from):
			if !palette.IsValidColorName(to) {
				sink.Warn("invalid target color %q for mapping %q -> %q - skipping", to, from, to)
				continue
			}
		case isShadeKey(from):
			if !isShadeKey(to) {
				sink.Warn("invalid target shade %q for mapping %q -> %q - skipping", to, from, to)
				continue
			}
		default:
			sink.Warn("invalid source color %q - skipping mapping", from)
			continue
		}

		valid[from] = to
	}

	return valid
}

func isShadeKey(key string) bool {
	_, _, ok := palette.SplitShade(key)
	return ok
}

// BuildOverrides validates exact utility overrides such as
// "bg-white" -> "bg-slate-50". Both sides must be color utilities
// without modifiers. Invalid pairs are reported to sink and dropped.
func BuildOverrides(raw map[string]string, sink Diagnostics) Mapping {
	sink = sinkOrDiscard(sink)
	valid := make(Mapping, len(raw))

	for _, from := range slices.Sorted(maps.Keys(raw)) {
		to := raw[from]
		if !isBareUtility(from) {
			sink.Warn("invalid override source %q - skipping", from)
			continue
		}
		if !isBareUtility(to) {
			sink.Warn("invalid override target %q for %q - skipping", to, from)
			continue
		}
		valid[from] = to
	}

	return valid
}

func isBareUtility(s string) bool {
	tok, ok := parser.Classify(s)
	return ok && len(tok.Modifiers) == 0
}

// Merge combines tables left to right; later tables win per key.
func Merge(tables ...Mapping) Mapping {
	merged := make(Mapping)
	for _, m := range tables {
		maps.Copy(merged, m)
	}
	return merged
}

// Clone returns a copy of m.
func (m Mapping) Clone() Mapping {
	return maps.Clone(m)
}

// MappingStats summarizes a mapping table.
type MappingStats struct {
	TotalMappings int      `json:"totalMappings"`
	SourceColors  []string `json:"sourceColors"`
	TargetColors  []string `json:"targetColors"`
}

// Stats returns the number of entries and the sorted, de-duplicated
// source and target keys of m.
func Stats(m Mapping) MappingStats {
	sources := slices.AppendSeq(make([]string, 0, len(m)), maps.Keys(m))
	targets := slices.AppendSeq(make([]string, 0, len(m)), maps.Values(m))
	slices.Sort(sources)
	slices.Sort(targets)
	return MappingStats{
		TotalMappings: len(m),
		SourceColors:  sources,
		TargetColors:  slices.Compact(targets),
	}
}
