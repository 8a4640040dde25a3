/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package preset provides the built-in named color mappings.
package preset

import (
	"maps"
	"slices"

	"bennypowers.dev/recolor/remap"
)

var presets = map[string]remap.MappingConfig{
	"blue-to-purple": {
		Name:     "Blue to Purple",
		Mappings: remap.BuildMapping(map[string]string{"blue": "purple"}, nil),
	},
	"red-to-green": {
		Name:     "Red to Green",
		Mappings: remap.BuildMapping(map[string]string{"red": "green"}, nil),
	},
	"gray-to-slate": {
		Name:     "Gray to Slate",
		Mappings: remap.BuildMapping(map[string]string{"gray": "slate"}, nil),
	},
	"warm-theme": {
		Name: "Cool to Warm Theme",
		Mappings: remap.BuildMapping(map[string]string{
			"blue": "orange",
			"teal": "amber",
			"gray": "stone",
		}, nil),
	},
	"nature-theme": {
		Name: "Tech to Nature",
		Mappings: remap.BuildMapping(map[string]string{
			"blue":   "green",
			"purple": "emerald",
			"gray":   "stone",
			"red":    "amber",
		}, nil),
	},
	"minimal-theme": {
		Name: "Color to Grayscale",
		Mappings: remap.BuildMapping(map[string]string{
			"red":    "gray",
			"blue":   "slate",
			"green":  "zinc",
			"purple": "neutral",
			"orange": "stone",
		}, nil),
	},
}

// IDs returns the preset identifiers in sorted order.
func IDs() []string {
	return slices.Sorted(maps.Keys(presets))
}

// Get returns a copy of the preset with the given id.
func Get(id string) (remap.MappingConfig, bool) {
	p, ok := presets[id]
	if !ok {
		return remap.MappingConfig{}, false
	}
	return remap.MappingConfig{Name: p.Name, Mappings: p.Mappings.Clone()}, true
}

// All returns copies of every preset keyed by id.
func All() map[string]remap.MappingConfig {
	all := make(map[string]remap.MappingConfig, len(presets))
	for id := range presets {
		all[id], _ = Get(id)
	}
	return all
}
