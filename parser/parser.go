/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser extracts color utility tokens from class attributes in markup.
package parser

import (
	"strings"

	"bennypowers.dev/recolor/palette"
	"bennypowers.dev/recolor/parser/common"
)

// ColorToken is one color-bearing utility class occurrence.
type ColorToken struct {
	// Original is the bare utility without modifiers (e.g., "bg-blue-500").
	Original string `json:"original"`

	// Property is the utility prefix (e.g., "bg").
	Property palette.Property `json:"property"`

	// Color is the family or special color name (e.g., "blue", "white").
	Color string `json:"color"`

	// Shade is the intensity level, empty for shadeless utilities.
	Shade string `json:"shade"`

	// Modifiers are the prefix qualifiers in source order (e.g., ["md", "hover"]).
	Modifiers []string `json:"modifiers"`

	// Full is the complete class including modifiers (e.g., "md:hover:bg-blue-500").
	Full string `json:"full"`
}

// Prefix returns the property with its trailing dash, e.g. "bg-".
func (t ColorToken) Prefix() string {
	return string(t.Property) + "-"
}

// HasShade reports whether the token carries a shade.
func (t ColorToken) HasShade() bool {
	return t.Shade != ""
}

// ScanColorTokens returns every color token found in class attributes of text,
// in source order. Duplicates are preserved; see Unique.
func ScanColorTokens(text string) []ColorToken {
	var results []ColorToken

	for _, match := range common.ClassAttributePattern.FindAllStringSubmatch(text, -1) {
		for _, candidate := range SplitClasses(match[1]) {
			if tok, ok := Classify(candidate); ok {
				results = append(results, tok)
			}
		}
	}

	return results
}

// SplitClasses splits a class attribute body on whitespace, dropping empty entries.
func SplitClasses(body string) []string {
	fields := common.WhitespacePattern.Split(body, -1)
	classes := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			classes = append(classes, f)
		}
	}
	return classes
}

// Classify parses a single class such as "hover:bg-blue-500".
// Returns false when the class is not a recognized color utility.
func Classify(candidate string) (ColorToken, bool) {
	if strings.TrimSpace(candidate) == "" {
		return ColorToken{}, false
	}

	parts := strings.Split(candidate, common.ModifierSeparator)
	base := parts[len(parts)-1]

	property, color, shade, ok := decompose(base)
	if !ok {
		return ColorToken{}, false
	}

	modifiers := make([]string, len(parts)-1)
	copy(modifiers, parts[:len(parts)-1])

	return ColorToken{
		Original:  base,
		Property:  property,
		Color:     color,
		Shade:     shade,
		Modifiers: modifiers,
		Full:      candidate,
	}, true
}

// decompose matches a bare utility against property-family-shade,
// property-family and property-special, in that order.
func decompose(base string) (palette.Property, string, string, bool) {
	for _, property := range palette.Properties {
		rest, found := strings.CutPrefix(base, string(property)+"-")
		if !found {
			continue
		}
		if family, shade, ok := palette.SplitShade(rest); ok {
			return property, family, shade, true
		}
		if palette.IsValidColorName(rest) {
			return property, rest, "", true
		}
	}
	return "", "", "", false
}

// Unique drops repeated tokens, keyed by Full, keeping the first occurrence.
func Unique(tokens []ColorToken) []ColorToken {
	seen := make(map[string]bool, len(tokens))
	result := make([]ColorToken, 0, len(tokens))
	for _, tok := range tokens {
		if seen[tok.Full] {
			continue
		}
		seen[tok.Full] = true
		result = append(result, tok)
	}
	return result
}
