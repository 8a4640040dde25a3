/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package remap

import (
	"strings"

	"bennypowers.dev/recolor/parser"
	"bennypowers.dev/recolor/parser/common"
)

// Rule names reported by Resolve.
const (
	RuleExact        = "exact"
	RuleUnrecognized = "unrecognized"
	RuleFamily       = "family"
	RuleShade        = "shade"
	RuleUnchanged    = "unchanged"
)

// candidate carries one utility through the resolution ladder.
type candidate struct {
	utility string
	mapping Mapping
	token   parser.ColorToken
}

// rule is one rung of the ladder. apply reports whether the rung decided
// the result.
type rule struct {
	name  string
	apply func(c *candidate) (string, bool)
}

// ladder is evaluated top to bottom and the first deciding rule wins.
// A family mapping always shadows a same-color shade mapping: "blue"
// is consulted before "blue-500".
var ladder = []rule{
	{RuleExact, exactMatch},
	{RuleUnrecognized, requireColorUtility},
	{RuleFamily, familyMatch},
	{RuleShade, shadeMatch},
}

func exactMatch(c *candidate) (string, bool) {
	if target := c.mapping[c.utility]; target != "" {
		return target, true
	}
	return "", false
}

// requireColorUtility decides "unchanged" for anything that is not a color
// utility, and otherwise records the decomposed token for later rungs.
func requireColorUtility(c *candidate) (string, bool) {
	tok, ok := parser.Classify(c.utility)
	if !ok {
		return c.utility, true
	}
	c.token = tok
	return "", false
}

// prefix returns the text kept in front of the new color: any modifiers
// followed by the property, e.g. "hover:bg-".
func (c *candidate) prefix() string {
	if len(c.token.Modifiers) == 0 {
		return c.token.Prefix()
	}
	return strings.Join(c.token.Modifiers, common.ModifierSeparator) + common.ModifierSeparator + c.token.Prefix()
}

func familyMatch(c *candidate) (string, bool) {
	target := c.mapping[c.token.Color]
	if target == "" || !IsValidColorName(target) {
		return "", false
	}
	if c.token.HasShade() {
		return c.prefix() + target + "-" + c.token.Shade, true
	}
	return c.prefix() + target, true
}

func shadeMatch(c *candidate) (string, bool) {
	if !c.token.HasShade() {
		return "", false
	}
	if target := c.mapping[c.token.Color+"-"+c.token.Shade]; target != "" {
		return c.prefix() + target, true
	}
	return "", false
}

// Resolve rewrites a utility and reports which rule decided the result.
// Modifiers in front of the utility are kept in order.
func Resolve(utility string, m Mapping) (result string, ruleName string) {
	c := &candidate{utility: utility, mapping: m}
	for _, r := range ladder {
		if out, ok := r.apply(c); ok {
			return out, r.name
		}
	}
	return utility, RuleUnchanged
}

// RemapToken rewrites a bare utility such as "bg-blue-500".
// Unknown utilities and unmapped colors are returned unchanged.
func RemapToken(utility string, m Mapping) string {
	result, _ := Resolve(utility, m)
	return result
}

// RemapFullToken rewrites the base utility of a class and keeps its
// modifiers: "hover:md:bg-blue-500" -> "hover:md:bg-purple-500".
func RemapFullToken(full string, m Mapping) string {
	parts := strings.Split(full, common.ModifierSeparator)
	last := len(parts) - 1
	parts[last] = RemapToken(parts[last], m)
	return strings.Join(parts, common.ModifierSeparator)
}

// RemapClassString rewrites every class in a whitespace-separated class list.
// Whitespace is normalized to single spaces and empty entries are dropped.
//
// The result is not idempotent in general: with {blue: purple, purple: pink}
// a second pass turns bg-purple-500 into bg-pink-500. It is idempotent when
// no target of m is also a source.
func RemapClassString(classString string, m Mapping) string {
	classes := parser.SplitClasses(classString)
	for i, class := range classes {
		classes[i] = RemapFullToken(class, m)
	}
	return strings.Join(classes, " ")
}

// RewriteText rewrites the body of every class attribute in text and
// copies everything else verbatim.
func RewriteText(text string, m Mapping) string {
	matches := common.ClassAttributePattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))

	last := 0
	for _, match := range matches {
		bodyStart, bodyEnd := match[2], match[3]
		sb.WriteString(text[last:bodyStart])
		sb.WriteString(RemapClassString(text[bodyStart:bodyEnd], m))
		last = bodyEnd
	}
	sb.WriteString(text[last:])

	return sb.String()
}
