/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package palette defines the closed sets of utility properties, color
// families, special colors and shades recognized by recolor.
package palette

import "strings"

// Property is the prefix of a color utility, e.g. "bg" in "bg-blue-500".
type Property string

const (
	Background   Property = "bg"
	Text         Property = "text"
	Border       Property = "border"
	Ring         Property = "ring"
	Outline      Property = "outline"
	GradientFrom Property = "from"
	GradientTo   Property = "to"
	GradientVia  Property = "via"
	Accent       Property = "accent"
	Caret        Property = "caret"
	Fill         Property = "fill"
	Stroke       Property = "stroke"
)

// Properties lists every color property in classification order.
var Properties = []Property{
	Background,
	Text,
	Border,
	Ring,
	Outline,
	GradientFrom,
	GradientTo,
	GradientVia,
	Accent,
	Caret,
	Fill,
	Stroke,
}

// String returns the utility prefix.
func (p Property) String() string {
	return string(p)
}

// Name returns a human-readable name for the property.
func (p Property) Name() string {
	switch p {
	case Background:
		return "background"
	case GradientFrom:
		return "gradient-from"
	case GradientTo:
		return "gradient-to"
	case GradientVia:
		return "gradient-via"
	default:
		return string(p)
	}
}

// ParseProperty returns the property for a utility prefix.
func ParseProperty(s string) (Property, bool) {
	for _, p := range Properties {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// Family is a named hue group, independent of intensity.
type Family string

const (
	Slate   Family = "slate"
	Gray    Family = "gray"
	Zinc    Family = "zinc"
	Neutral Family = "neutral"
	Stone   Family = "stone"
	Red     Family = "red"
	Orange  Family = "orange"
	Amber   Family = "amber"
	Yellow  Family = "yellow"
	Lime    Family = "lime"
	Green   Family = "green"
	Emerald Family = "emerald"
	Teal    Family = "teal"
	Cyan    Family = "cyan"
	Sky     Family = "sky"
	Blue    Family = "blue"
	Indigo  Family = "indigo"
	Violet  Family = "violet"
	Purple  Family = "purple"
	Fuchsia Family = "fuchsia"
	Pink    Family = "pink"
	Rose    Family = "rose"
)

// Families lists every shaded color family.
var Families = []Family{
	Slate, Gray, Zinc, Neutral, Stone,
	Red, Orange, Amber, Yellow, Lime,
	Green, Emerald, Teal, Cyan, Sky,
	Blue, Indigo, Violet, Purple, Fuchsia,
	Pink, Rose,
}

// Special is a color name that never carries a shade.
type Special string

const (
	White       Special = "white"
	Black       Special = "black"
	Transparent Special = "transparent"
	Current     Special = "current"
	Inherit     Special = "inherit"
)

// Specials lists every shadeless color name.
var Specials = []Special{White, Black, Transparent, Current, Inherit}

// Shade is a numeric intensity level within a family.
type Shade string

// Shades lists the eleven intensity levels from lightest to darkest.
var Shades = []Shade{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

var (
	familySet  = make(map[string]bool, len(Families))
	specialSet = make(map[string]bool, len(Specials))
	shadeSet   = make(map[string]bool, len(Shades))
)

func init() {
	for _, f := range Families {
		familySet[string(f)] = true
	}
	for _, s := range Specials {
		specialSet[string(s)] = true
	}
	for _, s := range Shades {
		shadeSet[string(s)] = true
	}
}

// IsFamily reports whether name is a shaded color family.
func IsFamily(name string) bool {
	return familySet[name]
}

// IsSpecial reports whether name is a shadeless special color.
func IsSpecial(name string) bool {
	return specialSet[name]
}

// IsShade reports whether s is one of the eleven shade levels.
func IsShade(s string) bool {
	return shadeSet[s]
}

// IsValidColorName reports whether name is a color family or special color.
func IsValidColorName(name string) bool {
	return IsFamily(name) || IsSpecial(name)
}

// SplitShade splits a "family-shade" key such as "blue-500".
// ok is false unless the family and shade are both recognized.
func SplitShade(key string) (family string, shade string, ok bool) {
	i := strings.LastIndexByte(key, '-')
	if i <= 0 {
		return "", "", false
	}
	family, shade = key[:i], key[i+1:]
	if !IsFamily(family) || !IsShade(shade) {
		return "", "", false
	}
	return family, shade, true
}

// IsValidColorKey reports whether key is a color name or a family-shade pair.
func IsValidColorKey(key string) bool {
	if IsValidColorName(key) {
		return true
	}
	_, _, ok := SplitShade(key)
	return ok
}
