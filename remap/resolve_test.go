/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package remap

import (
	"testing"

	"bennypowers.dev/recolor/palette"
)

var simpleMapping = Mapping{"blue": "purple", "red": "green"}

func TestRemapToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		mapping  Mapping
		expected string
	}{
		{"family mapping keeps shade", "bg-blue-500", simpleMapping, "bg-purple-500"},
		{"family mapping on text", "text-red-300", simpleMapping, "text-green-300"},
		{"unknown color passes through", "bg-invalid-500", simpleMapping, "bg-invalid-500"},
		{"unmapped color passes through", "text-yellow-400", simpleMapping, "text-yellow-400"},
		{"non-color utility passes through", "flex", simpleMapping, "flex"},
		{"special to special", "bg-white", Mapping{"white": "black"}, "bg-black"},
		{"transparent to white", "border-transparent", Mapping{"transparent": "white"}, "border-white"},
		{"shadeless family", "fill-blue", simpleMapping, "fill-purple"},
		{
			"exact override beats family",
			"bg-blue-500",
			Mapping{"bg-blue-500": "bg-red-500", "blue": "purple"},
			"bg-red-500",
		},
		{
			"family suppresses shade mapping",
			"bg-blue-500",
			Mapping{"blue": "purple", "blue-500": "orange-500"},
			"bg-purple-500",
		},
		{
			"shade mapping without family key",
			"bg-blue-500",
			Mapping{"blue-500": "orange-400"},
			"bg-orange-400",
		},
		{
			"shade mapping misses other shades",
			"bg-blue-600",
			Mapping{"blue-500": "orange-400"},
			"bg-blue-600",
		},
		{
			"invalid family target falls through to shade",
			"bg-blue-500",
			Mapping{"blue": "brand", "blue-500": "indigo-600"},
			"bg-indigo-600",
		},
		{
			"invalid family target without shade key is unchanged",
			"bg-blue-500",
			Mapping{"blue": "brand"},
			"bg-blue-500",
		},
		{
			"empty exact value is ignored",
			"bg-blue-500",
			Mapping{"bg-blue-500": "", "blue": "sky"},
			"bg-sky-500",
		},
		{"gradient prefix", "via-blue-200", simpleMapping, "via-purple-200"},
		{"modifier kept", "hover:bg-blue-500", simpleMapping, "hover:bg-purple-500"},
		{"modifier order kept", "md:hover:text-red-300", simpleMapping, "md:hover:text-green-300"},
		{
			"modifier kept on shade mapping",
			"dark:bg-blue-500",
			Mapping{"blue-500": "orange-400"},
			"dark:bg-orange-400",
		},
		{"modifier on unmapped color", "focus:ring-yellow-400", simpleMapping, "focus:ring-yellow-400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemapToken(tt.input, tt.mapping); got != tt.expected {
				t.Errorf("RemapToken(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestResolve_RuleNames(t *testing.T) {
	m := Mapping{"bg-white": "bg-slate-50", "blue": "purple", "red-500": "rose-600"}

	tests := []struct {
		input    string
		expected string
		rule     string
	}{
		{"bg-white", "bg-slate-50", RuleExact},
		{"shadow-lg", "shadow-lg", RuleUnrecognized},
		{"text-blue-700", "text-purple-700", RuleFamily},
		{"ring-red-500", "ring-rose-600", RuleShade},
		{"ring-red-400", "ring-red-400", RuleUnchanged},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, rule := Resolve(tt.input, m)
			if got != tt.expected || rule != tt.rule {
				t.Errorf("Resolve(%q) = (%q, %q), want (%q, %q)", tt.input, got, rule, tt.expected, tt.rule)
			}
		})
	}
}

func TestRemapToken_IdentityOnEmptyMapping(t *testing.T) {
	for _, p := range palette.Properties {
		for _, f := range palette.Families {
			for _, s := range palette.Shades {
				utility := string(p) + "-" + string(f) + "-" + string(s)
				if got := RemapToken(utility, Mapping{}); got != utility {
					t.Fatalf("RemapToken(%q, {}) = %q", utility, got)
				}
			}
		}
		for _, s := range palette.Specials {
			utility := string(p) + "-" + string(s)
			if got := RemapToken(utility, nil); got != utility {
				t.Fatalf("RemapToken(%q, nil) = %q", utility, got)
			}
		}
	}
}

func TestRemapToken_UnclassifiedUnchanged(t *testing.T) {
	m := Mapping{"blue": "purple", "blue-500": "red-500", "shadow": "ring", "x": "y"}
	for _, utility := range []string{"shadow-blue-500", "bg-blue-550", "p-4", "", "bg-blue-500/50"} {
		if got := RemapToken(utility, m); got != utility {
			t.Errorf("RemapToken(%q) = %q, want unchanged", utility, got)
		}
	}
}

func TestRemapFullToken(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hover:md:bg-blue-500", "hover:md:bg-purple-500"},
		{"dark:focus:text-red-400", "dark:focus:text-green-400"},
		{"bg-blue-500", "bg-purple-500"},
		{"md:flex", "md:flex"},
		{"group-hover:border-blue-50", "group-hover:border-purple-50"},
		{"::bg-blue-500", "::bg-purple-500"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := RemapFullToken(tt.input, simpleMapping); got != tt.expected {
				t.Errorf("RemapFullToken(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRemapClassString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"preserves modifiers", "hover:md:bg-blue-500 focus:text-red-400", "hover:md:bg-purple-500 focus:text-green-400"},
		{"empty", "", ""},
		{"whitespace only", "  \t ", ""},
		{"normalizes whitespace", "  bg-blue-500   text-red-400  ", "bg-purple-500 text-green-400"},
		{"non-color tokens untouched", "flex p-4 bg-blue-500", "flex p-4 bg-purple-500"},
		{"newlines", "bg-blue-500\n\ttext-red-400", "bg-purple-500 text-green-400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemapClassString(tt.input, simpleMapping); got != tt.expected {
				t.Errorf("RemapClassString(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRemapClassString_Idempotence(t *testing.T) {
	input := "bg-blue-500 text-purple-300 border-gray-200"

	disjoint := Mapping{"blue": "indigo", "gray": "slate"}
	once := RemapClassString(input, disjoint)
	if twice := RemapClassString(once, disjoint); twice != once {
		t.Errorf("disjoint mapping not idempotent: %q then %q", once, twice)
	}

	chained := Mapping{"blue": "purple", "purple": "pink"}
	once = RemapClassString(input, chained)
	if once != "bg-purple-500 text-pink-300 border-gray-200" {
		t.Errorf("first pass = %q", once)
	}
	if twice := RemapClassString(once, chained); twice != "bg-pink-500 text-pink-300 border-gray-200" {
		t.Errorf("second pass = %q", twice)
	}
}

func TestRewriteText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"jsx",
			`<div className="bg-blue-500 text-white hover:bg-blue-600">Blue text</div>`,
			`<div className="bg-purple-500 text-white hover:bg-purple-600">Blue text</div>`,
		},
		{
			"content outside attributes untouched",
			`<p class="text-red-400">bg-blue-500 stays</p>`,
			`<p class="text-green-400">bg-blue-500 stays</p>`,
		},
		{
			"quote styles kept",
			"<a class='bg-blue-100'></a><b className=`ring-red-300`></b>",
			"<a class='bg-purple-100'></a><b className=`ring-green-300`></b>",
		},
		{
			"attribute whitespace normalized",
			`<i class="  bg-blue-500   p-2 ">`,
			`<i class="bg-purple-500 p-2">`,
		},
		{"no attributes", "plain text", "plain text"},
		{"unterminated", `<div class="bg-blue-500`, `<div class="bg-blue-500`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RewriteText(tt.input, simpleMapping); got != tt.expected {
				t.Errorf("RewriteText() =\n%s\nwant\n%s", got, tt.expected)
			}
		})
	}
}
