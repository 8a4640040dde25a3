/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/recolor/parser"
	"bennypowers.dev/recolor/remap"
)

// Row holds computed display values for a single color token.
type Row struct {
	File     string `json:"file,omitempty"`   // Source file, empty for stdin
	Class    string `json:"class"`            // Full class including modifiers
	Property string `json:"property"`         // Human-readable property name
	Color    string `json:"color"`            // Family or special color
	Shade    string `json:"shade"`            // Shade or "-"
	Target   string `json:"target,omitempty"` // Remapped class, when previewing a mapping
	Rule     string `json:"rule,omitempty"`   // Resolution rule that produced Target
}

// PresetRow holds display values for one mapping table.
type PresetRow struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Mappings int      `json:"mappings"`
	Sources  []string `json:"sources"`
	Targets  []string `json:"targets"`
}

// ComputeRows transforms tokens into display rows. When m is non-nil each
// row also carries the remapped class and the rule that decided it.
func ComputeRows(file string, tokens []parser.ColorToken, m remap.Mapping) []Row {
	rows := make([]Row, 0, len(tokens))
	for _, tok := range tokens {
		row := Row{
			File:     file,
			Class:    tok.Full,
			Property: tok.Property.Name(),
			Color:    tok.Color,
			Shade:    tok.Shade,
		}
		if row.Shade == "" {
			row.Shade = "-"
		}
		if m != nil {
			row.Target = remap.RemapFullToken(tok.Full, m)
			_, row.Rule = remap.Resolve(tok.Original, m)
		}
		rows = append(rows, row)
	}
	return rows
}

// ComputePresetRows builds rows for mapping tables in the order of ids.
func ComputePresetRows(ids []string, tables map[string]remap.MappingConfig) []PresetRow {
	rows := make([]PresetRow, 0, len(ids))
	for _, id := range ids {
		mc, ok := tables[id]
		if !ok {
			continue
		}
		stats := remap.Stats(mc.Mappings)
		rows = append(rows, PresetRow{
			ID:       id,
			Name:     mc.Name,
			Mappings: stats.TotalMappings,
			Sources:  stats.SourceColors,
			Targets:  stats.TargetColors,
		})
	}
	return rows
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (class, prop, target int) {
	class, prop, target = 5, 8, 6 // minimums for headers
	for _, r := range rows {
		class = max(class, len(r.Class))
		prop = max(prop, len(r.Property))
		target = max(target, len(r.Target))
	}
	return
}

func mapped(rows []Row) bool {
	for _, r := range rows {
		if r.Target != "" {
			return true
		}
	}
	return false
}

// Table renders rows as an aligned table. A "file:" heading is written
// whenever the source file changes.
func Table(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	classW, propW, targetW := ColumnWidths(rows)
	withTarget := mapped(rows)

	file := ""
	for i, r := range rows {
		if r.File != "" && (i == 0 || r.File != file) {
			if i > 0 {
				fmt.Fprintln(w)
			}
			file = r.File
			fmt.Fprintf(w, "%s:\n", file)
		}
		if withTarget {
			fmt.Fprintf(w, "%-*s  → %-*s  %s\n", classW, r.Class, targetW, r.Target, r.Rule)
			continue
		}
		fmt.Fprintf(w, "%-*s  %-*s  %s %s\n", classW, r.Class, propW, r.Property, r.Color, r.Shade)
	}
	return nil
}

// JSON renders v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Markdown renders rows as markdown tables grouped by property.
func Markdown(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	withTarget := mapped(rows)

	// Group rows by property, preserving order of first occurrence
	order := make([]string, 0)
	byProp := make(map[string][]Row)
	for _, r := range rows {
		if _, exists := byProp[r.Property]; !exists {
			order = append(order, r.Property)
		}
		byProp[r.Property] = append(byProp[r.Property], r)
	}

	first := true
	for _, prop := range order {
		group := byProp[prop]
		if !first {
			fmt.Fprintln(w)
		}
		first = false

		fmt.Fprintf(w, "## %s\n\n", toTitleCase(prop))

		if withTarget {
			classW, targetW, ruleW := 5, 6, 4
			for _, r := range group {
				classW = max(classW, len(r.Class))
				targetW = max(targetW, len(r.Target))
				ruleW = max(ruleW, len(r.Rule))
			}
			fmt.Fprintf(w, "| %-*s | %-*s | %-*s |\n", classW, "Class", targetW, "Target", ruleW, "Rule")
			fmt.Fprintf(w, "|-%s-|-%s-|-%s-|\n", strings.Repeat("-", classW), strings.Repeat("-", targetW), strings.Repeat("-", ruleW))
			for _, r := range group {
				fmt.Fprintf(w, "| %-*s | %-*s | %-*s |\n", classW, r.Class, targetW, r.Target, ruleW, r.Rule)
			}
			continue
		}

		classW, colorW, shadeW := 5, 5, 5
		for _, r := range group {
			classW = max(classW, len(r.Class))
			colorW = max(colorW, len(r.Color))
			shadeW = max(shadeW, len(r.Shade))
		}
		fmt.Fprintf(w, "| %-*s | %-*s | %-*s |\n", classW, "Class", colorW, "Color", shadeW, "Shade")
		fmt.Fprintf(w, "|-%s-|-%s-|-%s-|\n", strings.Repeat("-", classW), strings.Repeat("-", colorW), strings.Repeat("-", shadeW))
		for _, r := range group {
			fmt.Fprintf(w, "| %-*s | %-*s | %-*s |\n", classW, r.Class, colorW, r.Color, shadeW, r.Shade)
		}
	}
	return nil
}

// PresetTable renders mapping tables one per line with their source and
// target colors.
func PresetTable(w io.Writer, rows []PresetRow) error {
	idW, nameW := 2, 4
	for _, r := range rows {
		idW = max(idW, len(r.ID))
		nameW = max(nameW, len(r.Name))
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-*s  %-*s  %d: %s → %s\n",
			idW, r.ID, nameW, r.Name, r.Mappings,
			strings.Join(r.Sources, ", "), strings.Join(r.Targets, ", "))
	}
	return nil
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}
