/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package search provides the search command for recolor.
package search

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/recolor/cmd/render"
	"bennypowers.dev/recolor/fs"
	"bennypowers.dev/recolor/load"
	"bennypowers.dev/recolor/parser"
)

// Cmd is the search cobra command.
var Cmd = &cobra.Command{
	Use:   "search <query> [files...]",
	Short: "Find color classes by class name or color",
	Long: `Find color utility classes whose class, color or color-shade matches a query.

Matching is a case-insensitive substring test unless --regex is given.

Examples:
  # Where is blue still used?
  recolor search --color blue

  # Every 500-level background or text class
  recolor search --regex '^(bg|text)-\w+-500$' 'src/**/*.html'`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("color", false, "Match the color name only")
	Cmd.Flags().Bool("regex", false, "Query is a regex")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, classes")
}

// query matches tokens against a substring or pattern.
type query struct {
	text      string
	pattern   *regexp.Regexp
	colorOnly bool
}

func run(cmd *cobra.Command, args []string) error {
	colorOnly, _ := cmd.Flags().GetBool("color")
	useRegex, _ := cmd.Flags().GetBool("regex")
	format, _ := cmd.Flags().GetString("format")

	q := query{text: args[0], colorOnly: colorOnly}
	if useRegex {
		pattern, err := regexp.Compile(args[0])
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
		q.pattern = pattern
	}

	filesystem := fs.NewOSFileSystem()
	cfg, _, err := load.Config(cmd.Context(), viper.GetString("config"), load.Options{Root: ".", FS: filesystem})
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	files, err := cfg.Inputs(filesystem, ".", args[1:])
	if err != nil {
		return err
	}

	var rows []render.Row
	var failures int
	for _, file := range files {
		data, err := filesystem.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", file, err)
			failures++
			continue
		}
		rows = append(rows, render.ComputeRows(file, q.filter(parser.ScanColorTokens(string(data))), nil)...)
	}

	if err := output(cmd.OutOrStdout(), format, rows); err != nil {
		return err
	}
	if failures > 0 {
		return fmt.Errorf("failed to search %d file(s)", failures)
	}
	return nil
}

func (q query) filter(tokens []parser.ColorToken) []parser.ColorToken {
	matched := make([]parser.ColorToken, 0, len(tokens))
	for _, tok := range tokens {
		if q.matches(tok) {
			matched = append(matched, tok)
		}
	}
	return matched
}

func (q query) matches(tok parser.ColorToken) bool {
	if q.colorOnly {
		return q.match(tok.Color)
	}
	if q.match(tok.Full) || q.match(tok.Color) {
		return true
	}
	return tok.HasShade() && q.match(tok.Color+"-"+tok.Shade)
}

func (q query) match(s string) bool {
	if q.pattern != nil {
		return q.pattern.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(q.text))
}

func output(w io.Writer, format string, rows []render.Row) error {
	switch format {
	case "table":
		return render.Table(w, rows)
	case "json":
		if rows == nil {
			rows = []render.Row{}
		}
		return render.JSON(w, rows)
	case "classes":
		classes := make([]string, 0, len(rows))
		for _, r := range rows {
			classes = append(classes, r.Class)
		}
		slices.Sort(classes)
		for _, c := range slices.Compact(classes) {
			fmt.Fprintln(w, c)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use table, json or classes", format)
	}
}
