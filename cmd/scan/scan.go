/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scan provides the scan command for recolor.
package scan

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync/atomic"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"bennypowers.dev/recolor/cmd/render"
	"bennypowers.dev/recolor/fs"
	"bennypowers.dev/recolor/internal/logger"
	"bennypowers.dev/recolor/load"
	"bennypowers.dev/recolor/palette"
	"bennypowers.dev/recolor/parser"
	"bennypowers.dev/recolor/remap"
)

// Cmd is the scan cobra command.
var Cmd = &cobra.Command{
	Use:   "scan [files...]",
	Short: "List color utility classes in markup files",
	Long: `List the Tailwind color utilities found in class and className attributes.

Files may be paths or globs; with no arguments the files from config are
scanned, and "-" reads from stdin.

Examples:
  # Every color class in the project's configured files
  recolor scan

  # Distinct background classes as JSON
  recolor scan --unique --property bg --format json 'src/**/*.tsx'

  # Preview how the blue-to-purple preset would rewrite each class
  recolor scan --preview --preset blue-to-purple index.html`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("unique", false, "Show each class once per file")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, markdown")
	Cmd.Flags().String("property", "", "Only show one property, e.g. bg, text, border")
	Cmd.Flags().Bool("preview", false, "Show the class each token would be remapped to")
}

// options controls which tokens are reported.
type options struct {
	unique   bool
	property palette.Property
	mapping  remap.Mapping
}

func run(cmd *cobra.Command, args []string) error {
	unique, _ := cmd.Flags().GetBool("unique")
	format, _ := cmd.Flags().GetString("format")
	propertyFlag, _ := cmd.Flags().GetString("property")
	preview, _ := cmd.Flags().GetBool("preview")

	output, err := formatter(format)
	if err != nil {
		return err
	}

	filesystem := fs.NewOSFileSystem()
	cfg, _, err := load.Config(cmd.Context(), viper.GetString("config"), load.Options{Root: ".", FS: filesystem})
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	opts := options{unique: unique}
	if propertyFlag != "" {
		p, ok := palette.ParseProperty(propertyFlag)
		if !ok {
			return fmt.Errorf("unknown property %q", propertyFlag)
		}
		opts.property = p
	}

	if preview {
		id := viper.GetString("preset")
		if id == "" {
			id = cfg.Preset
		}
		mc, err := cfg.Resolve(id, logger.NewSink(id))
		if err != nil {
			return err
		}
		opts.mapping = mc.Mappings
	}

	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		return output(cmd.OutOrStdout(), scanText("", string(data), opts))
	}

	files, err := cfg.Inputs(filesystem, ".", args)
	if err != nil {
		return err
	}

	rows, failures := scanFiles(filesystem, files, opts)
	if err := output(cmd.OutOrStdout(), rows); err != nil {
		return err
	}
	if failures > 0 {
		return fmt.Errorf("failed to scan %d file(s)", failures)
	}
	return nil
}

func formatter(format string) (func(io.Writer, []render.Row) error, error) {
	switch format {
	case "table":
		return render.Table, nil
	case "markdown", "md":
		return render.Markdown, nil
	case "json":
		return func(w io.Writer, rows []render.Row) error {
			return render.JSON(w, rows)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q: use table, json or markdown", format)
	}
}

// scanFiles scans files concurrently, reporting unreadable files to
// stderr. Rows keep the order of files.
func scanFiles(filesystem fs.FileSystem, files []string, opts options) ([]render.Row, int) {
	perFile := make([][]render.Row, len(files))
	var failures atomic.Int32

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		g.Go(func() error {
			data, err := filesystem.ReadFile(file)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", file, err)
				failures.Add(1)
				return nil
			}
			perFile[i] = scanText(file, string(data), opts)
			return nil
		})
	}
	_ = g.Wait()

	rows := make([]render.Row, 0)
	for _, r := range perFile {
		rows = append(rows, r...)
	}
	return rows, int(failures.Load())
}

func scanText(file, text string, opts options) []render.Row {
	tokens := parser.ScanColorTokens(text)
	if opts.unique {
		tokens = parser.Unique(tokens)
	}
	if opts.property != "" {
		filtered := tokens[:0]
		for _, tok := range tokens {
			if tok.Property == opts.property {
				filtered = append(filtered, tok)
			}
		}
		tokens = filtered
	}
	return render.ComputeRows(file, tokens, opts.mapping)
}
