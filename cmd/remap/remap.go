/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package remap provides the remap command for recolor.
package remap

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/recolor/config"
	"bennypowers.dev/recolor/fs"
	"bennypowers.dev/recolor/internal/logger"
	"bennypowers.dev/recolor/load"
	remaplib "bennypowers.dev/recolor/remap"
)

// Cmd is the remap cobra command.
var Cmd = &cobra.Command{
	Use:   "remap [files...]",
	Short: "Rewrite color utility classes with a mapping",
	Long: `Rewrite Tailwind color utilities inside class and className attributes.

The mapping is chosen from, in order: --mapping, --preset (or RECOLOR_PRESET),
the mapping of a matching entry in the config's files list, and the config's
default preset. --map pairs are layered on top of whichever mapping applies.

Examples:
  # Print index.html with blue classes turned purple
  recolor remap --preset blue-to-purple index.html

  # Rewrite the configured files in place
  recolor remap -i

  # Ad hoc pairs, no preset
  recolor remap --map blue=violet --map gray-900=zinc-950 -o out.html in.html

  # Filter stdin
  cat page.html | recolor remap --mapping brand-refresh -`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("mapping", "", "Mapping id: a custom mapping from config or a preset")
	Cmd.Flags().StringArray("map", nil, "Ad hoc color pair as from=to (repeatable)")
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().BoolP("in-place", "i", false, "Overwrite input files with rewritten output")
}

func run(cmd *cobra.Command, args []string) error {
	mappingFlag, _ := cmd.Flags().GetString("mapping")
	pairs, _ := cmd.Flags().GetStringArray("map")
	output, _ := cmd.Flags().GetString("output")
	inPlace, _ := cmd.Flags().GetBool("in-place")

	if inPlace && output != "" {
		return fmt.Errorf("--in-place and --output cannot be used together")
	}

	raw, err := parsePairs(pairs)
	if err != nil {
		return err
	}

	filesystem := fs.NewOSFileSystem()
	cfg, _, err := load.Config(cmd.Context(), viper.GetString("config"), load.Options{Root: ".", FS: filesystem})
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	id := mappingFlag
	if id == "" {
		id = viper.GetString("preset")
	}
	sel := newSelector(cfg, ".", id, remaplib.BuildMapping(raw, logger.NewSink("--map")))

	if len(args) == 1 && args[0] == "-" {
		if inPlace {
			return fmt.Errorf("--in-place cannot be used with stdin")
		}
		return remapStdin(cmd.InOrStdin(), cmd.OutOrStdout(), filesystem, sel, output)
	}

	files, err := cfg.Inputs(filesystem, ".", args)
	if err != nil {
		return err
	}
	if output != "" && len(files) != 1 {
		return fmt.Errorf("--output requires exactly one input file, got %d", len(files))
	}

	failures, err := remapFiles(filesystem, files, sel, target{stdout: cmd.OutOrStdout(), output: output, inPlace: inPlace})
	if err != nil {
		return err
	}
	if failures > 0 {
		return fmt.Errorf("failed to rewrite %d file(s)", failures)
	}
	return nil
}

// parsePairs parses repeated from=to flags.
func parsePairs(pairs []string) (map[string]string, error) {
	raw := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		from, to, found := strings.Cut(pair, "=")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !found || from == "" || to == "" {
			return nil, fmt.Errorf("invalid mapping %q: expected from=to", pair)
		}
		raw[from] = to
	}
	return raw, nil
}

// selector picks the mapping for each file and caches resolved tables.
type selector struct {
	cfg     *config.Config
	rootDir string
	id      string
	adhoc   remaplib.Mapping
	cache   map[string]remaplib.Mapping
}

func newSelector(cfg *config.Config, rootDir, id string, adhoc remaplib.Mapping) *selector {
	return &selector{
		cfg:     cfg,
		rootDir: rootDir,
		id:      id,
		adhoc:   adhoc,
		cache:   make(map[string]remaplib.Mapping),
	}
}

// forPath returns the mapping for path, or for stdin when path is empty.
func (s *selector) forPath(path string) (remaplib.Mapping, error) {
	id := s.id
	if id == "" {
		id = s.cfg.MappingForPath(s.rootDir, path)
	}

	if id == "" {
		if len(s.adhoc) == 0 {
			return nil, config.ErrNoMapping
		}
		return s.adhoc, nil
	}

	if m, ok := s.cache[id]; ok {
		return m, nil
	}

	mc, err := s.cfg.Resolve(id, logger.NewSink(id))
	if err != nil {
		return nil, err
	}
	m := remaplib.Merge(mc.Mappings, s.adhoc)
	s.cache[id] = m
	logger.Debug("using mapping %q (%s) with %d entries", id, mc.Name, len(m))
	return m, nil
}

// target describes where rewritten files go.
type target struct {
	stdout  io.Writer
	output  string
	inPlace bool
}

// remapFiles rewrites each file. Unreadable or unwritable files are reported
// to stderr and counted; mapping errors stop the run.
func remapFiles(filesystem fs.FileSystem, files []string, sel *selector, to target) (int, error) {
	var failures int
	for _, file := range files {
		m, err := sel.forPath(file)
		if err != nil {
			return failures, err
		}

		data, err := filesystem.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", file, err)
			failures++
			continue
		}

		text := string(data)
		rewritten := remaplib.RewriteText(text, m)

		switch {
		case to.inPlace:
			if rewritten == text {
				continue
			}
			if err := filesystem.WriteFile(file, []byte(rewritten), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", file, err)
				failures++
				continue
			}
			logger.Info("rewrote %s", file)
		case to.output != "":
			if err := filesystem.WriteFile(to.output, []byte(rewritten), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", to.output, err)
				failures++
			}
		default:
			fmt.Fprint(to.stdout, rewritten)
		}
	}
	return failures, nil
}

func remapStdin(in io.Reader, stdout io.Writer, filesystem fs.FileSystem, sel *selector, output string) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("error reading stdin: %w", err)
	}

	m, err := sel.forPath("")
	if err != nil {
		return err
	}

	rewritten := remaplib.RewriteText(string(data), m)
	if output != "" {
		if err := filesystem.WriteFile(output, []byte(rewritten), 0644); err != nil {
			return fmt.Errorf("error writing to %s: %w", output, err)
		}
		return nil
	}

	fmt.Fprint(stdout, rewritten)
	return nil
}
