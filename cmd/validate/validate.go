/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for recolor.
package validate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/recolor/config"
	"bennypowers.dev/recolor/fs"
	"bennypowers.dev/recolor/load"
	"bennypowers.dev/recolor/resolver"
)

// ErrNoConfig indicates validate found no config file to check.
var ErrNoConfig = errors.New("no config file found")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the recolor config file",
	Long: `Validate .config/recolor.{yaml,yml,json,toml}: build every custom mapping, report
dropped pairs, over-long names and duplicate sources, and check that the
default preset and per-file mappings exist.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

	return validate(cmd.Context(), fs.NewOSFileSystem(), viper.GetString("config"), ".", cmd.OutOrStdout(), cmd.ErrOrStderr(), quiet)
}

func validate(ctx context.Context, filesystem fs.FileSystem, configPath, rootDir string, stdout, stderr io.Writer, quiet bool) error {
	cfg, path, err := load.Config(ctx, configPath, load.Options{Root: rootDir, FS: filesystem})
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if path == "" {
		return ErrNoConfig
	}

	if !quiet {
		fmt.Fprintf(stdout, "Validating %s...\n", path)
	}

	problems := cfg.Validate(path)
	for _, p := range problems {
		fmt.Fprintln(stderr, p.Error())
	}

	for i, spec := range cfg.Files {
		matches, err := config.ExpandPath(filesystem, rootDir, spec.Path)
		if err != nil {
			fmt.Fprintf(stderr, "%s: files[%d]: %v\n", path, i, err)
			continue
		}
		if len(matches) == 0 && !quiet {
			fmt.Fprintf(stderr, "%s: files[%d]: pattern %q matches no files\n", path, i, spec.Path)
		}
	}

	if !quiet {
		for _, note := range chainNotes(cfg) {
			fmt.Fprintf(stderr, "%s: %s\n", path, note)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("validation failed: %d problem(s)", len(problems))
	}

	if !quiet {
		fmt.Fprintf(stdout, "  %d custom mapping(s), %d file pattern(s)\n", len(cfg.Mappings), len(cfg.Files))
		fmt.Fprintln(stdout, "Config valid.")
	}
	return nil
}

// chainNotes describes custom mappings whose entries feed into each other,
// so that running remap twice gives a different result than running it once.
func chainNotes(cfg *config.Config) []string {
	var notes []string
	for _, id := range cfg.MappingIDs() {
		graph := resolver.BuildDependencyGraph(cfg.Mappings[id].Build(id, nil).Mappings)
		if graph.IsIdempotent() {
			continue
		}
		if graph.HasCycle() {
			notes = append(notes, fmt.Sprintf("mappings.%s: entries form a cycle: %s", id, strings.Join(graph.FindCycle(), " → ")))
		}
		for _, chain := range graph.Chains() {
			notes = append(notes, fmt.Sprintf("mappings.%s: not idempotent: %s", id, strings.Join(chain, " → ")))
		}
	}
	return notes
}
