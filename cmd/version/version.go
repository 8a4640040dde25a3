/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for recolor.
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/recolor/cmd/render"
	"bennypowers.dev/recolor/internal/version"
)

// Cmd is the version cobra command that prints version and build information.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for recolor.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

func run(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("error reading format flag: %w", err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return render.JSON(out, version.Info())
	case "text":
		info := version.Info()
		fmt.Fprintf(out, "recolor %s\n", info.Version)
		if info.GitCommit != "unknown" {
			fmt.Fprintf(out, "  commit: %s\n  built:  %s\n", info.GitCommit, info.BuildTime)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use text or json", format)
	}
}
