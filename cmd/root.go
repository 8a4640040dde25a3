/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for recolor.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/recolor/cmd/mcp"
	"bennypowers.dev/recolor/cmd/presets"
	"bennypowers.dev/recolor/cmd/remap"
	"bennypowers.dev/recolor/cmd/scan"
	"bennypowers.dev/recolor/cmd/search"
	"bennypowers.dev/recolor/cmd/validate"
	"bennypowers.dev/recolor/cmd/version"
	"bennypowers.dev/recolor/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "recolor",
	Short: "Find and remap Tailwind color utility classes",
	Long: `recolor scans class and className attributes in markup for Tailwind color
utilities and rewrites them with a color mapping: a built-in preset, a custom
mapping from .config/recolor.yaml, or ad hoc from=to pairs.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetQuiet(viper.GetBool("quiet"))
	},
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: .config/recolor.{yaml,yml,json,toml})")
	rootCmd.PersistentFlags().StringP("preset", "p", "", "Mapping to apply: a preset id or a custom mapping id from config")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress informational output")

	for _, name := range []string{"config", "preset", "quiet"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
	viper.SetEnvPrefix("RECOLOR")
	viper.AutomaticEnv()

	rootCmd.AddCommand(scan.Cmd)
	rootCmd.AddCommand(search.Cmd)
	rootCmd.AddCommand(remap.Cmd)
	rootCmd.AddCommand(presets.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
}
