/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command, which serves recolor's scanner and
// remapper as Model Context Protocol tools over stdio.
package mcp

import (
	"fmt"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/recolor/internal/logger"
	"bennypowers.dev/recolor/load"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve recolor tools over the Model Context Protocol",
	Long: `Run an MCP server on stdin/stdout exposing three tools:

  scan_color_classes  list color utility classes in markup
  remap_classes       rewrite class attributes with a preset or custom pairs
  list_presets        list presets and configured mappings`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	// stdout carries the protocol
	logger.SetOutput(io.Discard)

	cfg, _, err := load.Config(cmd.Context(), viper.GetString("config"), load.Options{Root: "."})
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	return NewServer(cfg).Run(cmd.Context(), &mcp.StdioTransport{})
}
