/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package presets provides the presets command for recolor.
package presets

import (
	"fmt"
	"io"
	"maps"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/recolor/cmd/render"
	"bennypowers.dev/recolor/config"
	"bennypowers.dev/recolor/internal/logger"
	"bennypowers.dev/recolor/load"
	"bennypowers.dev/recolor/preset"
	"bennypowers.dev/recolor/remap"
)

// Cmd is the presets cobra command.
var Cmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in presets and configured mappings",
	Long:  `List the built-in color presets, followed by any custom mappings from config, with their source and target colors.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg, _, err := load.Config(cmd.Context(), viper.GetString("config"), load.Options{Root: "."})
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	return list(cmd.OutOrStdout(), cfg, format)
}

// list renders presets in id order, then custom mappings in id order.
// A custom mapping that shadows a preset replaces it in place.
func list(w io.Writer, cfg *config.Config, format string) error {
	tables := preset.All()
	ids := preset.IDs()

	custom := make(map[string]remap.MappingConfig, len(cfg.Mappings))
	for _, id := range cfg.MappingIDs() {
		custom[id] = cfg.Mappings[id].Build(id, logger.NewSink(id))
		if _, isPreset := tables[id]; !isPreset {
			ids = append(ids, id)
		}
	}
	maps.Copy(tables, custom)

	rows := render.ComputePresetRows(ids, tables)

	switch format {
	case "json":
		return render.JSON(w, rows)
	case "table":
		return render.PresetTable(w, rows)
	default:
		return fmt.Errorf("unsupported format %q: use table or json", format)
	}
}
