/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"bennypowers.dev/recolor/cmd/render"
	"bennypowers.dev/recolor/config"
	"bennypowers.dev/recolor/internal/version"
	"bennypowers.dev/recolor/parser"
	"bennypowers.dev/recolor/preset"
	"bennypowers.dev/recolor/remap"
)

// Server exposes recolor operations as MCP tools.
type Server struct {
	cfg    *config.Config
	server *mcp.Server
}

// NewServer creates a server whose mappings resolve against cfg.
func NewServer(cfg *config.Config) *Server {
	s := &Server{cfg: cfg}
	s.server = mcp.NewServer(&mcp.Implementation{Name: "recolor", Version: version.Get()}, nil)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "scan_color_classes",
		Description: "List Tailwind color utility classes found in class and className attributes",
	}, s.handleScan)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remap_classes",
		Description: "Rewrite color utility classes in markup using a preset, a configured mapping or ad hoc color pairs",
	}, s.handleRemap)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_presets",
		Description: "List built-in presets and configured mappings with their source and target colors",
	}, s.handleListPresets)

	return s
}

// Run serves until the client disconnects or ctx is done.
func (s *Server) Run(ctx context.Context, t mcp.Transport) error {
	return s.server.Run(ctx, t)
}

// ScanInput is the scan_color_classes argument object.
type ScanInput struct {
	Text   string `json:"text" jsonschema:"markup containing class or className attributes"`
	Unique bool   `json:"unique,omitempty" jsonschema:"report each class once"`
}

// ScanOutput is the scan_color_classes result.
type ScanOutput struct {
	Tokens []parser.ColorToken `json:"tokens"`
}

// RemapInput is the remap_classes argument object.
type RemapInput struct {
	Text     string            `json:"text" jsonschema:"markup to rewrite"`
	Mapping  string            `json:"mapping,omitempty" jsonschema:"preset or configured mapping id; defaults to the configured preset"`
	Mappings map[string]string `json:"mappings,omitempty" jsonschema:"ad hoc color pairs such as blue: violet, layered over the mapping"`
}

// RemapOutput is the remap_classes result.
type RemapOutput struct {
	Text     string   `json:"text"`
	Changed  int      `json:"changed"`
	Warnings []string `json:"warnings"`
}

// ListPresetsInput takes no arguments.
type ListPresetsInput struct{}

// ListPresetsOutput is the list_presets result.
type ListPresetsOutput struct {
	Presets []render.PresetRow `json:"presets"`
}

// warnings collects mapping diagnostics for the tool result.
type warnings []string

func (w *warnings) Warn(format string, args ...any) {
	*w = append(*w, fmt.Sprintf(format, args...))
}

func (s *Server) handleScan(ctx context.Context, req *mcp.CallToolRequest, in ScanInput) (*mcp.CallToolResult, ScanOutput, error) {
	tokens := parser.ScanColorTokens(in.Text)
	if in.Unique {
		tokens = parser.Unique(tokens)
	}
	if tokens == nil {
		tokens = []parser.ColorToken{}
	}
	return nil, ScanOutput{Tokens: tokens}, nil
}

func (s *Server) handleRemap(ctx context.Context, req *mcp.CallToolRequest, in RemapInput) (*mcp.CallToolResult, RemapOutput, error) {
	warns := warnings{}

	id := in.Mapping
	if id == "" {
		id = s.cfg.Preset
	}

	var m remap.Mapping
	switch {
	case id != "":
		mc, err := s.cfg.Resolve(id, &warns)
		if err != nil {
			return nil, RemapOutput{}, err
		}
		m = mc.Mappings
	case len(in.Mappings) == 0:
		return nil, RemapOutput{}, config.ErrNoMapping
	}
	m = remap.Merge(m, remap.BuildMapping(in.Mappings, &warns))

	// count per source class; a rewrite such as bg-white-500 may no
	// longer classify, so the rewritten text cannot be rescanned
	changed := 0
	for _, tok := range parser.ScanColorTokens(in.Text) {
		if remap.RemapFullToken(tok.Full, m) != tok.Full {
			changed++
		}
	}

	return nil, RemapOutput{Text: remap.RewriteText(in.Text, m), Changed: changed, Warnings: warns}, nil
}

func (s *Server) handleListPresets(ctx context.Context, req *mcp.CallToolRequest, in ListPresetsInput) (*mcp.CallToolResult, ListPresetsOutput, error) {
	tables := preset.All()
	ids := preset.IDs()
	for _, id := range s.cfg.MappingIDs() {
		if _, isPreset := tables[id]; !isPreset {
			ids = append(ids, id)
		}
		tables[id] = s.cfg.Mappings[id].Build(id, nil)
	}
	return nil, ListPresetsOutput{Presets: render.ComputePresetRows(ids, tables)}, nil
}
