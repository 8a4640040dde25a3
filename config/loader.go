/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	recolorfs "bennypowers.dev/recolor/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "recolor"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json", ".toml"}

// Load searches for .config/recolor.{yaml,yml,json,toml} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem recolorfs.FileSystem, rootDir string) (*Config, string, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		cfg, err := LoadFile(filesystem, configPath)
		if err != nil {
			return nil, configPath, err
		}
		return cfg, configPath, nil
	}

	return nil, "", nil
}

// LoadFile reads a config file, choosing the decoder by extension.
// JSON files may contain comments and trailing commas.
func LoadFile(filesystem recolorfs.FileSystem, path string) (*Config, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

// Parse decodes config content. name supplies the extension that selects
// the decoder and is used in error messages.
func Parse(data []byte, name string) (*Config, error) {
	cfg := &Config{}
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	case ".json":
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	case ".toml":
		// files mixes strings and tables, which FileSpec decodes from JSON
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		data, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	return cfg, nil
}

// Find loads the config file at path when it is set, and otherwise searches
// rootDir. A missing config yields the defaults with an empty path.
func Find(filesystem recolorfs.FileSystem, path, rootDir string) (*Config, string, error) {
	if path != "" {
		cfg, err := LoadFile(filesystem, path)
		if err != nil {
			return nil, path, err
		}
		return cfg, path, nil
	}

	cfg, found, err := Load(filesystem, rootDir)
	if err != nil {
		return nil, found, err
	}
	if cfg == nil {
		return Default(), "", nil
	}
	return cfg, found, nil
}

// ExpandFiles expands glob patterns in Files and returns absolute paths.
func (c *Config) ExpandFiles(filesystem recolorfs.FileSystem, rootDir string) ([]string, error) {
	var result []string

	for _, spec := range c.Files {
		expanded, err := ExpandPath(filesystem, rootDir, spec.Path)
		if err != nil {
			return nil, err
		}
		result = append(result, expanded...)
	}

	return result, nil
}

// Inputs returns the files named by args, expanding globs, or the
// configured files when args is empty.
func (c *Config) Inputs(filesystem recolorfs.FileSystem, rootDir string, args []string) ([]string, error) {
	var files []string
	if len(args) == 0 {
		expanded, err := c.ExpandFiles(filesystem, rootDir)
		if err != nil {
			return nil, fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
	}

	for _, arg := range args {
		expanded, err := ExpandPath(filesystem, rootDir, arg)
		if err != nil {
			return nil, fmt.Errorf("error expanding %s: %w", arg, err)
		}
		files = append(files, expanded...)
	}

	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	return files, nil
}

// ExpandPath expands a single file path which may contain globs.
// Relative patterns are resolved against rootDir.
func ExpandPath(filesystem recolorfs.FileSystem, rootDir, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		// Not a glob, return the path directly (errors handled when file is read)
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob walks the non-glob base directory of pattern and returns
// the files matching the remainder.
func expandGlob(filesystem recolorfs.FileSystem, pattern string) ([]string, error) {
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		if matched, _ := doublestar.Match(relPattern, filepath.ToSlash(relPath)); matched {
			matches = append(matches, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return matches, nil
}
