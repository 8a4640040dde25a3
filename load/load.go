/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load locates and reads the recolor config for a command: an
// explicit local file, a remote file over HTTP, or the project's
// .config/recolor.{yaml,yml,json,toml}.
package load

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"bennypowers.dev/recolor/config"
	"bennypowers.dev/recolor/fs"
)

// ErrRemoteConfig indicates a remote config could not be fetched.
var ErrRemoteConfig = errors.New("remote config unavailable")

// Options configures how the config is loaded.
type Options struct {
	// Root is the directory searched for .config/recolor.*. Defaults to ".".
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Fetcher retrieves remote configs. Defaults to an HTTPFetcher.
	Fetcher Fetcher

	// FetchTimeout bounds a remote fetch. Defaults to DefaultTimeout.
	FetchTimeout time.Duration
}

// IsRemote reports whether source names an http or https URL.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "https://") || strings.HasPrefix(source, "http://")
}

// Config loads the config named by source. An empty source searches
// opts.Root and falls back to defaults; the returned path is empty then.
func Config(ctx context.Context, source string, opts Options) (*config.Config, string, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}
	root := opts.Root
	if root == "" {
		root = "."
	}

	if !IsRemote(source) {
		return config.Find(filesystem, source, root)
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = NewHTTPFetcher(DefaultMaxSize)
	}
	timeout := opts.FetchTimeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	content, err := fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, source, fmt.Errorf("%w: %w", ErrRemoteConfig, err)
	}

	cfg, err := config.Parse(content, remoteName(source))
	if err != nil {
		return nil, source, err
	}
	return cfg, source, nil
}

// remoteName returns a name whose extension selects the decoder.
// URLs without a recognized extension are read as YAML.
func remoteName(source string) string {
	u, err := url.Parse(source)
	if err != nil {
		return "remote.yaml"
	}
	switch strings.ToLower(path.Ext(u.Path)) {
	case ".yaml", ".yml", ".json", ".toml":
		return u.Path
	default:
		return "remote.yaml"
	}
}
