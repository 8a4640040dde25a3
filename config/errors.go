/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import "errors"

// Sentinel errors for configuration operations.
var (
	// ErrNoMapping indicates no mapping was selected by flag, env or config.
	ErrNoMapping = errors.New("no mapping selected")

	// ErrUnknownMapping indicates a mapping id matches neither a custom mapping nor a preset.
	ErrUnknownMapping = errors.New("unknown mapping")

	// ErrUnsupportedFormat indicates a config file with an unrecognized extension.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrNoFiles indicates neither arguments nor the config named any input files.
	ErrNoFiles = errors.New("no files specified and no files found in config")
)
