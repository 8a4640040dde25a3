/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the CLI diagnostics channel. It can be silenced
// when stdout and stderr belong to a protocol, as in MCP mode.
package logger

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	logger = log.New(os.Stderr, "", 0)
	quiet  bool
)

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(w, "", 0)
}

// SetQuiet suppresses Info and Debug output while keeping warnings.
func SetQuiet(q bool) {
	mu.Lock()
	defer mu.Unlock()
	quiet = q
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Printf("warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if quiet {
		return
	}
	logger.Printf(format, args...)
}

// Debug logs a debug message. Currently same as Info.
func Debug(format string, args ...any) {
	Info(format, args...)
}

// Sink forwards mapping diagnostics to the package logger.
type Sink struct {
	// Source prefixes each message, typically the mapping name.
	Source string
}

// NewSink returns a Sink for the named mapping.
func NewSink(source string) Sink {
	return Sink{Source: source}
}

// Warn implements remap.Diagnostics.
func (s Sink) Warn(format string, args ...any) {
	if s.Source != "" {
		format = s.Source + ": " + format
	}
	Warn(format, args...)
}
