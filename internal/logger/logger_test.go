/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger

import (
	"bytes"
	"os"
	"testing"

	"bennypowers.dev/recolor/remap"
)

func TestSink_PrefixesSource(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	remap.BuildMapping(map[string]string{"brand": "blue"}, NewSink("brand-refresh"))

	expected := "warning: brand-refresh: invalid source color \"brand\" - skipping mapping\n"
	if buf.String() != expected {
		t.Errorf("output = %q, want %q", buf.String(), expected)
	}
}

func TestSetQuiet(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetQuiet(true)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetQuiet(false)
	})

	Info("hidden %d", 1)
	Warn("shown %d", 2)

	if buf.String() != "warning: shown 2\n" {
		t.Errorf("output = %q", buf.String())
	}
}
