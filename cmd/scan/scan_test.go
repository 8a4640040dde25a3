/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package scan

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/recolor/palette"
	"bennypowers.dev/recolor/preset"
	"bennypowers.dev/recolor/testutil"
)

const markup = `<div class="bg-blue-500 text-white hover:bg-blue-500">
  <span className='border-blue-500 bg-blue-500'>x</span>
</div>`

func TestScanText(t *testing.T) {
	tests := []struct {
		name     string
		opts     options
		expected []string
	}{
		{
			name:     "all occurrences",
			expected: []string{"bg-blue-500", "text-white", "hover:bg-blue-500", "border-blue-500", "bg-blue-500"},
		},
		{
			name:     "unique",
			opts:     options{unique: true},
			expected: []string{"bg-blue-500", "text-white", "hover:bg-blue-500", "border-blue-500"},
		},
		{
			name:     "property filter",
			opts:     options{property: palette.Background, unique: true},
			expected: []string{"bg-blue-500", "hover:bg-blue-500"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := scanText("page.html", markup, tt.opts)
			classes := make([]string, len(rows))
			for i, r := range rows {
				classes[i] = r.Class
				assert.Equal(t, "page.html", r.File)
			}
			assert.Equal(t, tt.expected, classes)
		})
	}
}

func TestScanText_Preview(t *testing.T) {
	p, ok := preset.Get("blue-to-purple")
	require.True(t, ok)

	rows := scanText("", markup, options{unique: true, mapping: p.Mappings})
	require.Len(t, rows, 4)
	assert.Equal(t, "bg-purple-500", rows[0].Target)
	assert.Equal(t, "text-white", rows[1].Target)
	assert.Equal(t, "hover:bg-purple-500", rows[2].Target)
}

func TestScanFiles(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/project", "/project")

	rows, failures := scanFiles(mfs, []string{
		"/project/src/components/button.html",
		"/project/src/pages/missing.html",
		"/project/src/pages/home.html",
	}, options{})

	assert.Equal(t, 1, failures)
	classes := make([]string, len(rows))
	for i, r := range rows {
		classes[i] = r.File + " " + r.Class
	}
	assert.Equal(t, []string{
		"/project/src/components/button.html bg-blue-500",
		"/project/src/components/button.html hover:bg-blue-600",
		"/project/src/components/button.html text-white",
		"/project/src/pages/home.html bg-gray-50",
		"/project/src/pages/home.html text-blue-900",
	}, classes)
}

func TestFormatter(t *testing.T) {
	for _, format := range []string{"table", "json", "markdown", "md"} {
		t.Run(format, func(t *testing.T) {
			output, err := formatter(format)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, output(&buf, scanText("", markup, options{unique: true})))
			assert.Contains(t, buf.String(), "hover:bg-blue-500")
		})
	}

	_, err := formatter("csv")
	assert.Error(t, err)
}
