/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package remap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/recolor/config"
	"bennypowers.dev/recolor/internal/mapfs"
	remaplib "bennypowers.dev/recolor/remap"
	"bennypowers.dev/recolor/testutil"
)

func projectFS(t *testing.T) (*mapfs.MapFileSystem, *config.Config) {
	t.Helper()
	mfs := testutil.NewFixtureFS(t, "fixtures/project", "/project")
	cfg, _, err := config.Find(mfs, "", "/project")
	require.NoError(t, err)
	return mfs, cfg
}

func TestParsePairs(t *testing.T) {
	raw, err := parsePairs([]string{"blue=violet", " gray-900 = zinc-950 "})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"blue": "violet", "gray-900": "zinc-950"}, raw)

	for _, bad := range []string{"blue", "=violet", "blue="} {
		t.Run(bad, func(t *testing.T) {
			_, err := parsePairs([]string{bad})
			assert.Error(t, err)
		})
	}
}

func TestSelector(t *testing.T) {
	cfg := &config.Config{
		Preset: "gray-to-slate",
		Files:  []config.FileSpec{{Path: "legacy/*.html", Mapping: "warm-theme"}},
		Mappings: map[string]config.MappingSpec{
			"brand": {Colors: map[string]string{"blue": "violet"}},
		},
	}
	adhoc := remaplib.Mapping{"red": "rose"}

	t.Run("explicit id wins", func(t *testing.T) {
		m, err := newSelector(cfg, ".", "brand", adhoc).forPath("legacy/a.html")
		require.NoError(t, err)
		assert.Equal(t, remaplib.Mapping{"blue": "violet", "red": "rose"}, m)
	})

	t.Run("file mapping", func(t *testing.T) {
		m, err := newSelector(cfg, ".", "", nil).forPath("legacy/a.html")
		require.NoError(t, err)
		assert.Equal(t, "orange", m["blue"])
	})

	t.Run("config preset", func(t *testing.T) {
		m, err := newSelector(cfg, ".", "", nil).forPath("src/a.html")
		require.NoError(t, err)
		assert.Equal(t, remaplib.Mapping{"gray": "slate"}, m)
	})

	t.Run("ad hoc only", func(t *testing.T) {
		m, err := newSelector(config.Default(), ".", "", adhoc).forPath("a.html")
		require.NoError(t, err)
		assert.Equal(t, adhoc, m)
	})

	t.Run("nothing selected", func(t *testing.T) {
		_, err := newSelector(config.Default(), ".", "", nil).forPath("a.html")
		assert.ErrorIs(t, err, config.ErrNoMapping)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := newSelector(cfg, ".", "nope", nil).forPath("a.html")
		assert.ErrorIs(t, err, config.ErrUnknownMapping)
	})
}

func TestRemapFiles_Stdout(t *testing.T) {
	mfs, cfg := projectFS(t)
	files, err := cfg.Inputs(mfs, "/project", nil)
	require.NoError(t, err)

	var stdout bytes.Buffer
	failures, err := remapFiles(mfs, files, newSelector(cfg, "/project", "", nil), target{stdout: &stdout})
	require.NoError(t, err)
	assert.Zero(t, failures)

	expected := `<button class="bg-purple-500 hover:bg-purple-600 text-white rounded">Save</button>` + "\n" +
		"<main class=\"bg-gray-50\">\n  <h1 class=\"text-purple-900 font-bold\">Home</h1>\n</main>\n"
	assert.Equal(t, expected, stdout.String())

	// stdout mode leaves files alone
	data, err := mfs.ReadFile("/project/src/components/button.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), "bg-blue-500")
}

func TestRemapFiles_InPlace(t *testing.T) {
	mfs, cfg := projectFS(t)
	files := []string{
		"/project/src/components/button.html",
		"/project/src/pages/notes.md",
		"/project/src/pages/missing.html",
	}

	failures, err := remapFiles(mfs, files, newSelector(cfg, "/project", "", nil), target{inPlace: true})
	require.NoError(t, err)
	assert.Equal(t, 1, failures)

	data, err := mfs.ReadFile("/project/src/components/button.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), `class="bg-purple-500 hover:bg-purple-600 text-white rounded"`)

	notes, err := mfs.ReadFile("/project/src/pages/notes.md")
	require.NoError(t, err)
	original := testutil.LoadFixtureFile(t, "fixtures/project/src/pages/notes.md")
	assert.Equal(t, string(original), string(notes))
}

func TestRemapFiles_Output(t *testing.T) {
	mfs, cfg := projectFS(t)

	failures, err := remapFiles(mfs, []string{"/project/src/pages/home.html"},
		newSelector(cfg, "/project", "warm-theme", nil), target{output: "/project/out.html"})
	require.NoError(t, err)
	assert.Zero(t, failures)

	data, err := mfs.ReadFile("/project/out.html")
	require.NoError(t, err)
	assert.Equal(t, "<main class=\"bg-stone-50\">\n  <h1 class=\"text-orange-900 font-bold\">Home</h1>\n</main>\n", string(data))
}

func TestRemapFiles_MappingError(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/a.html", `<p class="bg-blue-500">`, 0644)

	_, err := remapFiles(mfs, []string{"/a.html"}, newSelector(config.Default(), "/", "", nil), target{stdout: &bytes.Buffer{}})
	assert.ErrorIs(t, err, config.ErrNoMapping)
}

func TestRemapStdin(t *testing.T) {
	sel := newSelector(config.Default(), ".", "", remaplib.Mapping{"blue": "purple"})

	var stdout bytes.Buffer
	err := remapStdin(strings.NewReader(`<a className="md:hover:text-blue-700">`), &stdout, mapfs.New(), sel, "")
	require.NoError(t, err)
	assert.Equal(t, `<a className="md:hover:text-purple-700">`, stdout.String())

	mfs := mapfs.New()
	err = remapStdin(strings.NewReader(`<a class="bg-blue-50">`), &stdout, mfs, sel, "/out.html")
	require.NoError(t, err)
	data, err := mfs.ReadFile("/out.html")
	require.NoError(t, err)
	assert.Equal(t, `<a class="bg-purple-50">`, string(data))
}
