/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/recolor/testutil"
)

// mockFetcher returns canned content for URLs.
type mockFetcher struct {
	content map[string][]byte
	urls    []string
}

func (m *mockFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	m.urls = append(m.urls, url)
	if data, ok := m.content[url]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("fetching %s: 404 Not Found", url)
}

func TestConfig_Local(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")

	cfg, path, err := Config(context.Background(), "", Options{Root: "/project", FS: mfs})
	require.NoError(t, err)
	assert.Equal(t, "/project/.config/recolor.yaml", path)
	assert.Equal(t, "brand-refresh", cfg.Preset)
}

func TestConfig_Defaults(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/none", "/project")

	cfg, path, err := Config(context.Background(), "", Options{Root: "/project", FS: mfs})
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, cfg)
}

func TestConfig_Remote(t *testing.T) {
	fetcher := &mockFetcher{content: map[string][]byte{
		"https://example.com/team/recolor.json": []byte(`{
			// shared palette
			"preset": "gray-to-slate",
		}`),
		"https://example.com/raw?id=7": []byte("preset: warm-theme\n"),
	}}

	cfg, path, err := Config(context.Background(), "https://example.com/team/recolor.json", Options{Fetcher: fetcher})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/team/recolor.json", path)
	assert.Equal(t, "gray-to-slate", cfg.Preset)

	cfg, _, err = Config(context.Background(), "https://example.com/raw?id=7", Options{Fetcher: fetcher})
	require.NoError(t, err)
	assert.Equal(t, "warm-theme", cfg.Preset)

	assert.Len(t, fetcher.urls, 2)
}

func TestConfig_RemoteFailure(t *testing.T) {
	_, _, err := Config(context.Background(), "https://example.com/missing.yaml", Options{Fetcher: &mockFetcher{}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRemoteConfig))
	assert.Contains(t, err.Error(), "404")
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("https://example.com/recolor.yaml"))
	assert.True(t, IsRemote("http://localhost:8080/recolor.json"))
	assert.False(t, IsRemote(".config/recolor.yaml"))
	assert.False(t, IsRemote(""))
}
