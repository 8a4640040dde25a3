/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	const body = "preset: blue-to-purple\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("User-Agent"), "recolor/") {
			http.Error(w, "unexpected user agent", http.StatusBadRequest)
			return
		}
		switch r.URL.Path {
		case "/recolor.yaml":
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write([]byte(body))
		case "/big.yaml":
			_, _ = w.Write([]byte(strings.Repeat("#", 100)))
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}))
	defer srv.Close()

	tests := []struct {
		name    string
		path    string
		maxSize int64
		want    string
		wantErr string
	}{
		{name: "ok", path: "/recolor.yaml", maxSize: DefaultMaxSize, want: body},
		{name: "at limit", path: "/big.yaml", maxSize: 100, want: strings.Repeat("#", 100)},
		{name: "over limit", path: "/big.yaml", maxSize: 50, wantErr: "exceeds maximum size"},
		{name: "status", path: "/missing.yaml", maxSize: DefaultMaxSize, wantErr: "404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := NewHTTPFetcher(tt.maxSize).Fetch(context.Background(), srv.URL+tt.path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(content))
		})
	}
}

func TestHTTPFetcher_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("preset: warm-theme\n"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewHTTPFetcher(DefaultMaxSize).Fetch(ctx, srv.URL+"/recolor.yaml")
	require.Error(t, err)
	if !strings.Contains(err.Error(), "timeout") && !strings.Contains(err.Error(), "context deadline exceeded") {
		t.Errorf("expected timeout error, got: %v", err)
	}
}

func TestConfig_RemoteOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[mappings.ocean.colors]\nred = \"cyan\"\n"))
	}))
	defer srv.Close()

	cfg, _, err := Config(context.Background(), srv.URL+"/shared/recolor.toml", Options{})
	require.NoError(t, err)
	assert.Equal(t, "cyan", cfg.Mappings["ocean"].Colors["red"])
}
