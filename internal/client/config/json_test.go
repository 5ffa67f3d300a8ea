package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	dir := t.TempDir()
	path := writeTempJSON(t, dir, "cli.json", map[string]any{
		"server_url":      "https://staffscore.example",
		"request_timeout": "30s",
	})

	t.Run("loads from -config", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-config", path, "countries"})

		assert.Equal(t, "https://staffscore.example", cfg.ServerURL)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	})

	t.Run("no flag leaves config untouched", func(t *testing.T) {
		cfg := &Config{ServerURL: "http://x", RequestTimeout: time.Second}
		parseJson(cfg, []string{"countries"})

		assert.Equal(t, "http://x", cfg.ServerURL)
		assert.Equal(t, time.Second, cfg.RequestTimeout)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"server_url": "http://only-url"})
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-c", partial})

		assert.Equal(t, "http://only-url", cfg.ServerURL)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg, []string{"-c", bad}) })
	})
}
