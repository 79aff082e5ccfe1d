package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emoji-generator/internal/fetch"
	"emoji-generator/internal/gen"
)

func TestLoadDefaults(t *testing.T) {
	root := t.TempDir()

	v := New()
	v.Set(KeyRoot, root)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, fetch.DefaultURL, cfg.Upstream.URL)
	assert.Equal(t, fetch.DefaultTimeout, cfg.Upstream.Timeout)
	assert.Equal(t, filepath.Join(root, "scripts", "emoji-map.txt"), cfg.Paths.LocalMap)
	assert.Equal(t, filepath.Join(root, "scripts", "emoji-order.txt"), cfg.Paths.Order)
	assert.Equal(t, filepath.Join(root, "opencc", "emoji.txt"), cfg.Paths.Lexicon)
	assert.Equal(t, filepath.Join(root, "lua", "tips", "tips_show.txt"), cfg.Paths.Tips)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

func TestOutputDefaultsFollowGenerator(t *testing.T) {
	outputs := gen.DefaultGeneratorConfig()

	v := New()
	assert.Equal(t, outputs.LexiconPath, v.GetString(KeyLexicon))
	assert.Equal(t, outputs.TipsPath, v.GetString(KeyTips))
}

func TestLoadFileAndEnv(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "emoji-generator.yaml")

	yaml := `
upstream:
  url: https://example.com/emoji-map.txt
  timeout: 5s
paths:
  tips: /srv/rime/tips.txt
log:
  level: debug
  file: logs/run.log
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Setenv("EMOJI_GENERATOR_ROOT", root)
	t.Setenv("EMOJI_GENERATOR_PATHS_LEXICON", "out/emoji.txt")

	v := New()
	require.NoError(t, ReadFile(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/emoji-map.txt", cfg.Upstream.URL)
	assert.Equal(t, 5*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "/srv/rime/tips.txt", cfg.Paths.Tips)
	assert.Equal(t, filepath.Join(root, "out", "emoji.txt"), cfg.Paths.Lexicon)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, filepath.Join(root, "logs", "run.log"), cfg.Log.File)
}

func TestReadFileMissing(t *testing.T) {
	v := New()

	require.NoError(t, ReadFile(v, ""))
	require.Error(t, ReadFile(v, filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Root:     "/root",
			Upstream: Upstream{URL: "https://example.com/map.txt"},
			Paths:    Paths{Lexicon: "/a", Tips: "/b"},
			Log:      Log{Level: "info"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing url", mutate: func(c *Config) { c.Upstream.URL = "" }, wantErr: "upstream.url is required"},
		{name: "bad scheme", mutate: func(c *Config) { c.Upstream.URL = "ftp://x/y" }, wantErr: "unsupported scheme"},
		{name: "negative timeout", mutate: func(c *Config) { c.Upstream.Timeout = -time.Second }, wantErr: "must not be negative"},
		{name: "missing tips", mutate: func(c *Config) { c.Paths.Tips = "" }, wantErr: "paths.tips is required"},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "unknown level"},
		{name: "warning alias", mutate: func(c *Config) { c.Log.Level = "warning" }},
		{name: "upper case level", mutate: func(c *Config) { c.Log.Level = "DEBUG" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestResolve(t *testing.T) {
	cfg := &Config{Root: "/srv/rime"}

	assert.Equal(t, "/srv/rime/opencc/emoji.txt", cfg.Resolve("opencc/emoji.txt"))
	assert.Equal(t, "/etc/tips.txt", cfg.Resolve("/etc/tips.txt"))
	assert.Empty(t, cfg.Resolve(""))
}
