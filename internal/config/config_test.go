package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Editor.UndoLimit)
	assert.Equal(t, 2, cfg.Suggest.MinPrefix)
	assert.Equal(t, 300*time.Millisecond, cfg.Suggest.Debounce)
	assert.True(t, cfg.Suggest.FoldCase)
	assert.True(t, cfg.Vocabulary.Builtin)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Empty(t, cfg.UI.HighlightStyle)
	assert.Equal(t, filepath.Join(Dir(), "smartedit.db"), cfg.Storage.Path)
	assert.False(t, cfg.Debug)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
editor:
  undo_limit: 50
suggest:
  min_prefix: 3
  debounce: 150ms
  fold_case: false
vocabulary:
  builtin: false
  files:
    - /tmp/go.yaml
ui:
  theme: light
debug: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Editor.UndoLimit)
	assert.Equal(t, 3, cfg.Suggest.MinPrefix)
	assert.Equal(t, 150*time.Millisecond, cfg.Suggest.Debounce)
	assert.False(t, cfg.Suggest.FoldCase)
	assert.False(t, cfg.Vocabulary.Builtin)
	assert.Equal(t, []string{"/tmp/go.yaml"}, cfg.Vocabulary.Files)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.True(t, cfg.Debug)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SMARTEDIT_SUGGEST_MIN_PREFIX", "4")

	cfg, err := LoadConfig(writeConfig(t, "{}\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Suggest.MinPrefix)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Editor:  EditorConfig{UndoLimit: 100},
			Suggest: SuggestConfig{MinPrefix: 2, Debounce: 300 * time.Millisecond},
			Storage: StorageConfig{Path: "/tmp/smartedit.db"},
			UI:      UIConfig{Theme: "dark"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"unbounded undo", func(c *Config) { c.Editor.UndoLimit = 0 }, ""},
		{"negative undo", func(c *Config) { c.Editor.UndoLimit = -1 }, "editor.undo_limit"},
		{"undo of one", func(c *Config) { c.Editor.UndoLimit = 1 }, "editor.undo_limit"},
		{"zero prefix", func(c *Config) { c.Suggest.MinPrefix = 0 }, "suggest.min_prefix"},
		{"slow debounce", func(c *Config) { c.Suggest.Debounce = time.Minute }, "suggest.debounce"},
		{"no storage", func(c *Config) { c.Storage.Path = "" }, "storage.path"},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
