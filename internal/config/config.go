package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the root configuration structure
type Config struct {
	Editor     EditorConfig     `mapstructure:"editor"`
	Suggest    SuggestConfig    `mapstructure:"suggest"`
	Vocabulary VocabularyConfig `mapstructure:"vocabulary"`
	Storage    StorageConfig    `mapstructure:"storage"`
	UI         UIConfig         `mapstructure:"ui"`
	Debug      bool             `mapstructure:"debug"`
}

// EditorConfig holds editing model settings
type EditorConfig struct {
	UndoLimit int `mapstructure:"undo_limit"`
}

// SuggestConfig holds word suggestion settings
type SuggestConfig struct {
	MinPrefix int           `mapstructure:"min_prefix"`
	Debounce  time.Duration `mapstructure:"debounce"`
	FoldCase  bool          `mapstructure:"fold_case"`
}

// VocabularyConfig selects the words loaded into the dictionary
type VocabularyConfig struct {
	Builtin bool     `mapstructure:"builtin"`
	Files   []string `mapstructure:"files"`
}

// StorageConfig locates the SQLite database for user words and recent files
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds user interface preferences
type UIConfig struct {
	Theme          string `mapstructure:"theme"`
	HighlightStyle string `mapstructure:"highlight_style"` // chroma style; empty follows the theme
}

// Dir returns the smartedit configuration directory (~/.config/smartedit).
func Dir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.TempDir()
	}
	return filepath.Join(homeDir, ".config", "smartedit")
}

// LoadConfig loads configuration from YAML file and environment variables.
// An explicit path overrides the default search locations.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
		v.AddConfigPath(".")
	}

	// Environment variable support
	v.AutomaticEnv()
	v.SetEnvPrefix("SMARTEDIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	config.Storage.Path = expandHome(config.Storage.Path)
	for i, f := range config.Vocabulary.Files {
		config.Vocabulary.Files[i] = expandHome(f)
	}

	if err := ValidateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// expandHome replaces a leading ~/ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// ValidateConfig validates the configuration values
func ValidateConfig(cfg *Config) error {
	if cfg.Editor.UndoLimit < 0 {
		return fmt.Errorf("editor.undo_limit must be >= 0, got %d", cfg.Editor.UndoLimit)
	}
	if cfg.Editor.UndoLimit == 1 {
		return fmt.Errorf("editor.undo_limit of 1 leaves nothing to undo; use 0 for unbounded or >= 2")
	}

	if cfg.Suggest.MinPrefix < 1 || cfg.Suggest.MinPrefix > 32 {
		return fmt.Errorf("suggest.min_prefix must be between 1 and 32, got %d", cfg.Suggest.MinPrefix)
	}
	if cfg.Suggest.Debounce < 0 || cfg.Suggest.Debounce > 5*time.Second {
		return fmt.Errorf("suggest.debounce must be between 0 and 5s, got %v", cfg.Suggest.Debounce)
	}

	if cfg.Storage.Path == "" {
		return fmt.Errorf("storage.path cannot be empty")
	}

	// Validate UI config
	validThemes := []string{"dark", "light"}
	validTheme := false
	for _, theme := range validThemes {
		if cfg.UI.Theme == theme {
			validTheme = true
			break
		}
	}
	if !validTheme {
		return fmt.Errorf("ui.theme must be one of: %v, got %s", validThemes, cfg.UI.Theme)
	}

	return nil
}

// applyDefaults sets default configuration values
func applyDefaults(v *viper.Viper) {
	// Editor defaults
	v.SetDefault("editor.undo_limit", 1000)

	// Suggestion defaults
	v.SetDefault("suggest.min_prefix", 2)
	v.SetDefault("suggest.debounce", "300ms")
	v.SetDefault("suggest.fold_case", true)

	// Vocabulary defaults
	v.SetDefault("vocabulary.builtin", true)
	v.SetDefault("vocabulary.files", []string{})

	v.SetDefault("storage.path", filepath.Join(Dir(), "smartedit.db"))

	// UI defaults
	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.highlight_style", "")

	// Debug default
	v.SetDefault("debug", false)
}
