// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/undotext/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`

	// Warnings collected while loading, logged once the logger is up.
	Warnings []string `toml:"-"`
}

// EditorConfig holds driver settings.
type EditorConfig struct {
	UI              string `toml:"ui"`
	ShowAfterEdit   bool   `toml:"show_after_edit"`
	SystemClipboard bool   `toml:"system_clipboard"`
	Prompt          string `toml:"prompt"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			UI:              UIConsole,
			ShowAfterEdit:   DefaultShowAfterEdit,
			SystemClipboard: SystemClipboard,
			Prompt:          DefaultPrompt,
		},
	}
}

// DefaultPath returns ~/.config/undotext/config.toml, or "" if the user
// config dir is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. Keys missing from the file keep
// their current values. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	if _, err := os.Stat(filePath); errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("config file '%s': unrecognized keys: %v", filePath, undecoded))
	}
	return nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	switch c.Editor.UI {
	case UIConsole, UITUI:
	default:
		c.Warnings = append(c.Warnings, fmt.Sprintf("unknown ui %q, using %q", c.Editor.UI, defaults.Editor.UI))
		c.Editor.UI = defaults.Editor.UI
	}
	if c.Editor.Prompt == "" {
		c.Editor.Prompt = defaults.Editor.Prompt
	}
	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok {
		c.Warnings = append(c.Warnings, fmt.Sprintf("invalid log level %q, using %q", c.Logger.LogLevel, defaults.Logger.LogLevel))
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Logger.LogFilePath == "" {
		c.Logger.LogFilePath = defaults.Logger.LogFilePath
	}
}

// LoadConfig merges defaults, the config file and flag overrides, in that order.
// An empty configFilePath means DefaultPath(). flags may be nil.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, nil
}
