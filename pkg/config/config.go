package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the per-project configuration file looked up in the project root
const FileName = ".usedassets.yaml"

const (
	DefaultPage            = "src/routes/+page.svelte"
	DefaultSourceRoot      = "static_all"
	DefaultDestRoot        = "static"
	DefaultColorTheme      = "auto"
	DefaultWatchDebounceMS = 300
)

type Config struct {
	// Paths are relative to the project root unless absolute
	Page       string `yaml:"page"`
	SourceRoot string `yaml:"source_root"`
	DestRoot   string `yaml:"dest_root"`

	// Sync behaviour
	Prune bool `yaml:"prune"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`

	// Watch
	WatchDebounceMS int `yaml:"watch_debounce_ms"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		Page:            DefaultPage,
		SourceRoot:      DefaultSourceRoot,
		DestRoot:        DefaultDestRoot,
		Prune:           false,
		ColorTheme:      DefaultColorTheme,
		WatchDebounceMS: DefaultWatchDebounceMS,
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.Page == "" {
		cfg.Page = DefaultPage
	}
	if cfg.SourceRoot == "" {
		cfg.SourceRoot = DefaultSourceRoot
	}
	if cfg.DestRoot == "" {
		cfg.DestRoot = DefaultDestRoot
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = DefaultWatchDebounceMS
	}

	if !isValidColorTheme(cfg.ColorTheme) {
		cfg.ColorTheme = DefaultColorTheme
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isValidColorTheme(theme string) bool {
	switch theme {
	case "auto", "dark", "light":
		return true
	}
	return false
}
