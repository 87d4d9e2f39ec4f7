// Package config loads and persists the console's settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config is the on-disk settings file.
type Config struct {
	// ServerURL is the base URL of the book backend.
	ServerURL string `yaml:"server_url"`

	// PerPage is the default page size for the list view.
	PerPage int `yaml:"per_page"`

	// View is the startup view mode, "card" or "table".
	View string `yaml:"view"`

	// Theme is "light" or "dark".
	Theme string `yaml:"theme"`
}

// Default returns the settings used when no file exists yet.
func Default() Config {
	return Config{
		ServerURL: "http://localhost:5000",
		PerPage:   12,
		View:      "card",
		Theme:     ThemeLight,
	}
}

// DefaultPath returns the per-user settings path.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "jybooks", "config.yaml"), nil
}

// Load reads the settings file at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	return cfg.sanitized(), nil
}

// Save writes the settings file, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg.sanitized())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c Config) sanitized() Config {
	if c.ServerURL == "" {
		c.ServerURL = Default().ServerURL
	}
	if c.PerPage < 1 {
		c.PerPage = Default().PerPage
	}
	if c.View != "card" && c.View != "table" {
		c.View = "card"
	}
	if c.Theme != ThemeLight && c.Theme != ThemeDark {
		c.Theme = ThemeLight
	}
	return c
}
