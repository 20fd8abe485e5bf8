package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the top-level application configuration
type Config struct {
	Inventory InventoryConfig `toml:"inventory"`
	Context   ContextConfig   `toml:"context"`
	Log       LogConfig       `toml:"log"`
	Sidebar   SidebarConfig   `toml:"sidebar"`
}

// InventoryConfig selects where panel descriptors come from
type InventoryConfig struct {
	// Path to a YAML inventory; empty uses the built-in inventory
	Path  string `toml:"path"`
	Watch bool   `toml:"watch"`
}

// ContextConfig is the host context panels are polled against
type ContextConfig struct {
	Mode       string   `toml:"mode"`
	ObjectType string   `toml:"object_type"`
	Addons     []string `toml:"addons"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// SidebarConfig holds settings for the in-memory sidebar host
type SidebarConfig struct {
	Retries     int  `toml:"retries"`
	StartHidden bool `toml:"start_hidden"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// DefaultConfig returns a Config populated with default values
func DefaultConfig() *Config {
	return &Config{
		Context: ContextConfig{
			Mode:       "OBJECT",
			ObjectType: "MESH",
		},
		Log: LogConfig{
			Level: "info",
		},
		Sidebar: SidebarConfig{
			Retries:     1,
			StartHidden: true,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/tabsearch/config.toml, falling back
// to ~/.config/tabsearch/config.toml
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "tabsearch", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "tabsearch", "config.toml")
	}
	return filepath.Join(home, ".config", "tabsearch", "config.toml")
}

// Load reads the config file at path on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	level := strings.ToLower(c.Log.Level)
	if !validLogLevels[level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn or error)", c.Log.Level)
	}
	if c.Sidebar.Retries < 0 {
		return fmt.Errorf("sidebar retries cannot be negative, got %d", c.Sidebar.Retries)
	}
	if c.Inventory.Watch && c.Inventory.Path == "" {
		return fmt.Errorf("inventory watch requires an inventory path")
	}
	return nil
}
