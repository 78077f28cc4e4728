// Package config loads and saves litavm's runtime configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Default VM sizing, matching the CLI's own defaults.
const (
	DefaultRAMSize   = 1024 * 1024
	DefaultStackSize = 1024
)

// Config represents litavm's configuration file.
type Config struct {
	VM struct {
		RAMSize   uint `toml:"ram_size"`
		StackSize uint `toml:"stack_size"`
	} `toml:"vm"`

	Display struct {
		ShowDisassembly bool `toml:"show_disassembly"`
		ColorOutput     bool `toml:"color_output"`
	} `toml:"display"`
}

// DefaultConfig returns a configuration with the CLI's built-in defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.VM.RAMSize = DefaultRAMSize
	cfg.VM.StackSize = DefaultStackSize
	cfg.Display.ShowDisassembly = false
	cfg.Display.ColorOutput = true
	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "litavm")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "litavm")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file.
// A missing file is not an error: the defaults are returned unchanged.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
