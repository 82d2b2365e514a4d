package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat curator configuration stored in
// ~/.curator/config.json.
type Config struct {
	Version string `json:"version"`
	Profile string `json:"profile,omitempty"` // active profile name, informational
	DBPath  string `json:"db_path,omitempty"` // overrides the default database location
}

// DefaultConfig returns the config written by curator init.
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Profile: "default",
	}
}

// Dir returns the curator dot directory under the user's home.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".curator"), nil
}

// LoadConfig reads config.json from the given directory.
// Returns an error if no config is found; callers decide whether
// a missing config is fatal.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to the given directory, creating it if needed.
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
