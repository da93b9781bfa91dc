// Copyright 2026 Apiari HQ, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for the apiari-ipc CLI
// with support for multiple configuration sources.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// The package supports YAML configuration files and provides automatic
// discovery of configuration in standard locations.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .apiari-ipc.yaml (current directory)
//   - .apiari-ipc.yml (current directory)
//   - ~/.apiari/config.yaml
//   - ~/.apiari/config.yml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides. Path expansion (~ and environment variables) is
// performed on directory paths.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	// Try to load config file if path is provided
	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		// Try default locations
		defaultPaths := []string{
			".apiari-ipc.yaml",
			".apiari-ipc.yml",
			filepath.Join(os.Getenv("HOME"), ".apiari", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".apiari", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Expand paths
	cfg.Defaults.BaseDir = expandPath(cfg.Defaults.BaseDir)
	cfg.Defaults.StateDir = expandPath(cfg.Defaults.StateDir)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if baseDir := os.Getenv("APIARI_BASE_DIR"); baseDir != "" {
		cfg.Defaults.BaseDir = baseDir
	}
	if stateDir := os.Getenv("APIARI_STATE_DIR"); stateDir != "" {
		cfg.Defaults.StateDir = stateDir
	}
	if interval := os.Getenv("APIARI_POLL_INTERVAL"); interval != "" {
		if _, err := time.ParseDuration(interval); err == nil {
			cfg.Defaults.PollInterval = interval
		}
	}
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// Validate checks if the configuration contains valid values. It ensures
// the directories are set, the poll interval parses as a positive duration,
// and channel overrides are not empty. This should be called after loading
// configuration to catch invalid settings early.
func (c *Config) Validate() error {
	if c.Defaults.BaseDir == "" {
		return fmt.Errorf("base directory cannot be empty")
	}
	if c.Defaults.StateDir == "" {
		return fmt.Errorf("state directory cannot be empty")
	}
	d, err := time.ParseDuration(c.Defaults.PollInterval)
	if err != nil {
		return fmt.Errorf("invalid poll interval %q: %w", c.Defaults.PollInterval, err)
	}
	if d <= 0 {
		return fmt.Errorf("poll interval must be positive, got: %s", d)
	}
	for name, ch := range c.Channels {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("channel name cannot be empty")
		}
		if ch.File != "" && strings.TrimSpace(ch.File) == "" {
			return fmt.Errorf("channel %q has a blank file override", name)
		}
	}
	return nil
}
