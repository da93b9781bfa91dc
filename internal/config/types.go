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

// Package config types define the configuration structures used by the
// apiari-ipc CLI. These types represent settings that can be loaded from
// YAML configuration files or environment variables.
package config

import (
	"path/filepath"
	"time"

	"github.com/apiarihq/apiari-ipc/internal/shell"
)

// Config represents the complete configuration for the apiari-ipc CLI.
// It consolidates settings from the config file and environment variables
// into a single structure the commands read from.
type Config struct {
	Defaults DefaultsConfig           `yaml:"defaults"`
	Channels map[string]ChannelConfig `yaml:"channels"`
}

// DefaultsConfig contains settings that apply to every channel unless a
// channel-specific override exists.
type DefaultsConfig struct {
	// BaseDir is the directory where channel files live. A channel named
	// "build-events" resolves to <base_dir>/build-events.jsonl.
	BaseDir string `yaml:"base_dir"`

	// StateDir is the directory where tail cursors and other snapshots
	// are persisted.
	StateDir string `yaml:"state_dir"`

	// PollInterval is the delay between polls in follow mode, as a Go
	// duration string such as "500ms" or "2s".
	PollInterval string `yaml:"poll_interval"`
}

// ChannelConfig contains channel-specific overrides. Currently only the
// backing file can be overridden, which lets a channel live outside the
// base directory (e.g. on a shared volume).
type ChannelConfig struct {
	File string `yaml:"file"`
}

// fallbackPollInterval is used when no valid poll interval is configured.
const fallbackPollInterval = 500 * time.Millisecond

// DefaultConfig returns a Config with sensible defaults: channels and state
// under ~/.apiari, polling twice a second in follow mode.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			BaseDir:      "~/.apiari/channels",
			StateDir:     "~/.apiari/state",
			PollInterval: "500ms",
		},
		Channels: make(map[string]ChannelConfig),
	}
}

// ChannelFile resolves a channel name to its backing file path. A configured
// per-channel file wins; otherwise the name is sanitized and placed under
// the base directory with a .jsonl extension.
func (c *Config) ChannelFile(name string) string {
	if ch, ok := c.Channels[name]; ok && ch.File != "" {
		return expandPath(ch.File)
	}
	return filepath.Join(expandPath(c.Defaults.BaseDir), shell.Sanitize(name)+".jsonl")
}

// CursorPath resolves a cursor name to its snapshot file under the state
// directory.
func (c *Config) CursorPath(name string) string {
	return filepath.Join(expandPath(c.Defaults.StateDir), shell.Sanitize(name)+".json")
}

// PollEvery returns the configured follow-mode poll interval, falling back
// to 500ms if the configured value is missing or unparsable. Validate
// reports unparsable values as errors; this accessor stays total so callers
// after validation never need to re-handle the error.
func (c *Config) PollEvery() time.Duration {
	d, err := time.ParseDuration(c.Defaults.PollInterval)
	if err != nil || d <= 0 {
		return fallbackPollInterval
	}
	return d
}
