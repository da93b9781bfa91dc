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

package main

import (
	"fmt"
	"strings"

	"github.com/apiarihq/apiari-ipc/internal/config"
)

// resolveChannel loads configuration and resolves a channel name to its
// backing file path. Shared by the send and tail commands.
func resolveChannel(configPath, name string) (string, *config.Config, error) {
	if strings.TrimSpace(name) == "" {
		return "", nil, fmt.Errorf("channel name cannot be empty")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return "", nil, err
	}
	if err := cfg.Validate(); err != nil {
		return "", nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg.ChannelFile(name), cfg, nil
}
