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

package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	ipcerrors "github.com/apiarihq/apiari-ipc/internal/errors"
	"github.com/apiarihq/apiari-ipc/internal/shell"
)

// DefaultPath returns the standard location for a named state snapshot:
// ~/.apiari/state/<name>.json. The name is sanitized for filesystem use.
func DefaultPath(name string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home directory is not accessible
		homeDir = "."
	}
	return filepath.Join(homeDir, ".apiari", "state", shell.Sanitize(name)+".json")
}

// Load reads the snapshot at path and decodes it as T.
//
// A missing file is a normal condition, not an error: the zero value of T is
// returned. Any other read failure propagates. Content that exists but does
// not decode as T is a hard error wrapping ErrCorruptState.
func Load[T any](path string) (T, error) {
	var value T

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return value, nil
		}
		return value, fmt.Errorf("failed to read state file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("%w: %s: %v", ipcerrors.ErrCorruptState, path, err)
	}

	return value, nil
}

// Save atomically writes value as a JSON document to path.
// It uses a write-to-temp-and-rename pattern so the target file is always
// either the previous complete snapshot or the new one.
func Save(path string, value any) error {
	// Marshal first so a serialization failure never touches the disk.
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	data = append(data, '\n')

	// Ensure the directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(path), 0o755); mkdirErr != nil {
		return fmt.Errorf("failed to create state directory: %w", mkdirErr)
	}

	// Write to a sibling temp file so the rename stays on one filesystem
	tempFile := path + ".tmp"
	if writeErr := os.WriteFile(tempFile, data, 0o600); writeErr != nil {
		return fmt.Errorf("failed to write temporary state file: %w", writeErr)
	}

	// Sync to ensure data is flushed to disk before the rename commits it
	file, err := os.Open(tempFile)
	if err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to open temp file for sync: %w", err)
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// Atomic rename: the sole commit point
	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Delete removes the snapshot at path. Deleting a snapshot that does not
// exist is not an error.
func Delete(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete state file: %w", err)
	}
	return nil
}
