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

package channel

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Writer appends records to a channel file as NDJSON lines. It creates the
// file and any missing parent directories on first append, so constructing a
// writer for a path that does not exist yet is always valid.
//
// Each append is written as a single OS-level append of one complete line,
// so readers never observe a partial record from a finished append. Writer
// does not serialize appends across instances or processes; it only guards
// its own record count.
type Writer[T any] struct {
	mu    sync.Mutex
	path  string
	count int
}

// NewWriter creates a writer bound to the given channel file path.
// The path does not need to exist yet.
func NewWriter[T any](path string) *Writer[T] {
	return &Writer[T]{path: path}
}

// Path returns the channel file path this writer appends to.
func (w *Writer[T]) Path() string {
	return w.path
}

// Count returns the number of records this writer instance has appended.
func (w *Writer[T]) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Append serializes record to one JSON line and appends it to the channel
// file, creating the file and parent directories if needed. The line and its
// trailing newline are written in a single Write call against a file opened
// with O_APPEND, so the record lands as one contiguous append.
func (w *Writer[T]) Append(record T) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	line := append(data, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()

	if dir := filepath.Dir(w.path); dir != "." {
		if mkdirErr := os.MkdirAll(dir, 0o755); mkdirErr != nil {
			return fmt.Errorf("failed to create channel directory: %w", mkdirErr)
		}
	}

	file, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open channel file: %w", err)
	}

	if _, err := file.Write(line); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to append record: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close channel file: %w", err)
	}

	w.count++
	return nil
}
