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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	ipcerrors "github.com/apiarihq/apiari-ipc/internal/errors"
)

type testState struct {
	Counter int    `json:"counter"`
	Name    string `json:"name"`
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "agent.json")

	saved := testState{Counter: 42, Name: "builder"}
	if err := Save(path, saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load[testState](path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != saved {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, saved)
	}
}

func TestLoadMissingReturnsZeroValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.json")

	loaded, err := Load[testState](path)
	if err != nil {
		t.Fatalf("Load of missing file should not error: %v", err)
	}
	if loaded != (testState{}) {
		t.Errorf("Load of missing file = %+v, want zero value", loaded)
	}
}

func TestLoadCorruptFileIsHardError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.json")
	if err := os.WriteFile(path, []byte("not valid json!!!"), 0o600); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	_, err := Load[testState](path)
	if err == nil {
		t.Fatal("Load of corrupt file should fail")
	}
	if !errors.Is(err, ipcerrors.ErrCorruptState) {
		t.Errorf("error should wrap ErrCorruptState, got: %v", err)
	}
}

func TestLoadWrongTypeIsHardError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.json")
	// Valid JSON, but not decodable as testState.
	if err := os.WriteFile(path, []byte(`{"counter":"not a number"}`), 0o600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := Load[testState](path)
	if !errors.Is(err, ipcerrors.ErrCorruptState) {
		t.Errorf("error should wrap ErrCorruptState, got: %v", err)
	}
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c", "agent.json")

	if err := Save(path, testState{Counter: 1, Name: "nested"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load[testState](path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Name != "nested" {
		t.Errorf("Name = %q, want %q", loaded.Name, "nested")
	}
}

func TestSaveRemovesTempFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "agent.json")

	if err := Save(path, testState{Counter: 99}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("target file should exist: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file should have been renamed away")
	}
}

func TestSaveOverwritesCompletely(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.json")

	if err := Save(path, testState{Counter: 1, Name: "first"}); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := Save(path, testState{Counter: 2, Name: "second"}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	loaded, err := Load[testState](path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Counter != 2 || loaded.Name != "second" {
		t.Errorf("loaded = %+v, want the second snapshot", loaded)
	}
}

func TestSaveUnmarshalableValueTouchesNothing(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "agent.json")

	if err := Save(path, testState{Counter: 7, Name: "intact"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Channels cannot be marshaled to JSON.
	if err := Save(path, map[string]any{"ch": make(chan int)}); err == nil {
		t.Fatal("Save of unmarshalable value should fail")
	}

	// The previous snapshot must be untouched and no temp file left behind.
	loaded, err := Load[testState](path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Counter != 7 {
		t.Errorf("previous snapshot damaged: %+v", loaded)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file should not exist after failed save")
	}
}

func TestUncommittedTempWriteLeavesTargetIntact(t *testing.T) {
	// Simulates a crash between the temp-file write and the rename by
	// performing only the first half of the save sequence.
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "agent.json")

	if err := Save(path, testState{Counter: 1, Name: "committed"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := os.WriteFile(path+".tmp", []byte(`{"counter":2,"name":"half"}`), 0o600); err != nil {
		t.Fatalf("Failed to stage temp file: %v", err)
	}

	loaded, err := Load[testState](path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Counter != 1 || loaded.Name != "committed" {
		t.Errorf("target changed before rename: %+v", loaded)
	}
}

func TestDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.json")

	if err := Save(path, testState{Counter: 1}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := Delete(path); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should be gone after Delete")
	}

	// Deleting again is not an error.
	if err := Delete(path); err != nil {
		t.Errorf("Delete of missing file should not error: %v", err)
	}
}

func TestTailCursorRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cursor.json")

	saved := TailCursor{
		Channel:          "build-events",
		File:             "/tmp/channels/build-events.jsonl",
		Offset:           4096,
		RecordsDelivered: 17,
		LastPollTime:     time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
	}
	if err := Save(path, saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load[TailCursor](path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Offset != saved.Offset {
		t.Errorf("Offset = %d, want %d", loaded.Offset, saved.Offset)
	}
	if loaded.Channel != saved.Channel {
		t.Errorf("Channel = %q, want %q", loaded.Channel, saved.Channel)
	}
	if !loaded.LastPollTime.Equal(saved.LastPollTime) {
		t.Errorf("LastPollTime = %v, want %v", loaded.LastPollTime, saved.LastPollTime)
	}
}

func TestDefaultPath(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantSuffix string
	}{
		{
			name:       "simple name",
			input:      "builder",
			wantSuffix: filepath.Join(".apiari", "state", "builder.json"),
		},
		{
			name:       "name needing sanitization",
			input:      "Build Events/v2",
			wantSuffix: filepath.Join(".apiari", "state", "build-events-v2.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultPath(tt.input)
			if !strings.HasSuffix(got, tt.wantSuffix) {
				t.Errorf("DefaultPath(%q) = %q, want suffix %q", tt.input, got, tt.wantSuffix)
			}
		})
	}
}
