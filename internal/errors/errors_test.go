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

package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{ErrCorruptState, ErrInvalidPayload}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v should not match %v", a, b)
			}
		}
	}
}

func TestSentinelWrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: /tmp/agent.json: invalid JSON", ErrCorruptState)
	if !errors.Is(wrapped, ErrCorruptState) {
		t.Errorf("wrapped error should match ErrCorruptState: %v", wrapped)
	}
}

func TestIsPermissionError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "os.ErrPermission",
			err:  os.ErrPermission,
			want: true,
		},
		{
			name: "wrapped os.ErrPermission",
			err:  fmt.Errorf("failed to open channel file: %w", os.ErrPermission),
			want: true,
		},
		{
			name: "permission denied string",
			err:  errors.New("open /var/log/agent.jsonl: permission denied"),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("something else went wrong"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsPermissionError(tt.err); got != tt.want {
				t.Errorf("IsPermissionError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsDiskFullError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "no space left",
			err:  errors.New("write /tmp/chan.jsonl: no space left on device"),
			want: true,
		},
		{
			name: "quota exceeded",
			err:  errors.New("write: disk quota exceeded"),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsDiskFullError(tt.err); got != tt.want {
				t.Errorf("IsDiskFullError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsNotExistError(t *testing.T) {
	inspector := NewInspector()

	if !inspector.IsNotExistError(os.ErrNotExist) {
		t.Error("os.ErrNotExist should be classified as not-exist")
	}
	if !inspector.IsNotExistError(fmt.Errorf("stat: %w", os.ErrNotExist)) {
		t.Error("wrapped os.ErrNotExist should be classified as not-exist")
	}
	if inspector.IsNotExistError(nil) {
		t.Error("nil should not be classified as not-exist")
	}
}
