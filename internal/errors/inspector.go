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
	"os"
	"strings"
)

// Inspector classifies low-level filesystem errors so callers can map them
// to exit codes without depending on platform-specific error strings.
type Inspector interface {
	// IsPermissionError returns true if the error represents a permission or access denial.
	IsPermissionError(err error) bool

	// IsDiskFullError returns true if the error represents disk or quota exhaustion.
	IsDiskFullError(err error) bool

	// IsNotExistError returns true if the error represents a missing file or directory.
	IsNotExistError(err error) bool
}

// FilesystemInspector implements the Inspector interface for errors returned
// by os-level file operations.
type FilesystemInspector struct{}

// NewInspector creates a new FilesystemInspector.
func NewInspector() Inspector {
	return &FilesystemInspector{}
}

// IsPermissionError checks if the error is a permission or access error.
func (i *FilesystemInspector) IsPermissionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, os.ErrPermission) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "permission denied") ||
		strings.Contains(errStr, "access is denied") ||
		strings.Contains(errStr, "operation not permitted")
}

// IsDiskFullError checks if the error indicates the disk or a quota is exhausted.
func (i *FilesystemInspector) IsDiskFullError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "no space left") ||
		strings.Contains(errStr, "disk full") ||
		strings.Contains(errStr, "quota exceeded") ||
		strings.Contains(errStr, "file too large")
}

// IsNotExistError checks if the error indicates a missing file or directory.
func (i *FilesystemInspector) IsNotExistError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, os.ErrNotExist) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "no such file or directory") ||
		strings.Contains(errStr, "cannot find the file")
}
