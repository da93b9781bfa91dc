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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrCorruptState indicates a state snapshot exists on disk but does not
	// decode as the expected type. This is never silently recovered from,
	// since the snapshot is the sole source of truth for its value.
	// Maps to exit code 2.
	ErrCorruptState = errors.New("state file is corrupted")

	// ErrInvalidPayload indicates a message payload was not valid JSON and
	// cannot be placed on a channel.
	// Maps to exit code 2.
	ErrInvalidPayload = errors.New("payload is not valid JSON")
)
