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

// Package main implements the apiari-ipc command-line interface.
// This tool exchanges messages between local agent processes over
// file-backed NDJSON channels and inspects the state snapshots those
// agents persist.
//
// The CLI supports:
//   - Appending messages to a channel (from a flag or stdin)
//   - Tailing a channel once or continuously with --follow
//   - Resumable tailing via persisted cursors (--cursor)
//   - Inspecting and resetting persisted cursors
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	apiari-ipc send <channel> [flags]
//	apiari-ipc tail <channel> [flags]
//	apiari-ipc state show|reset <cursor>
//
// Example:
//
//	apiari-ipc send build-events --kind task --data '{"step":"compile"}'
//	apiari-ipc tail build-events --follow --cursor builder
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Corrupt state or invalid input data
//   - 3: Filesystem error (permission denied, disk full)
package main
