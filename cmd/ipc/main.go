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
	"errors"
	"fmt"
	"os"

	ipcerrors "github.com/apiarihq/apiari-ipc/internal/errors"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "apiari-ipc",
		Short: "Exchange messages between local agents over file-backed channels",
		Long: `apiari-ipc coordinates independent agent processes on one machine through
plain files: append-only NDJSON channels for transient messages and atomic
JSON snapshots for durable state such as read cursors. No daemon, no broker,
no network - any process that can reach the filesystem can participate.`,
		Version:       version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.AddCommand(newSendCommand())
	rootCmd.AddCommand(newTailCommand())
	rootCmd.AddCommand(newStateCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, ipcerrors.ErrCorruptState) ||
		errors.Is(err, ipcerrors.ErrInvalidPayload) {
		return 2 // Bad data: corrupt snapshot or unusable input
	}

	inspector := ipcerrors.NewInspector()
	if inspector.IsPermissionError(err) || inspector.IsDiskFullError(err) {
		return 3 // Filesystem errors
	}

	return 1 // General error
}
