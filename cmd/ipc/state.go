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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/apiarihq/apiari-ipc/internal/config"
	"github.com/apiarihq/apiari-ipc/internal/state"
	"github.com/spf13/cobra"
)

// newStateCommand builds the state command group.
func newStateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect and reset persisted tail cursors",
	}

	cmd.AddCommand(newStateShowCommand())
	cmd.AddCommand(newStateResetCommand())

	return cmd
}

func newStateShowCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show <cursor>",
		Short: "Print a persisted cursor as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStateShow(args[0], configPath, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: standard locations)")

	return cmd
}

func newStateResetCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "reset <cursor>",
		Short: "Delete a persisted cursor so the next tail starts fresh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStateReset(args[0], configPath, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: standard locations)")

	return cmd
}

// cursorPath resolves a cursor name through configuration.
func cursorPath(configPath, name string) (string, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return "", err
	}
	if err := cfg.Validate(); err != nil {
		return "", fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg.CursorPath(name), nil
}

// runStateShow executes the state show command
func runStateShow(name, configPath string, stdout, stderr io.Writer) error {
	path, err := cursorPath(configPath, name)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(stderr, "No cursor named %q found\n", name)
		return nil
	}

	cursor, err := state.Load[state.TailCursor](path)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cursor)
}

// runStateReset executes the state reset command
func runStateReset(name, configPath string, stderr io.Writer) error {
	path, err := cursorPath(configPath, name)
	if err != nil {
		return err
	}

	if err := state.Delete(path); err != nil {
		return err
	}

	fmt.Fprintf(stderr, "Cursor %q reset\n", name)
	return nil
}
