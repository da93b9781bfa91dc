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
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/apiarihq/apiari-ipc/internal/channel"
	ipcerrors "github.com/apiarihq/apiari-ipc/internal/errors"
	"github.com/apiarihq/apiari-ipc/internal/message"
	"github.com/spf13/cobra"
)

// newSendCommand builds the send command.
func newSendCommand() *cobra.Command {
	var (
		configPath string
		kind       string
		data       string
	)

	cmd := &cobra.Command{
		Use:   "send <channel>",
		Short: "Append a message to a channel",
		Long: `Append a message to a channel as one NDJSON line.

The payload is taken from the --data flag, or read from stdin when the flag
is not set. It must be a single JSON value (or empty for a signal-style
message with no body). The payload is wrapped in an envelope carrying a
message ID, kind, and timestamp.

The channel file and its parent directories are created on first send.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(args[0], configPath, kind, data, cmd.InOrStdin(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: standard locations)")
	cmd.Flags().StringVar(&kind, "kind", "", "Message kind for consumer-side dispatch (default: \"message\")")
	cmd.Flags().StringVar(&data, "data", "", "Message payload as JSON (default: read from stdin)")

	return cmd
}

// runSend executes the send command
func runSend(name, configPath, kind, data string, stdin io.Reader, stderr io.Writer) error {
	payload := []byte(data)
	if data == "" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read payload from stdin: %w", err)
		}
		payload = bytes.TrimSpace(raw)
	}

	if len(payload) > 0 && !json.Valid(payload) {
		return fmt.Errorf("%w: %.60s", ipcerrors.ErrInvalidPayload, payload)
	}

	file, _, err := resolveChannel(configPath, name)
	if err != nil {
		return err
	}

	env := message.New(kind, payload)
	writer := channel.NewWriter[message.Envelope](file)
	if err := writer.Append(env); err != nil {
		return err
	}

	fmt.Fprintf(stderr, "Sent message %s to %s\n", env.ID, name)
	return nil
}
