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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/apiarihq/apiari-ipc/internal/channel"
	"github.com/apiarihq/apiari-ipc/internal/message"
	"github.com/apiarihq/apiari-ipc/internal/state"
	"github.com/spf13/cobra"
)

// tailOptions collects the flags of the tail command.
type tailOptions struct {
	configPath string
	cursorName string
	follow     bool
	fromStart  bool
	interval   time.Duration
}

// newTailCommand builds the tail command.
func newTailCommand() *cobra.Command {
	var opts tailOptions

	cmd := &cobra.Command{
		Use:   "tail <channel>",
		Short: "Read messages from a channel as NDJSON",
		Long: `Read messages from a channel and print them to stdout, one JSON object
per line.

By default only messages appended after the command starts are shown.
Use --from-start to replay the whole backlog, or --cursor <name> to resume
from a persisted byte offset: the offset is saved after every delivery, so
a later invocation with the same cursor continues exactly where this one
stopped, without replaying or missing messages.

With --follow the command keeps polling until interrupted; otherwise it
performs a single poll and exits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTail(cmd.Context(), args[0], opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file (default: standard locations)")
	cmd.Flags().StringVar(&opts.cursorName, "cursor", "", "Persist the read offset under this cursor name and resume from it")
	cmd.Flags().BoolVar(&opts.follow, "follow", false, "Keep polling for new messages until interrupted")
	cmd.Flags().BoolVar(&opts.fromStart, "from-start", false, "Start from the beginning of the channel instead of the end")
	cmd.Flags().DurationVar(&opts.interval, "interval", 0, "Poll interval in follow mode (default: from config)")

	return cmd
}

// runTail executes the tail command
func runTail(ctx context.Context, name string, opts tailOptions, stdout io.Writer) error {
	file, cfg, err := resolveChannel(opts.configPath, name)
	if err != nil {
		return err
	}

	reader := channel.NewReader[message.Envelope](file)

	var (
		cursorFile string
		cursor     state.TailCursor
	)
	switch {
	case opts.cursorName != "":
		cursorFile = cfg.CursorPath(opts.cursorName)
		cursor, err = state.Load[state.TailCursor](cursorFile)
		if err != nil {
			return err
		}
		reader.SetOffset(cursor.Offset)
	case opts.fromStart:
		// Cursor stays at 0: replay the whole backlog.
	default:
		if _, err := reader.SkipToEnd(); err != nil {
			return err
		}
	}

	interval := opts.interval
	if interval <= 0 {
		interval = cfg.PollEvery()
	}

	encoder := json.NewEncoder(stdout)

	for {
		records, err := reader.Poll()
		if err != nil {
			return err
		}
		for _, record := range records {
			if err := encoder.Encode(record); err != nil {
				return fmt.Errorf("failed to write record: %w", err)
			}
		}

		if cursorFile != "" && (len(records) > 0 || cursor.Offset != reader.Offset()) {
			cursor = state.TailCursor{
				Channel:          name,
				File:             file,
				Offset:           reader.Offset(),
				RecordsDelivered: cursor.RecordsDelivered + len(records),
				LastPollTime:     time.Now().UTC(),
			}
			if err := state.Save(cursorFile, cursor); err != nil {
				return err
			}
		}

		if !opts.follow {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}
}
