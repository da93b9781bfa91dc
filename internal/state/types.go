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
	"time"
)

// TailCursor is the snapshot a tailing consumer persists between runs. It
// records how far into a channel file the consumer has read so a later run
// can resume exactly where the previous one stopped, without replaying or
// missing messages.
type TailCursor struct {
	// Channel is the logical channel name the cursor belongs to.
	Channel string `json:"channel"`

	// File is the resolved channel file path at the time of the last poll.
	// Recorded for debugging; the offset is only meaningful for this file.
	File string `json:"file"`

	// Offset is the byte position of the next unread byte in the channel
	// file. Feed it back into a reader to resume.
	Offset uint64 `json:"offset"`

	// RecordsDelivered counts records delivered across all runs that used
	// this cursor. Provides a cheap consistency signal when debugging.
	RecordsDelivered int `json:"records_delivered"`

	// LastPollTime records when the cursor was last advanced.
	LastPollTime time.Time `json:"last_poll_time"`
}
