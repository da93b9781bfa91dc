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

// Package message defines the envelope record that agents exchange over
// channels. The channel primitives themselves are generic over any
// JSON-serializable type; Envelope is the default record the CLI and most
// agents use, carrying an opaque payload plus routing metadata.
package message

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DefaultKind is used when a sender does not specify a message kind.
const DefaultKind = "message"

// Envelope is a single message on a channel. The payload is kept as raw JSON
// so the envelope never needs to know the payload's schema; consumers decode
// it themselves based on Kind.
type Envelope struct {
	// ID uniquely identifies the message. Useful for deduplication and
	// correlating replies across channels.
	ID string `json:"id"`

	// Kind names the message type so consumers can dispatch without
	// decoding the payload.
	Kind string `json:"kind"`

	// Payload is the message body as raw JSON. May be empty for
	// signal-style messages that carry no data.
	Payload json.RawMessage `json:"payload,omitempty"`

	// SentAt records when the envelope was created, in UTC.
	SentAt time.Time `json:"sent_at"`
}

// New creates an envelope around the given payload, stamping a fresh ID and
// the current UTC time. An empty kind falls back to DefaultKind. The payload
// is used as-is; callers are responsible for passing valid JSON (or nil).
func New(kind string, payload []byte) Envelope {
	if kind == "" {
		kind = DefaultKind
	}
	return Envelope{
		ID:      uuid.NewString(),
		Kind:    kind,
		Payload: json.RawMessage(payload),
		SentAt:  time.Now().UTC(),
	}
}
