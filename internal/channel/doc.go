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

// Package channel implements file-backed message channels in NDJSON
// (Newline Delimited JSON) format. A channel is a single append-only file:
// writers append one JSON record per line, and readers poll the file with a
// byte cursor so each poll yields only the records appended since the
// previous one. This makes a plain file usable as a lightweight message
// queue between independent processes on the same machine.
//
// Both halves are generic over the record type; any value that marshals to a
// single JSON line works. Readers and writers hold no file handles between
// calls — every operation opens, acts, and closes — so any number of
// processes can share a channel with only the guarantees the filesystem's
// append semantics provide. Ordering between concurrent writers is whatever
// the OS interleaves; records from a single writer always appear in append
// order.
//
// A reader never fails because the channel file does not exist yet (a
// channel with no writer is a normal state) and, by default, silently skips
// lines that do not decode as the record type, favoring liveness over strict
// validation. Set Reader.DecodeErrorFunc to observe or reject malformed
// lines instead.
package channel
