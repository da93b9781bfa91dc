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

package channel

import (
	"fmt"
	"path/filepath"
	"testing"
)

// BenchmarkPoll measures a full backlog read at several channel sizes.
func BenchmarkPoll(b *testing.B) {
	benchmarks := []struct {
		name    string
		records int
	}{
		{"Small_100", 100},
		{"Medium_1000", 1000},
		{"Large_10000", 10000},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			path := filepath.Join(b.TempDir(), "chan.jsonl")
			writer := NewWriter[testMsg](path)
			for i := 0; i < bm.records; i++ {
				if err := writer.Append(testMsg{ID: i, Text: fmt.Sprintf("record %d", i)}); err != nil {
					b.Fatal(err)
				}
			}

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				reader := NewReader[testMsg](path)
				records, err := reader.Poll()
				if err != nil {
					b.Fatal(err)
				}
				if len(records) != bm.records {
					b.Fatalf("got %d records, want %d", len(records), bm.records)
				}
			}
		})
	}
}

// BenchmarkAppend measures single-record append cost, which is dominated by
// the open/append/close cycle.
func BenchmarkAppend(b *testing.B) {
	path := filepath.Join(b.TempDir(), "chan.jsonl")
	writer := NewWriter[testMsg](path)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if err := writer.Append(testMsg{ID: i, Text: "benchmark record"}); err != nil {
			b.Fatal(err)
		}
	}
}
