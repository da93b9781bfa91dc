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

package shell

import (
	"strings"
	"testing"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple word",
			input: "hello",
			want:  "'hello'",
		},
		{
			name:  "with spaces",
			input: "hello world",
			want:  "'hello world'",
		},
		{
			name:  "with single quote",
			input: "it's fine",
			want:  `'it'\''s fine'`,
		},
		{
			name:  "empty string",
			input: "",
			want:  "''",
		},
		{
			name:  "only quotes",
			input: "''",
			want:  `''\'''\'''`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quote(tt.input); got != tt.want {
				t.Errorf("Quote(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "basic phrase",
			input: "Fix the bug",
			want:  "fix-the-bug",
		},
		{
			name:  "special characters",
			input: "add user auth (v2)",
			want:  "add-user-auth--v2",
		},
		{
			name:  "leading and trailing hyphens stripped",
			input: "--hello--",
			want:  "hello",
		},
		{
			name:  "surrounding whitespace",
			input: "  hello world  ",
			want:  "hello-world",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeTruncatesTo40(t *testing.T) {
	long := strings.Repeat("a", 50)
	if got := Sanitize(long); len(got) != 40 {
		t.Errorf("Sanitize(long) length = %d, want 40", len(got))
	}
}
