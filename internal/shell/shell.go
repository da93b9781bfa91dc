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

// Package shell provides quoting and sanitization helpers for strings that
// cross into shell commands or filesystem names. Agents frequently embed
// user-provided text in both places, so these helpers centralize the two
// escaping rules the rest of the toolkit relies on.
package shell

import (
	"strings"
	"unicode"
)

// maxSanitizedLen caps sanitized names so they stay usable as branch names
// and directory entries on common filesystems.
const maxSanitizedLen = 40

// Quote wraps s in single quotes for safe embedding in a POSIX shell command.
// Single quotes inside the string are handled with the '\'' idiom: the current
// single-quoted segment is closed, an escaped quote is emitted, and a new
// single-quoted segment is opened.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Sanitize converts s into a slug suitable for branch names, directory names,
// and state-file names. It lowercases the input, replaces every
// non-alphanumeric rune with a hyphen, strips leading and trailing hyphens,
// and truncates the result to 40 runes.
func Sanitize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}

	trimmed := strings.Trim(b.String(), "-")
	runes := []rune(trimmed)
	if len(runes) > maxSanitizedLen {
		runes = runes[:maxSanitizedLen]
	}
	return string(runes)
}
