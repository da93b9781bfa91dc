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
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Reader polls a channel file with a byte cursor, delivering each record at
// most once per reader instance. The cursor always sits at the byte position
// of the next unread line; everything before it has been delivered or
// explicitly skipped.
//
// Readers are independent: any number of them can poll the same file, each
// with its own cursor. A Reader is not safe for concurrent use by multiple
// goroutines.
type Reader[T any] struct {
	path   string
	offset uint64

	// DecodeErrorFunc, when set, is invoked for every line that fails to
	// decode as T, with the offending line and the decode error. Returning
	// a non-nil error aborts the poll with that error; returning nil skips
	// the line and continues. When unset, malformed lines are silently
	// skipped — the default favors liveness, since channels shared by
	// multiple writers can transiently contain lines of a foreign schema.
	// The cursor advances past malformed lines either way.
	DecodeErrorFunc func(line []byte, err error) error
}

// NewReader creates a reader for the given channel file, starting at byte
// offset 0 so the first poll reads the file from the beginning.
func NewReader[T any](path string) *Reader[T] {
	return &Reader[T]{path: path}
}

// NewReaderAt creates a reader that resumes from a previously persisted byte
// offset, typically one saved through the state package.
func NewReaderAt[T any](path string, offset uint64) *Reader[T] {
	return &Reader[T]{path: path, offset: offset}
}

// Path returns the channel file path this reader polls.
func (r *Reader[T]) Path() string {
	return r.path
}

// Offset returns the cursor's current byte position. Persist it to resume
// reading in a later process via NewReaderAt.
func (r *Reader[T]) Offset() uint64 {
	return r.offset
}

// SetOffset repositions the cursor, e.g. to replay from an earlier point or
// to resynchronize after the file was truncated externally.
func (r *Reader[T]) SetOffset(offset uint64) {
	r.offset = offset
}

// SkipToEnd moves the cursor to the current end of file without delivering
// anything, so subsequent polls only see future records. Returns the new
// offset; a missing file resets the cursor to 0 without error.
func (r *Reader[T]) SkipToEnd() (uint64, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.offset = 0
			return 0, nil
		}
		return 0, fmt.Errorf("failed to stat channel file: %w", err)
	}
	r.offset = uint64(info.Size())
	return r.offset, nil
}

// Poll reads every complete line appended since the last poll and returns
// the records in append order, oldest first.
//
// A missing channel file yields an empty result, not an error. A trailing
// line with no newline yet is a write in progress: it is left unconsumed and
// will be delivered by a later poll once its newline arrives. Blank lines
// are skipped. Malformed lines are handled per DecodeErrorFunc.
func (r *Reader[T]) Poll() ([]T, error) {
	file, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open channel file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat channel file: %w", err)
	}
	if uint64(info.Size()) <= r.offset {
		return nil, nil
	}

	if _, err := file.Seek(int64(r.offset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek channel file: %w", err)
	}

	reader := bufio.NewReader(file)
	var records []T

	for {
		line, err := reader.ReadBytes('\n')
		if err == io.EOF {
			// Trailing bytes without a newline: a record still being
			// appended. Leave the cursor before them for the next poll.
			break
		}
		if err != nil {
			return records, fmt.Errorf("failed to read channel file: %w", err)
		}

		r.offset += uint64(len(line))

		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 {
			continue
		}

		var record T
		if decodeErr := json.Unmarshal(trimmed, &record); decodeErr != nil {
			if r.DecodeErrorFunc != nil {
				if handlerErr := r.DecodeErrorFunc(trimmed, decodeErr); handlerErr != nil {
					return records, handlerErr
				}
			}
			continue
		}
		records = append(records, record)
	}

	return records, nil
}
