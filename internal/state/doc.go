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

// Package state provides atomic persistence of JSON state snapshots.
//
// A snapshot file holds exactly one typed value as a single JSON document.
// Every save is atomic: the new document is written to a .tmp sibling in the
// same directory, synced, and then renamed over the target. The rename is the
// sole commit point, so a crash at any moment leaves the target either as the
// previous complete snapshot or the new complete snapshot, never a partial
// write. The rename is only atomic when the temp file and target live on the
// same filesystem; because the temp file is a sibling of the target this
// holds unless the target directory itself straddles a mount boundary, which
// is a deployment constraint rather than something this package detects.
//
// Loading a missing file is not an error and yields the type's zero value.
// Loading a file that exists but does not decode is a hard error wrapping
// errors.ErrCorruptState: a corrupt snapshot is never silently replaced by a
// default, since the file is the sole source of truth for its value.
//
// Example usage:
//
//	cursor, err := state.Load[state.TailCursor](path)
//	if err != nil {
//	    return err
//	}
//	cursor.Offset = reader.Offset()
//	err = state.Save(path, cursor)
package state
