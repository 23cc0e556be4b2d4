// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package binio

// Source is a readable byte sequence. The two implementations are the
// buffer source (random access, seekable) and the stream source
// (forward only, every seek fails with ErrSeekUnsupported).
//
// Position is monotonically non-decreasing for a stream source and
// bounded within [0, length] for a buffer source.
type Source interface {
	// Read returns exactly n bytes and advances the position by n. It
	// fails with ErrEndOfData if fewer than n bytes remain; in that
	// case any partially gathered bytes are discarded and never
	// observed by the caller. The returned slice is only valid until
	// the next call on the Source.
	Read(n int) ([]byte, error)
	// ReadByte returns the next byte, or ErrEndOfData.
	ReadByte() (byte, error)
	// Remaining returns all bytes from the current position to the end
	// of the source and advances the position to the end. The returned
	// slice is only valid until the next call on the Source.
	Remaining() ([]byte, error)
	// Position returns the number of bytes consumed so far.
	Position() uint64
	// HasMore reports whether at least one more byte can be read.
	HasMore() bool

	// SeekTo sets the position to offset, which must lie in [0, length).
	SeekTo(offset uint64) error
	// SeekBy moves the position by delta; the target must lie in
	// [0, length).
	SeekBy(delta int64) error
	// SeekFromEnd sets the position to length - offset under the same
	// bound check as SeekTo.
	SeekFromEnd(offset uint64) error
	// Rewind sets the position back to the start of the source.
	Rewind() error

	// Close releases the underlying stream, if any.
	Close() error
}
