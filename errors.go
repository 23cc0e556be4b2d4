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

import "github.com/google/binio/fault"

const (
	// ErrEndOfData is returned when a read requests more bytes than the
	// source has left, or a zero-byte read hits an exhausted source.
	ErrEndOfData = fault.Const("end of data")

	// ErrInvalidOffset is returned when a seek target falls outside the
	// bounds of a random-access source.
	ErrInvalidOffset = fault.Const("seek offset out of range")

	// ErrSeekUnsupported is returned by every seek and rewind on a
	// sequential source. Streams are single pass.
	ErrSeekUnsupported = fault.Const("seek is not supported on a sequential source")

	// ErrInvalidByteString is returned by Writer.ByteString when the
	// input is not a well-formed hex digest.
	ErrInvalidByteString = fault.Const("malformed byte string")

	// ErrSinkClosed is returned when writing to a sink that has already
	// been finalized.
	ErrSinkClosed = fault.Const("sink is closed")

	// ErrSinkNotClosed is returned when retrieving bytes from a memory
	// sink that has not been finalized yet.
	ErrSinkNotClosed = fault.Const("sink has not been closed")
)
