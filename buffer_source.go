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

import "github.com/pkg/errors"

// bufferSource is a Source over a fully materialized buffer. Reads
// return subslices of the buffer without copying; seeking mutates the
// position only, never the buffer.
type bufferSource struct {
	data []byte
	pos  int
}

// NewBufferSource returns a random-access Source over data. The source
// takes ownership of data for its lifetime.
func NewBufferSource(data []byte) Source {
	return &bufferSource{data: data}
}

func (s *bufferSource) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Errorf("negative read count %d", n)
	}
	if n == 0 && s.pos >= len(s.data) {
		return nil, ErrEndOfData
	}
	if len(s.data)-s.pos < n {
		return nil, errors.Wrapf(ErrEndOfData, "reading %d bytes with %d remaining", n, len(s.data)-s.pos)
	}
	out := s.data[s.pos : s.pos+n]
	s.pos += n
	return out, nil
}

func (s *bufferSource) ReadByte() (byte, error) {
	if s.pos >= len(s.data) {
		return 0, ErrEndOfData
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}

func (s *bufferSource) Remaining() ([]byte, error) {
	out := s.data[s.pos:]
	s.pos = len(s.data)
	return out, nil
}

func (s *bufferSource) Position() uint64 {
	return uint64(s.pos)
}

func (s *bufferSource) HasMore() bool {
	return s.pos < len(s.data)
}

func (s *bufferSource) SeekTo(offset uint64) error {
	if offset >= uint64(len(s.data)) {
		return errors.Wrapf(ErrInvalidOffset, "offset %d in %d bytes", offset, len(s.data))
	}
	s.pos = int(offset)
	return nil
}

func (s *bufferSource) SeekBy(delta int64) error {
	target := int64(s.pos) + delta
	if target < 0 || target >= int64(len(s.data)) {
		return errors.Wrapf(ErrInvalidOffset, "relative seek by %d from %d in %d bytes", delta, s.pos, len(s.data))
	}
	s.pos = int(target)
	return nil
}

func (s *bufferSource) SeekFromEnd(offset uint64) error {
	if offset == 0 || offset > uint64(len(s.data)) {
		return errors.Wrapf(ErrInvalidOffset, "offset %d from the end of %d bytes", offset, len(s.data))
	}
	s.pos = len(s.data) - int(offset)
	return nil
}

func (s *bufferSource) Rewind() error {
	s.pos = 0
	return nil
}

func (s *bufferSource) Close() error {
	return nil
}
