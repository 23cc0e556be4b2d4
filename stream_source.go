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

import (
	"io"

	"github.com/pkg/errors"
)

// streamSource is a Source over a pull-based stream. The underlying
// reader may deliver fewer bytes than requested per call, so counted
// reads accumulate into a reusable scratch buffer until the request is
// satisfied or the stream ends. The scratch buffer grows to the
// largest request seen and never shrinks.
type streamSource struct {
	r       io.Reader
	pos     uint64
	scratch []byte
	// One byte of lookahead so HasMore can probe the stream without
	// disturbing the next Read.
	hold   byte
	held   bool
	closed bool
}

// NewStreamSource returns a forward-only Source over r. If r is also
// an io.Closer, closing the source closes it.
func NewStreamSource(r io.Reader) Source {
	return &streamSource{r: r}
}

// ensure resizes scratch to exactly n bytes, reallocating only when the
// capacity seen so far is too small.
func (s *streamSource) ensure(n int) {
	if n <= cap(s.scratch) {
		s.scratch = s.scratch[:n]
		return
	}
	s.scratch = make([]byte, n)
}

func (s *streamSource) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Errorf("negative read count %d", n)
	}
	if n == 0 {
		if !s.HasMore() {
			return nil, ErrEndOfData
		}
		return []byte{}, nil
	}
	s.ensure(n)
	filled := 0
	if s.held {
		s.scratch[0] = s.hold
		s.held = false
		filled = 1
	}
	m, err := io.ReadFull(s.r, s.scratch[filled:])
	s.pos += uint64(filled + m)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, errors.Wrapf(ErrEndOfData, "reading %d bytes, stream ended after %d", n, filled+m)
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading from stream")
	}
	return s.scratch, nil
}

func (s *streamSource) ReadByte() (byte, error) {
	if s.held {
		s.held = false
		s.pos++
		return s.hold, nil
	}
	var one [1]byte
	if _, err := io.ReadFull(s.r, one[:]); err != nil {
		if err == io.EOF {
			return 0, ErrEndOfData
		}
		return 0, errors.Wrap(err, "reading from stream")
	}
	s.pos++
	return one[0], nil
}

func (s *streamSource) Remaining() ([]byte, error) {
	var out []byte
	if s.held {
		out = append(out, s.hold)
		s.held = false
	}
	rest, err := io.ReadAll(s.r)
	out = append(out, rest...)
	s.pos += uint64(len(out))
	if err != nil {
		return nil, errors.Wrap(err, "reading from stream")
	}
	return out, nil
}

func (s *streamSource) Position() uint64 {
	return s.pos
}

func (s *streamSource) HasMore() bool {
	if s.held {
		return true
	}
	var one [1]byte
	if _, err := io.ReadFull(s.r, one[:]); err != nil {
		return false
	}
	s.hold = one[0]
	s.held = true
	return true
}

func (s *streamSource) SeekTo(offset uint64) error { return ErrSeekUnsupported }

func (s *streamSource) SeekBy(delta int64) error { return ErrSeekUnsupported }

func (s *streamSource) SeekFromEnd(offset uint64) error { return ErrSeekUnsupported }

func (s *streamSource) Rewind() error { return ErrSeekUnsupported }

func (s *streamSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if c, ok := s.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
