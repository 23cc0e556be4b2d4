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
	"bufio"
	"bytes"
	"os"

	"github.com/pkg/errors"
)

// Sink is a writable byte destination. It tracks the total number of
// bytes written so output can be padded to alignment boundaries, and
// must be closed before the written data is considered complete.
type Sink interface {
	// Write appends b in its entirety, or fails.
	Write(b []byte) error
	// WriteByte appends a single byte.
	WriteByte(b byte) error
	// BytesWritten returns the total number of bytes accepted so far.
	BytesWritten() uint64
	// Flush pushes any buffered bytes to the destination.
	Flush() error
	// Close flushes and finalizes the sink. Writes after Close fail
	// with ErrSinkClosed.
	Close() error
}

// BufferSink accumulates written bytes in memory. The bytes can only
// be retrieved once the sink has been closed.
type BufferSink struct {
	buf    bytes.Buffer
	closed bool
}

// NewBufferSink returns an empty memory-backed Sink.
func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

func (s *BufferSink) Write(b []byte) error {
	if s.closed {
		return ErrSinkClosed
	}
	s.buf.Write(b)
	return nil
}

func (s *BufferSink) WriteByte(b byte) error {
	if s.closed {
		return ErrSinkClosed
	}
	return s.buf.WriteByte(b)
}

func (s *BufferSink) BytesWritten() uint64 {
	return uint64(s.buf.Len())
}

func (s *BufferSink) Flush() error {
	if s.closed {
		return ErrSinkClosed
	}
	return nil
}

func (s *BufferSink) Close() error {
	s.closed = true
	return nil
}

// Bytes returns everything written to the sink. It fails with
// ErrSinkNotClosed until the sink has been finalized.
func (s *BufferSink) Bytes() ([]byte, error) {
	if !s.closed {
		return nil, ErrSinkNotClosed
	}
	return s.buf.Bytes(), nil
}

// fileSink writes to a file opened for truncate-write, buffered.
type fileSink struct {
	f      *os.File
	w      *bufio.Writer
	n      uint64
	closed bool
}

// NewFileSink creates or truncates the file at path and returns a Sink
// writing to it.
func NewFileSink(path string) (Sink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		return nil, errors.Wrap(err, "opening destination file")
	}
	return &fileSink{f: f, w: bufio.NewWriter(f)}, nil
}

func (s *fileSink) Write(b []byte) error {
	if s.closed {
		return ErrSinkClosed
	}
	m, err := s.w.Write(b)
	s.n += uint64(m)
	return errors.Wrap(err, "writing to destination file")
}

func (s *fileSink) WriteByte(b byte) error {
	if s.closed {
		return ErrSinkClosed
	}
	if err := s.w.WriteByte(b); err != nil {
		return errors.Wrap(err, "writing to destination file")
	}
	s.n++
	return nil
}

func (s *fileSink) BytesWritten() uint64 {
	return s.n
}

func (s *fileSink) Flush() error {
	if s.closed {
		return ErrSinkClosed
	}
	return errors.Wrap(s.w.Flush(), "flushing destination file")
}

func (s *fileSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	ferr := s.w.Flush()
	cerr := s.f.Close()
	if ferr != nil {
		return errors.Wrap(ferr, "flushing destination file")
	}
	return errors.Wrap(cerr, "closing destination file")
}
