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
	"bytes"
	"encoding/hex"
	"math"
	"strings"

	"github.com/google/binio/charset"
	"github.com/google/binio/endian"
	"github.com/pkg/errors"
)

// Writer encodes typed values to a Sink. It owns the sink exclusively;
// byte order is chosen per call.
type Writer struct {
	sink    Sink
	scratch [8]byte
}

// NewWriter returns a Writer over sink.
func NewWriter(sink Sink) *Writer {
	return &Writer{sink: sink}
}

// NewBufferWriter returns a Writer over a fresh memory sink, and the
// sink itself so the bytes can be retrieved after Close.
func NewBufferWriter() (*Writer, *BufferSink) {
	sink := NewBufferSink()
	return NewWriter(sink), sink
}

// CreateFileWriter returns a Writer over a truncate-created file at
// path.
func CreateFileWriter(path string) (*Writer, error) {
	sink, err := NewFileSink(path)
	if err != nil {
		return nil, err
	}
	return NewWriter(sink), nil
}

// Sink returns the sink the writer encodes to.
func (w *Writer) Sink() Sink { return w.sink }

// BytesWritten returns the total number of bytes written so far.
func (w *Writer) BytesWritten() uint64 { return w.sink.BytesWritten() }

// Flush pushes buffered bytes to the destination.
func (w *Writer) Flush() error { return w.sink.Flush() }

// Close flushes and finalizes the sink.
func (w *Writer) Close() error { return w.sink.Close() }

// Data writes b in its entirety.
func (w *Writer) Data(b []byte) error {
	return w.sink.Write(b)
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) error {
	return w.sink.WriteByte(b)
}

// Bool writes one byte: 1 for true, 0 for false.
func (w *Writer) Bool(v bool) error {
	if v {
		return w.sink.WriteByte(1)
	}
	return w.sink.WriteByte(0)
}

// Int8 writes a signed 8 bit integer.
func (w *Writer) Int8(v int8) error {
	return w.sink.WriteByte(byte(v))
}

// Uint8 writes an unsigned 8 bit integer.
func (w *Writer) Uint8(v uint8) error {
	return w.sink.WriteByte(v)
}

// Uint16 writes an unsigned 16 bit integer in the given byte order.
func (w *Writer) Uint16(v uint16, e endian.Endian) error {
	e.ByteOrder().PutUint16(w.scratch[:2], v)
	return w.sink.Write(w.scratch[:2])
}

// Int16 writes a signed 16 bit integer in the given byte order.
func (w *Writer) Int16(v int16, e endian.Endian) error {
	return w.Uint16(uint16(v), e)
}

// Uint32 writes an unsigned 32 bit integer in the given byte order.
func (w *Writer) Uint32(v uint32, e endian.Endian) error {
	e.ByteOrder().PutUint32(w.scratch[:4], v)
	return w.sink.Write(w.scratch[:4])
}

// Int32 writes a signed 32 bit integer in the given byte order.
func (w *Writer) Int32(v int32, e endian.Endian) error {
	return w.Uint32(uint32(v), e)
}

// Uint64 writes an unsigned 64 bit integer in the given byte order.
func (w *Writer) Uint64(v uint64, e endian.Endian) error {
	e.ByteOrder().PutUint64(w.scratch[:8], v)
	return w.sink.Write(w.scratch[:8])
}

// Int64 writes a signed 64 bit integer in the given byte order.
func (w *Writer) Int64(v int64, e endian.Endian) error {
	return w.Uint64(uint64(v), e)
}

// Float32 writes the IEEE-754 bit pattern of v in the given byte order.
func (w *Writer) Float32(v float32, e endian.Endian) error {
	return w.Uint32(math.Float32bits(v), e)
}

// Float64 writes the IEEE-754 bit pattern of v in the given byte order.
func (w *Writer) Float64(v float64, e endian.Endian) error {
	return w.Uint64(math.Float64bits(v), e)
}

// Uint16Array writes each value in the given byte order as one bulk
// append.
func (w *Writer) Uint16Array(vals []uint16, e endian.Endian) error {
	order := e.ByteOrder()
	buf := make([]byte, len(vals)*2)
	for i, v := range vals {
		order.PutUint16(buf[i*2:], v)
	}
	return w.sink.Write(buf)
}

// Int16Array writes each value in the given byte order as one bulk
// append.
func (w *Writer) Int16Array(vals []int16, e endian.Endian) error {
	order := e.ByteOrder()
	buf := make([]byte, len(vals)*2)
	for i, v := range vals {
		order.PutUint16(buf[i*2:], uint16(v))
	}
	return w.sink.Write(buf)
}

// Uint32Array writes each value in the given byte order as one bulk
// append.
func (w *Writer) Uint32Array(vals []uint32, e endian.Endian) error {
	order := e.ByteOrder()
	buf := make([]byte, len(vals)*4)
	for i, v := range vals {
		order.PutUint32(buf[i*4:], v)
	}
	return w.sink.Write(buf)
}

// Int32Array writes each value in the given byte order as one bulk
// append.
func (w *Writer) Int32Array(vals []int32, e endian.Endian) error {
	order := e.ByteOrder()
	buf := make([]byte, len(vals)*4)
	for i, v := range vals {
		order.PutUint32(buf[i*4:], uint32(v))
	}
	return w.sink.Write(buf)
}

// Uint64Array writes each value in the given byte order as one bulk
// append.
func (w *Writer) Uint64Array(vals []uint64, e endian.Endian) error {
	order := e.ByteOrder()
	buf := make([]byte, len(vals)*8)
	for i, v := range vals {
		order.PutUint64(buf[i*8:], v)
	}
	return w.sink.Write(buf)
}

// Int64Array writes each value in the given byte order as one bulk
// append.
func (w *Writer) Int64Array(vals []int64, e endian.Endian) error {
	order := e.ByteOrder()
	buf := make([]byte, len(vals)*8)
	for i, v := range vals {
		order.PutUint64(buf[i*8:], uint64(v))
	}
	return w.sink.Write(buf)
}

// Float32Array writes each value in the given byte order as one bulk
// append.
func (w *Writer) Float32Array(vals []float32, e endian.Endian) error {
	order := e.ByteOrder()
	buf := make([]byte, len(vals)*4)
	for i, v := range vals {
		order.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return w.sink.Write(buf)
}

// Float64Array writes each value in the given byte order as one bulk
// append.
func (w *Writer) Float64Array(vals []float64, e endian.Endian) error {
	order := e.ByteOrder()
	buf := make([]byte, len(vals)*8)
	for i, v := range vals {
		order.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return w.sink.Write(buf)
}

// String writes s encoded under enc, followed by one null terminator
// code unit when terminate is set.
func (w *Writer) String(s string, enc charset.Encoding, terminate bool) error {
	b, err := enc.Encode(s)
	if err != nil {
		return err
	}
	if err := w.sink.Write(b); err != nil {
		return err
	}
	if terminate {
		return w.sink.Write(enc.Terminator())
	}
	return nil
}

// ByteString parses a space-delimited hex digest such as
// "DE AD BE EF" and writes the raw bytes. It fails with
// ErrInvalidByteString if the digit count (ignoring spaces) is odd or
// a character is not a hex digit.
func (w *Writer) ByteString(s string) error {
	digits := strings.ReplaceAll(s, " ", "")
	if len(digits)%2 != 0 {
		return errors.Wrapf(ErrInvalidByteString, "odd number of hex digits in %q", s)
	}
	raw, err := hex.DecodeString(digits)
	if err != nil {
		return errors.Wrapf(ErrInvalidByteString, "%q", s)
	}
	return w.sink.Write(raw)
}

// Align pads the output with fill bytes so the total written is a
// multiple of boundary. Already-aligned output is left untouched.
func (w *Writer) Align(boundary int, fill byte) error {
	if boundary <= 0 {
		return errors.Errorf("invalid alignment boundary %d", boundary)
	}
	rem := int(w.sink.BytesWritten() % uint64(boundary))
	if rem == 0 {
		return nil
	}
	return w.sink.Write(bytes.Repeat([]byte{fill}, boundary-rem))
}
