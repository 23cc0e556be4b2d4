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
	"math"
	"os"

	"github.com/google/binio/endian"
	"github.com/pkg/errors"
)

// Reader decodes typed values from a Source. It owns the source
// exclusively; byte order is chosen per call.
type Reader struct {
	src Source
}

// NewReader returns a Reader over src.
func NewReader(src Source) *Reader {
	return &Reader{src: src}
}

// NewBytesReader returns a Reader over a random-access source backed
// by data.
func NewBytesReader(data []byte) *Reader {
	return NewReader(NewBufferSource(data))
}

// NewStreamReader returns a Reader over a forward-only source pulling
// from r.
func NewStreamReader(r io.Reader) *Reader {
	return NewReader(NewStreamSource(r))
}

// OpenFileReader materializes the file at path into a random-access
// Reader. Use NewStreamReader over an open file to read it as a
// forward-only stream instead.
func OpenFileReader(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening source file")
	}
	return NewBytesReader(data), nil
}

// Source returns the source the reader decodes from.
func (r *Reader) Source() Source { return r.src }

// Position returns the number of bytes consumed so far.
func (r *Reader) Position() uint64 { return r.src.Position() }

// HasMore reports whether at least one more byte can be read.
func (r *Reader) HasMore() bool { return r.src.HasMore() }

// SeekTo sets the read position to offset.
func (r *Reader) SeekTo(offset uint64) error { return r.src.SeekTo(offset) }

// SeekBy moves the read position by delta.
func (r *Reader) SeekBy(delta int64) error { return r.src.SeekBy(delta) }

// SeekFromEnd sets the read position to offset bytes before the end.
func (r *Reader) SeekFromEnd(offset uint64) error { return r.src.SeekFromEnd(offset) }

// Rewind sets the read position back to the start.
func (r *Reader) Rewind() error { return r.src.Rewind() }

// Close releases the underlying source.
func (r *Reader) Close() error { return r.src.Close() }

// Data reads exactly n bytes. The returned slice is freshly allocated
// and owned by the caller.
func (r *Reader) Data(n int) ([]byte, error) {
	b, err := r.src.Read(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// Remaining reads every byte left in the source. The returned slice is
// freshly allocated and owned by the caller.
func (r *Reader) Remaining() ([]byte, error) {
	b, err := r.src.Remaining()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// Byte reads a single byte.
func (r *Reader) Byte() (byte, error) {
	return r.src.ReadByte()
}

// Bool reads one byte; zero decodes as false, any nonzero byte as true.
func (r *Reader) Bool() (bool, error) {
	b, err := r.src.ReadByte()
	return b != 0, err
}

// Int8 reads a signed 8 bit integer.
func (r *Reader) Int8() (int8, error) {
	b, err := r.src.ReadByte()
	return int8(b), err
}

// Uint8 reads an unsigned 8 bit integer.
func (r *Reader) Uint8() (uint8, error) {
	return r.src.ReadByte()
}

// Uint16 reads an unsigned 16 bit integer in the given byte order.
func (r *Reader) Uint16(e endian.Endian) (uint16, error) {
	b, err := r.src.Read(2)
	if err != nil {
		return 0, err
	}
	return e.ByteOrder().Uint16(b), nil
}

// Int16 reads a signed 16 bit integer in the given byte order.
func (r *Reader) Int16(e endian.Endian) (int16, error) {
	v, err := r.Uint16(e)
	return int16(v), err
}

// Uint32 reads an unsigned 32 bit integer in the given byte order.
func (r *Reader) Uint32(e endian.Endian) (uint32, error) {
	b, err := r.src.Read(4)
	if err != nil {
		return 0, err
	}
	return e.ByteOrder().Uint32(b), nil
}

// Int32 reads a signed 32 bit integer in the given byte order.
func (r *Reader) Int32(e endian.Endian) (int32, error) {
	v, err := r.Uint32(e)
	return int32(v), err
}

// Uint64 reads an unsigned 64 bit integer in the given byte order.
func (r *Reader) Uint64(e endian.Endian) (uint64, error) {
	b, err := r.src.Read(8)
	if err != nil {
		return 0, err
	}
	return e.ByteOrder().Uint64(b), nil
}

// Int64 reads a signed 64 bit integer in the given byte order.
func (r *Reader) Int64(e endian.Endian) (int64, error) {
	v, err := r.Uint64(e)
	return int64(v), err
}

// Float32 reads an IEEE-754 32 bit float in the given byte order.
func (r *Reader) Float32(e endian.Endian) (float32, error) {
	v, err := r.Uint32(e)
	return math.Float32frombits(v), err
}

// Float64 reads an IEEE-754 64 bit float in the given byte order.
func (r *Reader) Float64(e endian.Endian) (float64, error) {
	v, err := r.Uint64(e)
	return math.Float64frombits(v), err
}

// Uint16Array reads count consecutive unsigned 16 bit integers.
func (r *Reader) Uint16Array(count int, e endian.Endian) ([]uint16, error) {
	b, err := r.src.Read(count * 2)
	if err != nil {
		return nil, err
	}
	order := e.ByteOrder()
	out := make([]uint16, count)
	for i := range out {
		out[i] = order.Uint16(b[i*2:])
	}
	return out, nil
}

// Int16Array reads count consecutive signed 16 bit integers.
func (r *Reader) Int16Array(count int, e endian.Endian) ([]int16, error) {
	b, err := r.src.Read(count * 2)
	if err != nil {
		return nil, err
	}
	order := e.ByteOrder()
	out := make([]int16, count)
	for i := range out {
		out[i] = int16(order.Uint16(b[i*2:]))
	}
	return out, nil
}

// Uint32Array reads count consecutive unsigned 32 bit integers.
func (r *Reader) Uint32Array(count int, e endian.Endian) ([]uint32, error) {
	b, err := r.src.Read(count * 4)
	if err != nil {
		return nil, err
	}
	order := e.ByteOrder()
	out := make([]uint32, count)
	for i := range out {
		out[i] = order.Uint32(b[i*4:])
	}
	return out, nil
}

// Int32Array reads count consecutive signed 32 bit integers.
func (r *Reader) Int32Array(count int, e endian.Endian) ([]int32, error) {
	b, err := r.src.Read(count * 4)
	if err != nil {
		return nil, err
	}
	order := e.ByteOrder()
	out := make([]int32, count)
	for i := range out {
		out[i] = int32(order.Uint32(b[i*4:]))
	}
	return out, nil
}

// Uint64Array reads count consecutive unsigned 64 bit integers.
func (r *Reader) Uint64Array(count int, e endian.Endian) ([]uint64, error) {
	b, err := r.src.Read(count * 8)
	if err != nil {
		return nil, err
	}
	order := e.ByteOrder()
	out := make([]uint64, count)
	for i := range out {
		out[i] = order.Uint64(b[i*8:])
	}
	return out, nil
}

// Int64Array reads count consecutive signed 64 bit integers.
func (r *Reader) Int64Array(count int, e endian.Endian) ([]int64, error) {
	b, err := r.src.Read(count * 8)
	if err != nil {
		return nil, err
	}
	order := e.ByteOrder()
	out := make([]int64, count)
	for i := range out {
		out[i] = int64(order.Uint64(b[i*8:]))
	}
	return out, nil
}

// Float32Array reads count consecutive 32 bit floats.
func (r *Reader) Float32Array(count int, e endian.Endian) ([]float32, error) {
	b, err := r.src.Read(count * 4)
	if err != nil {
		return nil, err
	}
	order := e.ByteOrder()
	out := make([]float32, count)
	for i := range out {
		out[i] = math.Float32frombits(order.Uint32(b[i*4:]))
	}
	return out, nil
}

// Float64Array reads count consecutive 64 bit floats.
func (r *Reader) Float64Array(count int, e endian.Endian) ([]float64, error) {
	b, err := r.src.Read(count * 8)
	if err != nil {
		return nil, err
	}
	order := e.ByteOrder()
	out := make([]float64, count)
	for i := range out {
		out[i] = math.Float64frombits(order.Uint64(b[i*8:]))
	}
	return out, nil
}
