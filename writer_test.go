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

package binio_test

import (
	"testing"

	"github.com/google/binio"
	"github.com/google/binio/charset"
	"github.com/google/binio/endian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, fn func(w *binio.Writer) error) []byte {
	t.Helper()
	b, err := binio.BuildBytes(fn)
	require.NoError(t, err)
	return b
}

func TestWriteIntegers(t *testing.T) {
	b := build(t, func(w *binio.Writer) error {
		if err := w.Uint16(101, endian.Little); err != nil {
			return err
		}
		if err := w.Uint32(77688, endian.Big); err != nil {
			return err
		}
		return w.Int16(-2, endian.Little)
	})
	assert.Equal(t, []byte{
		0x65, 0x00,
		0x00, 0x01, 0x2F, 0x78,
		0xFE, 0xFF,
	}, b)
}

func TestWriteBool(t *testing.T) {
	b := build(t, func(w *binio.Writer) error {
		if err := w.Bool(true); err != nil {
			return err
		}
		return w.Bool(false)
	})
	assert.Equal(t, []byte{1, 0}, b)
}

func TestWriteArrays(t *testing.T) {
	b := build(t, func(w *binio.Writer) error {
		return w.Uint16Array([]uint16{1, 2, 3}, endian.Big)
	})
	assert.Equal(t, []byte{0, 1, 0, 2, 0, 3}, b)
}

func TestWriteString(t *testing.T) {
	b := build(t, func(w *binio.Writer) error {
		return w.String("abc", charset.ASCII, true)
	})
	assert.Equal(t, []byte{'a', 'b', 'c', 0}, b)
}

func TestWriteStringWideTerminator(t *testing.T) {
	b := build(t, func(w *binio.Writer) error {
		return w.String("hi", charset.UTF16BE, true)
	})
	// Two zero bytes: the terminator is one whole code unit.
	assert.Equal(t, []byte{0x00, 0x68, 0x00, 0x69, 0x00, 0x00}, b)
}

func TestWriteStringUnencodable(t *testing.T) {
	_, err := binio.BuildBytes(func(w *binio.Writer) error {
		return w.String("日本", charset.ASCII, false)
	})
	assert.ErrorIs(t, err, charset.ErrInvalidEncoding)
}

func TestWriteByteString(t *testing.T) {
	b := build(t, func(w *binio.Writer) error {
		return w.ByteString("DE AD be ef 00")
	})
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00}, b)
}

func TestWriteByteStringMalformed(t *testing.T) {
	for _, s := range []string{"DEA", "D E A", "fish", "0x00"} {
		_, err := binio.BuildBytes(func(w *binio.Writer) error {
			return w.ByteString(s)
		})
		assert.ErrorIs(t, err, binio.ErrInvalidByteString, "%q", s)
	}
}

func TestAlign(t *testing.T) {
	b := build(t, func(w *binio.Writer) error {
		if err := w.Byte(0x01); err != nil {
			return err
		}
		return w.Align(4, 0xFF)
	})
	assert.Equal(t, []byte{0x01, 0xFF, 0xFF, 0xFF}, b)
}

func TestAlignAlreadyAligned(t *testing.T) {
	b := build(t, func(w *binio.Writer) error {
		if err := w.Uint32(1, endian.Little); err != nil {
			return err
		}
		return w.Align(4, 0xFF)
	})
	assert.Len(t, b, 4)
}

func TestBytesWritten(t *testing.T) {
	_ = build(t, func(w *binio.Writer) error {
		require.NoError(t, w.Uint16(1, endian.Little))
		assert.Equal(t, uint64(2), w.BytesWritten())
		require.NoError(t, w.Data([]byte{1, 2, 3}))
		assert.Equal(t, uint64(5), w.BytesWritten())
		return nil
	})
}
