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
	"bytes"
	"testing"
	"testing/iotest"

	"github.com/google/binio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferSourceRead(t *testing.T) {
	s := binio.NewBufferSource([]byte{1, 2, 3, 4, 5})

	b, err := s.Read(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)
	assert.Equal(t, uint64(2), s.Position())
	assert.True(t, s.HasMore())

	b, err = s.Remaining()
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 4, 5}, b)
	assert.Equal(t, uint64(5), s.Position())
	assert.False(t, s.HasMore())

	_, err = s.Read(1)
	assert.ErrorIs(t, err, binio.ErrEndOfData)
	_, err = s.Read(0)
	assert.ErrorIs(t, err, binio.ErrEndOfData)
}

func TestBufferSourceTruncated(t *testing.T) {
	s := binio.NewBufferSource([]byte{1, 2, 3})
	_, err := s.Read(4)
	assert.ErrorIs(t, err, binio.ErrEndOfData)
	// The failed read consumed nothing.
	assert.Equal(t, uint64(0), s.Position())
	b, err := s.Read(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
}

func TestBufferSourceSeek(t *testing.T) {
	s := binio.NewBufferSource([]byte("abcdef"))

	require.NoError(t, s.SeekTo(4))
	b, err := s.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('e'), b)

	assert.ErrorIs(t, s.SeekTo(6), binio.ErrInvalidOffset)
	assert.ErrorIs(t, s.SeekTo(100), binio.ErrInvalidOffset)

	require.NoError(t, s.SeekBy(-5))
	b, _ = s.ReadByte()
	assert.Equal(t, byte('a'), b)
	assert.ErrorIs(t, s.SeekBy(-2), binio.ErrInvalidOffset)
	assert.ErrorIs(t, s.SeekBy(5), binio.ErrInvalidOffset)

	require.NoError(t, s.SeekFromEnd(2))
	b, _ = s.ReadByte()
	assert.Equal(t, byte('e'), b)
	assert.ErrorIs(t, s.SeekFromEnd(0), binio.ErrInvalidOffset)
	assert.ErrorIs(t, s.SeekFromEnd(7), binio.ErrInvalidOffset)

	require.NoError(t, s.Rewind())
	assert.Equal(t, uint64(0), s.Position())
}

func TestStreamSourceSeekUnsupported(t *testing.T) {
	s := binio.NewStreamSource(bytes.NewReader([]byte{1, 2, 3}))
	assert.ErrorIs(t, s.SeekTo(0), binio.ErrSeekUnsupported)
	assert.ErrorIs(t, s.SeekBy(1), binio.ErrSeekUnsupported)
	assert.ErrorIs(t, s.SeekFromEnd(1), binio.ErrSeekUnsupported)
	assert.ErrorIs(t, s.Rewind(), binio.ErrSeekUnsupported)
}

func TestStreamSourcePartialReads(t *testing.T) {
	// OneByteReader forces the accumulation loop to gather the request
	// one byte per underlying call.
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	s := binio.NewStreamSource(iotest.OneByteReader(bytes.NewReader(data)))

	b, err := s.Read(5)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, b)
	assert.Equal(t, uint64(5), s.Position())

	b, err = s.Read(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{6, 7, 8}, b)

	_, err = s.Read(1)
	assert.ErrorIs(t, err, binio.ErrEndOfData)
}

func TestStreamSourceTruncated(t *testing.T) {
	s := binio.NewStreamSource(bytes.NewReader([]byte{1, 2, 3}))
	_, err := s.Read(4)
	assert.ErrorIs(t, err, binio.ErrEndOfData)
}

func TestStreamSourceHasMoreLookahead(t *testing.T) {
	s := binio.NewStreamSource(bytes.NewReader([]byte{9, 8, 7}))

	// HasMore pulls a byte into the lookahead; the next read must still
	// see it.
	assert.True(t, s.HasMore())
	assert.Equal(t, uint64(0), s.Position())

	b, err := s.Read(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 8}, b)

	assert.True(t, s.HasMore())
	v, err := s.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(7), v)
	assert.False(t, s.HasMore())
}

func TestStreamSourceRemaining(t *testing.T) {
	s := binio.NewStreamSource(iotest.OneByteReader(bytes.NewReader([]byte("hello"))))
	assert.True(t, s.HasMore())
	b, err := s.Remaining()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), b)
	assert.Equal(t, uint64(5), s.Position())
	_, err = s.ReadByte()
	assert.ErrorIs(t, err, binio.ErrEndOfData)
}

func TestBufferSinkFinalize(t *testing.T) {
	sink := binio.NewBufferSink()
	require.NoError(t, sink.Write([]byte{1, 2}))
	require.NoError(t, sink.WriteByte(3))
	assert.Equal(t, uint64(3), sink.BytesWritten())

	// Retrieval requires finalization first.
	_, err := sink.Bytes()
	assert.ErrorIs(t, err, binio.ErrSinkNotClosed)

	require.NoError(t, sink.Close())
	b, err := sink.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)

	assert.ErrorIs(t, sink.Write([]byte{4}), binio.ErrSinkClosed)
	assert.ErrorIs(t, sink.WriteByte(4), binio.ErrSinkClosed)
}
