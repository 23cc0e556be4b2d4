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

// Package charset provides the text encodings understood by the binary
// reader and writer.
//
// Each encoding has a fixed code-unit width of 1, 2 or 4 bytes; the
// wide encodings carry their byte order in the encoding value itself,
// so a decode is always a single whole-block pass rather than a
// per-unit dispatch. Decoding is strict: ill-formed input fails with
// ErrInvalidEncoding instead of being silently replaced.
package charset

import (
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/google/binio/fault"
	"golang.org/x/text/encoding/charmap"
)

// ErrInvalidEncoding is returned when bytes cannot be decoded under the
// requested encoding, or a string contains a rune the encoding cannot
// represent.
const ErrInvalidEncoding = fault.Const("byte sequence is not valid for the encoding")

// Encoding identifies a text encoding with a fixed code-unit width.
type Encoding int

const (
	// ASCII is the 7-bit encoding; bytes above 0x7F are invalid.
	ASCII Encoding = iota
	// Latin1 is ISO 8859-1.
	Latin1
	// Windows1252 is the Windows western-European code page.
	Windows1252
	// UTF8 is UTF-8.
	UTF8
	// UTF16LE is UTF-16 with little-endian code units.
	UTF16LE
	// UTF16BE is UTF-16 with big-endian code units.
	UTF16BE
	// UTF32LE is UTF-32 with little-endian code units.
	UTF32LE
	// UTF32BE is UTF-32 with big-endian code units.
	UTF32BE
)

// UnitWidth returns the size of one code unit in bytes.
func (e Encoding) UnitWidth() int {
	switch e {
	case UTF16LE, UTF16BE:
		return 2
	case UTF32LE, UTF32BE:
		return 4
	default:
		return 1
	}
}

// Terminator returns the null terminator for the encoding: one code
// unit of zero bytes.
func (e Encoding) Terminator() []byte {
	return make([]byte, e.UnitWidth())
}

func (e Encoding) String() string {
	switch e {
	case ASCII:
		return "ascii"
	case Latin1:
		return "latin-1"
	case Windows1252:
		return "windows-1252"
	case UTF8:
		return "utf-8"
	case UTF16LE:
		return "utf-16le"
	case UTF16BE:
		return "utf-16be"
	case UTF32LE:
		return "utf-32le"
	case UTF32BE:
		return "utf-32be"
	default:
		return "unknown"
	}
}

func (e Encoding) byteOrder() binary.ByteOrder {
	if e == UTF16BE || e == UTF32BE {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Decode converts data into a string, treating the whole block as a
// sequence of code units of the encoding. It fails with
// ErrInvalidEncoding if the block length is not a multiple of the unit
// width or any unit sequence is ill-formed.
func (e Encoding) Decode(data []byte) (string, error) {
	switch e {
	case ASCII:
		for _, b := range data {
			if b > 0x7F {
				return "", ErrInvalidEncoding
			}
		}
		return string(data), nil

	case Latin1:
		return decodeCharmap(data, charmap.ISO8859_1)

	case Windows1252:
		return decodeCharmap(data, charmap.Windows1252)

	case UTF8:
		if !utf8.Valid(data) {
			return "", ErrInvalidEncoding
		}
		return string(data), nil

	case UTF16LE, UTF16BE:
		return decodeUTF16(data, e.byteOrder())

	case UTF32LE, UTF32BE:
		return decodeUTF32(data, e.byteOrder())

	default:
		return "", ErrInvalidEncoding
	}
}

// Encode converts s into the byte representation of the encoding. It
// fails with ErrInvalidEncoding if s is not valid UTF-8 or contains a
// rune the encoding cannot represent.
func (e Encoding) Encode(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, ErrInvalidEncoding
	}
	switch e {
	case ASCII:
		for _, r := range s {
			if r > 0x7F {
				return nil, ErrInvalidEncoding
			}
		}
		return []byte(s), nil

	case Latin1:
		return encodeCharmap(s, charmap.ISO8859_1)

	case Windows1252:
		return encodeCharmap(s, charmap.Windows1252)

	case UTF8:
		return []byte(s), nil

	case UTF16LE, UTF16BE:
		units := utf16.Encode([]rune(s))
		out := make([]byte, len(units)*2)
		for i, u := range units {
			e.byteOrder().PutUint16(out[i*2:], u)
		}
		return out, nil

	case UTF32LE, UTF32BE:
		runes := []rune(s)
		out := make([]byte, len(runes)*4)
		for i, r := range runes {
			e.byteOrder().PutUint32(out[i*4:], uint32(r))
		}
		return out, nil

	default:
		return nil, ErrInvalidEncoding
	}
}

func decodeCharmap(data []byte, cm *charmap.Charmap) (string, error) {
	out, err := cm.NewDecoder().Bytes(data)
	if err != nil {
		return "", ErrInvalidEncoding
	}
	return string(out), nil
}

func encodeCharmap(s string, cm *charmap.Charmap) ([]byte, error) {
	out, err := cm.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// The charmap encoder fails on the first rune it cannot map.
		return nil, ErrInvalidEncoding
	}
	return out, nil
}

const (
	surrMin = 0xD800
	surrMax = 0xDFFF
	// surrSplit separates high (lead) surrogates from low (trail) ones.
	surrSplit = 0xDC00
)

// decodeUTF16 decodes strictly: an unpaired surrogate is an error, not
// a replacement character.
func decodeUTF16(data []byte, order binary.ByteOrder) (string, error) {
	if len(data)%2 != 0 {
		return "", ErrInvalidEncoding
	}
	runes := make([]rune, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		u := order.Uint16(data[i:])
		switch {
		case u < surrMin || u > surrMax:
			runes = append(runes, rune(u))
		case u < surrSplit:
			if i+4 > len(data) {
				return "", ErrInvalidEncoding
			}
			v := order.Uint16(data[i+2:])
			if v < surrSplit || v > surrMax {
				return "", ErrInvalidEncoding
			}
			runes = append(runes, utf16.DecodeRune(rune(u), rune(v)))
			i += 2
		default:
			// Trail surrogate with no lead.
			return "", ErrInvalidEncoding
		}
	}
	return string(runes), nil
}

func decodeUTF32(data []byte, order binary.ByteOrder) (string, error) {
	if len(data)%4 != 0 {
		return "", ErrInvalidEncoding
	}
	runes := make([]rune, 0, len(data)/4)
	for i := 0; i < len(data); i += 4 {
		u := order.Uint32(data[i:])
		if u > 0x10FFFF || (u >= surrMin && u <= surrMax) {
			return "", ErrInvalidEncoding
		}
		runes = append(runes, rune(u))
	}
	return string(runes), nil
}
