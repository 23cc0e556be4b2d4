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
	"github.com/google/binio/charset"
	"github.com/pkg/errors"
)

// String reads a fixed-length string of units code units and decodes
// it under enc. If includesTerminator is set and the final code unit
// is the null terminator, that unit is dropped before decoding.
func (r *Reader) String(units int, enc charset.Encoding, includesTerminator bool) (string, error) {
	w := enc.UnitWidth()
	b, err := r.src.Read(units * w)
	if err != nil {
		return "", err
	}
	if includesTerminator && len(b) >= w && isZeroUnit(b[len(b)-w:]) {
		b = b[:len(b)-w]
	}
	return enc.Decode(b)
}

// CString reads a null-terminated string under enc, scanning one whole
// code unit at a time. The terminator is consumed from the source but
// stripped from the result. If the source is exhausted before a
// terminator is seen, the accumulated units are decoded rather than
// failing, so a final unterminated record at the end of a source can
// still be retrieved.
func (r *Reader) CString(enc charset.Encoding) (string, error) {
	w := enc.UnitWidth()
	var acc []byte
	if w == 1 {
		for {
			b, err := r.src.ReadByte()
			if err != nil {
				if errors.Is(err, ErrEndOfData) {
					break
				}
				return "", err
			}
			if b == 0 {
				break
			}
			acc = append(acc, b)
		}
		return enc.Decode(acc)
	}
	for {
		unit, err := r.src.Read(w)
		if err != nil {
			if errors.Is(err, ErrEndOfData) {
				break
			}
			return "", err
		}
		if isZeroUnit(unit) {
			break
		}
		acc = append(acc, unit...)
	}
	return enc.Decode(acc)
}

// isZeroUnit reports whether every byte of a code unit is zero. The
// terminator of a wide encoding is a zero unit, not a zero byte.
func isZeroUnit(unit []byte) bool {
	for _, b := range unit {
		if b != 0 {
			return false
		}
	}
	return true
}
