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

	"github.com/pkg/errors"
)

// UpToAndIncluding reads bytes until delim has been read or the source
// is exhausted, returning everything read including the delimiter.
// Exhaustion is not an error: callers detect "no further records" by a
// result that is empty or does not end in delim.
func (r *Reader) UpToAndIncluding(delim byte) ([]byte, error) {
	var acc []byte
	for {
		b, err := r.src.ReadByte()
		if err != nil {
			if errors.Is(err, ErrEndOfData) {
				return acc, nil
			}
			return acc, err
		}
		acc = append(acc, b)
		if b == delim {
			return acc, nil
		}
	}
}

// ThroughPattern reads bytes until pattern has been read, returning
// everything consumed including the pattern and leaving the position
// immediately after it. If the source ends before the pattern is found
// the read fails with ErrEndOfData; no partial match is returned.
func (r *Reader) ThroughPattern(pattern []byte) ([]byte, error) {
	if len(pattern) == 0 {
		return nil, nil
	}
	var acc []byte
	matched := 0
	for {
		b, err := r.src.ReadByte()
		if err != nil {
			return nil, err
		}
		acc = append(acc, b)
		if b == pattern[matched] {
			matched++
			if matched == len(pattern) {
				return acc, nil
			}
			continue
		}
		matched = overlap(pattern, matched, b)
	}
}

// overlap computes the match length after a mismatch: the longest
// pattern prefix that is still a suffix of the bytes consumed so far.
// Without this a self-overlapping pattern such as "aab" is missed in
// "aaab". The common case is length 1, when the mismatching byte
// equals the first pattern byte.
func overlap(pattern []byte, matched int, b byte) int {
	for k := matched; k > 0; k-- {
		if pattern[k-1] != b {
			continue
		}
		if bytes.Equal(pattern[:k-1], pattern[matched-k+1:matched]) {
			return k
		}
	}
	return 0
}
