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

// Package endian holds the byte-order selector used by every
// multi-byte numeric decode and encode operation.
package endian

import "encoding/binary"

// Endian selects the byte order used to interpret a multi-byte value.
type Endian int

const (
	// Little is least-significant-byte-first order.
	Little Endian = iota
	// Big is most-significant-byte-first order.
	Big
)

// ByteOrder returns the encoding/binary order for e.
func (e Endian) ByteOrder() binary.ByteOrder {
	if e == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (e Endian) String() string {
	if e == Big {
		return "big-endian"
	}
	return "little-endian"
}
