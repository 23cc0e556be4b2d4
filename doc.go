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

// Package binio reads and writes typed values over raw byte sources
// and sinks: fixed-width integers and floats in either byte order,
// booleans, fixed-length and null-terminated strings in 1, 2 and
// 4-byte code units, and byte-level scans.
//
// A Reader owns exactly one Source, which is either random access
// (backed by a fully materialized buffer, seekable) or sequential
// (backed by a pull stream, forward only). Both kinds satisfy the same
// read contract: a counted read returns exactly the requested bytes or
// fails with ErrEndOfData, regardless of how the underlying stream
// delivers them. A Writer owns exactly one Sink and tracks the total
// bytes written so output can be padded to alignment boundaries.
//
// Readers and Writers are not safe for concurrent use; every call
// blocks until it completes or fails.
package binio
