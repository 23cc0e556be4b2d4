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

import "io"

// ReadFile opens the file at path, runs fn over a Reader for it, and
// closes the reader on every exit path. An error from fn wins over an
// error from closing.
func ReadFile(path string, fn func(*Reader) error) error {
	r, err := OpenFileReader(path)
	if err != nil {
		return err
	}
	return runReader(r, fn)
}

// ReadBytes runs fn over a random-access Reader for data.
func ReadBytes(data []byte, fn func(*Reader) error) error {
	return runReader(NewBytesReader(data), fn)
}

// ReadStream runs fn over a forward-only Reader pulling from r,
// closing the stream afterwards if it is an io.Closer.
func ReadStream(r io.Reader, fn func(*Reader) error) error {
	return runReader(NewStreamReader(r), fn)
}

func runReader(r *Reader, fn func(*Reader) error) error {
	defer r.Close()
	if err := fn(r); err != nil {
		return err
	}
	return r.Close()
}

// WriteFile creates the file at path, runs fn over a Writer for it,
// and flushes and closes the sink on every exit path. An error from fn
// wins over an error from closing.
func WriteFile(path string, fn func(*Writer) error) error {
	w, err := CreateFileWriter(path)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := fn(w); err != nil {
		return err
	}
	return w.Close()
}

// BuildBytes runs fn over a Writer backed by a memory sink and returns
// the accumulated bytes once the sink has been finalized.
func BuildBytes(fn func(*Writer) error) ([]byte, error) {
	w, sink := NewBufferWriter()
	if err := fn(w); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return sink.Bytes()
}
