/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package simpleion

import (
	"io"
	"strings"

	"github.com/amazon-ion/ion-go/ion"
)

// An Iterator decodes top-level values from a stream one at a time,
// so a large stream never has to be materialized at once.
//
//	it := simpleion.NewIterator(in, simpleion.MayBeBare)
//	for it.Next() {
//		use(it.Value())
//	}
//	if err := it.Err(); err != nil {
//		// ...
//	}
type Iterator struct {
	r      ion.Reader
	dec    *Decoder
	src    io.Closer
	cur    interface{}
	err    error
	done   bool
	closed bool
}

// NewIterator creates an Iterator over the Ion values in the given
// stream. If in is an io.Closer it is closed when iteration ends.
func NewIterator(in io.Reader, model ValueModel) *Iterator {
	r := ion.NewReader(in)
	it := &Iterator{
		r:   r,
		dec: NewDecoder(r, model),
	}
	if c, ok := in.(io.Closer); ok {
		it.src = c
	}
	return it
}

// NewIteratorStr is like NewIterator for Ion text in a string.
func NewIteratorStr(s string, model ValueModel) *Iterator {
	return NewIterator(strings.NewReader(s), model)
}

// Next advances to the next top-level value, reporting whether one
// was decoded. Once Next returns false it keeps returning false;
// check Err to distinguish end of stream from failure.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}

	if !it.r.Next() {
		if err := it.r.Err(); err != nil {
			it.err = &ReadError{err}
		}
		it.finish()
		return false
	}

	v, err := it.dec.decodeNext(0)
	if err != nil {
		it.err = err
		it.finish()
		return false
	}

	it.cur = v
	return true
}

// Value returns the value decoded by the last successful Next.
func (it *Iterator) Value() interface{} {
	return it.cur
}

// Err returns the first error the iterator encountered, if any.
func (it *Iterator) Err() error {
	return it.err
}

// Close stops iteration and releases the underlying stream. It is
// safe to call more than once, and is called automatically when Next
// returns false.
func (it *Iterator) Close() error {
	it.done = true
	if it.closed {
		return nil
	}
	it.closed = true
	it.cur = nil
	if it.src != nil {
		return it.src.Close()
	}
	return nil
}

func (it *Iterator) finish() {
	it.done = true
	if err := it.Close(); err != nil && it.err == nil {
		it.err = err
	}
}

// DefaultChunkCapacity is the buffer capacity a ChunkReader uses when
// none is given.
const DefaultChunkCapacity = 4096

// A ChunkFunc supplies the next chunk of raw input, returning io.EOF
// when the source is exhausted.
type ChunkFunc func() ([]byte, error)

// A ChunkReader adapts a pull-style chunk source to io.Reader with a
// fixed-capacity internal buffer. A chunk larger than the capacity
// yields a BufferSizeError instead of growing the buffer.
type ChunkReader struct {
	next ChunkFunc
	buf  []byte
	pos  int
	n    int
	err  error
}

// NewChunkReader creates a ChunkReader pulling from next. Capacities
// less than one select DefaultChunkCapacity.
func NewChunkReader(next ChunkFunc, capacity int) *ChunkReader {
	if capacity < 1 {
		capacity = DefaultChunkCapacity
	}
	return &ChunkReader{
		next: next,
		buf:  make([]byte, capacity),
	}
}

func (cr *ChunkReader) Read(p []byte) (int, error) {
	for cr.pos >= cr.n {
		if cr.err != nil {
			return 0, cr.err
		}
		chunk, err := cr.next()
		if err != nil {
			if err != io.EOF {
				err = &ReadError{err}
			}
			cr.err = err
			return 0, cr.err
		}
		if len(chunk) > len(cr.buf) {
			cr.err = &BufferSizeError{Size: len(chunk), Limit: len(cr.buf)}
			return 0, cr.err
		}
		cr.pos = 0
		cr.n = copy(cr.buf, chunk)
	}

	n := copy(p, cr.buf[cr.pos:cr.n])
	cr.pos += n
	return n, nil
}

// StringChunks returns a ChunkFunc yielding each string as a chunk of
// UTF-8 bytes, then io.EOF.
func StringChunks(chunks ...string) ChunkFunc {
	i := 0
	return func() ([]byte, error) {
		if i >= len(chunks) {
			return nil, io.EOF
		}
		c := chunks[i]
		i++
		return []byte(c), nil
	}
}
