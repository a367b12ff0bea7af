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
	"errors"
	"fmt"
)

// ErrNoInput is returned by Decode when the input stream contains no
// further top-level values.
var ErrNoInput = errors.New("simpleion: no input to decode")

// An InvalidArgumentError is returned when one of the arguments to a
// function, or the shape of the host value handed to an Encoder, is
// not valid for the operation being attempted.
type InvalidArgumentError struct {
	Op  string
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("simpleion: invalid argument in %v: %v", e.Op, e.Msg)
}

// An InvalidStateError is returned when a codec is asked to do
// something while in a state that does not permit it.
type InvalidStateError struct {
	Msg string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("simpleion: invalid state: %v", e.Msg)
}

// An InvalidTimestampError is returned when the components handed to
// BuildTimestamp do not form a representable Ion timestamp, or when
// accepting them would silently lose precision.
type InvalidTimestampError struct {
	Msg string
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("simpleion: invalid timestamp: %v", e.Msg)
}

// A BufferSizeError is returned by a ChunkReader when a supplied chunk
// does not fit in the reader's fixed-capacity buffer.
type BufferSizeError struct {
	Size  int
	Limit int
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("simpleion: chunk of %v bytes exceeds buffer capacity of %v bytes", e.Size, e.Limit)
}

// A DepthLimitError is returned when decoding or encoding a value
// nested more deeply than the configured maximum container depth.
type DepthLimitError struct {
	Limit int
}

func (e *DepthLimitError) Error() string {
	return fmt.Sprintf("simpleion: maximum container depth of %v exceeded", e.Limit)
}

// A ReadError wraps an error reported by the underlying stream
// reader while pulling values from the wire.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("simpleion: error reading input: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// An InternalError is returned when something unexpected happens that
// indicates a bug in this package rather than bad input.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("simpleion: internal error: %v", e.Msg)
}
