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
	"fmt"

	"github.com/amazon-ion/ion-go/ion"
)

// A ValueModel selects how much of the Ion data model decoded values
// surface to the host program. The zero value is the most faithful
// model: every decoded value is wrapped in a *Value.
type ValueModel uint

const (
	// MayBeBare permits values that lose nothing by the conversion to
	// be returned as bare host values instead of *Value wrappers.
	// Values with annotations, typed nulls, and values whose Ion type
	// could not be recovered from the bare host type (symbols, clobs,
	// and s-expressions) remain wrapped.
	MayBeBare ValueModel = 1 << iota

	// SymbolAsText collapses symbol values to their text, dropping the
	// symbol/string distinction. Decoding a symbol with unknown text
	// fails under this flag.
	SymbolAsText

	// StructAsSingleMap decodes structs into map[string]interface{}
	// instead of *Multimap. Field order is lost and a repeated field
	// name keeps only the last value.
	StructAsSingleMap
)

// DefaultMaxDepth is the container nesting depth at which decoding
// and encoding give up with a DepthLimitError.
const DefaultMaxDepth = 8192

// Load decodes data, which must contain exactly one top-level Ion
// value, and returns it under the given value model.
func Load(data []byte, model ValueModel) (interface{}, error) {
	vals, err := LoadAll(data, model)
	return loadOne("Load", vals, err)
}

// LoadString is like Load for Ion text in a string.
func LoadString(s string, model ValueModel) (interface{}, error) {
	vals, err := loadAllFrom(ion.NewReaderString(s), model)
	return loadOne("LoadString", vals, err)
}

// LoadAll decodes every top-level value in data.
func LoadAll(data []byte, model ValueModel) ([]interface{}, error) {
	return loadAllFrom(ion.NewReaderBytes(data), model)
}

// LoadAllString is like LoadAll for Ion text in a string.
func LoadAllString(s string, model ValueModel) ([]interface{}, error) {
	return loadAllFrom(ion.NewReaderString(s), model)
}

func loadAllFrom(r ion.Reader, model ValueModel) ([]interface{}, error) {
	return NewDecoder(r, model).DecodeAll()
}

func loadOne(op string, vals []interface{}, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	if len(vals) != 1 {
		return nil, &InvalidArgumentError{op, fmt.Sprintf("expected a single value, found %v", len(vals))}
	}
	return vals[0], nil
}

// A Decoder decodes Ion values from an underlying reader into host
// values under a fixed ValueModel.
type Decoder struct {
	r        ion.Reader
	model    ValueModel
	maxDepth int
}

// NewDecoder creates a new Decoder reading from r.
func NewDecoder(r ion.Reader, model ValueModel) *Decoder {
	return &Decoder{
		r:        r,
		model:    model,
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth overrides the container depth limit. Values of n less
// than one restore the default.
func (d *Decoder) SetMaxDepth(n int) {
	if n < 1 {
		n = DefaultMaxDepth
	}
	d.maxDepth = n
}

// Decode decodes the next top-level value from the underlying reader.
// It returns ErrNoInput if there are no more values.
func (d *Decoder) Decode() (interface{}, error) {
	if !d.r.Next() {
		if err := d.r.Err(); err != nil {
			return nil, &ReadError{err}
		}
		return nil, ErrNoInput
	}
	return d.decodeNext(0)
}

// DecodeAll decodes every remaining top-level value.
func (d *Decoder) DecodeAll() ([]interface{}, error) {
	var vals []interface{}
	for d.r.Next() {
		v, err := d.decodeNext(0)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	if err := d.r.Err(); err != nil {
		return nil, &ReadError{err}
	}
	return vals, nil
}

// decodeNext decodes the value the reader is currently positioned on.
// The caller must already have called Next.
func (d *Decoder) decodeNext(depth int) (interface{}, error) {
	annotations, err := d.r.Annotations()
	if err != nil {
		return nil, &ReadError{err}
	}

	// Annotations force a wrapper even in the bare model; a bare host
	// value has nowhere to put them.
	wrap := d.model&MayBeBare == 0 || len(annotations) > 0

	t := d.r.Type()

	if d.r.IsNull() {
		if t != ion.NullType {
			// Typed nulls have no bare representation.
			wrap = true
		}
		if !wrap {
			return nil, nil
		}
		return &Value{Type: t, Annotations: annotations}, nil
	}

	var inner interface{}

	switch t {
	case ion.BoolType:
		val, err := d.r.BoolValue()
		if err != nil {
			return nil, &ReadError{err}
		}
		inner = *val

	case ion.IntType:
		inner, err = d.decodeInt()
		if err != nil {
			return nil, err
		}

	case ion.FloatType:
		val, err := d.r.FloatValue()
		if err != nil {
			return nil, &ReadError{err}
		}
		inner = *val

	case ion.DecimalType:
		val, err := d.r.DecimalValue()
		if err != nil {
			return nil, &ReadError{err}
		}
		inner = val

	case ion.TimestampType:
		val, err := d.r.TimestampValue()
		if err != nil {
			return nil, &ReadError{err}
		}
		inner = *val

	case ion.SymbolType:
		val, err := d.r.SymbolValue()
		if err != nil {
			return nil, &ReadError{err}
		}
		tok := ion.SymbolToken{}
		if val != nil {
			tok = *val
		}
		if d.model&SymbolAsText != 0 {
			if tok.Text == nil {
				return nil, &InvalidArgumentError{"Decode", "symbol has unknown text and cannot be decoded as text"}
			}
			inner = *tok.Text
		} else {
			// A bare Go string would read back as an Ion string.
			wrap = true
			inner = tok
		}

	case ion.StringType:
		val, err := d.r.StringValue()
		if err != nil {
			return nil, &ReadError{err}
		}
		inner = *val

	case ion.ClobType:
		// A bare []byte would read back as an Ion blob.
		wrap = true
		val, err := d.r.ByteValue()
		if err != nil {
			return nil, &ReadError{err}
		}
		inner = val

	case ion.BlobType:
		val, err := d.r.ByteValue()
		if err != nil {
			return nil, &ReadError{err}
		}
		inner = val

	case ion.ListType:
		inner, err = d.decodeSequence(depth + 1)
		if err != nil {
			return nil, err
		}

	case ion.SexpType:
		// A bare []interface{} would read back as an Ion list.
		wrap = true
		inner, err = d.decodeSequence(depth + 1)
		if err != nil {
			return nil, err
		}

	case ion.StructType:
		inner, err = d.decodeStruct(depth + 1)
		if err != nil {
			return nil, err
		}

	default:
		return nil, &InvalidStateError{fmt.Sprintf("unexpected value type %v", t)}
	}

	if wrap {
		return &Value{Type: t, Annotations: annotations, Value: inner}, nil
	}
	return inner, nil
}

// decodeInt decodes an integer as an int64 when it fits and a
// *big.Int otherwise.
func (d *Decoder) decodeInt() (interface{}, error) {
	size, err := d.r.IntSize()
	if err != nil {
		return nil, &ReadError{err}
	}

	switch size {
	case ion.Int32, ion.Int64:
		val, err := d.r.Int64Value()
		if err != nil {
			return nil, &ReadError{err}
		}
		return *val, nil

	case ion.NullInt:
		// IsNull was false, so the size cannot be null.
		return nil, &InternalError{"unexpected null int size"}

	default:
		val, err := d.r.BigIntValue()
		if err != nil {
			return nil, &ReadError{err}
		}
		// The binary reader sizes 2^63 as a big.Int even when the
		// value is negative and fits in an int64.
		if val.IsInt64() {
			return val.Int64(), nil
		}
		return val, nil
	}
}

func (d *Decoder) decodeSequence(depth int) ([]interface{}, error) {
	if depth > d.maxDepth {
		return nil, &DepthLimitError{d.maxDepth}
	}
	if err := d.r.StepIn(); err != nil {
		return nil, &ReadError{err}
	}

	vals := []interface{}{}
	for d.r.Next() {
		v, err := d.decodeNext(depth)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	if err := d.r.Err(); err != nil {
		return nil, &ReadError{err}
	}

	if err := d.r.StepOut(); err != nil {
		return nil, &ReadError{err}
	}
	return vals, nil
}

func (d *Decoder) decodeStruct(depth int) (interface{}, error) {
	if depth > d.maxDepth {
		return nil, &DepthLimitError{d.maxDepth}
	}
	if err := d.r.StepIn(); err != nil {
		return nil, &ReadError{err}
	}

	single := d.model&StructAsSingleMap != 0
	var m map[string]interface{}
	var mm *Multimap
	if single {
		m = map[string]interface{}{}
	} else {
		mm = NewMultimap()
	}

	for d.r.Next() {
		name, err := d.r.FieldName()
		if err != nil {
			return nil, &ReadError{err}
		}
		tok := ion.SymbolToken{}
		if name != nil {
			tok = *name
		}

		v, err := d.decodeNext(depth)
		if err != nil {
			return nil, err
		}

		if single {
			if tok.Text == nil {
				// No stable map key for a $0 field name.
				continue
			}
			m[*tok.Text] = v
		} else {
			mm.AddToken(tok, v)
		}
	}
	if err := d.r.Err(); err != nil {
		return nil, &ReadError{err}
	}

	if err := d.r.StepOut(); err != nil {
		return nil, &ReadError{err}
	}

	if single {
		return m, nil
	}
	return mm, nil
}
