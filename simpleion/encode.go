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
	"bytes"
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"time"

	"github.com/amazon-ion/ion-go/ion"
)

// EncodeOpts holds bit-flag options for encoding.
type EncodeOpts uint

const (
	// SortMaps instructs the encoder to write map[string]interface{}
	// fields in sorted key order rather than Go's map iteration order.
	// Multimap fields always keep their insertion order.
	SortMaps EncodeOpts = 1 << iota

	// SequenceAsStream treats a top-level slice or array as a sequence
	// of top-level values rather than a single Ion list.
	SequenceAsStream

	// TuplesAsSexps writes Go arrays as Ion s-expressions instead of
	// lists. Slices are unaffected.
	TuplesAsSexps
)

// Dump encodes a host value to binary Ion.
func Dump(v interface{}, opts EncodeOpts) ([]byte, error) {
	buf := bytes.Buffer{}
	return dump(ion.NewBinaryWriter(&buf), &buf, v, opts)
}

// DumpText encodes a host value to text Ion.
func DumpText(v interface{}, opts EncodeOpts) ([]byte, error) {
	buf := bytes.Buffer{}
	return dump(ion.NewTextWriterOpts(&buf, ion.TextWriterQuietFinish), &buf, v, opts)
}

func dump(w ion.Writer, buf *bytes.Buffer, v interface{}, opts EncodeOpts) ([]byte, error) {
	e := NewEncoder(w, opts)
	if err := e.Encode(v); err != nil {
		return nil, err
	}
	if err := e.Finish(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// An Encoder writes host values to an underlying Ion writer.
type Encoder struct {
	w        ion.Writer
	opts     EncodeOpts
	maxDepth int
}

// NewEncoder creates a new Encoder writing to w.
func NewEncoder(w ion.Writer, opts EncodeOpts) *Encoder {
	return &Encoder{
		w:        w,
		opts:     opts,
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth overrides the container depth limit. Values of n less
// than one restore the default.
func (e *Encoder) SetMaxDepth(n int) {
	if n < 1 {
		n = DefaultMaxDepth
	}
	e.maxDepth = n
}

// Encode writes one host value. Under SequenceAsStream a top-level
// slice or array is unrolled into a stream of top-level values.
func (e *Encoder) Encode(v interface{}) error {
	if e.opts&SequenceAsStream != 0 {
		if elems, ok := streamElements(v); ok {
			for _, elem := range elems {
				if err := e.encodeValue(elem, ion.NoType, 0); err != nil {
					return err
				}
			}
			return nil
		}
	}
	return e.encodeValue(v, ion.NoType, 0)
}

// Finish finishes the underlying writer, flushing any buffered output.
func (e *Encoder) Finish() error {
	return e.w.Finish()
}

// streamElements reports whether v is a sequence eligible for
// SequenceAsStream unrolling, and if so returns its elements.
func streamElements(v interface{}) ([]interface{}, bool) {
	if _, ok := v.(*Value); ok {
		return nil, false
	}
	if _, ok := v.([]byte); ok {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	elems := make([]interface{}, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, true
}

// encodeValue writes a single value. The hint, when not ion.NoType,
// is an explicit Ion type the value must be written as; a value that
// cannot be written as its hint is an error, never a coercion.
func (e *Encoder) encodeValue(v interface{}, hint ion.Type, depth int) error {
	if v == nil {
		return e.encodeNull(hint)
	}

	switch val := v.(type) {
	case *Value:
		return e.encodeWrapped(val, depth)

	case bool:
		if err := checkHint(hint, v, ion.BoolType); err != nil {
			return err
		}
		return e.w.WriteBool(val)

	case int:
		return e.encodeInt(int64(val), hint, v)
	case int8:
		return e.encodeInt(int64(val), hint, v)
	case int16:
		return e.encodeInt(int64(val), hint, v)
	case int32:
		return e.encodeInt(int64(val), hint, v)
	case int64:
		return e.encodeInt(val, hint, v)

	case uint:
		return e.encodeUint(uint64(val), hint, v)
	case uint8:
		return e.encodeUint(uint64(val), hint, v)
	case uint16:
		return e.encodeUint(uint64(val), hint, v)
	case uint32:
		return e.encodeUint(uint64(val), hint, v)
	case uint64:
		return e.encodeUint(val, hint, v)

	case *big.Int:
		if err := checkHint(hint, v, ion.IntType); err != nil {
			return err
		}
		return e.w.WriteBigInt(val)

	case float32:
		return e.encodeFloat(float64(val), hint, v)
	case float64:
		return e.encodeFloat(val, hint, v)

	case *ion.Decimal:
		return e.encodeDecimal(val, hint)
	case ion.Decimal:
		return e.encodeDecimal(&val, hint)

	case []byte:
		if err := checkHint(hint, v, ion.BlobType, ion.ClobType); err != nil {
			return err
		}
		if hint == ion.ClobType {
			return e.w.WriteClob(val)
		}
		return e.w.WriteBlob(val)

	case ion.Timestamp:
		if err := checkHint(hint, v, ion.TimestampType); err != nil {
			return err
		}
		return e.w.WriteTimestamp(val)
	case time.Time:
		if err := checkHint(hint, v, ion.TimestampType); err != nil {
			return err
		}
		return e.w.WriteTimestamp(timestampFromTime(val))

	case map[string]interface{}:
		if err := checkHint(hint, v, ion.StructType); err != nil {
			return err
		}
		return e.encodeMap(val, depth)
	case *Multimap:
		if err := checkHint(hint, v, ion.StructType); err != nil {
			return err
		}
		return e.encodeMultimap(val, depth)

	case ion.SymbolToken:
		if err := checkHint(hint, v, ion.SymbolType); err != nil {
			return err
		}
		return e.w.WriteSymbol(val)

	case string:
		if err := checkHint(hint, v, ion.StringType, ion.SymbolType); err != nil {
			return err
		}
		if hint == ion.SymbolType {
			return e.w.WriteSymbolFromString(val)
		}
		return e.w.WriteString(val)

	case []interface{}:
		return e.encodeSequence(val, hint, false, depth)
	}

	return e.encodeReflected(v, hint, depth)
}

// encodeReflected handles shapes the type switch cannot name, such
// as typed slices, arrays, and maps with string keys.
func (e *Encoder) encodeReflected(v interface{}, hint ion.Type, depth int) error {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return e.encodeNull(hint)
		}
		return e.encodeValue(rv.Elem().Interface(), hint, depth)

	case reflect.Slice:
		return e.encodeSequence(sequenceElements(rv), hint, false, depth)

	case reflect.Array:
		// Fixed-size arrays stand in for tuples.
		return e.encodeSequence(sequenceElements(rv), hint, e.opts&TuplesAsSexps != 0, depth)

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if err := checkHint(hint, v, ion.StructType); err != nil {
			return err
		}
		m := map[string]interface{}{}
		for _, key := range rv.MapKeys() {
			m[key.String()] = rv.MapIndex(key).Interface()
		}
		return e.encodeMap(m, depth)
	}

	return &InvalidStateError{fmt.Sprintf("cannot dump values of arbitrary type %T", v)}
}

func sequenceElements(rv reflect.Value) []interface{} {
	elems := make([]interface{}, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems
}

// encodeWrapped writes a *Value: its annotations, then its inner
// value as the wrapper's Type.
func (e *Encoder) encodeWrapped(v *Value, depth int) error {
	if len(v.Annotations) > 0 {
		if err := e.w.Annotations(v.Annotations...); err != nil {
			return err
		}
	}
	if v.Value == nil {
		return e.encodeNull(v.Type)
	}
	return e.encodeValue(v.Value, v.Type, depth)
}

func (e *Encoder) encodeNull(hint ion.Type) error {
	if hint == ion.NoType || hint == ion.NullType {
		return e.w.WriteNull()
	}
	return e.w.WriteNullType(hint)
}

func (e *Encoder) encodeInt(val int64, hint ion.Type, orig interface{}) error {
	if err := checkHint(hint, orig, ion.IntType, ion.BoolType); err != nil {
		return err
	}
	if hint == ion.BoolType {
		return e.w.WriteBool(val != 0)
	}
	return e.w.WriteInt(val)
}

func (e *Encoder) encodeUint(val uint64, hint ion.Type, orig interface{}) error {
	if err := checkHint(hint, orig, ion.IntType, ion.BoolType); err != nil {
		return err
	}
	if hint == ion.BoolType {
		return e.w.WriteBool(val != 0)
	}
	return e.w.WriteUint(val)
}

func (e *Encoder) encodeFloat(val float64, hint ion.Type, orig interface{}) error {
	if err := checkHint(hint, orig, ion.FloatType); err != nil {
		return err
	}
	return e.w.WriteFloat(val)
}

func (e *Encoder) encodeDecimal(val *ion.Decimal, hint ion.Type) error {
	if err := checkHint(hint, val, ion.DecimalType); err != nil {
		return err
	}
	if digits := decimalDigits(val); digits > maxDecimalDigits {
		return &InvalidArgumentError{"Encode", fmt.Sprintf("decimal with %v digits exceeds the maximum of %v", digits, maxDecimalDigits)}
	}
	return e.w.WriteDecimal(val)
}

func (e *Encoder) encodeSequence(elems []interface{}, hint ion.Type, sexp bool, depth int) error {
	if err := checkHint(hint, elems, ion.ListType, ion.SexpType); err != nil {
		return err
	}
	if depth+1 > e.maxDepth {
		return &DepthLimitError{e.maxDepth}
	}
	sexp = sexp || hint == ion.SexpType

	if sexp {
		if err := e.w.BeginSexp(); err != nil {
			return err
		}
	} else {
		if err := e.w.BeginList(); err != nil {
			return err
		}
	}

	for _, elem := range elems {
		if err := e.encodeValue(elem, ion.NoType, depth+1); err != nil {
			return err
		}
	}

	if sexp {
		return e.w.EndSexp()
	}
	return e.w.EndList()
}

func (e *Encoder) encodeMap(m map[string]interface{}, depth int) error {
	if depth+1 > e.maxDepth {
		return &DepthLimitError{e.maxDepth}
	}
	if err := e.w.BeginStruct(); err != nil {
		return err
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	if e.opts&SortMaps != 0 {
		sort.Strings(keys)
	}

	for _, key := range keys {
		if err := e.w.FieldName(ion.NewSymbolTokenFromString(key)); err != nil {
			return err
		}
		if err := e.encodeValue(m[key], ion.NoType, depth+1); err != nil {
			return err
		}
	}

	return e.w.EndStruct()
}

func (e *Encoder) encodeMultimap(m *Multimap, depth int) error {
	if depth+1 > e.maxDepth {
		return &DepthLimitError{e.maxDepth}
	}
	if err := e.w.BeginStruct(); err != nil {
		return err
	}

	for _, f := range m.Fields() {
		if err := e.w.FieldName(f.Name); err != nil {
			return err
		}
		if err := e.encodeValue(f.Value, ion.NoType, depth+1); err != nil {
			return err
		}
	}

	return e.w.EndStruct()
}

// checkHint verifies that an explicit type override is one the given
// host value can be written as.
func checkHint(hint ion.Type, v interface{}, allowed ...ion.Type) error {
	if hint == ion.NoType {
		return nil
	}
	for _, t := range allowed {
		if hint == t {
			return nil
		}
	}
	return &InvalidArgumentError{"Encode", fmt.Sprintf("found %T; expected %v Ion type", v, hint)}
}

// timestampFromTime converts a time.Time, deriving the timezone kind
// from its zone and keeping second precision when there are no
// fractional seconds.
func timestampFromTime(t time.Time) ion.Timestamp {
	kind := ion.TimezoneUnspecified
	if zone, offset := t.Zone(); zone != "" {
		if offset == 0 {
			kind = ion.TimezoneUTC
		} else {
			kind = ion.TimezoneLocal
		}
	}
	if t.Nanosecond() == 0 {
		return ion.NewTimestamp(t, ion.TimestampPrecisionSecond, kind)
	}
	return ion.NewTimestampWithFractionalSeconds(t, ion.TimestampPrecisionNanosecond, kind, 9)
}
