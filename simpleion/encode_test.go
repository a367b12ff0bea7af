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
	"math"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/amazon-ion/ion-go/ion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDumpText(t *testing.T, v interface{}, opts EncodeOpts, eval string) {
	t.Helper()
	val, err := DumpText(v, opts)
	require.NoError(t, err)
	assert.Equal(t, eval, string(val))
}

func TestDumpTextScalars(t *testing.T) {
	test := func(v interface{}, eval string) {
		t.Run(eval, func(t *testing.T) {
			testDumpText(t, v, 0, eval)
		})
	}

	test(nil, "null")
	test(true, "true")
	test(false, "false")

	test(42, "42")
	test(int64(-42), "-42")
	test(uint64(math.MaxUint64), "18446744073709551615")
	test(newBigInt("12345678901234567890123456789012345678901234567890"),
		"12345678901234567890123456789012345678901234567890")

	test(4.2e1, "4.2e+1")
	test(math.Inf(1), "+inf")
	test(math.NaN(), "nan")

	test(ion.MustParseDecimal("1.20"), "1.20")
	test("hello\tworld", "\"hello\\tworld\"")
	test([]byte{4, 2}, "{{BAI=}}")

	test(time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC), "2010-01-01T00:00:00Z")
}

func TestDumpTimeKeepsSecondPrecision(t *testing.T) {
	// A zero fraction must not promote to nanosecond precision.
	testDumpText(t, time.Date(2010, 6, 15, 3, 30, 45, 0, time.UTC), 0,
		"2010-06-15T03:30:45Z")
	testDumpText(t, time.Date(2010, 6, 15, 3, 30, 45, 1, time.UTC), 0,
		"2010-06-15T03:30:45.000000001Z")
}

func TestDumpTimestampPassThrough(t *testing.T) {
	ts, err := BuildTimestamp(ion.TimestampPrecisionMonth, 2010, 6, 0, 0, 0, 0, nil, nil)
	require.NoError(t, err)

	testDumpText(t, ts, 0, "2010-06T")
}

func TestDumpContainers(t *testing.T) {
	test := func(name string, v interface{}, opts EncodeOpts, eval string) {
		t.Run(name, func(t *testing.T) {
			testDumpText(t, v, opts, eval)
		})
	}

	test("list", []interface{}{int64(1), "two"}, 0, "[1,\"two\"]")
	test("nested list", []interface{}{[]interface{}{}}, 0, "[[]]")
	test("typed slice", []int{4, 2}, 0, "[4,2]")

	test("sorted map", map[string]interface{}{"b": 2, "a": 1}, SortMaps, "{a:1,b:2}")
	test("typed map", map[string]int{"a": 1}, 0, "{a:1}")

	test("array", [2]int{1, 2}, 0, "[1,2]")
	test("array as sexp", [2]int{1, 2}, TuplesAsSexps, "(1 2)")
	test("nested array as sexp", []interface{}{[2]int{1, 2}}, TuplesAsSexps, "[(1 2)]")
}

func TestDumpMultimap(t *testing.T) {
	m := NewMultimap()
	m.Add("b", 2)
	m.Add("a", 1)
	m.Add("b", 3)

	// Field order and repeats survive, even under SortMaps.
	testDumpText(t, m, SortMaps, "{b:2,a:1,b:3}")
}

func TestDumpWrapped(t *testing.T) {
	test := func(name string, v interface{}, eval string) {
		t.Run(name, func(t *testing.T) {
			testDumpText(t, v, 0, eval)
		})
	}

	test("symbol", NewValue(ion.SymbolType, "sym"), "sym")
	test("symbol token", NewValue(ion.SymbolType, ion.NewSymbolTokenFromString("sym")), "sym")
	test("clob", NewValue(ion.ClobType, []byte("hi")), "{{\"hi\"}}")
	test("sexp", NewValue(ion.SexpType, []interface{}{int64(1), int64(2)}), "(1 2)")
	test("untyped null", NewNull(ion.NoType), "null")
	test("typed null", NewNull(ion.StringType), "null.string")
	test("bool from int", NewValue(ion.BoolType, 1), "true")
	test("annotated", NewValue(ion.NoType, 5).Annotate("a", "b"), "a::b::5")
	test("annotated null", NewNull(ion.ListType).Annotate("a"), "a::null.list")
	test("annotated struct", (&Value{Value: map[string]interface{}{"x": 1}}).Annotate("a"), "a::{x:1}")
}

func TestDumpSequenceAsStream(t *testing.T) {
	testDumpText(t, []interface{}{int64(1), int64(2), int64(3)}, SequenceAsStream, "1\n2\n3")

	// Only the top level unrolls.
	testDumpText(t, []interface{}{[]interface{}{int64(1)}, int64(2)}, SequenceAsStream, "[1]\n2")

	// Non-sequences are unaffected.
	testDumpText(t, int64(1), SequenceAsStream, "1")
}

func TestDumpHintMismatch(t *testing.T) {
	test := func(name string, v interface{}) {
		t.Run(name, func(t *testing.T) {
			_, err := DumpText(v, 0)
			var iae *InvalidArgumentError
			assert.True(t, errors.As(err, &iae), "expected InvalidArgumentError, got %v", err)
		})
	}

	test("string as int", NewValue(ion.IntType, "hi"))
	test("int as string", NewValue(ion.StringType, 42))
	test("list as struct", NewValue(ion.StructType, []interface{}{}))
	test("float as decimal", NewValue(ion.DecimalType, 1.5))
}

func TestDumpUnsupportedType(t *testing.T) {
	_, err := DumpText(struct{ A int }{42}, 0)
	var ise *InvalidStateError
	assert.True(t, errors.As(err, &ise), "expected InvalidStateError, got %v", err)
}

func TestDumpFloatAsDecimal(t *testing.T) {
	// Floats never coerce to decimal under a hint, finite or not.
	for _, f := range []float64{1.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := DumpText(NewValue(ion.DecimalType, f), 0)
		var iae *InvalidArgumentError
		assert.True(t, errors.As(err, &iae), "expected InvalidArgumentError, got %v", err)
	}
}

func TestDumpDecimalDigitBound(t *testing.T) {
	ok := ion.NewDecimal(newBigInt(strings.Repeat("9", maxDecimalDigits)), 0, false)
	_, err := Dump(ok, 0)
	require.NoError(t, err)

	huge := ion.NewDecimal(newBigInt(strings.Repeat("9", maxDecimalDigits+1)), 0, false)
	_, err = Dump(huge, 0)
	var iae *InvalidArgumentError
	assert.True(t, errors.As(err, &iae), "expected InvalidArgumentError, got %v", err)
}

func TestDumpDepthLimit(t *testing.T) {
	var v interface{} = int64(42)
	for i := 0; i < 20; i++ {
		v = []interface{}{v}
	}

	buf := strings.Builder{}
	e := NewEncoder(ion.NewTextWriterOpts(&buf, ion.TextWriterQuietFinish), 0)
	e.SetMaxDepth(10)

	err := e.Encode(v)
	var dle *DepthLimitError
	require.True(t, errors.As(err, &dle), "expected DepthLimitError, got %v", err)
	assert.Equal(t, 10, dle.Limit)
}

func TestDumpBinaryDecodes(t *testing.T) {
	data, err := Dump([]interface{}{int64(1), "two"}, 0)
	require.NoError(t, err)

	val, err := Load(data, MayBeBare)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{int64(1), "two"}, val)
}

func newBigInt(s string) *big.Int {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad big.Int literal: " + s)
	}
	return i
}
