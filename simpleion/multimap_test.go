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
	"testing"

	"github.com/amazon-ion/ion-go/ion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultimapAddGet(t *testing.T) {
	m := NewMultimap()
	assert.Equal(t, 0, m.Len())

	m.Add("a", 1)
	m.Add("b", 2)
	m.Add("a", 3)

	assert.Equal(t, 3, m.Len())

	val, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, val)

	val, ok = m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, val)

	_, ok = m.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, m.GetAll("missing"))

	assert.Equal(t, []interface{}{1, 3}, m.GetAll("a"))
	assert.Equal(t, []string{"a", "b"}, m.Keys())
}

func TestMultimapFieldOrder(t *testing.T) {
	m := NewMultimap()
	m.Add("z", 1)
	m.Add("a", 2)
	m.Add("z", 3)

	fields := m.Fields()
	require.Len(t, fields, 3)

	names := make([]string, len(fields))
	for i, f := range fields {
		require.NotNil(t, f.Name.Text)
		names[i] = *f.Name.Text
	}
	assert.Equal(t, []string{"z", "a", "z"}, names)
}

func TestMultimapSet(t *testing.T) {
	m := NewMultimap()
	m.Add("a", 1)
	m.Add("b", 2)
	m.Add("a", 3)

	m.Set("a", 4)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []interface{}{4}, m.GetAll("a"))

	m.Set("c", 5)
	assert.Equal(t, 3, m.Len())

	val, ok := m.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 5, val)
}

func TestMultimapDelete(t *testing.T) {
	m := NewMultimap()
	m.Add("a", 1)
	m.Add("b", 2)
	m.Add("a", 3)

	m.Delete("a")

	assert.Equal(t, 1, m.Len())
	_, ok := m.Get("a")
	assert.False(t, ok)

	val, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, val)

	// Deleting a missing key is a no-op.
	m.Delete("missing")
	assert.Equal(t, 1, m.Len())
}

func TestMultimapUnknownText(t *testing.T) {
	m := NewMultimap()
	m.AddToken(ion.SymbolToken{}, 1)
	m.Add("a", 2)

	assert.Equal(t, 2, m.Len())

	val, ok := m.Get("")
	assert.True(t, ok)
	assert.Equal(t, 1, val)
}
