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
	"github.com/amazon-ion/ion-go/ion"
)

// A Field is a single (name, value) pair of an Ion struct.
type Field struct {
	Name  ion.SymbolToken
	Value interface{}
}

// A Multimap is the host representation of an Ion struct. Unlike a Go
// map it preserves field order and permits repeated field names; a
// struct decoded into a Multimap and encoded back produces the same
// sequence of fields.
//
// Keyed lookups use the field name's text. When the same name appears
// more than once, Get returns the value of the last such field, which
// keeps map-style code working against structs that happen to repeat
// names.
type Multimap struct {
	fields []Field
	index  map[string][]int
}

// NewMultimap returns an empty Multimap.
func NewMultimap() *Multimap {
	return &Multimap{index: map[string][]int{}}
}

// fieldKey maps a field name token to its lookup key. Symbols with
// unknown text (for example $0) all share the empty key.
func fieldKey(name ion.SymbolToken) string {
	if name.Text == nil {
		return ""
	}
	return *name.Text
}

// Add appends a field with the given name, keeping any existing fields
// with the same name.
func (m *Multimap) Add(name string, value interface{}) {
	m.AddToken(ion.NewSymbolTokenFromString(name), value)
}

// AddToken appends a field named by the given symbol token.
func (m *Multimap) AddToken(name ion.SymbolToken, value interface{}) {
	if m.index == nil {
		m.index = map[string][]int{}
	}
	key := fieldKey(name)
	m.index[key] = append(m.index[key], len(m.fields))
	m.fields = append(m.fields, Field{Name: name, Value: value})
}

// Get returns the value of the last field with the given name. The
// second return value reports whether any such field exists.
func (m *Multimap) Get(name string) (interface{}, bool) {
	idxs := m.index[name]
	if len(idxs) == 0 {
		return nil, false
	}
	return m.fields[idxs[len(idxs)-1]].Value, true
}

// GetAll returns the values of every field with the given name, in the
// order the fields were added.
func (m *Multimap) GetAll(name string) []interface{} {
	idxs := m.index[name]
	if len(idxs) == 0 {
		return nil
	}
	values := make([]interface{}, len(idxs))
	for i, idx := range idxs {
		values[i] = m.fields[idx].Value
	}
	return values
}

// Set replaces every field with the given name by a single field
// holding the given value, appending a new field if none exists.
func (m *Multimap) Set(name string, value interface{}) {
	m.Delete(name)
	m.Add(name, value)
}

// Delete removes every field with the given name.
func (m *Multimap) Delete(name string) {
	if len(m.index[name]) == 0 {
		return
	}
	fields := make([]Field, 0, len(m.fields))
	for _, f := range m.fields {
		if fieldKey(f.Name) != name {
			fields = append(fields, f)
		}
	}
	m.fields = fields
	m.reindex()
}

// Len returns the total number of fields, counting repeats.
func (m *Multimap) Len() int {
	return len(m.fields)
}

// Fields returns the fields in order. The returned slice is shared
// with the Multimap and must not be modified.
func (m *Multimap) Fields() []Field {
	return m.fields
}

// Keys returns the distinct field name texts in first-appearance order.
func (m *Multimap) Keys() []string {
	keys := make([]string, 0, len(m.index))
	seen := map[string]bool{}
	for _, f := range m.fields {
		key := fieldKey(f.Name)
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

func (m *Multimap) reindex() {
	m.index = map[string][]int{}
	for i, f := range m.fields {
		key := fieldKey(f.Name)
		m.index[key] = append(m.index[key], i)
	}
}
