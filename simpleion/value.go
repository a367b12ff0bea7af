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

// A Value carries a decoded Ion value together with the metadata that
// a bare host value cannot represent: the Ion type it was read as and
// the annotations attached to it. Decoding produces a *Value wherever
// the bare host representation would be lossy or ambiguous; encoding
// accepts a *Value anywhere a bare value is accepted, and uses its
// Type as an explicit override of the inferred Ion type.
//
// A Value whose Value field is nil represents a null of type Type
// (ion.NullType, or ion.NoType on encode, means the untyped null).
type Value struct {
	// Type is the Ion type this value was read as, or should be
	// written as.
	Type ion.Type

	// Annotations holds the value's annotation symbols, in order.
	Annotations []ion.SymbolToken

	// Value is the underlying host value, or nil for a null.
	Value interface{}
}

// NewValue returns a *Value wrapping the given host value.
func NewValue(t ion.Type, v interface{}) *Value {
	return &Value{Type: t, Value: v}
}

// NewNull returns a *Value representing a null of the given type.
func NewNull(t ion.Type) *Value {
	return &Value{Type: t}
}

// Annotate returns v annotated with the given symbol texts, appended
// after any annotations it already carries.
func (v *Value) Annotate(texts ...string) *Value {
	for _, text := range texts {
		v.Annotations = append(v.Annotations, ion.NewSymbolTokenFromString(text))
	}
	return v
}

// IsNull reports whether v represents a null value of any type.
func (v *Value) IsNull() bool {
	return v.Value == nil
}

// AnnotationTexts returns the texts of v's annotations, in order.
// Annotations with unknown text are returned as the empty string.
func (v *Value) AnnotationTexts() []string {
	if len(v.Annotations) == 0 {
		return nil
	}
	texts := make([]string, len(v.Annotations))
	for i, a := range v.Annotations {
		if a.Text != nil {
			texts[i] = *a.Text
		}
	}
	return texts
}
