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

// Package simpleion converts between Ion streams and dynamically
// shaped host values, in the style of the ion-python simpleion module.
// Where ion.Marshal and ion.Unmarshal map Ion to user-defined Go
// types, this package maps it to a small fixed palette -- bool, int64,
// *big.Int, float64, *ion.Decimal, ion.Timestamp, string, []byte,
// []interface{}, *Multimap -- plus the *Value wrapper for anything the
// palette cannot carry losslessly: annotations, typed nulls, symbols,
// clobs, and s-expressions.
//
// Reading:
//
//	v, err := simpleion.Load([]byte("{hello: \"world\"}"), simpleion.MayBeBare)
//
// Writing:
//
//	data, err := simpleion.DumpText(v, 0)
//
// The ValueModel flags trade fidelity for convenience when reading;
// by default every value comes back wrapped in a *Value so that no
// detail of the stream is lost.
package simpleion
