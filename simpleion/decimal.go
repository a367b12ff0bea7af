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
	"strings"

	"github.com/amazon-ion/ion-go/ion"
)

// maxDecimalDigits bounds the coefficient of an encodable decimal.
const maxDecimalDigits = 10000

// decimalDigits returns the number of decimal digits in d's
// coefficient.
func decimalDigits(d *ion.Decimal) int {
	coef, _ := d.CoEx()
	s := coef.String()
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	return len(s)
}

// ParseDecimalLiteral parses a decimal from host scientific notation,
// accepting 'e'/'E' exponent markers in addition to Ion's 'd'/'D'.
func ParseDecimalLiteral(s string) (*ion.Decimal, error) {
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		s = s[:i] + "d" + s[i+1:]
	}
	return ion.ParseDecimal(s)
}

// DecimalLiteral renders d in host scientific notation, with 'e' as
// the exponent marker where Ion text would use 'd'.
func DecimalLiteral(d *ion.Decimal) string {
	s := d.String()
	if i := strings.IndexAny(s, "dD"); i >= 0 {
		s = s[:i] + "e" + s[i+1:]
	}
	return s
}
