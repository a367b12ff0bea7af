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
	"math/big"
	"time"

	"github.com/amazon-ion/ion-go/ion"
)

// BuildTimestamp constructs an ion.Timestamp from calendar components
// at the given precision. Components finer than the precision are
// ignored; offsetMinutes may be nil for an unknown offset and is only
// meaningful at minute precision or finer; fraction, if non-nil, is
// the fractional seconds as a decimal in the interval [0, 1) and is
// only meaningful at second precision.
func BuildTimestamp(precision ion.TimestampPrecision, year, month, day, hour, min, sec int,
	fraction *ion.Decimal, offsetMinutes *int) (ion.Timestamp, error) {

	switch precision {
	case ion.TimestampPrecisionYear:
		month, day = 1, 1
		fallthrough
	case ion.TimestampPrecisionMonth:
		day = 1
		fallthrough
	case ion.TimestampPrecisionDay:
		hour, min, sec = 0, 0, 0
		fallthrough
	case ion.TimestampPrecisionMinute:
		sec = 0
	case ion.TimestampPrecisionSecond:
	default:
		return ion.Timestamp{}, &InvalidTimestampError{fmt.Sprintf("unsupported precision %v", precision)}
	}

	if precision < ion.TimestampPrecisionMinute && offsetMinutes != nil {
		return ion.Timestamp{}, &InvalidTimestampError{fmt.Sprintf("%v precision cannot carry an offset", precision)}
	}
	if precision < ion.TimestampPrecisionSecond && fraction != nil {
		return ion.Timestamp{}, &InvalidTimestampError{fmt.Sprintf("%v precision cannot carry fractional seconds", precision)}
	}

	if year < 1 || year > 9999 {
		return ion.Timestamp{}, &InvalidTimestampError{fmt.Sprintf("year %v is out of range", year)}
	}
	if month < 1 || month > 12 {
		return ion.Timestamp{}, &InvalidTimestampError{fmt.Sprintf("month %v is out of range", month)}
	}

	nsec := 0
	fracDigits := uint8(0)
	if fraction != nil {
		var err error
		nsec, fracDigits, err = fractionNanos(fraction)
		if err != nil {
			return ion.Timestamp{}, err
		}
	}

	kind := ion.TimezoneUnspecified
	loc := time.UTC
	if offsetMinutes != nil {
		if *offsetMinutes == 0 {
			kind = ion.TimezoneUTC
		} else {
			kind = ion.TimezoneLocal
			loc = time.FixedZone("", *offsetMinutes*60)
		}
	}

	t := time.Date(year, time.Month(month), day, hour, min, sec, nsec, loc)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return ion.Timestamp{}, &InvalidTimestampError{fmt.Sprintf("%04d-%02d-%02d is not a valid date", year, month, day)}
	}
	if t.Hour() != hour || t.Minute() != min || t.Second() != sec {
		return ion.Timestamp{}, &InvalidTimestampError{fmt.Sprintf("%02d:%02d:%02d is not a valid time of day", hour, min, sec)}
	}

	switch {
	case precision < ion.TimestampPrecisionMinute:
		return ion.NewDateTimestamp(t, precision), nil
	case fracDigits > 0:
		return ion.NewTimestampWithFractionalSeconds(t, ion.TimestampPrecisionNanosecond, kind, fracDigits), nil
	default:
		return ion.NewTimestamp(t, precision, kind), nil
	}
}

// fractionNanos converts a fractional-seconds decimal to nanoseconds
// plus its digit count. Fractions finer than a nanosecond are refused
// rather than silently truncated.
func fractionNanos(fraction *ion.Decimal) (int, uint8, error) {
	coef, exp := fraction.CoEx()
	if fraction.Sign() < 0 || exp > 0 {
		return 0, 0, &InvalidTimestampError{fmt.Sprintf("fractional seconds %v must be in the interval [0, 1)", fraction)}
	}

	shift := int(exp) + 9
	ns := new(big.Int).Set(coef)
	if shift >= 0 {
		ns.Mul(ns, pow10(shift))
	} else {
		rem := new(big.Int)
		ns.QuoRem(ns, pow10(-shift), rem)
		if rem.Sign() != 0 {
			return 0, 0, &InvalidTimestampError{fmt.Sprintf("fractional seconds %v are finer than a nanosecond", fraction)}
		}
	}

	if !ns.IsInt64() || ns.Int64() >= int64(time.Second) {
		return 0, 0, &InvalidTimestampError{fmt.Sprintf("fractional seconds %v must be in the interval [0, 1)", fraction)}
	}

	digits := int(-exp)
	if digits > 9 {
		digits = 9
	}
	if digits == 0 {
		// A fraction of exactly 0 with no digits adds no precision.
		return 0, 0, nil
	}
	return int(ns.Int64()), uint8(digits), nil
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
