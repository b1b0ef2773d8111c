/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package numeric

import (
	"fmt"

	"dirpx.dev/dargs"
	"dirpx.dev/dargs/datatype"
	"dirpx.dev/dargs/reason"
)

// Number is the set of types the checks accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// RequireZero passes when value == 0.
func RequireZero[T Number](value T, name string) (T, error) {
	if value == 0 {
		return value, nil
	}
	return fail(value, name, reason.NumericZero, "must be zero", "== 0")
}

// RequireNonZero passes when value != 0.
func RequireNonZero[T Number](value T, name string) (T, error) {
	if value != 0 {
		return value, nil
	}
	return fail(value, name, reason.NumericNonZero, "must not be zero", "!= 0")
}

// RequirePositive passes when value > 0.
func RequirePositive[T Number](value T, name string) (T, error) {
	if value > 0 {
		return value, nil
	}
	return fail(value, name, reason.NumericPositive, "must be positive", "> 0")
}

// RequireNonNegative passes when value >= 0.
func RequireNonNegative[T Number](value T, name string) (T, error) {
	if value >= 0 {
		return value, nil
	}
	return fail(value, name, reason.NumericNonNegative, "must not be negative", ">= 0")
}

// RequireNegative passes when value < 0.
func RequireNegative[T Number](value T, name string) (T, error) {
	if value < 0 {
		return value, nil
	}
	return fail(value, name, reason.NumericNegative, "must be negative", "< 0")
}

// RequireNonPositive passes when value <= 0.
func RequireNonPositive[T Number](value T, name string) (T, error) {
	if value <= 0 {
		return value, nil
	}
	return fail(value, name, reason.NumericNonPositive, "must not be positive", "<= 0")
}

// RequireInClosedRange passes when min <= value <= max.
func RequireInClosedRange[T Number](value T, name string, min, max T) (T, error) {
	if min <= value && value <= max {
		return value, nil
	}
	return fail(value, name, reason.NumericClosedRange, "is out of range", interval("[", min, max, "]"))
}

// RequireInOpenRange passes when min < value < max.
func RequireInOpenRange[T Number](value T, name string, min, max T) (T, error) {
	if min < value && value < max {
		return value, nil
	}
	return fail(value, name, reason.NumericOpenRange, "is out of range", interval("(", min, max, ")"))
}

// RequireInLeftOpenRange passes when min < value <= max.
func RequireInLeftOpenRange[T Number](value T, name string, min, max T) (T, error) {
	if min < value && value <= max {
		return value, nil
	}
	return fail(value, name, reason.NumericLeftOpenRange, "is out of range", interval("(", min, max, "]"))
}

// RequireInRightOpenRange passes when min <= value < max.
func RequireInRightOpenRange[T Number](value T, name string, min, max T) (T, error) {
	if min <= value && value < max {
		return value, nil
	}
	return fail(value, name, reason.NumericRightOpenRange, "is out of range", interval("[", min, max, ")"))
}

// RequireLess passes when value < bound.
func RequireLess[T Number](value T, name string, bound T) (T, error) {
	if value < bound {
		return value, nil
	}
	return fail(value, name, reason.NumericLess, "is too large", "< "+render(bound))
}

// RequireLessEqual passes when value <= bound.
func RequireLessEqual[T Number](value T, name string, bound T) (T, error) {
	if value <= bound {
		return value, nil
	}
	return fail(value, name, reason.NumericLessEqual, "is too large", "<= "+render(bound))
}

// RequireGreater passes when value > bound.
func RequireGreater[T Number](value T, name string, bound T) (T, error) {
	if value > bound {
		return value, nil
	}
	return fail(value, name, reason.NumericGreater, "is too small", "> "+render(bound))
}

// RequireGreaterEqual passes when value >= bound.
func RequireGreaterEqual[T Number](value T, name string, bound T) (T, error) {
	if value >= bound {
		return value, nil
	}
	return fail(value, name, reason.NumericGreaterEqual, "is too small", ">= "+render(bound))
}

// RequireEqual fails when value1 != value2. The error is reported against
// name1 with value2 as the expectation.
func RequireEqual[T comparable](value1 T, name1 string, value2 T, name2 string) error {
	if value1 == value2 {
		return nil
	}
	return dargs.InvalidArgument(name1, "must equal "+name2,
		dargs.WithReason(reason.NumericEqual),
		dargs.WithExpected(render(value2)),
		dargs.WithActual(render(value1)),
		dargs.WithType(datatype.Of[T]()),
	)
}

// RequireNotEqual fails when value1 == value2.
func RequireNotEqual[T comparable](value1 T, name1 string, value2 T, name2 string) error {
	if value1 != value2 {
		return nil
	}
	return dargs.InvalidArgument(name1, "must not equal "+name2,
		dargs.WithReason(reason.NumericNotEqual),
		dargs.WithExpected("!= "+render(value2)),
		dargs.WithActual(render(value1)),
		dargs.WithType(datatype.Of[T]()),
	)
}

func fail[T Number](value T, name string, r reason.Reason, message, expected string) (T, error) {
	var zero T
	return zero, dargs.InvalidArgument(name, message,
		dargs.WithReason(r),
		dargs.WithExpected(expected),
		dargs.WithActual(render(value)),
		dargs.WithType(datatype.Of[T]()),
	)
}

func interval[T Number](open string, min, max T, closing string) string {
	return open + render(min) + ", " + render(max) + closing
}

func render(v any) string { return fmt.Sprint(v) }
