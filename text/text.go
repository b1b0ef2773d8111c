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

package text

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"dirpx.dev/dargs"
	"dirpx.dev/dargs/datatype"
	"dirpx.dev/dargs/reason"
)

// Matcher is a compiled pattern. *regexp.Regexp implements it.
type Matcher interface {
	MatchString(s string) bool
	String() string
}

// Length returns the number of grapheme clusters in s.
func Length[S ~string](s S) int {
	return uniseg.GraphemeClusterCount(string(s))
}

// RequireNonBlank fails when value is empty or only white space. The value
// is returned untrimmed.
func RequireNonBlank[S ~string](value S, name string) (S, error) {
	if strings.TrimSpace(string(value)) != "" {
		return value, nil
	}
	return *new(S), fail(name, reason.TextBlank, "must not be blank", "", strconv.Quote(string(value)))
}

// RequireLength passes when value has exactly n characters.
func RequireLength[S ~string](value S, name string, n int) (S, error) {
	if l := Length(value); l != n {
		return *new(S), lengthError(name, reason.TextLengthExact, "has wrong length", "== "+strconv.Itoa(n), l)
	}
	return value, nil
}

// RequireLengthAtLeast passes when value has at least min characters.
func RequireLengthAtLeast[S ~string](value S, name string, min int) (S, error) {
	if l := Length(value); l < min {
		return *new(S), lengthError(name, reason.TextLengthMin, "is too short", ">= "+strconv.Itoa(min), l)
	}
	return value, nil
}

// RequireLengthAtMost passes when value has at most max characters.
func RequireLengthAtMost[S ~string](value S, name string, max int) (S, error) {
	if l := Length(value); l > max {
		return *new(S), lengthError(name, reason.TextLengthMax, "is too long", "<= "+strconv.Itoa(max), l)
	}
	return value, nil
}

// RequireLengthInRange passes when min <= length <= max. An inverted range
// accepts nothing.
func RequireLengthInRange[S ~string](value S, name string, min, max int) (S, error) {
	if l := Length(value); l < min || l > max {
		return *new(S), lengthError(name, reason.TextLengthRange, "length is out of range",
			"["+strconv.Itoa(min)+", "+strconv.Itoa(max)+"]", l)
	}
	return value, nil
}

// RequireMatch passes when m matches value. A nil m is an IllegalState
// error.
func RequireMatch[S ~string](value S, name string, m Matcher) (S, error) {
	if isNil(m) {
		return *new(S), nilMatcher(name)
	}
	if m.MatchString(string(value)) {
		return value, nil
	}
	return *new(S), fail(name, reason.TextPatternMatch, "must match pattern", m.String(), strconv.Quote(string(value)))
}

// RequireNotMatch passes when m does not match value.
func RequireNotMatch[S ~string](value S, name string, m Matcher) (S, error) {
	if isNil(m) {
		return *new(S), nilMatcher(name)
	}
	if !m.MatchString(string(value)) {
		return value, nil
	}
	return *new(S), fail(name, reason.TextPatternNotMatch, "must not match pattern", "not "+m.String(), strconv.Quote(string(value)))
}

func lengthError(name string, r reason.Reason, message, expected string, length int) error {
	return fail(name, r, message, expected, strconv.Itoa(length))
}

func fail(name string, r reason.Reason, message, expected, actual string) error {
	return dargs.InvalidArgument(name, message,
		dargs.WithReason(r),
		dargs.WithExpected(expected),
		dargs.WithActual(actual),
		dargs.WithType(datatype.String),
	)
}

func nilMatcher(name string) error {
	return dargs.IllegalState(name, "pattern must not be nil",
		dargs.WithReason(reason.TextPatternNil),
		dargs.WithType(datatype.String),
	)
}

// isNil catches a nil *regexp.Regexp stored in a non-nil Matcher.
func isNil(m Matcher) bool {
	if m == nil {
		return true
	}
	re, ok := m.(*regexp.Regexp)
	return ok && re == nil
}
