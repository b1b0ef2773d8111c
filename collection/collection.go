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

package collection

import (
	"strconv"

	"dirpx.dev/dargs"
	"dirpx.dev/dargs/reason"
)

// RequireNonEmpty fails when xs has no elements. A nil slice is empty.
func RequireNonEmpty[S ~[]E, E any](xs S, name string) (S, error) {
	if len(xs) > 0 {
		return xs, nil
	}
	return nil, fail(name, reason.CollectionEmpty, "must not be empty", "> 0", 0)
}

// RequireLength passes when xs has exactly n elements.
func RequireLength[S ~[]E, E any](xs S, name string, n int) (S, error) {
	if len(xs) != n {
		return nil, fail(name, reason.CollectionLengthExact, "has wrong length", "== "+strconv.Itoa(n), len(xs))
	}
	return xs, nil
}

// RequireLengthAtLeast passes when xs has at least min elements.
func RequireLengthAtLeast[S ~[]E, E any](xs S, name string, min int) (S, error) {
	if len(xs) < min {
		return nil, fail(name, reason.CollectionLengthMin, "has too few elements", ">= "+strconv.Itoa(min), len(xs))
	}
	return xs, nil
}

// RequireLengthAtMost passes when xs has at most max elements.
func RequireLengthAtMost[S ~[]E, E any](xs S, name string, max int) (S, error) {
	if len(xs) > max {
		return nil, fail(name, reason.CollectionLengthMax, "has too many elements", "<= "+strconv.Itoa(max), len(xs))
	}
	return xs, nil
}

// RequireLengthInRange passes when min <= len(xs) <= max. An inverted range
// accepts nothing.
func RequireLengthInRange[S ~[]E, E any](xs S, name string, min, max int) (S, error) {
	if n := len(xs); n < min || n > max {
		return nil, fail(name, reason.CollectionLengthRange, "length is out of range",
			"["+strconv.Itoa(min)+", "+strconv.Itoa(max)+"]", n)
	}
	return xs, nil
}

// RequireElementNonNil fails on the first nil element of xs. The error's
// parameter is name[i].
func RequireElementNonNil[S ~[]*E, E any](xs S, name string) (S, error) {
	for i, x := range xs {
		if x == nil {
			return nil, dargs.InvalidArgument(name+"["+strconv.Itoa(i)+"]", "must not be nil",
				dargs.WithReason(reason.CollectionElementNil),
				dargs.WithExpected("non-nil"),
				dargs.WithActual("nil"),
			)
		}
	}
	return xs, nil
}

// RequireNonEmptyMap fails when m has no entries.
func RequireNonEmptyMap[M ~map[K]V, K comparable, V any](m M, name string) (M, error) {
	if len(m) > 0 {
		return m, nil
	}
	return nil, fail(name, reason.CollectionEmpty, "must not be empty", "> 0", 0)
}

// RequireMapLengthAtMost passes when m has at most max entries.
func RequireMapLengthAtMost[M ~map[K]V, K comparable, V any](m M, name string, max int) (M, error) {
	if len(m) > max {
		return nil, fail(name, reason.CollectionLengthMax, "has too many entries", "<= "+strconv.Itoa(max), len(m))
	}
	return m, nil
}

func fail(name string, r reason.Reason, message, expected string, length int) error {
	return dargs.InvalidArgument(name, message,
		dargs.WithReason(r),
		dargs.WithExpected(expected),
		dargs.WithActual(strconv.Itoa(length)),
	)
}
