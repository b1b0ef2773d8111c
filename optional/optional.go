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

package optional

import (
	"dirpx.dev/dargs"
	"dirpx.dev/dargs/datatype"
	"dirpx.dev/dargs/reason"
)

const (
	missingMessage   = "must be present"
	predicateMessage = "is invalid"
)

// RequireNonNull unwraps v, failing when it is absent.
func RequireNonNull[T any](v Value[T], name string) (T, error) {
	if x, ok := v.Get(); ok {
		return x, nil
	}
	var zero T
	return zero, missing[T](name)
}

// RequireNonNil unwraps p, failing when it is nil.
func RequireNonNil[T any](p *T, name string) (T, error) {
	return RequireNonNull(FromPtr(p), name)
}

// RequireNonNullAnd unwraps v and checks pred on it. An absent value fails
// with "must be present"; a present value rejected by pred fails with
// errorMessage, so the two cases stay distinguishable.
func RequireNonNullAnd[T any](v Value[T], name string, pred func(T) bool, errorMessage string) (T, error) {
	var zero T
	x, ok := v.Get()
	if !ok {
		return zero, missing[T](name)
	}
	if pred == nil {
		return zero, nilPredicate(name)
	}
	if !pred(x) {
		return zero, rejected[T](name, errorMessage)
	}
	return x, nil
}

// ValidateIfPresent runs validator on the held value. An absent value passes
// without calling validator. A present value yields Some of the validator's
// result, or the validator's error as is.
func ValidateIfPresent[T any](v Value[T], name string, validator func(T) (T, error)) (Value[T], error) {
	x, ok := v.Get()
	if !ok {
		return None[T](), nil
	}
	if validator == nil {
		return None[T](), dargs.IllegalState(name, "validator must not be nil")
	}
	out, err := validator(x)
	if err != nil {
		return None[T](), err
	}
	return Some(out), nil
}

// RequireNullOr passes when v is absent or pred accepts the held value.
func RequireNullOr[T any](v Value[T], name string, pred func(T) bool, errorMessage string) (Value[T], error) {
	x, ok := v.Get()
	if !ok {
		return v, nil
	}
	if pred == nil {
		return None[T](), nilPredicate(name)
	}
	if pred(x) {
		return v, nil
	}
	return None[T](), rejected[T](name, errorMessage)
}

func missing[T any](name string) error {
	return dargs.InvalidArgument(name, missingMessage,
		dargs.WithReason(reason.OptionalMissing),
		dargs.WithExpected("present"),
		dargs.WithActual("absent"),
		dargs.WithType(datatype.Of[T]()),
	)
}

func rejected[T any](name, message string) error {
	if message == "" {
		message = predicateMessage
	}
	return dargs.InvalidArgument(name, message,
		dargs.WithReason(reason.OptionalPredicate),
		dargs.WithType(datatype.Of[T]()),
	)
}

func nilPredicate(name string) error {
	return dargs.IllegalState(name, "predicate must not be nil")
}
