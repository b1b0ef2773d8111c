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

package dargs

import (
	"dirpx.dev/dargs/datatype"
	"dirpx.dev/dargs/reason"
)

// Option sets an optional field on an ArgumentError under construction.
// Options only run inside New.
type Option func(*ArgumentError)

// WithReason sets the dotted reason of the violated constraint.
func WithReason(r reason.Reason) Option {
	return func(e *ArgumentError) { e.reason = r }
}

// WithExpected sets the rendering of the expected constraint, e.g. "> 0".
func WithExpected(expected string) Option {
	return func(e *ArgumentError) { e.expected = expected }
}

// WithActual sets the rendering of the offending value.
func WithActual(actual string) Option {
	return func(e *ArgumentError) { e.actual = actual }
}

// WithType sets the data type of the checked value.
func WithType(t datatype.DataType) Option {
	return func(e *ArgumentError) { e.typ = t }
}
