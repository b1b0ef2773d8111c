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
	"strings"

	"dirpx.dev/dargs/apis"
	"dirpx.dev/dargs/datatype"
	"dirpx.dev/dargs/kind"
	"dirpx.dev/dargs/reason"
)

// ArgumentError is the single error value produced by every dargs check.
//
// It carries:
//   - kind: closed classification (invalid argument, illegal state, index out
//     of bounds);
//   - reason: optional dotted id of the violated constraint;
//   - parameter: caller-supplied label, empty for unnamed conditions;
//   - message: human-readable description of the violation;
//   - expected / actual: optional textual renderings of the constraint and
//     the offending value;
//   - type: data type of the checked value, Unknown when not applicable.
//
// All fields are set once in New and never change, so values can be shared
// freely between goroutines.
type ArgumentError struct {
	kind      kind.Kind
	reason    reason.Reason
	parameter string
	message   string
	expected  string
	actual    string
	typ       datatype.DataType
}

var (
	_ apis.KindedError    = (*ArgumentError)(nil)
	_ apis.ReasonedError  = (*ArgumentError)(nil)
	_ apis.ParameterError = (*ArgumentError)(nil)
	_ apis.DetailedError  = (*ArgumentError)(nil)
	_ apis.ViewProvider   = (*ArgumentError)(nil)
)

// New constructs an ArgumentError and applies opts in order.
//
// Usage:
//
//	return dargs.New(kind.InvalidArgument, "port", "must be in range",
//	    dargs.WithReason(reason.NumericClosedRange),
//	    dargs.WithExpected("[1, 65535]"),
//	    dargs.WithActual("0"),
//	)
func New(k kind.Kind, parameter, message string, opts ...Option) *ArgumentError {
	e := &ArgumentError{kind: k, parameter: parameter, message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// InvalidArgument is New with kind.InvalidArgument.
func InvalidArgument(parameter, message string, opts ...Option) *ArgumentError {
	return New(kind.InvalidArgument, parameter, message, opts...)
}

// IllegalState is New with kind.IllegalState.
func IllegalState(parameter, message string, opts ...Option) *ArgumentError {
	return New(kind.IllegalState, parameter, message, opts...)
}

// IndexOutOfBounds is New with kind.IndexOutOfBounds.
func IndexOutOfBounds(parameter, message string, opts ...Option) *ArgumentError {
	return New(kind.IndexOutOfBounds, parameter, message, opts...)
}

// Kind returns the failure classification.
func (e *ArgumentError) Kind() kind.Kind { return e.kind }

// Reason returns the violated constraint. May be empty.
func (e *ArgumentError) Reason() reason.Reason { return e.reason }

// Parameter returns the caller-supplied label. May be empty.
func (e *ArgumentError) Parameter() string { return e.parameter }

// Message returns the human-readable description.
func (e *ArgumentError) Message() string { return e.message }

// Expected returns the rendering of the expected constraint. May be empty.
func (e *ArgumentError) Expected() string { return e.expected }

// Actual returns the rendering of the offending value. May be empty.
func (e *ArgumentError) Actual() string { return e.actual }

// Type returns the data type of the checked value.
func (e *ArgumentError) Type() datatype.DataType { return e.typ }

// Error implements the built-in error interface.
//
// The format is:
//
//	<kind>: <parameter>: <message> (expected <e>, got <a>)
//
// The parameter segment is dropped when empty. The parenthesised tail is
// dropped when neither rendering is set, and reduced to its present half
// otherwise.
func (e *ArgumentError) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(string(e.kind))
	b.WriteString(": ")
	if e.parameter != "" {
		b.WriteString(e.parameter)
		b.WriteString(": ")
	}
	b.WriteString(e.message)
	switch {
	case e.expected != "" && e.actual != "":
		b.WriteString(" (expected ")
		b.WriteString(e.expected)
		b.WriteString(", got ")
		b.WriteString(e.actual)
		b.WriteByte(')')
	case e.expected != "":
		b.WriteString(" (expected ")
		b.WriteString(e.expected)
		b.WriteByte(')')
	case e.actual != "":
		b.WriteString(" (got ")
		b.WriteString(e.actual)
		b.WriteByte(')')
	}
	return b.String()
}

// Equal reports whether e and other carry the same fields.
// Two nil errors are equal.
func (e *ArgumentError) Equal(other *ArgumentError) bool {
	if e == nil || other == nil {
		return e == other
	}
	return *e == *other
}

// Is makes errors.Is match the kind sentinels (ErrInvalidArgument, ...) and
// structurally equal argument errors.
func (e *ArgumentError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch t := target.(type) {
	case kindError:
		return e.kind == kind.Kind(t)
	case *ArgumentError:
		return e.Equal(t)
	}
	return false
}

// ErrorKind implements apis.KindedError.
func (e *ArgumentError) ErrorKind() string { return e.kind.String() }

// ErrorReason implements apis.ReasonedError.
func (e *ArgumentError) ErrorReason() string { return e.reason.String() }

// ErrorParameter implements apis.ParameterError.
func (e *ArgumentError) ErrorParameter() string { return e.parameter }

// ErrorDetails implements apis.DetailedError. It returns a single detail
// describing the failure, or nil when there is nothing beyond the kind and
// message to report.
func (e *ArgumentError) ErrorDetails() []apis.Detail {
	info := e.info()
	if e.parameter == "" && e.reason == reason.Empty && len(info) == 0 {
		return nil
	}
	return []apis.Detail{{
		Type:   detailType(e.kind),
		Field:  e.parameter,
		Reason: e.reason.String(),
		Info:   info,
	}}
}

// ErrorView implements apis.ViewProvider.
func (e *ArgumentError) ErrorView() apis.ErrorView {
	return apis.ErrorView{
		Kind:      e.kind.String(),
		Reason:    e.reason.String(),
		Parameter: e.parameter,
		Message:   e.message,
		Expected:  e.expected,
		Actual:    e.actual,
		Type:      e.typ.String(),
		Details:   e.ErrorDetails(),
	}
}

func (e *ArgumentError) info() map[string]string {
	var m map[string]string
	put := func(k, v string) {
		if v == "" {
			return
		}
		if m == nil {
			m = make(map[string]string, 3)
		}
		m[k] = v
	}
	put("expected", e.expected)
	put("actual", e.actual)
	put("type", e.typ.String())
	return m
}

func detailType(k kind.Kind) string {
	switch k {
	case kind.IllegalState:
		return "state"
	case kind.IndexOutOfBounds:
		return "index"
	default:
		return "argument"
	}
}
