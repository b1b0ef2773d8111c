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

package condition

import (
	"fmt"

	"dirpx.dev/dargs"
	"dirpx.dev/dargs/reason"
)

const (
	// DefaultArgumentMessage is used when CheckArgument gets an empty message.
	DefaultArgumentMessage = "argument condition not satisfied"

	// DefaultStateMessage is used when CheckState gets an empty message.
	DefaultStateMessage = "state condition not satisfied"
)

// CheckArgument fails with InvalidArgument when cond is false.
func CheckArgument(cond bool, message string) error {
	if cond {
		return nil
	}
	return argumentError(message)
}

// CheckArgumentf is CheckArgument with a format template. The message is
// only rendered when cond is false.
func CheckArgumentf(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return argumentError(fmt.Sprintf(format, args...))
}

// CheckArgumentFunc is CheckArgument with a lazily built message. message is
// only called when cond is false; a nil func yields the default message.
func CheckArgumentFunc(cond bool, message func() string) error {
	if cond {
		return nil
	}
	return argumentError(call(message))
}

// CheckState fails with IllegalState when cond is false.
func CheckState(cond bool, message string) error {
	if cond {
		return nil
	}
	return stateError(message)
}

// CheckStatef is CheckState with a format template rendered only on failure.
func CheckStatef(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return stateError(fmt.Sprintf(format, args...))
}

// CheckStateFunc is CheckState with a lazily built message.
func CheckStateFunc(cond bool, message func() string) error {
	if cond {
		return nil
	}
	return stateError(call(message))
}

func argumentError(message string) error {
	if message == "" {
		message = DefaultArgumentMessage
	}
	return dargs.InvalidArgument("", message, dargs.WithReason(reason.ConditionArgument))
}

func stateError(message string) error {
	if message == "" {
		message = DefaultStateMessage
	}
	return dargs.IllegalState("", message, dargs.WithReason(reason.ConditionState))
}

func call(f func() string) string {
	if f == nil {
		return ""
	}
	return f()
}
