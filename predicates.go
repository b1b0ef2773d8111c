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
	"errors"

	"dirpx.dev/dargs/apis"
	"dirpx.dev/dargs/kind"
)

// kindError is the sentinel type matched by ArgumentError.Is.
type kindError kind.Kind

func (k kindError) Error() string { return "dargs: " + string(k) }

// Sentinels for errors.Is. Each one matches every ArgumentError of its kind,
// wherever it sits in a wrap chain.
var (
	ErrInvalidArgument  error = kindError(kind.InvalidArgument)
	ErrIllegalState     error = kindError(kind.IllegalState)
	ErrIndexOutOfBounds error = kindError(kind.IndexOutOfBounds)
)

// AsArgumentError finds the first *ArgumentError in err's chain.
func AsArgumentError(err error) (*ArgumentError, bool) {
	var ae *ArgumentError
	if errors.As(err, &ae) && ae != nil {
		return ae, true
	}
	return nil, false
}

// KindOf returns the kind of the first classified error in err's chain.
//
// Besides *ArgumentError it accepts any apis.KindedError whose ErrorKind
// parses to a known kind. It returns kind.Empty when nothing matches.
func KindOf(err error) kind.Kind {
	if ae, ok := AsArgumentError(err); ok {
		return ae.kind
	}
	var ke apis.KindedError
	if errors.As(err, &ke) {
		if k, perr := kind.Parse(ke.ErrorKind()); perr == nil {
			return k
		}
	}
	return kind.Empty
}

// IsInvalidArgument reports whether err's chain holds an InvalidArgument error.
func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }

// IsIllegalState reports whether err's chain holds an IllegalState error.
func IsIllegalState(err error) bool { return errors.Is(err, ErrIllegalState) }

// IsIndexOutOfBounds reports whether err's chain holds an IndexOutOfBounds error.
func IsIndexOutOfBounds(err error) bool { return errors.Is(err, ErrIndexOutOfBounds) }
