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

package apis

// KindedError is an error classified into one of the closed dargs kinds:
// "invalid_argument", "illegal_state" or "index_out_of_bounds".
//
// Adapters use the kind as the primary input when choosing a transport
// status. An empty or unknown kind should be treated as an internal error at
// the boundary.
type KindedError interface {
	error

	// ErrorKind returns the canonical kind name.
	ErrorKind() string
}

// ReasonedError refines the kind with the exact constraint that was
// violated, e.g. "numeric.range.closed" or "index.range.order".
//
// The returned value MAY be empty.
type ReasonedError interface {
	error

	// ErrorReason returns the dotted reason name.
	ErrorReason() string
}

// ParameterError names the argument or state a failure concerns.
type ParameterError interface {
	error

	// ErrorParameter returns the caller-supplied label. May be empty for
	// unnamed conditions.
	ErrorParameter() string
}

// DetailedError exposes structured details of a failure.
//
// Implementations SHOULD return a fresh slice. Returning nil means "no extra
// details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() []Detail
}
