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

// ViewProvider is implemented by errors that can produce a transport-friendly,
// self-contained representation of themselves.
//
// The returned view MUST be safe to marshal and SHOULD contain only
// information that is safe to disclose to the client.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is the stable serializable surface of an argument error.
//
// The field names are the contract; the wire format is the adapter's choice.
type ErrorView struct {
	// Kind is the canonical kind name, e.g. "invalid_argument".
	Kind string `json:"kind" yaml:"kind"`

	// Reason is the dotted reason of the violated constraint. May be empty.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`

	// Parameter is the caller-supplied label. May be empty.
	Parameter string `json:"parameter,omitempty" yaml:"parameter,omitempty"`

	// Message is the human-readable description of the violation.
	Message string `json:"message" yaml:"message"`

	// Expected renders the constraint, e.g. "[1, 10]" or "> 0".
	Expected string `json:"expected,omitempty" yaml:"expected,omitempty"`

	// Actual renders the offending value.
	Actual string `json:"actual,omitempty" yaml:"actual,omitempty"`

	// Type is the data type name of the checked value, e.g. "int64".
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Details is an optional list of additional details.
	Details []Detail `json:"details,omitempty" yaml:"details,omitempty"`
}
