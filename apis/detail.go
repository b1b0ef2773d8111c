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

// Detail is a single structured piece of information attached to an error.
// It is a view type, small and safe to put on the wire.
//
// For argument errors the detail carries the failing parameter in Field, the
// violated constraint in Reason and the expected/actual renderings in Info.
type Detail struct {
	// Type is a short classifier of the detail, e.g. "argument", "state" or
	// "index".
	Type string `json:"type,omitempty"`

	// Field is the parameter label. Empty for unnamed conditions.
	Field string `json:"field,omitempty"`

	// Reason is the dotted reason of the violated constraint.
	Reason string `json:"reason,omitempty"`

	// Info carries extra string data such as "expected", "actual" and
	// "type".
	Info map[string]string `json:"info,omitempty"`
}
