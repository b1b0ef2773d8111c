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

// ErrorDescriptor is a flat, transport-friendly description of a known
// (kind, reason) pair and the statuses it resolves to.
//
// It uses strings instead of the kind and reason value types so that it can
// be marshaled and compared without importing them.
type ErrorDescriptor struct {
	// Kind is the canonical kind name.
	Kind string `json:"kind"`

	// Reason MAY be empty when the descriptor applies to the whole kind.
	Reason string `json:"reason,omitempty"`

	// Parameter is the label of the failing argument, when known.
	Parameter string `json:"parameter,omitempty"`

	// HTTPStatus is the HTTP status for this pair. 0 means "not specified".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status code as an integer. 0 means "not
	// specified".
	GRPCCode int `json:"grpc_code,omitempty"`
}
