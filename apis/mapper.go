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

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/dargs/kind"
	"dirpx.dev/dargs/reason"
)

// Mapper is an immutable, concurrency-safe view of mapping rules. It
// resolves a kind (and optionally a reason) into transport statuses.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the given kind and reason.
	// When no reason rule matches, the kind-level rule applies.
	HTTPStatus(k kind.Kind, r reason.Reason) int

	// GRPCStatus returns the gRPC code for the given kind and reason.
	GRPCStatus(k kind.Kind, r reason.Reason) codes.Code

	// Status resolves both statuses in a single call with the same matching
	// logic.
	Status(k kind.Kind, r reason.Reason) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(k kind.Kind, r reason.Reason) string
}

// Status is a resolved pair of transport statuses for a single error.
type Status struct {
	HTTP int        // net/http status code.
	GRPC codes.Code // gRPC status code.
}
