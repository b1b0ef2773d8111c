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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dargs/kind"
)

// defaultHTTP maps each kind to the HTTP status used when no rule applies.
//
// An index or bounds violation is still a malformed request from the
// client's point of view, hence 400 rather than 416.
var defaultHTTP = map[kind.Kind]int{
	kind.InvalidArgument:  http.StatusBadRequest,
	kind.IllegalState:     http.StatusConflict,
	kind.IndexOutOfBounds: http.StatusBadRequest,
}

// defaultGRPC follows the canonical google.rpc code semantics.
var defaultGRPC = map[kind.Kind]codes.Code{
	kind.InvalidArgument:  codes.InvalidArgument,
	kind.IllegalState:     codes.FailedPrecondition,
	kind.IndexOutOfBounds: codes.OutOfRange,
}
