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

// Package dargs is the error model shared by every dargs check.
//
// A failed check returns an *ArgumentError: a small immutable value carrying
// the kind of failure (see package kind), the dotted reason of the violated
// constraint (see package reason), the parameter label, a human message and
// optional renderings of the expected constraint and the actual value.
//
// The check packages (condition, numeric, text, collection, optional) build
// on this model; the transport packages (mapper, grpcx, httpx, adapter) only
// need the apis interfaces it implements.
//
// Typical use:
//
//	port, err := numeric.RequireInClosedRange(port, "port", 1, 65535)
//	if err != nil {
//	    return err
//	}
//
//	if dargs.IsInvalidArgument(err) { ... }
//	log.Warn("rejected", "error", err) // slog renders the structured fields
package dargs
