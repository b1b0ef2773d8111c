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

// Package mapper provides deterministic, immutable mappings from dargs error
// kinds (dirpx.dev/dargs/kind) and optional reasons (dirpx.dev/dargs/reason)
// to transport-level statuses for HTTP and gRPC.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the kind;
//  2. most specific reason-prefix rule for the kind;
//  3. kind default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal unless configured).
//
// Prefix rules are segment-aware: reasons are "."-separated segments and
// "*" matches exactly one segment. A longer pattern wins; at equal length
// the pattern whose first wildcard comes later wins.
//
//	WithHTTPPrefix(kind.InvalidArgument, "numeric.range", http.StatusUnprocessableEntity)
//	WithGRPCPrefix(kind.InvalidArgument, "*.length", codes.OutOfRange)
//
// # Library defaults
//
//	invalid_argument     400 / InvalidArgument
//	illegal_state        409 / FailedPrecondition
//	index_out_of_bounds  400 / OutOfRange
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTPPrefix(kind.InvalidArgument, "text.pattern", 422),
//	)
//	st := m.Status(kind.InvalidArgument, reason.TextPatternMatch)
//	// st.HTTP == 422, st.GRPC == codes.InvalidArgument
//
// The same rules can be read from YAML or TOML with LoadYAML / LoadTOML and
// turned into options with Config.Options.
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a (kind, reason) pair
// was resolved. It is meant for logs and tests, not for machine parsing.
//
// # Immutability
//
// All inputs are copied during New; a Mapper never observes later changes to
// caller-owned data and is safe to share across goroutines.
package mapper
