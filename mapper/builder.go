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
	"maps"
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dargs/kind"
)

type prefixRule[V any] struct {
	// prefix is the raw reason prefix as passed by the caller; it is
	// normalized and validated in New.
	prefix string
	val    V
}

type builder struct {
	httpDefaults map[kind.Kind]int
	grpcDefaults map[kind.Kind]codes.Code

	httpOverride map[kind.Kind]int
	grpcOverride map[kind.Kind]codes.Code

	httpPrefixes map[kind.Kind][]prefixRule[int]
	grpcPrefixes map[kind.Kind][]prefixRule[codes.Code]

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder returns a builder seeded with the library defaults.
func newBuilder() *builder {
	return &builder{
		httpDefaults: maps.Clone(defaultHTTP),
		grpcDefaults: maps.Clone(defaultGRPC),

		httpOverride: make(map[kind.Kind]int),
		grpcOverride: make(map[kind.Kind]codes.Code),
		httpPrefixes: make(map[kind.Kind][]prefixRule[int]),
		grpcPrefixes: make(map[kind.Kind][]prefixRule[codes.Code]),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}

// kinds returns every kind the builder has any rule for.
func (b *builder) kinds() []kind.Kind {
	seen := make(map[kind.Kind]struct{})
	for _, m := range []map[kind.Kind]int{b.httpDefaults, b.httpOverride} {
		for k := range m {
			seen[k] = struct{}{}
		}
	}
	for _, m := range []map[kind.Kind]codes.Code{b.grpcDefaults, b.grpcOverride} {
		for k := range m {
			seen[k] = struct{}{}
		}
	}
	for k := range b.httpPrefixes {
		seen[k] = struct{}{}
	}
	for k := range b.grpcPrefixes {
		seen[k] = struct{}{}
	}
	out := make([]kind.Kind, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	return out
}
