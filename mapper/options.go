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
	"google.golang.org/grpc/codes"

	"dirpx.dev/dargs/apis"
	"dirpx.dev/dargs/kind"
)

// Option configures the Mapper at build time. Options are applied to an
// internal builder and then frozen into an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault replaces the default HTTP status for k.
func WithHTTPDefault(k kind.Kind, status int) Option {
	return func(b *builder) { b.httpDefaults[k] = status }
}

// WithGRPCDefault replaces the default gRPC code for k.
func WithGRPCDefault(k kind.Kind, c codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[k] = c }
}

// WithHTTPOverride forces the HTTP status for k, ahead of any reason rule.
func WithHTTPOverride(k kind.Kind, status int) Option {
	return func(b *builder) { b.httpOverride[k] = status }
}

// WithGRPCOverride forces the gRPC code for k, ahead of any reason rule.
func WithGRPCOverride(k kind.Kind, c codes.Code) Option {
	return func(b *builder) { b.grpcOverride[k] = c }
}

// WithHTTPPrefix adds a reason-prefix rule for k. Use "*" to match a single
// segment.
func WithHTTPPrefix(k kind.Kind, prefix string, status int) Option {
	return func(b *builder) {
		b.httpPrefixes[k] = append(b.httpPrefixes[k], prefixRule[int]{prefix, status})
	}
}

// WithGRPCPrefix adds a gRPC reason-prefix rule for k.
func WithGRPCPrefix(k kind.Kind, prefix string, c codes.Code) Option {
	return func(b *builder) {
		b.grpcPrefixes[k] = append(b.grpcPrefixes[k], prefixRule[codes.Code]{prefix, c})
	}
}

// WithPrefix adds both an HTTP and a gRPC rule for the same prefix. A zero
// field in st leaves that transport untouched.
func WithPrefix(k kind.Kind, prefix string, st apis.Status) Option {
	return func(b *builder) {
		if st.HTTP != 0 {
			WithHTTPPrefix(k, prefix, st.HTTP)(b)
		}
		if st.GRPC != codes.OK {
			WithGRPCPrefix(k, prefix, st.GRPC)(b)
		}
	}
}

// WithFallback replaces the statuses used for kinds without any rule.
func WithFallback(st apis.Status) Option {
	return func(b *builder) {
		if st.HTTP != 0 {
			b.fallbackHTTP = st.HTTP
		}
		if st.GRPC != codes.OK {
			b.fallbackGRPC = st.GRPC
		}
	}
}
