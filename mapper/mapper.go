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
	"errors"
	"fmt"
	"maps"
	"strings"
	"sync"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dargs/apis"
	"dirpx.dev/dargs/kind"
	"dirpx.dev/dargs/reason"
)

var (
	// ErrInvalidPrefix is returned by New for a malformed reason prefix.
	ErrInvalidPrefix = errors.New("mapper: invalid reason prefix")
	// ErrInvalidStatus is returned by New for an HTTP status outside
	// 100..599 or an unknown gRPC code.
	ErrInvalidStatus = errors.New("mapper: invalid status")
)

// maxGRPCCode is the highest canonical gRPC code.
const maxGRPCCode = codes.Unauthenticated

// New constructs an immutable apis.Mapper snapshot.
//
// Build steps:
//
//  1. seed a builder with the library defaults;
//  2. apply opts in order;
//  3. validate kinds and statuses, compile the reason-prefix rules;
//  4. copy everything into a fresh mapper.
func New(opts ...Option) (apis.Mapper, error) {
	return build(opts)
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) apis.Mapper {
	m, err := build(opts)
	if err != nil {
		panic(err)
	}
	return m
}

var defaultMapper = sync.OnceValue(func() apis.Mapper { return MustNew() })

// Default returns a shared mapper holding only the library defaults.
func Default() apis.Mapper { return defaultMapper() }

func build(opts []Option) (*mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	for _, k := range b.kinds() {
		if err := kind.Validate(k); err != nil {
			return nil, fmt.Errorf("mapper: kind %q: %w", k, err)
		}
	}
	if err := validHTTP(b.fallbackHTTP); err != nil {
		return nil, fmt.Errorf("mapper: fallback: %w", err)
	}
	if err := validGRPC(b.fallbackGRPC); err != nil {
		return nil, fmt.Errorf("mapper: fallback: %w", err)
	}
	if err := checkStatuses(b.httpDefaults, validHTTP, "HTTP default"); err != nil {
		return nil, err
	}
	if err := checkStatuses(b.httpOverride, validHTTP, "HTTP override"); err != nil {
		return nil, err
	}
	if err := checkStatuses(b.grpcDefaults, validGRPC, "gRPC default"); err != nil {
		return nil, err
	}
	if err := checkStatuses(b.grpcOverride, validGRPC, "gRPC override"); err != nil {
		return nil, err
	}

	httpRules := make(map[kind.Kind]ruleSet[int], len(b.httpPrefixes))
	for k, raw := range b.httpPrefixes {
		for _, r := range raw {
			if err := validHTTP(r.val); err != nil {
				return nil, fmt.Errorf("mapper: HTTP prefix %q for kind %q: %w", r.prefix, k, err)
			}
		}
		rs, err := compileRules(raw)
		if err != nil {
			return nil, fmt.Errorf("mapper: HTTP rules for kind %q: %w", k, err)
		}
		httpRules[k] = rs
	}

	grpcRules := make(map[kind.Kind]ruleSet[codes.Code], len(b.grpcPrefixes))
	for k, raw := range b.grpcPrefixes {
		for _, r := range raw {
			if err := validGRPC(r.val); err != nil {
				return nil, fmt.Errorf("mapper: gRPC prefix %q for kind %q: %w", r.prefix, k, err)
			}
		}
		rs, err := compileRules(raw)
		if err != nil {
			return nil, fmt.Errorf("mapper: gRPC rules for kind %q: %w", k, err)
		}
		grpcRules[k] = rs
	}

	return &mapper{
		httpDefault:  maps.Clone(b.httpDefaults),
		grpcDefault:  maps.Clone(b.grpcDefaults),
		httpOverride: maps.Clone(b.httpOverride),
		grpcOverride: maps.Clone(b.grpcOverride),
		httpRules:    httpRules,
		grpcRules:    grpcRules,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// mapper combines per-kind defaults, per-kind overrides and per-kind
// reason-prefix rules. It is read-only after build.
type mapper struct {
	httpDefault  map[kind.Kind]int
	grpcDefault  map[kind.Kind]codes.Code
	httpOverride map[kind.Kind]int
	grpcOverride map[kind.Kind]codes.Code

	httpRules map[kind.Kind]ruleSet[int]
	grpcRules map[kind.Kind]ruleSet[codes.Code]

	fallbackHTTP int
	fallbackGRPC codes.Code
}

var _ apis.Mapper = (*mapper)(nil)

// source names the tier that produced a status.
type source string

const (
	fromOverride source = "override"
	fromPrefix   source = "prefix"
	fromDefault  source = "default"
	fromFallback source = "fallback"
)

// resolution is one resolved status plus where it came from.
type resolution[V any] struct {
	val     V
	src     source
	pattern string
}

func resolve[V any](k kind.Kind, r reason.Reason, override map[kind.Kind]V, rules map[kind.Kind]ruleSet[V], def map[kind.Kind]V, fallback V) resolution[V] {
	if v, ok := override[k]; ok {
		return resolution[V]{val: v, src: fromOverride}
	}
	if ru, ok := rules[k].match(r); ok {
		return resolution[V]{val: ru.val, src: fromPrefix, pattern: ru.pattern}
	}
	if v, ok := def[k]; ok {
		return resolution[V]{val: v, src: fromDefault}
	}
	return resolution[V]{val: fallback, src: fromFallback}
}

func (m *mapper) resolveHTTP(k kind.Kind, r reason.Reason) resolution[int] {
	return resolve(k, r, m.httpOverride, m.httpRules, m.httpDefault, m.fallbackHTTP)
}

func (m *mapper) resolveGRPC(k kind.Kind, r reason.Reason) resolution[codes.Code] {
	return resolve(k, r, m.grpcOverride, m.grpcRules, m.grpcDefault, m.fallbackGRPC)
}

// HTTPStatus resolves the HTTP status for k and r.
func (m *mapper) HTTPStatus(k kind.Kind, r reason.Reason) int {
	return m.resolveHTTP(k, r).val
}

// GRPCStatus resolves the gRPC code for k and r.
func (m *mapper) GRPCStatus(k kind.Kind, r reason.Reason) codes.Code {
	return m.resolveGRPC(k, r).val
}

// Status resolves both transports with the same inputs.
func (m *mapper) Status(k kind.Kind, r reason.Reason) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(k, r),
		GRPC: m.GRPCStatus(k, r),
	}
}

// Explain renders which tier resolved each transport, e.g.
//
//	kind="invalid_argument" reason="numeric.range.closed"
//	http: source=prefix pattern="numeric.range" -> 422
//	grpc: source=default -> InvalidArgument(3)
func (m *mapper) Explain(k kind.Kind, r reason.Reason) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q reason=%q\n", k, r)

	h := m.resolveHTTP(k, r)
	_, _ = fmt.Fprintf(&b, "http: source=%s", h.src)
	if h.pattern != "" {
		_, _ = fmt.Fprintf(&b, " pattern=%q", h.pattern)
	}
	_, _ = fmt.Fprintf(&b, " -> %d\n", h.val)

	g := m.resolveGRPC(k, r)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s", g.src)
	if g.pattern != "" {
		_, _ = fmt.Fprintf(&b, " pattern=%q", g.pattern)
	}
	_, _ = fmt.Fprintf(&b, " -> %s(%d)", g.val, int(g.val))

	return b.String()
}

func validHTTP(status int) error {
	if status < 100 || status > 599 {
		return fmt.Errorf("%w: HTTP %d", ErrInvalidStatus, status)
	}
	return nil
}

func validGRPC(c codes.Code) error {
	if c > maxGRPCCode {
		return fmt.Errorf("%w: gRPC code %d", ErrInvalidStatus, uint32(c))
	}
	return nil
}

func checkStatuses[V any](m map[kind.Kind]V, valid func(V) error, what string) error {
	for k, v := range m {
		if err := valid(v); err != nil {
			return fmt.Errorf("mapper: %s for kind %q: %w", what, k, err)
		}
	}
	return nil
}
