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

package kind

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
	"unicode"
)

// Kind is the canonical, validated classification of an argument failure.
//
// It is a separate type (not just string) so that raw user input is never
// mixed with normalized values. The zero value ("") is not a valid kind.
type Kind string

// The closed set of kinds.
const (
	// InvalidArgument reports that a caller-supplied value fails a
	// precondition.
	InvalidArgument Kind = "invalid_argument"

	// IllegalState reports that the object or environment is not in a
	// condition to proceed.
	IllegalState Kind = "illegal_state"

	// IndexOutOfBounds reports that an index, offset, length or position is
	// outside its valid range.
	IndexOutOfBounds Kind = "index_out_of_bounds"
)

// Empty is the zero-value kind. It never validates.
const Empty Kind = ""

var (
	// ErrKindInvalid is returned when a value cannot be parsed or validated
	// as one of the known kinds.
	ErrKindInvalid = errors.New("dargs: invalid kind")
)

var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// all lists the known kinds in declaration order.
var all = []Kind{InvalidArgument, IllegalState, IndexOutOfBounds}

// All returns the known kinds in a stable order. The returned slice is a
// fresh copy.
func All() []Kind {
	out := make([]Kind, len(all))
	copy(out, all)
	return out
}

// Parse takes a user-provided string, normalizes it and checks it against
// the known kinds.
func Parse(s string) (Kind, error) {
	k := Kind(Normalize(s))
	if err := Validate(k); err != nil {
		return Empty, err
	}
	return k, nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Normalize brings an arbitrary string closer to the canonical kind form:
//
//   - trims surrounding spaces;
//   - splits CamelCase words ("IllegalState" -> "illegal_state");
//   - lowercases the value;
//   - replaces '-' and ' ' with '_'.
//
// It does NOT guarantee that the result is a known kind.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	// prev is the last rune written; prevUpper tracks the raw input so that
	// all-caps words ("INVALID_ARGUMENT") are not split letter by letter.
	prev, prevUpper := rune(0), false
	for _, r := range s {
		upper := unicode.IsUpper(r)
		switch {
		case r == '-' || r == ' ':
			r = '_'
		case upper:
			if prev != 0 && prev != '_' && !prevUpper {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
		prev, prevUpper = r, upper
	}
	return b.String()
}

// Validate reports whether k is one of the known kinds.
func Validate(k Kind) error {
	switch k {
	case InvalidArgument, IllegalState, IndexOutOfBounds:
		return nil
	default:
		return ErrKindInvalid
	}
}

// IsValid is a boolean shortcut for Validate.
func (k Kind) IsValid() bool {
	return Validate(k) == nil
}

// String returns the canonical string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler. Unknown kinds fail.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is normalized
// before it is checked, so "IndexOutOfBounds" and "index-out-of-bounds" are
// both accepted.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
