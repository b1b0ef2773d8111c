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

package datatype

import (
	"bytes"
	"encoding"
	"errors"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// DataType tags a value with its canonical type. The zero value is Unknown.
type DataType uint8

// Known tags. The numeric values are not part of the contract; use the
// names for persistence.
const (
	Unknown DataType = iota
	Bool
	Char
	Int8
	Int16
	Int32
	Int64
	Int128
	UInt8
	UInt16
	UInt32
	UInt64
	UInt128
	Float32
	Float64
	String
	Date
	Time
	DateTime
	Instant
	BigInteger
	BigDecimal
)

// ErrDataTypeInvalid is returned when a name does not denote a known tag.
var ErrDataTypeInvalid = errors.New("dargs: invalid data type")

var (
	_ encoding.TextMarshaler   = (*DataType)(nil)
	_ encoding.TextUnmarshaler = (*DataType)(nil)
)

var names = [...]string{
	Unknown:    "",
	Bool:       "bool",
	Char:       "char",
	Int8:       "int8",
	Int16:      "int16",
	Int32:      "int32",
	Int64:      "int64",
	Int128:     "int128",
	UInt8:      "uint8",
	UInt16:     "uint16",
	UInt32:     "uint32",
	UInt64:     "uint64",
	UInt128:    "uint128",
	Float32:    "float32",
	Float64:    "float64",
	String:     "string",
	Date:       "date",
	Time:       "time",
	DateTime:   "datetime",
	Instant:    "instant",
	BigInteger: "biginteger",
	BigDecimal: "bigdecimal",
}

var byName = func() map[string]DataType {
	m := make(map[string]DataType, len(names))
	for i, n := range names {
		if n != "" {
			m[n] = DataType(i)
		}
	}
	return m
}()

// All returns every known tag except Unknown, in declaration order.
func All() []DataType {
	out := make([]DataType, 0, len(names)-1)
	for i := Bool; int(i) < len(names); i++ {
		out = append(out, i)
	}
	return out
}

// String returns the canonical name. Unknown renders as "" and out-of-range
// values as "datatype(N)".
func (t DataType) String() string {
	if int(t) < len(names) {
		return names[t]
	}
	return "datatype(" + strconv.Itoa(int(t)) + ")"
}

// IsValid reports whether t is a known tag other than Unknown.
func (t DataType) IsValid() bool {
	return t != Unknown && int(t) < len(names)
}

// Parse maps a name to its tag. Matching ignores case and surrounding space.
func Parse(s string) (DataType, error) {
	if t, ok := byName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return Unknown, ErrDataTypeInvalid
}

// MarshalText implements encoding.TextMarshaler.
func (t DataType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, ErrDataTypeInvalid
	}
	return []byte(names[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *DataType) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Of returns the tag for the type parameter T, or Unknown.
//
// rune is an alias of int32 in Go, so Char is never produced here; tag runes
// explicitly where the distinction matters. int and uint resolve to the
// platform width.
func Of[T any]() DataType {
	var zero T
	return OfValue(zero)
}

// OfValue returns the tag for the dynamic type of v, or Unknown.
// Named types (type Age int) resolve through their underlying kind.
func OfValue(v any) DataType {
	switch v.(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case int:
		return ofKind(intKind)
	case uint8:
		return UInt8
	case uint16:
		return UInt16
	case uint32:
		return UInt32
	case uint64:
		return UInt64
	case uint:
		return ofKind(uintKind)
	case float32:
		return Float32
	case float64:
		return Float64
	case string:
		return String
	case time.Time, *time.Time:
		return Instant
	case big.Int, *big.Int:
		return BigInteger
	case big.Float, *big.Float, big.Rat, *big.Rat:
		return BigDecimal
	case nil:
		return Unknown
	default:
		return ofKind(reflect.TypeOf(v).Kind())
	}
}

func ofKind(k reflect.Kind) DataType {
	switch k {
	case reflect.Bool:
		return Bool
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Int:
		return ofKind(intKind)
	case reflect.Uint8:
		return UInt8
	case reflect.Uint16:
		return UInt16
	case reflect.Uint32:
		return UInt32
	case reflect.Uint64:
		return UInt64
	case reflect.Uint:
		return ofKind(uintKind)
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.String:
		return String
	default:
		return Unknown
	}
}

// intKind and uintKind are the fixed-width kinds matching int and uint on
// this platform.
var intKind, uintKind = func() (reflect.Kind, reflect.Kind) {
	if strconv.IntSize == 32 {
		return reflect.Int32, reflect.Uint32
	}
	return reflect.Int64, reflect.Uint64
}()
