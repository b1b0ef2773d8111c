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

package dargs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"dirpx.dev/dargs/datatype"
	"dirpx.dev/dargs/kind"
	"dirpx.dev/dargs/reason"
)

func TestError_Format(t *testing.T) {
	cases := []struct {
		name string
		err  *ArgumentError
		want string
	}{
		{"full", InvalidArgument("port", "must be in range", WithExpected("[1, 65535]"), WithActual("0")),
			"invalid_argument: port: must be in range (expected [1, 65535], got 0)"},
		{"no parameter", IllegalState("", "state condition not satisfied"),
			"illegal_state: state condition not satisfied"},
		{"expected only", InvalidArgument("name", "must match pattern", WithExpected("^[a-z]+$")),
			"invalid_argument: name: must match pattern (expected ^[a-z]+$)"},
		{"actual only", IndexOutOfBounds("index", "out of range", WithActual("7")),
			"index_out_of_bounds: index: out of range (got 7)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("Error() = %q, want %q", got, tc.want)
			}
			if got := fmt.Sprintf("%v", tc.err); got != tc.want {
				t.Fatalf("%%v = %q, want %q", got, tc.want)
			}
			if got := fmt.Sprintf("%s", tc.err); got != tc.want {
				t.Fatalf("%%s = %q, want %q", got, tc.want)
			}
			if got, want := fmt.Sprintf("%q", tc.err), fmt.Sprintf("%q", tc.want); got != want {
				t.Fatalf("%%q = %s, want %s", got, want)
			}
		})
	}

	var nilErr *ArgumentError
	if nilErr.Error() != "<nil>" {
		t.Fatal("nil receiver must render <nil>")
	}
}

func TestError_VerboseFormat(t *testing.T) {
	e := InvalidArgument("age", "must be positive",
		WithReason(reason.NumericPositive),
		WithType(datatype.Int64),
		WithExpected("> 0"),
		WithActual("-3"),
	)
	want := `kind=invalid_argument reason=numeric.positive parameter=age type=int64 msg="must be positive" expected=> 0 actual=-3`
	if got := fmt.Sprintf("%+v", e); got != want {
		t.Fatalf("%%+v = %q, want %q", got, want)
	}

	bare := IllegalState("", "closed")
	if got := fmt.Sprintf("%+v", bare); got != `kind=illegal_state msg="closed"` {
		t.Fatalf("%%+v bare = %q", got)
	}
}

func TestError_Accessors(t *testing.T) {
	e := New(kind.IndexOutOfBounds, "offset", "must not be negative",
		WithReason(reason.BoundsOffset),
		WithActual("-1"),
		WithType(datatype.Int64),
	)
	if e.Kind() != kind.IndexOutOfBounds || e.Reason() != reason.BoundsOffset {
		t.Fatal("kind/reason mismatch")
	}
	if e.Parameter() != "offset" || e.Message() != "must not be negative" {
		t.Fatal("parameter/message mismatch")
	}
	if e.Expected() != "" || e.Actual() != "-1" || e.Type() != datatype.Int64 {
		t.Fatal("expected/actual/type mismatch")
	}
	if e.ErrorKind() != "index_out_of_bounds" || e.ErrorReason() != "bounds.offset" || e.ErrorParameter() != "offset" {
		t.Fatal("apis accessors mismatch")
	}
}

func TestError_Equal(t *testing.T) {
	a := InvalidArgument("x", "bad", WithExpected("> 0"), WithActual("0"))
	b := InvalidArgument("x", "bad", WithExpected("> 0"), WithActual("0"))
	c := InvalidArgument("x", "bad", WithExpected("> 0"), WithActual("1"))

	if !a.Equal(b) || !errors.Is(a, b) {
		t.Fatal("structurally equal errors must be Equal and errors.Is")
	}
	if a.Equal(c) {
		t.Fatal("different actual must not be Equal")
	}
	var n1, n2 *ArgumentError
	if !n1.Equal(n2) || a.Equal(nil) {
		t.Fatal("nil equality broken")
	}
}

func TestError_Sentinels(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
		is       func(error) bool
		kind     kind.Kind
	}{
		{InvalidArgument("a", "m"), ErrInvalidArgument, IsInvalidArgument, kind.InvalidArgument},
		{IllegalState("", "m"), ErrIllegalState, IsIllegalState, kind.IllegalState},
		{IndexOutOfBounds("i", "m"), ErrIndexOutOfBounds, IsIndexOutOfBounds, kind.IndexOutOfBounds},
	}
	for _, tc := range cases {
		wrapped := fmt.Errorf("handler: %w", tc.err)
		if !errors.Is(wrapped, tc.sentinel) || !tc.is(wrapped) {
			t.Fatalf("%s: sentinel not matched through wrap", tc.kind)
		}
		if got := KindOf(wrapped); got != tc.kind {
			t.Fatalf("KindOf = %q, want %q", got, tc.kind)
		}
		for _, other := range []error{ErrInvalidArgument, ErrIllegalState, ErrIndexOutOfBounds} {
			if other != tc.sentinel && errors.Is(tc.err, other) {
				t.Fatalf("%s must not match %v", tc.kind, other)
			}
		}
	}

	if KindOf(errors.New("plain")) != kind.Empty || KindOf(nil) != kind.Empty {
		t.Fatal("unclassified errors must yield kind.Empty")
	}
	if IsInvalidArgument(nil) {
		t.Fatal("nil must not be classified")
	}
}

type foreignError struct{}

func (foreignError) Error() string     { return "foreign" }
func (foreignError) ErrorKind() string { return "IllegalState" }

func TestKindOf_KindedError(t *testing.T) {
	if got := KindOf(fmt.Errorf("x: %w", foreignError{})); got != kind.IllegalState {
		t.Fatalf("KindOf(foreign) = %q", got)
	}
}

func TestAsArgumentError(t *testing.T) {
	e := InvalidArgument("name", "must not be blank")
	got, ok := AsArgumentError(fmt.Errorf("wrap: %w", e))
	if !ok || got != e {
		t.Fatal("AsArgumentError must find the original pointer")
	}
	if _, ok := AsArgumentError(errors.New("x")); ok {
		t.Fatal("plain error must not convert")
	}
}

func TestError_DetailsAndView(t *testing.T) {
	e := InvalidArgument("size", "must be at most 10",
		WithReason(reason.CollectionLengthMax),
		WithExpected("<= 10"),
		WithActual("12"),
	)
	ds := e.ErrorDetails()
	if len(ds) != 1 {
		t.Fatalf("details len = %d", len(ds))
	}
	d := ds[0]
	if d.Type != "argument" || d.Field != "size" || d.Reason != "collection.length.max" {
		t.Fatalf("unexpected detail %+v", d)
	}
	if d.Info["expected"] != "<= 10" || d.Info["actual"] != "12" {
		t.Fatalf("unexpected info %v", d.Info)
	}
	if _, ok := d.Info["type"]; ok {
		t.Fatal("unknown type must be omitted")
	}

	v := e.ErrorView()
	if v.Kind != "invalid_argument" || v.Parameter != "size" || v.Expected != "<= 10" || v.Actual != "12" {
		t.Fatalf("unexpected view %+v", v)
	}

	if IllegalState("", "closed").ErrorDetails() != nil {
		t.Fatal("bare error must have no details")
	}
}

func TestError_LogValue(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	e := InvalidArgument("port", "must be in range",
		WithReason(reason.NumericClosedRange),
		WithType(datatype.Int64),
		WithExpected("[1, 65535]"),
		WithActual("0"),
	)
	log.Warn("rejected", "error", e)

	var rec struct {
		Error map[string]string `json:"error"`
	}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log record: %v", err)
	}
	want := map[string]string{
		"kind":      "invalid_argument",
		"reason":    "numeric.range.closed",
		"parameter": "port",
		"message":   "must be in range",
		"expected":  "[1, 65535]",
		"actual":    "0",
		"type":      "int64",
	}
	if len(rec.Error) != len(want) {
		t.Fatalf("log group = %v", rec.Error)
	}
	for k, v := range want {
		if rec.Error[k] != v {
			t.Fatalf("log %s = %q, want %q", k, rec.Error[k], v)
		}
	}

	buf.Reset()
	log.Warn("rejected", "error", IllegalState("", "closed"))
	var bare struct {
		Error map[string]string `json:"error"`
	}
	if err := json.Unmarshal(buf.Bytes(), &bare); err != nil {
		t.Fatalf("decode log record: %v", err)
	}
	if _, ok := bare.Error["parameter"]; ok || len(bare.Error) != 2 {
		t.Fatalf("empty fields must be omitted: %v", bare.Error)
	}
}
