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

package adapter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/dargs"
	"dirpx.dev/dargs/apis"
	"dirpx.dev/dargs/kind"
	"dirpx.dev/dargs/mapper"
	"dirpx.dev/dargs/reason"
)

// foreignErr implements the apis interfaces without being a dargs error.
type foreignErr struct{}

func (foreignErr) Error() string          { return "quota exhausted" }
func (foreignErr) ErrorKind() string      { return "Illegal-State" }
func (foreignErr) ErrorReason() string    { return "condition.state" }
func (foreignErr) ErrorParameter() string { return "quota" }

type badKindErr struct{}

func (badKindErr) Error() string     { return "bad" }
func (badKindErr) ErrorKind() string { return "teapot" }

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   kind.Kind
		reason reason.Reason
		ok     bool
	}{
		{"nil", nil, kind.Empty, reason.Empty, false},
		{"plain", errors.New("x"), kind.Empty, reason.Empty, false},
		{"dargs", dargs.InvalidArgument("p", "m", dargs.WithReason(reason.TextBlank)), kind.InvalidArgument, reason.TextBlank, true},
		{"wrapped", fmt.Errorf("ctx: %w", dargs.IndexOutOfBounds("i", "m")), kind.IndexOutOfBounds, reason.Empty, true},
		{"foreign", foreignErr{}, kind.IllegalState, reason.ConditionState, true},
		{"unknown kind", badKindErr{}, kind.Empty, reason.Empty, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, r, ok := Classify(tt.err)
			assert.Equal(t, tt.kind, k)
			assert.Equal(t, tt.reason, r)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestToView(t *testing.T) {
	e := dargs.InvalidArgument("port", "must be positive",
		dargs.WithReason(reason.NumericPositive),
		dargs.WithExpected("> 0"),
		dargs.WithActual("-1"),
	)
	assert.Equal(t, e.ErrorView(), ToView(fmt.Errorf("wrap: %w", e)))

	assert.Equal(t, apis.ErrorView{}, ToView(nil))
	assert.Equal(t, apis.ErrorView{Message: "x"}, ToView(errors.New("x")))
	assert.Equal(t, apis.ErrorView{
		Kind:      "illegal_state",
		Reason:    "condition.state",
		Parameter: "quota",
		Message:   "quota exhausted",
	}, ToView(foreignErr{}))
}

func TestToDescriptor(t *testing.T) {
	e := dargs.IndexOutOfBounds("index", "out of range", dargs.WithReason(reason.IndexElement))
	assert.Equal(t, apis.ErrorDescriptor{
		Kind:       "index_out_of_bounds",
		Reason:     "index.element",
		Parameter:  "index",
		HTTPStatus: 400,
		GRPCCode:   11,
	}, ToDescriptor(e, mapper.Default()))

	assert.Equal(t, apis.ErrorDescriptor{HTTPStatus: 500, GRPCCode: 13}, ToDescriptor(errors.New("x"), mapper.Default()))
	assert.Equal(t, apis.ErrorDescriptor{}, ToDescriptor(nil, mapper.Default()))
}

func TestToDescriptor_NilMapper(t *testing.T) {
	e := dargs.IllegalState("conn", "closed")
	assert.Equal(t, ToDescriptor(e, mapper.Default()), ToDescriptor(e, nil))
	assert.Equal(t, 409, ToDescriptor(e, nil).HTTPStatus)
}
