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

package condition_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dargs"
	"dirpx.dev/dargs/condition"
	"dirpx.dev/dargs/kind"
	"dirpx.dev/dargs/reason"
)

func requireArgErr(t *testing.T, err error, k kind.Kind, r reason.Reason) *dargs.ArgumentError {
	t.Helper()
	require.Error(t, err)
	ae, ok := dargs.AsArgumentError(err)
	require.True(t, ok, "want *dargs.ArgumentError, got %T", err)
	assert.Equal(t, k, ae.Kind())
	assert.Equal(t, r, ae.Reason())
	return ae
}

func TestCheckArgument(t *testing.T) {
	t.Parallel()

	assert.NoError(t, condition.CheckArgument(true, "unused"))

	ae := requireArgErr(t, condition.CheckArgument(false, "n must be positive"), kind.InvalidArgument, reason.ConditionArgument)
	assert.Equal(t, "n must be positive", ae.Message())
	assert.Equal(t, "invalid_argument: n must be positive", ae.Error())

	ae = requireArgErr(t, condition.CheckArgument(false, ""), kind.InvalidArgument, reason.ConditionArgument)
	assert.Equal(t, condition.DefaultArgumentMessage, ae.Message())
}

func TestCheckArgumentf_Lazy(t *testing.T) {
	t.Parallel()

	calls := 0
	render := func() string { calls++; return "lazy" }

	require.NoError(t, condition.CheckArgumentFunc(true, render))
	assert.Zero(t, calls, "message must not be built on success")

	ae := requireArgErr(t, condition.CheckArgumentFunc(false, render), kind.InvalidArgument, reason.ConditionArgument)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "lazy", ae.Message())

	ae = requireArgErr(t, condition.CheckArgumentFunc(false, nil), kind.InvalidArgument, reason.ConditionArgument)
	assert.Equal(t, condition.DefaultArgumentMessage, ae.Message())

	ae = requireArgErr(t, condition.CheckArgumentf(false, "got %d items, want %d", 3, 2), kind.InvalidArgument, reason.ConditionArgument)
	assert.Equal(t, "got 3 items, want 2", ae.Message())
	assert.NoError(t, condition.CheckArgumentf(true, "%d", 1))
}

func TestCheckState(t *testing.T) {
	t.Parallel()

	assert.NoError(t, condition.CheckState(true, ""))
	assert.NoError(t, condition.CheckStatef(true, "%s", "x"))
	assert.NoError(t, condition.CheckStateFunc(true, nil))

	ae := requireArgErr(t, condition.CheckState(false, ""), kind.IllegalState, reason.ConditionState)
	assert.Equal(t, condition.DefaultStateMessage, ae.Message())
	assert.True(t, dargs.IsIllegalState(ae))
	assert.False(t, dargs.IsInvalidArgument(ae))

	ae = requireArgErr(t, condition.CheckStatef(false, "pool %q closed", "db"), kind.IllegalState, reason.ConditionState)
	assert.Equal(t, `pool "db" closed`, ae.Message())

	ae = requireArgErr(t, condition.CheckStateFunc(false, func() string { return "not started" }), kind.IllegalState, reason.ConditionState)
	assert.Equal(t, "not started", ae.Message())
}

func TestCheckBounds(t *testing.T) {
	t.Parallel()

	okCases := []struct{ offset, length, total int }{
		{0, 0, 0}, {0, 10, 10}, {3, 7, 10}, {10, 0, 10},
	}
	for _, tc := range okCases {
		off, n, err := condition.CheckBounds(tc.offset, tc.length, tc.total)
		require.NoError(t, err, "%+v", tc)
		assert.Equal(t, tc.offset, off)
		assert.Equal(t, tc.length, n)
	}

	failCases := []struct {
		name                  string
		offset, length, total int
		kind                  kind.Kind
		reason                reason.Reason
	}{
		{"negative offset", -1, 2, 10, kind.IndexOutOfBounds, reason.BoundsOffset},
		{"negative length", 0, -2, 10, kind.IndexOutOfBounds, reason.BoundsLength},
		{"past end", 4, 7, 10, kind.IndexOutOfBounds, reason.BoundsRange},
		{"offset past end", 11, 0, 10, kind.IndexOutOfBounds, reason.BoundsRange},
		{"overflow", math.MaxInt, 1, math.MaxInt, kind.IndexOutOfBounds, reason.BoundsOverflow},
		{"overflow large", math.MaxInt - 5, 10, math.MaxInt, kind.IndexOutOfBounds, reason.BoundsOverflow},
		{"negative total", 0, 0, -1, kind.IndexOutOfBounds, reason.ConditionSize},
	}
	for _, tc := range failCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := condition.CheckBounds(tc.offset, tc.length, tc.total)
			requireArgErr(t, err, tc.kind, tc.reason)
		})
	}

	_, _, err := condition.CheckBounds(4, 7, 10)
	assert.Equal(t, "index_out_of_bounds: length: length 7 starting from offset 4 exceeds total length 10 (expected <= 6, got 7)", err.Error())
}

func TestCheckElementIndex(t *testing.T) {
	t.Parallel()

	i, err := condition.CheckElementIndex(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	i, err = condition.CheckElementIndex(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	for _, idx := range []int{-1, 3, 4} {
		_, err = condition.CheckElementIndex(idx, 3)
		requireArgErr(t, err, kind.IndexOutOfBounds, reason.IndexElement)
	}
	_, err = condition.CheckElementIndex(0, 0)
	ae := requireArgErr(t, err, kind.IndexOutOfBounds, reason.IndexElement)
	assert.Equal(t, "[0, 0)", ae.Expected())

	_, err = condition.CheckElementIndex(0, -1)
	requireArgErr(t, err, kind.IndexOutOfBounds, reason.ConditionSize)
}

func TestCheckPositionIndex(t *testing.T) {
	t.Parallel()

	for _, idx := range []int{0, 2, 3} {
		got, err := condition.CheckPositionIndex(idx, 3)
		require.NoError(t, err)
		assert.Equal(t, idx, got)
	}
	for _, idx := range []int{-1, 4} {
		_, err := condition.CheckPositionIndex(idx, 3)
		requireArgErr(t, err, kind.IndexOutOfBounds, reason.IndexPosition)
	}
	_, err := condition.CheckPositionIndex(0, -3)
	requireArgErr(t, err, kind.IndexOutOfBounds, reason.ConditionSize)
}

func TestCheckPositionIndexes(t *testing.T) {
	t.Parallel()

	for _, tc := range [][3]int{{0, 0, 0}, {0, 5, 5}, {2, 2, 5}} {
		start, end, err := condition.CheckPositionIndexes(tc[0], tc[1], tc[2])
		require.NoError(t, err, "%v", tc)
		assert.Equal(t, tc[0], start)
		assert.Equal(t, tc[1], end)
	}

	cases := []struct {
		name             string
		start, end, size int
		reason           reason.Reason
		message          string
	}{
		{"start after end", 3, 2, 5, reason.IndexRangeOrder, "start index 3 is greater than end index 2"},
		{"end past size", 0, 6, 5, reason.IndexRangeEnd, "end index 6 out of range [0, 5]"},
		{"negative start", -1, 2, 5, reason.IndexRangeStart, "start index -1 must not be negative"},
	}
	messages := map[string]bool{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := condition.CheckPositionIndexes(tc.start, tc.end, tc.size)
			ae := requireArgErr(t, err, kind.IndexOutOfBounds, tc.reason)
			assert.Equal(t, tc.message, ae.Message())
		})
		_, _, err := condition.CheckPositionIndexes(tc.start, tc.end, tc.size)
		messages[err.Error()] = true
	}
	assert.Len(t, messages, len(cases), "each violation must be distinguishable")

	_, _, err := condition.CheckPositionIndexes(0, 0, -1)
	requireArgErr(t, err, kind.IndexOutOfBounds, reason.ConditionSize)
}

func TestChecks_Sentinels(t *testing.T) {
	t.Parallel()

	_, err := condition.CheckElementIndex(9, 1)
	assert.True(t, errors.Is(err, dargs.ErrIndexOutOfBounds))
	assert.False(t, errors.Is(err, dargs.ErrInvalidArgument))
}

func TestChecks_NegativeSize(t *testing.T) {
	t.Parallel()

	_, _, err := condition.CheckBounds(0, 0, -1)
	assert.True(t, dargs.IsIndexOutOfBounds(err))
	assert.Equal(t, "index_out_of_bounds: total: must not be negative (expected >= 0, got -1)", err.Error())

	_, err = condition.CheckElementIndex(0, -1)
	assert.True(t, dargs.IsIndexOutOfBounds(err))
	_, err = condition.CheckPositionIndex(0, -1)
	assert.True(t, dargs.IsIndexOutOfBounds(err))
	_, _, err = condition.CheckPositionIndexes(0, 0, -1)
	assert.True(t, dargs.IsIndexOutOfBounds(err))
	assert.False(t, dargs.IsInvalidArgument(err))
}
