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

package text_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dargs"
	"dirpx.dev/dargs/kind"
	"dirpx.dev/dargs/reason"
	"dirpx.dev/dargs/text"
)

type username string

func requireReason(t *testing.T, err error, k kind.Kind, r reason.Reason) *dargs.ArgumentError {
	t.Helper()
	require.Error(t, err)
	ae, ok := dargs.AsArgumentError(err)
	require.True(t, ok)
	assert.Equal(t, k, ae.Kind())
	assert.Equal(t, r, ae.Reason())
	return ae
}

func TestRequireNonBlank(t *testing.T) {
	t.Parallel()

	for _, blank := range []string{"", " ", "   ", "\t\n", "  "} {
		_, err := text.RequireNonBlank(blank, "name")
		ae := requireReason(t, err, kind.InvalidArgument, reason.TextBlank)
		assert.Equal(t, "name", ae.Parameter())
	}

	got, err := text.RequireNonBlank(" a ", "name")
	require.NoError(t, err)
	assert.Equal(t, " a ", got, "value must not be trimmed")

	u, err := text.RequireNonBlank(username("bob"), "user")
	require.NoError(t, err)
	assert.Equal(t, username("bob"), u)
}

func TestLength_Graphemes(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"":                                           0,
		"hello":                                      5,
		"h\u00e9llo":                                 5,
		"he\u0301llo":                                5,
		"\U0001F1E9\U0001F1EA":                       1,
		"\U0001F468\u200d\U0001F469\u200d\U0001F467": 1,
		"\u65e5\u672c\u8a9e":                         3,
		"e\u0301":                                    1,
		"\r\n":                                       1,
	}
	for s, want := range cases {
		assert.Equal(t, want, text.Length(s), "Length(%q)", s)
	}
}

func TestLengthChecks(t *testing.T) {
	t.Parallel()

	s := "he\u0301llo"

	got, err := text.RequireLength(s, "s", 5)
	require.NoError(t, err)
	assert.Equal(t, s, got)
	_, err = text.RequireLength(s, "s", len(s))
	ae := requireReason(t, err, kind.InvalidArgument, reason.TextLengthExact)
	assert.Equal(t, "5", ae.Actual())

	_, err = text.RequireLengthAtLeast(s, "s", 5)
	require.NoError(t, err)
	_, err = text.RequireLengthAtLeast(s, "s", 6)
	ae = requireReason(t, err, kind.InvalidArgument, reason.TextLengthMin)
	assert.Equal(t, "invalid_argument: s: is too short (expected >= 6, got 5)", ae.Error())

	_, err = text.RequireLengthAtMost(s, "s", 5)
	require.NoError(t, err)
	_, err = text.RequireLengthAtMost(s, "s", 4)
	requireReason(t, err, kind.InvalidArgument, reason.TextLengthMax)

	_, err = text.RequireLengthInRange(s, "s", 5, 5)
	require.NoError(t, err)
	_, err = text.RequireLengthInRange(s, "s", 1, 4)
	ae = requireReason(t, err, kind.InvalidArgument, reason.TextLengthRange)
	assert.Equal(t, "[1, 4]", ae.Expected())
	_, err = text.RequireLengthInRange(s, "s", 6, 1)
	assert.Error(t, err, "inverted range accepts nothing")
}

func TestRequireMatch(t *testing.T) {
	t.Parallel()

	digits := regexp.MustCompile(`\d+`)
	anchored := regexp.MustCompile(`^\d+$`)

	got, err := text.RequireMatch("order-42", "id", digits)
	require.NoError(t, err, "partial match must pass")
	assert.Equal(t, "order-42", got)

	_, err = text.RequireMatch("order-42", "id", anchored)
	ae := requireReason(t, err, kind.InvalidArgument, reason.TextPatternMatch)
	assert.Equal(t, `^\d+$`, ae.Expected())
	assert.Equal(t, `"order-42"`, ae.Actual())

	_, err = text.RequireNotMatch("abc", "id", digits)
	require.NoError(t, err)
	_, err = text.RequireNotMatch("a1", "id", digits)
	requireReason(t, err, kind.InvalidArgument, reason.TextPatternNotMatch)

	var nilRe *regexp.Regexp
	_, err = text.RequireMatch("x", "id", nilRe)
	requireReason(t, err, kind.IllegalState, reason.TextPatternNil)
	_, err = text.RequireNotMatch("x", "id", nil)
	requireReason(t, err, kind.IllegalState, reason.TextPatternNil)
}

func TestChain(t *testing.T) {
	t.Parallel()

	slug := regexp.MustCompile(`^[a-z0-9-]+$`)

	got, err := text.That(" go-1 ").RequireNonBlank("slug").RequireLengthInRange("slug", 1, 10).Value()
	require.NoError(t, err)
	assert.Equal(t, " go-1 ", got)

	chain := text.That("   ").
		RequireNonBlank("slug").
		RequireMatch("slug", slug).
		RequireLengthAtLeast("slug", 1)
	requireReason(t, chain.Err(), kind.InvalidArgument, reason.TextBlank)
	v, err := chain.Value()
	assert.Empty(t, v)
	assert.Error(t, err)
	assert.Panics(t, func() { chain.MustValue() })

	assert.Equal(t, username("ann"), text.That(username("ann")).
		RequireLength("user", 3).
		RequireLengthAtMost("user", 3).
		RequireNotMatch("user", regexp.MustCompile(`\s`)).
		MustValue())
}
