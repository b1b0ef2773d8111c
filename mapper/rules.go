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
	"fmt"
	"slices"
	"strings"

	"dirpx.dev/dargs/reason"
)

// wildcard matches exactly one reason segment.
const wildcard = "*"

// rule is a compiled reason-prefix rule.
type rule[V any] struct {
	pattern string
	segs    []string
	val     V
}

// ruleSet is ordered most specific first, so the first match wins.
type ruleSet[V any] []rule[V]

// compileRules validates raw rules and orders them by specificity. When the
// same pattern is registered twice the later value wins.
func compileRules[V any](raw []prefixRule[V]) (ruleSet[V], error) {
	if len(raw) == 0 {
		return nil, nil
	}
	index := make(map[string]int, len(raw))
	rs := make(ruleSet[V], 0, len(raw))
	for _, r := range raw {
		p, segs, err := parsePrefix(r.prefix)
		if err != nil {
			return nil, err
		}
		if i, ok := index[p]; ok {
			rs[i].val = r.val
			continue
		}
		index[p] = len(rs)
		rs = append(rs, rule[V]{pattern: p, segs: segs, val: r.val})
	}
	slices.SortStableFunc(rs, func(a, b rule[V]) int {
		return compareSpecificity(a.segs, b.segs)
	})
	return rs, nil
}

// match returns the most specific rule whose pattern is a segment prefix of r.
func (rs ruleSet[V]) match(r reason.Reason) (rule[V], bool) {
	if len(rs) == 0 || r == reason.Empty {
		return rule[V]{}, false
	}
	segs := r.Segments()
	for _, ru := range rs {
		if ru.matches(segs) {
			return ru, true
		}
	}
	return rule[V]{}, false
}

func (ru rule[V]) matches(segs []string) bool {
	if len(ru.segs) > len(segs) {
		return false
	}
	for i, s := range ru.segs {
		if s != wildcard && s != segs[i] {
			return false
		}
	}
	return true
}

// compareSpecificity sorts longer patterns first; at equal length the one
// with an exact segment at the first differing wildcard position goes first.
func compareSpecificity(a, b []string) int {
	if len(a) != len(b) {
		return len(b) - len(a)
	}
	for i := range a {
		aw, bw := a[i] == wildcard, b[i] == wildcard
		switch {
		case aw && !bw:
			return 1
		case !aw && bw:
			return -1
		}
	}
	return 0
}

// parsePrefix normalizes a reason prefix and splits it into segments. Every
// segment is either "*" or [a-z][a-z0-9_]*, and at least one is not "*".
func parsePrefix(raw string) (string, []string, error) {
	p := reason.Normalize(raw)
	if p == "" {
		return "", nil, fmt.Errorf("%w: empty prefix", ErrInvalidPrefix)
	}
	segs := strings.Split(p, ".")
	if len(segs) > reason.MaxSegments {
		return "", nil, fmt.Errorf("%w: %q has more than %d segments", ErrInvalidPrefix, p, reason.MaxSegments)
	}
	allWild := true
	for _, seg := range segs {
		if seg == wildcard {
			continue
		}
		allWild = false
		if !validSegment(seg) {
			return "", nil, fmt.Errorf("%w: invalid segment %q in %q", ErrInvalidPrefix, seg, p)
		}
	}
	if allWild {
		return "", nil, fmt.Errorf("%w: %q consists of wildcards only", ErrInvalidPrefix, p)
	}
	return p, segs, nil
}

func validSegment(seg string) bool {
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
