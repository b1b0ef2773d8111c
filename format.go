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
	"fmt"
	"io"
)

// Format implements fmt.Formatter.
//
//	%s, %v  concise one-line Error()
//	%q      quoted Error()
//	%+v     every field as key=value:
//	        kind=<k> reason=<r> parameter=<p> type=<t> msg="<m>" expected=<e> actual=<a>
//
// Empty fields other than kind and msg are omitted from %+v.
func (e *ArgumentError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func (e *ArgumentError) formatVerbose(w io.Writer) {
	if e == nil {
		_, _ = io.WriteString(w, "<nil>")
		return
	}
	_, _ = fmt.Fprintf(w, "kind=%s", e.kind)
	if e.reason != "" {
		_, _ = fmt.Fprintf(w, " reason=%s", e.reason)
	}
	if e.parameter != "" {
		_, _ = fmt.Fprintf(w, " parameter=%s", e.parameter)
	}
	if e.typ.IsValid() {
		_, _ = fmt.Fprintf(w, " type=%s", e.typ)
	}
	_, _ = fmt.Fprintf(w, " msg=%q", e.message)
	if e.expected != "" {
		_, _ = fmt.Fprintf(w, " expected=%s", e.expected)
	}
	if e.actual != "" {
		_, _ = fmt.Fprintf(w, " actual=%s", e.actual)
	}
}
