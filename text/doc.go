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

// Package text provides blankness, length and pattern checks over strings.
//
// Lengths are counted in user-perceived characters. A character here is a
// grapheme cluster, not a code point: "héllo", "🇩🇪", a decomposed "é" and
// "\r\n" have lengths 5, 1, 1 and 1, where their rune counts are 5, 2, 2
// and 2. Bounds are inclusive.
//
// Pattern checks take a Matcher, which *regexp.Regexp satisfies. Matching
// uses the matcher's own MatchString, i.e. for a regexp the pattern may match
// anywhere in the value; anchor it with ^...$ to require a full match.
package text
