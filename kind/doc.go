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

// Package kind defines the closed set of failure kinds an argument check can
// report.
//
// A kind answers "what sort of precondition was violated?":
//
//   - invalid_argument: a caller-supplied value fails a precondition (wrong
//     sign, out of range, blank, too long, pattern mismatch, absent);
//   - illegal_state: a condition about the surrounding state, not a single
//     argument, is false;
//   - index_out_of_bounds: an index, offset, length or position falls outside
//     its valid range.
//
// Kinds are lowercased and underscore-separated so they can be used verbatim
// in JSON/proto payloads, log keys and mapper rules. The set is closed:
// Parse rejects anything else.
package kind
