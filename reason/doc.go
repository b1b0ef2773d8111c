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

// Package reason identifies which constraint a failed check violated.
//
// Where a Kind answers "what sort of failure is this?", a Reason names the
// exact rule, e.g.:
//
//   - "numeric.range.closed"
//   - "text.length.min"
//   - "index.range.order"
//
// Reasons are dot-separated, lowercase, 1 to 4 segments deep. The first
// segment is the value category (condition, bounds, index, numeric, text,
// collection, optional); deeper segments refine it. Mappers and loggers can
// match on segment prefixes ("numeric.range" covers every range check).
//
// The zero value ("") is allowed and means "no reason attached".
package reason
