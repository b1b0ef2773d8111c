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

// Package numeric provides sign, range and comparison checks over any
// built-in integer or floating point type.
//
// Every check takes the value first and the parameter label second, and
// returns the value unchanged on success:
//
//	port, err := numeric.RequireInClosedRange(port, "port", 1, 65535)
//
// Each check passes exactly when its relation holds. For floats this means
// NaN fails every ordering check and RequireZero, and passes RequireNonZero.
// A range whose min is greater than its max accepts nothing.
//
// That wraps a value for chaining; the chain stops at the first failure:
//
//	n, err := numeric.That(n).RequirePositive("n").RequireLessEqual("n", 100).Value()
package numeric
