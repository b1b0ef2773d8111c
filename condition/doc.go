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

// Package condition provides free-standing precondition checks: boolean
// argument and state conditions, offset/length bounds and index ranges.
//
// Each check returns nil (or the validated values) on success and an
// *dargs.ArgumentError on the first violated condition:
//
//	if err := condition.CheckArgument(n > 0, "n must be positive"); err != nil {
//	    return err
//	}
//	off, n, err := condition.CheckBounds(off, n, len(buf))
//
// The formatted variants (CheckArgumentf, CheckStateFunc, ...) build their
// message only when the condition is false.
package condition
