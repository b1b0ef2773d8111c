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

// Package optional provides a small optional value type and presence checks
// over it.
//
//	v := optional.FromPtr(req.Limit)
//	limit, err := optional.ValidateIfPresent(v, "limit", func(n int) (int, error) {
//	    return numeric.RequireInClosedRange(n, "limit", 1, 100)
//	})
package optional
