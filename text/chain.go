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

package text

// Arg carries a string through a chain of checks, stopping at the first
// failure.
type Arg[S ~string] struct {
	value S
	err   error
}

// That starts a chain on s.
func That[S ~string](s S) Arg[S] {
	return Arg[S]{value: s}
}

// Bind applies f unless the chain has already failed.
func (a Arg[S]) Bind(f func(S) (S, error)) Arg[S] {
	if a.err != nil {
		return a
	}
	v, err := f(a.value)
	return Arg[S]{value: v, err: err}
}

// Value returns the checked string, or "" and the first error.
func (a Arg[S]) Value() (S, error) {
	if a.err != nil {
		var zero S
		return zero, a.err
	}
	return a.value, nil
}

// Err returns the first error of the chain, or nil.
func (a Arg[S]) Err() error { return a.err }

// MustValue is like Value but panics with the error.
func (a Arg[S]) MustValue() S {
	if a.err != nil {
		panic(a.err)
	}
	return a.value
}

// RequireNonBlank is the chained form of RequireNonBlank.
func (a Arg[S]) RequireNonBlank(name string) Arg[S] {
	return a.Bind(func(v S) (S, error) { return RequireNonBlank(v, name) })
}

// RequireLength is the chained form of RequireLength.
func (a Arg[S]) RequireLength(name string, n int) Arg[S] {
	return a.Bind(func(v S) (S, error) { return RequireLength(v, name, n) })
}

// RequireLengthAtLeast is the chained form of RequireLengthAtLeast.
func (a Arg[S]) RequireLengthAtLeast(name string, min int) Arg[S] {
	return a.Bind(func(v S) (S, error) { return RequireLengthAtLeast(v, name, min) })
}

// RequireLengthAtMost is the chained form of RequireLengthAtMost.
func (a Arg[S]) RequireLengthAtMost(name string, max int) Arg[S] {
	return a.Bind(func(v S) (S, error) { return RequireLengthAtMost(v, name, max) })
}

// RequireLengthInRange is the chained form of RequireLengthInRange.
func (a Arg[S]) RequireLengthInRange(name string, min, max int) Arg[S] {
	return a.Bind(func(v S) (S, error) { return RequireLengthInRange(v, name, min, max) })
}

// RequireMatch is the chained form of RequireMatch.
func (a Arg[S]) RequireMatch(name string, m Matcher) Arg[S] {
	return a.Bind(func(v S) (S, error) { return RequireMatch(v, name, m) })
}

// RequireNotMatch is the chained form of RequireNotMatch.
func (a Arg[S]) RequireNotMatch(name string, m Matcher) Arg[S] {
	return a.Bind(func(v S) (S, error) { return RequireNotMatch(v, name, m) })
}
