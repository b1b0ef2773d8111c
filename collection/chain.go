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

package collection

// Arg carries a slice through a chain of checks, stopping at the first
// failure.
type Arg[S ~[]E, E any] struct {
	value S
	err   error
}

// That starts a chain on xs.
func That[S ~[]E, E any](xs S) Arg[S, E] {
	return Arg[S, E]{value: xs}
}

// Bind applies f unless the chain has already failed.
func (a Arg[S, E]) Bind(f func(S) (S, error)) Arg[S, E] {
	if a.err != nil {
		return a
	}
	v, err := f(a.value)
	return Arg[S, E]{value: v, err: err}
}

// Value returns the checked slice, or nil and the first error.
func (a Arg[S, E]) Value() (S, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.value, nil
}

// Err returns the first error of the chain, or nil.
func (a Arg[S, E]) Err() error { return a.err }

// MustValue is like Value but panics with the error.
func (a Arg[S, E]) MustValue() S {
	if a.err != nil {
		panic(a.err)
	}
	return a.value
}

// RequireNonEmpty is the chained form of RequireNonEmpty.
func (a Arg[S, E]) RequireNonEmpty(name string) Arg[S, E] {
	return a.Bind(func(v S) (S, error) { return RequireNonEmpty(v, name) })
}

// RequireLength is the chained form of RequireLength.
func (a Arg[S, E]) RequireLength(name string, n int) Arg[S, E] {
	return a.Bind(func(v S) (S, error) { return RequireLength(v, name, n) })
}

// RequireLengthAtLeast is the chained form of RequireLengthAtLeast.
func (a Arg[S, E]) RequireLengthAtLeast(name string, min int) Arg[S, E] {
	return a.Bind(func(v S) (S, error) { return RequireLengthAtLeast(v, name, min) })
}

// RequireLengthAtMost is the chained form of RequireLengthAtMost.
func (a Arg[S, E]) RequireLengthAtMost(name string, max int) Arg[S, E] {
	return a.Bind(func(v S) (S, error) { return RequireLengthAtMost(v, name, max) })
}

// RequireLengthInRange is the chained form of RequireLengthInRange.
func (a Arg[S, E]) RequireLengthInRange(name string, min, max int) Arg[S, E] {
	return a.Bind(func(v S) (S, error) { return RequireLengthInRange(v, name, min, max) })
}
