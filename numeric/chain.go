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

package numeric

// Arg carries a number through a chain of checks. Once a check fails the
// remaining ones are skipped and the first error is kept.
type Arg[T Number] struct {
	value T
	err   error
}

// That starts a chain on v.
func That[T Number](v T) Arg[T] {
	return Arg[T]{value: v}
}

// Bind applies f unless the chain has already failed.
func (a Arg[T]) Bind(f func(T) (T, error)) Arg[T] {
	if a.err != nil {
		return a
	}
	v, err := f(a.value)
	return Arg[T]{value: v, err: err}
}

// Value returns the checked value, or the zero value and the first error.
func (a Arg[T]) Value() (T, error) {
	if a.err != nil {
		var zero T
		return zero, a.err
	}
	return a.value, nil
}

// Err returns the first error of the chain, or nil.
func (a Arg[T]) Err() error { return a.err }

// MustValue is like Value but panics with the error.
func (a Arg[T]) MustValue() T {
	if a.err != nil {
		panic(a.err)
	}
	return a.value
}

// RequireZero is the chained form of RequireZero.
func (a Arg[T]) RequireZero(name string) Arg[T] {
	return a.Bind(func(v T) (T, error) { return RequireZero(v, name) })
}

// RequireNonZero is the chained form of RequireNonZero.
func (a Arg[T]) RequireNonZero(name string) Arg[T] {
	return a.Bind(func(v T) (T, error) { return RequireNonZero(v, name) })
}

// RequirePositive is the chained form of RequirePositive.
func (a Arg[T]) RequirePositive(name string) Arg[T] {
	return a.Bind(func(v T) (T, error) { return RequirePositive(v, name) })
}

// RequireNonNegative is the chained form of RequireNonNegative.
func (a Arg[T]) RequireNonNegative(name string) Arg[T] {
	return a.Bind(func(v T) (T, error) { return RequireNonNegative(v, name) })
}

// RequireNegative is the chained form of RequireNegative.
func (a Arg[T]) RequireNegative(name string) Arg[T] {
	return a.Bind(func(v T) (T, error) { return RequireNegative(v, name) })
}

// RequireNonPositive is the chained form of RequireNonPositive.
func (a Arg[T]) RequireNonPositive(name string) Arg[T] {
	return a.Bind(func(v T) (T, error) { return RequireNonPositive(v, name) })
}

// RequireInClosedRange is the chained form of RequireInClosedRange.
func (a Arg[T]) RequireInClosedRange(name string, min, max T) Arg[T] {
	return a.Bind(func(v T) (T, error) { return RequireInClosedRange(v, name, min, max) })
}

// RequireInOpenRange is the chained form of RequireInOpenRange.
func (a Arg[T]) RequireInOpenRange(name string, min, max T) Arg[T] {
	return a.Bind(func(v T) (T, error) { return RequireInOpenRange(v, name, min, max) })
}

// RequireInLeftOpenRange is the chained form of RequireInLeftOpenRange.
func (a Arg[T]) RequireInLeftOpenRange(name string, min, max T) Arg[T] {
	return a.Bind(func(v T) (T, error) { return RequireInLeftOpenRange(v, name, min, max) })
}

// RequireInRightOpenRange is the chained form of RequireInRightOpenRange.
func (a Arg[T]) RequireInRightOpenRange(name string, min, max T) Arg[T] {
	return a.Bind(func(v T) (T, error) { return RequireInRightOpenRange(v, name, min, max) })
}

// RequireLess is the chained form of RequireLess.
func (a Arg[T]) RequireLess(name string, bound T) Arg[T] {
	return a.Bind(func(v T) (T, error) { return RequireLess(v, name, bound) })
}

// RequireLessEqual is the chained form of RequireLessEqual.
func (a Arg[T]) RequireLessEqual(name string, bound T) Arg[T] {
	return a.Bind(func(v T) (T, error) { return RequireLessEqual(v, name, bound) })
}

// RequireGreater is the chained form of RequireGreater.
func (a Arg[T]) RequireGreater(name string, bound T) Arg[T] {
	return a.Bind(func(v T) (T, error) { return RequireGreater(v, name, bound) })
}

// RequireGreaterEqual is the chained form of RequireGreaterEqual.
func (a Arg[T]) RequireGreaterEqual(name string, bound T) Arg[T] {
	return a.Bind(func(v T) (T, error) { return RequireGreaterEqual(v, name, bound) })
}
