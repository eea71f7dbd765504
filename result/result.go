// Package result provides a value-or-error union built on the variant
// package. A Result[T] holds either a success value of T or an error,
// never both, and bridges to Go's two-value return convention through
// Unwrap.
package result

import (
	"errors"
	"fmt"

	"github.com/valuekit/valuekit/variant"
)

// ErrTaken occupies a Result whose success value has been moved out
// with Take.
var ErrTaken = errors.New("result: value taken")

// Result holds either a success value of T or an error.
//
// Construct with Ok or Err; the zero value is not a valid Result and
// observes as neither Ok nor Err.
type Result[T any] struct {
	v variant.V2[T, error]
}

// Ok returns a Result holding the success value x.
func Ok[T any](x T) Result[T] {
	return Result[T]{v: variant.NewV2From0[T, error](x)}
}

// Err returns a Result holding err. Traps on a nil error: a nil error
// is a success and must be expressed with Ok.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result: Err with nil error")
	}
	return Result[T]{v: variant.NewV2From1[T, error](err)}
}

// IsOk reports whether a success value is held.
func (r Result[T]) IsOk() bool {
	return r.v.Is0() && !r.v.Claimed()
}

// IsErr reports whether an error is held.
func (r Result[T]) IsErr() bool {
	return r.v.Is1() && !r.v.Claimed()
}

// Get returns a mutable reference to the success value. Traps when the
// Result holds an error; guard with IsOk or use Value.
func (r Result[T]) Get() *T {
	if !r.IsOk() {
		panic(fmt.Sprintf("result: Get on error result: %v", r.Err()))
	}
	return r.v.Get0()
}

// Value returns a copy of the success value and whether one was held.
func (r Result[T]) Value() (T, bool) {
	if p, ok := r.v.TryGet0(); ok {
		return *p, true
	}
	var zero T
	return zero, false
}

// Err returns the held error, or nil when the Result is Ok.
func (r Result[T]) Err() error {
	if p, ok := r.v.TryGet1(); ok {
		return *p
	}
	return nil
}

// Unwrap converts the Result to Go's two-value return convention.
func (r Result[T]) Unwrap() (T, error) {
	if p, ok := r.v.TryGet0(); ok {
		return *p, nil
	}
	var zero T
	if e, ok := r.v.TryGet1(); ok {
		return zero, *e
	}
	return zero, ErrTaken
}

// Take moves the success value out and returns it; the value's
// destructor does not run. The Result is left holding ErrTaken, so it
// stays well-defined. Traps when the Result holds an error.
func (r *Result[T]) Take() T {
	if !r.IsOk() {
		panic(fmt.Sprintf("result: Take on error result: %v", r.Err()))
	}
	return r.v.Replace0With1(ErrTaken)
}

// SetOk stores a success value, destroying whatever was held.
func (r *Result[T]) SetOk(x T) {
	r.v.Set0(x)
}

// SetErr stores an error, destroying whatever was held. Traps on nil.
func (r *Result[T]) SetErr(err error) {
	if err == nil {
		panic("result: SetErr with nil error")
	}
	r.v.Set1(err)
}

// Clone copy-constructs the Result, dispatching to the success value's
// Cloner hook when present.
func (r Result[T]) Clone() Result[T] {
	return Result[T]{v: r.v.Clone()}
}

// Dispose destroys the held success value or drops the held error.
func (r *Result[T]) Dispose() {
	r.v.Dispose()
}

// String implements fmt.Stringer for debugging output.
func (r Result[T]) String() string {
	if p, ok := r.v.TryGet0(); ok {
		return fmt.Sprintf("Ok(%v)", *p)
	}
	if e, ok := r.v.TryGet1(); ok {
		return fmt.Sprintf("Err(%v)", *e)
	}
	return "Result(invalid)"
}
