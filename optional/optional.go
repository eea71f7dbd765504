// Package optional provides an optional-value container built on the
// variant package: an Optional[T] is a two-alternative union of an
// absent marker and a value of T.
//
// The absent marker is a zero-sized alternative with its own
// discriminant, so presence checks are pure tag comparisons and the
// value arm's lifecycle hooks run only when a value is actually held.
package optional

import (
	"fmt"

	"github.com/valuekit/valuekit/variant"
)

// absent is the zero-sized alternative occupying an empty Optional.
type absent struct{}

// Optional holds either nothing or a single value of T.
//
// The zero value observes as empty; Clear, Set, Clone, and Dispose all
// accept it.
type Optional[T any] struct {
	v variant.V2[absent, T]
}

// Some returns an Optional holding x.
func Some[T any](x T) Optional[T] {
	return Optional[T]{v: variant.NewV2From1[absent, T](x)}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{v: variant.NewV2From0[absent, T](absent{})}
}

// HasValue reports whether a value is held.
func (o Optional[T]) HasValue() bool {
	return o.v.Is1() && !o.v.Claimed()
}

// Get returns a mutable reference to the held value. Writes through it
// are visible to later calls. Traps when the Optional is empty; guard
// with HasValue or use Value.
func (o Optional[T]) Get() *T {
	if !o.HasValue() {
		panic("optional: Get on empty Optional")
	}
	return o.v.Get1()
}

// Value returns a copy of the held value and whether one was held.
func (o Optional[T]) Value() (T, bool) {
	if p, ok := o.v.TryGet1(); ok {
		return *p, true
	}
	var zero T
	return zero, false
}

// ValueOr returns a copy of the held value, or def when empty.
func (o Optional[T]) ValueOr(def T) T {
	if p, ok := o.v.TryGet1(); ok {
		return *p
	}
	return def
}

// Set stores x, destroying any previously held value first.
func (o *Optional[T]) Set(x T) {
	o.v.Set1(x)
}

// Clear empties the Optional, destroying any held value.
func (o *Optional[T]) Clear() {
	o.v.Set0(absent{})
}

// Take moves the held value out and leaves the Optional empty. The
// value's destructor does not run; the caller owns it now. Traps when
// empty.
func (o *Optional[T]) Take() T {
	if !o.HasValue() {
		panic("optional: Take on empty Optional")
	}
	out := o.v.Take1()
	o.v.Set0(absent{})
	return out
}

// Replace stores x and returns the previously held value without
// running its destructor. Traps when empty.
func (o *Optional[T]) Replace(x T) T {
	if !o.HasValue() {
		panic("optional: Replace on empty Optional")
	}
	return o.v.Replace1With1(x)
}

// Clone copy-constructs the Optional, dispatching to the held value's
// Cloner hook when present. Cloning an empty Optional yields an empty
// one.
func (o Optional[T]) Clone() Optional[T] {
	if !o.v.Is1() || o.v.Claimed() {
		return None[T]()
	}
	return Optional[T]{v: o.v.Clone()}
}

// Move move-constructs a new Optional and leaves the source empty,
// dispatching to the held value's Mover hook when present.
func (o *Optional[T]) Move() Optional[T] {
	if !o.HasValue() {
		*o = None[T]()
		return None[T]()
	}
	out := Optional[T]{v: o.v.Move()}
	o.v.Set0(absent{})
	return out
}

// Dispose destroys the held value, if any, and empties the Optional.
func (o *Optional[T]) Dispose() {
	o.v.Dispose()
}

// String implements fmt.Stringer for debugging output.
func (o Optional[T]) String() string {
	if p, ok := o.v.TryGet1(); ok {
		return fmt.Sprintf("Some(%v)", *p)
	}
	return "None"
}
