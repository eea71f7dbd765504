// Package cell provides the storage primitives behind the public variant
// containers: a type-erased cell that holds exactly one alternative value,
// and the integer discriminant that names which alternative it is.
//
// A Cell never runs lifecycle methods on its own. Every clone, move, and
// dispose is an explicit call made by the owning container, which is the
// only code that knows the discriminant and therefore the concrete type
// of the stored bytes.
package cell

import (
	"fmt"

	"github.com/valuekit/valuekit/lifecycle"
)

// Tag is the runtime discriminant of a variant container. It indexes the
// closed alternative list in declaration order, starting at zero.
type Tag uint8

// Cell is type-erased storage for a single alternative value.
//
// The value lives in a dedicated heap box, which gives it the size and
// alignment of its concrete type and keeps typed references stable until
// the owning container replaces or disposes the alternative. An empty
// Cell is the "claimed" state: storage has been vacated by a move and
// must not be interpreted as any alternative.
type Cell struct {
	box any // *T for the stored alternative; nil when claimed
}

// Store constructs a Cell holding v. Zero-sized alternatives get a real
// box like any other value, so they still see explicit lifecycle calls.
func Store[T any](v T) Cell {
	return Cell{box: &v}
}

// IsEmpty reports whether the cell has been claimed by a move.
func (c Cell) IsEmpty() bool {
	return c.box == nil
}

// Ref returns a mutable reference to the stored value.
//
// Ref traps if the cell is claimed or holds a different alternative;
// callers are expected to have checked the discriminant first. The
// returned pointer aliases live storage: writes through it are visible
// to every later Ref on the same cell.
func Ref[T any](c Cell) *T {
	if c.box == nil {
		panic("cell: reference into claimed storage")
	}
	p, ok := c.box.(*T)
	if !ok {
		panic(fmt.Sprintf("cell: storage holds %T, not %T", c.box, (*T)(nil)))
	}
	return p
}

// TryRef is the guarded form of Ref. It returns false when the cell is
// claimed or does not hold a T.
func TryRef[T any](c Cell) (*T, bool) {
	if c.box == nil {
		return nil, false
	}
	p, ok := c.box.(*T)
	return p, ok
}

// Clone copy-constructs a new cell from the value stored in c, invoking
// T's Cloner hook when present. The source cell is left untouched.
func Clone[T any](c Cell) Cell {
	return Store(lifecycle.CloneOf(*Ref[T](c)))
}

// Move move-constructs a new cell from the value stored in *c, invoking
// T's Mover hook when present, and leaves *c claimed.
func Move[T any](c *Cell) Cell {
	out := Store(lifecycle.MoveFrom(Ref[T](*c)))
	c.box = nil
	return out
}

// Take moves the stored value out of *c and returns it, leaving *c
// claimed. The value's Disposer hook does not run: ownership of whatever
// it holds passes to the caller.
func Take[T any](c *Cell) T {
	v := lifecycle.MoveFrom(Ref[T](*c))
	c.box = nil
	return v
}

// Dispose destroys the value stored in *c, invoking T's Disposer hook
// when present, and leaves *c claimed so the destructor cannot run twice.
func Dispose[T any](c *Cell) {
	lifecycle.DisposeOf(Ref[T](*c))
	c.box = nil
}
