// Package lifecycle defines the opt-in contracts a value type may implement
// so that containers can copy, move, and destroy it correctly.
//
// The contracts are discovered by type assertion, never by reflection.
// A type that implements none of them is treated as a plain value: copied
// and moved bitwise, destroyed by doing nothing. Types that own resources
// (heap buffers, handles, counters) implement the subset they need:
//
//	type Buffer struct{ data []byte }
//
//	func (b Buffer) Clone() Buffer   { return Buffer{data: append([]byte(nil), b.data...)} }
//	func (b *Buffer) Move() Buffer   { out := *b; b.data = nil; return out }
//	func (b *Buffer) Dispose()       { pool.Put(b.data); b.data = nil }
//
// Additional capabilities are expressed through separate, composable
// interfaces so existing plain value types remain compatible without
// changes.
package lifecycle

// Cloner is implemented by values that require a deep copy.
// Clone must return an independent value; the receiver is not modified.
// Clone should be declared on the value receiver.
type Cloner[T any] interface {
	Clone() T
}

// Mover is implemented by values that transfer resource ownership on move.
// Move must return the moved value and leave the receiver in an inert
// state that is safe to discard without releasing anything. Move must be
// declared on the pointer receiver, otherwise the source cannot be made
// inert.
type Mover[T any] interface {
	Move() T
}

// Disposer is implemented by values that must release resources exactly
// once at the end of their lifetime.
type Disposer interface {
	Dispose()
}

// CloneOf copy-constructs a value. If T implements Cloner the deep copy
// is used, otherwise the value is copied bitwise.
func CloneOf[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// MoveFrom move-constructs a value out of *src. If T implements Mover its
// Move method runs and is responsible for leaving *src inert; otherwise
// the value is copied bitwise and *src is reset to the zero value of T.
//
// Either way the source must not be treated as live afterwards.
func MoveFrom[T any](src *T) T {
	if m, ok := any(src).(Mover[T]); ok {
		return m.Move()
	}
	var zero T
	out := *src
	*src = zero
	return out
}

// DisposeOf destroys the value in place. If T implements Disposer (on
// either receiver form) it runs exactly once; otherwise this is a no-op.
func DisposeOf[T any](v *T) {
	// The method set of *T includes value-receiver methods, so a single
	// assertion covers both declaration forms.
	if d, ok := any(v).(Disposer); ok {
		d.Dispose()
	}
}
