// Package variant provides statically typed tagged-union containers: a
// value that holds exactly one of a closed set of alternative types at a
// time, identified by an integer discriminant.
//
// A container is created holding one alternative and mutated in place.
// Every operation that reads, copies, moves, or destroys the stored value
// dispatches on the discriminant to that alternative's lifecycle hooks
// (see package lifecycle), so exactly one alternative's hook runs per
// operation and no other alternative's hooks are ever touched. Dispatch
// is a switch over the tag; no reflection is involved.
//
//	v := variant.NewV2From0[int, string](998)
//	v.Is0()        // true
//	*v.Get0() += 1 // mutate in place
//	old := v.Replace0With1("hello") // old == 999, v now holds "hello"
//
// # Preconditions
//
// Typed accessors (Get, Take, Replace) require that the container
// currently holds the named alternative. Violating that is a programming
// error and traps with a panic, the same way a failed type assertion
// does; guard with Is or use the TryGet forms when the active
// alternative is not statically known.
//
// # Claimed containers
//
// Take and Move vacate the storage without running the old value's
// destructor and without resetting the tag. Such a container is
// "claimed": reading it traps, disposing it is a no-op, and Set is the
// one operation that makes it hold a value again. The zero value of a
// container is also claimed.
//
// # Value semantics
//
// Containers are plain Go values. Assignment copies them bitwise, which
// aliases any resource owned by the stored alternative; use Clone for a
// copy that goes through the alternative's Cloner hook, and Move to
// transfer ownership. A container is itself a Cloner, Mover, and
// Disposer, so containers nest inside other containers and tuples with
// exactly-once lifecycle behavior.
//
// Containers are not internally synchronized. Concurrent mutation of one
// container requires external locking, as with any non-atomic Go value.
package variant
