package variant

import (
	"fmt"

	"github.com/valuekit/valuekit/internal/cell"
)

// V2 is a tagged union over two alternative types. Exactly one of T0 or
// T1 is live at any observable point, named by the discriminant.
//
// The zero value is a claimed container; initialize it with a
// constructor or Set before reading.
type V2[T0, T1 any] struct {
	tag cell.Tag
	box cell.Cell
}

// NewV2From0 constructs a container holding the first alternative.
func NewV2From0[T0, T1 any](v T0) V2[T0, T1] {
	return V2[T0, T1]{tag: 0, box: cell.Store(v)}
}

// NewV2From1 constructs a container holding the second alternative.
func NewV2From1[T0, T1 any](v T1) V2[T0, T1] {
	return V2[T0, T1]{tag: 1, box: cell.Store(v)}
}

// Tag returns the discriminant: 0 or 1. Take and Move leave the tag
// unchanged even though the storage is claimed afterwards.
func (v V2[T0, T1]) Tag() int { return int(v.tag) }

// Claimed reports whether the storage has been vacated by Take, Move, or
// Dispose and not yet revived by Set.
func (v V2[T0, T1]) Claimed() bool { return v.box.IsEmpty() }

// Is0 reports whether the discriminant names the first alternative.
// It is a pure tag comparison with no side effects.
func (v V2[T0, T1]) Is0() bool { return v.tag == 0 }

// Is1 reports whether the discriminant names the second alternative.
func (v V2[T0, T1]) Is1() bool { return v.tag == 1 }

// Get0 returns a mutable reference to the stored T0. Writes through the
// reference are visible to later calls; the reference stays valid until
// the next operation that changes the discriminant or vacates storage.
// Traps unless the container currently holds the first alternative.
func (v V2[T0, T1]) Get0() *T0 {
	if v.tag != 0 {
		panic(fmt.Sprintf("variant: Get0 on V2 holding alternative %d", v.tag))
	}
	return cell.Ref[T0](v.box)
}

// Get1 is Get0 for the second alternative.
func (v V2[T0, T1]) Get1() *T1 {
	if v.tag != 1 {
		panic(fmt.Sprintf("variant: Get1 on V2 holding alternative %d", v.tag))
	}
	return cell.Ref[T1](v.box)
}

// TryGet0 is the guarded form of Get0. It returns false when the
// container holds another alternative or is claimed.
func (v V2[T0, T1]) TryGet0() (*T0, bool) {
	if v.tag != 0 {
		return nil, false
	}
	return cell.TryRef[T0](v.box)
}

// TryGet1 is the guarded form of Get1.
func (v V2[T0, T1]) TryGet1() (*T1, bool) {
	if v.tag != 1 {
		return nil, false
	}
	return cell.TryRef[T1](v.box)
}

// Set0 destroys the currently live alternative, stores x as the first
// alternative, and updates the discriminant. Valid from any state,
// including holding the same alternative or being claimed.
func (v *V2[T0, T1]) Set0(x T0) {
	v.Dispose()
	v.box = cell.Store(x)
	v.tag = 0
}

// Set1 is Set0 for the second alternative.
func (v *V2[T0, T1]) Set1(x T1) {
	v.Dispose()
	v.box = cell.Store(x)
	v.tag = 1
}

// Take0 moves the stored T0 out and returns it. The value's destructor
// does not run — the caller owns it now — and the tag is not reset: the
// container is claimed until the next Set. Traps unless the container
// currently holds the first alternative.
func (v *V2[T0, T1]) Take0() T0 {
	if v.tag != 0 {
		panic(fmt.Sprintf("variant: Take0 on V2 holding alternative %d", v.tag))
	}
	return cell.Take[T0](&v.box)
}

// Take1 is Take0 for the second alternative.
func (v *V2[T0, T1]) Take1() T1 {
	if v.tag != 1 {
		panic(fmt.Sprintf("variant: Take1 on V2 holding alternative %d", v.tag))
	}
	return cell.Take[T1](&v.box)
}

// Replace0With1 moves the stored T0 out as the return value and stores x
// as the second alternative in its place. The old value's destructor
// does not run. Traps unless the container currently holds the first
// alternative.
func (v *V2[T0, T1]) Replace0With1(x T1) T0 {
	old := v.Take0()
	v.Set1(x)
	return old
}

// Replace1With0 is the symmetric replacement.
func (v *V2[T0, T1]) Replace1With0(x T0) T1 {
	old := v.Take1()
	v.Set0(x)
	return old
}

// Replace0With0 swaps in a new first-alternative value and returns the
// old one without running its destructor.
func (v *V2[T0, T1]) Replace0With0(x T0) T0 {
	old := v.Take0()
	v.Set0(x)
	return old
}

// Replace1With1 is Replace0With0 for the second alternative.
func (v *V2[T0, T1]) Replace1With1(x T1) T1 {
	old := v.Take1()
	v.Set1(x)
	return old
}

// Clone copy-constructs a new container from v, dispatching to the
// active alternative's Cloner hook. Traps if v is claimed.
func (v V2[T0, T1]) Clone() V2[T0, T1] {
	if v.box.IsEmpty() {
		panic("variant: Clone of claimed V2")
	}
	switch v.tag {
	case 0:
		return V2[T0, T1]{tag: 0, box: cell.Clone[T0](v.box)}
	case 1:
		return V2[T0, T1]{tag: 1, box: cell.Clone[T1](v.box)}
	default:
		panic(fmt.Sprintf("variant: corrupt V2 discriminant %d", v.tag))
	}
}

// Move move-constructs a new container from *v, dispatching to the
// active alternative's Mover hook, and leaves *v claimed. Traps if *v is
// already claimed.
func (v *V2[T0, T1]) Move() V2[T0, T1] {
	if v.box.IsEmpty() {
		panic("variant: Move of claimed V2")
	}
	switch v.tag {
	case 0:
		return V2[T0, T1]{tag: 0, box: cell.Move[T0](&v.box)}
	case 1:
		return V2[T0, T1]{tag: 1, box: cell.Move[T1](&v.box)}
	default:
		panic(fmt.Sprintf("variant: corrupt V2 discriminant %d", v.tag))
	}
}

// Dispose destroys the live alternative, running exactly its destructor,
// and leaves the container claimed. Disposing a claimed container is a
// no-op: the moved-out value owns the resources.
func (v *V2[T0, T1]) Dispose() {
	if v.box.IsEmpty() {
		return
	}
	switch v.tag {
	case 0:
		cell.Dispose[T0](&v.box)
	case 1:
		cell.Dispose[T1](&v.box)
	default:
		panic(fmt.Sprintf("variant: corrupt V2 discriminant %d", v.tag))
	}
}
