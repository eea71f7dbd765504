package variant

import (
	"fmt"

	"github.com/valuekit/valuekit/internal/cell"
)

// V3 is a tagged union over three alternative types. It behaves exactly
// like V2 with one more arm in every dispatch switch; see the V2 docs
// for the access, mutation, and claimed-state contracts.
type V3[T0, T1, T2 any] struct {
	tag cell.Tag
	box cell.Cell
}

// NewV3From0 constructs a container holding the first alternative.
func NewV3From0[T0, T1, T2 any](v T0) V3[T0, T1, T2] {
	return V3[T0, T1, T2]{tag: 0, box: cell.Store(v)}
}

// NewV3From1 constructs a container holding the second alternative.
func NewV3From1[T0, T1, T2 any](v T1) V3[T0, T1, T2] {
	return V3[T0, T1, T2]{tag: 1, box: cell.Store(v)}
}

// NewV3From2 constructs a container holding the third alternative.
func NewV3From2[T0, T1, T2 any](v T2) V3[T0, T1, T2] {
	return V3[T0, T1, T2]{tag: 2, box: cell.Store(v)}
}

// Tag returns the discriminant: 0, 1, or 2.
func (v V3[T0, T1, T2]) Tag() int { return int(v.tag) }

// Claimed reports whether the storage has been vacated and not revived.
func (v V3[T0, T1, T2]) Claimed() bool { return v.box.IsEmpty() }

// Is0 reports whether the discriminant names the first alternative.
func (v V3[T0, T1, T2]) Is0() bool { return v.tag == 0 }

// Is1 reports whether the discriminant names the second alternative.
func (v V3[T0, T1, T2]) Is1() bool { return v.tag == 1 }

// Is2 reports whether the discriminant names the third alternative.
func (v V3[T0, T1, T2]) Is2() bool { return v.tag == 2 }

// Get0 returns a mutable reference to the stored T0; traps otherwise.
func (v V3[T0, T1, T2]) Get0() *T0 {
	if v.tag != 0 {
		panic(fmt.Sprintf("variant: Get0 on V3 holding alternative %d", v.tag))
	}
	return cell.Ref[T0](v.box)
}

// Get1 returns a mutable reference to the stored T1; traps otherwise.
func (v V3[T0, T1, T2]) Get1() *T1 {
	if v.tag != 1 {
		panic(fmt.Sprintf("variant: Get1 on V3 holding alternative %d", v.tag))
	}
	return cell.Ref[T1](v.box)
}

// Get2 returns a mutable reference to the stored T2; traps otherwise.
func (v V3[T0, T1, T2]) Get2() *T2 {
	if v.tag != 2 {
		panic(fmt.Sprintf("variant: Get2 on V3 holding alternative %d", v.tag))
	}
	return cell.Ref[T2](v.box)
}

// TryGet0 is the guarded form of Get0.
func (v V3[T0, T1, T2]) TryGet0() (*T0, bool) {
	if v.tag != 0 {
		return nil, false
	}
	return cell.TryRef[T0](v.box)
}

// TryGet1 is the guarded form of Get1.
func (v V3[T0, T1, T2]) TryGet1() (*T1, bool) {
	if v.tag != 1 {
		return nil, false
	}
	return cell.TryRef[T1](v.box)
}

// TryGet2 is the guarded form of Get2.
func (v V3[T0, T1, T2]) TryGet2() (*T2, bool) {
	if v.tag != 2 {
		return nil, false
	}
	return cell.TryRef[T2](v.box)
}

// Set0 destroys the live alternative and stores x as the first one.
func (v *V3[T0, T1, T2]) Set0(x T0) {
	v.Dispose()
	v.box = cell.Store(x)
	v.tag = 0
}

// Set1 destroys the live alternative and stores x as the second one.
func (v *V3[T0, T1, T2]) Set1(x T1) {
	v.Dispose()
	v.box = cell.Store(x)
	v.tag = 1
}

// Set2 destroys the live alternative and stores x as the third one.
func (v *V3[T0, T1, T2]) Set2(x T2) {
	v.Dispose()
	v.box = cell.Store(x)
	v.tag = 2
}

// Take0 moves the stored T0 out without running its destructor, leaving
// the container claimed; traps unless the first alternative is live.
func (v *V3[T0, T1, T2]) Take0() T0 {
	if v.tag != 0 {
		panic(fmt.Sprintf("variant: Take0 on V3 holding alternative %d", v.tag))
	}
	return cell.Take[T0](&v.box)
}

// Take1 is Take0 for the second alternative.
func (v *V3[T0, T1, T2]) Take1() T1 {
	if v.tag != 1 {
		panic(fmt.Sprintf("variant: Take1 on V3 holding alternative %d", v.tag))
	}
	return cell.Take[T1](&v.box)
}

// Take2 is Take0 for the third alternative.
func (v *V3[T0, T1, T2]) Take2() T2 {
	if v.tag != 2 {
		panic(fmt.Sprintf("variant: Take2 on V3 holding alternative %d", v.tag))
	}
	return cell.Take[T2](&v.box)
}

// Replace0With1 moves the stored T0 out as the return value and stores x
// as the second alternative; the old value's destructor does not run.
func (v *V3[T0, T1, T2]) Replace0With1(x T1) T0 {
	old := v.Take0()
	v.Set1(x)
	return old
}

// Replace0With2 replaces the first alternative with the third.
func (v *V3[T0, T1, T2]) Replace0With2(x T2) T0 {
	old := v.Take0()
	v.Set2(x)
	return old
}

// Replace1With0 replaces the second alternative with the first.
func (v *V3[T0, T1, T2]) Replace1With0(x T0) T1 {
	old := v.Take1()
	v.Set0(x)
	return old
}

// Replace1With2 replaces the second alternative with the third.
func (v *V3[T0, T1, T2]) Replace1With2(x T2) T1 {
	old := v.Take1()
	v.Set2(x)
	return old
}

// Replace2With0 replaces the third alternative with the first.
func (v *V3[T0, T1, T2]) Replace2With0(x T0) T2 {
	old := v.Take2()
	v.Set0(x)
	return old
}

// Replace2With1 replaces the third alternative with the second.
func (v *V3[T0, T1, T2]) Replace2With1(x T1) T2 {
	old := v.Take2()
	v.Set1(x)
	return old
}

// Replace0With0 swaps in a new first-alternative value, returning the
// old one without running its destructor.
func (v *V3[T0, T1, T2]) Replace0With0(x T0) T0 {
	old := v.Take0()
	v.Set0(x)
	return old
}

// Replace1With1 is Replace0With0 for the second alternative.
func (v *V3[T0, T1, T2]) Replace1With1(x T1) T1 {
	old := v.Take1()
	v.Set1(x)
	return old
}

// Replace2With2 is Replace0With0 for the third alternative.
func (v *V3[T0, T1, T2]) Replace2With2(x T2) T2 {
	old := v.Take2()
	v.Set2(x)
	return old
}

// Clone copy-constructs a new container, dispatching to the active
// alternative's Cloner hook. Traps if v is claimed.
func (v V3[T0, T1, T2]) Clone() V3[T0, T1, T2] {
	if v.box.IsEmpty() {
		panic("variant: Clone of claimed V3")
	}
	switch v.tag {
	case 0:
		return V3[T0, T1, T2]{tag: 0, box: cell.Clone[T0](v.box)}
	case 1:
		return V3[T0, T1, T2]{tag: 1, box: cell.Clone[T1](v.box)}
	case 2:
		return V3[T0, T1, T2]{tag: 2, box: cell.Clone[T2](v.box)}
	default:
		panic(fmt.Sprintf("variant: corrupt V3 discriminant %d", v.tag))
	}
}

// Move move-constructs a new container and leaves *v claimed. Traps if
// *v is already claimed.
func (v *V3[T0, T1, T2]) Move() V3[T0, T1, T2] {
	if v.box.IsEmpty() {
		panic("variant: Move of claimed V3")
	}
	switch v.tag {
	case 0:
		return V3[T0, T1, T2]{tag: 0, box: cell.Move[T0](&v.box)}
	case 1:
		return V3[T0, T1, T2]{tag: 1, box: cell.Move[T1](&v.box)}
	case 2:
		return V3[T0, T1, T2]{tag: 2, box: cell.Move[T2](&v.box)}
	default:
		panic(fmt.Sprintf("variant: corrupt V3 discriminant %d", v.tag))
	}
}

// Dispose destroys the live alternative, running exactly its destructor.
// Disposing a claimed container is a no-op.
func (v *V3[T0, T1, T2]) Dispose() {
	if v.box.IsEmpty() {
		return
	}
	switch v.tag {
	case 0:
		cell.Dispose[T0](&v.box)
	case 1:
		cell.Dispose[T1](&v.box)
	case 2:
		cell.Dispose[T2](&v.box)
	default:
		panic(fmt.Sprintf("variant: corrupt V3 discriminant %d", v.tag))
	}
}
