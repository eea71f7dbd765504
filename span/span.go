// Package span provides a bounds-checked view over a slice. Out-of-range
// access is an expected, reportable condition here — operations return a
// typed BoundsError instead of panicking, so callers working with
// untrusted indices get an error path rather than a trap.
package span

import "fmt"

// BoundsError reports an access outside a span's range.
type BoundsError struct {
	Op     string
	Index  int
	End    int
	Length int
}

func (e *BoundsError) Error() string {
	if e.Op == "Slice" {
		return fmt.Sprintf("span: %s [%d:%d] out of range, length %d", e.Op, e.Index, e.End, e.Length)
	}
	return fmt.Sprintf("span: %s index %d out of range, length %d", e.Op, e.Index, e.Length)
}

// Span is a view over a contiguous region of values. It does not own the
// backing slice; sub-spans alias the same storage.
type Span[T any] struct {
	items []T
}

// Of returns a span viewing the given slice.
func Of[T any](items []T) Span[T] {
	return Span[T]{items: items}
}

// Len returns the number of values in view.
func (s Span[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the span views no values.
func (s Span[T]) IsEmpty() bool { return len(s.items) == 0 }

// At returns a mutable reference to the i-th value.
func (s Span[T]) At(i int) (*T, error) {
	if i < 0 || i >= len(s.items) {
		return nil, &BoundsError{Op: "At", Index: i, Length: len(s.items)}
	}
	return &s.items[i], nil
}

// SetAt stores v at index i.
func (s Span[T]) SetAt(i int, v T) error {
	if i < 0 || i >= len(s.items) {
		return &BoundsError{Op: "SetAt", Index: i, Length: len(s.items)}
	}
	s.items[i] = v
	return nil
}

// First returns a reference to the first value.
func (s Span[T]) First() (*T, error) {
	return s.At(0)
}

// Last returns a reference to the last value.
func (s Span[T]) Last() (*T, error) {
	return s.At(len(s.items) - 1)
}

// Slice returns the sub-span [lo:hi). The sub-span aliases the same
// backing storage.
func (s Span[T]) Slice(lo, hi int) (Span[T], error) {
	if lo < 0 || hi < lo || hi > len(s.items) {
		return Span[T]{}, &BoundsError{Op: "Slice", Index: lo, End: hi, Length: len(s.items)}
	}
	return Span[T]{items: s.items[lo:hi]}, nil
}

// Fill stores v in every position of the span.
func (s Span[T]) Fill(v T) {
	for i := range s.items {
		s.items[i] = v
	}
}

// CopyFrom copies values from src into the span and returns the number
// copied, which is the smaller of the two lengths.
func (s Span[T]) CopyFrom(src Span[T]) int {
	return copy(s.items, src.items)
}

// Items returns the backing slice. Mutations through it are visible to
// the span and all of its sub-spans.
func (s Span[T]) Items() []T { return s.items }
