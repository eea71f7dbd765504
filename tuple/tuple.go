// Package tuple provides small fixed-arity value aggregates whose
// lifecycle operations propagate to every element, so tuples compose
// with the variant containers and other lifecycle-aware values.
package tuple

import "github.com/valuekit/valuekit/lifecycle"

// Pair aggregates two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf constructs a Pair from its elements.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Unpack returns both elements.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Clone copy-constructs the pair, dispatching to each element's Cloner
// hook when present.
func (p Pair[A, B]) Clone() Pair[A, B] {
	return Pair[A, B]{
		First:  lifecycle.CloneOf(p.First),
		Second: lifecycle.CloneOf(p.Second),
	}
}

// Move move-constructs a new pair and leaves the source elements inert.
func (p *Pair[A, B]) Move() Pair[A, B] {
	return Pair[A, B]{
		First:  lifecycle.MoveFrom(&p.First),
		Second: lifecycle.MoveFrom(&p.Second),
	}
}

// Dispose destroys both elements, each exactly once.
func (p *Pair[A, B]) Dispose() {
	lifecycle.DisposeOf(&p.First)
	lifecycle.DisposeOf(&p.Second)
}

// Triple aggregates three values.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// TripleOf constructs a Triple from its elements.
func TripleOf[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

// Unpack returns all three elements.
func (t Triple[A, B, C]) Unpack() (A, B, C) {
	return t.First, t.Second, t.Third
}

// Clone copy-constructs the triple, dispatching to each element's
// Cloner hook when present.
func (t Triple[A, B, C]) Clone() Triple[A, B, C] {
	return Triple[A, B, C]{
		First:  lifecycle.CloneOf(t.First),
		Second: lifecycle.CloneOf(t.Second),
		Third:  lifecycle.CloneOf(t.Third),
	}
}

// Move move-constructs a new triple and leaves the source elements
// inert.
func (t *Triple[A, B, C]) Move() Triple[A, B, C] {
	return Triple[A, B, C]{
		First:  lifecycle.MoveFrom(&t.First),
		Second: lifecycle.MoveFrom(&t.Second),
		Third:  lifecycle.MoveFrom(&t.Third),
	}
}

// Dispose destroys all three elements, each exactly once.
func (t *Triple[A, B, C]) Dispose() {
	lifecycle.DisposeOf(&t.First)
	lifecycle.DisposeOf(&t.Second)
	lifecycle.DisposeOf(&t.Third)
}
