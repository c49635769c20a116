package circstack

import (
	"fmt"
	"hash/maphash"
	"iter"
)

// Cloner is implemented by payloads that must be copied when stored in a stack.
// A Clone that returns nil is rejected like a nil payload.
type Cloner[V any] interface {
	Clone() V
}

// Element is a stack element.
//
// An element is linked into the ring of its stack and knows its position
// in the backing slice.
type Element[V comparable] struct {
	next, prev *Element[V]
	stack      *Stack[V]
	index      int
	value      V
}

// newElement creates an unowned element linked to itself.
// If v implements Cloner, the element stores its clone.
func newElement[V comparable](v V) (*Element[V], error) {
	if isNil(v) {
		return nil, fmt.Errorf("%w: cannot create an element from a nil %T", ErrInvalidArgument, v)
	}

	if c, ok := any(v).(Cloner[V]); ok {
		v = c.Clone()
		if isNil(v) {
			return nil, fmt.Errorf("%w: clone of %T returned nil", ErrInvalidArgument, v)
		}
	}

	e := &Element[V]{
		value: v,
	}
	e.next = e
	e.prev = e

	return e, nil
}

// Value returns the payload.
func (e *Element[V]) Value() V {
	return e.value
}

// Next returns the next element in the ring or nil if e has been removed.
func (e *Element[V]) Next() *Element[V] {
	return e.next
}

// Prev returns the previous element in the ring or nil if e has been removed.
func (e *Element[V]) Prev() *Element[V] {
	return e.prev
}

// Index returns the position of e in its stack.
func (e *Element[V]) Index() int {
	return e.index
}

// Stack returns the owning stack or nil.
func (e *Element[V]) Stack() *Stack[V] {
	return e.stack
}

// Append inserts a value after e.
func (e *Element[V]) Append(v V) {
	if e.stack == nil {
		return
	}
	e.stack.insertAt(v, e.index+1)
}

// Prepend inserts a value before e.
func (e *Element[V]) Prepend(v V) {
	if e.stack == nil {
		return
	}
	e.stack.insertAt(v, e.index)
}

// LoopForward calls f on each element of the ring once, starting at e.
// f must not change the stack.
func (e *Element[V]) LoopForward(f func(*Element[V])) {
	if e.stack == nil || f == nil {
		return
	}

	f(e)

	for p := e.next; p != nil && p != e; p = p.next {
		f(p)
	}
}

// Ring returns an iterator over the payloads of the ring, starting at e.
func (e *Element[V]) Ring() iter.Seq[V] {
	return func(yield func(V) bool) {
		if !yield(e.value) {
			return
		}

		for p := e.next; p != nil && p != e; p = p.next {
			if !yield(p.value) {
				return
			}
		}
	}
}

// Equal reports whether e and other hold equal payloads and
// their immediate neighbours hold equal payloads.
// Like ==, it panics if V is an interface type holding an uncomparable value.
func (e *Element[V]) Equal(other *Element[V]) bool {
	if e == other {
		return true
	}

	if e == nil || other == nil {
		return false
	}

	return e.value == other.value &&
		sameValue(e.next, other.next) &&
		sameValue(e.prev, other.prev)
}

// Hash returns the hash of the payload chained with the payload hashes of its neighbours.
func (e *Element[V]) Hash(seed maphash.Seed) uint64 {
	h := hashValue(seed, e.value)

	if e.next != nil {
		h = chainHash(h, hashValue(seed, e.next.value))
	}

	if e.prev != nil {
		h = chainHash(h, hashValue(seed, e.prev.value))
	}

	return h
}

// Clone returns a new unowned element holding the same payload.
// It panics if the payload's Cloner returns nil.
func (e *Element[V]) Clone() *Element[V] {
	c, err := newElement(e.value)
	if err != nil {
		// e.value passed newElement once, so only a Cloner returning nil gets here.
		panic("circstack: " + err.Error())
	}
	return c
}

// String returns the string form of the payload.
func (e *Element[V]) String() string {
	return fmt.Sprint(e.value)
}

// link inserts s after e.
func (e *Element[V]) link(s *Element[V]) {
	n := e.next
	e.next = s
	s.prev = e
	n.prev = s
	s.next = n
}

// unlink removes e from its ring and detaches it.
func (e *Element[V]) unlink() {
	if e.next != e {
		e.prev.next = e.next
		e.next.prev = e.prev
	}
	e.detach()
}

func (e *Element[V]) detach() {
	e.next = nil
	e.prev = nil
	e.stack = nil
}

func sameValue[V comparable](a, b *Element[V]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.value == b.value
}
