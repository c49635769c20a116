/*
Package circstack implements a circular stack: a ring of doubly linked elements
that can also be addressed by index.
*/
package circstack

import (
	"fmt"
	"hash/maphash"
	"iter"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// Stack is a circular stack.
//
// The backing slice holds the elements in index order and every element is linked
// to its neighbours so that data[i].Next() == data[(i+1)%n].
// The zero value is a ready to use empty stack.
type Stack[V comparable] struct {
	data   []*Element[V]
	logger *zerolog.Logger
}

// New creates an empty stack.
func New[V comparable](opts ...Option) *Stack[V] {
	o := newDefaultStackOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	return &Stack[V]{
		data:   make([]*Element[V], 0, o.capacity),
		logger: &o.logger,
	}
}

// FromSeq creates a stack from a sequence of values.
// It fails on the first nil value.
func FromSeq[V comparable](seq iter.Seq[V], opts ...Option) (*Stack[V], error) {
	s := New[V](opts...)

	for v := range seq {
		if err := s.Add(v); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Create is an alias of FromSeq.
func Create[V comparable](seq iter.Seq[V], opts ...Option) (*Stack[V], error) {
	return FromSeq(seq, opts...)
}

// FromSlice creates a stack from a slice of values.
func FromSlice[V comparable](values []V, opts ...Option) (*Stack[V], error) {
	if len(values) > 0 {
		opts = append([]Option{WithCapacity(len(values))}, opts...)
	}
	return FromSeq(slices.Values(values), opts...)
}

// Len returns the number of elements in the stack.
func (s *Stack[V]) Len() int {
	return len(s.data)
}

// Front returns the first element of the stack or nil.
func (s *Stack[V]) Front() *Element[V] {
	if len(s.data) == 0 {
		return nil
	}
	return s.data[0]
}

// Back returns the last element of the stack or nil.
func (s *Stack[V]) Back() *Element[V] {
	if len(s.data) == 0 {
		return nil
	}
	return s.data[len(s.data)-1]
}

// Get returns the element at index i.
//
// An index past the last element is reflected to Len()-1-i, not wrapped around.
// It returns ErrOutOfRange if the resulting position is not in the stack.
func (s *Stack[V]) Get(i int) (*Element[V], error) {
	pos := i
	if i > len(s.data)-1 {
		pos = len(s.data) - 1 - i
	}

	if pos < 0 || pos >= len(s.data) {
		return nil, fmt.Errorf("%w: index %d with length %d", ErrOutOfRange, i, len(s.data))
	}

	return s.data[pos], nil
}

// MustGet returns the element at index i or panics.
func (s *Stack[V]) MustGet(i int) *Element[V] {
	e, err := s.Get(i)
	if err != nil {
		panic("circstack: " + err.Error())
	}
	return e
}

// Add inserts a value at the back of the stack.
func (s *Stack[V]) Add(v V) error {
	e, err := newElement(v)
	if err != nil {
		return err
	}

	s.pushBack(e)

	return nil
}

func (s *Stack[V]) pushBack(e *Element[V]) {
	e.stack = s
	e.index = len(s.data)

	if n := len(s.data); n > 0 {
		s.data[n-1].link(e)
	}

	s.data = append(s.data, e)

	s.debug("add").Int("index", e.index).Int("len", len(s.data)).Send()
}

// insertAt inserts a value before the element at pos.
// Positions past the second to last element append to the back.
func (s *Stack[V]) insertAt(v V, pos int) {
	e, err := newElement(v)
	if err != nil {
		return
	}

	if pos > len(s.data)-2 {
		s.pushBack(e)
		return
	}

	if pos < 0 {
		return
	}

	e.stack = s
	e.index = pos

	s.data[pos].prev.link(e)

	for _, p := range s.data[pos:] {
		p.index++
	}

	s.data = slices.Insert(s.data, pos, e)

	s.debug("insert").Int("index", pos).Int("len", len(s.data)).Send()
}

// RemoveAt removes the element at index pos.
// It returns false if pos is out of range.
func (s *Stack[V]) RemoveAt(pos int) bool {
	if pos < 0 || pos > len(s.data)-1 {
		return false
	}

	e := s.data[pos]
	e.unlink()

	for _, p := range s.data[pos+1:] {
		p.index--
	}

	s.data = slices.Delete(s.data, pos, pos+1)

	s.debug("remove").Int("index", pos).Int("len", len(s.data)).Send()

	return true
}

// Remove removes the first element holding v.
// It returns false if v is the zero value or no element holds v.
// Like ==, it panics if V is an interface type and v or a payload holds an
// uncomparable value such as a slice.
func (s *Stack[V]) Remove(v V) bool {
	var zero V
	if v == zero || len(s.data) == 0 {
		return false
	}

	pos := slices.IndexFunc(s.data, func(e *Element[V]) bool {
		return e.value == v
	})

	return s.RemoveAt(pos)
}

// Clear removes all elements. Removed elements are detached from the stack.
func (s *Stack[V]) Clear() {
	for _, e := range s.data {
		e.detach()
	}

	clear(s.data)
	s.data = s.data[:0]

	s.debug("clear").Int("len", 0).Send()
}

// FindAll returns an iterator over the elements for which f returns true, in index order.
func (s *Stack[V]) FindAll(f func(*Element[V]) bool) iter.Seq[*Element[V]] {
	return func(yield func(*Element[V]) bool) {
		if f == nil {
			return
		}

		for _, e := range s.data {
			if f(e) && !yield(e) {
				return
			}
		}
	}
}

// All returns an iterator over the index and element pairs in index order.
func (s *Stack[V]) All() iter.Seq2[int, *Element[V]] {
	return func(yield func(int, *Element[V]) bool) {
		for i, e := range s.data {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Values returns an iterator over the payloads in index order.
func (s *Stack[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range s.data {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Do calls function f on each element of the stack, in index order.
// If f returns false, Do stops the iteration.
// f must not change s.
func (s *Stack[V]) Do(f func(e *Element[V]) bool) {
	for _, e := range s.data {
		if !f(e) {
			return
		}
	}
}

// Reverse returns a new stack holding the payloads in reverse order.
// It panics if a payload's Cloner returns nil.
func (s *Stack[V]) Reverse() *Stack[V] {
	r := s.emptyCopy()

	for i := len(s.data) - 1; i >= 0; i-- {
		r.pushBack(s.data[i].Clone())
	}

	return r
}

// Clone returns a new stack holding the same payloads in the same order.
// It panics if a payload's Cloner returns nil.
func (s *Stack[V]) Clone() *Stack[V] {
	c := s.emptyCopy()

	for _, e := range s.data {
		c.pushBack(e.Clone())
	}

	return c
}

func (s *Stack[V]) emptyCopy() *Stack[V] {
	return &Stack[V]{
		data:   make([]*Element[V], 0, len(s.data)),
		logger: s.logger,
	}
}

// Equal reports whether s and other have the same length and every element of s
// is equal to some element of other, regardless of order.
func (s *Stack[V]) Equal(other *Stack[V]) bool {
	if s == other {
		return true
	}

	if s == nil || other == nil {
		return false
	}

	if len(s.data) != len(other.data) {
		return false
	}

	for _, e := range s.data {
		if !slices.ContainsFunc(other.data, e.Equal) {
			return false
		}
	}

	return true
}

// Hash returns a hash of the stack that does not depend on element order.
//
// Equal element hashes are counted once, so stacks that are Equal in both
// directions hash the same.
func (s *Stack[V]) Hash(seed maphash.Seed) uint64 {
	seen := make(map[uint64]struct{}, len(s.data))

	var h uint64
	for _, e := range s.data {
		eh := e.Hash(seed)
		if _, ok := seen[eh]; ok {
			continue
		}
		seen[eh] = struct{}{}
		h += eh
	}

	return h
}

// String joins the payloads with ", ".
func (s *Stack[V]) String() string {
	var b strings.Builder

	for i, e := range s.data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, e.value)
	}

	return b.String()
}

func (s *Stack[V]) debug(op string) *zerolog.Event {
	if s.logger == nil {
		return nil
	}
	return s.logger.Debug().Str("op", op)
}
