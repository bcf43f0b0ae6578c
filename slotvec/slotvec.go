// Package slotvec implements component A of the readiness engine: a slice
// that hands out stable, reusable indices ("tokens") on insert and recycles
// them via an embedded free-list on remove.
//
// Grounded on original_source/src/prevec.rs (PreVec), generalized with Go
// generics. Two or more SlotVecs can be given disjoint index ranges via
// NewWithOffset so they can share a single selector's token namespace without
// collision, exactly as PreVec's doc comment describes for multiplexing
// several connection collections behind one Poll instance.
package slotvec

import "github.com/sonr-go/sonr/sonrerr"

type entry[T any] struct {
	occupied bool
	value    T
	next     int // free-list successor when !occupied
}

// SlotVec is a slice-backed allocator with O(1) insert/remove, an optional
// index offset, and an optional hard capacity.
type SlotVec[T any] struct {
	inner    []entry[T]
	capacity int
	next     int
	offset   int
	length   int
	canGrow  bool
}

// New creates a SlotVec with the given capacity and no offset. By default
// the collection can grow past capacity.
func New[T any](capacity int) *SlotVec[T] {
	return NewWithOffset[T](capacity, 0)
}

// NewWithOffset creates a SlotVec with the given capacity whose indices
// start at offset, matching PreVec::with_capacity_and_offset.
func NewWithOffset[T any](capacity, offset int) *SlotVec[T] {
	return &SlotVec[T]{
		inner:    make([]entry[T], 0, capacity),
		capacity: capacity,
		offset:   offset,
		canGrow:  true,
	}
}

// Capacity returns the configured capacity.
func (s *SlotVec[T]) Capacity() int { return s.capacity }

// Offset returns the configured index offset.
func (s *SlotVec[T]) Offset() int { return s.offset }

// Len returns the number of occupied slots.
func (s *SlotVec[T]) Len() int { return s.length }

// IsEmpty reports whether there are no occupied slots.
func (s *SlotVec[T]) IsEmpty() bool { return s.length == 0 }

// PreventGrowth disables automatic growth beyond Capacity; subsequent
// inserts past capacity return sonrerr.ErrCapacityExhausted.
func (s *SlotVec[T]) PreventGrowth() { s.canGrow = false }

// EnableGrowth re-enables automatic growth past Capacity.
func (s *SlotVec[T]) EnableGrowth() { s.canGrow = true }

// InRange reports whether index falls within [offset, capacity).
func (s *SlotVec[T]) InRange(index int) bool {
	return index >= s.offset && index < s.capacity
}

// SetOffset changes the index offset applied to subsequent operations.
func (s *SlotVec[T]) SetOffset(offset int) { s.offset = offset }

func (s *SlotVec[T]) growIfRequired(index int) error {
	if index < len(s.inner) {
		return nil
	}
	if index >= s.capacity && !s.canGrow {
		return sonrerr.ErrCapacityExhausted
	}
	newCap := s.capacity
	if index >= newCap {
		newCap = newCap*2 + 1
	}
	for i := len(s.inner); i < newCap; i++ {
		s.inner = append(s.inner, entry[T]{next: i + 1})
	}
	s.capacity = newCap
	return nil
}

// Insert places v in the next free slot, growing the underlying slice if
// necessary and permitted, and returns the slot's external index
// (internal index + offset).
func (s *SlotVec[T]) Insert(v T) (int, error) {
	index := s.next
	if err := s.growIfRequired(index); err != nil {
		return 0, err
	}

	e := &s.inner[index]
	next := e.next
	*e = entry[T]{occupied: true, value: v}
	s.length++
	s.next = next

	return index + s.offset, nil
}

// Remove clears the slot at the given external index, returning the value
// that was stored there, or the zero value and false if it was already
// empty or out of range.
func (s *SlotVec[T]) Remove(index int) (T, bool) {
	var zero T
	i := index - s.offset
	if i < 0 || i >= len(s.inner) || !s.inner[i].occupied {
		return zero, false
	}

	v := s.inner[i].value
	s.inner[i] = entry[T]{next: s.next}
	s.next = i
	s.length--
	return v, true
}

// Get returns the value at the given external index.
func (s *SlotVec[T]) Get(index int) (T, bool) {
	var zero T
	i := index - s.offset
	if i < 0 || i >= len(s.inner) || !s.inner[i].occupied {
		return zero, false
	}
	return s.inner[i].value, true
}

// GetPtr returns a pointer to the value at the given external index,
// allowing in-place mutation, matching PreVec::get_mut.
func (s *SlotVec[T]) GetPtr(index int) (*T, bool) {
	i := index - s.offset
	if i < 0 || i >= len(s.inner) || !s.inner[i].occupied {
		return nil, false
	}
	return &s.inner[i].value, true
}

// Clear removes every entry, resetting the free-list.
func (s *SlotVec[T]) Clear() {
	s.inner = s.inner[:0]
	for i := 0; i < s.capacity; i++ {
		s.inner = append(s.inner, entry[T]{next: i + 1})
	}
	s.next = 0
	s.length = 0
}
