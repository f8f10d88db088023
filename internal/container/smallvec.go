// Package container provides small internal collection types.
package container

import "iter"

// smallVecInlineCap is sized for the common case of a handful of chunks per
// frame; beyond it the vector spills to the heap.
const smallVecInlineCap = 8

// SmallVec is a growable vector that stores its first few elements in a
// fixed inline array and moves to a heap slice once the inline capacity is
// exceeded. The two storage modes sit behind the same accessors, so callers
// never observe the spill.
//
// The zero value is an empty vector ready to use. SmallVec is not safe for
// concurrent use.
type SmallVec[T any] struct {
	inline [smallVecInlineCap]T
	n      int // inline length; unused once spilled
	heap   []T // nil until the vector spills
}

// Append adds v at the end of the vector.
func (s *SmallVec[T]) Append(v T) {
	if s.heap != nil {
		s.heap = append(s.heap, v)

		return
	}

	if s.n < smallVecInlineCap {
		s.inline[s.n] = v
		s.n++

		return
	}

	// Spill: move the inline elements onto the heap and keep growing there.
	s.heap = make([]T, smallVecInlineCap, 2*smallVecInlineCap)
	copy(s.heap, s.inline[:])
	s.heap = append(s.heap, v)
}

// Len returns the number of elements in the vector.
func (s *SmallVec[T]) Len() int {
	if s.heap != nil {
		return len(s.heap)
	}

	return s.n
}

// At returns the element at index i. It panics if i is out of range.
func (s *SmallVec[T]) At(i int) T {
	return s.Slice()[i]
}

// Slice returns the elements as a slice backed by the vector's storage.
// The slice is valid until the next Append or Reset, and callers must not
// append to it.
func (s *SmallVec[T]) Slice() []T {
	if s.heap != nil {
		return s.heap
	}

	return s.inline[:s.n]
}

// All returns an iterator over the elements in append order.
func (s *SmallVec[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.Slice() {
			if !yield(v) {
				return
			}
		}
	}
}

// Reset empties the vector and releases any heap storage so that retained
// element references can be collected.
func (s *SmallVec[T]) Reset() {
	clear(s.inline[:])
	s.n = 0
	s.heap = nil
}
