// Package vec: forward and reverse iteration over the live range.
package vec

import "iter"

// All returns a forward iterator over (index, element) pairs of the live
// range, for use with range-over-func.
//
// The iterator reads storage directly: mutating the vector while ranging —
// any Insert, Erase, growth or Take — is undefined, as with every position
// derived from the container.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Backward returns a reverse iterator over (index, element) pairs, from the
// last live element down to the first. Same invalidation contract as All.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}
