// Package vec: bounds-checked element access and size/capacity queries.
package vec

import "fmt"

// Len returns the number of live elements. Complexity: O(1).
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of element slots currently allocated, live or not.
// Complexity: O(1).
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// Empty reports whether the vector holds no live elements. Complexity: O(1).
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// At returns the element at index i.
// Returns ErrIndexOutOfRange if i is not in [0, Len()). Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T

		return zero, ErrIndexOutOfRange
	}

	return v.buf[i], nil
}

// Set replaces the element at index i with val.
// Returns ErrIndexOutOfRange if i is not in [0, Len()). With a copy hook
// installed the incoming value is copied first; on failure the slot keeps
// its previous element. Complexity: O(1).
func (v *Vector[T]) Set(i int, val T) error {
	if i < 0 || i >= v.size {
		return ErrIndexOutOfRange
	}
	stored, err := v.cloneValue(val)
	if err != nil {
		return fmt.Errorf("vec: set element %d: %w", i, err)
	}
	v.buf[i] = stored

	return nil
}

// Front returns the first element.
// Returns ErrEmptyVector when the vector is empty. Complexity: O(1).
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T

		return zero, ErrEmptyVector
	}

	return v.buf[0], nil
}

// Back returns the last element.
// Returns ErrEmptyVector when the vector is empty. Complexity: O(1).
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T

		return zero, ErrEmptyVector
	}

	return v.buf[v.size-1], nil
}

// Values returns the live range as a slice sharing the vector's storage.
// The slice is capped at Len(), so appends through it never touch reserved
// storage, but writes through it mutate the vector's elements in place.
//
// The returned slice is invalidated by any operation that reallocates or
// shifts elements (growth, Insert, Erase, Assign, Take, ShrinkToFit).
func (v *Vector[T]) Values() []T {
	return v.buf[:v.size:v.size]
}
