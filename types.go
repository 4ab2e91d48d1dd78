// Package vec: central Vector type, functional options, and growth constants.
//
// This file declares Vector[T], Option, the capacity growth policy constants,
// and the internal storage helpers every other file builds on.
//
// Storage model:
//
//	buf[0:size]        — the live range: constructed, in-use elements
//	buf[size:len(buf)] — reserved storage: zero-valued, not yet live
//	len(buf)           — the capacity; buf is nil when capacity is zero
//
// Slots leaving the live range are zeroed immediately so the backing array
// never pins memory owned by removed elements.
package vec

const (
	// firstExpandCapacity is the capacity after the first growth from empty.
	firstExpandCapacity = 10

	// expandRate is the capacity multiplier for every later growth step.
	expandRate = 2
)

// CopyFunc produces the stored copy of an element. Returning a non-nil error
// aborts the operation that requested the copy; the vector rolls back to its
// pre-call state before the error is surfaced.
type CopyFunc[T any] func(T) (T, error)

// Vector is a contiguous, growable sequence of T with explicit capacity.
//
// The zero value is NOT ready to use with options; construct via New, Of,
// Repeat, NewWithSize or FromSlice. A default-constructed Vector has zero
// size and zero capacity and allocates on first demand.
//
// Vector is single-owner: no internal locking, not safe for concurrent use.
type Vector[T any] struct {
	// buf is the allocated region; len(buf) is the capacity.
	buf []T

	// size is the number of live elements; buf[:size] is the live range.
	size int

	// copyFn, when non-nil, mediates every element copy (Clone, Assign,
	// growth migration, Push/Insert/Set of caller values). A nil copyFn
	// selects the fast path: plain assignment, which cannot fail.
	copyFn CopyFunc[T]
}

// Option configures a Vector at construction time.
type Option[T any] func(*Vector[T])

// WithCapacity pre-allocates storage for at least n elements, so the first n
// appends never reallocate. Non-positive n is a no-op.
func WithCapacity[T any](n int) Option[T] {
	return func(v *Vector[T]) {
		if n > 0 && n > len(v.buf) {
			v.buf = make([]T, n)
		}
	}
}

// WithCopyFunc installs fn as the element copy hook.
//
// With a hook installed the vector treats element copying as fallible:
// growth migrates by per-element copy with full rollback on error (the
// strong guarantee), and every operation that stores a caller-supplied value
// copies it through fn first. Without a hook, elements move by plain
// assignment, which never fails, and growth takes the cheaper migrate path.
func WithCopyFunc[T any](fn CopyFunc[T]) Option[T] {
	return func(v *Vector[T]) { v.copyFn = fn }
}

// cloneValue returns the value to store for val: val itself on the fast
// path, or copyFn(val) when a copy hook is installed.
func (v *Vector[T]) cloneValue(val T) (T, error) {
	if v.copyFn == nil {
		return val, nil
	}

	return v.copyFn(val)
}

// zeroRange resets s to zero values, severing references held by slots that
// left the live range.
func zeroRange[T any](s []T) {
	var zero T
	for i := range s {
		s[i] = zero
	}
}

// release destroys every live element and drops the storage block, leaving
// the vector in the empty, zero-capacity state.
func (v *Vector[T]) release() {
	zeroRange(v.buf[:v.size])
	v.buf = nil
	v.size = 0
}
