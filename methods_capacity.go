// Package vec: capacity reservation, growth, and resizing.
//
// Growth policy (checkExpandCapacity): when an append finds no spare slot,
// capacity becomes firstExpandCapacity when growing from empty, otherwise
// size*expandRate — i.e. 10, 20, 40, … for a vector filled one Push at a
// time.
//
// Growth execution (expandCapacity) is the container's central safety point.
// Two migrate paths:
//
//   - no copy hook: elements transfer by plain assignment into the new
//     block. Assignment cannot fail, so no rollback is ever needed.
//   - copy hook installed: elements are copied one by one; if any copy
//     fails, the new block is discarded and the vector is left exactly as
//     it was (strong guarantee).
//
// Either way the old live range is zeroed before the old block is dropped,
// so stale borrowed slices stop pinning element memory.
package vec

import "fmt"

// checkExpandCapacity grows storage if the live range has filled it.
// Called before every single-element append.
func (v *Vector[T]) checkExpandCapacity() error {
	if v.size != len(v.buf) {
		return nil
	}
	newCapacity := firstExpandCapacity
	if v.size > 0 {
		newCapacity = v.size * expandRate
	}

	return v.expandCapacity(newCapacity)
}

// expandCapacity reallocates storage to hold newCapacity elements and
// migrates the live range. No-op when newCapacity does not exceed the
// current capacity — reservations never shrink.
//
// All previously derived positions and borrowed slices are invalidated on a
// successful reallocation.
func (v *Vector[T]) expandCapacity(newCapacity int) error {
	if newCapacity <= len(v.buf) {
		return nil
	}

	fresh := make([]T, newCapacity)
	if v.copyFn == nil {
		copy(fresh, v.buf[:v.size])
	} else {
		for i := 0; i < v.size; i++ {
			stored, err := v.copyFn(v.buf[i])
			if err != nil {
				// Discard the new block; v is untouched.
				return fmt.Errorf("vec: grow to %d: migrate element %d: %w", newCapacity, i, err)
			}
			fresh[i] = stored
		}
	}

	zeroRange(v.buf[:v.size])
	v.buf = fresh

	return nil
}

// Reserve grows capacity to at least n element slots without changing the
// live contents. No-op when n does not exceed the current capacity.
//
// With a copy hook installed migration may fail; the vector is then left
// unchanged. Complexity: O(n) on growth, O(1) otherwise.
func (v *Vector[T]) Reserve(n int) error {
	return v.expandCapacity(n)
}

// ShrinkToFit releases spare capacity so that Cap() == Len(), via
// copy-and-swap: a right-sized clone is built first and ownership is
// exchanged only on success, so a failing copy hook leaves v unchanged.
// Complexity: O(n).
func (v *Vector[T]) ShrinkToFit() error {
	if v.size == len(v.buf) {
		return nil
	}
	fitted, err := v.Clone()
	if err != nil {
		return err
	}
	v.Swap(fitted)
	fitted.release()

	return nil
}

// Resize changes the live count to n: surplus elements are destroyed, or
// zero values are appended. Returns ErrBadCount if n is negative.
func (v *Vector[T]) Resize(n int) error {
	var zero T

	return v.ResizeWith(n, zero)
}

// ResizeWith changes the live count to n, appending copies of value when
// growing. Shrinking never reallocates and never fails; capacity is kept.
// Returns ErrBadCount if n is negative.
func (v *Vector[T]) ResizeWith(n int, value T) error {
	switch {
	case n < 0:
		return ErrBadCount
	case n < v.size:
		return v.EraseRange(n, v.size)
	case n > v.size:
		return v.InsertN(v.size, n-v.size, value)
	}

	return nil
}
