// Package vec: mutating operations on the live range.
//
// Shared contract: every method here either completes fully or returns an
// error with the vector in its previous valid state (bulk insertion is the
// documented exception — see InsertN). Any operation that reallocates or
// shifts elements invalidates positions and borrowed slices derived before
// the call; appends that stay within capacity invalidate nothing.
package vec

import "fmt"

// Push appends val to the end of the vector, growing capacity when the
// live range has filled it. Amortized O(1); O(n) on a growth step.
//
// With a copy hook installed, the incoming value is copied before any
// storage change, so a failing copy leaves the vector untouched.
func (v *Vector[T]) Push(val T) error {
	stored, err := v.cloneValue(val)
	if err != nil {
		return fmt.Errorf("vec: push: %w", err)
	}
	if err = v.checkExpandCapacity(); err != nil {
		return err
	}
	v.buf[v.size] = stored
	v.size++

	return nil
}

// Pop removes and returns the last element.
// Returns ErrEmptyVector when the vector is empty. Capacity is kept.
// Complexity: O(1).
func (v *Vector[T]) Pop() (T, error) {
	var zero T
	if v.size == 0 {
		return zero, ErrEmptyVector
	}
	v.size--
	out := v.buf[v.size]
	v.buf[v.size] = zero

	return out, nil
}

// Insert places val before position i, shifting elements [i, Len()) one
// slot toward the back. i == Len() degrades to a plain append. After a
// successful call the new element is at index i.
// Returns ErrIndexOutOfRange unless i is in [0, Len()]. Complexity: O(n-i).
//
// The position survives reallocation because it is an index, not a pointer:
// capacity is checked after the incoming value is secured, and the shift
// runs back-to-front so no slot is read after being overwritten.
func (v *Vector[T]) Insert(i int, val T) error {
	if i < 0 || i > v.size {
		return ErrIndexOutOfRange
	}
	stored, err := v.cloneValue(val)
	if err != nil {
		return fmt.Errorf("vec: insert at %d: %w", i, err)
	}
	if err = v.checkExpandCapacity(); err != nil {
		return err
	}

	if i == v.size {
		v.buf[v.size] = stored
		v.size++

		return nil
	}

	// Extend the live range by moving the last element into the first
	// reserved slot, then shift the tail backward into the vacancy.
	v.buf[v.size] = v.buf[v.size-1]
	v.size++
	for j := v.size - 2; j > i; j-- {
		v.buf[j] = v.buf[j-1]
	}
	v.buf[i] = stored

	return nil
}

// InsertN places n copies of value before position i, as n applications of
// Insert — correctness-first, not throughput-optimal: expect O(n·Len())
// for large n. n == 0 is a no-op.
// Returns ErrIndexOutOfRange unless i is in [0, Len()], ErrBadCount if n is
// negative.
//
// On a mid-sequence copy failure the copies already inserted remain; each
// individual step still honors its own rollback contract.
func (v *Vector[T]) InsertN(i, n int, value T) error {
	if n < 0 {
		return ErrBadCount
	}
	if i < 0 || i > v.size {
		return ErrIndexOutOfRange
	}
	for k := 0; k < n; k++ {
		if err := v.Insert(i, value); err != nil {
			return err
		}
	}

	return nil
}

// InsertSlice places the elements of s, in order, before position i.
// Defined as iterated single-element insertion with the position re-derived
// after every step; the same cost and partial-failure notes as InsertN
// apply. An empty s is a no-op.
// Returns ErrIndexOutOfRange unless i is in [0, Len()].
func (v *Vector[T]) InsertSlice(i int, s []T) error {
	if i < 0 || i > v.size {
		return ErrIndexOutOfRange
	}
	for k, val := range s {
		if err := v.Insert(i+k, val); err != nil {
			return err
		}
	}

	return nil
}

// Erase removes the element at position i, shifting the tail one slot
// toward the front and destroying the vacated last slot. Capacity is kept.
// Returns ErrIndexOutOfRange unless i addresses a live element.
// Complexity: O(n-i).
func (v *Vector[T]) Erase(i int) error {
	if i < 0 || i >= v.size {
		return ErrIndexOutOfRange
	}
	copy(v.buf[i:v.size-1], v.buf[i+1:v.size])
	var zero T
	v.size--
	v.buf[v.size] = zero

	return nil
}

// EraseRange removes the elements in [first, last), moving the tail into
// the hole and destroying the surplus trailing slots. Capacity is kept.
// first == last is a no-op. Returns ErrBadRange unless
// 0 <= first <= last <= Len(). Complexity: O(Len()-first).
func (v *Vector[T]) EraseRange(first, last int) error {
	if first < 0 || last > v.size || first > last {
		return ErrBadRange
	}
	n := last - first
	if n == 0 {
		return nil
	}
	copy(v.buf[first:], v.buf[last:v.size])
	zeroRange(v.buf[v.size-n : v.size])
	v.size -= n

	return nil
}

// Clear destroys every live element and resets the size to zero, keeping
// capacity for reuse. Use ShrinkToFit to release memory. Complexity: O(n).
func (v *Vector[T]) Clear() {
	zeroRange(v.buf[:v.size])
	v.size = 0
}

// Assign replaces the vector's contents with a copy of s, sized exactly to
// len(s). Implemented copy-and-swap: the replacement is built as an
// independent temporary and ownership is exchanged only on success, so a
// failing copy hook leaves v unchanged and assigning a vector's own live
// range to itself is safe.
func (v *Vector[T]) Assign(s []T) error {
	fresh, err := FromSlice(s, WithCopyFunc[T](v.copyFn))
	if err != nil {
		return err
	}
	v.Swap(fresh)
	fresh.release()

	return nil
}

// AssignN replaces the vector's contents with n copies of value, sized
// exactly to n. Same copy-and-swap atomicity as Assign.
// Returns ErrBadCount if n is negative.
func (v *Vector[T]) AssignN(n int, value T) error {
	fresh, err := Repeat(n, value, WithCopyFunc[T](v.copyFn))
	if err != nil {
		return err
	}
	v.Swap(fresh)
	fresh.release()

	return nil
}

// AssignVector replaces the vector's contents with a copy of src's live
// range. src is read, never mutated; v.AssignVector(v) is safe.
func (v *Vector[T]) AssignVector(src *Vector[T]) error {
	return v.Assign(src.Values())
}

// Swap exchanges the full contents of v and other — storage block, live
// count, and copy hook — in O(1), touching no elements. This pointer-triple
// exchange is the primitive that gives Assign and ShrinkToFit their
// all-or-nothing behavior.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
	v.copyFn, other.copyFn = other.copyFn, v.copyFn
}
