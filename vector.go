// Package vec: constructors and whole-vector value operations.
//
// Every constructor is all-or-nothing: it either returns a fully valid
// vector (§ invariants in types.go) or an error with nothing retained.
package vec

import "fmt"

// New returns an empty vector configured by opts: zero size, and zero
// capacity unless WithCapacity was supplied. Never fails.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// NewWithSize returns a vector holding n zero values of T.
// Storage is allocated for exactly n elements (plus any larger WithCapacity).
// Returns ErrBadCount if n is negative.
func NewWithSize[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	var zero T

	return Repeat(n, zero, opts...)
}

// Repeat returns a vector holding n copies of value.
//
// With a copy hook installed, the hook runs once per element; if the k-th
// copy fails, the partially built vector is discarded and only the error is
// returned — no partial container is ever observed.
// Returns ErrBadCount if n is negative.
func Repeat[T any](n int, value T, opts ...Option[T]) (*Vector[T], error) {
	if n < 0 {
		return nil, ErrBadCount
	}
	v := New[T](opts...)
	if n == 0 {
		return v, nil
	}
	if len(v.buf) < n {
		v.buf = make([]T, n)
	}
	for i := 0; i < n; i++ {
		stored, err := v.cloneValue(value)
		if err != nil {
			return nil, fmt.Errorf("vec: fill element %d: %w", i, err)
		}
		v.buf[i] = stored
	}
	v.size = n

	return v, nil
}

// Of returns a vector holding exactly the given values, in order — the
// literal-list constructor. Storage is sized to fit; never fails.
func Of[T any](values ...T) *Vector[T] {
	v := &Vector[T]{}
	if len(values) == 0 {
		return v
	}
	v.buf = make([]T, len(values))
	copy(v.buf, values)
	v.size = len(values)

	return v
}

// FromSlice returns a vector holding a copy of s — the range constructor.
// Storage is sized to exactly len(s) (plus any larger WithCapacity). The
// copy hook, when installed, mediates every element; failure discards the
// partial vector and surfaces the error.
func FromSlice[T any](s []T, opts ...Option[T]) (*Vector[T], error) {
	v := New[T](opts...)
	if len(s) == 0 {
		return v, nil
	}
	if len(v.buf) < len(s) {
		v.buf = make([]T, len(s))
	}
	if v.copyFn == nil {
		copy(v.buf, s)
	} else {
		for i, val := range s {
			stored, err := v.copyFn(val)
			if err != nil {
				return nil, fmt.Errorf("vec: copy element %d: %w", i, err)
			}
			v.buf[i] = stored
		}
	}
	v.size = len(s)

	return v, nil
}

// Clone returns a deep, independent copy of v holding exactly v.Len()
// elements (spare capacity is not carried over). The copy hook travels with
// the clone. All-or-nothing: a failing copy leaves no partial clone.
// Complexity: O(n).
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{copyFn: v.copyFn}
	if v.size == 0 {
		return out, nil
	}
	out.buf = make([]T, v.size)
	if v.copyFn == nil {
		copy(out.buf, v.buf[:v.size])
	} else {
		for i := 0; i < v.size; i++ {
			stored, err := v.copyFn(v.buf[i])
			if err != nil {
				return nil, fmt.Errorf("vec: clone element %d: %w", i, err)
			}
			out.buf[i] = stored
		}
	}
	out.size = v.size

	return out, nil
}

// Take moves src's contents into v: v's current elements are destroyed and
// its storage released, v adopts src's storage block as-is, and src is reset
// to the empty, zero-capacity state. Never allocates, never fails, O(n) only
// for destroying v's previous elements. Taking from itself is a no-op.
//
// All positions previously derived from either vector are invalidated.
func (v *Vector[T]) Take(src *Vector[T]) {
	if v == src {
		return
	}
	v.release()
	v.buf, v.size, v.copyFn = src.buf, src.size, src.copyFn
	src.buf, src.size = nil, 0
}

// Swap exchanges the contents of a and b in O(1). Equivalent to a.Swap(b).
func Swap[T any](a, b *Vector[T]) {
	a.Swap(b)
}
