// Package vec: structural equality and lexicographic ordering.
//
// Package-level functions cover the common constraints (comparable,
// cmp.Ordered); the *Func methods serve element types outside them.
// Ordering is standard dictionary order: elements compare pairwise and a
// shorter sequence that is a prefix of a longer one orders first.
package vec

import "cmp"

// Equal reports whether a and b hold the same elements in the same order.
// A vector always equals itself. Complexity: O(n).
func Equal[T comparable](a, b *Vector[T]) bool {
	if a == b {
		return true
	}
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.buf[i] != b.buf[i] {
			return false
		}
	}

	return true
}

// Compare orders a and b lexicographically: -1 if a < b, 0 if equal,
// +1 if a > b. Complexity: O(min(n, m)).
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	n := a.size
	if b.size < n {
		n = b.size
	}
	for i := 0; i < n; i++ {
		if c := cmp.Compare(a.buf[i], b.buf[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(a.size, b.size)
}

// Less reports a < b in lexicographic order.
func Less[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) < 0 }

// Greater reports a > b in lexicographic order.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) > 0 }

// LessOrEqual reports a <= b in lexicographic order.
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) <= 0 }

// GreaterOrEqual reports a >= b in lexicographic order.
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) >= 0 }

// EqualFunc reports whether v and other hold pairwise-equal elements under
// eq, in order. Serves element types that are not comparable.
func (v *Vector[T]) EqualFunc(other *Vector[T], eq func(a, b T) bool) bool {
	if v == other {
		return true
	}
	if v.size != other.size {
		return false
	}
	for i := 0; i < v.size; i++ {
		if !eq(v.buf[i], other.buf[i]) {
			return false
		}
	}

	return true
}

// CompareFunc orders v and other lexicographically under compare, which
// must return -1, 0 or +1 like cmp.Compare. Serves element types that are
// not cmp.Ordered.
func (v *Vector[T]) CompareFunc(other *Vector[T], compare func(a, b T) int) int {
	n := v.size
	if other.size < n {
		n = other.size
	}
	for i := 0; i < n; i++ {
		if c := compare(v.buf[i], other.buf[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(v.size, other.size)
}
