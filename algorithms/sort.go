// Package algorithms: in-place ordering of a vector's live range.
//
// Sorting works on the storage the vector owns (via Values), so no element
// is copied in or out and the vector's size and capacity are untouched.
//
// Time complexity: O(n log n); Memory: O(log n) stack.
package algorithms

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/vec"
)

// Sort orders v's elements ascending by their natural order.
// All positions derived from v before the call are invalidated.
func Sort[T cmp.Ordered](v *vec.Vector[T]) {
	slices.Sort(v.Values())
}

// SortFunc orders v's elements by compare, which must return -1, 0 or +1
// like cmp.Compare. The sort is not stable.
func SortFunc[T any](v *vec.Vector[T], compare func(a, b T) int) {
	slices.SortFunc(v.Values(), compare)
}

// IsSorted reports whether v's elements are in ascending natural order.
func IsSorted[T cmp.Ordered](v *vec.Vector[T]) bool {
	return slices.IsSorted(v.Values())
}

// IsSortedFunc reports whether v's elements are ordered under compare.
func IsSortedFunc[T any](v *vec.Vector[T], compare func(a, b T) int) bool {
	return slices.IsSortedFunc(v.Values(), compare)
}

// Reverse reverses v's elements in place. O(n).
func Reverse[T any](v *vec.Vector[T]) {
	slices.Reverse(v.Values())
}
