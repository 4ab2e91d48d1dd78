// Package algorithms: element lookup over a vector's live range.
package algorithms

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/vec"
)

// Search binary-searches a vector sorted in ascending natural order.
// It returns the smallest index at which target would keep the order, and
// whether target is present at that index. The result is unspecified when
// v is not sorted. Time complexity: O(log n).
func Search[T cmp.Ordered](v *vec.Vector[T], target T) (int, bool) {
	return slices.BinarySearch(v.Values(), target)
}

// SearchFunc binary-searches a vector sorted under compare, with the same
// contract as Search.
func SearchFunc[T any](v *vec.Vector[T], target T, compare func(a, b T) int) (int, bool) {
	return slices.BinarySearchFunc(v.Values(), target, compare)
}

// Index returns the index of the first element equal to target, or -1.
// Linear scan, O(n).
func Index[T comparable](v *vec.Vector[T], target T) int {
	return slices.Index(v.Values(), target)
}

// Contains reports whether any live element equals target. O(n).
func Contains[T comparable](v *vec.Vector[T], target T) bool {
	return slices.Contains(v.Values(), target)
}
