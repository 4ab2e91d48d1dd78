// Package algorithms implements derived sequence algorithms on vec.Vector.
//
// It provides free-function implementations of:
//
//   - Ordering
//     – Sort (natural order for cmp.Ordered element types)
//     – SortFunc (caller-supplied comparison)
//     – IsSorted / IsSortedFunc
//     – Reverse
//
//   - Lookup
//     – Search (binary search over a sorted vector)
//     – Index / Contains (linear scan)
//
// All functions accept *vec.Vector and work in place on the live range;
// none of them changes the vector's size or capacity. Elements move during
// Sort and Reverse, so positions derived before the call are invalidated.
package algorithms
