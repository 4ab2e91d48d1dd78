// Package vec provides a generic, contiguous, growable sequence container —
// a from-scratch dynamic array with explicit capacity management and
// strict, sentinel-error based bounds checking.
//
// 🚀 What is vec?
//
//	A small, pure-Go container library built around one type:
//		• Vector[T] — index-addressable contiguous storage
//		• Amortized O(1) append with a 10-then-double growth policy
//		• Value semantics: Clone (deep copy), Take (move), Swap (O(1))
//		• Bounds-checked access — every violation is a returned error,
//		  never a panic and never silent clamping
//		• Lexicographic comparison: Equal, Compare, Less, Greater, …
//		• Forward and reverse range-over-func iteration (All, Backward)
//
// ✨ Why choose vec?
//
//   - Explicit capacity model — Len() and Cap() are distinct; Clear keeps
//     capacity for reuse, ShrinkToFit releases it.
//   - Rock-solid failure contract — every mutating operation either fully
//     succeeds or leaves the vector exactly as it was (see WithCopyFunc).
//   - Pure Go — no cgo, no hidden deps.
//   - Extensible — install a per-element copy hook to give reference-holding
//     element types deep-copy semantics, with automatic rollback on failure.
//
// Under the hood, the module is organized in two packages:
//
//	vec/         — the Vector[T] engine: storage, growth, mutation, comparison
//	algorithms/  — derived sequence algorithms (Sort, Search, Contains, …)
//
// Quick example:
//
//	v := vec.Of(1, 2, 3)
//	_ = v.Push(4)
//	_ = v.Insert(1, 99)     // [1 99 2 3 4]
//	_ = v.Erase(0)          // [99 2 3 4]
//	x, _ := v.Front()       // 99
//	fmt.Println(v, x, v.Len(), v.Cap())
//
// Concurrency: a Vector is single-owner. It performs no internal locking;
// concurrent mutation, or mutation concurrent with reads, requires external
// synchronization.
//
// See doc comments on each method for the exact invalidation and failure
// contracts, and package algorithms for sorting and searching.
package vec
