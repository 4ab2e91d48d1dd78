package vec

import "errors"

// Sentinel errors for vector operations.
var (
	// ErrIndexOutOfRange indicates an index or position outside the valid
	// bounds of the live range. No mutation has occurred.
	ErrIndexOutOfRange = errors.New("vec: index out of range")

	// ErrEmptyVector indicates Front, Back or Pop was called on an empty
	// vector. No mutation has occurred.
	ErrEmptyVector = errors.New("vec: vector is empty")

	// ErrBadRange indicates a [first, last) pair with first > last or with
	// either bound outside [0, Len()].
	ErrBadRange = errors.New("vec: invalid element range")

	// ErrBadCount indicates a negative element count.
	ErrBadCount = errors.New("vec: element count must be non-negative")
)
