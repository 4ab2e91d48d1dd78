// Package vec_test: shared helpers for the vector test suite.
package vec_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/vec"
	"github.com/stretchr/testify/require"
)

// errCopyBoom is the injected element-copy failure.
var errCopyBoom = errors.New("injected copy failure")

// flakyCopy is a copy hook that counts invocations and fails exactly on the
// failAt-th call (1-based). failAt == 0 never fails. Lets tests trigger a
// copy failure at a chosen point inside growth migration or bulk fill.
type flakyCopy struct {
	calls  int
	failAt int
}

func (f *flakyCopy) copy(x int) (int, error) {
	f.calls++
	if f.failAt != 0 && f.calls == f.failAt {
		return 0, errCopyBoom
	}

	return x, nil
}

// requireInvariants asserts the structural invariants that must hold
// between any two public calls.
func requireInvariants[T any](t *testing.T, v *vec.Vector[T]) {
	t.Helper()
	require.GreaterOrEqual(t, v.Len(), 0, "size must be non-negative")
	require.LessOrEqual(t, v.Len(), v.Cap(), "size must never exceed capacity")
}

// mustPushAll appends vals one at a time, failing the test on any error.
func mustPushAll(t *testing.T, v *vec.Vector[int], vals ...int) {
	t.Helper()
	for _, x := range vals {
		require.NoError(t, v.Push(x))
		requireInvariants(t, v)
	}
}
