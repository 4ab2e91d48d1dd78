// Package vec_test: constructors and whole-vector value semantics.
package vec_test

import (
	"testing"

	"github.com/katalvlaran/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Default verifies the default constructor: zero size, zero
// capacity, no allocation.
func TestNew_Default(t *testing.T) {
	v := vec.New[int]()
	assert.Equal(t, 0, v.Len(), "default vector must be empty")
	assert.Equal(t, 0, v.Cap(), "default vector must have zero capacity")
	assert.True(t, v.Empty())
}

// TestNew_WithCapacity verifies that WithCapacity pre-allocates without
// creating live elements.
func TestNew_WithCapacity(t *testing.T) {
	v := vec.New(vec.WithCapacity[string](16))
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 16, v.Cap(), "WithCapacity must pre-allocate slots")

	// Non-positive capacity is a no-op.
	v = vec.New(vec.WithCapacity[string](-3))
	assert.Equal(t, 0, v.Cap())
}

// TestNewWithSize verifies fill-construction with zero values and exact
// sizing, plus ErrBadCount on a negative count.
func TestNewWithSize(t *testing.T) {
	v, err := vec.NewWithSize[int](5)
	require.NoError(t, err)
	assert.Equal(t, 5, v.Len())
	assert.Equal(t, 5, v.Cap(), "sized constructor allocates exactly n slots")
	for i, x := range v.All() {
		assert.Zero(t, x, "element %d must be the zero value", i)
	}

	_, err = vec.NewWithSize[int](-1)
	assert.ErrorIs(t, err, vec.ErrBadCount, "negative count must error")
}

// TestRepeat verifies count+value construction and the zero-count case.
func TestRepeat(t *testing.T) {
	v, err := vec.Repeat(3, "ab")
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "ab", "ab"}, v.Values())

	empty, err := vec.Repeat(0, "ab")
	require.NoError(t, err)
	assert.True(t, empty.Empty())
	assert.Equal(t, 0, empty.Cap(), "zero-count construction must not allocate")
}

// TestRepeat_CopyFailure verifies the all-or-nothing constructor contract:
// a copy hook failing mid-fill yields only an error, never a partial vector.
func TestRepeat_CopyFailure(t *testing.T) {
	hook := &flakyCopy{failAt: 2}
	v, err := vec.Repeat(4, 7, vec.WithCopyFunc(hook.copy))
	assert.ErrorIs(t, err, errCopyBoom)
	assert.Nil(t, v, "no partial container may be observed")
}

// TestOf verifies literal-list construction.
func TestOf(t *testing.T) {
	v := vec.Of(1, 2, 3)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 3, v.Cap())
	assert.Equal(t, []int{1, 2, 3}, v.Values())

	assert.True(t, vec.Of[int]().Empty(), "Of with no values is empty")
}

// TestFromSlice verifies range construction and independence from the
// source slice.
func TestFromSlice(t *testing.T) {
	src := []int{4, 5, 6}
	v, err := vec.FromSlice(src)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, v.Values())

	// Mutating the source must not affect the vector.
	src[0] = 99
	got, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 4, got, "FromSlice must copy, not alias")
}

// TestClone_Independence verifies copy semantics: mutating the clone must
// not change the original and vice versa.
func TestClone_Independence(t *testing.T) {
	orig := vec.Of(1, 2, 3)
	cp, err := orig.Clone()
	require.NoError(t, err)
	assert.True(t, vec.Equal(orig, cp), "clone must equal the original")

	require.NoError(t, cp.Push(4))
	require.NoError(t, orig.Set(0, -1))

	assert.Equal(t, []int{-1, 2, 3}, orig.Values())
	assert.Equal(t, []int{1, 2, 3, 4}, cp.Values())
}

// TestClone_TrimsSpareCapacity verifies a clone is sized to the live range.
func TestClone_TrimsSpareCapacity(t *testing.T) {
	v := vec.New(vec.WithCapacity[int](32))
	mustPushAll(t, v, 1, 2)

	cp, err := v.Clone()
	require.NoError(t, err)
	assert.Equal(t, 2, cp.Len())
	assert.Equal(t, 2, cp.Cap(), "clone capacity must match its size")
}

// TestClone_CopyFailure verifies that a failing copy hook yields no clone.
func TestClone_CopyFailure(t *testing.T) {
	hook := &flakyCopy{}
	v, err := vec.FromSlice([]int{1, 2, 3}, vec.WithCopyFunc(hook.copy))
	require.NoError(t, err)

	hook.failAt = hook.calls + 2 // fail while cloning the second element
	cp, err := v.Clone()
	assert.ErrorIs(t, err, errCopyBoom)
	assert.Nil(t, cp)
	assert.Equal(t, []int{1, 2, 3}, v.Values(), "source must be untouched")
}

// TestTake verifies move semantics: the destination adopts the source's
// storage and the source is reset to empty with zero capacity.
func TestTake(t *testing.T) {
	src := vec.Of(1, 2, 3)
	dst := vec.Of(9, 9)

	dst.Take(src)

	assert.Equal(t, []int{1, 2, 3}, dst.Values(), "destination must hold the source's prior contents")
	assert.Equal(t, 0, src.Len(), "moved-from vector must be empty")
	assert.Equal(t, 0, src.Cap(), "moved-from vector must have zero capacity")

	// The moved-from vector must remain fully usable.
	mustPushAll(t, src, 7)
	assert.Equal(t, []int{7}, src.Values())
	assert.Equal(t, []int{1, 2, 3}, dst.Values(), "reusing the source must not disturb the destination")
}

// TestTake_Self verifies self-move is a no-op.
func TestTake_Self(t *testing.T) {
	v := vec.Of(1, 2)
	v.Take(v)
	assert.Equal(t, []int{1, 2}, v.Values())
}

// TestSwap_Function verifies the package-level Swap mirror.
func TestSwap_Function(t *testing.T) {
	a := vec.Of(1)
	b := vec.Of(2, 3)

	vec.Swap(a, b)

	assert.Equal(t, []int{2, 3}, a.Values())
	assert.Equal(t, []int{1}, b.Values())
}
