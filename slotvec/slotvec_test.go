package slotvec

import (
	"testing"

	"github.com/sonr-go/sonr/sonrerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertGetIndex(t *testing.T) {
	v := New[string](10)
	i0, err := v.Insert("foo")
	require.NoError(t, err)
	assert.Equal(t, 0, i0)

	i1, err := v.Insert("foo")
	require.NoError(t, err)
	assert.Equal(t, 1, i1)
}

func TestRemoveRecyclesSlot(t *testing.T) {
	v := New[string](10)
	i0, err := v.Insert("foo")
	require.NoError(t, err)

	val, ok := v.Remove(i0)
	require.True(t, ok)
	assert.Equal(t, "foo", val)

	i1, err := v.Insert("bar")
	require.NoError(t, err)
	assert.Equal(t, i0, i1)
}

func TestRemoveWithOffset(t *testing.T) {
	v := NewWithOffset[int](10, 1)
	i1, err := v.Insert(0)
	require.NoError(t, err)
	i2, err := v.Insert(1)
	require.NoError(t, err)
	i3, err := v.Insert(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, []int{i1, i2, i3})

	val, ok := v.Remove(1)
	require.True(t, ok)
	assert.Equal(t, 0, val)

	_, ok = v.Remove(1)
	assert.False(t, ok)

	i4, err := v.Insert(1)
	require.NoError(t, err)
	assert.Equal(t, 1, i4)
}

func TestInsertWithOffset(t *testing.T) {
	v := New[uint32](2)
	v.SetOffset(10)

	i0, err := v.Insert(1)
	require.NoError(t, err)
	assert.Equal(t, 10, i0)

	i1, err := v.Insert(1)
	require.NoError(t, err)
	assert.Equal(t, 11, i1)
}

func TestGetAndGetPtrWithOffset(t *testing.T) {
	v := New[int](2)
	v.SetOffset(10)
	_, _ = v.Insert(1)
	_, _ = v.Insert(2)

	got, ok := v.Get(10)
	require.True(t, ok)
	assert.Equal(t, 1, got)

	ptr, ok := v.GetPtr(11)
	require.True(t, ok)
	*ptr = 42
	got, ok = v.Get(11)
	require.True(t, ok)
	assert.Equal(t, 42, got)
}

func TestInRange(t *testing.T) {
	v := New[uint32](100)
	assert.True(t, v.InRange(0))
	assert.True(t, v.InRange(99))
	assert.False(t, v.InRange(100))
}

func TestLenAfterRemove(t *testing.T) {
	v := New[uint32](100)
	idx, _ := v.Insert(10)
	v.Remove(idx)
	assert.Equal(t, 0, v.Len())
}

func TestAllowGrowth(t *testing.T) {
	v := New[uint32](1)
	_, err := v.Insert(1)
	require.NoError(t, err)
	_, err = v.Insert(1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v.Capacity(), 2)
}

func TestDisableGrowth(t *testing.T) {
	v := New[uint32](1)
	v.PreventGrowth()

	i0, err := v.Insert(1)
	require.NoError(t, err)
	assert.Equal(t, 0, i0)

	_, err = v.Insert(1)
	require.ErrorIs(t, err, sonrerr.ErrCapacityExhausted)
}

func TestInsertManyForcesResize(t *testing.T) {
	const cap = 10
	store := New[int](cap)

	var indices []int
	for i := 0; i < cap*2; i++ {
		idx, err := store.Insert(i)
		require.NoError(t, err)
		indices = append(indices, idx)
	}
	assert.Equal(t, cap*2, store.Len())

	val, ok := store.Remove(indices[5])
	require.True(t, ok)
	reinserted, err := store.Insert(val)
	require.NoError(t, err)
	assert.Equal(t, indices[5], reinserted)
}

func TestClear(t *testing.T) {
	v := New[int](4)
	_, _ = v.Insert(1)
	_, _ = v.Insert(2)
	v.Clear()
	assert.Equal(t, 0, v.Len())

	idx, err := v.Insert(3)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}
