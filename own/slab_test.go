package own

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/corekit/alloc"
	"github.com/pavanmanishd/corekit/errors"
)

func TestMakeSlab(t *testing.T) {
	s := MakeSlab[int](4)
	require.Equal(t, 4, s.Len())
	for i := 0; i < s.Len(); i++ {
		assert.Zero(t, s.At(i))
	}

	s.Set(2, 9)
	*s.Ptr(3) = 11
	assert.Equal(t, []int{0, 0, 9, 11}, s.Slice())
}

func TestMakeSlabEmpty(t *testing.T) {
	s := MakeSlab[int](0)
	assert.True(t, s.Empty())
	assert.Zero(t, s.Len())

	h := alloc.NewHeap()
	s = MakeSlabIn[int](h, -3)
	assert.True(t, s.Empty())
	s.Release()
	assert.Zero(t, h.Stats().Allocs)
	assert.Zero(t, h.Stats().Frees)
}

func TestSlabCheckedAccess(t *testing.T) {
	s := MakeSlab[string](2)
	require.NoError(t, s.Store(1, "b"))

	v, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	_, err = s.Get(2)
	require.ErrorIs(t, err, errors.ErrOutOfRange)
	assert.Contains(t, err.Error(), "index 2")

	err = s.Store(-1, "x")
	require.ErrorIs(t, err, errors.ErrOutOfRange)

	s.Release()
	_, err = s.Get(0)
	require.ErrorIs(t, err, errors.ErrReleased)
	require.ErrorIs(t, s.Store(0, "x"), errors.ErrReleased)
}

func TestSlabUncheckedAccessPanicsPastEnd(t *testing.T) {
	s := MakeSlab[int](1)
	assert.Panics(t, func() { _ = s.At(1) })
}

func TestSlabMove(t *testing.T) {
	h := alloc.NewHeap()
	src := MakeSlabIn[int32](h, 8)
	src.Set(0, 5)
	data := src.Slice()

	dst := src.Move()

	assert.True(t, src.Empty())
	assert.Zero(t, src.Len())
	assert.Equal(t, 8, dst.Len())
	assert.Equal(t, int32(5), dst.At(0))
	assert.Same(t, &data[0], dst.Ptr(0), "move is O(1), storage unchanged")
	assert.Same(t, h, dst.Allocator())

	src.Release()
	dst.Release()
	dst.Release()

	st := h.Stats()
	assert.Equal(t, int64(1), st.Allocs)
	assert.Equal(t, int64(1), st.Frees)
	assert.Equal(t, int64(32), st.BytesFreed)
}

func TestSlabReplace(t *testing.T) {
	h := alloc.NewHeap()
	a := MakeSlabIn[int](h, 2)
	b := MakeSlabIn[int](h, 4)

	a.Replace(&b)
	assert.Equal(t, 4, a.Len())
	assert.True(t, b.Empty())
	assert.Equal(t, int64(1), h.Stats().Frees)

	a.Replace(&a)
	assert.Equal(t, 4, a.Len())

	a.Release()
	assert.Zero(t, h.Stats().Live())
}

func TestAdoptSlice(t *testing.T) {
	raw := make([]int, 2, 6)
	s := AdoptSlice(raw)
	assert.Equal(t, 6, s.Len(), "adoption takes the full capacity")
	assert.Nil(t, s.Allocator())

	empty := AdoptSlice([]int(nil))
	assert.True(t, empty.Empty())
}

func TestSlabReleaseClearsPointerfulElements(t *testing.T) {
	s := MakeSlab[*int](1)
	v := 1
	s.Set(0, &v)
	backing := s.Slice()

	s.Release()
	assert.Nil(t, backing[0])
}
