package view

import (
	"slices"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindIfSeq(t *testing.T) {
	i, ok := FindIfSeq(slices.Values([]int{1, 3, 4}), isEven)
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	i, ok = FindIfSeq(slices.Values([]int{1, 3}), isEven)
	assert.False(t, ok)
	assert.Equal(t, 2, i)
}

func TestSeqQuantifiers(t *testing.T) {
	seq := slices.Values([]int{2, 4, 7})
	assert.Equal(t, 2, CountIfSeq(seq, isEven))
	assert.False(t, AllOfSeq(seq, isEven))
	assert.True(t, AnyOfSeq(seq, isEven))
	assert.False(t, NoneOfSeq(seq, isEven))

	empty := slices.Values([]int(nil))
	assert.True(t, AllOfSeq(empty, isEven))
	assert.True(t, NoneOfSeq(empty, isEven))
}

func TestMismatchSeq(t *testing.T) {
	m := MismatchSeq(slices.Values([]int{1, 2, 3}), slices.Values([]int{1, 2}), eq[int])
	assert.Equal(t, SeqMismatch{Pos: 2, ExhaustedB: true}, m)

	m = MismatchSeq(slices.Values([]int{1, 9}), slices.Values([]int{1, 2}), eq[int])
	assert.Equal(t, SeqMismatch{Pos: 1}, m)
}

func TestSeqAgreesWithSlices(t *testing.T) {
	prop := func(a, b []byte) bool {
		sa, sb := slices.Values(a), slices.Values(b)
		return EqualSeq(sa, sb) == Equal(a, b) &&
			StartsWithSeq(sa, sb) == StartsWith(a, b)
	}
	require.NoError(t, quick.Check(prop, nil))
}

func TestViewValuesAsSeq(t *testing.T) {
	v := Of([]int{5, 6, 7})
	assert.True(t, StartsWithSeq(v.Values(), v.Sub(0, 2).Values()))
	assert.False(t, EqualSeq(v.Values(), v.Sub(0, 2).Values()))
}
