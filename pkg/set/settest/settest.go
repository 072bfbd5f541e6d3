// Package settest provides a conformance suite for set.Set implementations.
package settest

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trichner/chainset/pkg/set"
)

// Run exercises newSet against the set.Set contract. sample must hold at
// least four distinct elements.
func Run[T any](t *testing.T, newSet func() set.Set[T], sample []T) {
	require.GreaterOrEqual(t, len(sample), 4, "sample too small")

	t.Run("Empty", func(t *testing.T) {
		s := newSet()
		assert.True(t, s.IsEmpty())
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.ToSlice())

		it := s.Iterator()
		ok, err := it.HasNext()
		require.NoError(t, err)
		assert.False(t, ok)
		_, err = it.Next()
		assert.ErrorIs(t, err, set.ErrNoSuchElement)
	})

	t.Run("AddContains", func(t *testing.T) {
		s := newSet()
		for i, item := range sample {
			assert.True(t, s.Add(item))
			assert.Equal(t, i+1, s.Len())
		}
		for _, item := range sample {
			assert.True(t, s.Contains(item))
		}
		assert.False(t, s.IsEmpty())
	})

	t.Run("AddDuplicate", func(t *testing.T) {
		s := newSet()
		s.Add(sample[0])
		assert.False(t, s.Add(sample[0]))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("Remove", func(t *testing.T) {
		s := newSet()
		s.AddAll(slices.Values(sample))

		assert.True(t, s.Remove(sample[1]))
		assert.Equal(t, len(sample)-1, s.Len())
		assert.False(t, s.Contains(sample[1]))

		assert.False(t, s.Remove(sample[1]))
		assert.Equal(t, len(sample)-1, s.Len())
	})

	t.Run("Clear", func(t *testing.T) {
		s := newSet()
		s.AddAll(slices.Values(sample))
		s.Clear()

		assert.True(t, s.IsEmpty())
		assert.Equal(t, 0, s.Len())
		for range s.All() {
			t.Fatal("cleared set yielded an element")
		}
	})

	t.Run("IteratorExhaustive", func(t *testing.T) {
		s := newSet()
		s.AddAll(slices.Values(sample))

		var seen []T
		it := s.Iterator()
		for {
			ok, err := it.HasNext()
			require.NoError(t, err)
			if !ok {
				break
			}
			item, err := it.Next()
			require.NoError(t, err)
			seen = append(seen, item)
		}

		assert.Len(t, seen, s.Len())
		assert.ElementsMatch(t, sample, seen)

		_, err := it.Next()
		assert.ErrorIs(t, err, set.ErrNoSuchElement)
	})

	t.Run("IteratorFailsFast", func(t *testing.T) {
		s := newSet()
		s.AddAll(slices.Values(sample[:3]))

		it := s.Iterator()
		s.Add(sample[3])
		_, err := it.HasNext()
		assert.ErrorIs(t, err, set.ErrConcurrentModification)
		_, err = it.Next()
		assert.ErrorIs(t, err, set.ErrConcurrentModification)

		it = s.Iterator()
		_, err = it.Next()
		require.NoError(t, err)
		s.Remove(sample[0])
		_, err = it.Next()
		assert.ErrorIs(t, err, set.ErrConcurrentModification)
	})

	t.Run("IteratorRemove", func(t *testing.T) {
		s := newSet()
		s.AddAll(slices.Values(sample))

		assert.ErrorIs(t, s.Iterator().Remove(), set.ErrIllegalState)

		it := s.Iterator()
		removed := 0
		for {
			ok, err := it.HasNext()
			require.NoError(t, err)
			if !ok {
				break
			}
			_, err = it.Next()
			require.NoError(t, err)
			require.NoError(t, it.Remove())
			assert.ErrorIs(t, it.Remove(), set.ErrIllegalState)
			removed++
		}

		assert.Equal(t, len(sample), removed)
		assert.True(t, s.IsEmpty())
	})

	t.Run("AddAllRemoveAll", func(t *testing.T) {
		s := newSet()
		assert.True(t, s.AddAll(slices.Values(sample)))
		assert.False(t, s.AddAll(slices.Values(sample)))

		assert.True(t, s.RemoveAll(slices.Values(sample[:2])))
		assert.False(t, s.RemoveAll(slices.Values(sample[:2])))
		assert.Equal(t, len(sample)-2, s.Len())
	})

	t.Run("RetainAll", func(t *testing.T) {
		s := newSet()
		s.AddAll(slices.Values(sample))

		keep := newSet()
		keep.AddAll(slices.Values(sample[:2]))

		assert.True(t, s.RetainAll(keep))
		assert.False(t, s.RetainAll(keep))
		assert.True(t, s.Equal(keep))
	})

	t.Run("ToSliceCopyInto", func(t *testing.T) {
		s := newSet()
		s.AddAll(slices.Values(sample))

		all := s.ToSlice()
		assert.Len(t, all, s.Len())
		for _, item := range all {
			assert.True(t, s.Contains(item))
		}

		short := s.CopyInto(nil)
		assert.Equal(t, all, short)

		long := make([]T, s.Len()+2)
		long[s.Len()+1] = sample[0]
		got := s.CopyInto(long)
		assert.Equal(t, all, got[:s.Len()])
		assert.Equal(t, sample[0], got[s.Len()+1])
	})

	t.Run("EqualHashCode", func(t *testing.T) {
		a := newSet()
		b := newSet()
		a.AddAll(slices.Values(sample))
		reversed := slices.Clone(sample)
		slices.Reverse(reversed)
		b.AddAll(slices.Values(reversed))

		assert.True(t, a.Equal(b))
		assert.True(t, b.Equal(a))
		assert.True(t, a.Equal(a))
		assert.Equal(t, a.HashCode(), b.HashCode())

		b.Remove(sample[0])
		assert.False(t, a.Equal(b))
		assert.False(t, a.Equal(nil))
	})
}
