package hashset

import (
	"iter"
	"runtime"

	"github.com/trichner/chainset/pkg/set"
)

// AddAll adds every item of items and reports whether any was inserted.
func (s *HashSet[T]) AddAll(items iter.Seq[T]) bool {
	modified := false
	for item := range items {
		if s.Add(item) {
			modified = true
		}
	}
	return modified
}

// RemoveAll removes every item of items and reports whether any was removed.
func (s *HashSet[T]) RemoveAll(items iter.Seq[T]) bool {
	modified := false
	for item := range items {
		for s.Remove(item) {
			modified = true
		}
	}
	return modified
}

// RetainAll keeps only the elements contained in c.
func (s *HashSet[T]) RetainAll(c set.Container[T]) bool {
	modified := false
	it := s.newIterator()
	for it.next != nil {
		item, err := it.Next()
		if err != nil {
			// only reachable if c mutates s
			panic(err)
		}
		if !c.Contains(item) {
			if err := it.Remove(); err != nil {
				panic(err)
			}
			modified = true
		}
	}
	return modified
}

// ToSlice converts the set to a slice in iteration order.
func (s *HashSet[T]) ToSlice() []T {
	result := make([]T, 0, s.size)
	for item := range s.All() {
		result = append(result, item)
	}
	return result
}

// CopyInto writes the elements into dst in iteration order. If dst is too
// short a new slice of length Len is allocated. If dst is longer, the slot
// right after the last element is set to the zero value.
func (s *HashSet[T]) CopyInto(dst []T) []T {
	if len(dst) < s.size {
		dst = make([]T, s.size)
	}

	i := 0
	for item := range s.All() {
		dst[i] = item
		i++
	}

	if len(dst) > s.size {
		var zero T
		dst[s.size] = zero
	}
	return dst
}

// Equal reports whether other holds the same elements. A runtime panic while
// probing other, such as comparing uncomparable dynamic values, counts as
// not equal.
func (s *HashSet[T]) Equal(other set.Set[T]) (eq bool) {
	if other == nil {
		return false
	}
	if o, ok := other.(*HashSet[T]); ok && o == s {
		return true
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			eq = false
		}
	}()

	if s.size != other.Len() {
		return false
	}

	for item := range s.All() {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// HashCode returns the sum of the element hash codes. Equal sets have equal
// hash codes regardless of insertion order.
func (s *HashSet[T]) HashCode() int32 {
	var h int32
	for item := range s.All() {
		h += hashOf(item)
	}
	return h
}
