package hashset

import (
	"fmt"
	"iter"

	"github.com/trichner/chainset/pkg/set"
)

// Iterator walks the buckets in ascending order and each chain from head to
// tail. It holds views into the set's chains, never ownership.
//
// Besides structural changes, a resize also invalidates the iterator, even
// one triggered by an Add of an element that was already present.
type Iterator[T comparable] struct {
	set              *HashSet[T]
	bucket           int
	current          *entry[T]
	next             *entry[T]
	expectedModCount int
	expectedCapacity int
}

// Iterator returns a new fail-fast iterator positioned before the first element.
func (s *HashSet[T]) Iterator() set.Iterator[T] {
	return s.newIterator()
}

func (s *HashSet[T]) newIterator() *Iterator[T] {
	it := &Iterator[T]{
		set:              s,
		expectedModCount: s.modCount,
		expectedCapacity: len(s.buckets),
	}
	it.advance()
	return it
}

// advance stages the head of the next non-empty bucket, if any.
func (it *Iterator[T]) advance() {
	buckets := it.set.buckets
	for it.bucket < len(buckets) {
		head := buckets[it.bucket]
		it.bucket++
		if head != nil {
			it.next = head
			return
		}
	}
}

// checkForModification also catches a resize, which an Add of a duplicate
// can trigger without bumping modCount.
func (it *Iterator[T]) checkForModification() error {
	if it.set.modCount != it.expectedModCount {
		return fmt.Errorf("%w: expected modification count %d, was %d",
			set.ErrConcurrentModification, it.expectedModCount, it.set.modCount)
	}
	if len(it.set.buckets) != it.expectedCapacity {
		return fmt.Errorf("%w: table resized from %d to %d buckets",
			set.ErrConcurrentModification, it.expectedCapacity, len(it.set.buckets))
	}
	return nil
}

func (it *Iterator[T]) HasNext() (bool, error) {
	if err := it.checkForModification(); err != nil {
		return false, err
	}
	return it.next != nil, nil
}

func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if err := it.checkForModification(); err != nil {
		return zero, err
	}
	if it.next == nil {
		return zero, set.ErrNoSuchElement
	}

	it.current = it.next
	it.next = it.current.next
	if it.next == nil {
		it.advance()
	}
	return it.current.value, nil
}

// Remove deletes the element returned by the last call to Next.
func (it *Iterator[T]) Remove() error {
	if err := it.checkForModification(); err != nil {
		return err
	}
	if it.current == nil {
		return fmt.Errorf("%w: Remove called without a preceding Next", set.ErrIllegalState)
	}

	it.set.removeEntry(it.current)
	it.current = nil
	it.expectedModCount = it.set.modCount
	return nil
}

// All returns a range-over-func view of the set. Structurally changing the
// set while ranging panics with an error wrapping
// set.ErrConcurrentModification.
func (s *HashSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.newIterator()
		for {
			ok, err := it.HasNext()
			if err != nil {
				panic(err)
			}
			if !ok {
				return
			}
			item, err := it.Next()
			if err != nil {
				panic(err)
			}
			if !yield(item) {
				return
			}
		}
	}
}
