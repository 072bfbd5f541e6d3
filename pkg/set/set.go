// Package set declares the capability contract shared by set implementations.
package set

import (
	"errors"
	"iter"
)

var (
	ErrConcurrentModification = errors.New("set modified during iteration")
	ErrNoSuchElement          = errors.New("no such element")
	ErrIllegalState           = errors.New("illegal iterator state")
)

// Container is anything that can answer membership queries.
type Container[T any] interface {
	Contains(item T) bool
}

// Set is a mutable collection of unique elements.
// Implementations are not safe for concurrent use.
type Set[T any] interface {
	Container[T]

	// Add inserts item and reports whether the set changed.
	Add(item T) bool
	// Remove deletes item and reports whether the set changed.
	Remove(item T) bool
	Len() int
	IsEmpty() bool
	Clear()

	// Iterator returns a fresh single-pass iterator.
	Iterator() Iterator[T]
	// All returns a range-over-func view of the elements.
	All() iter.Seq[T]

	AddAll(items iter.Seq[T]) bool
	RemoveAll(items iter.Seq[T]) bool
	// RetainAll removes every element that c does not contain.
	RetainAll(c Container[T]) bool

	// ToSlice converts the set to a slice in iteration order.
	ToSlice() []T
	// CopyInto writes the elements into dst, reallocating if dst is too short.
	CopyInto(dst []T) []T

	Equal(other Set[T]) bool
	HashCode() int32
}

// Iterator walks a set once. Every method fails with ErrConcurrentModification
// if the set was structurally changed other than through Remove.
type Iterator[T any] interface {
	HasNext() (bool, error)
	Next() (T, error)
	// Remove deletes the element last returned by Next.
	Remove() error
}
