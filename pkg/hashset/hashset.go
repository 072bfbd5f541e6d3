// Package hashset implements set.Set as a hash table with separate chaining.
//
// Buckets hold singly-linked chains of entries. The bucket array length is
// always a power of two and doubles once the element count reaches
// loadFactor * capacity. The set is not safe for concurrent use.
//
// Elements without a HashCode method are hashed like map keys: a HashSet[any]
// holding an unhashable dynamic value, such as a slice, panics on Add,
// Remove and Contains just as a map[any] would.
package hashset

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/bits"
	"strings"

	"github.com/trichner/chainset/pkg/set"
)

const (
	DefaultCapacity   = 16
	DefaultLoadFactor = 0.75
	MaxCapacity       = 1 << 30
)

var ErrInvalidArgument = errors.New("invalid argument")

var _ set.Set[int] = (*HashSet[int])(nil)

type entry[T comparable] struct {
	value T
	next  *entry[T]
}

// HashSet is a set of unique elements stored in hash buckets.
type HashSet[T comparable] struct {
	buckets    []*entry[T]
	size       int
	loadFactor float64
	modCount   int
	logger     *slog.Logger

	maxCapacity int
}

type options struct {
	capacity   int
	loadFactor float64
	logger     *slog.Logger
}

type Option func(*options)

// WithCapacity sets the requested initial capacity. It is rounded up to the
// next power of two.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

func WithLoadFactor(f float64) Option {
	return func(o *options) {
		o.loadFactor = f
	}
}

// WithLogger sets the logger used for resize diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New creates an empty set.
func New[T comparable](opts ...Option) (*HashSet[T], error) {
	o := &options{
		capacity:   DefaultCapacity,
		loadFactor: DefaultLoadFactor,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.capacity < 0 {
		return nil, fmt.Errorf("%w: illegal initial capacity: %d", ErrInvalidArgument, o.capacity)
	}
	if o.loadFactor <= 0 || math.IsNaN(o.loadFactor) {
		return nil, fmt.Errorf("%w: illegal load factor: %v", ErrInvalidArgument, o.loadFactor)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &HashSet[T]{
		buckets:     make([]*entry[T], tableSizeFor(o.capacity)),
		loadFactor:  o.loadFactor,
		logger:      logger,
		maxCapacity: MaxCapacity,
	}, nil
}

// MustNew is like New but panics on invalid options.
func MustNew[T comparable](opts ...Option) *HashSet[T] {
	s, err := New[T](opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Of creates a set with default options holding items.
func Of[T comparable](items ...T) *HashSet[T] {
	s := MustNew[T]()
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// tableSizeFor returns the smallest power of two >= capacity, clamped to
// [1, MaxCapacity].
func tableSizeFor(capacity int) int {
	if capacity <= 1 {
		return 1
	}
	if capacity >= MaxCapacity {
		return MaxCapacity
	}
	return 1 << bits.Len(uint(capacity-1))
}

// bucketIndex is only valid for power of two lengths.
func bucketIndex[T comparable](item T, length int) int {
	h := hashOf(item)
	return int(h&0x7FFFFFFF) & (length - 1)
}

func (s *HashSet[T]) resize() {
	oldCapacity := len(s.buckets)
	newCapacity := oldCapacity << 1
	if newCapacity > s.maxCapacity {
		return
	}

	newBuckets := make([]*entry[T], newCapacity)
	for _, e := range s.buckets {
		for e != nil {
			next := e.next
			i := bucketIndex(e.value, newCapacity)
			e.next = newBuckets[i]
			newBuckets[i] = e
			e = next
		}
	}
	s.buckets = newBuckets

	s.logger.Debug("hashset resized", "from", oldCapacity, "to", newCapacity, "size", s.size)
}

// Add inserts item. It reports false if an equal element is already present.
// The capacity check runs before the duplicate scan, so an Add that turns out
// to be a no-op may still grow the table.
func (s *HashSet[T]) Add(item T) bool {
	if float64(s.size) >= s.loadFactor*float64(len(s.buckets)) {
		s.resize()
	}

	i := bucketIndex(item, len(s.buckets))
	for e := s.buckets[i]; e != nil; e = e.next {
		if equal(e.value, item) {
			return false
		}
	}

	s.buckets[i] = &entry[T]{value: item, next: s.buckets[i]}
	s.size++
	s.modCount++
	return true
}

// Remove deletes item and reports whether it was present.
func (s *HashSet[T]) Remove(item T) bool {
	i := bucketIndex(item, len(s.buckets))

	var prev *entry[T]
	for e := s.buckets[i]; e != nil; e = e.next {
		if equal(e.value, item) {
			s.unlink(i, prev, e)
			return true
		}
		prev = e
	}
	return false
}

// removeEntry unlinks exactly target, matched by identity.
func (s *HashSet[T]) removeEntry(target *entry[T]) bool {
	i := bucketIndex(target.value, len(s.buckets))

	var prev *entry[T]
	for e := s.buckets[i]; e != nil; e = e.next {
		if e == target {
			s.unlink(i, prev, e)
			return true
		}
		prev = e
	}
	return false
}

func (s *HashSet[T]) unlink(bucket int, prev, e *entry[T]) {
	if prev == nil {
		s.buckets[bucket] = e.next
	} else {
		prev.next = e.next
	}
	s.size--
	s.modCount++
}

func (s *HashSet[T]) Contains(item T) bool {
	i := bucketIndex(item, len(s.buckets))
	for e := s.buckets[i]; e != nil; e = e.next {
		if equal(e.value, item) {
			return true
		}
	}
	return false
}

func (s *HashSet[T]) Len() int {
	return s.size
}

func (s *HashSet[T]) IsEmpty() bool {
	return s.size == 0
}

// Clear removes all elements. The capacity is kept.
func (s *HashSet[T]) Clear() {
	clear(s.buckets)
	s.size = 0
	s.modCount++
}

// Cap returns the number of buckets.
func (s *HashSet[T]) Cap() int {
	return len(s.buckets)
}

func (s *HashSet[T]) LoadFactor() float64 {
	return s.loadFactor
}

// String formats the elements in iteration order, e.g. "[1 2 3]".
func (s *HashSet[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for item := range s.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&b, item)
	}
	b.WriteByte(']')
	return b.String()
}
