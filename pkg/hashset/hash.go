package hashset

import (
	"hash/maphash"
	"math"
	"reflect"
	"unicode/utf16"

	"golang.org/x/exp/constraints"
)

// Hasher is implemented by elements that provide their own hash code.
// Elements that are equal must return the same hash code.
type Hasher interface {
	HashCode() int32
}

// Equaler is implemented by elements that define their own equality.
type Equaler[T any] interface {
	Equal(other T) bool
}

var seed = maphash.MakeSeed()

// hashOf derives the hash code of item. Nil values hash to 0. Built-in
// scalars and strings hash like their JVM boxed counterparts so bucket
// placement of small integers is predictable.
func hashOf[T comparable](item T) int32 {
	switch v := any(item).(type) {
	case int:
		return fold(v)
	case int64:
		return fold(v)
	case uint:
		return fold(v)
	case uint64:
		return fold(v)
	case uintptr:
		return fold(v)
	case int32:
		return v
	case uint32:
		return int32(v)
	case int16:
		return int32(v)
	case uint16:
		return int32(v)
	case int8:
		return int32(v)
	case uint8:
		return int32(v)
	case bool:
		if v {
			return 1231
		}
		return 1237
	case float64:
		return fold(float64Bits(v))
	case float32:
		return int32(float32Bits(v))
	case string:
		return stringHash(v)
	}

	if isNil(item) {
		return 0
	}
	if h, ok := any(item).(Hasher); ok {
		return h.HashCode()
	}
	return fold(maphash.Comparable(seed, item))
}

// fold xors the high and low halves of a 64-bit value.
func fold[I constraints.Integer](v I) int32 {
	u := uint64(v)
	return int32(u ^ u>>32)
}

// float64Bits canonicalises NaN and -0 so that values equal under == share
// a hash code.
func float64Bits(f float64) uint64 {
	if math.IsNaN(f) {
		return 0x7ff8000000000000
	}
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}

func float32Bits(f float32) uint32 {
	if math.IsNaN(float64(f)) {
		return 0x7fc00000
	}
	if f == 0 {
		return 0
	}
	return math.Float32bits(f)
}

// stringHash is s[0]*31^(n-1) + ... + s[n-1] over UTF-16 code units.
func stringHash(s string) int32 {
	var h int32
	for _, r := range s {
		if r >= 0x10000 {
			r1, r2 := utf16.EncodeRune(r)
			h = 31*h + r1
			h = 31*h + r2
			continue
		}
		h = 31*h + r
	}
	return h
}

func equal[T comparable](a, b T) bool {
	if a == b {
		return true
	}
	eq, ok := any(a).(Equaler[T])
	if !ok {
		return false
	}
	if isNil(a) || isNil(b) {
		return false
	}
	return eq.Equal(b)
}

func isNil[T comparable](item T) bool {
	v := any(item)
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
