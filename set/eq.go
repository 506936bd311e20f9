package set

import (
	"fmt"
	"hash/maphash"
	"reflect"
)

// Equality is a strategy for comparing and hashing elements. Which strategy
// governs a comparison is selected by the configurations of the sets
// involved, not by inspecting element types at comparison time.
type Equality[T comparable] interface {
	Eq(a, b T) bool
	HashItem(x T) uint64
}

// DeepEquality returns the strategy treating two elements as equal when they
// are identical or structurally equal. For value types Go's == already is
// structural; the reflective fallback matters for pointer-typed elements,
// where distinct but structurally equal pointees compare equal.
func DeepEquality[T comparable]() Equality[T] {
	return deepEquality[T]{}
}

// IdentityEquality returns the strategy comparing elements with Go's ==,
// which for pointer-typed elements means reference identity. Use it when
// element equality is expensive, or when “the exact same object” is meant
// rather than “an equal object”.
func IdentityEquality[T comparable]() Equality[T] {
	return identityEquality[T]{}
}

// equalityFor maps a configuration to its element strategy.
func equalityFor[T comparable](cfg Config) Equality[T] {
	if cfg.DeepEquals() {
		return DeepEquality[T]()
	}
	return IdentityEquality[T]()
}

var hashSeed = maphash.MakeSeed()

type deepEquality[T comparable] struct{}

func (deepEquality[T]) Eq(a, b T) bool {
	if a == b {
		return true
	}
	return reflect.DeepEqual(a, b)
}

// HashItem digests the element's rendering, so that deep-equal pointees of
// struct type hash alike. Pointers to non-struct values render as addresses;
// for those the digest is only identity-consistent.
func (deepEquality[T]) HashItem(x T) uint64 {
	return maphash.String(hashSeed, fmt.Sprint(x))
}

type identityEquality[T comparable] struct{}

func (identityEquality[T]) Eq(a, b T) bool {
	return a == b
}

func (identityEquality[T]) HashItem(x T) uint64 {
	return maphash.Comparable(hashSeed, x)
}

// --- Collection comparison -------------------------------------------------

// EqualItems compares two element slices under strategy eq. Two nil slices
// are equal to each other and unequal to any present slice. With
// ordered=false the slices are compared as sets of unique elements, i.e.
// mutual containment after a length fast-reject.
func EqualItems[T comparable](a, b []T, eq Equality[T], ordered bool) bool {
	if a == nil || b == nil {
		return (a == nil) == (b == nil)
	}
	if len(a) != len(b) {
		return false
	}
	if len(a) > 0 && &a[0] == &b[0] {
		return true // identical backing, nothing to compare
	}
	if ordered {
		for i := range a {
			if !eq.Eq(a[i], b[i]) {
				return false
			}
		}
		return true
	}
	return containsAll(b, a, eq) && containsAll(a, b, eq)
}

// containsAll checks that every needle occurs in haystack under eq. A map
// lookup handles the ==-equal case; only misses fall back to a scan, which
// can still succeed under a deep strategy.
func containsAll[T comparable](haystack, needles []T, eq Equality[T]) bool {
	index := make(map[T]struct{}, len(haystack))
	for _, x := range haystack {
		index[x] = struct{}{}
	}
	for _, n := range needles {
		if _, ok := index[n]; ok {
			continue
		}
		if !scanContains(haystack, n, eq) {
			return false
		}
	}
	return true
}

func scanContains[T comparable](items []T, item T, eq Equality[T]) bool {
	for _, x := range items {
		if eq.Eq(x, item) {
			return true
		}
	}
	return false
}

// hashItems folds the item digests order-insensitively, so that equal sets
// hash equal regardless of iteration order.
func hashItems[T comparable](items []T, eq Equality[T]) uint64 {
	var sum uint64
	for _, x := range items {
		sum += mix64(eq.HashItem(x))
	}
	return mix64(sum ^ uint64(len(items)))
}

// mix64 is the SplitMix64 finalizer.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
