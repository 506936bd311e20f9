/*
Package seq provides stateless, lazy transforms over element sequences.

The transforms complement the collection types of this module: they carry no
shared state and yield their elements on demand, so chaining them does not
allocate intermediate collections.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq

import (
	"errors"
	"fmt"
	"iter"

	"github.com/npillmayer/icoll"
)

// ErrUneven signals pairwise combination of sequences of different lengths.
var ErrUneven = errors.New("seq: sequences have different lengths")

// Distinct yields the elements of src with duplicates dropped, keeping
// first-seen order.
func Distinct[T comparable](src iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for x := range src {
			if _, dup := seen[x]; dup {
				continue
			}
			seen[x] = struct{}{}
			if !yield(x) {
				return
			}
		}
	}
}

// Diff yields the elements of src not contained in removed, in src order.
func Diff[T comparable](src iter.Seq[T], removed ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		drop := make(map[T]struct{}, len(removed))
		for _, x := range removed {
			drop[x] = struct{}{}
		}
		for x := range src {
			if _, gone := drop[x]; gone {
				continue
			}
			if !yield(x) {
				return
			}
		}
	}
}

// Combine pairs up the elements of as and bs position by position. Slices of
// different lengths are a precondition violation, unless uneven is set, in
// which case the result is truncated to the shorter input.
func Combine[A, B comparable](as []A, bs []B, uneven bool) []icoll.Pair[A, B] {
	if len(as) != len(bs) && !uneven {
		panic(fmt.Errorf("%w: %d vs %d", ErrUneven, len(as), len(bs)))
	}
	n := min(len(as), len(bs))
	pairs := make([]icoll.Pair[A, B], n)
	for i := 0; i < n; i++ {
		pairs[i] = icoll.P(as[i], bs[i])
	}
	return pairs
}
