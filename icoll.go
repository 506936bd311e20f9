/*
Package icoll provides immutable, value-semantic collections with structural
sharing.

Collections in this module have copy-on-write behaviour: each “modification”
(adding, removing, merging) creates a new collection value, leaving the
original unmodified. Under the hood, modifications are recorded as pending
operations and materialized lazily, so that most of the memory is shared
between a collection and its modified incarnations, transparently to clients.

The core lives in package set; packages maybe, result and seq carry the
supporting value types and sequence utilities.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package icoll

// Pair couples two values. It is the element type produced by pairwise
// combination of sequences (see package seq).
type Pair[A, B comparable] struct {
	Left  A
	Right B
}

// P is a shorthand constructor for a Pair.
func P[A, B comparable](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Matches reports whether both halves of two pairs are equal.
func (p Pair[A, B]) Matches(other Pair[A, B]) bool {
	return p.Left == other.Left && p.Right == other.Right
}

// Decompose splits a pair into its halves.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}
