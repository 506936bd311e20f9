package set

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Less is an ordering predicate for elements.
type Less[T any] func(a, b T) bool

// ListSet is the materialized backing store of a set: a frozen slice of
// unique elements with list-like index access. It is the canonical form any
// set state flushes to. A ListSet is never modified after construction; set
// states share it freely.
type ListSet[T comparable] struct {
	items []T
	index map[T]int // element → position in items
}

// NewListSet builds a store from source, eliminating duplicates while
// keeping first-seen order. With sorted=true and a non-nil less the result
// iterates in sort order instead. A nil source is a precondition violation.
func NewListSet[T comparable](source []T, sorted bool, less Less[T]) ListSet[T] {
	if source == nil {
		panic(fmt.Errorf("%w: NewListSet(nil)", ErrNilSource))
	}
	return newListSeq(slices.Values(source), len(source), sorted, less)
}

// newListSeq is the construction work-horse, shared by the public
// constructors and by state flushing.
func newListSeq[T comparable](source iter.Seq[T], sizeHint int, sorted bool, less Less[T]) ListSet[T] {
	index := make(map[T]int, sizeHint)
	items := make([]T, 0, sizeHint)
	for x := range source {
		if _, dup := index[x]; dup {
			continue
		}
		index[x] = len(items)
		items = append(items, x)
	}
	if sorted && less != nil {
		slices.SortStableFunc(items, func(a, b T) int {
			switch {
			case less(a, b):
				return -1
			case less(b, a):
				return 1
			}
			return 0
		})
		for i, x := range items {
			index[x] = i
		}
	}
	tracer().Debugf("materialized list-set of %d unique items", len(items))
	return ListSet[T]{items: items, index: index}
}

// WrapDistinct wraps a slice the caller guarantees to be free of duplicates
// and already in the desired order. No copy, no validation; this is the
// unsafe constructor used where uniqueness has been established before.
func WrapDistinct[T comparable](items []T) ListSet[T] {
	index := make(map[T]int, len(items))
	for i, x := range items {
		index[x] = i
	}
	return ListSet[T]{items: items, index: index}
}

// Len returns the number of unique elements.
func (ls ListSet[T]) Len() int {
	return len(ls.items)
}

// Empty checks if the store has no elements.
func (ls ListSet[T]) Empty() bool {
	return len(ls.items) == 0
}

// Contains checks membership with Go's ==.
func (ls ListSet[T]) Contains(item T) bool {
	_, ok := ls.index[item]
	return ok
}

// ContainsEq checks membership under an explicit equality strategy. The
// index answers the ==-equal case; misses fall back to a scan, which can
// still succeed under a deep strategy.
func (ls ListSet[T]) ContainsEq(item T, eq Equality[T]) bool {
	if _, ok := ls.index[item]; ok {
		return true
	}
	return scanContains(ls.items, item, eq)
}

// At returns the element at position i in iteration order.
func (ls ListSet[T]) At(i int) T {
	if i < 0 || i >= len(ls.items) {
		panic(fmt.Errorf("%w: %d with length %d", ErrOutOfRange, i, len(ls.items)))
	}
	return ls.items[i]
}

// First returns the element at position 0.
func (ls ListSet[T]) First() T {
	if len(ls.items) == 0 {
		panic(fmt.Errorf("%w: no first element", ErrEmpty))
	}
	return ls.items[0]
}

// Last returns the element at the final position.
func (ls ListSet[T]) Last() T {
	if len(ls.items) == 0 {
		panic(fmt.Errorf("%w: no last element", ErrEmpty))
	}
	return ls.items[len(ls.items)-1]
}

// Single returns the sole element of the store.
func (ls ListSet[T]) Single() T {
	switch len(ls.items) {
	case 0:
		panic(fmt.Errorf("%w: no single element", ErrEmpty))
	case 1:
		return ls.items[0]
	}
	panic(fmt.Errorf("%w: %d elements where a single one is expected", ErrTooMany, len(ls.items)))
}

// All iterates the store in its fixed order.
func (ls ListSet[T]) All() iter.Seq[T] {
	return slices.Values(ls.items)
}

// Items returns a copy of the elements in iteration order.
func (ls ListSet[T]) Items() []T {
	return slices.Clone(ls.items)
}

func (ls ListSet[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('{')
	for i, x := range ls.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", x))
	}
	b.WriteByte('}')
	return b.String()
}
