package set

/*
Remarks:
--------

- A set state is the internal representation of a set at some point of its
  modification history. It is either flat (already materialized) or deferred:
  a pending operation on top of a parent state. Deferred states form a chain
  towards a flat ancestor, never a cycle.

- Flushing folds a deferred chain into a flat state and memoizes the result
  on the deferred state itself, so repeated flushes of the same instance are
  O(1) after the first. Memoization never changes the element set a state
  represents, only its internal representation.
*/

import (
	"iter"
	"sync/atomic"
)

// setState is the closed sum of representations a set can be in: flatState,
// or one of the deferred variants addState, removeState and mergeState.
type setState[T comparable] interface {
	// flush materializes the state into its canonical flat form,
	// deduplicated, and sorted when cfg asks for it and less is available.
	flush(cfg Config, less Less[T]) *flatState[T]
}

// --- Flat state ------------------------------------------------------------

// flatState owns a backing store directly and is its own canonical form.
type flatState[T comparable] struct {
	store ListSet[T]
}

func flat[T comparable](store ListSet[T]) *flatState[T] {
	return &flatState[T]{store: store}
}

func emptyFlat[T comparable]() *flatState[T] {
	return flat(WrapDistinct([]T{}))
}

// flush of a flat state returns the state itself, unchanged.
func (s *flatState[T]) flush(Config, Less[T]) *flatState[T] {
	return s
}

// --- Deferred states -------------------------------------------------------

// stateMemo is the atomically swappable cell a deferred state publishes its
// flat form to. Publishing is idempotent-overwrite: racing flushes compute
// equal stores, and the first published one wins.
type stateMemo[T comparable] struct {
	flat atomic.Pointer[flatState[T]]
}

func (m *stateMemo[T]) resolve(compute func() *flatState[T]) *flatState[T] {
	if f := m.flat.Load(); f != nil {
		return f
	}
	m.flat.CompareAndSwap(nil, compute())
	f := m.flat.Load()
	assertThat(f != nil, "deferred state failed to publish its flat form")
	return f
}

// addState defers adding items to a parent state.
type addState[T comparable] struct {
	stateMemo[T]
	parent setState[T]
	items  []T
}

func (s *addState[T]) flush(cfg Config, less Less[T]) *flatState[T] {
	return s.resolve(func() *flatState[T] {
		base := s.parent.flush(cfg, less)
		tracer().Debugf("flushing %d pending additions onto %d items", len(s.items), base.store.Len())
		source := concat(base.store.items, s.items)
		return flat(newListSeq(source, base.store.Len()+len(s.items), cfg.Sort(), less))
	})
}

// removeState defers removing items from a parent state. Removal membership
// uses element ==, mirroring the deduplication rule of the backing store.
type removeState[T comparable] struct {
	stateMemo[T]
	parent setState[T]
	items  []T
}

func (s *removeState[T]) flush(cfg Config, less Less[T]) *flatState[T] {
	return s.resolve(func() *flatState[T] {
		base := s.parent.flush(cfg, less)
		tracer().Debugf("flushing %d pending removals from %d items", len(s.items), base.store.Len())
		drop := make(map[T]struct{}, len(s.items))
		for _, x := range s.items {
			drop[x] = struct{}{}
		}
		kept := make([]T, 0, base.store.Len())
		for _, x := range base.store.items {
			if _, gone := drop[x]; !gone {
				kept = append(kept, x)
			}
		}
		// the parent's store is unique and ordered already; filtering
		// preserves both, so re-validation is redundant
		return flat(WrapDistinct(kept))
	})
}

// mergeState defers the union of a parent state with another state. The
// other state travels with its own configuration and ordering: it may be
// shared with a live set of a different sort policy, and its memo must only
// ever hold a flat form produced under that set's own policy.
type mergeState[T comparable] struct {
	stateMemo[T]
	parent    setState[T]
	other     setState[T]
	otherCfg  Config
	otherLess Less[T]
}

func (s *mergeState[T]) flush(cfg Config, less Less[T]) *flatState[T] {
	return s.resolve(func() *flatState[T] {
		base := s.parent.flush(cfg, less)
		other := s.other.flush(s.otherCfg, s.otherLess)
		tracer().Debugf("flushing merge of %d and %d items", base.store.Len(), other.store.Len())
		source := concat(base.store.items, other.store.items)
		return flat(newListSeq(source, base.store.Len()+other.store.Len(), cfg.Sort(), less))
	})
}

// concat yields the elements of a, then those of b.
func concat[T any](a, b []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range a {
			if !yield(x) {
				return
			}
		}
		for _, x := range b {
			if !yield(x) {
				return
			}
		}
	}
}
