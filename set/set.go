package set

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/npillmayer/icoll/maybe"
	"github.com/npillmayer/icoll/result"
)

// Set is an immutable set of elements. “Modifying” operations return a new
// Set and leave the receiver untouched; pending modifications are recorded
// as deferred states and materialized lazily on the first read, so chains of
// modifications amortize to a single materialization pass.
//
// An empty instance is usable as an empty set, i.e. this is legal:
//
//	s := set.Set[int]{}.Add(1, 2)
//
// picking up the process-wide default configuration on first use.
type Set[T comparable] struct {
	state  setState[T]
	config Config
	less   Less[T]
	hash   *hashMemo
}

// hashMemo pins the collection hash for the lifetime of a set instance and
// is shared by all value copies of that instance. Zero means "not yet
// computed"; computed digests are remapped away from zero.
type hashMemo struct {
	v atomic.Uint64
}

// Option is a type to help initializing sets at creation time.
type Option[T comparable] struct {
	config func(Set[T]) Set[T]
}

// WithConfig equips a new set with cfg instead of the process-wide default.
func WithConfig[T comparable](cfg Config) Option[T] {
	return Option[T]{config: func(s Set[T]) Set[T] {
		s.config = cfg
		return s
	}}
}

// WithLess equips a new set with an element ordering, honored whenever the
// configuration asks for sorted materialization.
func WithLess[T comparable](less Less[T]) Option[T] {
	return Option[T]{config: func(s Set[T]) Set[T] {
		s.less = less
		return s
	}}
}

// --- Construction ----------------------------------------------------------

// From builds a set from the elements of source, using the process-wide
// default configuration unless overridden by options. A nil source is a
// precondition violation.
//
// Use it like this:
//
//	s := set.From([]string{"b", "a", "b"}, set.WithConfig[string](set.NewConfig(set.WithSort(false))))
//
func From[T comparable](source []T, opts ...Option[T]) Set[T] {
	if source == nil {
		panic(fmt.Errorf("%w: From(nil)", ErrNilSource))
	}
	s := newSet(opts)
	s.state = flat(newListSeq(slices.Values(source), len(source), s.config.Sort(), s.less))
	return s
}

// FromSeq builds a set from the elements of a sequence. A nil sequence is a
// precondition violation.
func FromSeq[T comparable](source iter.Seq[T], opts ...Option[T]) Set[T] {
	if source == nil {
		panic(fmt.Errorf("%w: FromSeq(nil)", ErrNilSource))
	}
	s := newSet(opts)
	s.state = flat(newListSeq(source, 0, s.config.Sort(), s.less))
	return s
}

// FromOrdered is From for naturally ordered element types, wiring the
// natural ordering so sorted materialization needs no explicit WithLess.
func FromOrdered[T cmp.Ordered](source []T, opts ...Option[T]) Set[T] {
	opts = append([]Option[T]{WithLess[T](cmp.Less[T])}, opts...)
	return From(source, opts...)
}

// FromDistinct wraps a slice the caller guarantees to be free of duplicates
// and already in the desired order, skipping the deduplication pass. A nil
// slice is a precondition violation.
func FromDistinct[T comparable](items []T, opts ...Option[T]) Set[T] {
	if items == nil {
		panic(fmt.Errorf("%w: FromDistinct(nil)", ErrNilSource))
	}
	s := newSet(opts)
	s.state = flat(WrapDistinct(items))
	return s
}

func newSet[T comparable](opts []Option[T]) Set[T] {
	s := Set[T]{config: DefaultConfig(), hash: &hashMemo{}}
	for _, option := range opts {
		s = option.config(s)
	}
	return s
}

// ensure upgrades a zero-value Set into a configured empty one.
func (s Set[T]) ensure() Set[T] {
	if s.state == nil {
		s.state = emptyFlat[T]()
		s.config = DefaultConfig()
		s.hash = &hashMemo{}
	}
	return s
}

// --- Modification ----------------------------------------------------------

// Add returns a set additionally containing items. The addition is deferred
// until the first read of the returned set.
func (s Set[T]) Add(items ...T) Set[T] {
	s = s.ensure()
	s.state = &addState[T]{parent: s.state, items: slices.Clone(items)}
	s.hash = &hashMemo{}
	return s
}

// Remove returns a set without items. The removal is deferred until the
// first read of the returned set.
func (s Set[T]) Remove(items ...T) Set[T] {
	s = s.ensure()
	s.state = &removeState[T]{parent: s.state, items: slices.Clone(items)}
	s.hash = &hashMemo{}
	return s
}

// Merge returns the union of s and other, governed by the configuration of
// s. The union is deferred until the first read of the returned set.
func (s Set[T]) Merge(other Set[T]) Set[T] {
	s = s.ensure()
	other = other.ensure()
	s.state = &mergeState[T]{parent: s.state, other: other.state, otherCfg: other.config, otherLess: other.less}
	s.hash = &hashMemo{}
	return s
}

// --- Reading ---------------------------------------------------------------

// flushed forces the held state into its flat form. The flat form is cached
// on the state itself, so only the first read after a modification pays.
func (s Set[T]) flushed() *flatState[T] {
	if s.state == nil {
		return emptyFlat[T]()
	}
	return s.state.flush(s.config, s.less)
}

// Len returns the number of elements.
func (s Set[T]) Len() int {
	return s.flushed().store.Len()
}

// IsEmpty checks if the set has no elements.
func (s Set[T]) IsEmpty() bool {
	return s.flushed().store.Empty()
}

// Contains reports membership under the configured equality strategy.
func (s Set[T]) Contains(item T) bool {
	s = s.ensure()
	return s.flushed().store.ContainsEq(item, equalityFor[T](s.config))
}

// At returns the element at position i in iteration order.
func (s Set[T]) At(i int) T {
	return s.flushed().store.At(i)
}

// First returns the first element in iteration order.
func (s Set[T]) First() T {
	return s.flushed().store.First()
}

// Last returns the last element in iteration order.
func (s Set[T]) Last() T {
	return s.flushed().store.Last()
}

// Single returns the sole element of the set.
func (s Set[T]) Single() T {
	return s.flushed().store.Single()
}

// FirstMaybe returns the first element, or Nothing for an empty set.
func (s Set[T]) FirstMaybe() maybe.Maybe[T] {
	store := s.flushed().store
	if store.Empty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(store.First())
}

// LastMaybe returns the last element, or Nothing for an empty set.
func (s Set[T]) LastMaybe() maybe.Maybe[T] {
	store := s.flushed().store
	if store.Empty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(store.Last())
}

// TrySingle returns the sole element of the set as a result, erring where
// Single would panic.
func (s Set[T]) TrySingle() result.Result[T] {
	store := s.flushed().store
	switch store.Len() {
	case 0:
		return result.Err[T](fmt.Errorf("%w: no single element", ErrEmpty))
	case 1:
		return result.Ok(store.First())
	}
	return result.Err[T](fmt.Errorf("%w: %d elements where a single one is expected", ErrTooMany, store.Len()))
}

// TryAt returns the element at position i as a result, erring where At
// would panic.
func (s Set[T]) TryAt(i int) result.Result[T] {
	store := s.flushed().store
	if i < 0 || i >= store.Len() {
		return result.Err[T](fmt.Errorf("%w: %d with length %d", ErrOutOfRange, i, store.Len()))
	}
	return result.Ok(store.At(i))
}

// All iterates the set in its materialized order: sorted when the
// configuration asks for it and an ordering is known, first-seen otherwise.
func (s Set[T]) All() iter.Seq[T] {
	return s.flushed().store.All()
}

// Items returns a copy of the elements in iteration order.
func (s Set[T]) Items() []T {
	return s.flushed().store.Items()
}

// --- Comparison ------------------------------------------------------------

// Equals compares two sets as unordered collections of unique elements.
// Deep-equality semantics govern unless both configurations select identity
// mode; use Same for an explicitly identity-based comparison.
func (s Set[T]) Equals(other Set[T]) bool {
	s, other = s.ensure(), other.ensure()
	if s.state == other.state {
		return true
	}
	eq := Equality[T](DeepEquality[T]())
	if !s.config.DeepEquals() && !other.config.DeepEquals() {
		eq = IdentityEquality[T]()
	}
	return EqualItems(s.flushed().store.items, other.flushed().store.items, eq, false)
}

// Same compares two sets under identity equality, regardless of their
// configurations. Sets sharing the same internal state are trivially the
// same.
func (s Set[T]) Same(other Set[T]) bool {
	s, other = s.ensure(), other.ensure()
	if s.state == other.state {
		return true
	}
	return EqualItems(s.flushed().store.items, other.flushed().store.items, IdentityEquality[T](), false)
}

// EqualItems compares the set against an arbitrary element slice under the
// configured strategy, positionally when ordered is set.
func (s Set[T]) EqualItems(items []T, ordered bool) bool {
	s = s.ensure()
	return EqualItems(s.flushed().store.items, items, equalityFor[T](s.config), ordered)
}

// Hash returns the collection hash under the configured strategy. Equal sets
// hash equal regardless of iteration order. With cacheHash enabled the first
// computed digest is pinned for the lifetime of the instance — sound, since
// the element set of an instance can never change.
func (s Set[T]) Hash() uint64 {
	s = s.ensure()
	if s.config.CacheHash() {
		if h := s.hash.v.Load(); h != 0 {
			return h
		}
	}
	h := hashItems(s.flushed().store.items, equalityFor[T](s.config))
	if h == 0 {
		h = 1
	}
	if s.config.CacheHash() {
		s.hash.v.CompareAndSwap(0, h)
		return s.hash.v.Load()
	}
	return h
}

// --- Configuration ---------------------------------------------------------

// Config returns the configuration governing this set.
func (s Set[T]) Config() Config {
	s = s.ensure()
	return s.config
}

// WithConfig returns a set holding the same elements governed by cfg. The
// elements are re-materialized, since a flat form produced under the old
// configuration need not satisfy the new one.
func (s Set[T]) WithConfig(cfg Config) Set[T] {
	s = s.ensure()
	items := s.flushed().store.items
	return Set[T]{
		state:  flat(newListSeq(slices.Values(items), len(items), cfg.Sort(), s.less)),
		config: cfg,
		less:   s.less,
		hash:   &hashMemo{},
	}
}

func (s Set[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('{')
	for i, x := range s.flushed().store.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", x))
	}
	b.WriteByte('}')
	return b.String()
}
