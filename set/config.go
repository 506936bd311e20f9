package set

import (
	"fmt"
	"sync"
)

// Config carries the policy flags governing a set instance: which equality
// strategy comparisons use, whether materialization sorts the elements, and
// whether the collection hash is cached. Config is an immutable value type;
// two configurations are equal iff all three flags match.
type Config struct {
	deepEquals bool
	sortItems  bool
	cacheHash  bool
}

// NewConfig creates a configuration. All flags default to true.
//
// Use it like this:
//
//     cfg := set.NewConfig(set.WithSort(false))
//
func NewConfig(opts ...ConfigOption) Config {
	c := Config{deepEquals: true, sortItems: true, cacheHash: true}
	for _, option := range opts {
		c = option(c)
	}
	return c
}

// ConfigOption is a type to help initializing configurations at creation time.
type ConfigOption func(Config) Config

// WithDeepEquals selects between deep equality (true) and identity equality
// (false) for comparisons involving the configured set.
func WithDeepEquals(on bool) ConfigOption {
	return func(c Config) Config {
		c.deepEquals = on
		return c
	}
}

// WithSort controls whether materialization sorts the elements. Without it,
// iteration keeps first-seen order.
func WithSort(on bool) ConfigOption {
	return func(c Config) Config {
		c.sortItems = on
		return c
	}
}

// WithCacheHash controls whether a set instance pins its collection hash
// after the first computation.
func WithCacheHash(on bool) ConfigOption {
	return func(c Config) Config {
		c.cacheHash = on
		return c
	}
}

// With returns a copy of c with the given overrides applied. Called without
// arguments it returns c unchanged.
func (c Config) With(opts ...ConfigOption) Config {
	d := c
	for _, option := range opts {
		d = option(d)
	}
	return d
}

// DeepEquals reports whether comparisons use deep equality.
func (c Config) DeepEquals() bool { return c.deepEquals }

// Sort reports whether materialization sorts the elements.
func (c Config) Sort() bool { return c.sortItems }

// CacheHash reports whether the collection hash is cached.
func (c Config) CacheHash() bool { return c.cacheHash }

// Hash digests the three flags, FNV-style. Configurations differing in any
// single flag digest differently.
func (c Config) Hash() uint32 {
	h := uint32(2166136261)
	for _, flag := range [...]bool{c.deepEquals, c.sortItems, c.cacheHash} {
		b := uint32(0)
		if flag {
			b = 1
		}
		h = (h ^ b) * 16777619
	}
	return h
}

func (c Config) String() string {
	return fmt.Sprintf("Config(deepEquals=%t, sort=%t, cacheHash=%t)",
		c.deepEquals, c.sortItems, c.cacheHash)
}

// --- Process-wide default --------------------------------------------------

// configRegistry owns the process-wide default configuration. It is an
// object of its own, rather than bare package-level state, so that package
// tests can reset it between runs.
type configRegistry struct {
	mu      sync.Mutex
	current Config
	locked  bool
}

var defaults = &configRegistry{current: NewConfig()}

func (r *configRegistry) get() Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

func (r *configRegistry) set(c Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.locked {
		return fmt.Errorf("%w: cannot replace %s", ErrConfigLocked, c)
	}
	tracer().Debugf("default configuration now %s", c)
	r.current = c
	return nil
}

// lock is monotonic: false→true only.
func (r *configRegistry) lock() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked = true
}

func (r *configRegistry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = NewConfig()
	r.locked = false
}

// DefaultConfig returns the configuration used when a set is constructed
// without an explicit one.
func DefaultConfig() Config {
	return defaults.get()
}

// SetDefaultConfig replaces the process-wide default configuration. It fails
// with ErrConfigLocked once LockDefaultConfig has been called; sets
// constructed earlier keep the configuration they were built with.
func SetDefaultConfig(c Config) error {
	return defaults.set(c)
}

// LockDefaultConfig freezes the process-wide default configuration.
// Locking is irreversible; locking twice is not an error.
func LockDefaultConfig() {
	defaults.lock()
}
