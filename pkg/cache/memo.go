package cache

// MemoOptions configures a memoized function wrapper.
type MemoOptions[V any] struct {
	// Prefix namespaces the generated cache keys so that different functions
	// sharing one LRU instance cannot collide. Defaults to "memo".
	Prefix string

	// SkipStore, when non-nil, is consulted after each computation; results
	// for which it returns true are returned to the caller but not stored.
	// This is how a lookup-style function avoids caching "absent".
	SkipStore func(v V) bool
}

func (o *MemoOptions[V]) prefix() string {
	if o == nil || o.Prefix == "" {
		return "memo"
	}
	return o.Prefix
}

func (o *MemoOptions[V]) skip(v V) bool {
	return o != nil && o.SkipStore != nil && o.SkipStore(v)
}

// Memoized wraps fn so that repeated calls with the same argument return the
// cached result. The argument is normalized into a key by hashing its JSON
// form; callers memoizing over types with identity beyond their JSON form
// (such as permutations) should pass a canonical key type instead, e.g. the
// permutation's Key() string.
//
// A cache hit refreshes the entry's recency. On a miss the function runs,
// and its result is stored unless opts.SkipStore rejects it. Errors are
// never cached.
func Memoized[K any, V any](c *LRU, fn func(K) (V, error), opts *MemoOptions[V]) func(K) (V, error) {
	return func(arg K) (V, error) {
		key := Key(opts.prefix(), arg)
		if cached, err := c.Get(key); err == nil {
			return cached.(V), nil
		}
		v, err := fn(arg)
		if err != nil {
			return v, err
		}
		if !opts.skip(v) {
			c.Put(key, v)
		}
		return v, nil
	}
}

// Memoized2 is Memoized for two-argument functions. Both arguments are
// folded into the cache key.
func Memoized2[A any, B any, V any](c *LRU, fn func(A, B) (V, error), opts *MemoOptions[V]) func(A, B) (V, error) {
	return func(a A, b B) (V, error) {
		key := Key(opts.prefix(), a, b)
		if cached, err := c.Get(key); err == nil {
			return cached.(V), nil
		}
		v, err := fn(a, b)
		if err != nil {
			return v, err
		}
		if !opts.skip(v) {
			c.Put(key, v)
		}
		return v, nil
	}
}
