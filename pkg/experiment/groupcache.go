package experiment

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/traversalgroup/pkg/cache"
	"github.com/matzehuels/traversalgroup/pkg/codec"
	"github.com/matzehuels/traversalgroup/pkg/perm"
)

// GroupCache memoizes group closures across runs through a byte-level
// cache store. Closure dominates the experiment's running time, and the
// same generator sets recur across graphs, so a shared store (file or
// Redis) lets long campaigns skip most of the work.
type GroupCache struct {
	store cache.Store
	ttl   time.Duration
}

// NewGroupCache wraps a byte store. A zero ttl stores entries without
// expiration.
func NewGroupCache(store cache.Store, ttl time.Duration) *GroupCache {
	return &GroupCache{store: store, ttl: ttl}
}

// Closure returns the group generated by gens, which must all be defined
// over the letters 1..n. Cache faults and store errors fall back to
// computing the closure directly; only generator validation errors are
// returned.
func (gc *GroupCache) Closure(ctx context.Context, gens []*perm.Permutation, n int) (*perm.Group, error) {
	key, err := closureKey(gens)
	if err != nil {
		// Generators outside the codec's domain are still closable.
		return perm.Closure(gens)
	}

	if data, hit, err := gc.store.Get(ctx, key); err == nil && hit {
		if group, err := codec.DecodeGroup(string(data), n); err == nil {
			return group, nil
		}
		log.Debug("discarding undecodable cached closure", "key", key)
	}

	group, err := perm.Closure(gens)
	if err != nil {
		return nil, err
	}
	encoded, err := codec.EncodeGroup(group)
	if err == nil {
		if err := gc.store.Set(ctx, key, []byte(encoded), gc.ttl); err != nil {
			log.Debug("failed to cache closure", "key", key, "err", err)
		}
	}
	return group, nil
}

// closureKey hashes the sorted generator ranks, so generator order does
// not fragment the cache.
func closureKey(gens []*perm.Permutation) (string, error) {
	ranks := make([]string, 0, len(gens))
	for _, g := range gens {
		r, err := codec.EncodePermutation(g)
		if err != nil {
			return "", err
		}
		ranks = append(ranks, r.String())
	}
	slices.SortFunc(ranks, func(a, b string) int {
		// Numeric order: shorter decimal strings are smaller.
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return strings.Compare(a, b)
	})
	return cache.Key("closure", ranks), nil
}
