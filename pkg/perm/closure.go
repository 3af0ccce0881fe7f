package perm

import (
	"time"

	"github.com/matzehuels/traversalgroup/pkg/cache"
	"github.com/matzehuels/traversalgroup/pkg/observability"
)

// Closure computes the group generated by the given permutations, which
// must all be defined over the same letters. The saturation is round
// based: each round composes the previous round's discoveries with every
// generator, so the number of rounds is bounded by the group's diameter
// with respect to the generating set.
//
// Returns [ErrInvalidGenerators] when the generator list is empty or the
// letter sets differ.
func Closure(gens []*Permutation) (*Group, error) {
	if len(gens) == 0 {
		return nil, ErrInvalidGenerators
	}
	for _, g := range gens[1:] {
		if !SameLetters(gens[0], g) {
			return nil, ErrInvalidGenerators
		}
	}

	hooks := observability.Closure()
	started := time.Now()

	group := NewGroup(gens...)
	// Seed the frontier with the distinct generators so duplicates do not
	// inflate the first round.
	frontier := group.Elements()
	for round := 1; len(frontier) > 0; round++ {
		var next []*Permutation
		for _, f := range frontier {
			for _, gen := range gens {
				c := gen.Compose(f)
				if group.Add(c) {
					next = append(next, c)
				}
			}
		}
		hooks.OnRound(round, len(next))
		frontier = next
	}

	hooks.OnComplete(group.Len(), time.Since(started))
	return group, nil
}

// CyclicGroup returns the group generated by a single permutation: its
// powers up to and including the identity.
func CyclicGroup(gen *Permutation) *Group {
	group := NewGroup(gen)
	for p := gen.Compose(gen); group.Add(p); p = p.Compose(gen) {
	}
	return group
}

// MemoizedCyclicGroup wraps [CyclicGroup] with a bounded cache keyed on
// the generator's canonical form. Traversal experiments revisit the same
// generators constantly, so the cache turns repeated closures into map
// lookups while keeping memory bounded by the cache's capacity.
func MemoizedCyclicGroup(c *cache.LRU) func(*Permutation) *Group {
	return func(gen *Permutation) *Group {
		key := cache.Key("cyclic", gen.Key())
		if v, err := c.Get(key); err == nil {
			return v.(*Group)
		}
		g := CyclicGroup(gen)
		c.Put(key, g)
		return g
	}
}
