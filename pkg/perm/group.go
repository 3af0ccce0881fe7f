package perm

import (
	"fmt"
	"slices"
)

// Group is a set of permutations keyed by canonical form. It is a plain
// container; closure under composition is the caller's concern (see
// [Closure]).
type Group struct {
	elems map[string]*Permutation
}

// NewGroup builds a group containing the given permutations.
func NewGroup(ps ...*Permutation) *Group {
	g := &Group{elems: make(map[string]*Permutation, len(ps))}
	for _, p := range ps {
		g.Add(p)
	}
	return g
}

// Add inserts p and reports whether it was new.
func (g *Group) Add(p *Permutation) bool {
	k := p.Key()
	if _, ok := g.elems[k]; ok {
		return false
	}
	g.elems[k] = p
	return true
}

// Has reports membership up to [Permutation.Equal].
func (g *Group) Has(p *Permutation) bool {
	_, ok := g.elems[p.Key()]
	return ok
}

// Len returns the group order.
func (g *Group) Len() int { return len(g.elems) }

// Elements returns the members sorted by canonical key, so iteration order
// is stable across runs.
func (g *Group) Elements() []*Permutation {
	ks := make([]string, 0, len(g.elems))
	for k := range g.elems {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	out := make([]*Permutation, len(ks))
	for i, k := range ks {
		out[i] = g.elems[k]
	}
	return out
}

// ClassTally records how many group elements share one cycle profile.
type ClassTally struct {
	Profile []int
	Count   int
}

// Fingerprint tallies the members by cycle profile and returns the tallies
// sorted lexicographically by profile. Two groups acting on relabeled
// letters produce identical fingerprints, which makes the fingerprint the
// natural isomorphism-class proxy for tabulating closure results.
func (g *Group) Fingerprint() []ClassTally {
	byProfile := make(map[string]*ClassTally)
	for _, p := range g.elems {
		profile := NewCycleCount(p).Profile()
		k := fmt.Sprint(profile)
		if t, ok := byProfile[k]; ok {
			t.Count++
		} else {
			byProfile[k] = &ClassTally{Profile: profile, Count: 1}
		}
	}
	out := make([]ClassTally, 0, len(byProfile))
	for _, t := range byProfile {
		out = append(out, *t)
	}
	slices.SortFunc(out, func(a, b ClassTally) int {
		return slices.Compare(a.Profile, b.Profile)
	})
	return out
}
