package perm

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// arena owns the two maps a bijection and its inverse share. Exposing the
// two directions as lightweight views over one arena gives
// b.Inverse().Inverse() identity with b without a reference cycle between
// two objects.
type arena struct {
	fwd map[int]int
	inv map[int]int
}

// Bijection is a finite invertible mapping stored compactly: pairs (k, k)
// are never kept, so every element outside the stored domain maps to
// itself. The zero value is not usable; construct with [NewBijection].
type Bijection struct {
	a *arena
	// flipped selects which of the arena's maps is "forward".
	flipped bool
}

// NewBijection builds a bijection from an explicit mapping, copying only the
// non-identity pairs. The input map is not retained.
//
// If m maps two keys to one value the later key (in map iteration order)
// wins in the inverse; WellFormed on a permutation built from such a map
// will report the defect.
func NewBijection(m map[int]int) *Bijection {
	a := &arena{
		fwd: make(map[int]int, len(m)),
		inv: make(map[int]int, len(m)),
	}
	for k, v := range m {
		if k != v {
			a.fwd[k] = v
			a.inv[v] = k
		}
	}
	return &Bijection{a: a}
}

func (b *Bijection) maps() (fwd, inv map[int]int) {
	if b.flipped {
		return b.a.inv, b.a.fwd
	}
	return b.a.fwd, b.a.inv
}

// Inverse returns the inverse bijection as a view over the same underlying
// maps. Inverting twice yields a bijection equal to the original.
func (b *Bijection) Inverse() *Bijection {
	return &Bijection{a: b.a, flipped: !b.flipped}
}

// Image returns the image of x. Elements with no stored pair map to
// themselves.
func (b *Bijection) Image(x int) int {
	fwd, _ := b.maps()
	if v, ok := fwd[x]; ok {
		return v
	}
	return x
}

// Moves reports whether the bijection maps x to something other than x.
func (b *Bijection) Moves(x int) bool {
	fwd, _ := b.maps()
	_, ok := fwd[x]
	return ok
}

// Len returns the number of non-identity pairs.
func (b *Bijection) Len() int {
	fwd, _ := b.maps()
	return len(fwd)
}

// Domain returns the elements mapped non-trivially, in ascending order.
func (b *Bijection) Domain() []int {
	fwd, _ := b.maps()
	return sortedKeys(fwd)
}

// Range returns the non-trivial images, in ascending order.
func (b *Bijection) Range() []int {
	_, inv := b.maps()
	return sortedKeys(inv)
}

// Pairs returns a copy of the non-identity pairs.
func (b *Bijection) Pairs() map[int]int {
	fwd, _ := b.maps()
	return maps.Clone(fwd)
}

// Compose returns the mapping x -> b(o(x)) for every x in o's stored
// domain. The result is a fresh mapping; neither operand is modified.
//
// Note the iteration is over o's non-identity pairs only. Composing full
// permutations should go through [Permutation.Compose], which ranges over
// the whole letter set.
func (b *Bijection) Compose(o *Bijection) *Bijection {
	ofwd, _ := o.maps()
	m := make(map[int]int, len(ofwd))
	for x := range ofwd {
		m[x] = b.Image(o.Image(x))
	}
	return NewBijection(m)
}

// Equal reports whether two bijections agree on every element either maps
// non-trivially. Fixed points are excluded, so bijections over different
// ambient sets can be equal.
func (b *Bijection) Equal(o *Bijection) bool {
	bf, _ := b.maps()
	of, _ := o.maps()
	return maps.Equal(bf, of)
}

// Key returns a canonical string over the non-identity pairs, usable as a
// map key wherever permutation-aware equality is needed (group membership,
// memoization).
func (b *Bijection) Key() string {
	fwd, _ := b.maps()
	ks := sortedKeys(fwd)
	var sb strings.Builder
	for i, k := range ks {
		if i > 0 {
			sb.WriteByte(';')
		}
		fmt.Fprintf(&sb, "%d>%d", k, fwd[k])
	}
	return sb.String()
}

// String renders the stored pairs as "(1->2, 2->1)".
func (b *Bijection) String() string {
	fwd, _ := b.maps()
	ks := sortedKeys(fwd)
	parts := make([]string, len(ks))
	for i, k := range ks {
		parts[i] = fmt.Sprintf("%d->%d", k, fwd[k])
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func sortedKeys(m map[int]int) []int {
	ks := make([]int, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return ks
}
