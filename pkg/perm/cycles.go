package perm

import (
	"fmt"
	"slices"
	"strings"
)

// Cycle is one orbit of a permutation, listed in traversal order.
type Cycle []int

// Cycles is a full cycle decomposition, fixed points included as 1-cycles.
type Cycles []Cycle

// CycleDecomposition splits a permutation into its disjoint cycles. Cycles
// are emitted in order of their smallest unvisited letter, and each cycle
// begins at the image of that letter.
func CycleDecomposition(p *Permutation) Cycles {
	visited := make(map[int]bool, p.Degree())
	var cycles Cycles
	for _, lt := range p.letters {
		start := p.b.Image(lt)
		if visited[start] {
			continue
		}
		var c Cycle
		for x := start; !visited[x]; x = p.b.Image(x) {
			visited[x] = true
			c = append(c, x)
		}
		cycles = append(cycles, c)
	}
	return cycles
}

// String renders the decomposition in cycle notation with fixed points
// suppressed, e.g. "(2 3 1)(5 4)". The identity renders as "1".
func (cs Cycles) String() string {
	var sb strings.Builder
	for _, c := range cs {
		if len(c) < 2 {
			continue
		}
		sb.WriteByte('(')
		for i, x := range c {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", x)
		}
		sb.WriteByte(')')
	}
	if sb.Len() == 0 {
		return "1"
	}
	return sb.String()
}

// CycleCount tallies how many cycles of each length a permutation has.
// Two permutations of the same degree are conjugate exactly when their
// counts agree, so CycleCount classifies permutations up to relabeling.
type CycleCount struct {
	counts map[int]int
	max    int
}

// NewCycleCount computes the cycle length tally of p, 1-cycles included.
func NewCycleCount(p *Permutation) *CycleCount {
	cc := &CycleCount{counts: make(map[int]int)}
	for _, c := range CycleDecomposition(p) {
		cc.counts[len(c)]++
		if len(c) > cc.max {
			cc.max = len(c)
		}
	}
	return cc
}

// Count returns the number of cycles of the given length.
func (cc *CycleCount) Count(length int) int { return cc.counts[length] }

// Profile returns the counts for lengths 2 through the longest cycle, in
// order. Fixed points are omitted, so the identity's profile is empty and
// the profile is insensitive to how many untouched letters a permutation
// carries.
func (cc *CycleCount) Profile() []int {
	if cc.max < 2 {
		return []int{}
	}
	out := make([]int, cc.max-1)
	for length, n := range cc.counts {
		if length >= 2 {
			out[length-2] = n
		}
	}
	return out
}

// Equal reports whether two tallies have identical profiles.
func (cc *CycleCount) Equal(o *CycleCount) bool {
	return slices.Equal(cc.Profile(), o.Profile())
}

// String renders the profile, e.g. "[0 1]" for a single 3-cycle.
func (cc *CycleCount) String() string {
	return fmt.Sprint(cc.Profile())
}

// Equivalent reports whether two permutations share a cycle structure,
// i.e. are conjugate after discounting fixed points.
func Equivalent(p, o *Permutation) bool {
	return NewCycleCount(p).Equal(NewCycleCount(o))
}
