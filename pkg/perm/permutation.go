package perm

import (
	"fmt"
	"slices"
	"strings"
)

// Permutation is a bijection over an explicit, ordered set of letters.
// Unlike a bare [Bijection], a permutation remembers its full domain, so
// two permutations moving the same elements over different letter sets are
// distinguishable by [Permutation.Degree] and [Permutation.Letters] while
// still comparing equal under [Permutation.Equal].
//
// Permutations are immutable after construction.
type Permutation struct {
	letters []int
	b       *Bijection
}

// NewPermutation builds a permutation from an explicit mapping. The letter
// set is the key set of m, fixed points included.
//
// The mapping is not validated: m may fail to be a true permutation of its
// keys. Use [Permutation.WellFormed] where the guarantee matters.
func NewPermutation(m map[int]int) *Permutation {
	letters := make([]int, 0, len(m))
	for k := range m {
		letters = append(letters, k)
	}
	slices.Sort(letters)
	return &Permutation{letters: letters, b: NewBijection(m)}
}

// FromSequence reads seq as the images of 1..n in order: seq[i] is the
// image of letter i+1.
func FromSequence(seq []int) *Permutation {
	m := make(map[int]int, len(seq))
	for i, v := range seq {
		m[i+1] = v
	}
	return NewPermutation(m)
}

// FromArrangement builds the permutation that carries the reference order
// into the target order, as positions: letter i+1 (the i-th slot of the
// reference) maps to the 1-based position its value occupies in the target.
// Repeated values are matched by order of appearance.
//
// Returns [ErrBadArrangement] if target is not a rearrangement of reference.
func FromArrangement(reference, target []int) (*Permutation, error) {
	if len(reference) != len(target) {
		return nil, ErrBadArrangement
	}
	positions := make(map[int][]int, len(target))
	for i, v := range target {
		positions[v] = append(positions[v], i+1)
	}
	m := make(map[int]int, len(reference))
	for i, v := range reference {
		ps := positions[v]
		if len(ps) == 0 {
			return nil, ErrBadArrangement
		}
		m[i+1] = ps[0]
		positions[v] = ps[1:]
	}
	return NewPermutation(m), nil
}

// Identity returns the identity permutation over 1..n.
func Identity(n int) *Permutation {
	m := make(map[int]int, n)
	for i := 1; i <= n; i++ {
		m[i] = i
	}
	return NewPermutation(m)
}

// Letters returns the ordered domain.
func (p *Permutation) Letters() []int {
	return slices.Clone(p.letters)
}

// Degree returns the number of letters, fixed points included.
func (p *Permutation) Degree() int { return len(p.letters) }

// Image returns the image of x, with elements outside the stored mapping
// fixed.
func (p *Permutation) Image(x int) int { return p.b.Image(x) }

// Images returns the images of the letters in letter order. For a
// permutation over 1..n this is the sequence form accepted by
// [FromSequence].
func (p *Permutation) Images() []int {
	out := make([]int, len(p.letters))
	for i, lt := range p.letters {
		out[i] = p.b.Image(lt)
	}
	return out
}

// Bijection returns the underlying compact mapping.
func (p *Permutation) Bijection() *Bijection { return p.b }

// Inverse returns the inverse permutation over the same letters. The two
// share storage, so the call is O(degree) only for the letter copy.
func (p *Permutation) Inverse() *Permutation {
	return &Permutation{letters: p.letters, b: p.b.Inverse()}
}

// Compose returns the permutation x -> p(o(x)) over o's letters. Every
// letter of o is mapped, so fixed points of the composite stay in the
// domain.
func (p *Permutation) Compose(o *Permutation) *Permutation {
	m := make(map[int]int, len(o.letters))
	for _, x := range o.letters {
		m[x] = p.b.Image(o.b.Image(x))
	}
	return &Permutation{letters: o.letters, b: NewBijection(m)}
}

// WellFormed reports whether the stored mapping is a genuine permutation
// of its letters, i.e. the moved elements and their images are the same
// set. Returns [ErrIllFormed] otherwise.
func (p *Permutation) WellFormed() error {
	if !slices.Equal(p.b.Domain(), p.b.Range()) {
		return ErrIllFormed
	}
	return nil
}

// Equal reports whether two permutations move the same elements the same
// way. Letter sets are not compared; use [SameLetters] for that.
func (p *Permutation) Equal(o *Permutation) bool {
	return p.b.Equal(o.b)
}

// Key returns the canonical key of the underlying bijection.
func (p *Permutation) Key() string { return p.b.Key() }

// SameLetters reports whether two permutations are defined over the same
// ordered domain.
func SameLetters(p, o *Permutation) bool {
	return slices.Equal(p.letters, o.letters)
}

// String renders the permutation in two-line style collapsed to arrows,
// e.g. "[1->2 2->3 3->1]", fixed points included.
func (p *Permutation) String() string {
	parts := make([]string, len(p.letters))
	for i, lt := range p.letters {
		parts[i] = fmt.Sprintf("%d->%d", lt, p.b.Image(lt))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
