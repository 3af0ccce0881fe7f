package perm

import (
	"errors"
	"slices"
	"testing"
)

func TestFromSequence(t *testing.T) {
	p := FromSequence([]int{2, 3, 1})

	if got := p.Degree(); got != 3 {
		t.Errorf("Degree = %d, want 3", got)
	}
	if got := p.Letters(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Letters = %v", got)
	}
	if got := p.Images(); !slices.Equal(got, []int{2, 3, 1}) {
		t.Errorf("Images = %v, want [2 3 1]", got)
	}
}

func TestPermutationKeepsFixedLetters(t *testing.T) {
	p := NewPermutation(map[int]int{1: 2, 2: 1, 3: 3})
	if got := p.Degree(); got != 3 {
		t.Errorf("Degree = %d, want 3: fixed letters count", got)
	}
	// Equality still ignores them.
	if !p.Equal(FromSequence([]int{2, 1})) {
		t.Error("fixed letters must not affect Equal")
	}
	if SameLetters(p, FromSequence([]int{2, 1})) {
		t.Error("letter sets differ")
	}
}

func TestComposePreservesDegree(t *testing.T) {
	p := FromSequence([]int{2, 1, 3})
	o := FromSequence([]int{1, 3, 2})

	c := p.Compose(o)
	// p(o(x)): 1->1->2, 2->3->3, 3->2->1.
	if got := c.Images(); !slices.Equal(got, []int{2, 3, 1}) {
		t.Errorf("Images = %v, want [2 3 1]", got)
	}
	if c.Degree() != 3 {
		t.Errorf("Degree = %d, want 3", c.Degree())
	}

	// Composing a permutation with its inverse keeps the full domain even
	// though every letter is fixed.
	id := p.Compose(p.Inverse())
	if id.Degree() != 3 {
		t.Errorf("identity composite Degree = %d, want 3", id.Degree())
	}
	if !id.Equal(Identity(3)) {
		t.Error("p composed with its inverse should be the identity")
	}
}

func TestInverse(t *testing.T) {
	p := FromSequence([]int{3, 1, 2})
	inv := p.Inverse()
	if got := inv.Images(); !slices.Equal(got, []int{2, 3, 1}) {
		t.Errorf("inverse Images = %v, want [2 3 1]", got)
	}
	if !SameLetters(p, inv) {
		t.Error("inverse should keep the letter set")
	}
}

func TestFromArrangement(t *testing.T) {
	// Value 5 sits first in the reference and second in the target, so
	// letter 1 maps to position 2.
	p, err := FromArrangement([]int{5, 6, 7}, []int{7, 5, 6})
	if err != nil {
		t.Fatalf("FromArrangement: %v", err)
	}
	if got := p.Images(); !slices.Equal(got, []int{2, 3, 1}) {
		t.Errorf("Images = %v, want [2 3 1]", got)
	}
}

func TestFromArrangementDuplicates(t *testing.T) {
	// Repeated values are matched in order of appearance.
	p, err := FromArrangement([]int{1, 1, 2}, []int{2, 1, 1})
	if err != nil {
		t.Fatalf("FromArrangement: %v", err)
	}
	if got := p.Images(); !slices.Equal(got, []int{2, 3, 1}) {
		t.Errorf("Images = %v, want [2 3 1]", got)
	}
}

func TestFromArrangementRejectsMismatch(t *testing.T) {
	cases := [][2][]int{
		{{1, 2, 3}, {1, 2}},
		{{1, 2, 3}, {1, 2, 4}},
		{{1, 1, 2}, {1, 2, 2}},
	}
	for _, c := range cases {
		if _, err := FromArrangement(c[0], c[1]); !errors.Is(err, ErrBadArrangement) {
			t.Errorf("FromArrangement(%v, %v): err = %v, want ErrBadArrangement", c[0], c[1], err)
		}
	}
}

func TestWellFormed(t *testing.T) {
	if err := FromSequence([]int{2, 3, 1}).WellFormed(); err != nil {
		t.Errorf("well-formed permutation rejected: %v", err)
	}
	if err := Identity(4).WellFormed(); err != nil {
		t.Errorf("identity rejected: %v", err)
	}

	bad := NewPermutation(map[int]int{1: 2, 2: 2, 3: 1})
	if err := bad.WellFormed(); !errors.Is(err, ErrIllFormed) {
		t.Errorf("err = %v, want ErrIllFormed", err)
	}
	collide := NewPermutation(map[int]int{1: 2, 3: 2})
	if err := collide.WellFormed(); !errors.Is(err, ErrIllFormed) {
		t.Errorf("err = %v, want ErrIllFormed", err)
	}
}
