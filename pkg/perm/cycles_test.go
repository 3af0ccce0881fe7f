package perm

import (
	"slices"
	"testing"
)

func TestCycleDecomposition(t *testing.T) {
	// 1->2->3->1 with 4 and 5 swapped. The first cycle starts at the image
	// of the smallest letter.
	p := FromSequence([]int{2, 3, 1, 5, 4})
	cs := CycleDecomposition(p)

	want := Cycles{{2, 3, 1}, {5, 4}}
	if len(cs) != len(want) {
		t.Fatalf("got %d cycles %v, want %v", len(cs), cs, want)
	}
	for i := range want {
		if !slices.Equal(cs[i], want[i]) {
			t.Errorf("cycle %d = %v, want %v", i, cs[i], want[i])
		}
	}
	if got := cs.String(); got != "(2 3 1)(5 4)" {
		t.Errorf("String = %q", got)
	}
}

func TestCycleDecompositionIdentity(t *testing.T) {
	cs := CycleDecomposition(Identity(3))
	if len(cs) != 3 {
		t.Fatalf("identity should decompose into 1-cycles, got %v", cs)
	}
	if got := cs.String(); got != "1" {
		t.Errorf("String = %q, want \"1\"", got)
	}
}

func TestProfile(t *testing.T) {
	tests := []struct {
		name string
		seq  []int
		want []int
	}{
		{"identity", []int{1, 2, 3}, []int{}},
		{"transposition", []int{2, 1, 3}, []int{1}},
		{"three cycle", []int{2, 3, 1}, []int{0, 1}},
		{"double transposition", []int{2, 1, 4, 3}, []int{2}},
		{"mixed", []int{2, 3, 1, 5, 4}, []int{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCycleCount(FromSequence(tt.seq)).Profile()
			if !slices.Equal(got, tt.want) {
				t.Errorf("Profile(%v) = %v, want %v", tt.seq, got, tt.want)
			}
		})
	}
}

func TestEquivalent(t *testing.T) {
	// A transposition is a transposition no matter how many letters sit
	// still around it.
	if !Equivalent(FromSequence([]int{2, 1}), FromSequence([]int{1, 2, 3, 5, 4})) {
		t.Error("transpositions of different degrees should be equivalent")
	}
	// One transposition vs two: the full profile distinguishes them even
	// though they agree on the shared prefix of lengths.
	if Equivalent(FromSequence([]int{2, 1, 3, 4}), FromSequence([]int{2, 1, 4, 3})) {
		t.Error("one and two transpositions must not be equivalent")
	}
	if !Equivalent(Identity(2), Identity(9)) {
		t.Error("identities should be equivalent")
	}
	if Equivalent(Identity(3), FromSequence([]int{2, 1, 3})) {
		t.Error("identity equivalent to a transposition")
	}
}
