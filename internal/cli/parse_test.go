package cli

import (
	"testing"

	"github.com/matzehuels/traversalgroup/pkg/perm"
)

func TestParseInts(t *testing.T) {
	tests := []struct {
		in   string
		want []int
		ok   bool
	}{
		{"2 1 3", []int{2, 1, 3}, true},
		{"2,1,3", []int{2, 1, 3}, true},
		{" 2, 1  3 ", []int{2, 1, 3}, true},
		{"-4 0", []int{-4, 0}, true},
		{"", nil, false},
		{"2 x 3", nil, false},
	}
	for _, tt := range tests {
		got, err := parseInts(tt.in)
		if tt.ok != (err == nil) {
			t.Errorf("parseInts(%q) err = %v", tt.in, err)
			continue
		}
		if !tt.ok {
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("parseInts(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseInts(%q) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}

func TestParsePermutation(t *testing.T) {
	p, err := parsePermutation("2 1 3")
	if err != nil {
		t.Fatal(err)
	}
	if !p.Equal(perm.FromSequence([]int{2, 1, 3})) {
		t.Errorf("parsed %v", p)
	}
	if got := formatImages(p); got != "2 1 3" {
		t.Errorf("formatImages = %q", got)
	}

	if _, err := parsePermutation("2 2 3"); err == nil {
		t.Error("repeated image accepted")
	}
	if _, err := parsePermutation(""); err == nil {
		t.Error("empty permutation accepted")
	}
}

func TestParseGraph(t *testing.T) {
	g, err := parseGraph([]string{"1-2", "2-3", "4"})
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 4 || g.NumEdges() != 2 {
		t.Errorf("parsed %d nodes, %d edges", g.Len(), g.NumEdges())
	}
	if !g.HasEdge(1, 2) || !g.HasEdge(2, 3) || !g.HasNode(4) {
		t.Error("parsed graph misses nodes or edges")
	}
	if got := formatEdges(g); got != "1-2 2-3 4" {
		t.Errorf("formatEdges = %q", got)
	}

	for _, bad := range [][]string{{}, {"1-2-3"}, {"a-b"}, {"1-"}} {
		if _, err := parseGraph(bad); err == nil {
			t.Errorf("parseGraph(%v) accepted", bad)
		}
	}
}

func TestParseBig(t *testing.T) {
	i, err := parseBig("123456789012345678901234567890")
	if err != nil {
		t.Fatal(err)
	}
	if i.String() != "123456789012345678901234567890" {
		t.Errorf("parseBig = %s", i)
	}
	if _, err := parseBig("12x"); err == nil {
		t.Error("junk accepted")
	}
}
