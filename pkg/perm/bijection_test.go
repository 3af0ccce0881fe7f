package perm

import "testing"

func TestBijectionFixedPointConvention(t *testing.T) {
	b := NewBijection(map[int]int{1: 2, 2: 1, 3: 3})

	if got := b.Image(1); got != 2 {
		t.Errorf("Image(1) = %d, want 2", got)
	}
	// Identity pairs are dropped, unknown elements are fixed.
	if b.Moves(3) {
		t.Error("identity pair should not be stored")
	}
	if got := b.Image(99); got != 99 {
		t.Errorf("Image(99) = %d, want 99", got)
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestBijectionInverseIsSharedView(t *testing.T) {
	b := NewBijection(map[int]int{1: 2, 2: 3, 3: 1})
	inv := b.Inverse()

	if got := inv.Image(2); got != 1 {
		t.Errorf("inverse Image(2) = %d, want 1", got)
	}
	if !inv.Inverse().Equal(b) {
		t.Error("double inverse should equal the original")
	}
	for x := 1; x <= 3; x++ {
		if got := inv.Image(b.Image(x)); got != x {
			t.Errorf("inv(b(%d)) = %d, want %d", x, got, x)
		}
	}
}

func TestBijectionCompose(t *testing.T) {
	b := NewBijection(map[int]int{1: 2, 2: 1})
	o := NewBijection(map[int]int{2: 3, 3: 2})

	// (b∘o) maps o's stored domain through both.
	c := b.Compose(o)
	if got := c.Image(2); got != 3 {
		t.Errorf("c(2) = %d, want 3", got)
	}
	if got := c.Image(3); got != 1 {
		t.Errorf("c(3) = %d, want 1", got)
	}
	// 1 is not in o's stored domain, so the composite leaves it alone.
	if c.Moves(1) {
		t.Error("composite should not move elements outside o's domain")
	}
}

func TestBijectionEqualIgnoresAmbientSet(t *testing.T) {
	small := NewBijection(map[int]int{1: 2, 2: 1})
	big := NewBijection(map[int]int{1: 2, 2: 1, 3: 3, 4: 4})
	if !small.Equal(big) {
		t.Error("fixed points must not affect equality")
	}
	if small.Key() != big.Key() {
		t.Errorf("keys differ: %q vs %q", small.Key(), big.Key())
	}

	other := NewBijection(map[int]int{1: 2, 2: 1, 3: 4, 4: 3})
	if small.Equal(other) {
		t.Error("distinct mappings compared equal")
	}
}

func TestBijectionDomainRange(t *testing.T) {
	b := NewBijection(map[int]int{5: 1, 1: 5, 3: 3})
	wantDom := []int{1, 5}
	dom := b.Domain()
	if len(dom) != 2 || dom[0] != wantDom[0] || dom[1] != wantDom[1] {
		t.Errorf("Domain = %v, want %v", dom, wantDom)
	}
	rng := b.Range()
	if len(rng) != 2 || rng[0] != 1 || rng[1] != 5 {
		t.Errorf("Range = %v, want [1 5]", rng)
	}
}
