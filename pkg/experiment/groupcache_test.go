package experiment

import (
	"context"
	"testing"

	"github.com/matzehuels/traversalgroup/pkg/cache"
	"github.com/matzehuels/traversalgroup/pkg/perm"
)

func testGenerators() []*perm.Permutation {
	return []*perm.Permutation{
		perm.FromSequence([]int{2, 1, 3}),
		perm.FromSequence([]int{2, 3, 1}),
	}
}

func TestGroupCacheClosure(t *testing.T) {
	ctx := context.Background()
	store, err := cache.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	gc := NewGroupCache(store, 0)

	first, err := gc.Closure(ctx, testGenerators(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if first.Len() != 6 {
		t.Fatalf("order = %d, want 6", first.Len())
	}

	// Second call is served from the store and must agree exactly.
	second, err := gc.Closure(ctx, testGenerators(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if second.Len() != first.Len() {
		t.Fatalf("cached order = %d, want %d", second.Len(), first.Len())
	}
	for _, p := range first.Elements() {
		if !second.Has(p) {
			t.Errorf("cached group missing %v", p)
		}
	}
}

func TestGroupCacheKeyIgnoresGeneratorOrder(t *testing.T) {
	a, err := closureKey(testGenerators())
	if err != nil {
		t.Fatal(err)
	}
	gens := testGenerators()
	gens[0], gens[1] = gens[1], gens[0]
	b, err := closureKey(gens)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("generator order changed the cache key")
	}
}

func TestGroupCacheFallsBackOnMiss(t *testing.T) {
	gc := NewGroupCache(cache.NewNullStore(), 0)
	group, err := gc.Closure(context.Background(), testGenerators(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if group.Len() != 6 {
		t.Errorf("order = %d, want 6", group.Len())
	}
}

func TestGroupCacheInvalidGenerators(t *testing.T) {
	gc := NewGroupCache(cache.NewNullStore(), 0)
	gens := []*perm.Permutation{
		perm.FromSequence([]int{2, 1}),
		perm.FromSequence([]int{2, 3, 1}),
	}
	if _, err := gc.Closure(context.Background(), gens, 3); err == nil {
		t.Error("mismatched generators should fail")
	}
}
