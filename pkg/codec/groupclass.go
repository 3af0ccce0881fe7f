package codec

import (
	"encoding/json"
	"math/big"
	"slices"

	"github.com/matzehuels/traversalgroup/pkg/perm"
)

// EncodeGroupClass serializes a group fingerprint as canonical JSON: a
// list of [cycle-profile, multiplicity] pairs sorted by profile. Two
// isomorphic traversal groups over relabeled letters produce the same
// string, which makes it usable as a class identifier.
func EncodeGroupClass(tallies []perm.ClassTally) (string, error) {
	sorted := slices.Clone(tallies)
	slices.SortFunc(sorted, func(a, b perm.ClassTally) int {
		if c := slices.Compare(a.Profile, b.Profile); c != 0 {
			return c
		}
		return a.Count - b.Count
	})
	items := make([]any, len(sorted))
	for i, t := range sorted {
		profile := t.Profile
		if profile == nil {
			profile = []int{}
		}
		items[i] = []any{profile, t.Count}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeGroupClass inverts [EncodeGroupClass].
func DecodeGroupClass(s string) ([]perm.ClassTally, error) {
	var raw [][]json.RawMessage
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, err
	}
	out := make([]perm.ClassTally, 0, len(raw))
	for _, item := range raw {
		if len(item) != 2 {
			return nil, ErrInvalidInput
		}
		var t perm.ClassTally
		if err := json.Unmarshal(item[0], &t.Profile); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(item[1], &t.Count); err != nil {
			return nil, err
		}
		if t.Profile == nil {
			t.Profile = []int{}
		}
		out = append(out, t)
	}
	return out, nil
}

// EncodeGroup serializes a group as the sorted JSON array of its elements'
// factorial ranks.
func EncodeGroup(g *perm.Group) (string, error) {
	ranks := make([]*big.Int, 0, g.Len())
	for _, p := range g.Elements() {
		r, err := EncodePermutation(p)
		if err != nil {
			return "", err
		}
		ranks = append(ranks, r)
	}
	slices.SortFunc(ranks, (*big.Int).Cmp)
	data, err := json.Marshal(ranks)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeGroup inverts [EncodeGroup] for a group over at least n letters.
func DecodeGroup(s string, n int) (*perm.Group, error) {
	var ranks []*big.Int
	if err := json.Unmarshal([]byte(s), &ranks); err != nil {
		return nil, err
	}
	g := perm.NewGroup()
	for _, r := range ranks {
		p, err := DecodePermutation(r, n)
		if err != nil {
			return nil, err
		}
		g.Add(p)
	}
	return g, nil
}
