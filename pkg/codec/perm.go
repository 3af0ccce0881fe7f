package codec

import (
	"errors"
	"math/big"

	"github.com/matzehuels/traversalgroup/pkg/perm"
)

// ErrInvalidInput is returned when an encoder is handed an object outside
// its domain or a decoder is handed an integer outside its range.
var ErrInvalidInput = errors.New("value is outside the codec's domain")

// EncodePermutation returns the permutation's 0-based rank among the
// permutations of its letters in lexicographic order of their image
// sequences. The permutation must map 1..n onto itself; [2 1 3] encodes
// to 2.
func EncodePermutation(p *perm.Permutation) (*big.Int, error) {
	images := p.Images()
	if err := checkOneToN(images); err != nil {
		return nil, err
	}
	n := len(images)
	rank := new(big.Int)
	term := new(big.Int)
	for i := 0; i < n-1; i++ {
		smaller := 0
		for j := i + 1; j < n; j++ {
			if images[j] < images[i] {
				smaller++
			}
		}
		rank.Add(rank, term.Mul(big.NewInt(int64(smaller)), factorial(n-1-i)))
	}
	return rank, nil
}

// DecodePermutation inverts [EncodePermutation]. The result has at least n
// letters; when n is too small to hold rank i it grows to the smallest
// length whose factorial exceeds i.
func DecodePermutation(i *big.Int, n int) (*perm.Permutation, error) {
	if i.Sign() < 0 {
		return nil, ErrInvalidInput
	}
	if n < 1 {
		n = 1
	}
	for factorial(n).Cmp(i) <= 0 {
		n++
	}

	remaining := make([]int, n)
	for k := range remaining {
		remaining[k] = k + 1
	}
	rest := new(big.Int).Set(i)
	digit := new(big.Int)
	seq := make([]int, 0, n)
	for pos := 0; pos < n; pos++ {
		digit.DivMod(rest, factorial(n-1-pos), rest)
		d := int(digit.Int64())
		seq = append(seq, remaining[d])
		remaining = append(remaining[:d], remaining[d+1:]...)
	}
	return perm.FromSequence(seq), nil
}

// checkOneToN verifies that images is a permutation of 1..len(images).
func checkOneToN(images []int) error {
	seen := make([]bool, len(images))
	for _, v := range images {
		if v < 1 || v > len(images) || seen[v-1] {
			return ErrInvalidInput
		}
		seen[v-1] = true
	}
	return nil
}
