package codec

import (
	"math/big"
	"slices"

	"github.com/matzehuels/traversalgroup/pkg/perm"
)

// The alternate permutation codec ranks a permutation by its inversion
// sequence: entry v-1 counts the elements greater than v standing before
// v. It predates the factorial-rank codec and nests differently under
// truncation: the digit weights depend on the permutation's length, so the
// same integer decodes to unrelated permutations at different lengths and
// decoding needs the length as an explicit parameter.
//
// Both directions exist in two variants: a direct O(n²) form with little
// overhead and a counting-merge form that wins past roughly a hundred
// letters. The threshold selects between them and never changes the
// result.

// DefaultDecodeThreshold is the length at which AltDecodePermutation
// switches from direct placement to the merge-based inverse.
const DefaultDecodeThreshold = 107

// AltEncodePermutation encodes p by its inversion sequence. The
// permutation must map 1..n onto itself. A non-positive threshold always
// uses the direct form.
func AltEncodePermutation(p *perm.Permutation, threshold int) (*big.Int, error) {
	images := p.Images()
	if err := checkOneToN(images); err != nil {
		return nil, err
	}
	if threshold <= 0 {
		threshold = len(images) + 1
	}
	var inv []int
	if len(images) < threshold {
		inv = shortPermToInvSeq(images)
	} else {
		inv = longPermToInvSeq(images)
	}
	return invSeqToInt(inv), nil
}

// AltDecodePermutation inverts [AltEncodePermutation] for a permutation of
// exactly n letters. Returns [ErrInvalidInput] when i is negative, n is
// not positive, or i has no preimage of length n (i ≥ n!). A non-positive
// threshold uses [DefaultDecodeThreshold].
func AltDecodePermutation(i *big.Int, n, threshold int) (*perm.Permutation, error) {
	if i.Sign() < 0 || n < 1 || i.Cmp(factorial(n)) >= 0 {
		return nil, ErrInvalidInput
	}
	if threshold <= 0 {
		threshold = DefaultDecodeThreshold
	}
	inv := intToInvSeq(i, n)
	if len(inv) < threshold {
		return perm.FromSequence(shortInvSeqToPerm(inv)), nil
	}
	return perm.FromSequence(longInvSeqToPerm(inv)), nil
}

// shortPermToInvSeq counts inversions pairwise.
func shortPermToInvSeq(images []int) []int {
	inv := make([]int, len(images))
	for i := 0; i < len(images); i++ {
		for j := i + 1; j < len(images); j++ {
			if images[i] > images[j] {
				inv[images[j]-1]++
			}
		}
	}
	return inv
}

// longPermToInvSeq counts inversions during a merge sort.
func longPermToInvSeq(images []int) []int {
	counts := make(map[int]int, len(images))
	mergeSort(slices.Clone(images), counts)
	inv := make([]int, len(images))
	for v := 1; v <= len(images); v++ {
		inv[v-1] = counts[v]
	}
	return inv
}

func mergeSort(lst []int, counts map[int]int) []int {
	if len(lst) <= 1 {
		return lst
	}
	cut := (len(lst) + 1) / 2
	left := mergeSort(lst[:cut], counts)
	right := mergeSort(lst[cut:], counts)
	return mergeCounting(left, right, counts)
}

func mergeCounting(left, right []int, counts map[int]int) []int {
	merged := make([]int, 0, len(left)+len(right))
	il, ir := 0, 0
	for il < len(left) || ir < len(right) {
		switch {
		case il < len(left) && ir < len(right):
			if left[il] <= right[ir] {
				merged = append(merged, left[il])
				il++
			} else {
				// right[ir] stands after every remaining left element but
				// is smaller than all of them: one inversion apiece.
				counts[right[ir]] += len(left) - il
				merged = append(merged, right[ir])
				ir++
			}
		case il < len(left):
			merged = append(merged, left[il])
			il++
		default:
			merged = append(merged, right[ir])
			ir++
		}
	}
	return merged
}

// invSeqToInt weighs the inversion counts by falling factorials: the count
// for value v can be at most n-v, so the encoding is a mixed-radix number.
func invSeqToInt(inv []int) *big.Int {
	i := new(big.Int)
	if len(inv) == 0 {
		return i
	}
	n := len(inv) - 1
	term := new(big.Int)
	for k, c := range inv {
		i.Add(i, term.Mul(factorial(n-k), big.NewInt(int64(c))))
	}
	return i
}

func intToInvSeq(i *big.Int, n int) []int {
	inv := make([]int, 0, n)
	rest := new(big.Int).Set(i)
	digit := new(big.Int)
	for ; n > 1; n-- {
		digit.DivMod(rest, factorial(n-1), rest)
		inv = append(inv, int(digit.Int64()))
	}
	inv = append(inv, 0)
	return inv
}

// shortInvSeqToPerm places each value directly: value v goes into the
// inv[v-1]-th free slot from the left.
func shortInvSeqToPerm(inv []int) []int {
	images := make([]int, len(inv))
	for j, count := range inv {
		zeros := 0
		for i := range images {
			if images[i] != 0 {
				continue
			}
			if zeros < count {
				zeros++
				continue
			}
			images[i] = j + 1
			break
		}
	}
	return images
}

// longInvSeqToPerm runs the counting merge in reverse, unsorting 1..n into
// the permutation whose inversion sequence is inv.
func longInvSeqToPerm(inv []int) []int {
	counts := make(map[int]int, len(inv))
	for i, c := range inv {
		counts[i+1] = c
	}
	sorted := make([]int, len(inv))
	for i := range sorted {
		sorted[i] = i + 1
	}
	return mergeUnsort(sorted, counts)
}

func mergeUnsort(arr []int, counts map[int]int) []int {
	if len(arr) <= 1 {
		return slices.Clone(arr)
	}
	cut := (len(arr) + 1) / 2
	left := mergeUnsort(arr[:cut], counts)
	right := mergeUnsort(arr[cut:], counts)
	return invertMerge(left, right, counts)
}

func invertMerge(left, right []int, counts map[int]int) []int {
	merged := make([]int, 0, len(left)+len(right))
	inverted := 0
	il, ir := 0, 0
	for il < len(left) || ir < len(right) {
		switch {
		case il < len(left) && counts[left[il]] == inverted:
			merged = append(merged, left[il])
			counts[left[il]] = 0
			il++
		case il < len(left) && ir < len(right):
			if counts[left[il]]-inverted > counts[right[ir]] {
				merged = append(merged, right[ir])
				inverted++
				ir++
			} else {
				merged = append(merged, left[il])
				counts[left[il]] -= inverted
				il++
			}
		case il < len(left):
			merged = append(merged, left[il])
			counts[left[il]] -= inverted
			il++
		default:
			merged = append(merged, right[ir])
			ir++
		}
	}
	return merged
}
