package codec

import "math/big"

// EncodeSet encodes a set of positive integers as a bitmask: bit k-1 is
// set when k is a member. Duplicates are ignored; elements must be
// positive.
func EncodeSet(s []int) (*big.Int, error) {
	encoded := new(big.Int)
	for _, v := range s {
		if v < 1 {
			return nil, ErrInvalidInput
		}
		encoded.SetBit(encoded, v-1, 1)
	}
	return encoded, nil
}

// DecodeSet inverts [EncodeSet], returning the members in ascending order.
func DecodeSet(i *big.Int) ([]int, error) {
	if i.Sign() < 0 {
		return nil, ErrInvalidInput
	}
	s := make([]int, 0, i.BitLen())
	for k := 0; k < i.BitLen(); k++ {
		if i.Bit(k) == 1 {
			s = append(s, k+1)
		}
	}
	return s, nil
}
