package codec

import "math/big"

// primeSource streams the primes in order using an incremental segmented
// sieve: each segment marks composites from the primes found so far,
// resuming every prime's multiples where the previous segment left off.
type primeSource struct {
	step      int
	primes    []int
	multiples []int // next unmarked multiple of primes[i]
	lower     int
	upper     int
	buf       []int
}

func newPrimeSource() *primeSource {
	return &primeSource{step: 1000, lower: 2, upper: 4}
}

// Next returns the next prime.
func (ps *primeSource) Next() int {
	for len(ps.buf) == 0 {
		ps.fill()
	}
	p := ps.buf[0]
	ps.buf = ps.buf[1:]
	return p
}

func (ps *primeSource) fill() {
	composite := make(map[int]bool)
	for i, p := range ps.primes {
		if p*p > ps.upper {
			break
		}
		m := ps.multiples[i]
		for ; m < ps.upper; m += p {
			composite[m] = true
		}
		ps.multiples[i] = m
	}
	// upper itself is even, so skipping it loses nothing.
	for n := ps.lower; n < ps.upper; n++ {
		if !composite[n] {
			ps.buf = append(ps.buf, n)
			ps.primes = append(ps.primes, n)
			ps.multiples = append(ps.multiples, n+n)
		}
	}
	ps.lower = ps.upper + 1
	ps.upper += min(ps.upper, ps.step)
}

// EncodeSequence encodes a sequence of non-negative integers as the
// product of the k-th prime raised to the k-th entry (Gödel numbering).
// Trailing zeros do not survive the round trip; the empty sequence
// encodes to 1.
func EncodeSequence(s []int) (*big.Int, error) {
	encoded := big.NewInt(1)
	primes := newPrimeSource()
	pow := new(big.Int)
	for _, e := range s {
		if e < 0 {
			return nil, ErrInvalidInput
		}
		p := big.NewInt(int64(primes.Next()))
		encoded.Mul(encoded, pow.Exp(p, big.NewInt(int64(e)), nil))
	}
	return encoded, nil
}

// DecodeSequence inverts [EncodeSequence], reading off prime exponents
// until the value is exhausted. Returns [ErrInvalidInput] for inputs
// below 1.
func DecodeSequence(i *big.Int) ([]int, error) {
	if i.Sign() < 1 {
		return nil, ErrInvalidInput
	}
	rest := new(big.Int).Set(i)
	one := big.NewInt(1)
	primes := newPrimeSource()
	s := []int{}
	q, r := new(big.Int), new(big.Int)
	for rest.Cmp(one) != 0 {
		s = append(s, 0)
		p := big.NewInt(int64(primes.Next()))
		for {
			q.QuoRem(rest, p, r)
			if r.Sign() != 0 {
				break
			}
			s[len(s)-1]++
			rest.Set(q)
		}
	}
	return s, nil
}
