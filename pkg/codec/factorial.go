package codec

import (
	"math/big"
	"sync"
)

var (
	factMu  sync.Mutex
	factTab = []*big.Int{big.NewInt(1)}
)

// factorial returns n! from a shared append-only table. The result must
// not be mutated by callers.
func factorial(n int) *big.Int {
	factMu.Lock()
	defer factMu.Unlock()
	for len(factTab) <= n {
		k := int64(len(factTab))
		factTab = append(factTab, new(big.Int).Mul(factTab[k-1], big.NewInt(k)))
	}
	return factTab[n]
}
