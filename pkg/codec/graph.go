package codec

import (
	"math/big"

	"github.com/matzehuels/traversalgroup/pkg/graph"
)

// EncodeGraph encodes an undirected graph on nodes 1..n as a bitmask over
// the complete graph's edges in canonical order (all pairs ending at 2,
// then at 3, and so on). The graph's nodes must be exactly 1..n.
func EncodeGraph(g *graph.Graph) (*big.Int, error) {
	if g.Directed() {
		return nil, ErrInvalidInput
	}
	nodes := g.Nodes()
	for i, n := range nodes {
		if n != i+1 {
			return nil, ErrInvalidInput
		}
	}
	encoded := new(big.Int)
	for bit, e := range graph.CompleteGraphEdges(len(nodes)) {
		if g.HasEdge(e.From, e.To) {
			encoded.SetBit(encoded, bit, 1)
		}
	}
	return encoded, nil
}

// DecodeGraph inverts [EncodeGraph]. The result has at least n nodes; n
// grows until 2^C(n,2) exceeds i, so graphs embed in larger node sets by
// adding isolated nodes.
func DecodeGraph(i *big.Int, n int) (*graph.Graph, error) {
	if i.Sign() < 0 {
		return nil, ErrInvalidInput
	}
	if n < 1 {
		n = 1
	}
	for graph.EncodingBound(n).Cmp(i) <= 0 {
		n++
	}
	g := graph.New()
	for node := 1; node <= n; node++ {
		g.AddNode(node)
	}
	for bit, e := range graph.CompleteGraphEdges(n) {
		if i.Bit(bit) == 1 {
			g.AddEdge(e.From, e.To)
		}
	}
	return g, nil
}
