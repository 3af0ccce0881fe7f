package graph

import (
	"math/big"
	"math/rand/v2"
)

// RandomSubsequence flips a fair coin per element and returns the chosen
// subsequence together with its bitmask encoding (bit i set when
// elements[i] was kept). Passing the same *rand.Rand state reproduces the
// same choice.
func RandomSubsequence[T any](rng *rand.Rand, elements []T) ([]T, *big.Int) {
	encoded := new(big.Int)
	var chosen []T
	for i, elt := range elements {
		if rng.IntN(2) == 1 {
			encoded.SetBit(encoded, i, 1)
			chosen = append(chosen, elt)
		}
	}
	return chosen, encoded
}

// RandomSpanningTree builds a random tree over the given nodes by a random
// walk: each step jumps to a uniformly chosen node and attaches it to the
// walk's current position if it has not been reached yet.
func RandomSpanningTree(rng *rand.Rand, nodes []int) *Graph {
	g := New()
	g.AddNodes(nodes...)
	if len(nodes) < 2 {
		return g
	}
	visited := make(map[int]bool, len(nodes))
	cur := nodes[rng.IntN(len(nodes))]
	visited[cur] = true
	for len(visited) < len(nodes) {
		next := nodes[rng.IntN(len(nodes))]
		if !visited[next] {
			g.AddEdge(cur, next)
			visited[next] = true
		}
		cur = next
	}
	return g
}

// RandomConnectedGraph returns a random spanning tree over the nodes with
// a uniformly random subset of the remaining complete-graph edges added on
// top, so every output is connected.
func RandomConnectedGraph(rng *rand.Rand, nodes []int) *Graph {
	g := RandomSpanningTree(rng, nodes)
	var rest []Edge
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			e := g.Edge(nodes[i], nodes[j])
			if !g.HasEdge(e.From, e.To) {
				rest = append(rest, e)
			}
		}
	}
	chosen, _ := RandomSubsequence(rng, rest)
	for _, e := range chosen {
		g.AddEdge(e.From, e.To)
	}
	return g
}

// ErdosRenyi samples G(n, p): nodes 1..n with each possible edge included
// independently with probability p.
func ErdosRenyi(rng *rand.Rand, n int, p float64) *Graph {
	g := New()
	for i := 1; i <= n; i++ {
		g.AddNode(i)
	}
	for _, e := range CompleteGraphEdges(n) {
		if rng.Float64() < p {
			g.AddEdge(e.From, e.To)
		}
	}
	return g
}

// numConnectedLabeled is OEIS A001187, the number of connected labeled
// graphs on n nodes. http://oeis.org/A001187
var numConnectedLabeled = []string{
	"1", "1", "1", "4", "38", "728", "26704", "1866256", "251548592",
	"66296291072", "34496488594816", "35641657548953344",
	"73354596206766622208", "301272202649664088951808",
	"2471648811030443735290891264", "40527680937730480234609755344896",
}

// NumConnectedGraphs returns the number of connected labeled graphs on n
// nodes, or nil when n is negative or beyond the stored table.
func NumConnectedGraphs(n int) *big.Int {
	if n < 0 || n >= len(numConnectedLabeled) {
		return nil
	}
	v, _ := new(big.Int).SetString(numConnectedLabeled[n], 10)
	return v
}
