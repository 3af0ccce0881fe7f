// Package graph provides the simple-graph container the traversal
// experiments run on: nodes are positive integers, undirected edges are
// stored in canonical (min, max) form, and neighbor iteration is always in
// ascending node order so traversal results are reproducible.
package graph

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"
)

// ErrUnknownNode is returned by Traverse when the start node is not in the
// graph.
var ErrUnknownNode = errors.New("node is not in the graph")

// Edge is a pair of adjacent nodes. In an undirected graph edges are
// normalized so From < To; construct through [Graph.Edge] or compare
// against edges the graph returned.
type Edge struct {
	From int
	To   int
}

// Graph is a node-and-edge container. The zero value is not usable;
// construct with [New] or [NewDirected].
type Graph struct {
	directed  bool
	nodes     map[int]struct{}
	neighbors map[int]map[int]struct{}
	edges     map[Edge]struct{}
}

// New returns an empty undirected graph.
func New() *Graph {
	return &Graph{
		nodes:     make(map[int]struct{}),
		neighbors: make(map[int]map[int]struct{}),
		edges:     make(map[Edge]struct{}),
	}
}

// NewDirected returns an empty directed graph.
func NewDirected() *Graph {
	g := New()
	g.directed = true
	return g
}

// Edge returns the canonical form of the edge between two nodes: ordered
// as given for directed graphs, (min, max) otherwise.
func (g *Graph) Edge(n1, n2 int) Edge {
	if !g.directed && n1 > n2 {
		n1, n2 = n2, n1
	}
	return Edge{From: n1, To: n2}
}

// AddNode inserts a node. Adding an existing node is a no-op.
func (g *Graph) AddNode(n int) {
	if _, ok := g.nodes[n]; ok {
		return
	}
	g.nodes[n] = struct{}{}
	g.neighbors[n] = make(map[int]struct{})
}

// AddNodes inserts all the given nodes.
func (g *Graph) AddNodes(ns ...int) {
	for _, n := range ns {
		g.AddNode(n)
	}
}

// AddEdge inserts an edge, adding its endpoints as needed.
func (g *Graph) AddEdge(n1, n2 int) {
	g.AddNodes(n1, n2)
	g.edges[g.Edge(n1, n2)] = struct{}{}
	g.neighbors[n1][n2] = struct{}{}
	if !g.directed {
		g.neighbors[n2][n1] = struct{}{}
	}
}

// DeleteEdge removes an edge. Removing a missing edge is a no-op.
func (g *Graph) DeleteEdge(n1, n2 int) {
	delete(g.edges, g.Edge(n1, n2))
	if nb, ok := g.neighbors[n1]; ok {
		delete(nb, n2)
	}
	if !g.directed {
		if nb, ok := g.neighbors[n2]; ok {
			delete(nb, n1)
		}
	}
}

// DeleteNode removes a node and every edge incident to it.
func (g *Graph) DeleteNode(n int) {
	if _, ok := g.nodes[n]; !ok {
		return
	}
	for nb := range g.neighbors[n] {
		g.DeleteEdge(n, nb)
	}
	if g.directed {
		// Incoming edges do not show in n's neighbor set.
		for e := range g.edges {
			if e.To == n {
				g.DeleteEdge(e.From, e.To)
			}
		}
	}
	delete(g.nodes, n)
	delete(g.neighbors, n)
}

// HasNode reports whether n is in the graph.
func (g *Graph) HasNode(n int) bool {
	_, ok := g.nodes[n]
	return ok
}

// HasEdge reports whether the two nodes are adjacent.
func (g *Graph) HasEdge(n1, n2 int) bool {
	_, ok := g.edges[g.Edge(n1, n2)]
	return ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Directed reports whether the graph is directed.
func (g *Graph) Directed() bool { return g.directed }

// Nodes returns the nodes in ascending order.
func (g *Graph) Nodes() []int {
	out := make([]int, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Edges returns the edges sorted by (From, To).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Edge) int {
		if a.From != b.From {
			return a.From - b.From
		}
		return a.To - b.To
	})
	return out
}

// Neighbors returns n's neighbors in ascending order.
func (g *Graph) Neighbors(n int) []int {
	out := make([]int, 0, len(g.neighbors[n]))
	for nb := range g.neighbors[n] {
		out = append(out, nb)
	}
	slices.Sort(out)
	return out
}

// ConnectedComponents returns the components as sorted node slices,
// ordered by smallest member. For directed graphs the components follow
// outgoing edges only.
func (g *Graph) ConnectedComponents() [][]int {
	visited := make(map[int]bool, len(g.nodes))
	var comps [][]int
	for _, n := range g.Nodes() {
		if visited[n] {
			continue
		}
		order, _ := g.Traverse(BFS, n)
		for _, m := range order {
			visited[m] = true
		}
		slices.Sort(order)
		comps = append(comps, order)
	}
	return comps
}

// String renders the edge list, e.g. "(1<->2, 2<->3)".
func (g *Graph) String() string {
	conn := "<->"
	if g.directed {
		conn = "->"
	}
	parts := make([]string, 0, len(g.edges))
	for _, e := range g.Edges() {
		parts = append(parts, fmt.Sprintf("%d%s%d", e.From, conn, e.To))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// CompleteGraphEdges returns the edges of the complete graph on nodes
// 1..n in canonical order: all pairs ending at 2, then at 3, and so on.
// This order fixes the bit positions of the graph codec.
func CompleteGraphEdges(n int) []Edge {
	out := make([]Edge, 0, n*(n-1)/2)
	for k := 2; k <= n; k++ {
		for i := 1; i < k; i++ {
			out = append(out, Edge{From: i, To: k})
		}
	}
	return out
}

// Choose returns the binomial coefficient C(n, k).
func Choose(n, k int64) *big.Int {
	return new(big.Int).Binomial(n, k)
}

// EncodingBound returns 2^C(n,2), the least integer exceeding every
// encoding of a graph on n nodes.
func EncodingBound(n int) *big.Int {
	bits := Choose(int64(n), 2)
	return new(big.Int).Lsh(big.NewInt(1), uint(bits.Int64()))
}
