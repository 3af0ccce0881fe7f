package cli

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/matzehuels/traversalgroup/pkg/graph"
	"github.com/matzehuels/traversalgroup/pkg/perm"
)

// parseInts parses a whitespace- or comma-separated list of integers,
// e.g. "2 1 3" or "2,1,3".
func parseInts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty integer list")
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", f)
		}
		out[i] = n
	}
	return out, nil
}

// parsePermutation parses a one-line permutation like "2 1 3", the image
// sequence of the letters 1..n in order.
func parsePermutation(s string) (*perm.Permutation, error) {
	images, err := parseInts(s)
	if err != nil {
		return nil, err
	}
	p := perm.FromSequence(images)
	if err := p.WellFormed(); err != nil {
		return nil, fmt.Errorf("%q: %w", s, err)
	}
	return p, nil
}

// parseBig parses a non-negative decimal integer of arbitrary size.
func parseBig(s string) (*big.Int, error) {
	i, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("not a decimal integer: %q", s)
	}
	return i, nil
}

// parseGraph parses an undirected graph from edge tokens like "1-2 2-3".
// Every endpoint becomes a node; isolated nodes can be listed bare ("4").
func parseGraph(tokens []string) (*graph.Graph, error) {
	g := graph.New()
	for _, tok := range tokens {
		ends := strings.Split(tok, "-")
		switch len(ends) {
		case 1:
			n, err := strconv.Atoi(ends[0])
			if err != nil {
				return nil, fmt.Errorf("not a node: %q", tok)
			}
			g.AddNode(n)
		case 2:
			a, err := strconv.Atoi(ends[0])
			if err != nil {
				return nil, fmt.Errorf("bad edge: %q", tok)
			}
			b, err := strconv.Atoi(ends[1])
			if err != nil {
				return nil, fmt.Errorf("bad edge: %q", tok)
			}
			g.AddEdge(a, b)
		default:
			return nil, fmt.Errorf("bad edge: %q", tok)
		}
	}
	if g.Len() == 0 {
		return nil, fmt.Errorf("empty graph")
	}
	return g, nil
}

// formatImages renders a permutation as its one-line image sequence.
func formatImages(p *perm.Permutation) string {
	images := p.Images()
	fields := make([]string, len(images))
	for i, img := range images {
		fields[i] = strconv.Itoa(img)
	}
	return strings.Join(fields, " ")
}

// formatEdges renders a graph's edges as "1-2 2-3" tokens, isolated nodes
// bare.
func formatEdges(g *graph.Graph) string {
	touched := make(map[int]bool)
	var fields []string
	for _, e := range g.Edges() {
		fields = append(fields, fmt.Sprintf("%d-%d", e.From, e.To))
		touched[e.From] = true
		touched[e.To] = true
	}
	for _, n := range g.Nodes() {
		if !touched[n] {
			fields = append(fields, strconv.Itoa(n))
		}
	}
	return strings.Join(fields, " ")
}
