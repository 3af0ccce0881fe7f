package graph

import (
	"fmt"
	"strings"
)

// Method selects a traversal strategy. Methods are resolved once from
// their names (see [ParseMethod]); everything downstream works with the
// enumerated value.
type Method int

const (
	// BFS visits nodes in breadth-first order.
	BFS Method = iota
	// DFS visits nodes in depth-first preorder.
	DFS
)

// ParseMethod resolves a traversal method from its name,
// case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	}
	return 0, fmt.Errorf("unknown traversal method %q", s)
}

// Methods returns all traversal methods.
func Methods() []Method { return []Method{BFS, DFS} }

func (m Method) String() string {
	switch m {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Traverse returns the nodes reachable from start in the order the chosen
// method visits them. Neighbors are explored in ascending order, so the
// result is fully determined by the graph and the start node. Returns
// [ErrUnknownNode] when start is absent.
func (g *Graph) Traverse(m Method, start int) ([]int, error) {
	if !g.HasNode(start) {
		return nil, fmt.Errorf("traverse from %d: %w", start, ErrUnknownNode)
	}
	switch m {
	case DFS:
		return g.dfs(start), nil
	default:
		return g.bfs(start), nil
	}
}

func (g *Graph) bfs(start int) []int {
	visited := map[int]bool{start: true}
	order := make([]int, 0, len(g.nodes))
	queue := []int{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)
		for _, nb := range g.Neighbors(n) {
			if !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return order
}

func (g *Graph) dfs(start int) []int {
	visited := map[int]bool{start: true}
	order := make([]int, 0, len(g.nodes))
	var visit func(n int)
	visit = func(n int) {
		order = append(order, n)
		for _, nb := range g.Neighbors(n) {
			if !visited[nb] {
				visited[nb] = true
				visit(nb)
			}
		}
	}
	visit(start)
	return order
}
