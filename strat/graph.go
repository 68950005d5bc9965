package strat

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// errCycleDetected is internal to the graph utilities; Topological repairs
// cycles rather than surfacing this to callers.
var errCycleDetected = errors.New("strat: cycle detected")

// digraph is an explicit adjacency-list directed graph over compact int
// node ids with string labels. Node ids are assigned in insertion order,
// which makes every traversal deterministic for a fixed input sequence.
type digraph struct {
	labels []string
	index  map[string]int
	out    []map[int]struct{}
}

func newDigraph() *digraph {
	return &digraph{index: make(map[string]int)}
}

// node returns the id for label, adding a fresh node on first use.
func (g *digraph) node(label string) int {
	if id, ok := g.index[label]; ok {
		return id
	}
	id := len(g.labels)
	g.index[label] = id
	g.labels = append(g.labels, label)
	g.out = append(g.out, make(map[int]struct{}))

	return id
}

// len returns the node count.
func (g *digraph) len() int { return len(g.labels) }

// addEdge inserts the directed edge u→v; duplicates are absorbed.
func (g *digraph) addEdge(u, v int) {
	g.out[u][v] = struct{}{}
}

// hasEdge reports whether u→v is present.
func (g *digraph) hasEdge(u, v int) bool {
	_, ok := g.out[u][v]

	return ok
}

// removeEdge deletes u→v if present.
func (g *digraph) removeEdge(u, v int) {
	delete(g.out[u], v)
}

// outSorted returns the successors of u in ascending id order, so DFS
// traversal order never depends on map iteration.
func (g *digraph) outSorted(u int) []int {
	succ := make([]int, 0, len(g.out[u]))
	for v := range g.out[u] {
		succ = append(succ, v)
	}
	sort.Ints(succ)

	return succ
}

// Vertex visitation states for three-colour DFS.
const (
	white = iota
	gray
	black
)

// topoSort returns a topological ordering of all nodes (reverse post-order
// DFS). Nodes are rooted in ascending id order. Returns errCycleDetected
// when a back-edge is found. Complexity: O(V+E).
func (g *digraph) topoSort() ([]int, error) {
	state := make([]int, g.len())
	order := make([]int, 0, g.len())

	var visit func(u int) error
	visit = func(u int) error {
		if state[u] == gray {
			return errCycleDetected
		}
		if state[u] == black {
			return nil
		}
		state[u] = gray
		for _, v := range g.outSorted(u) {
			if err := visit(v); err != nil {
				return err
			}
		}
		state[u] = black
		order = append(order, u)

		return nil
	}
	for u := 0; u < g.len(); u++ {
		if state[u] == white {
			if err := visit(u); err != nil {
				return nil, err
			}
		}
	}
	// Reverse post-order → topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// simpleCycles enumerates the simple cycles reachable through DFS
// back-edges, each rotated so its smallest node id leads and deduplicated
// by signature. The result is sorted by signature for deterministic cycle
// repair. Complexity: O(V+E+C·L).
func (g *digraph) simpleCycles() [][]int {
	state := make([]int, g.len())
	var path []int
	seen := make(map[string]struct{})
	var cycles [][]int

	var visit func(u int)
	visit = func(u int) {
		state[u] = gray
		path = append(path, u)
		for _, v := range g.outSorted(u) {
			switch state[v] {
			case white:
				visit(v)
			case gray:
				// Back-edge: the cycle is path[idx(v):] closed at v.
				idx := 0
				for i, p := range path {
					if p == v {
						idx = i

						break
					}
				}
				recordCycle(path[idx:], seen, &cycles)
			}
		}
		path = path[:len(path)-1]
		state[u] = black
	}
	for u := 0; u < g.len(); u++ {
		if state[u] == white {
			visit(u)
		}
	}
	sort.Slice(cycles, func(i, j int) bool {
		return cycleSig(cycles[i]) < cycleSig(cycles[j])
	})

	return cycles
}

// recordCycle canonicalizes seq (rotation starting at the minimum id) and
// appends it when its signature is new.
func recordCycle(seq []int, seen map[string]struct{}, cycles *[][]int) {
	if len(seq) == 0 {
		return
	}
	minAt := 0
	for i, v := range seq {
		if v < seq[minAt] {
			minAt = i
		}
	}
	canon := make([]int, 0, len(seq))
	canon = append(canon, seq[minAt:]...)
	canon = append(canon, seq[:minAt]...)
	sig := cycleSig(canon)
	if _, dup := seen[sig]; dup {
		return
	}
	seen[sig] = struct{}{}
	*cycles = append(*cycles, canon)
}

// cycleSig joins node ids into a comparable signature.
func cycleSig(cycle []int) string {
	parts := make([]string, len(cycle))
	for i, v := range cycle {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

// reverseStrings reverses s in place and returns it.
func reverseStrings(s []string) []string {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}

	return s
}
