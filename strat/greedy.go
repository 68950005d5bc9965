package strat

import (
	"log/slog"
	"math"
	"sort"

	"stratigraph/contact"
	"stratigraph/geology"
)

// AdjacencyGreedy orders units by greedily walking the undirected contact
// graph, always preferring the neighbour with the fewest remaining
// neighbours and, among those, the longest contact. Edge weight is
// (maxLength+1) − length, so long, well-established contacts rank as the
// closest neighbours; a deliberate heuristic, not a provably optimal
// weighting. The walk builds a directed chain; the final order is the
// reverse topological sort of that chain.
type AdjacencyGreedy struct {
	contacts contact.Table
	log      *slog.Logger
}

// NewAdjacencyGreedy builds the sorter over a contact table. A nil logger
// selects slog.Default().
func NewAdjacencyGreedy(contacts contact.Table, log *slog.Logger) *AdjacencyGreedy {
	return &AdjacencyGreedy{contacts: contacts, log: logOrDefault(log)}
}

// Name implements Sorter.
func (s *AdjacencyGreedy) Name() string { return "adjacency_greedy" }

// Requires implements Sorter.
func (s *AdjacencyGreedy) Requires() []Input { return []Input{NeedContacts} }

// Sort implements Sorter. Complexity: O(n²) over units.
func (s *AdjacencyGreedy) Sort(units *geology.UnitTable) ([]string, error) {
	if err := ensureUnits(units); err != nil {
		return nil, err
	}
	if len(s.contacts) == 0 {
		return nil, missing(NeedContacts)
	}

	// Undirected weighted adjacency over all units; unknown names in the
	// contact table are ignored here (the classifier, not the sorter, is
	// where that mismatch is fatal).
	n := units.Len()
	id := make(map[string]int, n)
	for i := 0; i < n; i++ {
		id[units.At(i).Name] = i
	}
	var maxLen float64
	for _, r := range s.contacts {
		if r.Length > maxLen {
			maxLen = r.Length
		}
	}
	weight := make(map[[2]int]float64)
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}
	for _, r := range s.contacts {
		u, okU := id[r.UnitName1]
		v, okV := id[r.UnitName2]
		if !okU || !okV || u == v {
			continue
		}
		w := (maxLen + 1) - r.Length
		if prev, dup := weight[edgeKey(u, v)]; !dup || w < prev {
			weight[edgeKey(u, v)] = w
		}
		adj[u][v] = struct{}{}
		adj[v][u] = struct{}{}
	}

	// Greedy lowest-degree walk building a directed chain.
	chain := newDigraph()
	for i := 0; i < n; i++ {
		chain.node(units.At(i).Name)
	}
	visited := make([]bool, n)
	remaining := func(u int) int {
		c := 0
		for v := range adj[u] {
			if !visited[v] {
				c++
			}
		}

		return c
	}
	// lowestDegree picks the unvisited node with the fewest unvisited
	// neighbours, ties to table order.
	lowestDegree := func() int {
		best, bestDeg := -1, math.MaxInt
		for u := 0; u < n; u++ {
			if visited[u] {
				continue
			}
			if d := remaining(u); d < bestDeg {
				best, bestDeg = u, d
			}
		}

		return best
	}

	cur := lowestDegree()
	visited[cur] = true
	for done := 1; done < n; done++ {
		next := -1
		bestDeg, bestW := math.MaxInt, math.Inf(1)
		for _, v := range sortedSet(adj[cur]) {
			if visited[v] {
				continue
			}
			d, w := remaining(v), weight[edgeKey(cur, v)]
			if d < bestDeg || (d == bestDeg && w < bestW) {
				next, bestDeg, bestW = v, d, w
			}
		}
		if next >= 0 {
			chain.addEdge(cur, next)
		} else {
			// Dead end: restart the walk from the globally lowest-degree
			// remaining unit, with no chain edge across the break.
			next = lowestDegree()
		}
		visited[next] = true
		cur = next
	}

	ids, err := chain.topoSort()
	if err != nil {
		return nil, err // unreachable: the chain only links unvisited nodes
	}
	order := make([]string, len(ids))
	for i, u := range ids {
		order[i] = chain.labels[u]
	}

	return reverseStrings(order), nil
}

// edgeKey returns the canonical unordered pair key.
func edgeKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}

// sortedSet returns the members of set in ascending order.
func sortedSet(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}
