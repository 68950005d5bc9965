package strat

import "math"

// Approximate minimum-weight Hamiltonian path machinery shared by the
// MaxContacts and ObservationProjection sorters: deterministic
// nearest-neighbour construction followed by first-improvement 2-opt,
// over a dense row-major weight buffer w[u*n+v]. Weights must be finite
// and non-negative; absent edges carry a penalty weight larger than any
// real one so sparse graphs still admit a full path.

// maxTwoOptPasses bounds the improvement loop; each pass is O(n²) and the
// loop all but always converges far earlier.
const maxTwoOptPasses = 64

// nearestNeighbourPath builds an open Hamiltonian path over n nodes
// starting at start, repeatedly stepping to the cheapest unvisited node
// (ties to the lowest id). Complexity: O(n²).
func nearestNeighbourPath(w []float64, n, start int) []int {
	path := make([]int, 0, n)
	visited := make([]bool, n)
	cur := start
	path = append(path, cur)
	visited[cur] = true
	for len(path) < n {
		next, best := -1, math.Inf(1)
		for v := 0; v < n; v++ {
			if visited[v] {
				continue
			}
			if cost := w[cur*n+v]; cost < best {
				next, best = v, cost
			}
		}
		path = append(path, next)
		visited[next] = true
		cur = next
	}

	return path
}

// pathCost sums the edge weights along an open path. Complexity: O(n).
func pathCost(w []float64, n int, path []int) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += w[path[i-1]*n+path[i]]
	}

	return total
}

// twoOptPath runs deterministic first-improvement 2-opt on an open path:
// reversing the segment [i..k] is accepted whenever it strictly lowers the
// path cost, scanning i,k in ascending order and restarting after each
// accepted move. Endpoint moves drop one boundary term instead of
// exchanging it. Complexity: O(passes · n²).
func twoOptPath(w []float64, n int, path []int) []int {
	out := append([]int(nil), path...)
	m := len(out)
	for pass := 0; pass < maxTwoOptPasses; pass++ {
		improved := false
		for i := 0; i < m-1 && !improved; i++ {
			for k := i + 1; k < m && !improved; k++ {
				var oldCost, newCost float64
				if i > 0 {
					oldCost += w[out[i-1]*n+out[i]]
					newCost += w[out[i-1]*n+out[k]]
				}
				if k < m-1 {
					oldCost += w[out[k]*n+out[k+1]]
					newCost += w[out[i]*n+out[k+1]]
				}
				if newCost < oldCost-1e-12 {
					reverseSegment(out, i, k)
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}

	return out
}

// reverseSegment reverses path[i..k] in place.
func reverseSegment(path []int, i, k int) {
	for ; i < k; i, k = i+1, k-1 {
		path[i], path[k] = path[k], path[i]
	}
}

// directedChain converts a tour into a successor map keeping only
// first-visit edges: walking the tour in order, an edge u→v is recorded
// the first time v is reached. For a strict permutation this is the path's
// own edge chain; for tours with revisits it yields an acyclic chain.
func directedChain(tour []int) map[int]int {
	succ := make(map[int]int, len(tour))
	visited := make(map[int]struct{}, len(tour))
	if len(tour) == 0 {
		return succ
	}
	visited[tour[0]] = struct{}{}
	prev := tour[0]
	for _, v := range tour[1:] {
		if _, dup := visited[v]; !dup {
			visited[v] = struct{}{}
			if _, taken := succ[prev]; !taken {
				succ[prev] = v
			}
		}
		prev = v
	}

	return succ
}

// chainPreorder walks the successor chain from start in depth-first
// preorder (a chain has at most one successor per node, so preorder is the
// chain itself), guarding against accidental loops. Complexity: O(n).
func chainPreorder(succ map[int]int, start, n int) []int {
	order := make([]int, 0, n)
	visited := make(map[int]struct{}, n)
	for cur, ok := start, true; ok; {
		if _, dup := visited[cur]; dup {
			break
		}
		visited[cur] = struct{}{}
		order = append(order, cur)
		cur, ok = succ[cur]
	}

	return order
}

// completePreorder appends any node missing from pre (possible only for
// tours with revisits, where the first-visit chain can shed a branch), so
// callers always hold a full permutation of 0..n-1.
func completePreorder(pre []int, n int) []int {
	if len(pre) == n {
		return pre
	}
	seen := make(map[int]struct{}, len(pre))
	for _, v := range pre {
		seen[v] = struct{}{}
	}
	for v := 0; v < n; v++ {
		if _, ok := seen[v]; !ok {
			pre = append(pre, v)
		}
	}

	return pre
}

// reverseInts reverses s in place and returns it.
func reverseInts(s []int) []int {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}

	return s
}
