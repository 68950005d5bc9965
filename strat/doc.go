// Package strat implements the stratigraphic sorter family and the
// best-order selector.
//
// Five heuristics share one contract: Sorter.Sort(units) returns a total
// order of unit names, index 0 youngest. Each declares the inputs it
// requires, validated at call time:
//
//   - Topological           : directed hint graph, cycle repair, topo sort.
//   - AgeBased              : ascending (group, mean age).
//   - AdjacencyGreedy       : lowest-degree walk over the contact graph.
//   - MaxContacts           : approximate minimum-weight Hamiltonian path
//     over inverse contact lengths.
//   - ObservationProjection : dip-projected younger/older evidence from
//     orientation observations and the DTM, resolved as a Hamiltonian path.
//
// No single heuristic is reliable across map styles, so SelectBest runs a
// fixed subset and scores each candidate order by the total geometric
// length of the contacts it classifies as BASAL: more basal-contact length
// means fewer spurious multi-unit jumps. The graph machinery here is a
// deliberate explicit adjacency-list implementation; orders are always
// full permutations of the unit table.
package strat
