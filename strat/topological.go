package strat

import (
	"log/slog"

	"stratigraph/geology"
)

// Topological sorts units by topologically ordering a directed graph of
// hinted younger-over-older relationships, typically supplied by an
// external adjacency tool or derived from the contact table.
//
// Cycles in the hint graph are repaired, not fatal: every enumerated
// simple cycle loses the edge between its first two listed nodes and a
// warning is logged. That tie-break is arbitrary bookkeeping, not a
// geological rule. Units never mentioned by a relationship still appear in
// the result, so the order is always a full permutation.
type Topological struct {
	rel []Relationship
	log *slog.Logger
}

// NewTopological builds the sorter over the given relationship hints.
// A nil logger selects slog.Default().
func NewTopological(rel []Relationship, log *slog.Logger) *Topological {
	return &Topological{rel: rel, log: logOrDefault(log)}
}

// Name implements Sorter.
func (s *Topological) Name() string { return "topological" }

// Requires implements Sorter.
func (s *Topological) Requires() []Input { return []Input{NeedRelationships} }

// Sort implements Sorter. Node keys are the units' numeric layer ids
// (insertion order), labels their names; one directed edge per
// relationship, younger→older, so the topological order reads youngest
// first. Relationships naming unknown units are skipped with a log entry.
//
// Complexity: O(V+E) per repair round, with at most E rounds.
func (s *Topological) Sort(units *geology.UnitTable) ([]string, error) {
	if err := ensureUnits(units); err != nil {
		return nil, err
	}
	if len(s.rel) == 0 {
		return nil, missing(NeedRelationships)
	}

	// One node per unit in layer-id order, then one edge per hint.
	g := newDigraph()
	for i := 0; i < units.Len(); i++ {
		g.node(units.At(i).Name)
	}
	for _, r := range s.rel {
		uy, okY := g.index[r.Younger]
		uo, okO := g.index[r.Older]
		if !okY || !okO {
			s.log.Info("skipping relationship naming unknown unit",
				"younger", r.Younger, "older", r.Older)

			continue
		}
		if uy == uo {
			continue
		}
		g.addEdge(uy, uo)
	}

	// Cycle repair: drop the first edge of each enumerated cycle until the
	// graph is acyclic. Each round removes at least one edge, so the loop
	// terminates.
	for {
		cycles := g.simpleCycles()
		if len(cycles) == 0 {
			break
		}
		removed := 0
		for _, c := range cycles {
			if len(c) < 2 {
				continue
			}
			u, v := c[0], c[1]
			if g.hasEdge(u, v) {
				g.removeEdge(u, v)
				removed++
				s.log.Warn("dropping contact edge to break stratigraphic cycle",
					"from", g.labels[u], "to", g.labels[v])
			}
		}
		if removed == 0 {
			break
		}
	}

	ids, err := g.topoSort()
	if err != nil {
		// Unreachable after repair; surface it rather than loop forever.
		return nil, err
	}
	order := make([]string, len(ids))
	for i, id := range ids {
		order[i] = g.labels[id]
	}

	return order, nil
}
