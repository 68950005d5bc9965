package strat

import (
	"math"
	"sort"

	"stratigraph/geology"
)

// AgeBased sorts units purely by mean recorded age, ascending (youngest
// first), grouped by the group column when any unit carries one. This is
// the one sorter with a hard data requirement: a table where every age is
// unknown is a configuration error, not a silent identity order.
type AgeBased struct{}

// NewAgeBased builds the age sorter.
func NewAgeBased() *AgeBased { return &AgeBased{} }

// Name implements Sorter.
func (s *AgeBased) Name() string { return "age_based" }

// Requires implements Sorter.
func (s *AgeBased) Requires() []Input { return []Input{NeedAges} }

// Sort implements Sorter. Units sort ascending by (group, meanAge) when a
// group attribute exists anywhere, else by meanAge alone; units with
// unknown ages sink to the old end, and name breaks remaining ties
// deterministically. Complexity: O(n log n).
func (s *AgeBased) Sort(units *geology.UnitTable) ([]string, error) {
	if err := ensureUnits(units); err != nil {
		return nil, err
	}

	type entry struct {
		name  string
		group string
		mean  float64
	}
	entries := make([]entry, 0, units.Len())
	hasAges := false
	hasGroups := false
	for i := 0; i < units.Len(); i++ {
		u := units.At(i)
		mean := u.MeanAge()
		if mean == geology.AgeUnknown {
			mean = math.Inf(1) // unknown ages sort oldest
		} else {
			hasAges = true
		}
		if u.Group != "" {
			hasGroups = true
		}
		entries = append(entries, entry{name: u.Name, group: u.Group, mean: mean})
	}
	if !hasAges {
		return nil, missing(NeedAges)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if hasGroups && a.group != b.group {
			return a.group < b.group
		}
		if a.mean != b.mean {
			return a.mean < b.mean
		}

		return a.name < b.name
	})

	order := make([]string, len(entries))
	for i, e := range entries {
		order[i] = e.name
	}

	return order, nil
}
