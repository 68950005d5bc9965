package strat

import (
	"log/slog"
	"sort"

	"stratigraph/contact"
	"stratigraph/geology"
)

// maxContactsPenalty is the edge weight assigned to unit pairs with no
// qualifying contact. Normalized contact weights live in [0,1), so any
// value above 1 keeps penalty edges out of the path wherever a real
// contact exists.
const maxContactsPenalty = 2.0

// MaxContacts orders units along an approximate minimum-weight Hamiltonian
// path over the contact graph. Contact lengths are normalized to [0,1) by
// (max+1); edge weight is 1 − normalized, so the longest contacts are the
// cheapest edges of the tour. The tour is converted to a directed chain of
// first-visit edges and the reversed chain preorder becomes the order
// (the tour runs oldest→youngest internally; output is youngest first).
//
// Units with no qualifying contact cannot take part in the tour; they are
// appended at the old end of the order, sorted by mean age when known and
// by name otherwise, so the result is still a full permutation.
type MaxContacts struct {
	contacts contact.Table
	log      *slog.Logger
}

// NewMaxContacts builds the sorter over a contact table. A nil logger
// selects slog.Default().
func NewMaxContacts(contacts contact.Table, log *slog.Logger) *MaxContacts {
	return &MaxContacts{contacts: contacts, log: logOrDefault(log)}
}

// Name implements Sorter.
func (s *MaxContacts) Name() string { return "max_contacts" }

// Requires implements Sorter.
func (s *MaxContacts) Requires() []Input { return []Input{NeedContacts} }

// Sort implements Sorter. Complexity: O(n²) per 2-opt pass.
func (s *MaxContacts) Sort(units *geology.UnitTable) ([]string, error) {
	if err := ensureUnits(units); err != nil {
		return nil, err
	}
	if len(s.contacts) == 0 {
		return nil, missing(NeedContacts)
	}

	// Units that appear in at least one contact, in table order.
	inContacts := make(map[string]bool, units.Len())
	for _, r := range s.contacts {
		inContacts[r.UnitName1] = true
		inContacts[r.UnitName2] = true
	}
	var names []string
	var leftovers []string
	for i := 0; i < units.Len(); i++ {
		name := units.At(i).Name
		if inContacts[name] {
			names = append(names, name)
		} else {
			leftovers = append(leftovers, name)
		}
	}
	if len(leftovers) > 0 {
		s.log.Info("units without qualifying contacts appended at old end",
			"count", len(leftovers))
	}
	if len(names) == 0 {
		return appendByAge(nil, leftovers, units), nil
	}

	// Dense symmetric weight matrix over the connected units.
	n := len(names)
	id := make(map[string]int, n)
	for i, name := range names {
		id[name] = i
	}
	var maxLen float64
	for _, r := range s.contacts {
		if r.Length > maxLen {
			maxLen = r.Length
		}
	}
	w := make([]float64, n*n)
	for i := range w {
		w[i] = maxContactsPenalty
	}
	for _, r := range s.contacts {
		u, okU := id[r.UnitName1]
		v, okV := id[r.UnitName2]
		if !okU || !okV || u == v {
			continue
		}
		cost := 1 - r.Length/(maxLen+1)
		if cost < w[u*n+v] {
			w[u*n+v], w[v*n+u] = cost, cost
		}
	}

	tour := twoOptPath(w, n, nearestNeighbourPath(w, n, 0))
	chain := directedChain(tour)
	pre := completePreorder(chainPreorder(chain, tour[0], n), n)
	reverseInts(pre)

	order := make([]string, 0, units.Len())
	for _, u := range pre {
		order = append(order, names[u])
	}

	return appendByAge(order, leftovers, units), nil
}

// appendByAge appends leftover unit names to the old end of order, sorted
// ascending by mean age (unknown last) then name.
func appendByAge(order, leftovers []string, units *geology.UnitTable) []string {
	sort.SliceStable(leftovers, func(i, j int) bool {
		a, _ := units.Get(leftovers[i])
		b, _ := units.Get(leftovers[j])
		ma, mb := a.MeanAge(), b.MeanAge()
		switch {
		case ma == geology.AgeUnknown && mb == geology.AgeUnknown:
			return a.Name < b.Name
		case ma == geology.AgeUnknown:
			return false
		case mb == geology.AgeUnknown:
			return true
		case ma != mb:
			return ma < mb
		default:
			return a.Name < b.Name
		}
	})

	return append(order, leftovers...)
}
