package strat

import (
	"log/slog"

	"stratigraph/contact"
	"stratigraph/geology"
	"stratigraph/raster"
)

// Pipeline wires the core end to end over one immutable project snapshot:
// dissolved units, faults, optional orientation data and DTM, optional
// external relationship hints, and the extracted contact table. The
// stratigraphic column and classified contacts are replaced wholesale by
// each computation; nothing is patched incrementally.
type Pipeline struct {
	Units         *geology.UnitTable
	Faults        []geology.Fault
	Orientations  []geology.Orientation
	DTM           *raster.Grid
	Relationships []Relationship
	Contacts      contact.Table

	// DefaultSorter runs when the selector is bypassed; nil selects the
	// relationship-hint topological sort.
	DefaultSorter Sorter

	Log *slog.Logger

	// Column and Basal hold the most recent results.
	Column []string
	Basal  contact.BasalTable
}

// ExtractContacts rebuilds the contact table from the current geology and
// faults. Any previous table is discarded wholesale.
func (p *Pipeline) ExtractContacts(opts ...contact.Option) error {
	table, err := contact.ExtractAll(p.Units, p.Faults, opts...)
	if err != nil {
		return err
	}
	p.Contacts = table

	return nil
}

// StratigraphicOrder computes and stores the stratigraphic column.
//
// With takeBest, exactly four sorters compete (Topological, AgeBased,
// AdjacencyGreedy and MaxContacts) and the order with the greatest summed
// basal contact length wins. Historically the fourth slot belonged to a
// second hint-based topological sorter; that variant is folded into
// Topological here, so MaxContacts competes in its place. Without takeBest,
// DefaultSorter runs alone. When no external relationship hints were
// supplied, the topological sorter falls back to hints derived from the
// extracted contact table.
func (p *Pipeline) StratigraphicOrder(takeBest bool) ([]string, error) {
	log := logOrDefault(p.Log)
	rel := p.Relationships
	if len(rel) == 0 {
		rel = RelationshipsFromContacts(p.Contacts, p.Units)
		log.Info("no relationship hints supplied, deriving from contact table",
			"relationships", len(rel))
	}

	if takeBest {
		sel, err := SelectBest(p.Units, p.Contacts, []Sorter{
			NewTopological(rel, log),
			NewAgeBased(),
			NewAdjacencyGreedy(p.Contacts, log),
			NewMaxContacts(p.Contacts, log),
		}, log)
		if err != nil {
			return nil, err
		}
		p.Column = sel.Order

		return sel.Order, nil
	}

	sorter := p.DefaultSorter
	if sorter == nil {
		sorter = NewTopological(rel, log)
	}
	order, err := sorter.Sort(p.Units)
	if err != nil {
		return nil, err
	}
	p.Column = order

	return order, nil
}

// ClassifyContacts classifies the contact table against the stored column
// and retains the result.
func (p *Pipeline) ClassifyContacts() (contact.BasalTable, error) {
	basal, err := contact.ExtractBasal(p.Contacts, p.Column)
	if err != nil {
		return nil, err
	}
	p.Basal = basal

	return basal, nil
}

// ObservationSorter builds the observation-projection sorter over the
// pipeline's data, for use as DefaultSorter when orientation coverage and
// a DTM are available.
func (p *Pipeline) ObservationSorter(opts ...ObservationOption) Sorter {
	return NewObservationProjection(p.Contacts, p.Orientations, p.DTM, p.Log, opts...)
}

// RelationshipsFromContacts derives younger-over-older hints from raw
// contact adjacency when no external relationship provider ran. Direction
// comes from mean ages when both are known (younger first); otherwise
// unit-table order stands in. The hints are exactly as trustworthy as the
// ages behind them, which is why the selector exists.
func RelationshipsFromContacts(contacts contact.Table, units *geology.UnitTable) []Relationship {
	if units == nil {
		return nil
	}
	rel := make([]Relationship, 0, len(contacts))
	pos := make(map[string]int, units.Len())
	for i := 0; i < units.Len(); i++ {
		pos[units.At(i).Name] = i
	}
	for _, r := range contacts {
		u1, ok1 := units.Get(r.UnitName1)
		u2, ok2 := units.Get(r.UnitName2)
		if ok1 != nil || ok2 != nil {
			continue
		}
		younger, older := r.UnitName1, r.UnitName2
		m1, m2 := u1.MeanAge(), u2.MeanAge()
		switch {
		case m1 != geology.AgeUnknown && m2 != geology.AgeUnknown && m2 < m1:
			younger, older = r.UnitName2, r.UnitName1
		case (m1 == geology.AgeUnknown || m2 == geology.AgeUnknown) && pos[r.UnitName2] < pos[r.UnitName1]:
			younger, older = r.UnitName2, r.UnitName1
		}
		rel = append(rel, Relationship{Younger: younger, Older: older})
	}

	return rel
}
