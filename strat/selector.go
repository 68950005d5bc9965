package strat

import (
	"fmt"
	"log/slog"

	"stratigraph/contact"
	"stratigraph/geology"
)

// Selection is the outcome of the best-order selector: the winning order,
// the sorter that produced it and its summed basal contact length.
type Selection struct {
	Order       []string
	Sorter      string
	BasalLength float64
}

// SelectBest runs every candidate sorter, classifies the contact table
// under each resulting order and returns the order maximising the total
// geometric length of contacts classified BASAL. Basal-contact coverage is
// the objective proxy for geological plausibility: more basal length means
// fewer spurious multi-unit jumps. Ties keep the earlier sorter.
//
// Errors do not fall back: the first sorter or classification failure
// propagates, since a configuration or data-inconsistency error here
// signals a deeper data problem, not a heuristic miss.
func SelectBest(
	units *geology.UnitTable,
	contacts contact.Table,
	sorters []Sorter,
	log *slog.Logger,
) (Selection, error) {
	if len(sorters) == 0 {
		return Selection{}, ErrNoSorters
	}
	log = logOrDefault(log)

	var best Selection
	haveBest := false
	for _, s := range sorters {
		order, err := s.Sort(units)
		if err != nil {
			return Selection{}, fmt.Errorf("strat: sorter %s: %w", s.Name(), err)
		}
		basal, err := contact.ExtractBasal(contacts, order)
		if err != nil {
			return Selection{}, fmt.Errorf("strat: classifying under %s: %w", s.Name(), err)
		}
		length := basal.BasalLength()
		log.Info("sorter candidate scored", "sorter", s.Name(), "basal_length", length)
		if !haveBest || length > best.BasalLength {
			best = Selection{Order: order, Sorter: s.Name(), BasalLength: length}
			haveBest = true
		}
	}
	log.Info("selected stratigraphic order",
		"sorter", best.Sorter, "basal_length", best.BasalLength)

	return best, nil
}
