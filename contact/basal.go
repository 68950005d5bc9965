package contact

import (
	"fmt"

	"stratigraph/geom"
)

// ExtractBasal classifies every contact against the given stratigraphic
// column (index 0 = youngest).
//
// Precondition: every unit named by the table must appear in column; the
// first violation aborts with ErrUnitNotInColumn naming the unit. For each
// row, ID is the smaller of the two column indices, BasalUnit the name at
// that index, Distance the absolute index difference, and Type is BASAL
// exactly when Distance == 1. Contact geometry is snapped and merged at
// the 1-unit snap tolerance to keep downstream line sampling robust; all
// other contact columns are dropped.
//
// Complexity: O(r) over table rows plus the merge cost per row.
func ExtractBasal(t Table, column []string) (BasalTable, error) {
	index := make(map[string]int, len(column))
	for i, name := range column {
		index[name] = i
	}

	out := make(BasalTable, 0, len(t))
	for _, r := range t {
		idx1, ok := index[r.UnitName1]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnitNotInColumn, r.UnitName1)
		}
		idx2, ok := index[r.UnitName2]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnitNotInColumn, r.UnitName2)
		}

		id, dist := idx1, idx2-idx1
		if idx2 < idx1 {
			id, dist = idx2, idx1-idx2
		}
		typ := TypeAbnormal
		if dist == 1 {
			typ = TypeBasal
		}
		out = append(out, BasalRow{
			ID:        id,
			BasalUnit: column[id],
			Distance:  dist,
			Type:      typ,
			Geometry:  geom.MergeLines(r.Geometry, DefaultSnapTolerance),
		})
	}

	return out, nil
}
