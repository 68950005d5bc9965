package contact

import (
	"errors"

	"stratigraph/geom"
)

// Default extraction parameters, in map units.
const (
	// DefaultFaultBuffer is the radius around fault traces excluded from
	// contact computation.
	DefaultFaultBuffer = 50.0

	// DefaultTolerance is the coincidence tolerance for deciding that two
	// unit boundaries share a segment. Dissolved unit polygons share their
	// contact vertices exactly, so this is a snap epsilon for float noise,
	// not a search radius: a wide value makes whole nearby boundaries read
	// as contacts. Widen it explicitly via WithTolerance for sloppy inputs.
	DefaultTolerance = 1e-6

	// DefaultSnapTolerance is the classifier's geometry-cleanup snap:
	// contact lines are snapped to themselves and merged at this tolerance
	// to keep downstream line sampling robust.
	DefaultSnapTolerance = 1.0
)

// Contact types assigned by ExtractBasal.
const (
	// TypeBasal marks a contact between stratigraphically adjacent units.
	TypeBasal = "BASAL"

	// TypeAbnormal marks a contact spanning more than one stratigraphic
	// step: an unmapped intervening unit or faulting.
	TypeAbnormal = "ABNORMAL"
)

// Sentinel errors.
var (
	// ErrUnitNotInColumn indicates a contact references a unit missing from
	// the stratigraphic order; the column and the geology data disagree and
	// the caller must reconcile them. The error message names the unit.
	ErrUnitNotInColumn = errors.New("contact: unit not present in stratigraphic column")

	// ErrNilUnits indicates ExtractAll was invoked without a unit table.
	ErrNilUnits = errors.New("contact: unit table is nil")
)

// Row is one extracted contact: an unordered pair of adjacent units with
// their shared boundary geometry. Consumers must treat the pair
// symmetrically; no ordering between UnitName1 and UnitName2 is implied.
type Row struct {
	UnitName1 string
	UnitName2 string
	Geometry  geom.MultiLine
	Length    float64
}

// Table is the unit-adjacency table: one row per unordered unit pair with
// a non-empty shared boundary, in deterministic table order.
type Table []Row

// Pairs returns the (UnitName1, UnitName2) pairs of the table, the raw
// adjacency relation used as a sorter fallback when no external
// relationship hints are available.
func (t Table) Pairs() [][2]string {
	out := make([][2]string, len(t))
	for i, r := range t {
		out[i] = [2]string{r.UnitName1, r.UnitName2}
	}

	return out
}

// BasalRow is a classified contact.
type BasalRow struct {
	// ID is the stratigraphic index of the younger of the two units.
	ID int

	// BasalUnit is the unit name at index ID in the column.
	BasalUnit string

	// Distance is the absolute difference of the two stratigraphic indices.
	Distance int

	// Type is TypeBasal when Distance == 1, TypeAbnormal otherwise.
	Type string

	// Geometry is the contact geometry after snap-and-merge cleanup.
	Geometry geom.MultiLine
}

// BasalTable is the classified contact table.
type BasalTable []BasalRow

// BasalLength returns the summed geometric length of all BASAL rows, the
// objective the best-order selector maximises.
func (t BasalTable) BasalLength() float64 {
	var total float64
	for _, r := range t {
		if r.Type == TypeBasal {
			total += r.Geometry.Length()
		}
	}

	return total
}
