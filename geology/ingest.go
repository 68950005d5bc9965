package geology

import (
	"fmt"
	"strconv"
	"strings"

	"stratigraph/geom"
)

// PolygonFeature is one attributed polygon record from the geology map.
type PolygonFeature struct {
	Geometry geom.MultiPolygon
	Props    map[string]string
}

// LineFeature is one attributed linear record (a fault or fold trace).
type LineFeature struct {
	Geometry geom.MultiLine
	Props    map[string]string
}

// PointFeature is one attributed point record (a structural measurement).
type PointFeature struct {
	Point geom.Point
	Props map[string]string
}

// DissolveUnits merges geology polygon features into a UnitTable: one unit
// per unique unit name, its geometry the union of all polygon parts
// carrying that name. Ages parse to AgeUnknown when absent or malformed;
// the INTRUSIVE and SILL flags derive from substring matches on the
// description column.
//
// Returns ErrNoFeatures for an empty collection and ErrMissingColumn when
// a feature lacks the unit-name column.
// Complexity: O(f) over feature count.
func DissolveUnits(features []PolygonFeature, cm ColumnMap) (*UnitTable, error) {
	if len(features) == 0 {
		return nil, ErrNoFeatures
	}
	cm = cm.merged()

	table := &UnitTable{}
	merged := make(map[string]geom.MultiPolygon)
	for i, f := range features {
		name, ok := f.Props[cm.UnitName]
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q (geology feature %d)", ErrMissingColumn, cm.UnitName, i)
		}
		if _, seen := merged[name]; !seen {
			desc := strings.ToLower(f.Props[cm.Description])
			table.Add(Unit{
				Name:       name,
				MinAge:     parseAge(f.Props[cm.MinAge]),
				MaxAge:     parseAge(f.Props[cm.MaxAge]),
				Group:      f.Props[cm.Group],
				Supergroup: f.Props[cm.Supergroup],
				Intrusive:  strings.Contains(desc, "intrusi"),
				Sill:       strings.Contains(desc, "sill"),
			})
		}
		merged[name] = append(merged[name], f.Geometry...)
	}
	for i := range table.units {
		table.units[i].Geometry = merged[table.units[i].Name]
	}

	return table, nil
}

// Faults converts linear features into Fault records, assigning IDs in
// input order. Dip attributes parse to DipUnknown when absent.
// Complexity: O(f).
func Faults(features []LineFeature, cm ColumnMap) []Fault {
	cm = cm.merged()
	faults := make([]Fault, 0, len(features))
	for i, f := range features {
		faults = append(faults, Fault{
			ID:           i,
			Name:         f.Props[cm.FaultName],
			Geometry:     f.Geometry,
			Dip:          parseDip(f.Props[cm.FaultDip]),
			DipDirection: parseDip(f.Props[cm.FaultDipDir]),
		})
	}

	return faults
}

// Orientations converts point features into Orientation records. Features
// missing either the dip or dip-direction column are dropped; the count of
// dropped features is returned so callers can log it.
// Complexity: O(f).
func Orientations(features []PointFeature, cm ColumnMap) ([]Orientation, int) {
	cm = cm.merged()
	obs := make([]Orientation, 0, len(features))
	dropped := 0
	for _, f := range features {
		dip, errD := strconv.ParseFloat(f.Props[cm.Dip], 64)
		dir, errA := strconv.ParseFloat(f.Props[cm.DipDir], 64)
		if errD != nil || errA != nil {
			dropped++

			continue
		}
		obs = append(obs, Orientation{X: f.Point.X, Y: f.Point.Y, Dip: dip, DipDirection: dir})
	}

	return obs, dropped
}

// parseAge parses an age attribute, mapping absent or malformed values to
// AgeUnknown.
func parseAge(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return AgeUnknown
	}

	return v
}

// parseDip parses a dip attribute, mapping absent or malformed values to
// DipUnknown.
func parseDip(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return DipUnknown
	}

	return v
}
