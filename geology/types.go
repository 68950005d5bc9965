package geology

import (
	"errors"

	"stratigraph/geom"
)

// AgeUnknown is the sentinel for an unrecorded minimum or maximum age.
const AgeUnknown = -1.0

// DipUnknown is the sentinel for an unrecorded fault dip or dip direction.
const DipUnknown = -999.0

// Sentinel errors for geology ingestion and table access.
var (
	// ErrUnitNotFound indicates a lookup for a unit name absent from the table.
	ErrUnitNotFound = errors.New("geology: unit not found")

	// ErrMissingColumn indicates an input feature lacked a required attribute
	// column; the error message names the column.
	ErrMissingColumn = errors.New("geology: missing attribute column")

	// ErrNoFeatures indicates ingestion was invoked on an empty collection.
	ErrNoFeatures = errors.New("geology: no input features")
)

// Unit is a named rock-stratigraphic entity: all polygon parts of the map
// sharing one unit name, dissolved into a single multipolygon.
type Unit struct {
	Name       string
	LayerID    int // numeric identifier, assigned in ingestion order
	MinAge     float64
	MaxAge     float64
	Group      string
	Supergroup string
	Geometry   geom.MultiPolygon

	// Intrusive and Sill are derived from the description text; flagged
	// units are excluded from stratigraphic contact computation.
	Intrusive bool
	Sill      bool

	// Colour and Thickness are filled in by later pipeline stages.
	Colour    string
	Thickness float64
}

// MeanAge returns (MinAge+MaxAge)/2, or AgeUnknown when either bound is
// unknown.
func (u Unit) MeanAge() float64 {
	if u.MinAge == AgeUnknown || u.MaxAge == AgeUnknown {
		return AgeUnknown
	}

	return (u.MinAge + u.MaxAge) / 2
}

// Fault is a linear structural feature used to trim unit polygons before
// contact extraction.
type Fault struct {
	ID           int
	Name         string
	Geometry     geom.MultiLine
	Dip          float64 // DipUnknown when unrecorded
	DipDirection float64 // DipUnknown when unrecorded
}

// Orientation is a point structural measurement: a dip/dip-direction pair
// observed at a surface location.
type Orientation struct {
	X, Y         float64
	Dip          float64 // degrees below horizontal
	DipDirection float64 // compass azimuth of steepest descent
}

// Point returns the observation location.
func (o Orientation) Point() geom.Point { return geom.Point{X: o.X, Y: o.Y} }

// UnitTable is an ordered collection of units, unique by name. The zero
// value is empty and ready to use. Order is ingestion order and defines
// the deterministic iteration order of every downstream algorithm.
type UnitTable struct {
	units []Unit
	index map[string]int
}

// Add appends a unit, assigning its LayerID from the table position.
// Adding a name already present replaces nothing and reports false.
func (t *UnitTable) Add(u Unit) bool {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if _, dup := t.index[u.Name]; dup {
		return false
	}
	u.LayerID = len(t.units)
	t.index[u.Name] = len(t.units)
	t.units = append(t.units, u)

	return true
}

// Len returns the number of units.
func (t *UnitTable) Len() int { return len(t.units) }

// At returns the unit at position i.
func (t *UnitTable) At(i int) Unit { return t.units[i] }

// Get returns the unit with the given name.
func (t *UnitTable) Get(name string) (Unit, error) {
	i, ok := t.index[name]
	if !ok {
		return Unit{}, ErrUnitNotFound
	}

	return t.units[i], nil
}

// Names returns the unit names in table order.
func (t *UnitTable) Names() []string {
	names := make([]string, len(t.units))
	for i, u := range t.units {
		names[i] = u.Name
	}

	return names
}

// SetColour records the colour assigned to the named unit.
func (t *UnitTable) SetColour(name, colour string) error {
	i, ok := t.index[name]
	if !ok {
		return ErrUnitNotFound
	}
	t.units[i].Colour = colour

	return nil
}

// SetThickness records the estimated thickness of the named unit.
func (t *UnitTable) SetThickness(name string, thickness float64) error {
	i, ok := t.index[name]
	if !ok {
		return ErrUnitNotFound
	}
	t.units[i].Thickness = thickness

	return nil
}
