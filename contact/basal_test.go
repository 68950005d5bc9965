package contact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratigraph/contact"
	"stratigraph/geom"
)

func line(pts ...geom.Point) geom.MultiLine {
	return geom.MultiLine{geom.Line(pts)}
}

func TestExtractBasal_ThreeUnitColumn(t *testing.T) {
	// Column [A,B,C] with contacts (A,B) and (A,C): (A,B) is BASAL at
	// distance 1, (A,C) ABNORMAL at distance 2.
	tab := contact.Table{
		{UnitName1: "A", UnitName2: "B", Geometry: line(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}), Length: 1},
		{UnitName1: "A", UnitName2: "C", Geometry: line(geom.Point{X: 0, Y: 5}, geom.Point{X: 2, Y: 5}), Length: 2},
	}

	got, err := contact.ExtractBasal(tab, []string{"A", "B", "C"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 0, got[0].ID)
	assert.Equal(t, "A", got[0].BasalUnit)
	assert.Equal(t, 1, got[0].Distance)
	assert.Equal(t, contact.TypeBasal, got[0].Type)

	assert.Equal(t, 0, got[1].ID)
	assert.Equal(t, "A", got[1].BasalUnit)
	assert.Equal(t, 2, got[1].Distance)
	assert.Equal(t, contact.TypeAbnormal, got[1].Type)
}

func TestExtractBasal_DistanceInvariant(t *testing.T) {
	column := []string{"w", "x", "y", "z"}
	tab := contact.Table{
		{UnitName1: "z", UnitName2: "y", Geometry: line(geom.Point{}, geom.Point{X: 1})},
		{UnitName1: "w", UnitName2: "z", Geometry: line(geom.Point{}, geom.Point{X: 1})},
		{UnitName1: "x", UnitName2: "w", Geometry: line(geom.Point{}, geom.Point{X: 1})},
	}

	got, err := contact.ExtractBasal(tab, column)
	require.NoError(t, err)
	index := map[string]int{"w": 0, "x": 1, "y": 2, "z": 3}
	for i, r := range got {
		want := index[tab[i].UnitName1] - index[tab[i].UnitName2]
		if want < 0 {
			want = -want
		}
		assert.Equal(t, want, r.Distance)
		assert.Equal(t, r.Distance == 1, r.Type == contact.TypeBasal)
	}
}

func TestExtractBasal_MissingUnitFails(t *testing.T) {
	tab := contact.Table{
		{UnitName1: "A", UnitName2: "ghost", Geometry: line(geom.Point{}, geom.Point{X: 1})},
	}
	_, err := contact.ExtractBasal(tab, []string{"A", "B"})
	require.ErrorIs(t, err, contact.ErrUnitNotInColumn)
	assert.Contains(t, err.Error(), "ghost")
}

func TestExtractBasal_MergesGeometry(t *testing.T) {
	// Two touching parts of one contact merge into a single polyline.
	tab := contact.Table{{
		UnitName1: "A",
		UnitName2: "B",
		Geometry: geom.MultiLine{
			{{X: 0, Y: 0}, {X: 1, Y: 0}},
			{{X: 1, Y: 0}, {X: 2, Y: 0}},
		},
	}}
	got, err := contact.ExtractBasal(tab, []string{"A", "B"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0].Geometry, 1)
	assert.InDelta(t, 2.0, got[0].Geometry.Length(), 1e-12)
}

func TestBasalTable_BasalLength(t *testing.T) {
	tab := contact.BasalTable{
		{Type: contact.TypeBasal, Geometry: line(geom.Point{}, geom.Point{X: 3})},
		{Type: contact.TypeAbnormal, Geometry: line(geom.Point{}, geom.Point{X: 100})},
		{Type: contact.TypeBasal, Geometry: line(geom.Point{}, geom.Point{X: 2})},
	}
	assert.InDelta(t, 5.0, tab.BasalLength(), 1e-12)
}
