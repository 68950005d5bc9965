package geology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratigraph/geology"
	"stratigraph/geom"
)

func square(x0, y0 float64) geom.MultiPolygon {
	return geom.MultiPolygon{{Outer: geom.Ring{
		{X: x0, Y: y0}, {X: x0 + 1, Y: y0}, {X: x0 + 1, Y: y0 + 1}, {X: x0, Y: y0 + 1},
	}}}
}

func polyFeature(name string, props map[string]string, g geom.MultiPolygon) geology.PolygonFeature {
	if props == nil {
		props = map[string]string{}
	}
	props["UNITNAME"] = name

	return geology.PolygonFeature{Geometry: g, Props: props}
}

func TestDissolveUnits_MergesParts(t *testing.T) {
	feats := []geology.PolygonFeature{
		polyFeature("sandstone", nil, square(0, 0)),
		polyFeature("shale", nil, square(1, 0)),
		polyFeature("sandstone", nil, square(5, 5)),
	}
	table, err := geology.DissolveUnits(feats, geology.ColumnMap{})
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"sandstone", "shale"}, table.Names())

	u, err := table.Get("sandstone")
	require.NoError(t, err)
	assert.Len(t, u.Geometry, 2) // both parts dissolved into one unit
	assert.Equal(t, 0, u.LayerID)
}

func TestDissolveUnits_FlagsAndAges(t *testing.T) {
	feats := []geology.PolygonFeature{
		polyFeature("granite", map[string]string{
			"DESCRIPTION": "Intrusive granitoid body",
			"MIN_AGE":     "100",
			"MAX_AGE":     "200",
		}, square(0, 0)),
		polyFeature("dolerite", map[string]string{
			"DESCRIPTION": "Dolerite sill complex",
		}, square(1, 0)),
	}
	table, err := geology.DissolveUnits(feats, geology.ColumnMap{})
	require.NoError(t, err)

	granite, _ := table.Get("granite")
	assert.True(t, granite.Intrusive)
	assert.False(t, granite.Sill)
	assert.InDelta(t, 150.0, granite.MeanAge(), 1e-12)

	dolerite, _ := table.Get("dolerite")
	assert.True(t, dolerite.Sill)
	assert.Equal(t, geology.AgeUnknown, dolerite.MinAge)
	assert.Equal(t, geology.AgeUnknown, dolerite.MeanAge())
}

func TestDissolveUnits_Errors(t *testing.T) {
	_, err := geology.DissolveUnits(nil, geology.ColumnMap{})
	assert.ErrorIs(t, err, geology.ErrNoFeatures)

	_, err = geology.DissolveUnits([]geology.PolygonFeature{
		{Geometry: square(0, 0), Props: map[string]string{"OTHER": "x"}},
	}, geology.ColumnMap{})
	assert.ErrorIs(t, err, geology.ErrMissingColumn)
	assert.Contains(t, err.Error(), "UNITNAME")
}

func TestDissolveUnits_CustomColumnMap(t *testing.T) {
	feats := []geology.PolygonFeature{{
		Geometry: square(0, 0),
		Props:    map[string]string{"code": "basalt"},
	}}
	table, err := geology.DissolveUnits(feats, geology.ColumnMap{UnitName: "code"})
	require.NoError(t, err)
	assert.Equal(t, []string{"basalt"}, table.Names())
}

func TestFaults_ParsesDips(t *testing.T) {
	faults := geology.Faults([]geology.LineFeature{
		{
			Geometry: geom.MultiLine{{{X: 0, Y: 0}, {X: 10, Y: 0}}},
			Props:    map[string]string{"NAME": "f1", "DIP": "60", "DIPDIR": "090"},
		},
		{
			Geometry: geom.MultiLine{{{X: 0, Y: 5}, {X: 10, Y: 5}}},
			Props:    map[string]string{"NAME": "f2"},
		},
	}, geology.ColumnMap{})

	require.Len(t, faults, 2)
	assert.Equal(t, 0, faults[0].ID)
	assert.Equal(t, 60.0, faults[0].Dip)
	assert.Equal(t, 90.0, faults[0].DipDirection)
	assert.Equal(t, geology.DipUnknown, faults[1].Dip)
}

func TestOrientations_DropsIncomplete(t *testing.T) {
	obs, dropped := geology.Orientations([]geology.PointFeature{
		{Point: geom.Point{X: 1, Y: 2}, Props: map[string]string{"DIP": "45", "DIPDIR": "90"}},
		{Point: geom.Point{X: 3, Y: 4}, Props: map[string]string{"DIP": "30"}},
	}, geology.ColumnMap{})

	require.Len(t, obs, 1)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, 45.0, obs[0].Dip)
	assert.Equal(t, geom.Point{X: 1, Y: 2}, obs[0].Point())
}

func TestUnitTable_AddRejectsDuplicates(t *testing.T) {
	var table geology.UnitTable
	assert.True(t, table.Add(geology.Unit{Name: "a"}))
	assert.False(t, table.Add(geology.Unit{Name: "a"}))
	assert.Equal(t, 1, table.Len())
}

func TestUnitTable_SettersValidateName(t *testing.T) {
	var table geology.UnitTable
	table.Add(geology.Unit{Name: "a"})

	require.NoError(t, table.SetColour("a", "#ff0000"))
	require.NoError(t, table.SetThickness("a", 120))
	u, _ := table.Get("a")
	assert.Equal(t, "#ff0000", u.Colour)
	assert.Equal(t, 120.0, u.Thickness)

	assert.ErrorIs(t, table.SetColour("zz", "#fff"), geology.ErrUnitNotFound)
	assert.ErrorIs(t, table.SetThickness("zz", 1), geology.ErrUnitNotFound)
}
