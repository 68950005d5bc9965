package project

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"stratigraph/geology"
	"stratigraph/geom"
)

// FeatureSet is the decoded content of one GeoJSON feature collection,
// split by geometry kind so each slice can feed the matching geology
// ingestion function.
type FeatureSet struct {
	Polygons []geology.PolygonFeature
	Lines    []geology.LineFeature
	Points   []geology.PointFeature
}

type geoCollection struct {
	Type     string       `json:"type"`
	Features []geoFeature `json:"features"`
}

type geoFeature struct {
	Type       string         `json:"type"`
	Geometry   geoGeometry    `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type geoGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// LoadFeatures reads a GeoJSON feature collection supporting the Point,
// LineString, MultiLineString, Polygon and MultiPolygon geometry types.
// Property values are stringified, since the geology column mapping works
// on text attributes.
func LoadFeatures(path string) (*FeatureSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("project: reading features: %w", err)
	}
	var col geoCollection
	if err := json.Unmarshal(raw, &col); err != nil {
		return nil, fmt.Errorf("project: parsing features %s: %w", path, err)
	}

	set := &FeatureSet{}
	for i, f := range col.Features {
		props := stringProps(f.Properties)
		switch f.Geometry.Type {
		case "Point":
			var c []float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &c); err != nil || len(c) < 2 {
				return nil, badCoords(path, i, err)
			}
			set.Points = append(set.Points, geology.PointFeature{
				Point: geom.Point{X: c[0], Y: c[1]},
				Props: props,
			})
		case "LineString":
			var c [][]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &c); err != nil {
				return nil, badCoords(path, i, err)
			}
			set.Lines = append(set.Lines, geology.LineFeature{
				Geometry: geom.MultiLine{lineFromCoords(c)},
				Props:    props,
			})
		case "MultiLineString":
			var c [][][]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &c); err != nil {
				return nil, badCoords(path, i, err)
			}
			ml := make(geom.MultiLine, 0, len(c))
			for _, part := range c {
				ml = append(ml, lineFromCoords(part))
			}
			set.Lines = append(set.Lines, geology.LineFeature{Geometry: ml, Props: props})
		case "Polygon":
			var c [][][]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &c); err != nil {
				return nil, badCoords(path, i, err)
			}
			set.Polygons = append(set.Polygons, geology.PolygonFeature{
				Geometry: geom.MultiPolygon{polygonFromCoords(c)},
				Props:    props,
			})
		case "MultiPolygon":
			var c [][][][]float64
			if err := json.Unmarshal(f.Geometry.Coordinates, &c); err != nil {
				return nil, badCoords(path, i, err)
			}
			mp := make(geom.MultiPolygon, 0, len(c))
			for _, part := range c {
				mp = append(mp, polygonFromCoords(part))
			}
			set.Polygons = append(set.Polygons, geology.PolygonFeature{Geometry: mp, Props: props})
		default:
			return nil, fmt.Errorf("%w: %q (feature %d in %s)",
				ErrUnsupportedGeometry, f.Geometry.Type, i, path)
		}
	}

	return set, nil
}

func badCoords(path string, i int, err error) error {
	return fmt.Errorf("project: feature %d in %s: malformed coordinates: %w", i, path, err)
}

// stringProps flattens JSON property values to the text attributes the
// column mapping expects.
func stringProps(props map[string]any) map[string]string {
	out := make(map[string]string, len(props))
	for k, v := range props {
		switch t := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = t
		case float64:
			out[k] = strconv.FormatFloat(t, 'g', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(t)
		default:
			out[k] = fmt.Sprint(t)
		}
	}

	return out
}

func lineFromCoords(c [][]float64) geom.Line {
	ln := make(geom.Line, 0, len(c))
	for _, pt := range c {
		if len(pt) < 2 {
			continue
		}
		ln = append(ln, geom.Point{X: pt[0], Y: pt[1]})
	}

	return ln
}

// polygonFromCoords converts GeoJSON rings, dropping each ring's closing
// duplicate vertex. The first ring is the outer boundary, the rest holes.
func polygonFromCoords(c [][][]float64) geom.Polygon {
	var p geom.Polygon
	for ri, ringCoords := range c {
		ring := geom.Ring(lineFromCoords(ringCoords))
		if n := len(ring); n > 1 && ring[0] == ring[n-1] {
			ring = ring[:n-1]
		}
		if ri == 0 {
			p.Outer = ring
		} else {
			p.Holes = append(p.Holes, ring)
		}
	}

	return p
}
