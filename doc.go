// Package stratigraph infers a 3D-model-ready stratigraphic description of a
// region from 2D geological survey data: polygon geology maps, fault lines,
// point orientation measurements and a digital terrain model.
//
// The pipeline runs leaf-first:
//
//	geology → contact.ExtractAll → strat sorters → strat.SelectBest → contact.ExtractBasal
//
// Packages:
//
//   - geom    : minimal 2D geometry kernel (polylines, polygons, ray casting).
//   - raster  : digital terrain model grid with nearest-cell sampling.
//   - geology : unit / fault / orientation data model and map ingestion.
//   - contact : unit-adjacency extraction and basal contact classification.
//   - strat   : the stratigraphic sorter family and the best-order selector.
//   - colour  : deterministic colour assignment for units.
//   - project : project configuration, feature loading and result snapshots.
//
// The cmd/stratigraph command wires the pipeline behind a CLI.
package stratigraph
