// Package project is the map data provider and persistence layer: YAML
// project configuration, loaders for the simple GeoJSON and ASCII-grid
// interchange formats, and schema-versioned binary snapshots of computed
// results.
//
// The loaders are deliberately narrow. They read the subset of each format
// that survey exports actually use and hand everything straight to the
// geology ingestion functions; full GIS I/O is out of scope.
package project
