package project

import "errors"

// Sentinel errors for project loading and persistence.
var (
	// ErrUnsupportedGeometry indicates a GeoJSON geometry type outside the
	// supported subset; the error message names the type.
	ErrUnsupportedGeometry = errors.New("project: unsupported geometry type")

	// ErrBadGrid indicates a malformed ASCII-grid header or data block.
	ErrBadGrid = errors.New("project: malformed ascii grid")

	// ErrBadSnapshot indicates a snapshot with an unknown schema version.
	ErrBadSnapshot = errors.New("project: incompatible snapshot schema")

	// ErrUnknownSorter indicates a sorter name in the project file that no
	// sorter answers to.
	ErrUnknownSorter = errors.New("project: unknown sorter")
)
