// Package raster provides the digital terrain model consumed by the
// observation-projection sorter: a dense row-major elevation grid sampled
// by nearest cell, with queries clamped to the grid edges so a lookup just
// outside the mapped area returns the nearest mapped elevation instead of
// failing.
package raster
