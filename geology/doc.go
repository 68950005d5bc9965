// Package geology holds the survey data model: rock-stratigraphic units
// dissolved from the geology polygon map, fault traces, and point
// orientation observations, together with the configurable column-name
// mapping used to read attributed feature collections from a map data
// provider.
//
// Units are created once per unique unit name during ingestion and are
// immutable afterwards except for the Colour and Thickness fields, which
// later pipeline stages fill in.
package geology
