// Package contact implements the geometry adjacency extractor and the
// basal contact classifier.
//
// ExtractAll computes the shared boundary between every unordered pair of
// non-intrusive unit polygons, after trimming unit boundaries inside fault
// buffer zones, producing the unit-adjacency table every stratigraphic
// sorter draws on. The pairwise loop is the dominant cost centre of the
// pipeline and fans out across an errgroup; output content is independent
// of pair evaluation order.
//
// ExtractBasal classifies each contact against a chosen stratigraphic
// order: contacts between units one stratigraphic step apart are BASAL,
// anything else is ABNORMAL. A unit present in the contact table but
// absent from the order is a hard data-inconsistency error.
package contact
