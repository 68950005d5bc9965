// Package colour assigns display colours and sequential identifiers to
// stratigraphic units.
//
// Colour assignment is deterministic: the same unit table and seed always
// produce the same palette, so plots and snapshots stay comparable across
// runs. Units that already carry a colour keep it.
package colour
