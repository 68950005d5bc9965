package strat

import (
	"errors"
	"fmt"
	"log/slog"

	"stratigraph/geology"
)

// Input identifies a sorter prerequisite, used in configuration-error
// reporting and in the Requires declaration of each sorter.
type Input int

// Sorter prerequisites.
const (
	NeedContacts Input = iota
	NeedAges
	NeedRelationships
	NeedOrientations
	NeedDTM
)

// String returns the prerequisite name used in error messages.
func (i Input) String() string {
	switch i {
	case NeedContacts:
		return "contact table"
	case NeedAges:
		return "unit age columns"
	case NeedRelationships:
		return "unit relationship table"
	case NeedOrientations:
		return "orientation observations"
	case NeedDTM:
		return "digital terrain model"
	default:
		return "unknown input"
	}
}

// Sentinel errors for the sorter family.
var (
	// ErrMissingInput is a configuration error: a sorter was invoked without
	// a required input. The wrapped message names the input.
	ErrMissingInput = errors.New("strat: required sorter input not supplied")

	// ErrNoUnits indicates Sort was invoked on a nil or empty unit table.
	ErrNoUnits = errors.New("strat: unit table is nil or empty")

	// ErrNoSorters indicates SelectBest was invoked with no candidates.
	ErrNoSorters = errors.New("strat: no sorters supplied")
)

// Sorter is the common contract of the heuristic family. Sort is a pure
// function of the sorter's configured inputs and the units argument; it
// never mutates units and always returns a permutation of all unit names,
// youngest first.
type Sorter interface {
	// Name identifies the heuristic in logs and selection results.
	Name() string

	// Requires lists the inputs this sorter validates at call time.
	Requires() []Input

	// Sort returns the inferred stratigraphic order.
	Sort(units *geology.UnitTable) ([]string, error)
}

// Relationship is one hinted younger-over-older unit pair, typically
// produced by an external topology tool or derived from the contact table.
type Relationship struct {
	Younger string
	Older   string
}

// missing wraps ErrMissingInput with the name of the absent input.
func missing(in Input) error {
	return fmt.Errorf("%w: %s", ErrMissingInput, in)
}

// ensureUnits validates the common units precondition.
func ensureUnits(units *geology.UnitTable) error {
	if units == nil || units.Len() == 0 {
		return ErrNoUnits
	}

	return nil
}

// logOrDefault returns log, or the process default logger when nil.
func logOrDefault(log *slog.Logger) *slog.Logger {
	if log != nil {
		return log
	}

	return slog.Default()
}
