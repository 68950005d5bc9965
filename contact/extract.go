package contact

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"stratigraph/geology"
	"stratigraph/geom"
)

// Option configures ExtractAll.
type Option func(*options)

type options struct {
	faultBuffer float64
	tolerance   float64
	workers     int
}

func defaultOptions() options {
	return options{
		faultBuffer: DefaultFaultBuffer,
		tolerance:   DefaultTolerance,
		workers:     runtime.GOMAXPROCS(0),
	}
}

// WithFaultBuffer overrides the fault exclusion radius.
func WithFaultBuffer(r float64) Option {
	return func(o *options) { o.faultBuffer = r }
}

// WithTolerance overrides the boundary coincidence tolerance.
func WithTolerance(tol float64) Option {
	return func(o *options) { o.tolerance = tol }
}

// WithWorkers bounds the pairwise fan-out. Values below 1 select a serial
// run.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// ExtractAll computes the unit-adjacency table for the dissolved geology.
//
// Units flagged intrusive or sill are excluded entirely. When faults are
// supplied, every unit boundary segment within the fault buffer radius of a
// fault trace is removed first, so fault zones never register as unit-unit
// contacts. Every remaining unordered unit pair is then compared: the
// segments of one boundary coinciding with the other at the coincidence
// tolerance become one contact row with the merged geometry and its length.
//
// Pairs are evaluated concurrently; the returned table is in deterministic
// pair order (table order of the first unit, then of the second) and
// contains exactly one row per adjacent pair regardless of evaluation
// order. A unit with no contacts contributes no rows.
//
// Complexity: O(n²) pair comparisons, each O(s²) over boundary segments.
func ExtractAll(units *geology.UnitTable, faults []geology.Fault, opts ...Option) (Table, error) {
	if units == nil {
		return nil, ErrNilUnits
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Collect candidate units and their fault-trimmed boundaries.
	type candidate struct {
		name     string
		boundary geom.MultiLine
	}
	var faultLines geom.MultiLine
	for _, f := range faults {
		faultLines = append(faultLines, f.Geometry...)
	}
	var cands []candidate
	for i := 0; i < units.Len(); i++ {
		u := units.At(i)
		if u.Intrusive || u.Sill {
			continue
		}
		bnd := u.Geometry.Boundary()
		if len(faultLines) > 0 {
			trimmed, err := geom.TrimNear(bnd, faultLines, o.faultBuffer)
			if err != nil {
				return nil, fmt.Errorf("contact: trimming %q: %w", u.Name, err)
			}
			bnd = trimmed
		}
		cands = append(cands, candidate{name: u.Name, boundary: bnd})
	}

	// Pairwise shared-boundary extraction, fanned out across the group.
	// results is indexed by pair so the output order never depends on
	// goroutine scheduling.
	n := len(cands)
	results := make([]geom.MultiLine, n*n)
	var eg errgroup.Group
	eg.SetLimit(o.workers)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			i, j := i, j
			eg.Go(func() error {
				shared, err := geom.SharedBoundary(cands[i].boundary, cands[j].boundary, o.tolerance)
				if err != nil {
					return fmt.Errorf("contact: %q/%q: %w", cands[i].name, cands[j].name, err)
				}
				results[i*n+j] = shared

				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var table Table
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			shared := results[i*n+j]
			if shared.IsEmpty() {
				continue
			}
			table = append(table, Row{
				UnitName1: cands[i].name,
				UnitName2: cands[j].name,
				Geometry:  shared,
				Length:    shared.Length(),
			})
		}
	}

	return table, nil
}
