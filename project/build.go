package project

import (
	"fmt"
	"log/slog"

	"stratigraph/geology"
	"stratigraph/raster"
	"stratigraph/strat"
)

// Build loads every input the config names and assembles the pipeline.
// Faults, orientations and the DTM are optional; their absence simply
// leaves the corresponding pipeline fields empty.
//
// The configured default sorter is NOT resolved here: sorters that read
// the contact table must be constructed after Pipeline.ExtractContacts has
// run. Callers resolve it with Config.DefaultSorter once contacts exist.
func Build(cfg Config, log *slog.Logger) (*strat.Pipeline, error) {
	if log == nil {
		log = slog.Default()
	}

	geo, err := LoadFeatures(cfg.Geology)
	if err != nil {
		return nil, err
	}
	units, err := geology.DissolveUnits(geo.Polygons, cfg.ColumnMap)
	if err != nil {
		return nil, fmt.Errorf("project: dissolving geology: %w", err)
	}
	log.Info("geology loaded", "features", len(geo.Polygons), "units", units.Len())

	var faults []geology.Fault
	if cfg.Faults != "" {
		fs, err := LoadFeatures(cfg.Faults)
		if err != nil {
			return nil, err
		}
		faults = geology.Faults(fs.Lines, cfg.ColumnMap)
		log.Info("faults loaded", "faults", len(faults))
	}

	var obs []geology.Orientation
	if cfg.Orientations != "" {
		ofs, err := LoadFeatures(cfg.Orientations)
		if err != nil {
			return nil, err
		}
		var dropped int
		obs, dropped = geology.Orientations(ofs.Points, cfg.ColumnMap)
		if dropped > 0 {
			log.Warn("orientation features missing dip columns dropped", "count", dropped)
		}
		log.Info("orientations loaded", "observations", len(obs))
	}

	var dtm *raster.Grid
	if cfg.DTM != "" {
		dtm, err = LoadGrid(cfg.DTM)
		if err != nil {
			return nil, err
		}
		log.Info("terrain model loaded", "cols", dtm.Cols(), "rows", dtm.Rows())
	}

	return &strat.Pipeline{
		Units:        units,
		Faults:       faults,
		Orientations: obs,
		DTM:          dtm,
		Log:          log,
	}, nil
}
