package main

import (
	"fmt"
	"log/slog"

	"stratigraph/project"
	"stratigraph/strat"
)

// loadPipeline reads the project file, loads every input it names and
// extracts the contact table, leaving the pipeline ready to sort.
func loadPipeline() (project.Config, *strat.Pipeline, error) {
	cfg, err := project.LoadConfig(rootFlags.configPath)
	if err != nil {
		return project.Config{}, nil, err
	}
	p, err := project.Build(cfg, slog.Default())
	if err != nil {
		return project.Config{}, nil, err
	}
	if err := p.ExtractContacts(cfg.ContactOptions()...); err != nil {
		return project.Config{}, nil, fmt.Errorf("extracting contacts: %w", err)
	}
	sorter, err := cfg.DefaultSorter(p)
	if err != nil {
		return project.Config{}, nil, err
	}
	p.DefaultSorter = sorter

	return cfg, p, nil
}
