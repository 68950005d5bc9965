package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"stratigraph/contact"
	"stratigraph/geology"
	"stratigraph/strat"
)

// Config is one YAML project file: input paths, the attribute column
// mapping, and the tuning knobs of the pipeline. Zero-valued knobs take
// the package defaults when the config is applied.
type Config struct {
	// Input paths. Geology is required; the rest are optional.
	Geology      string `yaml:"geology"`
	Faults       string `yaml:"faults"`
	Orientations string `yaml:"orientations"`
	DTM          string `yaml:"dtm"`

	// Snapshot is where computed results are persisted.
	Snapshot string `yaml:"snapshot"`

	ColumnMap geology.ColumnMap `yaml:"column_map"`

	FaultBuffer      float64 `yaml:"fault_buffer"`
	ContactTolerance float64 `yaml:"contact_tolerance"`
	RayLength        float64 `yaml:"ray_length"`

	// Sorter selects the default sorter by name; TakeBest runs the
	// competitive selection instead.
	Sorter   string `yaml:"sorter"`
	TakeBest bool   `yaml:"take_best"`

	ColourSeed int64 `yaml:"colour_seed"`
}

// LoadConfig reads and decodes a YAML project file.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("project: reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("project: parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// ContactOptions translates the config knobs into contact extraction
// options, leaving unset knobs at their defaults.
func (c Config) ContactOptions() []contact.Option {
	var opts []contact.Option
	if c.FaultBuffer > 0 {
		opts = append(opts, contact.WithFaultBuffer(c.FaultBuffer))
	}
	if c.ContactTolerance > 0 {
		opts = append(opts, contact.WithTolerance(c.ContactTolerance))
	}

	return opts
}

// DefaultSorter resolves the configured sorter name against a built
// pipeline. An empty name selects nothing, leaving the pipeline's own
// fallback in charge. Contact-driven sorters capture the pipeline's
// contact table at construction, so call this only after
// Pipeline.ExtractContacts has run.
func (c Config) DefaultSorter(p *strat.Pipeline) (strat.Sorter, error) {
	switch c.Sorter {
	case "", "topological":
		// The pipeline's own fallback is the relationship-hint topological
		// sort, with hints derived from the contact table when none were
		// supplied, so neither name needs an explicit sorter here.
		return nil, nil
	case "age_based":
		return strat.NewAgeBased(), nil
	case "adjacency_greedy":
		return strat.NewAdjacencyGreedy(p.Contacts, p.Log), nil
	case "max_contacts":
		return strat.NewMaxContacts(p.Contacts, p.Log), nil
	case "observation_projection":
		var opts []strat.ObservationOption
		if c.RayLength > 0 {
			opts = append(opts, strat.WithRayLength(c.RayLength))
		}

		return p.ObservationSorter(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSorter, c.Sorter)
	}
}
