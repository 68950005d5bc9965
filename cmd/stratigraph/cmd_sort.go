package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stratigraph/colour"
	"stratigraph/contact"
	"stratigraph/project"
	"stratigraph/strat"
)

var sortFlags struct {
	takeBest bool
}

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Infer the stratigraphic column and classify basal contacts",
	Long: `Sort loads the project inputs, extracts unit contacts, infers the
stratigraphic column and prints it youngest first, one unit per line with
its assigned colour and basal contact classification.

With --take-best the topological, age-based, adjacency-greedy and
max-contacts sorters compete and the order with the greatest summed basal
contact length wins. Otherwise the project file's sorter runs alone.

When the project file names a snapshot path, the computed column and
classified contacts are persisted there.`,
	Args: cobra.NoArgs,
	RunE: runSort,
}

func init() {
	sortCmd.Flags().BoolVar(&sortFlags.takeBest, "take-best", false,
		"Run all sorters and keep the order with the most basal contact length")
}

func runSort(cmd *cobra.Command, _ []string) error {
	cfg, p, err := loadPipeline()
	if err != nil {
		return err
	}

	takeBest := cfg.TakeBest
	if cmd.Flags().Changed("take-best") {
		takeBest = sortFlags.takeBest
	}
	order, err := p.StratigraphicOrder(takeBest)
	if err != nil {
		return fmt.Errorf("sorting: %w", err)
	}
	basal, err := p.ClassifyContacts()
	if err != nil {
		return fmt.Errorf("classifying contacts: %w", err)
	}
	colour.Assign(p.Units, cfg.ColourSeed)

	basalBy := make(map[string]int)
	for _, r := range basal {
		if r.Type == contact.TypeBasal {
			basalBy[r.BasalUnit]++
		}
	}

	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	dim := color.New(color.Faint)
	green := color.New(color.FgGreen)
	fmt.Fprintf(out, "Stratigraphic column (%d units, youngest first):\n", len(order))
	for i, name := range order {
		u, err := p.Units.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%3d  %s  %s",
			i, bold.Sprint(name), dim.Sprint(u.Colour))
		if n := basalBy[name]; n > 0 {
			fmt.Fprintf(out, "  %s", green.Sprintf("basal×%d", n))
		}
		fmt.Fprintln(out)
	}
	length := basal.BasalLength()
	fmt.Fprintf(out, "Basal contact length: %.1f\n", length)

	if cfg.Snapshot != "" {
		snap := project.NewSnapshot(strat.Selection{
			Order:       order,
			Sorter:      sorterLabel(cfg, takeBest),
			BasalLength: length,
		}, basal)
		if err := snap.Save(cfg.Snapshot); err != nil {
			return err
		}
		fmt.Fprintf(out, "Snapshot written to %s\n", cfg.Snapshot)
	}

	return nil
}

func sorterLabel(cfg project.Config, takeBest bool) string {
	switch {
	case takeBest:
		return "take_best"
	case cfg.Sorter != "":
		return cfg.Sorter
	default:
		return "topological"
	}
}
