package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stratigraph/contact"
)

var contactsFlags struct {
	classify bool
}

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Extract and print the unit contact table",
	Long: `Contacts loads the project inputs and prints every extracted contact:
the two units, the shared boundary length and, with --classify, the basal
or abnormal classification under the inferred column.`,
	Args: cobra.NoArgs,
	RunE: runContacts,
}

func init() {
	contactsCmd.Flags().BoolVar(&contactsFlags.classify, "classify", false,
		"Also sort the column and classify each contact")
}

func runContacts(cmd *cobra.Command, _ []string) error {
	cfg, p, err := loadPipeline()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	fmt.Fprintf(out, "%d contacts:\n", len(p.Contacts))

	if !contactsFlags.classify {
		for _, r := range p.Contacts {
			fmt.Fprintf(out, "  %s - %s  %.1f\n",
				bold.Sprint(r.UnitName1), bold.Sprint(r.UnitName2), r.Length)
		}

		return nil
	}

	if _, err := p.StratigraphicOrder(cfg.TakeBest); err != nil {
		return fmt.Errorf("sorting: %w", err)
	}
	basal, err := p.ClassifyContacts()
	if err != nil {
		return fmt.Errorf("classifying contacts: %w", err)
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	for i, r := range p.Contacts {
		label := green.Sprint(contact.TypeBasal)
		if basal[i].Type == contact.TypeAbnormal {
			label = red.Sprint(contact.TypeAbnormal)
		}
		fmt.Fprintf(out, "  %s - %s  %.1f  %s (distance %d)\n",
			bold.Sprint(r.UnitName1), bold.Sprint(r.UnitName2),
			r.Length, label, basal[i].Distance)
	}

	return nil
}
