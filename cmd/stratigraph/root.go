// stratigraph is the CLI: sort (infer the stratigraphic column) and
// contacts (print the extracted contact table).
//
// Usage:
//
//	stratigraph sort --config project.yaml [--take-best]
//	stratigraph contacts --config project.yaml [--classify]
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	verbose    bool
}

var rootCmd = &cobra.Command{
	Use:   "stratigraph",
	Short: "Stratigraphic column inference from geological map data",
	Long: "Stratigraph extracts unit contacts from a geological map, infers the\n" +
		"stratigraphic column with a set of competing sorters and classifies\n" +
		"each contact as basal or abnormal under the chosen column.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(*cobra.Command, []string) {
		level := slog.LevelWarn
		if rootFlags.verbose {
			level = slog.LevelInfo
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&rootFlags.configPath, "config", "c", "project.yaml", "Project file path")
	pf.BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Log pipeline progress to stderr")

	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(contactsCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
