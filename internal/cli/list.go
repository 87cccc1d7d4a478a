// Package cli — list.go implements the "gopatterns list" command.
//
// The list command displays the catalog as a text table or a JSON array,
// depending on the --json flag. An optional --category flag filters by the
// classic grouping (creational, structural, behavioral).
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/gopatterns/internal/catalog"
	"github.com/mmr-tortoise/gopatterns/internal/model"
)

// listFlags holds the flag values for the list command.
type listFlags struct {
	// category filters entries by their classic grouping.
	// Valid values: "creational", "structural", "behavioral", "all".
	category string
}

// NewListCommand creates the "list" cobra command over the given catalog.
// It is called from NewRootCommand to register as a subcommand.
func NewListCommand(patterns *catalog.Catalog) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the pattern catalog",
		Long: `List all patterns in the catalog with their category and summary.

Examples:
  gopatterns list
  gopatterns list --category structural
  gopatterns list --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := selectEntries(patterns, flags.category)
			if err != nil {
				return err
			}
			printListResult(cmd, entries)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.category, "category", "all",
		"Filter by category: creational, structural, behavioral, all (default: all)")

	return cmd
}

// selectEntries resolves the --category filter against the catalog.
func selectEntries(patterns *catalog.Catalog, category string) ([]catalog.Entry, error) {
	if category == "all" {
		return patterns.All(), nil
	}
	cat, err := model.ParseCategory(category)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("invalid category filter %q", category), err)
	}
	return patterns.ByCategory(cat), nil
}

// printListResult outputs the entries in text or JSON format, depending on
// the global --json flag. Output goes through the cobra command so tests
// can capture it.
func printListResult(cmd *cobra.Command, entries []catalog.Entry) {
	if IsJSONOutput() {
		printListResultJSON(cmd, entries)
	} else {
		printListResultText(cmd, entries)
	}
}

// listEntryJSON is the JSON output structure for a single catalog entry.
type listEntryJSON struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
}

// printListResultJSON outputs the entries as structured JSON. The top-level
// key is "patterns" containing an array of entry objects.
func printListResultJSON(cmd *cobra.Command, entries []catalog.Entry) {
	type resultJSON struct {
		Patterns []listEntryJSON `json:"patterns"`
	}

	result := resultJSON{
		// Use an empty slice instead of nil to ensure JSON output shows []
		// instead of null when the filter matches nothing.
		Patterns: make([]listEntryJSON, 0, len(entries)),
	}
	for _, e := range entries {
		result.Patterns = append(result.Patterns, listEntryJSON{
			Name:     e.Name,
			Category: e.Category.String(),
			Summary:  e.Summary,
		})
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	cmd.Println(string(data))
}

// printListResultText outputs the entries as a human-readable table with
// aligned columns:
//
//	NAME        CATEGORY      SUMMARY
//	adapter     structural    Legacy JSONC exports and a modern client ...
func printListResultText(cmd *cobra.Command, entries []catalog.Entry) {
	if len(entries) == 0 {
		cmd.Println("No patterns found.")
		return
	}

	cmd.Printf("%-12s %-12s %s\n", "NAME", "CATEGORY", "SUMMARY")
	for _, e := range entries {
		cmd.Printf("%-12s %-12s %s\n", e.Name, e.Category, e.Summary)
	}
}
