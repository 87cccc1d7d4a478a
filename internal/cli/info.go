// Package cli — info.go implements the "gopatterns info" command.
//
// The info command shows one pattern's metadata: its category, summary, and
// the properties its tests encode.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/gopatterns/internal/catalog"
	"github.com/mmr-tortoise/gopatterns/internal/model"
)

// NewInfoCommand creates the "info" cobra command over the given catalog.
func NewInfoCommand(patterns *catalog.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:   "info <pattern>",
		Short: "Show a pattern's summary and tested properties",
		Long: `Show one pattern's category, summary, and the properties its tests
encode.

Examples:
  gopatterns info memento
  gopatterns info decorator --json`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := patterns.Get(args[0])
			if !ok {
				return model.NewCLIError(model.ExitPatternNotFound,
					fmt.Sprintf("unknown pattern %q (see: gopatterns list)", args[0]))
			}
			printInfoResult(cmd, e)
			return nil
		},
	}
}

// infoJSON is the JSON output structure for the info command.
type infoJSON struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Summary    string   `json:"summary"`
	Properties []string `json:"properties"`
}

// printInfoResult outputs the entry in text or JSON format, depending on
// the global --json flag.
func printInfoResult(cmd *cobra.Command, e catalog.Entry) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(infoJSON{
			Name:       e.Name,
			Category:   e.Category.String(),
			Summary:    e.Summary,
			Properties: e.Properties,
		}, "", "  ")
		cmd.Println(string(data))
		return
	}

	cmd.Printf("%s (%s)\n", e.Name, e.Category)
	cmd.Printf("  %s\n", e.Summary)
	cmd.Println("  properties:")
	for _, p := range e.Properties {
		cmd.Printf("    - %s\n", p)
	}
}
