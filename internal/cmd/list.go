package cmd

import (
	"encoding/json"
	"fmt"

	"scalpel/internal/yamlpatch"

	"github.com/spf13/cobra"
)

// newListCmd creates the "list" command.
func newListCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Long: `List every key that holds a value, as dotted paths in file order.

Keys that only group nested settings are not listed. Block values show
their header (| or >).

Examples:
  scalpel list
  scalpel list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			entries, err := app.Engine.List()
			if err != nil {
				return err
			}

			if app.JSON {
				if entries == nil {
					entries = []yamlpatch.Entry{}
				}
				return json.NewEncoder(app.Out).Encode(entries)
			}

			for _, e := range entries {
				fmt.Fprintf(app.Out, "%s = %s\n", e.Key, e.Value)
			}
			return nil
		},
	}

	return cmd
}
