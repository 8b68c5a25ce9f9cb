package cmd

import (
	"fmt"
	"io"

	"scalpel/internal/yamlpatch"

	"github.com/spf13/cobra"
)

// newSetBatchCmd creates the "set-batch" command.
func newSetBatchCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-batch <json | ->",
		Short: "Change several configuration values in one write",
		Long: `Apply a JSON object of key paths to values, in the order given, and
write the file once.

Keys that do not exist are skipped silently. Strings are written as given;
numbers, booleans and null are written as their JSON text. Pass - to read
the object from stdin.

Examples:
  scalpel set-batch '{"port": 9000, "listen": true}'
  echo '{"ssl.enabled": true}' | scalpel set-batch -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			payload := []byte(args[0])
			if args[0] == "-" {
				payload, err = io.ReadAll(app.In)
				if err != nil {
					return fmt.Errorf("reading payload from stdin: %w", err)
				}
			}

			edits, err := yamlpatch.ParseBatch(payload)
			if err != nil {
				return err
			}

			res, err := app.Engine.SetBatch(edits)
			if err != nil {
				return err
			}

			app.reportSkipped(res)
			if app.JSON {
				return writeResultJSON(app.Out, res)
			}
			return nil
		},
	}
	return cmd
}
