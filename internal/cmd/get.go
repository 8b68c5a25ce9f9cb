package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"scalpel/internal/yamlpatch"

	"github.com/spf13/cobra"
)

// newGetCmd creates the "get" command.
func newGetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key.path>",
		Short: "Print a configuration value",
		Long: `Print the value at a dotted key path, without surrounding quotes.

Exits with status 1 and prints nothing if the key does not exist.

Examples:
  scalpel get port
  scalpel get ssl.enabled
  scalpel get backups.chat.maxTotalBackups`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]
			value, err := app.Engine.Get(key)
			if err != nil {
				if errors.Is(err, yamlpatch.ErrPathNotResolved) {
					app.Logger.Debug("key not found", "key", key)
					return &ExitError{Code: 1}
				}
				return err
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]string{
					"key":   key,
					"value": value,
				})
			}

			fmt.Fprintln(app.Out, value)
			return nil
		},
	}
	return cmd
}
