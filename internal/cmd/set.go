package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"scalpel/internal/yamlpatch"

	"github.com/spf13/cobra"
)

// newSetCmd creates the "set" command.
func newSetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key.path> <value>",
		Short: "Change a configuration value",
		Long: `Replace the value at a dotted key path.

Only the value on the matching line is rewritten; its indentation and any
trailing comment are kept. The key must already exist. Setting a value
equal to the current one leaves the file untouched.

Multi-line block values (| or >) and keys holding nested settings are not
changed; a warning is printed and the command still succeeds. Values that
would not read back unchanged (leading or trailing blanks, " #") are
rejected.

The value may start with '-'. Flags are accepted before the key or after
the value.

Examples:
  scalpel set listen true
  scalpel set ssl.enabled false
  scalpel set backups.chat.maxTotalBackups -1`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 2 {
				// Flag parsing stopped at the key; the rest may be flags.
				if err := cmd.Flags().Parse(args[2:]); err != nil {
					return err
				}
				if extra := cmd.Flags().Args(); len(extra) > 0 {
					return fmt.Errorf("accepts 2 arg(s), received %d", 2+len(extra))
				}
				args = args[:2]
			}

			app, err := provider.Get()
			if err != nil {
				return err
			}

			res, err := app.Engine.Set(args[0], args[1])
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
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// writeResultJSON encodes a set result for --json output.
func writeResultJSON(w io.Writer, res yamlpatch.Result) error {
	skipped := make([]map[string]string, 0, len(res.Skipped))
	for _, s := range res.Skipped {
		skipped = append(skipped, map[string]string{
			"key":    s.Key,
			"reason": s.Err.Error(),
		})
	}
	return json.NewEncoder(w).Encode(map[string]interface{}{
		"changed":    res.Changed,
		"written":    res.Written,
		"applied":    nonNil(res.Applied),
		"skipped":    skipped,
		"unresolved": nonNil(res.Unresolved),
	})
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
