// scalpel edits values in an application's YAML config file in place.
package main

import (
	"errors"
	"fmt"
	"os"

	"scalpel/internal/cmd"
)

var (
	run    = func() error { return cmd.Execute() }
	osExit = os.Exit
)

func main() {
	if err := run(); err != nil {
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			osExit(exitErr.Code)
			return
		}
		fmt.Fprintln(os.Stderr, err)
		osExit(1)
	}
}
