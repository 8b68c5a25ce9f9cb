// Package cmd implements the scalpel command-line interface.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"scalpel/internal/config"
	"scalpel/internal/yamlpatch"

	"golang.org/x/term"
)

// App holds application state shared across commands.
type App struct {
	Engine *yamlpatch.Engine
	Paths  config.Paths
	Logger *slog.Logger
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	JSON   bool // output in JSON format
}

// WarnColor returns the string wrapped in orange ANSI codes if stderr is a terminal,
// otherwise returns the string unchanged.
func (a *App) WarnColor(s string) string {
	if f, ok := a.Err.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "\033[38;5;214m" + s + "\033[0m"
	}
	return s
}

// reportSkipped prints one warning line to stderr per refused edit.
func (a *App) reportSkipped(res yamlpatch.Result) {
	for _, s := range res.Skipped {
		fmt.Fprintf(a.Err, "%s %s: %v\n", a.WarnColor("warning:"), s.Key, s.Err)
	}
}

// newLogger creates the slog logger for diagnostics on w.
// Only warnings and errors are shown unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
