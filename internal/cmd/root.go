package cmd

import (
	"io"
	"os"
	"sync"

	"scalpel/internal/config"
	"scalpel/internal/yamlpatch"

	"github.com/spf13/cobra"
)

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Config captured from flags before Execute()
	InstallDir string
	JSONOutput bool
	Verbose    bool
	Verify     bool
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a test App.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app:        app,
		JSONOutput: app.JSON,
		In:         app.In,
		Out:        app.Out,
		Err:        app.Err,
	}
}

func (p *AppProvider) init() (*App, error) {
	paths, err := config.ResolvePaths(p.InstallDir)
	if err != nil {
		return nil, err
	}

	in := p.In
	if in == nil {
		in = os.Stdin
	}
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	logger := newLogger(errOut, p.Verbose)
	logger.Debug("resolved config file", "path", paths.ConfigFile)

	return &App{
		Engine: yamlpatch.New(yamlpatch.Options{
			Path:   paths.ConfigFile,
			Logger: logger,
			Verify: p.Verify,
		}),
		Paths:  paths,
		Logger: logger,
		In:     in,
		Out:    out,
		Err:    errOut,
		JSON:   p.JSONOutput,
	}, nil
}

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}

	rootCmd := newRootCmd(provider)
	return rootCmd.Execute()
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scalpel",
		Short: "Edit values in an application's config.yaml in place",
		Long: `Scalpel reads and rewrites individual values in a YAML configuration file
without reformatting it. Keys are addressed by dotted paths (ssl.enabled,
backups.chat.maxTotalBackups). Only the value on the matching line changes;
comments, blank lines and multi-line blocks are left exactly as they were.

The file edited is config.yaml inside the install directory, taken from
--path, then $INSTALL_DIR, then ~/SillyTavern.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags - these populate the provider config
	rootCmd.PersistentFlags().StringVar(&provider.InstallDir, "path", "", "Install directory containing config.yaml (default: $INSTALL_DIR or ~/SillyTavern)")
	rootCmd.PersistentFlags().BoolVar(&provider.JSONOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&provider.Verbose, "verbose", "v", false, "Log debug information to stderr")
	rootCmd.PersistentFlags().BoolVar(&provider.Verify, "verify", false, "Refuse edits that leave the file unparseable as YAML")

	rootCmd.SetIn(provider.In)
	rootCmd.SetOut(provider.Out)
	rootCmd.SetErr(provider.Err)

	rootCmd.AddCommand(newGetCmd(provider))
	rootCmd.AddCommand(newSetCmd(provider))
	rootCmd.AddCommand(newSetBatchCmd(provider))
	rootCmd.AddCommand(newListCmd(provider))
	rootCmd.AddCommand(newVersionCmd(provider))

	return rootCmd
}
