// Package cli implements the command-line interface for parsekit.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/griffithind/parsekit/internal/config"
	pkerrors "github.com/griffithind/parsekit/internal/errors"
	"github.com/griffithind/parsekit/internal/output"
	"github.com/griffithind/parsekit/internal/ui"
	"github.com/griffithind/parsekit/internal/util"
	"github.com/griffithind/parsekit/internal/version"
)

// Global flags
var (
	configPath   string
	outputFormat string
	noColor      bool
	quiet        bool
	verbose      bool
)

// activeConfig is the effective configuration for the running command.
var activeConfig = config.Default()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "parsekit",
	Short: "Parse small text formats",
	Long: `parsekit parses the small text formats that show up in config files,
environment variables, and command lines:

  csv        a single CSV line (RFC 4180 quoting)
  kv         "key=value;key=value" pair lists
  ini        INI documents with sections and comments
  duration   human durations such as "1h 30m" (milliseconds)
  size       data sizes such as "1.5GB" (bytes)

Results are printed as tables, or as JSON/YAML with --output.`,
	Version:           version.Version,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	parseGlobalFlags(os.Args[1:])
	initUI(noColor)
	if format, err := output.ParseFormat(outputFormat); err == nil {
		output.Configure(output.Config{Format: format, Writer: os.Stdout})
	}

	err := rootCmd.Execute()
	if err != nil {
		reportError(err)
	}
	return err
}

// parseGlobalFlags reads only the persistent flags from args so --no-color,
// --quiet, and --output also apply to errors raised before a command runs.
// Unknown flags and positional args are left for cobra.
func parseGlobalFlags(args []string) {
	fs := pflag.NewFlagSet("global", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.AddFlagSet(rootCmd.PersistentFlags())
	// Errors here are reported by cobra when it parses the full command line.
	_ = fs.Parse(args)
}

// reportError prints err in the active output format.
func reportError(err error) {
	util.With("code", pkerrors.GetCode(err)).Debug("command failed")
	if output.IsStructured() {
		werr := output.Global().WriteError(err)
		if werr == nil {
			return
		}
		ui.Error("failed to write error response: %v", werr)
	}
	ui.PrintError(err)
}

// setup resolves the config file, applies environment and flag overrides,
// and configures logging and output for the command.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	if cmd.Flags().Changed("output") {
		cfg.Output.Format = outputFormat
	}
	if noColor {
		cfg.Output.NoColor = true
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return pkerrors.InvalidConfig("output", cfg.Output.Format, err.Error())
	}

	initUI(cfg.Output.NoColor)
	output.Configure(output.Config{Format: format, Writer: os.Stdout})
	if quiet {
		util.SetQuiet(true)
	} else {
		util.SetVerbose(verbose)
	}
	ui.Verbose("using config: %s", cfg.Source())
	util.With("command", cmd.Name()).Debug("running")

	activeConfig = cfg
	return nil
}

// initUI configures the UI system based on parsed flags.
func initUI(disableColor bool) {
	verbosity := ui.VerbosityNormal
	if quiet {
		verbosity = ui.VerbosityQuiet
	} else if verbose {
		verbosity = ui.VerbosityVerbose
	}

	ui.Configure(ui.Config{
		Verbosity: verbosity,
		NoColor:   disableColor,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	})
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format: text, json, or yaml")

	// Output flags
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "minimal output (values only)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Configure Cobra to use UI-aware writers
	rootCmd.SetOut(ui.NewCobraOutWriter())
	rootCmd.SetErr(ui.NewCobraErrWriter())
	rootCmd.SilenceErrors = true // We handle errors ourselves in Execute()
	rootCmd.SilenceUsage = true

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{ID: "parsers", Title: "Parsers:"})
	rootCmd.AddGroup(&cobra.Group{ID: "utilities", Title: "Utilities:"})
}
