// Package ui provides terminal output utilities using pterm.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pterm/pterm"

	pkerrors "github.com/griffithind/parsekit/internal/errors"
	"github.com/griffithind/parsekit/internal/util"
)

// Verbosity represents the output verbosity level.
type Verbosity int

const (
	VerbosityQuiet   Verbosity = -1
	VerbosityNormal  Verbosity = 0
	VerbosityVerbose Verbosity = 1
)

// Config holds UI configuration.
type Config struct {
	Verbosity Verbosity
	NoColor   bool
	Writer    io.Writer
	ErrWriter io.Writer
}

var (
	config   Config
	configMu sync.Mutex
)

func init() {
	config = Config{
		Verbosity: VerbosityNormal,
		NoColor:   false,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	}
}

// Configure sets up the UI with the given configuration.
func Configure(cfg Config) {
	configMu.Lock()
	defer configMu.Unlock()

	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.ErrWriter == nil {
		cfg.ErrWriter = os.Stderr
	}

	config = cfg

	if cfg.NoColor {
		pterm.DisableColor()
	} else {
		pterm.EnableColor()
	}

	pterm.SetDefaultOutput(cfg.Writer)
	util.SetLogOutput(cfg.ErrWriter)
}

// IsQuiet returns true if quiet mode is enabled.
func IsQuiet() bool {
	configMu.Lock()
	defer configMu.Unlock()
	return config.Verbosity == VerbosityQuiet
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	configMu.Lock()
	defer configMu.Unlock()
	return config.Verbosity == VerbosityVerbose
}

// Writer returns the configured output writer.
func Writer() io.Writer {
	configMu.Lock()
	defer configMu.Unlock()
	return config.Writer
}

// ErrWriter returns the configured error writer.
func ErrWriter() io.Writer {
	configMu.Lock()
	defer configMu.Unlock()
	return config.ErrWriter
}

// Error prints an error message (always shown, even in quiet mode).
func Error(format string, args ...interface{}) {
	pterm.Error.WithWriter(ErrWriter()).Printf(format+"\n", args...)
}

// Warning prints a warning message if not in quiet mode.
func Warning(format string, args ...interface{}) {
	if IsQuiet() {
		return
	}
	pterm.Warning.WithWriter(ErrWriter()).Printf(format+"\n", args...)
}

// Verbose prints a message only in verbose mode.
func Verbose(format string, args ...interface{}) {
	if !IsVerbose() {
		return
	}
	fmt.Fprintln(ErrWriter(), pterm.FgGray.Sprintf(format, args...))
}

// Result prints a parse result line. Results are printed even in quiet mode
// since they are the command's only output.
func Result(format string, args ...interface{}) {
	fmt.Fprintf(Writer(), format+"\n", args...)
}

// Heading prints a bold heading line, skipped in quiet mode.
func Heading(text string) {
	if IsQuiet() {
		return
	}
	fmt.Fprintln(Writer(), pterm.Bold.Sprint(text))
}

// RenderTable renders a table with headers and rows.
// In quiet mode only the rows are printed, tab separated.
func RenderTable(headers []string, rows [][]string) error {
	w := Writer()
	if IsQuiet() {
		for _, row := range rows {
			for i, cell := range row {
				if i > 0 {
					fmt.Fprint(w, "\t")
				}
				fmt.Fprint(w, cell)
			}
			fmt.Fprintln(w)
		}
		return nil
	}

	data := pterm.TableData{headers}
	for _, row := range rows {
		data = append(data, row)
	}
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return pkerrors.Internal("failed to render table", err)
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// FormatLabel formats a label with consistent styling.
func FormatLabel(label, value string) string {
	return pterm.FgBlue.Sprint(label+":") + " " + value
}

// Dim returns dimmed text.
func Dim(text string) string {
	return pterm.FgGray.Sprint(text)
}

// Code returns code-styled text.
func Code(text string) string {
	return pterm.FgCyan.Sprint(text)
}
