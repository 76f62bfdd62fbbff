package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	pkerrors "github.com/griffithind/parsekit/internal/errors"
)

// ErrorFormatter provides consistent error formatting.
type ErrorFormatter struct {
	writer io.Writer
}

// NewErrorFormatter creates a new error formatter.
func NewErrorFormatter(w io.Writer) *ErrorFormatter {
	return &ErrorFormatter{
		writer: w,
	}
}

// Format formats an error for display.
func (f *ErrorFormatter) Format(err error) string {
	if err == nil {
		return ""
	}

	var pErr *pkerrors.ParseError
	if errors.As(err, &pErr) {
		return f.formatParseError(pErr)
	}

	return f.formatGenericError(err)
}

// formatParseError formats a ParseError with full context.
func (f *ErrorFormatter) formatParseError(err *pkerrors.ParseError) string {
	var sb strings.Builder

	// Category badge
	badge := pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold).
		Sprintf(" %s ", strings.ToUpper(string(err.Category)))
	sb.WriteString(badge)
	sb.WriteString(" ")
	sb.WriteString(pterm.FgRed.Sprint(err.Message))
	sb.WriteString("\n")

	if err.Cause != nil {
		sb.WriteString("\n")
		sb.WriteString(pterm.FgBlue.Sprint("Cause"))
		sb.WriteString(": ")
		sb.WriteString(err.Cause.Error())
		sb.WriteString("\n")
	}

	if len(err.Context) > 0 {
		sb.WriteString("\n")
		sb.WriteString(pterm.FgBlue.Sprint("Context"))
		sb.WriteString(":\n")
		for _, k := range err.ContextKeys() {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", pterm.FgGray.Sprint(k), err.Context[k]))
		}
	}

	if err.Hint != "" {
		sb.WriteString("\n")
		sb.WriteString(pterm.FgCyan.Sprint("ℹ"))
		sb.WriteString(" ")
		sb.WriteString(pterm.FgGray.Sprint(err.Hint))
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatGenericError formats a regular error.
func (f *ErrorFormatter) formatGenericError(err error) string {
	return fmt.Sprintf("%s %s\n", pterm.FgRed.Sprint("✗"), err.Error())
}

// Write writes a formatted error to the writer.
func (f *ErrorFormatter) Write(err error) {
	if err == nil {
		return
	}
	fmt.Fprint(f.writer, f.Format(err))
}

// PrintError prints a formatted error using the global configuration.
func PrintError(err error) {
	if err == nil {
		return
	}

	formatter := NewErrorFormatter(ErrWriter())
	formatter.Write(err)
}
