// Package errors provides structured error handling for parsekit.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Category represents the error category.
type Category string

// Error categories.
const (
	CategoryContract Category = "contract"
	CategoryFormat   Category = "format"
	CategoryConfig   Category = "configuration"
	CategoryIO       Category = "io"
	CategoryInternal Category = "internal"
)

// Error codes for each category.
const (
	// Contract errors
	CodeInvalidConfig = "INVALID_CONFIG"

	// Format errors
	CodeEmptyInput       = "EMPTY_INPUT"
	CodeUnclosedQuote    = "UNCLOSED_QUOTE"
	CodeMissingDelimiter = "MISSING_DELIMITER"
	CodeEmptyKey         = "EMPTY_KEY"
	CodeEmptySectionName = "EMPTY_SECTION_NAME"
	CodeInvalidNumber    = "INVALID_NUMBER"
	CodeNegativeValue    = "NEGATIVE_VALUE"
	CodeUnrecognizedUnit = "UNRECOGNIZED_UNIT"
	CodeInvalidFormat    = "INVALID_FORMAT"
	CodeValueOverflow    = "VALUE_OVERFLOW"

	// Config errors
	CodeConfigNotFound = "CONFIG_NOT_FOUND"
	CodeConfigParse    = "CONFIG_PARSE"
	CodeConfigInvalid  = "CONFIG_INVALID"

	// IO errors
	CodeNoInput  = "NO_INPUT"
	CodeFileRead = "FILE_READ"

	// Internal errors
	CodeInternal = "INTERNAL"
)

// ParseError is a structured error with category, code, and user-friendly hints.
type ParseError struct {
	Category Category
	Code     string
	Message  string
	Cause    error
	Hint     string
	Context  map[string]string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s/%s] %s: %v", e.Category, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s/%s] %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ContextKeys returns the context keys in sorted order.
func (e *ParseError) ContextKeys() []string {
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WithCause adds a cause to the error.
func (e *ParseError) WithCause(cause error) *ParseError {
	e.Cause = cause
	return e
}

// WithHint adds a hint to the error.
func (e *ParseError) WithHint(hint string) *ParseError {
	e.Hint = hint
	return e
}

// WithContext adds context to the error.
func (e *ParseError) WithContext(key, value string) *ParseError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithLine records the 1-based line number the error was found on and
// prefixes it to the message.
func (e *ParseError) WithLine(line int) *ParseError {
	e.Message = fmt.Sprintf("line %d: %s", line, e.Message)
	return e.WithContext("line", fmt.Sprintf("%d", line))
}

// New creates a new ParseError.
func New(category Category, code string, message string) *ParseError {
	return &ParseError{
		Category: category,
		Code:     code,
		Message:  message,
		Context:  make(map[string]string),
	}
}

// Newf creates a new ParseError with formatted message.
func Newf(category Category, code string, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Category: category,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Context:  make(map[string]string),
	}
}

// Wrap wraps an existing error as a ParseError.
func Wrap(err error, category Category, code string, message string) *ParseError {
	return &ParseError{
		Category: category,
		Code:     code,
		Message:  message,
		Cause:    err,
		Context:  make(map[string]string),
	}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, category Category, code string, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Category: category,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Cause:    err,
		Context:  make(map[string]string),
	}
}

// Is checks if the error is a ParseError with the given code.
func Is(err error, code string) bool {
	var pErr *ParseError
	if errors.As(err, &pErr) {
		return pErr.Code == code
	}
	return false
}

// GetCategory returns the category of a ParseError, or empty string if not a ParseError.
func GetCategory(err error) Category {
	var pErr *ParseError
	if errors.As(err, &pErr) {
		return pErr.Category
	}
	return ""
}

// GetCode returns the code of a ParseError, or empty string if not a ParseError.
func GetCode(err error) string {
	var pErr *ParseError
	if errors.As(err, &pErr) {
		return pErr.Code
	}
	return ""
}

// AsParseError attempts to convert an error to a ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var pErr *ParseError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}

// IsContract reports whether err is a configuration (contract) violation
// rather than a defect in the parsed content.
func IsContract(err error) bool {
	return GetCategory(err) == CategoryContract
}

// Contract errors constructors.

// InvalidConfig creates an error for a parser option that cannot be used.
func InvalidConfig(option, value, reason string) *ParseError {
	return Newf(CategoryContract, CodeInvalidConfig, "invalid %s %q: %s", option, value, reason).
		WithContext("option", option).
		WithContext("value", value)
}

// Format errors constructors.

// EmptyInput creates an empty input error for the named parser.
func EmptyInput(parser string) *ParseError {
	return Newf(CategoryFormat, CodeEmptyInput, "%s input is empty", parser).
		WithContext("parser", parser)
}

// UnclosedQuote creates an unclosed quote error. col is the 1-based column
// of the opening quote.
func UnclosedQuote(quote string, col int) *ParseError {
	return Newf(CategoryFormat, CodeUnclosedQuote, "unclosed quote %s opened at column %d", quote, col).
		WithContext("column", fmt.Sprintf("%d", col)).
		WithHint("Close the quoted field or escape literal quotes by doubling them")
}

// MissingDelimiter creates an error for a pair that lacks its key/value delimiter.
func MissingDelimiter(fragment, delimiter string) *ParseError {
	return Newf(CategoryFormat, CodeMissingDelimiter, "missing %q in %q", delimiter, fragment).
		WithContext("fragment", fragment).
		WithContext("delimiter", delimiter)
}

// EmptyKey creates an error for a pair whose key is blank.
func EmptyKey(fragment string) *ParseError {
	return Newf(CategoryFormat, CodeEmptyKey, "empty key in %q", fragment).
		WithContext("fragment", fragment)
}

// EmptySectionName creates an error for a "[]" section header.
func EmptySectionName(fragment string) *ParseError {
	return Newf(CategoryFormat, CodeEmptySectionName, "empty section name in %q", fragment).
		WithContext("fragment", fragment)
}

// InvalidNumber creates an error for a numeric token that does not parse.
func InvalidNumber(token string, cause error) *ParseError {
	return Wrapf(cause, CategoryFormat, CodeInvalidNumber, "invalid number %q", token).
		WithContext("token", token)
}

// NegativeValue creates an error for a numeric token below zero.
func NegativeValue(token string) *ParseError {
	return Newf(CategoryFormat, CodeNegativeValue, "negative value %q is not allowed", token).
		WithContext("token", token)
}

// UnrecognizedUnit creates an error naming an unknown unit.
func UnrecognizedUnit(unit string, known []string) *ParseError {
	return Newf(CategoryFormat, CodeUnrecognizedUnit, "unrecognized unit %q", unit).
		WithContext("unit", unit).
		WithHint("Known units: " + strings.Join(known, ", "))
}

// InvalidFormat creates an error for input that does not match the grammar.
func InvalidFormat(input, expected string) *ParseError {
	return Newf(CategoryFormat, CodeInvalidFormat, "invalid format %q", input).
		WithContext("input", input).
		WithHint("Expected " + expected)
}

// ValueOverflow creates an error for a result outside the int64 range.
func ValueOverflow(input string) *ParseError {
	return Newf(CategoryFormat, CodeValueOverflow, "value %q is too large", input).
		WithContext("input", input)
}

// Config errors constructors.

// ConfigNotFound creates a config not found error.
func ConfigNotFound(path string) *ParseError {
	return Newf(CategoryConfig, CodeConfigNotFound, "config file not found: %s", path).
		WithContext("path", path).
		WithHint("Pass --config with an existing file or remove the flag to use defaults")
}

// ConfigParse creates a config parse error.
func ConfigParse(path string, cause error) *ParseError {
	return Wrap(cause, CategoryConfig, CodeConfigParse, "failed to parse configuration").
		WithContext("path", path).
		WithHint("Check for JSON syntax errors in the configuration file")
}

// ConfigInvalid creates a validation error for a config field.
func ConfigInvalid(field, message string) *ParseError {
	return Newf(CategoryConfig, CodeConfigInvalid, "%s: %s", field, message).
		WithContext("field", field)
}

// IO errors constructors.

// NoInput creates an error raised when a command has nothing to parse.
func NoInput(command string) *ParseError {
	return Newf(CategoryIO, CodeNoInput, "no input for %s", command).
		WithHint("Pass the input as an argument, with --file, or pipe it on stdin")
}

// FileRead creates a file read error.
func FileRead(path string, cause error) *ParseError {
	return Wrap(cause, CategoryIO, CodeFileRead, fmt.Sprintf("failed to read file: %s", path)).
		WithContext("path", path)
}

// Internal errors constructors.

// Internal creates an internal error.
func Internal(message string, cause error) *ParseError {
	return Wrap(cause, CategoryInternal, CodeInternal, message).
		WithHint("This is an internal error. Please report it at https://github.com/griffithind/parsekit/issues")
}
