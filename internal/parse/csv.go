package parse

import (
	"strings"
	"unicode/utf8"

	pkerrors "github.com/griffithind/parsekit/internal/errors"
)

// CSVOptions configures the CSV-line parser.
// The zero value means DefaultCSVOptions. Otherwise both fields must be set.
type CSVOptions struct {
	Delimiter string // Field separator, exactly one character
	Quote     string // Quote character, exactly one character
}

// DefaultCSVOptions returns the RFC 4180 delimiter and quote.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{Delimiter: ",", Quote: `"`}
}

// resolve validates the options and returns the delimiter and quote runes.
func (o CSVOptions) resolve() (rune, rune, error) {
	if o == (CSVOptions{}) {
		o = DefaultCSVOptions()
	}

	delim, err := singleRune("delimiter", o.Delimiter)
	if err != nil {
		return 0, 0, err
	}
	quote, err := singleRune("quote", o.Quote)
	if err != nil {
		return 0, 0, err
	}
	if delim == quote {
		return 0, 0, pkerrors.InvalidConfig("quote", o.Quote, "must differ from the delimiter")
	}
	return delim, quote, nil
}

// Validate reports whether the options can be used to parse.
func (o CSVOptions) Validate() error {
	_, _, err := o.resolve()
	return err
}

func singleRune(option, value string) (rune, error) {
	if utf8.RuneCountInString(value) != 1 {
		return 0, pkerrors.InvalidConfig(option, value, "must be a single character")
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}

// ParseCSVLine parses one line of comma-separated values using the default
// delimiter and quote.
func ParseCSVLine(line string) ([]string, error) {
	return ParseCSVLineWith(line, DefaultCSVOptions())
}

// ParseCSVLineWith parses one line of delimiter-separated values.
// Supported syntax:
//   - a,b,c       - plain fields
//   - a,,c        - empty fields are kept
//   - "a,b",c     - quoted fields may contain the delimiter
//   - "a""b"      - a doubled quote inside a quoted field is a literal quote
func ParseCSVLineWith(line string, opts CSVOptions) ([]string, error) {
	delim, quote, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	if line == "" {
		return nil, pkerrors.EmptyInput("csv")
	}

	runes := []rune(line)
	fields := make([]string, 0, strings.Count(line, string(delim))+1)

	var field strings.Builder
	inQuotes := false
	quoteCol := 0

	for i := 0; i < len(runes); i++ {
		c := runes[i]

		if inQuotes {
			switch {
			case c == quote && i+1 < len(runes) && runes[i+1] == quote:
				field.WriteRune(quote)
				i++
			case c == quote:
				inQuotes = false
			default:
				field.WriteRune(c)
			}
			continue
		}

		switch c {
		case delim:
			fields = append(fields, field.String())
			field.Reset()
		case quote:
			inQuotes = true
			quoteCol = i + 1
		default:
			field.WriteRune(c)
		}
	}

	if inQuotes {
		return nil, pkerrors.UnclosedQuote(string(quote), quoteCol)
	}

	fields = append(fields, field.String())
	return fields, nil
}

// FormatCSVLine joins fields into a single line that ParseCSVLineWith reads
// back unchanged. Fields containing the delimiter, the quote, or a line break
// are quoted and embedded quotes are doubled.
func FormatCSVLine(fields []string, opts CSVOptions) (string, error) {
	delim, quote, err := opts.resolve()
	if err != nil {
		return "", err
	}

	q := string(quote)
	var sb strings.Builder
	for i, f := range fields {
		if i > 0 {
			sb.WriteRune(delim)
		}
		if strings.ContainsRune(f, delim) || strings.ContainsRune(f, quote) || strings.ContainsAny(f, "\r\n") {
			sb.WriteString(q)
			sb.WriteString(strings.ReplaceAll(f, q, q+q))
			sb.WriteString(q)
			continue
		}
		sb.WriteString(f)
	}
	return sb.String(), nil
}
