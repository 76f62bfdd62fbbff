package parse

import (
	"sort"
	"strings"

	pkerrors "github.com/griffithind/parsekit/internal/errors"
)

// KeyValueOptions configures the key-value-pair parser.
// Empty fields fall back to DefaultKeyValueOptions.
type KeyValueOptions struct {
	PairDelimiter     string // Separates pairs, e.g. ";"
	KeyValueDelimiter string // Separates a key from its value, e.g. "="
}

// DefaultKeyValueOptions returns ";" between pairs and "=" within a pair.
func DefaultKeyValueOptions() KeyValueOptions {
	return KeyValueOptions{PairDelimiter: ";", KeyValueDelimiter: "="}
}

func (o KeyValueOptions) withDefaults() KeyValueOptions {
	def := DefaultKeyValueOptions()
	if o.PairDelimiter == "" {
		o.PairDelimiter = def.PairDelimiter
	}
	if o.KeyValueDelimiter == "" {
		o.KeyValueDelimiter = def.KeyValueDelimiter
	}
	return o
}

// Validate reports whether the options, after defaults are applied, can be
// used to parse.
func (o KeyValueOptions) Validate() error {
	o = o.withDefaults()
	if o.PairDelimiter == o.KeyValueDelimiter {
		return pkerrors.InvalidConfig("keyValueDelimiter", o.KeyValueDelimiter, "must differ from the pair delimiter")
	}
	return nil
}

// ParseKeyValue parses "k1=v1;k2=v2" into a map using the default delimiters.
func ParseKeyValue(input string) (map[string]string, error) {
	return ParseKeyValueWith(input, DefaultKeyValueOptions())
}

// ParseKeyValueWith parses delimited key-value pairs into a map.
// Keys and values are trimmed of surrounding whitespace and empty pairs are
// skipped. When a key repeats, the last occurrence wins.
func ParseKeyValueWith(input string, opts KeyValueOptions) (map[string]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if input == "" {
		return nil, pkerrors.EmptyInput("key-value")
	}
	opts = opts.withDefaults()

	result := make(map[string]string)
	for _, pair := range strings.Split(input, opts.PairDelimiter) {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		key, value, err := splitPair(pair, opts.KeyValueDelimiter)
		if err != nil {
			return nil, err
		}
		result[key] = value
	}

	return result, nil
}

// splitPair splits a trimmed pair on the first delimiter.
func splitPair(pair, delimiter string) (string, string, error) {
	idx := strings.Index(pair, delimiter)
	if idx < 0 {
		return "", "", pkerrors.MissingDelimiter(pair, delimiter)
	}

	key := strings.TrimSpace(pair[:idx])
	if key == "" {
		return "", "", pkerrors.EmptyKey(pair)
	}
	return key, strings.TrimSpace(pair[idx+len(delimiter):]), nil
}

// FormatKeyValue writes pairs in key order, producing input that
// ParseKeyValueWith maps back to an equal map.
func FormatKeyValue(pairs map[string]string, opts KeyValueOptions) string {
	opts = opts.withDefaults()

	var sb strings.Builder
	for i, k := range sortedKeys(pairs) {
		if i > 0 {
			sb.WriteString(opts.PairDelimiter)
		}
		sb.WriteString(k)
		sb.WriteString(opts.KeyValueDelimiter)
		sb.WriteString(pairs[k])
	}
	return sb.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
