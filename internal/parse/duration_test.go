package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkerrors "github.com/griffithind/parsekit/internal/errors"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		// Single units
		{"milliseconds", "500ms", 500},
		{"seconds", "2s", 2000},
		{"sec", "3sec", 3000},
		{"minutes", "5m", 5 * 60 * 1000},
		{"min", "5min", 5 * 60 * 1000},
		{"hours", "2h", 2 * 3600 * 1000},
		{"hr", "1hr", 3600 * 1000},
		{"days", "1d", 86400 * 1000},
		{"weeks", "1w", 7 * 86400 * 1000},

		// Full words
		{"second word", "1 second", 1000},
		{"seconds word", "30 seconds", 30 * 1000},
		{"minutes word", "2 minutes", 2 * 60 * 1000},
		{"hours word", "1 hour", 3600 * 1000},
		{"days word", "2 days", 2 * 86400 * 1000},
		{"weeks word", "1 week", 7 * 86400 * 1000},
		{"milliseconds word", "250 milliseconds", 250},

		// Case insensitive
		{"upper case", "1H 30M", 90 * 60 * 1000},
		{"mixed case word", "2 Hours", 2 * 3600 * 1000},

		// Composite
		{"composite", "1d 2h 30m 45s", 95445000},
		{"no spaces", "1h30m", 90 * 60 * 1000},
		{"stray punctuation ignored", "1h, 30m.", 90 * 60 * 1000},
		{"surrounding text ignored", "about 2s total", 2000},

		// Fractions
		{"fractional hours", "1.5h", 90 * 60 * 1000},
		{"floored", "1.5ms", 1},
		{"leading dot", ".5s", 500},
		{"explicit plus", "+2s", 2000},
		{"zero", "0s", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseDurationAdditive(t *testing.T) {
	oneHour, err := ParseDuration("1h")
	require.NoError(t, err)
	thirty, err := ParseDuration("30m")
	require.NoError(t, err)

	combined, err := ParseDuration("1h 30m")
	require.NoError(t, err)
	reversed, err := ParseDuration("30m 1h")
	require.NoError(t, err)

	assert.Equal(t, oneHour+thirty, combined)
	assert.Equal(t, combined, reversed)
}

func TestParseDurationErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		code     string
		contains string
	}{
		{"empty", "", pkerrors.CodeEmptyInput, "empty"},
		{"whitespace only", "   ", pkerrors.CodeInvalidFormat, "INVALID_FORMAT"},
		{"no tokens", "soon", pkerrors.CodeInvalidFormat, "soon"},
		{"number without unit", "42", pkerrors.CodeInvalidFormat, "42"},
		{"unknown unit", "5x", pkerrors.CodeUnrecognizedUnit, `"x"`},
		{"unknown unit after valid", "1h 2fortnights", pkerrors.CodeUnrecognizedUnit, "fortnights"},
		{"negative", "-5s", pkerrors.CodeNegativeValue, "-5"},
		{"malformed number", "1.2.3s", pkerrors.CodeInvalidNumber, "1.2.3"},
		{"lone dot", ".s", pkerrors.CodeInvalidNumber, `"."`},
		{"overflow", "99999999999999999w", pkerrors.CodeValueOverflow, "too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDuration(tt.input)
			require.Error(t, err)
			assert.True(t, pkerrors.Is(err, tt.code), "got %v", err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestParseDurationValue(t *testing.T) {
	d, err := ParseDurationValue("1h 30m 15s")
	require.NoError(t, err)
	assert.Equal(t, time.Hour+30*time.Minute+15*time.Second, d)

	_, err = ParseDurationValue("")
	assert.True(t, pkerrors.Is(err, pkerrors.CodeEmptyInput))

	_, err = ParseDurationValue("999999999999w")
	assert.True(t, pkerrors.Is(err, pkerrors.CodeValueOverflow))
}

func TestDurationUnits(t *testing.T) {
	units := DurationUnits()
	for _, u := range []string{"ms", "s", "sec", "m", "min", "h", "hr", "d", "w", "weeks"} {
		assert.Contains(t, units, u)
	}
	assert.IsIncreasing(t, units)
}

func TestParsersConcurrentUse(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				ms, err := ParseDuration("1d 2h 30m 45s")
				assert.NoError(t, err)
				assert.Equal(t, int64(95445000), ms)

				n, err := ParseDataSize("1.5GB", Binary)
				assert.NoError(t, err)
				assert.Equal(t, int64(1610612736), n)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
