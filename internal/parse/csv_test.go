package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkerrors "github.com/griffithind/parsekit/internal/errors"
)

func TestParseCSVLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single field", "a", []string{"a"}},
		{"plain fields", "a,b,c", []string{"a", "b", "c"}},
		{"empty middle field", "a,,c", []string{"a", "", "c"}},
		{"leading empty field", ",b", []string{"", "b"}},
		{"trailing empty field", "a,", []string{"a", ""}},
		{"only delimiter", ",", []string{"", ""}},
		{"escaped quote", `a,"b""c",d`, []string{"a", `b"c`, "d"}},
		{"quoted delimiter", `"a,b",c`, []string{"a,b", "c"}},
		{"empty quoted field", `a,"",c`, []string{"a", "", "c"}},
		{"only empty quoted field", `""`, []string{""}},
		{"whitespace preserved", " a , b ", []string{" a ", " b "}},
		{"quote mid field", `ab"c,d"e`, []string{"abc,de"}},
		{"unicode", "héllo,wörld", []string{"héllo", "wörld"}},
		{"doubled quotes only", `""""`, []string{`"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseCSVLine(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseCSVLineWith(t *testing.T) {
	t.Run("semicolon delimiter", func(t *testing.T) {
		result, err := ParseCSVLineWith("a;b,c;d", CSVOptions{Delimiter: ";", Quote: `"`})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b,c", "d"}, result)
	})

	t.Run("tab delimiter and single quote", func(t *testing.T) {
		result, err := ParseCSVLineWith("'a\tb'\t'it''s'", CSVOptions{Delimiter: "\t", Quote: "'"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a\tb", "it's"}, result)
	})

	t.Run("multibyte delimiter", func(t *testing.T) {
		result, err := ParseCSVLineWith("a§b", CSVOptions{Delimiter: "§", Quote: `"`})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, result)
	})

	t.Run("zero options use defaults", func(t *testing.T) {
		result, err := ParseCSVLineWith(`x,"y"`, CSVOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, result)
	})
}

func TestParseCSVLineErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := ParseCSVLine("")
		require.Error(t, err)
		assert.True(t, pkerrors.Is(err, pkerrors.CodeEmptyInput))
	})

	t.Run("unclosed quote", func(t *testing.T) {
		_, err := ParseCSVLine(`a,"b,c`)
		require.Error(t, err)
		assert.True(t, pkerrors.Is(err, pkerrors.CodeUnclosedQuote))
		assert.Contains(t, err.Error(), "column 3")
	})

	t.Run("multi-character delimiter", func(t *testing.T) {
		_, err := ParseCSVLineWith("a,b", CSVOptions{Delimiter: ",,", Quote: `"`})
		require.Error(t, err)
		assert.True(t, pkerrors.Is(err, pkerrors.CodeInvalidConfig))
		assert.True(t, pkerrors.IsContract(err))
	})

	t.Run("multi-character quote", func(t *testing.T) {
		_, err := ParseCSVLineWith("a,b", CSVOptions{Delimiter: ",", Quote: `""`})
		require.Error(t, err)
		assert.True(t, pkerrors.Is(err, pkerrors.CodeInvalidConfig))
	})

	t.Run("quote equals delimiter", func(t *testing.T) {
		_, err := ParseCSVLineWith("a,b", CSVOptions{Delimiter: "|", Quote: "|"})
		require.Error(t, err)
		assert.True(t, pkerrors.Is(err, pkerrors.CodeInvalidConfig))
	})

	t.Run("empty delimiter", func(t *testing.T) {
		_, err := ParseCSVLineWith("a,b", CSVOptions{Delimiter: "", Quote: `"`})
		require.Error(t, err)
		assert.True(t, pkerrors.Is(err, pkerrors.CodeInvalidConfig))
		pErr, _ := pkerrors.AsParseError(err)
		assert.Equal(t, "delimiter", pErr.Context["option"])
	})

	t.Run("empty quote", func(t *testing.T) {
		_, err := ParseCSVLineWith("a,b", CSVOptions{Delimiter: ";", Quote: ""})
		require.Error(t, err)
		assert.True(t, pkerrors.Is(err, pkerrors.CodeInvalidConfig))
	})

	t.Run("config checked before content", func(t *testing.T) {
		_, err := ParseCSVLineWith("", CSVOptions{Delimiter: "ab"})
		require.Error(t, err)
		assert.True(t, pkerrors.IsContract(err))
	})
}

func TestFormatCSVLineRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		opts   CSVOptions
	}{
		{"plain", []string{"a", "b", "c"}, DefaultCSVOptions()},
		{"with empties", []string{"a", "", "c", ""}, DefaultCSVOptions()},
		{"with delimiter", []string{"a,b", "c"}, DefaultCSVOptions()},
		{"with quotes", []string{`say "hi"`, `"`}, DefaultCSVOptions()},
		{"pipe delimiter", []string{"a|b", "c,d"}, CSVOptions{Delimiter: "|", Quote: `"`}},
		{"single quote", []string{"it's", "ok"}, CSVOptions{Delimiter: ",", Quote: "'"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := FormatCSVLine(tt.fields, tt.opts)
			require.NoError(t, err)

			result, err := ParseCSVLineWith(line, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.fields, result)
		})
	}
}

func TestFormatCSVLine(t *testing.T) {
	line, err := FormatCSVLine([]string{"a", `b"c`, "d,e"}, DefaultCSVOptions())
	require.NoError(t, err)
	assert.Equal(t, `a,"b""c","d,e"`, line)

	_, err = FormatCSVLine([]string{"a"}, CSVOptions{Delimiter: "ab"})
	assert.True(t, pkerrors.Is(err, pkerrors.CodeInvalidConfig))
}
