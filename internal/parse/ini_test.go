package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkerrors "github.com/griffithind/parsekit/internal/errors"
)

func TestParseINI(t *testing.T) {
	t.Run("sections", func(t *testing.T) {
		input := "[database]\nhost=localhost\nport=5432\n[server]\nport=8080"

		doc, err := ParseINI(input)
		require.NoError(t, err)
		assert.Equal(t, INI{
			"database": {"host": "localhost", "port": "5432"},
			"server":   {"port": "8080"},
		}, doc)
	})

	t.Run("global section", func(t *testing.T) {
		doc, err := ParseINI("name=app\n[s]\nk=v")
		require.NoError(t, err)
		assert.Equal(t, INI{
			GlobalSection: {"name": "app"},
			"s":           {"k": "v"},
		}, doc)
	})

	t.Run("empty global section omitted", func(t *testing.T) {
		doc, err := ParseINI("; header comment\n\n[s]\nk=v\n")
		require.NoError(t, err)
		_, ok := doc[GlobalSection]
		assert.False(t, ok)
	})

	t.Run("explicit empty global header kept", func(t *testing.T) {
		doc, err := ParseINI("[global]\n[s]\nk=v")
		require.NoError(t, err)
		assert.Equal(t, INI{GlobalSection: {}, "s": {"k": "v"}}, doc)
	})

	t.Run("crlf line endings", func(t *testing.T) {
		doc, err := ParseINI("[a]\r\nx = 1\r\ny = 2\r\n")
		require.NoError(t, err)
		assert.Equal(t, INI{"a": {"x": "1", "y": "2"}}, doc)
	})

	t.Run("comments", func(t *testing.T) {
		input := `; full line
# another
[a] ; section comment
x = 1 ; inline
y = 2 # inline hash
z = \#not-a-comment\; still value
`
		doc, err := ParseINI(input)
		require.NoError(t, err)
		assert.Equal(t, INI{"a": {"x": "1", "y": "2", "z": "#not-a-comment; still value"}}, doc)
	})

	t.Run("trimmed section names and case preserved", func(t *testing.T) {
		doc, err := ParseINI("[  Mixed Case ]\nKey = Value")
		require.NoError(t, err)
		assert.Equal(t, INI{"Mixed Case": {"Key": "Value"}}, doc)
	})

	t.Run("repeated section merges", func(t *testing.T) {
		doc, err := ParseINI("[a]\nx=1\n[b]\ny=2\n[a]\nz=3\nx=4")
		require.NoError(t, err)
		assert.Equal(t, INI{"a": {"x": "4", "z": "3"}, "b": {"y": "2"}}, doc)
	})

	t.Run("empty section kept", func(t *testing.T) {
		doc, err := ParseINI("[empty]")
		require.NoError(t, err)
		assert.Equal(t, INI{"empty": {}}, doc)
	})

	t.Run("value with equals", func(t *testing.T) {
		doc, err := ParseINI("dsn = user=a password=b")
		require.NoError(t, err)
		v, ok := doc.Get(GlobalSection, "dsn")
		assert.True(t, ok)
		assert.Equal(t, "user=a password=b", v)
	})

	t.Run("only comments", func(t *testing.T) {
		doc, err := ParseINI("# nothing here\n")
		require.NoError(t, err)
		assert.Empty(t, doc)
	})
}

func TestParseINIErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  string
		line  string
	}{
		{"empty input", "", pkerrors.CodeEmptyInput, ""},
		{"empty section name", "[]\nkey=value", pkerrors.CodeEmptySectionName, "1"},
		{"blank section name", "[a]\nk=v\n[   ]", pkerrors.CodeEmptySectionName, "3"},
		{"missing delimiter", "[a]\nk=v\njunk", pkerrors.CodeMissingDelimiter, "3"},
		{"empty key", "\n\n = v", pkerrors.CodeEmptyKey, "3"},
		{"unterminated header", "[a\nk=v", pkerrors.CodeMissingDelimiter, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseINI(tt.input)
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.True(t, pkerrors.Is(err, tt.code), "got %v", err)

			if tt.line != "" {
				pErr, ok := pkerrors.AsParseError(err)
				require.True(t, ok)
				assert.Equal(t, tt.line, pErr.Context["line"])
				assert.Contains(t, pErr.Message, "line "+tt.line)
			}
		})
	}
}

func TestINISections(t *testing.T) {
	doc := INI{"z": {}, GlobalSection: {"a": "1"}, "b": {}}
	assert.Equal(t, []string{GlobalSection, "b", "z"}, doc.Sections())

	_, ok := doc.Get("missing", "a")
	assert.False(t, ok)
}

func TestFormatINIIdempotent(t *testing.T) {
	inputs := []string{
		"[database]\nhost=localhost\nport=5432\n[server]\nport=8080",
		"top=1\n[a]\nx = has \\; semicolon\ny=\n[b]\n",
		"[global]\n[s]\nk=v",
	}

	for _, input := range inputs {
		first, err := ParseINI(input)
		require.NoError(t, err)

		second, err := ParseINI(FormatINI(first))
		require.NoError(t, err, "formatted: %q", FormatINI(first))
		assert.Equal(t, first, second, "input: %s", input)
	}
}

func TestFormatINIBracketKeys(t *testing.T) {
	doc := INI{
		GlobalSection: {"[a": "b]"},
		"s":           {"[k]": "v"},
	}

	text := FormatINI(doc)
	assert.Contains(t, text, "\\[a = b]\n")

	parsed, err := ParseINI(text)
	require.NoError(t, err)
	assert.Equal(t, doc, parsed)
}

func TestParseINIEscapedBracket(t *testing.T) {
	doc, err := ParseINI("\\[x] = 1\n[x]\ny = 2")
	require.NoError(t, err)

	v, ok := doc.Get(GlobalSection, "[x]")
	require.True(t, ok)
	assert.Equal(t, "1", v)

	v, ok = doc.Get("x", "y")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestParseINIBlankInput(t *testing.T) {
	// Blank input is not empty: its lines are skipped and no section remains.
	doc, err := ParseINI("   \n\t\n")
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestFormatINI(t *testing.T) {
	doc := INI{
		GlobalSection: {"name": "app"},
		"server":      {"port": "8080", "host": "0.0.0.0"},
	}

	expected := "name = app\n\n[server]\nhost = 0.0.0.0\nport = 8080\n"
	assert.Equal(t, expected, FormatINI(doc))
}
