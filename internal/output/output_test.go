package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	pkerrors "github.com/griffithind/parsekit/internal/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	out := New(Config{Format: FormatJSON, Writer: &buf})

	require.NoError(t, out.Render(map[string]string{"a": "1"}))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, map[string]string{"a": "1"}, decoded)
	assert.True(t, out.IsStructured())
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	out := New(Config{Format: FormatYAML, Writer: &buf})

	require.NoError(t, out.Render(map[string]map[string]string{"server": {"port": "8080"}}))
	assert.Equal(t, "server:\n  port: \"8080\"\n", buf.String())

	var decoded map[string]map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "8080", decoded["server"]["port"])
}

func TestNewDefaults(t *testing.T) {
	out := New(Config{})
	assert.Equal(t, FormatText, out.Format())
	assert.False(t, out.IsStructured())
	assert.NotNil(t, out.Writer())
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	out := New(Config{Format: FormatJSON, Writer: &buf})

	err := pkerrors.UnrecognizedUnit("x", []string{"ms", "s"})
	require.NoError(t, out.WriteError(err))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, pkerrors.CodeUnrecognizedUnit, resp.Code)
	assert.Equal(t, "format", resp.Category)
	assert.Equal(t, "x", resp.Context["unit"])
	assert.NotEmpty(t, resp.Hint)
}

func TestNewErrorResponsePlainError(t *testing.T) {
	resp := NewErrorResponse(errors.New("boom"))
	assert.Equal(t, "boom", resp.Error)
	assert.Empty(t, resp.Code)
	assert.Nil(t, resp.Context)
}
