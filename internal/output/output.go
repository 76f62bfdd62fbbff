// Package output renders command results as text, JSON, or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat converts a user-supplied name into a Format.
// An empty name means FormatText.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, json, or yaml)", name)
}

// Config holds output configuration.
type Config struct {
	Format Format
	Writer io.Writer
}

// Output writes structured results for the CLI.
type Output struct {
	config Config
	mu     sync.Mutex
}

var (
	global   *Output
	globalMu sync.Mutex
)

func init() {
	global = New(Config{Format: FormatText, Writer: os.Stdout})
}

// New creates a new Output instance.
func New(cfg Config) *Output {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	return &Output{config: cfg}
}

// Configure updates the global output configuration.
func Configure(cfg Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = New(cfg)
}

// Global returns the global output instance.
func Global() *Output {
	globalMu.Lock()
	defer globalMu.Unlock()
	return global
}

// Format returns the configured format.
func (o *Output) Format() Format {
	return o.config.Format
}

// IsStructured returns true for JSON and YAML output.
func (o *Output) IsStructured() bool {
	return o.config.Format == FormatJSON || o.config.Format == FormatYAML
}

// Writer returns the output writer.
func (o *Output) Writer() io.Writer {
	return o.config.Writer
}

// Render writes v in the configured structured format.
// Text output is the caller's job; Render falls back to JSON for it.
func (o *Output) Render(v interface{}) error {
	if o.config.Format == FormatYAML {
		return o.YAML(v)
	}
	return o.JSON(v)
}

// JSON outputs data as indented JSON.
func (o *Output) JSON(v interface{}) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	enc := json.NewEncoder(o.config.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML outputs data as YAML.
func (o *Output) YAML(v interface{}) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	enc := yaml.NewEncoder(o.config.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// IsStructured returns true if the global output is JSON or YAML.
func IsStructured() bool {
	return Global().IsStructured()
}

// Render writes v using the global output.
func Render(v interface{}) error {
	return Global().Render(v)
}
